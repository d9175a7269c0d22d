package request

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/caninecompadre/booking-service/internal/domain"
	"github.com/caninecompadre/booking-service/pkg/dbmetrics"
	"github.com/caninecompadre/booking-service/pkg/psqlbuilder"
)

type DBExecutor = dbmetrics.DBExecutor

// Repository stores individual walk requests.
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var requestColumns = []string{
	"id",
	"customer_name",
	"customer_email",
	"customer_phone",
	"customer_address",
	"customer_postcode",
	"preferred_date",
	"preferred_time_text",
	"reason",
	"dog_count",
	"status",
	"confirmed_date",
	"confirmed_time_text",
	"admin_response",
	"calendar_event_id",
	"created_at",
	"updated_at",
}

// Create inserts a new individual walk request.
func (r *Repository) Create(ctx context.Context, req *domain.IndividualRequest) (*domain.IndividualRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("individual_requests").
		Columns(
			"customer_name",
			"customer_email",
			"customer_phone",
			"customer_address",
			"customer_postcode",
			"preferred_date",
			"preferred_time_text",
			"reason",
			"dog_count",
			"status",
		).
		Values(
			req.Customer.Name,
			req.Customer.Email,
			req.Customer.Phone,
			req.Customer.Address,
			req.Customer.Postcode,
			req.PreferredDate,
			req.PreferredTimeText,
			req.Reason,
			req.DogCount,
			req.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&req.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	req.CreatedAt = createdAt.Time
	req.UpdatedAt = updatedAt.Time

	return req, nil
}

// GetByID returns a request by its ID.
// Inside a transaction the row is locked so two staff cannot review the
// same request concurrently.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.IndividualRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(requestColumns...).
		From("individual_requests").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	req, err := scanRequest(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRequestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan request: %v", ErrScanRow, err)
	}

	return req, nil
}

// List returns requests matching the filter, newest first.
func (r *Repository) List(ctx context.Context, filter domain.RequestsFilter) ([]*domain.IndividualRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(requestColumns...).
		From("individual_requests")

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.Email != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"customer_email": *filter.Email})
	}

	query, args, err := selectBuilder.
		OrderBy("created_at DESC, id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	requests := make([]*domain.IndividualRequest, 0)
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan request: %v", ErrScanRow, err)
		}
		requests = append(requests, req)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return requests, nil
}

// SaveReview persists the outcome of a staff review.
func (r *Repository) SaveReview(ctx context.Context, req *domain.IndividualRequest) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("individual_requests").
		Set("status", req.Status).
		Set("confirmed_date", req.ConfirmedDate).
		Set("confirmed_time_text", req.ConfirmedTimeText).
		Set("admin_response", req.AdminResponse).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": req.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SaveReview - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, "SaveReview", query, args)
}

// UpdateStatus updates the request status.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.RequestStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("individual_requests").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, "UpdateStatus", query, args)
}

// SetCalendarEventID records (or clears) the calendar event linked to
// the request.
func (r *Repository) SetCalendarEventID(ctx context.Context, id int64, eventID *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("individual_requests").
		Set("calendar_event_id", eventID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetCalendarEventID - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, "SetCalendarEventID", query, args)
}

func (r *Repository) execExpectingRow(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrRequestNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRequest(row rowScanner) (*domain.IndividualRequest, error) {
	var req domain.IndividualRequest
	var createdAt, updatedAt sql.NullTime
	var confirmedDate sql.NullTime

	err := row.Scan(
		&req.ID,
		&req.Customer.Name,
		&req.Customer.Email,
		&req.Customer.Phone,
		&req.Customer.Address,
		&req.Customer.Postcode,
		&req.PreferredDate,
		&req.PreferredTimeText,
		&req.Reason,
		&req.DogCount,
		&req.Status,
		&confirmedDate,
		&req.ConfirmedTimeText,
		&req.AdminResponse,
		&req.CalendarEventID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if confirmedDate.Valid {
		req.ConfirmedDate = &confirmedDate.Time
	}
	req.CreatedAt = createdAt.Time
	req.UpdatedAt = updatedAt.Time

	return &req, nil
}
