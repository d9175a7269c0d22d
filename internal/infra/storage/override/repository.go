package override

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/caninecompadre/booking-service/internal/domain"
	"github.com/caninecompadre/booking-service/pkg/dbmetrics"
	"github.com/caninecompadre/booking-service/pkg/psqlbuilder"
)

type DBExecutor = dbmetrics.DBExecutor

// Repository stores per-date availability overrides.
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var overrideColumns = []string{
	"id",
	"override_date",
	"morning_available",
	"afternoon_available",
	"evening_available",
	"morning_capacity",
	"afternoon_capacity",
	"evening_capacity",
	"notes",
	"created_at",
	"updated_at",
}

// GetByDate returns the override for a single date.
// Inside a transaction the row is locked so two staff edits of the same
// date serialize instead of basing their cascade on the same old state.
func (r *Repository) GetByDate(ctx context.Context, date time.Time) (*domain.DateOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(overrideColumns...).
		From("date_overrides").
		Where(squirrel.Eq{"override_date": date})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	o, err := scanOverride(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOverrideNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - scan override: %v", ErrScanRow, err)
	}

	return o, nil
}

// GetByDateRange returns all overrides with a date in [from, to].
// Used by the availability projection to avoid a query per day.
func (r *Repository) GetByDateRange(ctx context.Context, from, to time.Time) ([]*domain.DateOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(overrideColumns...).
		From("date_overrides").
		Where(squirrel.GtOrEq{"override_date": from}).
		Where(squirrel.LtOrEq{"override_date": to}).
		OrderBy("override_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDateRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDateRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	overrides := make([]*domain.DateOverride, 0)
	for rows.Next() {
		o, err := scanOverride(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByDateRange - scan override: %v", ErrScanRow, err)
		}
		overrides = append(overrides, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByDateRange - rows error: %v", ErrScanRow, err)
	}

	return overrides, nil
}

// Upsert creates or replaces the override for its date.
func (r *Repository) Upsert(ctx context.Context, o *domain.DateOverride) (*domain.DateOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("date_overrides").
		Columns(
			"override_date",
			"morning_available",
			"afternoon_available",
			"evening_available",
			"morning_capacity",
			"afternoon_capacity",
			"evening_capacity",
			"notes",
		).
		Values(
			o.Date,
			o.Morning.Available,
			o.Afternoon.Available,
			o.Evening.Available,
			o.Morning.Capacity,
			o.Afternoon.Capacity,
			o.Evening.Capacity,
			o.Notes,
		).
		Suffix(`ON CONFLICT (override_date) DO UPDATE SET
			morning_available = EXCLUDED.morning_available,
			afternoon_available = EXCLUDED.afternoon_available,
			evening_available = EXCLUDED.evening_available,
			morning_capacity = EXCLUDED.morning_capacity,
			afternoon_capacity = EXCLUDED.afternoon_capacity,
			evening_capacity = EXCLUDED.evening_capacity,
			notes = EXCLUDED.notes,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&o.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	o.CreatedAt = createdAt.Time
	o.UpdatedAt = updatedAt.Time

	return o, nil
}

// Delete removes the override for a date, returning the date to the
// global settings.
func (r *Repository) Delete(ctx context.Context, date time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("date_overrides").
		Where(squirrel.Eq{"override_date": date}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrOverrideNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOverride(row rowScanner) (*domain.DateOverride, error) {
	var o domain.DateOverride
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&o.ID,
		&o.Date,
		&o.Morning.Available,
		&o.Afternoon.Available,
		&o.Evening.Available,
		&o.Morning.Capacity,
		&o.Afternoon.Capacity,
		&o.Evening.Capacity,
		&o.Notes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	o.CreatedAt = createdAt.Time
	o.UpdatedAt = updatedAt.Time

	return &o, nil
}
