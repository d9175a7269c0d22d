package booking

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

// Repository stores group walk bookings.
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var bookingColumns = []string{
	"id",
	"customer_name",
	"customer_email",
	"customer_phone",
	"customer_address",
	"customer_postcode",
	"booking_date",
	"time_slot",
	"dog_count",
	"status",
	"calendar_event_id",
	"batch_id",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Create inserts a new booking.
// When the context carries an active transaction it is used, which is
// how the reservation flow keeps the capacity check and the insert atomic.
func (r *Repository) Create(ctx context.Context, b *domain.GroupBooking) (*domain.GroupBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("group_bookings").
		Columns(
			"customer_name",
			"customer_email",
			"customer_phone",
			"customer_address",
			"customer_postcode",
			"booking_date",
			"time_slot",
			"dog_count",
			"status",
			"calendar_event_id",
			"batch_id",
		).
		Values(
			b.Customer.Name,
			b.Customer.Email,
			b.Customer.Phone,
			b.Customer.Address,
			b.Customer.Postcode,
			b.BookingDate,
			b.TimeSlot,
			b.DogCount,
			b.Status,
			b.CalendarEventID,
			b.BatchID,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return b, nil
}

// GetByID returns a booking by its ID.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.GroupBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("group_bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	b, err := scanBookingRow(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return b, nil
}

// GetConfirmedBySlot returns the confirmed bookings occupying one slot
// of one date. Inside a transaction the rows are locked, which is what
// makes both the capacity check and the override cascade safe against
// concurrent reservations for the same slot.
func (r *Repository) GetConfirmedBySlot(ctx context.Context, date time.Time, slot domain.Slot) ([]*domain.GroupBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("group_bookings").
		Where(squirrel.Eq{
			"booking_date": date,
			"time_slot":    slot,
			"status":       domain.StatusConfirmed,
		}).
		OrderBy("id ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetConfirmedBySlot - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetConfirmedBySlot - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// slotCount is one (date, slot) bucket of the committed dog count.
type slotCount struct {
	Date  time.Time
	Slot  domain.Slot
	Count int
}

// CountCommittedDogs sums the dogs of confirmed bookings per (date, slot)
// over a date range. Used by the availability projection.
func (r *Repository) CountCommittedDogs(ctx context.Context, from, to time.Time) (map[time.Time]map[domain.Slot]int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"booking_date",
		"time_slot",
		"COALESCE(SUM(dog_count), 0)",
	).
		From("group_bookings").
		Where(squirrel.Eq{"status": domain.StatusConfirmed}).
		Where(squirrel.GtOrEq{"booking_date": from}).
		Where(squirrel.LtOrEq{"booking_date": to}).
		GroupBy("booking_date", "time_slot").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CountCommittedDogs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CountCommittedDogs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	counts := make(map[time.Time]map[domain.Slot]int)
	for rows.Next() {
		var sc slotCount
		if err := rows.Scan(&sc.Date, &sc.Slot, &sc.Count); err != nil {
			return nil, fmt.Errorf("%w: CountCommittedDogs - scan row: %v", ErrScanRow, err)
		}
		day := sc.Date.Truncate(24 * time.Hour)
		if counts[day] == nil {
			counts[day] = make(map[domain.Slot]int)
		}
		counts[day][sc.Slot] = sc.Count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CountCommittedDogs - rows error: %v", ErrScanRow, err)
	}

	return counts, nil
}

// List returns bookings matching the filter, newest first.
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.GroupBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("group_bookings")

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"booking_date": *filter.Date})
	}
	if filter.FromDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"booking_date": *filter.FromDate})
	}
	if filter.ToDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"booking_date": *filter.ToDate})
	}
	if filter.Slot != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"time_slot": *filter.Slot})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.Email != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"customer_email": *filter.Email})
	}

	query, args, err := selectBuilder.
		OrderBy("booking_date DESC, time_slot DESC, id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetByBatchID returns all bookings created in one multi-date reservation.
func (r *Repository) GetByBatchID(ctx context.Context, batchID string) ([]*domain.GroupBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("group_bookings").
		Where(squirrel.Eq{"batch_id": batchID}).
		OrderBy("booking_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByBatchID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBatchID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// UpdateStatus moves a confirmed booking into the given status. The
// status guard in the WHERE clause makes the transition atomic: a
// booking already cancelled or completed by a concurrent request is
// left untouched and ErrBookingNotUpdatable comes back.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("group_bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": domain.StatusConfirmed}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, "UpdateStatus", query, args, ErrBookingNotUpdatable)
}

// Cancel marks a confirmed booking cancelled with a reason. The status
// guard keeps a concurrently completed booking from being overwritten.
func (r *Repository) Cancel(ctx context.Context, id int64, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("group_bookings").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": domain.StatusConfirmed}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, "Cancel", query, args, ErrBookingNotUpdatable)
}

// SetCalendarEventID records (or clears) the calendar event linked to
// the booking.
func (r *Repository) SetCalendarEventID(ctx context.Context, id int64, eventID *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("group_bookings").
		Set("calendar_event_id", eventID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetCalendarEventID - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, "SetCalendarEventID", query, args, ErrBookingNotFound)
}

func (r *Repository) execExpectingRow(ctx context.Context, executor DBExecutor, op, query string, args []interface{}, missing error) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return missing
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBookingRow(row rowScanner) (*domain.GroupBooking, error) {
	var b domain.GroupBooking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&b.ID,
		&b.Customer.Name,
		&b.Customer.Email,
		&b.Customer.Phone,
		&b.Customer.Address,
		&b.Customer.Postcode,
		&b.BookingDate,
		&b.TimeSlot,
		&b.DogCount,
		&b.Status,
		&b.CalendarEventID,
		&b.BatchID,
		&b.CancellationReason,
		&b.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}

func scanBookings(rows *sql.Rows) ([]*domain.GroupBooking, error) {
	bookings := make([]*domain.GroupBooking, 0)
	for rows.Next() {
		b, err := scanBookingRow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan booking: %v", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
