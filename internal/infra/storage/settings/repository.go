package settings

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

// Repository stores the single global settings row.
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get returns the current settings.
// Inside a transaction the row is locked so a concurrent settings update
// cannot slip between the capacity check and the booking insert.
func (r *Repository) Get(ctx context.Context) (*domain.Settings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"allow_weekend_bookings",
		"max_dogs_per_slot",
		"allow_evening_slot",
		"updated_at",
	).
		From("booking_settings").
		Where(squirrel.Eq{"id": domain.SettingsID})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR SHARE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Settings
	var updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.AllowWeekendBookings,
		&s.MaxDogsPerSlot,
		&s.AllowEveningSlot,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan settings: %v", ErrScanRow, err)
	}

	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

// Update writes the settings row, creating it if the seed row was removed.
func (r *Repository) Update(ctx context.Context, s domain.Settings) (*domain.Settings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("booking_settings").
		Columns(
			"id",
			"allow_weekend_bookings",
			"max_dogs_per_slot",
			"allow_evening_slot",
			"updated_at",
		).
		Values(
			domain.SettingsID,
			s.AllowWeekendBookings,
			s.MaxDogsPerSlot,
			s.AllowEveningSlot,
			squirrel.Expr("NOW()"),
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			allow_weekend_bookings = EXCLUDED.allow_weekend_bookings,
			max_dogs_per_slot = EXCLUDED.max_dogs_per_slot,
			allow_evening_slot = EXCLUDED.allow_evening_slot,
			updated_at = NOW()
		RETURNING updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build upsert query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Update - execute upsert: %v", ErrExecQuery, err)
	}

	s.UpdatedAt = updatedAt.Time

	return &s, nil
}
