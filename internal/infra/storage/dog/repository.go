package dog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/caninecompadre/booking-service/internal/domain"
	"github.com/caninecompadre/booking-service/pkg/dbmetrics"
	"github.com/caninecompadre/booking-service/pkg/psqlbuilder"
)

type DBExecutor = dbmetrics.DBExecutor

// Repository stores dog profiles. A dog row belongs to exactly one
// group booking or one individual request; the schema enforces the
// exclusive ownership and cascades deletes from the owner.
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var dogColumns = []string{
	"id",
	"group_booking_id",
	"individual_request_id",
	"name",
	"breed",
	"age",
	"allergies",
	"special_instructions",
	"good_with_other_dogs",
	"behavioral_notes",
	"vet_name",
	"vet_phone",
	"vet_address",
	"created_at",
}

// ownerColumns maps the owner reference onto the two nullable FK columns.
func ownerColumns(owner domain.DogOwner) (groupID, requestID *int64, err error) {
	switch owner.Kind {
	case domain.OwnerGroupBooking:
		return &owner.ID, nil, nil
	case domain.OwnerIndividualRequest:
		return nil, &owner.ID, nil
	}
	return nil, nil, fmt.Errorf("%w: %q", ErrUnknownOwnerKind, owner.Kind)
}

// CreateBatch inserts all dogs of one booking or request.
// Meant to run inside the owning transaction so a failed insert rolls
// back the whole reservation.
func (r *Repository) CreateBatch(ctx context.Context, owner domain.DogOwner, dogs []*domain.Dog) error {
	if len(dogs) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	groupID, requestID, err := ownerColumns(owner)
	if err != nil {
		return err
	}

	insertBuilder := psqlbuilder.Insert("dogs").
		Columns(
			"group_booking_id",
			"individual_request_id",
			"name",
			"breed",
			"age",
			"allergies",
			"special_instructions",
			"good_with_other_dogs",
			"behavioral_notes",
			"vet_name",
			"vet_phone",
			"vet_address",
		)

	for _, d := range dogs {
		insertBuilder = insertBuilder.Values(
			groupID,
			requestID,
			d.Name,
			d.Breed,
			d.Age,
			d.Allergies,
			d.SpecialInstructions,
			d.GoodWithOtherDogs,
			d.BehavioralNotes,
			d.VetName,
			d.VetPhone,
			d.VetAddress,
		)
	}

	query, args, err := insertBuilder.
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: CreateBatch - build insert query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: CreateBatch - execute insert: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	i := 0
	for rows.Next() {
		var createdAt sql.NullTime
		if err := rows.Scan(&dogs[i].ID, &createdAt); err != nil {
			return fmt.Errorf("%w: CreateBatch - scan returned id: %v", ErrScanRow, err)
		}
		dogs[i].Owner = owner
		dogs[i].CreatedAt = createdAt.Time
		i++
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: CreateBatch - rows error: %v", ErrScanRow, err)
	}

	return nil
}

// GetByOwner returns the dogs attached to a booking or request.
func (r *Repository) GetByOwner(ctx context.Context, owner domain.DogOwner) ([]*domain.Dog, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var where squirrel.Eq
	switch owner.Kind {
	case domain.OwnerGroupBooking:
		where = squirrel.Eq{"group_booking_id": owner.ID}
	case domain.OwnerIndividualRequest:
		where = squirrel.Eq{"individual_request_id": owner.ID}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOwnerKind, owner.Kind)
	}

	query, args, err := psqlbuilder.Select(dogColumns...).
		From("dogs").
		Where(where).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByOwner - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByOwner - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	dogs := make([]*domain.Dog, 0)
	for rows.Next() {
		d, err := scanDog(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByOwner - scan dog: %v", ErrScanRow, err)
		}
		dogs = append(dogs, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByOwner - rows error: %v", ErrScanRow, err)
	}

	return dogs, nil
}

func scanDog(rows *sql.Rows) (*domain.Dog, error) {
	var d domain.Dog
	var groupID, requestID sql.NullInt64
	var createdAt sql.NullTime

	err := rows.Scan(
		&d.ID,
		&groupID,
		&requestID,
		&d.Name,
		&d.Breed,
		&d.Age,
		&d.Allergies,
		&d.SpecialInstructions,
		&d.GoodWithOtherDogs,
		&d.BehavioralNotes,
		&d.VetName,
		&d.VetPhone,
		&d.VetAddress,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	switch {
	case groupID.Valid:
		d.Owner = domain.GroupBookingOwner(groupID.Int64)
	case requestID.Valid:
		d.Owner = domain.IndividualRequestOwner(requestID.Int64)
	}
	d.CreatedAt = createdAt.Time

	return &d, nil
}
