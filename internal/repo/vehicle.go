package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/drivebase/rental/internal/domain"
)

// VehicleRepo defines the persistence operations for vehicles.
type VehicleRepo interface {
	// Create inserts a new vehicle and returns the persisted record.
	// Returns domain.ErrConflict when the plate is already registered.
	Create(ctx context.Context, vehicle domain.Vehicle) (domain.Vehicle, error)

	// GetByID retrieves a single vehicle by its UUID primary key.
	// Returns domain.ErrNotFound if no vehicle with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Vehicle, error)

	// List returns all vehicles ordered by plate.
	List(ctx context.Context) ([]domain.Vehicle, error)

	// Update overwrites the mutable fields (status, mileage, type) of an
	// existing vehicle. Returns domain.ErrNotFound if absent.
	Update(ctx context.Context, vehicle domain.Vehicle) (domain.Vehicle, error)
}

// pgVehicleRepo is the Postgres implementation of VehicleRepo.
type pgVehicleRepo struct {
	db db
}

// NewVehicleRepo constructs a VehicleRepo backed by the provided db connection.
func NewVehicleRepo(db db) VehicleRepo {
	return &pgVehicleRepo{db: db}
}

const vehicleColumns = `id, plate, make, model, type, mileage, status, created_at, updated_at`

// Create inserts a new vehicle row and returns the full persisted record.
func (r *pgVehicleRepo) Create(ctx context.Context, vehicle domain.Vehicle) (domain.Vehicle, error) {
	const q = `
		INSERT INTO vehicles (plate, make, model, type, mileage, status)
		VALUES (@plate, @make, @model, @type, @mileage, @status)
		RETURNING ` + vehicleColumns

	args := pgx.NamedArgs{
		"plate":   vehicle.Plate,
		"make":    vehicle.Make,
		"model":   vehicle.Model,
		"type":    vehicle.Type,
		"mileage": vehicle.Mileage,
		"status":  string(vehicle.Status),
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanVehicle(row)
	if err != nil {
		return domain.Vehicle{}, fmt.Errorf("repo.VehicleRepo.Create: %w", translateConstraint(err))
	}
	return result, nil
}

// GetByID retrieves a vehicle by primary key.
func (r *pgVehicleRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Vehicle, error) {
	const q = `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanVehicle(row)
	if err != nil {
		return domain.Vehicle{}, fmt.Errorf("repo.VehicleRepo.GetByID: %w", err)
	}
	return result, nil
}

// List returns all vehicles ordered by plate.
func (r *pgVehicleRepo) List(ctx context.Context) ([]domain.Vehicle, error) {
	const q = `SELECT ` + vehicleColumns + ` FROM vehicles ORDER BY plate`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.VehicleRepo.List: %w", err)
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.VehicleRepo.List: scan: %w", err)
		}
		vehicles = append(vehicles, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.VehicleRepo.List: rows: %w", err)
	}

	return vehicles, nil
}

// Update overwrites the mutable fields of a vehicle and returns the updated record.
func (r *pgVehicleRepo) Update(ctx context.Context, vehicle domain.Vehicle) (domain.Vehicle, error) {
	const q = `
		UPDATE vehicles
		SET type       = @type,
		    mileage    = @mileage,
		    status     = @status,
		    updated_at = now()
		WHERE id = @id
		RETURNING ` + vehicleColumns

	args := pgx.NamedArgs{
		"id":      vehicle.ID,
		"type":    vehicle.Type,
		"mileage": vehicle.Mileage,
		"status":  string(vehicle.Status),
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanVehicle(row)
	if err != nil {
		return domain.Vehicle{}, fmt.Errorf("repo.VehicleRepo.Update: %w", err)
	}
	return result, nil
}

// scanVehicle maps a single database row into a domain.Vehicle.
func scanVehicle(s scanner) (domain.Vehicle, error) {
	var (
		v      domain.Vehicle
		id     pgtype.UUID
		status string
	)

	err := s.Scan(&id, &v.Plate, &v.Make, &v.Model, &v.Type, &v.Mileage, &status,
		&v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Vehicle{}, domain.ErrNotFound
		}
		return domain.Vehicle{}, err
	}

	v.ID = uuid.UUID(id.Bytes)
	v.Status = domain.VehicleStatus(status)
	return v, nil
}
