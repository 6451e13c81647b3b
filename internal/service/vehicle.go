package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/drivebase/rental/internal/domain"
	"github.com/drivebase/rental/internal/repo"
)

// VehicleService implements the basic vehicle operations the API exposes.
// Status flips tied to bookings happen in BookingService transactions, not
// here.
type VehicleService struct {
	vehicles repo.VehicleRepo
}

// NewVehicleService constructs a VehicleService backed by the provided repo.
func NewVehicleService(vehicles repo.VehicleRepo) *VehicleService {
	return &VehicleService{vehicles: vehicles}
}

// Create validates and registers a new vehicle. New vehicles start available
// unless explicitly registered in another state.
func (s *VehicleService) Create(ctx context.Context, vehicle domain.Vehicle) (domain.Vehicle, error) {
	if err := validateVehicle(vehicle); err != nil {
		return domain.Vehicle{}, err
	}
	if vehicle.Status == "" {
		vehicle.Status = domain.VehicleAvailable
	}
	result, err := s.vehicles.Create(ctx, vehicle)
	if err != nil {
		return domain.Vehicle{}, fmt.Errorf("service.VehicleService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single vehicle by ID.
func (s *VehicleService) GetByID(ctx context.Context, id uuid.UUID) (domain.Vehicle, error) {
	result, err := s.vehicles.GetByID(ctx, id)
	if err != nil {
		return domain.Vehicle{}, fmt.Errorf("service.VehicleService.GetByID: %w", err)
	}
	return result, nil
}

// List returns all vehicles.
// Always returns a non-nil slice so callers can safely range over it.
func (s *VehicleService) List(ctx context.Context) ([]domain.Vehicle, error) {
	vehicles, err := s.vehicles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.VehicleService.List: %w", err)
	}
	if vehicles == nil {
		return []domain.Vehicle{}, nil
	}
	return vehicles, nil
}

// validateVehicle enforces the rules for registering a vehicle.
func validateVehicle(v domain.Vehicle) error {
	if strings.TrimSpace(v.Plate) == "" {
		return fmt.Errorf("%w: plate is required", domain.ErrInvalidArgument)
	}
	if strings.TrimSpace(v.Type) == "" {
		return fmt.Errorf("%w: vehicle type is required", domain.ErrInvalidArgument)
	}
	if v.Mileage < 0 {
		return fmt.Errorf("%w: mileage must not be negative", domain.ErrInvalidArgument)
	}
	return nil
}
