package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// VehicleStatus is the operational state of a vehicle.
type VehicleStatus string

const (
	VehicleAvailable    VehicleStatus = "available"
	VehicleRented       VehicleStatus = "rented"
	VehicleMaintenance  VehicleStatus = "maintenance"
	VehicleOutOfService VehicleStatus = "out_of_service"
)

// Vehicle is an external aggregate from the booking core's perspective:
// bookings load it, flip its status, and persist it inside the same
// transaction that creates or closes the booking, never outside one.
type Vehicle struct {
	ID        uuid.UUID     `json:"id"`
	Plate     string        `json:"plate"`
	Make      string        `json:"make"`
	Model     string        `json:"model"`
	Type      string        `json:"type"` // tariff class, e.g. "compact", "suv"
	Mileage   int64         `json:"mileage"`
	Status    VehicleStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// Rentable reports whether the vehicle may take new bookings at all.
// Vehicles in maintenance or out of service never admit, regardless of
// what the calendar says.
func (v *Vehicle) Rentable() bool {
	return v.Status == VehicleAvailable || v.Status == VehicleRented
}

// MarkRented flips the vehicle to rented. Happens atomically with booking
// confirmation.
func (v *Vehicle) MarkRented() error {
	if !v.Rentable() {
		return fmt.Errorf("%w: vehicle %s is %s and cannot be rented", ErrInvalidOperation, v.ID, v.Status)
	}
	v.Status = VehicleRented
	return nil
}

// MarkAvailable flips the vehicle back to available, on booking completion
// or cancellation. A no-op guard keeps maintenance/out-of-service states
// from being silently cleared by a booking operation.
func (v *Vehicle) MarkAvailable() error {
	if v.Status == VehicleMaintenance || v.Status == VehicleOutOfService {
		return fmt.Errorf("%w: vehicle %s is %s and cannot be released by a booking", ErrInvalidOperation, v.ID, v.Status)
	}
	v.Status = VehicleAvailable
	return nil
}

// RecordReturn updates the odometer on vehicle return. The new reading must
// not run backwards.
func (v *Vehicle) RecordReturn(mileage int64) error {
	if mileage < v.Mileage {
		return fmt.Errorf("%w: returned mileage %d is below current %d", ErrInvalidArgument, mileage, v.Mileage)
	}
	v.Mileage = mileage
	return nil
}
