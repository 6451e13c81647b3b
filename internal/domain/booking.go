package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// BookingStatus is the lifecycle state of a booking. Stored as lowercase
// strings in Postgres; the zero value is not a valid status.
type BookingStatus string

const (
	// BookingPending is a reservation awaiting confirmation (e.g. imported
	// from an external channel). Pending bookings block availability.
	BookingPending BookingStatus = "pending"
	// BookingConfirmed is an admitted reservation. The service admits
	// directly into this state once the availability check passes.
	BookingConfirmed BookingStatus = "confirmed"
	// BookingCancelled is terminal; the range no longer blocks availability.
	BookingCancelled BookingStatus = "cancelled"
	// BookingCompleted is terminal; set when the vehicle is returned.
	BookingCompleted BookingStatus = "completed"
	// BookingNoShow is terminal; set administratively when the client never
	// picked the vehicle up.
	BookingNoShow BookingStatus = "no_show"
)

// IsActive reports whether a booking in this status counts toward
// availability conflicts. Only pending and confirmed bookings block a
// requested range.
func (s BookingStatus) IsActive() bool {
	return s == BookingPending || s == BookingConfirmed
}

// IsTerminal reports whether no further transitions are permitted.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingCancelled || s == BookingCompleted || s == BookingNoShow
}

// Booking is the aggregate root for a vehicle reservation.
//
// Status is mutated only through the transition methods (Confirm, Cancel,
// Complete, MarkNoShow) so that an illegal edge is impossible to persist.
// The date-range non-overlap invariant is enforced at admission time by the
// availability check plus the database exclusion constraint, not re-checked
// on every mutation.
type Booking struct {
	ID          uuid.UUID     `json:"id"`
	VehicleID   uuid.UUID     `json:"vehicle_id"`
	ClientID    uuid.UUID     `json:"client_id"`
	Range       DateRange     `json:"range"`
	Status      BookingStatus `json:"status"`
	TotalAmount Money         `json:"total_amount"`
	Paid        bool          `json:"paid"`
	Pickup      string        `json:"pickup,omitempty"`
	Dropoff     string        `json:"dropoff,omitempty"`
	Notes       string        `json:"notes,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// Confirm transitions pending → confirmed.
func (b *Booking) Confirm() error {
	if b.Status != BookingPending {
		return b.transitionError(BookingConfirmed)
	}
	b.Status = BookingConfirmed
	return nil
}

// Cancel transitions pending or confirmed → cancelled.
// Terminal bookings cannot be cancelled.
func (b *Booking) Cancel() error {
	if !b.Status.IsActive() {
		return b.transitionError(BookingCancelled)
	}
	b.Status = BookingCancelled
	return nil
}

// Complete transitions confirmed → completed, on vehicle return.
// A pending booking cannot complete: it was never handed over.
func (b *Booking) Complete() error {
	if b.Status != BookingConfirmed {
		return b.transitionError(BookingCompleted)
	}
	b.Status = BookingCompleted
	return nil
}

// MarkNoShow transitions confirmed → no_show.
func (b *Booking) MarkNoShow() error {
	if b.Status != BookingConfirmed {
		return b.transitionError(BookingNoShow)
	}
	b.Status = BookingNoShow
	return nil
}

func (b *Booking) transitionError(to BookingStatus) error {
	return fmt.Errorf("%w: booking %s cannot transition from %s to %s",
		ErrInvalidOperation, b.ID, b.Status, to)
}
