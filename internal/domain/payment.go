package domain

import (
	"time"

	"github.com/google/uuid"
)

// Payment is a single recorded payment against a booking. Written inside the
// same transaction as the booking it settles, so a committed booking with
// Paid=true always has its payment row and vice versa.
type Payment struct {
	ID         uuid.UUID `json:"id"`
	BookingID  uuid.UUID `json:"booking_id"`
	Amount     Money     `json:"amount"`
	Method     string    `json:"method"` // "card", "cash", "transfer"
	RecordedAt time.Time `json:"recorded_at"`
}
