package domain

import (
	"time"

	"github.com/google/uuid"
)

// Client is the person renting a vehicle. Plain CRD data from the core's
// perspective; bookings only verify the referenced client exists.
type Client struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	LicenceNo string    `json:"licence_no,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
