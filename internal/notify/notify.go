// Package notify delivers post-commit booking notifications. From the
// booking core's perspective delivery is fire-and-forget: a failed
// notification is reported as a warning on the already-committed result,
// never as an error that could make a committed booking look failed.
package notify

import (
	"context"
	"log/slog"

	"github.com/drivebase/rental/internal/domain"
)

// Notifier is implemented by anything that wants to hear about booking
// lifecycle events after they commit (email, webhooks, a message queue).
type Notifier interface {
	BookingCreated(ctx context.Context, booking domain.Booking) error
	BookingCancelled(ctx context.Context, booking domain.Booking) error
	BookingCompleted(ctx context.Context, booking domain.Booking) error
}

// LogNotifier writes notifications to the structured log. Stands in for the
// real email/PDF pipeline in development and in tests.
type LogNotifier struct {
	log *slog.Logger
}

// NewLogNotifier constructs a LogNotifier over the given logger.
func NewLogNotifier(log *slog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) BookingCreated(ctx context.Context, b domain.Booking) error {
	n.log.InfoContext(ctx, "booking created",
		"booking_id", b.ID, "vehicle_id", b.VehicleID, "client_id", b.ClientID,
		"range", b.Range.String(), "total", b.TotalAmount.String())
	return nil
}

func (n *LogNotifier) BookingCancelled(ctx context.Context, b domain.Booking) error {
	n.log.InfoContext(ctx, "booking cancelled", "booking_id", b.ID, "vehicle_id", b.VehicleID)
	return nil
}

func (n *LogNotifier) BookingCompleted(ctx context.Context, b domain.Booking) error {
	n.log.InfoContext(ctx, "booking completed", "booking_id", b.ID, "vehicle_id", b.VehicleID)
	return nil
}
