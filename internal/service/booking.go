// Package service contains the business logic for the rental booking API.
// Services validate inputs, enforce business rules, and orchestrate repo
// calls. No SQL lives here; services depend on repo interfaces, not
// implementations.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/drivebase/rental/internal/domain"
	"github.com/drivebase/rental/internal/metrics"
	"github.com/drivebase/rental/internal/notify"
	"github.com/drivebase/rental/internal/repo"
)

// CreateBookingInput carries everything the admission decision needs.
// Start and End are raw caller input; the service builds the DateRange and
// rejects malformed ranges before touching persistence.
type CreateBookingInput struct {
	VehicleID uuid.UUID
	ClientID  uuid.UUID
	Start     time.Time
	End       time.Time
	Pickup    string
	Dropoff   string
	Notes     string

	// Payment, when non-nil, records a payment for the full total inside
	// the same transaction and marks the booking paid.
	Payment *PaymentInput
}

// PaymentInput describes an upfront payment accompanying a booking request.
type PaymentInput struct {
	Method string // "card", "cash", "transfer"
}

// ReturnDetails carries the facts recorded when a vehicle comes back.
type ReturnDetails struct {
	Mileage int64
	Notes   string
}

// BookingResult is a committed booking plus any post-commit warnings.
// Warnings report side-effect failures (e.g. notification delivery) that
// must never make the committed booking look failed.
type BookingResult struct {
	Booking  domain.Booking
	Warnings []string
}

// BookingService is the entry point for booking admission and lifecycle.
//
// Reads before the transaction are an optimisation: the availability
// pre-check rejects hopeless requests cheaply, but two concurrent requests
// can both pass it. The authoritative decision is the commit: the bookings
// table's exclusion constraint turns the loser's commit into the same
// domain.ErrConflict the pre-check produces.
type BookingService struct {
	reads    repo.Repos
	tx       repo.TxManager
	tariff   Tariff
	notifier notify.Notifier
	log      *slog.Logger

	// Now is the clock used to decide whether a vehicle's current rental
	// window is affected by a cancellation. Tests may override it.
	Now func() time.Time
}

// NewBookingService constructs a BookingService.
// reads must be bound to the connection pool (not a transaction); tx opens
// the per-call transaction scope.
func NewBookingService(reads repo.Repos, tx repo.TxManager, tariff Tariff, notifier notify.Notifier, log *slog.Logger) *BookingService {
	return &BookingService{
		reads:    reads,
		tx:       tx,
		tariff:   tariff,
		notifier: notifier,
		log:      log,
		Now:      time.Now,
	}
}

// Create admits a new booking: validate → availability pre-check → price →
// one transaction persisting the booking (confirmed), the vehicle status
// flip, and the optional payment → post-commit notification.
//
// Error taxonomy: domain.ErrInvalidArgument for malformed input,
// domain.ErrNotFound for missing vehicle/client, domain.ErrConflict when the
// range is unavailable (pre-check or commit-time), domain.ErrPersistence for
// storage failures (transaction already rolled back).
func (s *BookingService) Create(ctx context.Context, in CreateBookingInput) (BookingResult, error) {
	requested, err := domain.NewDateRange(in.Start, in.End)
	if err != nil {
		return BookingResult{}, fmt.Errorf("service.BookingService.Create: %w", err)
	}
	if requested.IsZero() {
		return BookingResult{}, fmt.Errorf("service.BookingService.Create: %w: booking must cover at least one day",
			domain.ErrInvalidArgument)
	}

	if _, err := s.reads.Clients.GetByID(ctx, in.ClientID); err != nil {
		return BookingResult{}, fmt.Errorf("service.BookingService.Create: client: %w", err)
	}

	vehicle, err := s.reads.Vehicles.GetByID(ctx, in.VehicleID)
	if err != nil {
		return BookingResult{}, fmt.Errorf("service.BookingService.Create: vehicle: %w", err)
	}
	if !vehicle.Rentable() {
		return BookingResult{}, fmt.Errorf("service.BookingService.Create: %w: vehicle %s is %s",
			domain.ErrConflict, vehicle.ID, vehicle.Status)
	}

	candidates, err := s.reads.Bookings.ListOverlapping(ctx, in.VehicleID, requested)
	if err != nil {
		return BookingResult{}, fmt.Errorf("service.BookingService.Create: %w", err)
	}
	if !domain.IsVehicleAvailable(in.VehicleID, requested, candidates) {
		metrics.IncConflict("precheck")
		return BookingResult{}, fmt.Errorf("service.BookingService.Create: %w: vehicle not available for requested range",
			domain.ErrConflict)
	}

	total, err := s.tariff.ComputeTotal(ctx, vehicle.Type, requested)
	if err != nil {
		return BookingResult{}, fmt.Errorf("service.BookingService.Create: %w", err)
	}

	var created domain.Booking
	err = s.tx.Run(ctx, func(ctx context.Context, r repo.Repos) error {
		booking := domain.Booking{
			VehicleID:   in.VehicleID,
			ClientID:    in.ClientID,
			Range:       requested,
			Status:      domain.BookingConfirmed,
			TotalAmount: total,
			Paid:        in.Payment != nil,
			Pickup:      in.Pickup,
			Dropoff:     in.Dropoff,
			Notes:       in.Notes,
		}

		// If a concurrent request won the same range, this insert trips the
		// exclusion constraint and the whole scope rolls back.
		created, err = r.Bookings.Create(ctx, booking)
		if err != nil {
			return err
		}

		// Vehicle state is loaded and mutated inside the scope so the flip
		// commits or rolls back with the booking.
		v, err := r.Vehicles.GetByID(ctx, in.VehicleID)
		if err != nil {
			return err
		}
		if err := v.MarkRented(); err != nil {
			return err
		}
		if _, err := r.Vehicles.Update(ctx, v); err != nil {
			return err
		}

		if in.Payment != nil {
			_, err := r.Payments.Create(ctx, domain.Payment{
				BookingID: created.ID,
				Amount:    total,
				Method:    in.Payment.Method,
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			metrics.IncConflict("commit")
		}
		return BookingResult{}, fmt.Errorf("service.BookingService.Create: %w", err)
	}

	metrics.IncAdmitted()
	result := BookingResult{Booking: created}
	if err := s.notifier.BookingCreated(ctx, created); err != nil {
		// Post-commit side effects never fail a committed booking.
		s.log.WarnContext(ctx, "booking created but notification failed",
			"booking_id", created.ID, "error", err)
		result.Warnings = append(result.Warnings, "notification failed: "+err.Error())
	}
	return result, nil
}

// Cancel transitions a booking to cancelled and, when no other active
// booking covers the current instant, releases the vehicle back to
// available, all within one transaction.
//
// Returns domain.ErrNotFound for an unknown booking and
// domain.ErrInvalidOperation when the booking is already terminal.
func (s *BookingService) Cancel(ctx context.Context, bookingID uuid.UUID) (BookingResult, error) {
	var cancelled domain.Booking
	err := s.tx.Run(ctx, func(ctx context.Context, r repo.Repos) error {
		booking, err := r.Bookings.GetByID(ctx, bookingID)
		if err != nil {
			return err
		}
		if err := booking.Cancel(); err != nil {
			return err
		}
		cancelled, err = r.Bookings.Update(ctx, booking)
		if err != nil {
			return err
		}
		return s.releaseVehicleIfIdle(ctx, r, booking.VehicleID)
	})
	if err != nil {
		return BookingResult{}, fmt.Errorf("service.BookingService.Cancel: %w", err)
	}

	metrics.IncClosed(string(domain.BookingCancelled))
	result := BookingResult{Booking: cancelled}
	if err := s.notifier.BookingCancelled(ctx, cancelled); err != nil {
		s.log.WarnContext(ctx, "booking cancelled but notification failed",
			"booking_id", cancelled.ID, "error", err)
		result.Warnings = append(result.Warnings, "notification failed: "+err.Error())
	}
	return result, nil
}

// Complete closes a confirmed booking on vehicle return, records the new
// odometer reading, and releases the vehicle unless another active booking
// holds it, all within one transaction.
//
// Returns domain.ErrInvalidOperation unless the booking is confirmed, and
// domain.ErrInvalidArgument when the odometer runs backwards.
func (s *BookingService) Complete(ctx context.Context, bookingID uuid.UUID, details ReturnDetails) (BookingResult, error) {
	var completed domain.Booking
	err := s.tx.Run(ctx, func(ctx context.Context, r repo.Repos) error {
		booking, err := r.Bookings.GetByID(ctx, bookingID)
		if err != nil {
			return err
		}
		if err := booking.Complete(); err != nil {
			return err
		}
		if details.Notes != "" {
			booking.Notes = appendNote(booking.Notes, details.Notes)
		}
		completed, err = r.Bookings.Update(ctx, booking)
		if err != nil {
			return err
		}

		vehicle, err := r.Vehicles.GetByID(ctx, booking.VehicleID)
		if err != nil {
			return err
		}
		if err := vehicle.RecordReturn(details.Mileage); err != nil {
			return err
		}
		// The odometer is recorded unconditionally, but the vehicle is only
		// released when no other active booking covers the current instant
		// (an abutting booking may already hold it).
		held, err := s.vehicleHeldNow(ctx, r, booking.VehicleID)
		if err != nil {
			return err
		}
		if !held && vehicle.Status == domain.VehicleRented {
			if err := vehicle.MarkAvailable(); err != nil {
				return err
			}
		}
		_, err = r.Vehicles.Update(ctx, vehicle)
		return err
	})
	if err != nil {
		return BookingResult{}, fmt.Errorf("service.BookingService.Complete: %w", err)
	}

	metrics.IncClosed(string(domain.BookingCompleted))
	result := BookingResult{Booking: completed}
	if err := s.notifier.BookingCompleted(ctx, completed); err != nil {
		s.log.WarnContext(ctx, "booking completed but notification failed",
			"booking_id", completed.ID, "error", err)
		result.Warnings = append(result.Warnings, "notification failed: "+err.Error())
	}
	return result, nil
}

// MarkNoShow administratively closes a confirmed booking whose client never
// showed up, releasing the vehicle when nothing else holds it.
func (s *BookingService) MarkNoShow(ctx context.Context, bookingID uuid.UUID) (domain.Booking, error) {
	var closed domain.Booking
	err := s.tx.Run(ctx, func(ctx context.Context, r repo.Repos) error {
		booking, err := r.Bookings.GetByID(ctx, bookingID)
		if err != nil {
			return err
		}
		if err := booking.MarkNoShow(); err != nil {
			return err
		}
		closed, err = r.Bookings.Update(ctx, booking)
		if err != nil {
			return err
		}
		return s.releaseVehicleIfIdle(ctx, r, booking.VehicleID)
	})
	if err != nil {
		return domain.Booking{}, fmt.Errorf("service.BookingService.MarkNoShow: %w", err)
	}

	metrics.IncClosed(string(domain.BookingNoShow))
	return closed, nil
}

// GetByID returns a single booking.
func (s *BookingService) GetByID(ctx context.Context, id uuid.UUID) (domain.Booking, error) {
	booking, err := s.reads.Bookings.GetByID(ctx, id)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("service.BookingService.GetByID: %w", err)
	}
	return booking, nil
}

// ListPaged returns one page of bookings plus the total count.
// Always returns a non-nil slice so callers can safely range over it.
func (s *BookingService) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Booking, int64, error) {
	bookings, total, err := s.reads.Bookings.ListPaged(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.BookingService.ListPaged: %w", err)
	}
	if bookings == nil {
		bookings = []domain.Booking{}
	}
	return bookings, total, nil
}

// releaseVehicleIfIdle flips a rented vehicle back to available unless some
// other active booking covers the current instant. Runs inside the caller's
// transaction; the closed booking must already be persisted as terminal so
// it does not count against itself.
func (s *BookingService) releaseVehicleIfIdle(ctx context.Context, r repo.Repos, vehicleID uuid.UUID) error {
	held, err := s.vehicleHeldNow(ctx, r, vehicleID)
	if err != nil {
		return err
	}
	if held {
		return nil // someone else is holding the vehicle right now
	}

	vehicle, err := r.Vehicles.GetByID(ctx, vehicleID)
	if err != nil {
		return err
	}
	if vehicle.Status != domain.VehicleRented {
		return nil // maintenance and out-of-service states stay untouched
	}
	if err := vehicle.MarkAvailable(); err != nil {
		return err
	}
	_, err = r.Vehicles.Update(ctx, vehicle)
	return err
}

// vehicleHeldNow reports whether any active booking for the vehicle covers
// the current instant. The booking being closed must already be persisted as
// terminal so it does not count against itself.
func (s *BookingService) vehicleHeldNow(ctx context.Context, r repo.Repos, vehicleID uuid.UUID) (bool, error) {
	actives, err := r.Bookings.ListActiveByVehicle(ctx, vehicleID)
	if err != nil {
		return false, err
	}
	now := s.Now()
	for _, b := range actives {
		if b.Range.Contains(now) {
			return true, nil
		}
	}
	return false, nil
}

// appendNote joins booking notes with a separator, avoiding a leading one.
func appendNote(existing, extra string) string {
	if existing == "" {
		return extra
	}
	return existing + "\n" + extra
}
