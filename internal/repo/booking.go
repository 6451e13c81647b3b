package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/drivebase/rental/internal/domain"
)

// BookingRepo defines the persistence operations for bookings.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type BookingRepo interface {
	// Create inserts a new booking and returns the persisted record (with
	// DB-generated id, created_at, and updated_at populated).
	// Returns domain.ErrConflict when the insert trips the no-overlap
	// exclusion constraint for active bookings, the commit-time
	// availability backstop.
	Create(ctx context.Context, booking domain.Booking) (domain.Booking, error)

	// GetByID retrieves a single booking by its UUID primary key.
	// Returns domain.ErrNotFound if no booking with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Booking, error)

	// ListOverlapping returns the bookings for vehicleID whose range
	// overlaps r under half-open semantics, regardless of status. It may
	// over-fetch but never under-fetches an active booking for the vehicle;
	// status filtering is the availability checker's job.
	ListOverlapping(ctx context.Context, vehicleID uuid.UUID, r domain.DateRange) ([]domain.Booking, error)

	// ListActiveByVehicle returns all pending/confirmed bookings for a vehicle.
	ListActiveByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]domain.Booking, error)

	// ListPaged returns bookings ordered by start date descending, with the
	// total row count for pagination.
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Booking, int64, error)

	// Update overwrites the mutable fields of an existing booking and
	// returns the updated record. Returns domain.ErrNotFound if absent.
	Update(ctx context.Context, booking domain.Booking) (domain.Booking, error)

	// Count returns the total number of bookings on file.
	Count(ctx context.Context) (int64, error)
}

// pgBookingRepo is the Postgres implementation of BookingRepo.
type pgBookingRepo struct {
	db db
}

// NewBookingRepo constructs a BookingRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; inside a unit of work or in tests pass a
// pgx.Tx.
func NewBookingRepo(db db) BookingRepo {
	return &pgBookingRepo{db: db}
}

const bookingColumns = `id, vehicle_id, client_id, start_date, end_date, status,
	total_amount::text, currency, paid, pickup, dropoff, notes, created_at, updated_at`

// Create inserts a new booking row and returns the full persisted record.
func (r *pgBookingRepo) Create(ctx context.Context, booking domain.Booking) (domain.Booking, error) {
	const q = `
		INSERT INTO bookings (vehicle_id, client_id, start_date, end_date, status,
		                      total_amount, currency, paid, pickup, dropoff, notes)
		VALUES (@vehicle_id, @client_id, @start_date, @end_date, @status,
		        @total_amount, @currency, @paid, @pickup, @dropoff, @notes)
		RETURNING ` + bookingColumns

	args := pgx.NamedArgs{
		"vehicle_id":   booking.VehicleID,
		"client_id":    booking.ClientID,
		"start_date":   booking.Range.Start,
		"end_date":     booking.Range.End,
		"status":       string(booking.Status),
		"total_amount": booking.TotalAmount.Amount,
		"currency":     booking.TotalAmount.Currency,
		"paid":         booking.Paid,
		"pickup":       booking.Pickup,
		"dropoff":      booking.Dropoff,
		"notes":        booking.Notes,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanBooking(row)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("repo.BookingRepo.Create: %w", translateConstraint(err))
	}
	return result, nil
}

// GetByID retrieves a booking by primary key.
func (r *pgBookingRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Booking, error) {
	const q = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanBooking(row)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("repo.BookingRepo.GetByID: %w", err)
	}
	return result, nil
}

// ListOverlapping returns candidate bookings for an availability check.
// The predicate start_date < @end AND end_date > @start is the SQL encoding
// of the same half-open overlap DateRange.Overlaps computes in memory.
func (r *pgBookingRepo) ListOverlapping(ctx context.Context, vehicleID uuid.UUID, dr domain.DateRange) ([]domain.Booking, error) {
	const q = `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE vehicle_id = @vehicle_id
		  AND start_date < @end_date
		  AND end_date > @start_date
		ORDER BY start_date`

	args := pgx.NamedArgs{
		"vehicle_id": vehicleID,
		"start_date": dr.Start,
		"end_date":   dr.End,
	}

	bookings, err := r.queryBookings(ctx, q, args)
	if err != nil {
		return nil, fmt.Errorf("repo.BookingRepo.ListOverlapping: %w", err)
	}
	return bookings, nil
}

// ListActiveByVehicle returns all pending/confirmed bookings for a vehicle.
func (r *pgBookingRepo) ListActiveByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]domain.Booking, error) {
	const q = `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE vehicle_id = @vehicle_id
		  AND status IN ('pending', 'confirmed')
		ORDER BY start_date`

	bookings, err := r.queryBookings(ctx, q, pgx.NamedArgs{"vehicle_id": vehicleID})
	if err != nil {
		return nil, fmt.Errorf("repo.BookingRepo.ListActiveByVehicle: %w", err)
	}
	return bookings, nil
}

// ListPaged returns one page of bookings, most recent start date first,
// plus the total row count.
func (r *pgBookingRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Booking, int64, error) {
	const q = `
		SELECT ` + bookingColumns + `
		FROM bookings
		ORDER BY start_date DESC, created_at DESC
		LIMIT @limit OFFSET @offset`

	bookings, err := r.queryBookings(ctx, q, pgx.NamedArgs{"limit": p.Limit, "offset": p.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.BookingRepo.ListPaged: %w", err)
	}

	total, err := r.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.BookingRepo.ListPaged: %w", err)
	}
	return bookings, total, nil
}

// Update overwrites the mutable fields of a booking and returns the updated record.
func (r *pgBookingRepo) Update(ctx context.Context, booking domain.Booking) (domain.Booking, error) {
	const q = `
		UPDATE bookings
		SET status     = @status,
		    paid       = @paid,
		    notes      = @notes,
		    updated_at = now()
		WHERE id = @id
		RETURNING ` + bookingColumns

	args := pgx.NamedArgs{
		"id":     booking.ID,
		"status": string(booking.Status),
		"paid":   booking.Paid,
		"notes":  booking.Notes,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanBooking(row)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("repo.BookingRepo.Update: %w", translateConstraint(err))
	}
	return result, nil
}

// Count returns the total number of bookings.
func (r *pgBookingRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM bookings`).Scan(&n); err != nil {
		return 0, fmt.Errorf("repo.BookingRepo.Count: %w", err)
	}
	return n, nil
}

// queryBookings runs a multi-row booking query and scans the results.
func (r *pgBookingRepo) queryBookings(ctx context.Context, q string, args pgx.NamedArgs) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return bookings, nil
}

// scanBooking maps a single database row into a domain.Booking.
// The money amount travels as text (numeric::text in every SELECT) and is
// parsed into a decimal here, so no float ever touches it.
func scanBooking(s scanner) (domain.Booking, error) {
	var (
		b         domain.Booking
		id        pgtype.UUID
		vehicleID pgtype.UUID
		clientID  pgtype.UUID
		start     pgtype.Date
		end       pgtype.Date
		status    string
		amount    string
	)

	err := s.Scan(&id, &vehicleID, &clientID, &start, &end, &status,
		&amount, &b.TotalAmount.Currency, &b.Paid, &b.Pickup, &b.Dropoff, &b.Notes,
		&b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Booking{}, domain.ErrNotFound
		}
		return domain.Booking{}, err
	}

	b.ID = uuid.UUID(id.Bytes)
	b.VehicleID = uuid.UUID(vehicleID.Bytes)
	b.ClientID = uuid.UUID(clientID.Bytes)
	b.Status = domain.BookingStatus(status)
	b.Range = domain.DateRange{Start: start.Time.UTC(), End: end.Time.UTC()}

	b.TotalAmount.Amount, err = decimal.NewFromString(amount)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("parse amount %q: %w", amount, err)
	}

	return b, nil
}
