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

// PaymentRepo defines the persistence operations for payments. Payments are
// append-only: they are written inside the booking transaction and never
// updated or deleted by the core.
type PaymentRepo interface {
	// Create inserts a payment row and returns the persisted record.
	Create(ctx context.Context, payment domain.Payment) (domain.Payment, error)

	// ListByBooking returns all payments recorded against a booking,
	// oldest first.
	ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]domain.Payment, error)
}

// pgPaymentRepo is the Postgres implementation of PaymentRepo.
type pgPaymentRepo struct {
	db db
}

// NewPaymentRepo constructs a PaymentRepo backed by the provided db connection.
func NewPaymentRepo(db db) PaymentRepo {
	return &pgPaymentRepo{db: db}
}

const paymentColumns = `id, booking_id, amount::text, currency, method, recorded_at`

// Create inserts a new payment row and returns the full persisted record.
func (r *pgPaymentRepo) Create(ctx context.Context, payment domain.Payment) (domain.Payment, error) {
	const q = `
		INSERT INTO payments (booking_id, amount, currency, method)
		VALUES (@booking_id, @amount, @currency, @method)
		RETURNING ` + paymentColumns

	args := pgx.NamedArgs{
		"booking_id": payment.BookingID,
		"amount":     payment.Amount.Amount,
		"currency":   payment.Amount.Currency,
		"method":     payment.Method,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanPayment(row)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("repo.PaymentRepo.Create: %w", translateConstraint(err))
	}
	return result, nil
}

// ListByBooking returns all payments for a booking, oldest first.
func (r *pgPaymentRepo) ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]domain.Payment, error) {
	const q = `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE booking_id = @booking_id
		ORDER BY recorded_at`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"booking_id": bookingID})
	if err != nil {
		return nil, fmt.Errorf("repo.PaymentRepo.ListByBooking: %w", err)
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.PaymentRepo.ListByBooking: scan: %w", err)
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.PaymentRepo.ListByBooking: rows: %w", err)
	}

	return payments, nil
}

// scanPayment maps a single database row into a domain.Payment.
func scanPayment(s scanner) (domain.Payment, error) {
	var (
		p         domain.Payment
		id        pgtype.UUID
		bookingID pgtype.UUID
		amount    string
	)

	err := s.Scan(&id, &bookingID, &amount, &p.Amount.Currency, &p.Method, &p.RecordedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Payment{}, domain.ErrNotFound
		}
		return domain.Payment{}, err
	}

	p.ID = uuid.UUID(id.Bytes)
	p.BookingID = uuid.UUID(bookingID.Bytes)

	p.Amount.Amount, err = decimal.NewFromString(amount)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("parse amount %q: %w", amount, err)
	}

	return p, nil
}
