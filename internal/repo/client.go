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

// ClientRepo defines the persistence operations for clients. Minimal by
// design: the booking core only ever creates clients and checks they exist.
type ClientRepo interface {
	// Create inserts a new client and returns the persisted record.
	// Returns domain.ErrConflict when the email is already registered.
	Create(ctx context.Context, client domain.Client) (domain.Client, error)

	// GetByID retrieves a single client by its UUID primary key.
	// Returns domain.ErrNotFound if no client with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Client, error)
}

// pgClientRepo is the Postgres implementation of ClientRepo.
type pgClientRepo struct {
	db db
}

// NewClientRepo constructs a ClientRepo backed by the provided db connection.
func NewClientRepo(db db) ClientRepo {
	return &pgClientRepo{db: db}
}

const clientColumns = `id, name, email, phone, licence_no, created_at, updated_at`

// Create inserts a new client row and returns the full persisted record.
func (r *pgClientRepo) Create(ctx context.Context, client domain.Client) (domain.Client, error) {
	const q = `
		INSERT INTO clients (name, email, phone, licence_no)
		VALUES (@name, @email, @phone, @licence_no)
		RETURNING ` + clientColumns

	args := pgx.NamedArgs{
		"name":       client.Name,
		"email":      client.Email,
		"phone":      client.Phone,
		"licence_no": client.LicenceNo,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanClient(row)
	if err != nil {
		return domain.Client{}, fmt.Errorf("repo.ClientRepo.Create: %w", translateConstraint(err))
	}
	return result, nil
}

// GetByID retrieves a client by primary key.
func (r *pgClientRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Client, error) {
	const q = `SELECT ` + clientColumns + ` FROM clients WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanClient(row)
	if err != nil {
		return domain.Client{}, fmt.Errorf("repo.ClientRepo.GetByID: %w", err)
	}
	return result, nil
}

// scanClient maps a single database row into a domain.Client.
func scanClient(s scanner) (domain.Client, error) {
	var (
		c  domain.Client
		id pgtype.UUID
	)

	err := s.Scan(&id, &c.Name, &c.Email, &c.Phone, &c.LicenceNo, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Client{}, domain.ErrNotFound
		}
		return domain.Client{}, err
	}

	c.ID = uuid.UUID(id.Bytes)
	return c, nil
}
