package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/drivebase/rental/internal/domain"
)

// Repos bundles the repositories bound to a single transaction. Every
// operation issued through these repos commits or rolls back together.
type Repos struct {
	Bookings BookingRepo
	Vehicles VehicleRepo
	Clients  ClientRepo
	Payments PaymentRepo
}

// NewRepos constructs a repo bundle over one db handle (pool or transaction).
func NewRepos(db db) Repos {
	return Repos{
		Bookings: NewBookingRepo(db),
		Vehicles: NewVehicleRepo(db),
		Clients:  NewClientRepo(db),
		Payments: NewPaymentRepo(db),
	}
}

// TxManager runs a unit of work inside a single database transaction.
// The service layer depends on this interface so its atomicity behaviour can
// be unit-tested without Postgres.
type TxManager interface {
	// Run begins a transaction, hands fn a repo bundle bound to it, and
	// commits when fn returns nil. Any error or panic from fn rolls the
	// whole transaction back before propagating; no partial state is ever
	// observable and the transaction handle is released on every exit path.
	//
	// The scope is flat: calling Run from inside fn fails with
	// domain.ErrInvalidOperation instead of silently nesting.
	Run(ctx context.Context, fn func(ctx context.Context, r Repos) error) error
}

// beginner is the subset of *pgxpool.Pool (and *pgx.Conn) the transaction
// manager needs.
type beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// PgxTxManager is the Postgres implementation of TxManager.
// Each Run call owns its transaction exclusively: the handle is never
// shared across concurrent logical operations, and repositories are
// constructed fresh against it rather than captured in any ambient state.
type PgxTxManager struct {
	db beginner
}

// NewTxManager constructs a TxManager over the given pool.
func NewTxManager(db beginner) *PgxTxManager {
	return &PgxTxManager{db: db}
}

// txMarker flags a context as already inside a Run scope.
type txMarker struct{}

// Run implements TxManager.
func (m *PgxTxManager) Run(ctx context.Context, fn func(ctx context.Context, r Repos) error) error {
	if ctx.Value(txMarker{}) != nil {
		return fmt.Errorf("repo.TxManager.Run: %w: nested transactions are not supported", domain.ErrInvalidOperation)
	}

	tx, err := m.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("repo.TxManager.Run: begin: %w: %v", domain.ErrPersistence, err)
	}

	// Rollback after a successful commit is a no-op; keeping it in a defer
	// guarantees the handle is released even when fn panics.
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if err := fn(context.WithValue(ctx, txMarker{}, txMarker{}), NewRepos(tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			return fmt.Errorf("repo.TxManager.Run: rollback after %q: %w: %v", err, domain.ErrPersistence, rbErr)
		}
		return classify(err)
	}

	if err := tx.Commit(ctx); err != nil {
		// A deferred constraint can still fire here; the no-overlap
		// exclusion must surface as the same conflict the pre-check reports.
		if translated := translateConstraint(err); translated != err { //nolint:errorlint // identity check: translateConstraint returns err unchanged when no mapping applies
			return fmt.Errorf("repo.TxManager.Run: commit: %w", translated)
		}
		return fmt.Errorf("repo.TxManager.Run: commit: %w: %v", domain.ErrPersistence, err)
	}
	return nil
}

// classify keeps domain sentinels flowing through untouched and folds every
// other failure inside the transaction into the persistence bucket; the
// transaction has already been rolled back by the time the caller sees it.
func classify(err error) error {
	for _, sentinel := range []error{
		domain.ErrInvalidArgument,
		domain.ErrConflict,
		domain.ErrNotFound,
		domain.ErrInvalidOperation,
		domain.ErrPersistence,
	} {
		if errors.Is(err, sentinel) {
			return err
		}
	}
	return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
}
