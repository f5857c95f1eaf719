package uow

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"netcafe-booking/internal/infra"
	"netcafe-booking/internal/infra/repository"
	"netcafe-booking/internal/pkg/errs"
	"netcafe-booking/internal/usecase/shared"
)

const (
	maxRetries     = 3
	initialBackoff = 10 * time.Millisecond
)

type PostgresUnitOfWork struct {
	pool *pgxpool.Pool
}

func NewPostgresUnitOfWork(pool *pgxpool.Pool) *PostgresUnitOfWork {
	return &PostgresUnitOfWork{pool: pool}
}

// Within runs fn in a transaction, retrying the whole function on
// serialization failures with exponential backoff.
func (u *PostgresUnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	backoff := initialBackoff

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return errs.Wrap(ctx.Err(), "transaction retry aborted")
			case <-time.After(backoff):
			}
			backoff *= 2
		}

		lastErr = u.runInTx(ctx, fn)
		if lastErr == nil || !infra.IsRetryable(lastErr) {
			return lastErr
		}
	}
	return errs.Wrap(lastErr, "transaction retries exhausted")
}

func (u *PostgresUnitOfWork) runInTx(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.Begin(ctx)
	if err != nil {
		return errs.Wrap(err, "failed to begin transaction")
	}
	defer func() {
		_ = pgxTx.Rollback(ctx)
	}()

	if err := fn(ctx, newTx(pgxTx)); err != nil {
		return err
	}

	if err := pgxTx.Commit(ctx); err != nil {
		return infra.WrapDBError("failed to commit transaction", err)
	}
	return nil
}

type tx struct {
	reservations shared.ReservationRepository
	pcs          shared.PCRepository
	rooms        shared.RoomRepository
	ratings      shared.RatingRepository
	reports      shared.ReportRepository
}

func newTx(pgxTx pgx.Tx) *tx {
	return &tx{
		reservations: repository.NewReservationRepository(pgxTx),
		pcs:          repository.NewPCRepository(pgxTx),
		rooms:        repository.NewRoomRepository(pgxTx),
		ratings:      repository.NewRatingRepository(pgxTx),
		reports:      repository.NewReportRepository(pgxTx),
	}
}

func (t *tx) Reservations() shared.ReservationRepository { return t.reservations }
func (t *tx) PCs() shared.PCRepository                   { return t.pcs }
func (t *tx) Rooms() shared.RoomRepository               { return t.rooms }
func (t *tx) Ratings() shared.RatingRepository           { return t.ratings }
func (t *tx) Reports() shared.ReportRepository           { return t.reports }
