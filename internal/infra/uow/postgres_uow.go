package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"lounge-scheduler/internal/infra/repository"
	"lounge-scheduler/internal/pkg/errs"
	"lounge-scheduler/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
	pgErrCodeReadOnlyTransaction  = "25006"
)

const (
	maxRetries  = 3
	backoffBase = 100 * time.Millisecond
)

type PostgresUoW struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewPostgresUoW(pool *pgxpool.Pool, logger *slog.Logger) shared.UnitOfWork {
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresUoW{
		pool:   pool,
		logger: logger,
	}
}

// ReadCommitted is enough here: admissions lock the machine row first, and
// the exclusion constraint rejects whatever slips past the lock.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}, fn)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, shared.ErrTransactionBegin)
		}

		err = fn(ctx, newPgTx(pgxTx, u.logger))
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, shared.ErrTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				u.logger.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt) {
			if attempt == maxRetries && isRetryableError(err) {
				u.logger.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, shared.ErrMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, backoffBase)

		u.logger.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return shared.ErrMaxRetriesExceeded
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, shared.ErrTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				u.logger.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, newPgTx(pgxTx, u.logger)); err != nil {
		if isReadOnlyViolation(err) {
			return errs.Mark(err, shared.ErrReadOnly)
		}
		return err
	}

	return pgxTx.Commit(ctx)
}

func shouldRetry(err error, attempt int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- high bit masked above
	return int64(uval) % n
}

func pgErrCode(err error) string {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return ""
	}
	return pgErr.Code
}

func isRetryableError(err error) bool {
	switch pgErrCode(err) {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

func isReadOnlyViolation(err error) bool {
	return pgErrCode(err) == pgErrCodeReadOnlyTransaction
}

// pgTx hands out repositories bound to one pgx transaction, created on first use.
type pgTx struct {
	dbtx   repository.DBTX
	logger *slog.Logger

	machineRepo      shared.MachineRepository
	bookingRepo      shared.BookingRepository
	subscriptionRepo shared.SubscriptionRepository
	offerRepo        shared.OfferRepository
	notificationRepo shared.NotificationRepository
}

func newPgTx(dbtx repository.DBTX, logger *slog.Logger) *pgTx {
	return &pgTx{dbtx: dbtx, logger: logger}
}

func (t *pgTx) Machines() shared.MachineRepository {
	if t.machineRepo == nil {
		t.machineRepo = repository.NewMachineRepository(t.dbtx, t.logger)
	}
	return t.machineRepo
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository(t.dbtx, t.logger)
	}
	return t.bookingRepo
}

func (t *pgTx) Subscriptions() shared.SubscriptionRepository {
	if t.subscriptionRepo == nil {
		t.subscriptionRepo = repository.NewSubscriptionRepository(t.dbtx, t.logger)
	}
	return t.subscriptionRepo
}

func (t *pgTx) Offers() shared.OfferRepository {
	if t.offerRepo == nil {
		t.offerRepo = repository.NewOfferRepository(t.dbtx, t.logger)
	}
	return t.offerRepo
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notificationRepo == nil {
		t.notificationRepo = repository.NewNotificationRepository(t.dbtx, t.logger)
	}
	return t.notificationRepo
}
