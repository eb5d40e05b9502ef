package shared

import (
	"context"

	"lounge-scheduler/internal/pkg/errs"
)

var (
	ErrTransactionBegin   = errs.New("failed to begin transaction")
	ErrTransactionCommit  = errs.New("failed to commit transaction")
	ErrMaxRetriesExceeded = errs.New("transaction failed after max retries")
	ErrReadOnly           = errs.New("write attempted in read-only transaction")
)

// RunInTx runs fn in a read-write unit of work and returns its result once committed.
func RunInTx[T any](ctx context.Context, uow UnitOfWork, fn func(ctx context.Context, tx Tx) (T, error)) (T, error) {
	var result T
	err := uow.Within(ctx, func(ctx context.Context, tx Tx) error {
		var err error
		result, err = fn(ctx, tx)
		return err
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}

// RunReadOnly is RunInTx over a read-only snapshot.
func RunReadOnly[T any](ctx context.Context, uow UnitOfWork, fn func(ctx context.Context, tx Tx) (T, error)) (T, error) {
	var result T
	err := uow.WithinReadOnly(ctx, func(ctx context.Context, tx Tx) error {
		var err error
		result, err = fn(ctx, tx)
		return err
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}
