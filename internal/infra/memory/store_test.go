//go:build unit

package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"lounge-scheduler/internal/domain/booking"
	"lounge-scheduler/internal/domain/machine"
	"lounge-scheduler/internal/domain/notification"
	"lounge-scheduler/internal/domain/timewindow"
	"lounge-scheduler/internal/infra"
	"lounge-scheduler/internal/infra/memory"
	"lounge-scheduler/internal/usecase/shared"
	"lounge-scheduler/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	ctx := context.Background()

	t.Run("failed transaction leaves nothing behind", func(t *testing.T) {
		store := memory.NewStore(nil)
		m := builder.NewMachineBuilder().BuildReconstructed()
		boom := errors.New("boom")

		err := store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			require.NoError(t, tx.Machines().Create(ctx, m))
			return boom
		})
		require.ErrorIs(t, err, boom)

		err = store.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
			_, err := tx.Machines().Get(ctx, m.ID())
			return err
		})
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("committed writes are visible and isolated from callers", func(t *testing.T) {
		store := memory.NewStore(nil)
		m := builder.NewMachineBuilder().BuildReconstructed()

		require.NoError(t, store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Machines().Create(ctx, m)
		}))
		// mutating the caller's copy must not leak into the store
		require.NoError(t, m.Transition(machine.EventEnterMaintenance, time.Now()))

		got, err := shared.RunReadOnly(ctx, store, func(ctx context.Context, tx shared.Tx) (*machine.Machine, error) {
			return tx.Machines().Get(ctx, m.ID())
		})
		require.NoError(t, err)
		assert.Equal(t, machine.StateAvailable, got.State())
	})

	t.Run("read-only transaction rejects writes", func(t *testing.T) {
		store := memory.NewStore(nil)
		err := store.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Machines().Create(ctx, builder.NewMachineBuilder().BuildReconstructed())
		})
		assert.True(t, infra.IsKind(err, infra.KindReadOnly))
	})

	t.Run("bookings require a known machine", func(t *testing.T) {
		store := memory.NewStore(nil)
		err := store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Bookings().Create(ctx, builder.NewBookingBuilder().BuildReconstructed())
		})
		assert.True(t, infra.IsKind(err, infra.KindForeignKeyViolated))
	})

	t.Run("booking queries", func(t *testing.T) {
		store := memory.NewStore(nil)
		m := builder.NewMachineBuilder().BuildReconstructed()
		day := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)
		mk := func(h int, cancelled bool) *builder.BookingBuilder {
			return builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
				b.MachineID = m.ID()
				b.Start = day.Add(time.Duration(h) * time.Hour)
				b.End = b.Start.Add(time.Hour)
				if cancelled {
					b.Status = booking.StatusCancelled
				}
			})
		}
		late, early, cancelled := mk(14, false).BuildReconstructed(), mk(10, false).BuildReconstructed(), mk(12, true).BuildReconstructed()

		require.NoError(t, store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			if err := tx.Machines().Create(ctx, m); err != nil {
				return err
			}
			if err := tx.Bookings().Create(ctx, late); err != nil {
				return err
			}
			if err := tx.Bookings().Create(ctx, early); err != nil {
				return err
			}
			return tx.Bookings().Create(ctx, cancelled)
		}))

		require.NoError(t, store.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
			committed, err := tx.Bookings().ListCommitted(ctx, m.ID(), time.Time{})
			require.NoError(t, err)
			require.Len(t, committed, 2)
			assert.Equal(t, early.ID(), committed[0].ID())
			assert.Equal(t, late.ID(), committed[1].ID())

			after, err := tx.Bookings().ListCommitted(ctx, m.ID(), day.Add(11*time.Hour))
			require.NoError(t, err)
			require.Len(t, after, 1)
			assert.Equal(t, late.ID(), after[0].ID())

			all, err := tx.Bookings().ListByMachine(ctx, m.ID())
			require.NoError(t, err)
			assert.Len(t, all, 3)

			within, err := tx.Bookings().ListStartingWithin(ctx, timewindow.MustNew(day.Add(11*time.Hour), day.Add(15*time.Hour)))
			require.NoError(t, err)
			assert.Len(t, within, 2)
			return nil
		}))
	})

	t.Run("notifications delete by subject and type", func(t *testing.T) {
		store := memory.NewStore(nil)
		subject, other := uuid.New(), uuid.New()
		now := time.Now()

		require.NoError(t, store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			for _, n := range []*notification.Notification{
				notification.NewNotification(notification.TypeRenewal, notification.SeverityWarning, subject, "kai", "renew", now),
				notification.NewNotification(notification.TypeExpired, notification.SeverityCritical, subject, "kai", "expired", now),
				notification.NewNotification(notification.TypeRenewal, notification.SeverityWarning, other, "rin", "renew", now),
			} {
				if err := tx.Notifications().Create(ctx, n); err != nil {
					return err
				}
			}
			return nil
		}))

		deleted, err := shared.RunInTx(ctx, store, func(ctx context.Context, tx shared.Tx) (int64, error) {
			return tx.Notifications().DeleteBySubject(ctx, subject, notification.TypeRenewal)
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), deleted)

		remaining, err := shared.RunReadOnly(ctx, store, func(ctx context.Context, tx shared.Tx) ([]*notification.Notification, error) {
			return tx.Notifications().ListBySubject(ctx, subject)
		})
		require.NoError(t, err)
		require.Len(t, remaining, 1)
		assert.Equal(t, notification.TypeExpired, remaining[0].Type())
	})

	t.Run("cancelled context aborts before running", func(t *testing.T) {
		store := memory.NewStore(nil)
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		called := false
		err := store.Within(cctx, func(context.Context, shared.Tx) error {
			called = true
			return nil
		})
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, called)
	})
}
