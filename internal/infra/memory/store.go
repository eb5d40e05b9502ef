// Package memory is an in-process persistence backend. Write transactions
// stage changes on a copy of the committed state and publish it atomically on
// success, so a failed transaction leaves nothing behind.
package memory

import (
	"context"
	"log/slog"
	"maps"
	"sync"

	"lounge-scheduler/internal/domain/booking"
	"lounge-scheduler/internal/domain/machine"
	"lounge-scheduler/internal/domain/notification"
	"lounge-scheduler/internal/domain/offer"
	"lounge-scheduler/internal/domain/subscription"
	"lounge-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

// Stored entities are never mutated in place: repositories store and return clones.
type state struct {
	machines      map[uuid.UUID]*machine.Machine
	bookings      map[uuid.UUID]*booking.Booking
	subscriptions map[uuid.UUID]*subscription.Subscription
	offers        map[uuid.UUID]*offer.Offer
	notifications map[uuid.UUID]*notification.Notification
}

func newState() *state {
	return &state{
		machines:      map[uuid.UUID]*machine.Machine{},
		bookings:      map[uuid.UUID]*booking.Booking{},
		subscriptions: map[uuid.UUID]*subscription.Subscription{},
		offers:        map[uuid.UUID]*offer.Offer{},
		notifications: map[uuid.UUID]*notification.Notification{},
	}
}

func (s *state) clone() *state {
	return &state{
		machines:      maps.Clone(s.machines),
		bookings:      maps.Clone(s.bookings),
		subscriptions: maps.Clone(s.subscriptions),
		offers:        maps.Clone(s.offers),
		notifications: maps.Clone(s.notifications),
	}
}

type Store struct {
	// writeMu serialises write transactions; mu guards the committed pointer.
	writeMu sync.Mutex
	mu      sync.RWMutex
	current *state
	logger  *slog.Logger
}

func NewStore(logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{current: newState(), logger: logger}
}

func NewUoW(store *Store) shared.UnitOfWork {
	return store
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.RLock()
	staged := s.current.clone()
	s.mu.RUnlock()

	if err := fn(ctx, &memTx{st: staged, logger: s.logger}); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	s.current = staged
	s.mu.Unlock()
	return nil
}

func (s *Store) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	snapshot := s.current
	s.mu.RUnlock()

	// committed states are never modified after publication
	return fn(ctx, &memTx{st: snapshot, readOnly: true, logger: s.logger})
}

type memTx struct {
	st       *state
	readOnly bool
	logger   *slog.Logger
}

func (t *memTx) Machines() shared.MachineRepository {
	return &machineRepo{tx: t}
}

func (t *memTx) Bookings() shared.BookingRepository {
	return &bookingRepo{tx: t}
}

func (t *memTx) Subscriptions() shared.SubscriptionRepository {
	return &subscriptionRepo{tx: t}
}

func (t *memTx) Offers() shared.OfferRepository {
	return &offerRepo{tx: t}
}

func (t *memTx) Notifications() shared.NotificationRepository {
	return &notificationRepo{tx: t}
}
