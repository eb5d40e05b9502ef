package scheduling

import (
	"context"
	"log/slog"
	"time"

	"lounge-scheduler/internal/domain/booking"
	"lounge-scheduler/internal/domain/machine"
	"lounge-scheduler/internal/domain/offer"
	"lounge-scheduler/internal/domain/subscription"
	"lounge-scheduler/internal/domain/timewindow"
	"lounge-scheduler/internal/pkg/clock"
	"lounge-scheduler/internal/pkg/errs"
	"lounge-scheduler/internal/pkg/keylock"
	"lounge-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingRequest struct {
	MachineID      uuid.UUID
	Customer       string
	Window         timewindow.Window
	OfferID        *uuid.UUID
	SubscriptionID *uuid.UUID
}

//go:generate mockgen -destination=../../../tests/mock/scheduling/allocator.go -package=schedulingmock . Allocator

type Allocator interface {
	RegisterMachine(ctx context.Context, name string, category machine.Category) (*machine.Machine, error)
	GetMachine(ctx context.Context, id uuid.UUID) (*machine.Machine, error)
	ListMachines(ctx context.Context) ([]*machine.Machine, error)
	// TransitionMachine drives operator events (maintenance, release).
	TransitionMachine(ctx context.Context, id uuid.UUID, event machine.Event) (*machine.Machine, error)

	RequestBooking(ctx context.Context, req BookingRequest) (*booking.Booking, error)
	CancelBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	CompleteBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	BeginBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	GetBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	ListMachineBookings(ctx context.Context, machineID uuid.UUID) ([]*booking.Booking, error)
}

type allocatorImpl struct {
	uow      shared.UnitOfWork
	pricer   booking.PriceCalculator
	clock    clock.Clock
	locks    *keylock.KeyedMutex[uuid.UUID]
	observer Observer
	logger   *slog.Logger
}

func NewAllocator(
	uow shared.UnitOfWork,
	pricer booking.PriceCalculator,
	clock clock.Clock,
	observer Observer,
	logger *slog.Logger,
) Allocator {
	if observer == nil {
		observer = NopObserver{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &allocatorImpl{
		uow:      uow,
		pricer:   pricer,
		clock:    clock,
		locks:    keylock.New[uuid.UUID](),
		observer: observer,
		logger:   logger,
	}
}

// ================================================================================
// Machines
// ================================================================================

func (a *allocatorImpl) RegisterMachine(ctx context.Context, name string, category machine.Category) (*machine.Machine, error) {
	m, err := machine.NewMachine(uuid.Nil, name, category, a.clock.Now())
	if err != nil {
		return nil, err
	}
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return shared.TranslateRepoErr(tx.Machines().Create(ctx, m), "create machine")
	})
	if err != nil {
		return nil, err
	}
	a.logger.Info("machine registered", "machine_id", m.ID(), "category", m.Category())
	return m, nil
}

func (a *allocatorImpl) GetMachine(ctx context.Context, id uuid.UUID) (*machine.Machine, error) {
	return shared.RunReadOnly(ctx, a.uow, func(ctx context.Context, tx shared.Tx) (*machine.Machine, error) {
		m, err := tx.Machines().Get(ctx, id)
		return m, shared.TranslateRepoErr(err, "get machine")
	})
}

func (a *allocatorImpl) ListMachines(ctx context.Context) ([]*machine.Machine, error) {
	return shared.RunReadOnly(ctx, a.uow, func(ctx context.Context, tx shared.Tx) ([]*machine.Machine, error) {
		ms, err := tx.Machines().List(ctx)
		return ms, shared.TranslateRepoErr(err, "list machines")
	})
}

func (a *allocatorImpl) TransitionMachine(ctx context.Context, id uuid.UUID, event machine.Event) (*machine.Machine, error) {
	if !event.IsOperator() {
		return nil, errs.Mark(errs.Newf("event %q cannot be driven directly", event), errs.ErrInvalidTransition)
	}

	unlock := a.locks.Lock(id)
	defer unlock()

	m, err := shared.RunInTx(ctx, a.uow, func(ctx context.Context, tx shared.Tx) (*machine.Machine, error) {
		m, err := tx.Machines().GetForUpdate(ctx, id)
		if err != nil {
			return nil, shared.TranslateRepoErr(err, "get machine")
		}
		if err := m.Transition(event, a.clock.Now()); err != nil {
			return nil, err
		}
		return m, shared.TranslateRepoErr(tx.Machines().UpdateState(ctx, m), "update machine")
	})
	if err != nil {
		return nil, err
	}
	a.observer.MachineTransitioned(event, m.State())
	a.logger.Info("machine transitioned", "machine_id", id, "event", event, "state", m.State())
	return m, nil
}

// ================================================================================
// Bookings
// ================================================================================

// RequestBooking admits a booking if its window is free on the machine's
// committed timeline. The check and the writes share one transaction, and all
// requests for a machine are serialised.
func (a *allocatorImpl) RequestBooking(ctx context.Context, req BookingRequest) (*booking.Booking, error) {
	b, category, err := a.admit(ctx, req)
	if err != nil {
		a.observer.BookingRejected(rejectionReason(err))
		a.logger.Info("booking rejected",
			"machine_id", req.MachineID,
			"window", req.Window.String(),
			"reason", rejectionReason(err))
		return nil, err
	}
	a.observer.BookingAdmitted(category)
	a.observer.MachineTransitioned(machine.EventReserve, machine.StateBooked)
	a.logger.Info("booking admitted",
		"booking_id", b.ID(),
		"machine_id", b.MachineID(),
		"window", b.Window().String())
	return b, nil
}

func (a *allocatorImpl) admit(ctx context.Context, req BookingRequest) (*booking.Booking, machine.Category, error) {
	if req.Window.IsZero() {
		return nil, "", errs.Mark(errs.New("booking window is required"), errs.ErrInvalidWindow)
	}
	if err := req.Window.ValidateNotPastAt(a.clock.Now()); err != nil {
		return nil, "", err
	}

	unlock := a.locks.Lock(req.MachineID)
	defer unlock()

	var category machine.Category
	b, err := shared.RunInTx(ctx, a.uow, func(ctx context.Context, tx shared.Tx) (*booking.Booking, error) {
		now := a.clock.Now()

		m, err := tx.Machines().GetForUpdate(ctx, req.MachineID)
		if err != nil {
			return nil, shared.TranslateRepoErr(err, "get machine")
		}
		if !m.IsBookable() {
			return nil, errs.Mark(errs.Newf("machine %s is %s", m.ID(), m.State()), errs.ErrMachineUnavailable)
		}
		category = m.Category()

		sub, err := a.checkSubscription(ctx, tx, req, now)
		if err != nil {
			return nil, err
		}
		off, err := a.checkOffer(ctx, tx, req, sub, now)
		if err != nil {
			return nil, err
		}

		committed, err := tx.Bookings().ListCommitted(ctx, m.ID(), req.Window.Start())
		if err != nil {
			return nil, shared.TranslateRepoErr(err, "list committed bookings")
		}
		if conflict := booking.NewTimeline(committed).Conflict(req.Window); conflict != nil {
			return nil, errs.Mark(
				errs.Newf("window %s overlaps booking %s %s", req.Window, conflict.ID(), conflict.Window()),
				errs.ErrOverlap,
			)
		}

		priceCents := a.pricer.CalculatePriceCents(booking.PriceContext{MachineID: m.ID(), Category: m.Category()}, req.Window)
		if off != nil {
			priceCents = off.Discount().Apply(priceCents)
		}

		b, err := booking.NewBooking(booking.Params{
			MachineID:      m.ID(),
			Customer:       req.Customer,
			Window:         req.Window,
			Price:          booking.NewMoney(priceCents),
			OfferID:        req.OfferID,
			SubscriptionID: req.SubscriptionID,
		}, now)
		if err != nil {
			return nil, err
		}
		if err := m.Transition(machine.EventReserve, now); err != nil {
			return nil, err
		}

		if err := tx.Bookings().Create(ctx, b); err != nil {
			return nil, shared.TranslateRepoErr(err, "create booking")
		}
		if err := tx.Machines().UpdateState(ctx, m); err != nil {
			return nil, shared.TranslateRepoErr(err, "update machine")
		}
		return b, nil
	})
	return b, category, err
}

func (a *allocatorImpl) checkSubscription(ctx context.Context, tx shared.Tx, req BookingRequest, now time.Time) (*subscription.Subscription, error) {
	if req.SubscriptionID == nil {
		return nil, nil
	}
	sub, err := tx.Subscriptions().Get(ctx, *req.SubscriptionID)
	if err != nil {
		return nil, shared.TranslateRepoErr(err, "get subscription")
	}
	if !sub.IsActiveAt(now) {
		return nil, errs.Mark(errs.Newf("subscription %s expired at %s", sub.ID(), sub.ExpiresAt()), errs.ErrSubscriptionInactive)
	}
	if !sub.OwnedBy(req.Customer) {
		return nil, errs.Mark(errs.Newf("subscription %s does not belong to the customer", sub.ID()), errs.ErrSubscriptionInactive)
	}
	return sub, nil
}

func (a *allocatorImpl) checkOffer(ctx context.Context, tx shared.Tx, req BookingRequest, sub *subscription.Subscription, now time.Time) (*offer.Offer, error) {
	if req.OfferID == nil {
		return nil, nil
	}
	off, err := tx.Offers().Get(ctx, *req.OfferID)
	if err != nil {
		return nil, shared.TranslateRepoErr(err, "get offer")
	}
	if status := offer.Validate(off, now); status != offer.StatusActive {
		return nil, errs.Mark(errs.Newf("offer %s is %s", off.ID(), status), errs.ErrOfferNotActive)
	}
	membership := ""
	if sub != nil {
		membership = sub.MembershipType()
	}
	if !off.EligibleFor(membership) {
		return nil, errs.Mark(errs.Newf("offer %s requires %s membership", off.ID(), off.MembershipType()), errs.ErrOfferNotActive)
	}
	return off, nil
}

// CancelBooking frees the window. The machine returns to available only when
// no other booked bookings remain on it.
func (a *allocatorImpl) CancelBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return a.mutateBooking(ctx, id, "cancel", func(now time.Time, b *booking.Booking, m *machine.Machine, remaining []*booking.Booking) ([]machine.Event, error) {
		if err := b.Cancel(now); err != nil {
			return nil, err
		}
		if m.State() == machine.StateBooked && len(remaining) == 0 {
			return []machine.Event{machine.EventCancel}, nil
		}
		return nil, nil
	})
}

// CompleteBooking finishes the booking once its window has ended. The machine
// stays held when further bookings are queued on it.
func (a *allocatorImpl) CompleteBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return a.mutateBooking(ctx, id, "complete", func(now time.Time, b *booking.Booking, m *machine.Machine, remaining []*booking.Booking) ([]machine.Event, error) {
		if err := b.Complete(now); err != nil {
			return nil, err
		}
		events := []machine.Event{machine.EventFinish}
		if len(remaining) > 0 {
			events = append(events, machine.EventReserve)
		}
		return events, nil
	})
}

func (a *allocatorImpl) BeginBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return a.mutateBooking(ctx, id, "begin", func(now time.Time, b *booking.Booking, _ *machine.Machine, _ []*booking.Booking) ([]machine.Event, error) {
		if err := b.Begin(now); err != nil {
			return nil, err
		}
		return []machine.Event{machine.EventBegin}, nil
	})
}

type bookingMutation func(now time.Time, b *booking.Booking, m *machine.Machine, remaining []*booking.Booking) ([]machine.Event, error)

func (a *allocatorImpl) mutateBooking(ctx context.Context, id uuid.UUID, action string, mutate bookingMutation) (*booking.Booking, error) {
	current, err := a.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	machineID := current.MachineID()

	unlock := a.locks.Lock(machineID)
	defer unlock()

	var applied []machine.Event
	var final machine.State
	b, err := shared.RunInTx(ctx, a.uow, func(ctx context.Context, tx shared.Tx) (*booking.Booking, error) {
		now := a.clock.Now()
		applied = nil

		m, err := tx.Machines().GetForUpdate(ctx, machineID)
		if err != nil {
			return nil, shared.TranslateRepoErr(err, "get machine")
		}
		b, err := tx.Bookings().Get(ctx, id)
		if err != nil {
			return nil, shared.TranslateRepoErr(err, "get booking")
		}
		committed, err := tx.Bookings().ListCommitted(ctx, machineID, time.Time{})
		if err != nil {
			return nil, shared.TranslateRepoErr(err, "list committed bookings")
		}
		remaining := booking.NewTimeline(committed).Active(b)

		events, err := mutate(now, b, m, remaining)
		if err != nil {
			return nil, errs.Wrapf(err, "%s booking", action)
		}
		for _, ev := range events {
			if err := m.Transition(ev, now); err != nil {
				return nil, err
			}
			applied = append(applied, ev)
		}

		if err := tx.Bookings().Update(ctx, b); err != nil {
			return nil, shared.TranslateRepoErr(err, "update booking")
		}
		if len(events) > 0 {
			if err := tx.Machines().UpdateState(ctx, m); err != nil {
				return nil, shared.TranslateRepoErr(err, "update machine")
			}
		}
		final = m.State()
		return b, nil
	})
	if err != nil {
		return nil, err
	}

	for _, ev := range applied {
		a.observer.MachineTransitioned(ev, final)
	}
	a.logger.Info("booking updated",
		"action", action,
		"booking_id", id,
		"machine_id", machineID,
		"status", b.Status(),
		"machine_state", final)
	return b, nil
}

func (a *allocatorImpl) GetBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return shared.RunReadOnly(ctx, a.uow, func(ctx context.Context, tx shared.Tx) (*booking.Booking, error) {
		b, err := tx.Bookings().Get(ctx, id)
		return b, shared.TranslateRepoErr(err, "get booking")
	})
}

func (a *allocatorImpl) ListMachineBookings(ctx context.Context, machineID uuid.UUID) ([]*booking.Booking, error) {
	return shared.RunReadOnly(ctx, a.uow, func(ctx context.Context, tx shared.Tx) ([]*booking.Booking, error) {
		if _, err := tx.Machines().Get(ctx, machineID); err != nil {
			return nil, shared.TranslateRepoErr(err, "get machine")
		}
		bs, err := tx.Bookings().ListByMachine(ctx, machineID)
		return bs, shared.TranslateRepoErr(err, "list bookings")
	})
}
