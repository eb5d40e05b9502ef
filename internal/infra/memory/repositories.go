package memory

import (
	"context"
	"slices"
	"time"

	"lounge-scheduler/internal/domain/booking"
	"lounge-scheduler/internal/domain/machine"
	"lounge-scheduler/internal/domain/notification"
	"lounge-scheduler/internal/domain/offer"
	"lounge-scheduler/internal/domain/subscription"
	"lounge-scheduler/internal/domain/timewindow"
	"lounge-scheduler/internal/infra"
	"lounge-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

func (t *memTx) writable(what string) error {
	if t.readOnly {
		return infra.WrapRepoErr(t.logger, infra.KindReadOnly, what, shared.ErrReadOnly)
	}
	return nil
}

func (t *memTx) notFound(what string) error {
	return infra.WrapRepoErr(t.logger, infra.KindNotFound, what+" not found", nil)
}

func (t *memTx) duplicate(what string) error {
	return infra.WrapRepoErr(t.logger, infra.KindDuplicateKey, what+" already exists", nil)
}

// ================================================================================
// Machines
// ================================================================================

type machineRepo struct{ tx *memTx }

func (r *machineRepo) Create(_ context.Context, m *machine.Machine) error {
	if err := r.tx.writable("create machine"); err != nil {
		return err
	}
	if _, ok := r.tx.st.machines[m.ID()]; ok {
		return r.tx.duplicate("machine")
	}
	r.tx.st.machines[m.ID()] = m.Clone()
	return nil
}

func (r *machineRepo) Get(_ context.Context, id uuid.UUID) (*machine.Machine, error) {
	m, ok := r.tx.st.machines[id]
	if !ok {
		return nil, r.tx.notFound("machine")
	}
	return m.Clone(), nil
}

// GetForUpdate needs no row lock: write transactions are already serialised.
func (r *machineRepo) GetForUpdate(ctx context.Context, id uuid.UUID) (*machine.Machine, error) {
	return r.Get(ctx, id)
}

func (r *machineRepo) List(_ context.Context) ([]*machine.Machine, error) {
	out := make([]*machine.Machine, 0, len(r.tx.st.machines))
	for _, m := range r.tx.st.machines {
		out = append(out, m.Clone())
	}
	slices.SortFunc(out, func(a, b *machine.Machine) int {
		if c := a.CreatedAt().Compare(b.CreatedAt()); c != 0 {
			return c
		}
		return compareUUID(a.ID(), b.ID())
	})
	return out, nil
}

func (r *machineRepo) UpdateState(_ context.Context, m *machine.Machine) error {
	if err := r.tx.writable("update machine"); err != nil {
		return err
	}
	if _, ok := r.tx.st.machines[m.ID()]; !ok {
		return r.tx.notFound("machine")
	}
	r.tx.st.machines[m.ID()] = m.Clone()
	return nil
}

// ================================================================================
// Bookings
// ================================================================================

type bookingRepo struct{ tx *memTx }

func (r *bookingRepo) Create(_ context.Context, b *booking.Booking) error {
	if err := r.tx.writable("create booking"); err != nil {
		return err
	}
	if _, ok := r.tx.st.machines[b.MachineID()]; !ok {
		return infraFK(r.tx, "booking references unknown machine")
	}
	if _, ok := r.tx.st.bookings[b.ID()]; ok {
		return r.tx.duplicate("booking")
	}
	r.tx.st.bookings[b.ID()] = b.Clone()
	return nil
}

func (r *bookingRepo) Get(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	b, ok := r.tx.st.bookings[id]
	if !ok {
		return nil, r.tx.notFound("booking")
	}
	return b.Clone(), nil
}

func (r *bookingRepo) Update(_ context.Context, b *booking.Booking) error {
	if err := r.tx.writable("update booking"); err != nil {
		return err
	}
	if _, ok := r.tx.st.bookings[b.ID()]; !ok {
		return r.tx.notFound("booking")
	}
	r.tx.st.bookings[b.ID()] = b.Clone()
	return nil
}

func (r *bookingRepo) ListCommitted(_ context.Context, machineID uuid.UUID, endingAfter time.Time) ([]*booking.Booking, error) {
	return r.collect(func(b *booking.Booking) bool {
		return b.MachineID() == machineID && b.IsCommitted() && b.Window().End().After(endingAfter)
	}), nil
}

func (r *bookingRepo) ListByMachine(_ context.Context, machineID uuid.UUID) ([]*booking.Booking, error) {
	return r.collect(func(b *booking.Booking) bool {
		return b.MachineID() == machineID
	}), nil
}

func (r *bookingRepo) ListStartingWithin(_ context.Context, w timewindow.Window) ([]*booking.Booking, error) {
	return r.collect(func(b *booking.Booking) bool {
		return w.Contains(b.Window().Start())
	}), nil
}

func (r *bookingRepo) collect(keep func(*booking.Booking) bool) []*booking.Booking {
	var out []*booking.Booking
	for _, b := range r.tx.st.bookings {
		if keep(b) {
			out = append(out, b.Clone())
		}
	}
	slices.SortFunc(out, func(a, b *booking.Booking) int {
		if c := a.Window().Start().Compare(b.Window().Start()); c != 0 {
			return c
		}
		return compareUUID(a.ID(), b.ID())
	})
	return out
}

// ================================================================================
// Subscriptions
// ================================================================================

type subscriptionRepo struct{ tx *memTx }

func (r *subscriptionRepo) Create(_ context.Context, s *subscription.Subscription) error {
	if err := r.tx.writable("create subscription"); err != nil {
		return err
	}
	if _, ok := r.tx.st.subscriptions[s.ID()]; ok {
		return r.tx.duplicate("subscription")
	}
	r.tx.st.subscriptions[s.ID()] = s.Clone()
	return nil
}

func (r *subscriptionRepo) Get(_ context.Context, id uuid.UUID) (*subscription.Subscription, error) {
	s, ok := r.tx.st.subscriptions[id]
	if !ok {
		return nil, r.tx.notFound("subscription")
	}
	return s.Clone(), nil
}

func (r *subscriptionRepo) GetForUpdate(ctx context.Context, id uuid.UUID) (*subscription.Subscription, error) {
	return r.Get(ctx, id)
}

func (r *subscriptionRepo) Update(_ context.Context, s *subscription.Subscription) error {
	if err := r.tx.writable("update subscription"); err != nil {
		return err
	}
	if _, ok := r.tx.st.subscriptions[s.ID()]; !ok {
		return r.tx.notFound("subscription")
	}
	r.tx.st.subscriptions[s.ID()] = s.Clone()
	return nil
}

func (r *subscriptionRepo) List(_ context.Context) ([]*subscription.Subscription, error) {
	out := make([]*subscription.Subscription, 0, len(r.tx.st.subscriptions))
	for _, s := range r.tx.st.subscriptions {
		out = append(out, s.Clone())
	}
	slices.SortFunc(out, func(a, b *subscription.Subscription) int {
		if c := a.ExpiresAt().Compare(b.ExpiresAt()); c != 0 {
			return c
		}
		return compareUUID(a.ID(), b.ID())
	})
	return out, nil
}

// ================================================================================
// Offers
// ================================================================================

type offerRepo struct{ tx *memTx }

func (r *offerRepo) Create(_ context.Context, o *offer.Offer) error {
	if err := r.tx.writable("create offer"); err != nil {
		return err
	}
	if _, ok := r.tx.st.offers[o.ID()]; ok {
		return r.tx.duplicate("offer")
	}
	r.tx.st.offers[o.ID()] = o.Clone()
	return nil
}

func (r *offerRepo) Get(_ context.Context, id uuid.UUID) (*offer.Offer, error) {
	o, ok := r.tx.st.offers[id]
	if !ok {
		return nil, r.tx.notFound("offer")
	}
	return o.Clone(), nil
}

func (r *offerRepo) Update(_ context.Context, o *offer.Offer) error {
	if err := r.tx.writable("update offer"); err != nil {
		return err
	}
	if _, ok := r.tx.st.offers[o.ID()]; !ok {
		return r.tx.notFound("offer")
	}
	r.tx.st.offers[o.ID()] = o.Clone()
	return nil
}

func (r *offerRepo) List(_ context.Context) ([]*offer.Offer, error) {
	out := make([]*offer.Offer, 0, len(r.tx.st.offers))
	for _, o := range r.tx.st.offers {
		out = append(out, o.Clone())
	}
	slices.SortFunc(out, func(a, b *offer.Offer) int {
		if c := a.CreatedAt().Compare(b.CreatedAt()); c != 0 {
			return c
		}
		return compareUUID(a.ID(), b.ID())
	})
	return out, nil
}

// ================================================================================
// Notifications
// ================================================================================

type notificationRepo struct{ tx *memTx }

func (r *notificationRepo) Create(_ context.Context, n *notification.Notification) error {
	if err := r.tx.writable("create notification"); err != nil {
		return err
	}
	if _, ok := r.tx.st.notifications[n.ID()]; ok {
		return r.tx.duplicate("notification")
	}
	r.tx.st.notifications[n.ID()] = n.Clone()
	return nil
}

func (r *notificationRepo) Get(_ context.Context, id uuid.UUID) (*notification.Notification, error) {
	n, ok := r.tx.st.notifications[id]
	if !ok {
		return nil, r.tx.notFound("notification")
	}
	return n.Clone(), nil
}

func (r *notificationRepo) ListBySubject(_ context.Context, subjectID uuid.UUID) ([]*notification.Notification, error) {
	var out []*notification.Notification
	for _, n := range r.tx.st.notifications {
		if n.SubjectID() == subjectID {
			out = append(out, n.Clone())
		}
	}
	slices.SortFunc(out, func(a, b *notification.Notification) int {
		if c := a.CreatedAt().Compare(b.CreatedAt()); c != 0 {
			return c
		}
		return compareUUID(a.ID(), b.ID())
	})
	return out, nil
}

func (r *notificationRepo) MarkRead(_ context.Context, id uuid.UUID) error {
	if err := r.tx.writable("mark notification read"); err != nil {
		return err
	}
	n, ok := r.tx.st.notifications[id]
	if !ok {
		return r.tx.notFound("notification")
	}
	c := n.Clone()
	c.MarkRead()
	r.tx.st.notifications[id] = c
	return nil
}

func (r *notificationRepo) DeleteBySubject(_ context.Context, subjectID uuid.UUID, types ...notification.Type) (int64, error) {
	if err := r.tx.writable("delete notifications"); err != nil {
		return 0, err
	}
	var deleted int64
	for id, n := range r.tx.st.notifications {
		if n.SubjectID() != subjectID {
			continue
		}
		if len(types) > 0 && !slices.Contains(types, n.Type()) {
			continue
		}
		delete(r.tx.st.notifications, id)
		deleted++
	}
	return deleted, nil
}

func infraFK(tx *memTx, msg string) error {
	return infra.WrapRepoErr(tx.logger, infra.KindForeignKeyViolated, msg, nil)
}

func compareUUID(a, b uuid.UUID) int {
	return slices.Compare(a[:], b[:])
}
