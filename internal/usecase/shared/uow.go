package shared

import (
	"context"
	"time"

	"lounge-scheduler/internal/domain/booking"
	"lounge-scheduler/internal/domain/machine"
	"lounge-scheduler/internal/domain/notification"
	"lounge-scheduler/internal/domain/offer"
	"lounge-scheduler/internal/domain/subscription"
	"lounge-scheduler/internal/domain/timewindow"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations. All writes commit together or not at all.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Consistent snapshot across repositories. Writes are rejected.
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Machines() MachineRepository
	Bookings() BookingRepository
	Subscriptions() SubscriptionRepository
	Offers() OfferRepository
	Notifications() NotificationRepository
}

// Get returns infra.KindNotFound errors for missing rows. ForUpdate variants
// lock the row until the surrounding transaction ends.
type MachineRepository interface {
	Create(ctx context.Context, m *machine.Machine) error
	Get(ctx context.Context, id uuid.UUID) (*machine.Machine, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*machine.Machine, error)
	List(ctx context.Context) ([]*machine.Machine, error)
	UpdateState(ctx context.Context, m *machine.Machine) error
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	Get(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	Update(ctx context.Context, b *booking.Booking) error
	// ListCommitted returns non-cancelled bookings of a machine ending after
	// endingAfter, ordered by window start.
	ListCommitted(ctx context.Context, machineID uuid.UUID, endingAfter time.Time) ([]*booking.Booking, error)
	ListByMachine(ctx context.Context, machineID uuid.UUID) ([]*booking.Booking, error)
	// ListStartingWithin returns bookings of every status whose window starts in w.
	ListStartingWithin(ctx context.Context, w timewindow.Window) ([]*booking.Booking, error)
}

type SubscriptionRepository interface {
	Create(ctx context.Context, s *subscription.Subscription) error
	Get(ctx context.Context, id uuid.UUID) (*subscription.Subscription, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*subscription.Subscription, error)
	Update(ctx context.Context, s *subscription.Subscription) error
	List(ctx context.Context) ([]*subscription.Subscription, error)
}

type OfferRepository interface {
	Create(ctx context.Context, o *offer.Offer) error
	Get(ctx context.Context, id uuid.UUID) (*offer.Offer, error)
	Update(ctx context.Context, o *offer.Offer) error
	List(ctx context.Context) ([]*offer.Offer, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, n *notification.Notification) error
	Get(ctx context.Context, id uuid.UUID) (*notification.Notification, error)
	ListBySubject(ctx context.Context, subjectID uuid.UUID) ([]*notification.Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	DeleteBySubject(ctx context.Context, subjectID uuid.UUID, types ...notification.Type) (int64, error)
}
