package expiry

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"lounge-scheduler/internal/domain/notification"
	"lounge-scheduler/internal/domain/subscription"
	"lounge-scheduler/internal/pkg/clock"
	"lounge-scheduler/internal/pkg/errs"
	"lounge-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

// urgentWithin escalates a renewal notice from info to warning.
const urgentWithin = 24 * time.Hour

// Sink receives notices after the transaction that created them has committed.
type Sink interface {
	Publish(ctx context.Context, n *notification.Notification) error
}

type Observer interface {
	NotificationEmitted(typ notification.Type)
}

type NopObserver struct{}

func (NopObserver) NotificationEmitted(notification.Type) {}

type SubscribeRequest struct {
	OwnerID        string
	Plan           subscription.Plan
	MembershipType string
	ExpiresAt      *time.Time
}

//go:generate mockgen -destination=../../../tests/mock/expiry/engine.go -package=expirymock . Engine

type Engine interface {
	Subscribe(ctx context.Context, req SubscribeRequest) (*subscription.Subscription, error)
	GetSubscription(ctx context.Context, id uuid.UUID) (*subscription.Subscription, error)
	// Evaluate emits at most one renewal notice per outstanding unread notice
	// and at most one expired notice per lapse.
	Evaluate(ctx context.Context, subscriptionID uuid.UUID, now time.Time, threshold time.Duration) ([]*notification.Notification, error)
	EvaluateAll(ctx context.Context, now time.Time) ([]*notification.Notification, error)
	Renew(ctx context.Context, subscriptionID uuid.UUID, now time.Time) (*subscription.Subscription, error)
	Notifications(ctx context.Context, subscriptionID uuid.UUID) ([]*notification.Notification, error)
	MarkRead(ctx context.Context, notificationID uuid.UUID) (*notification.Notification, error)
	Threshold() time.Duration
}

type engineImpl struct {
	uow       shared.UnitOfWork
	clock     clock.Clock
	sink      Sink
	observer  Observer
	threshold time.Duration
	logger    *slog.Logger
}

func NewEngine(
	uow shared.UnitOfWork,
	clock clock.Clock,
	sink Sink,
	observer Observer,
	threshold time.Duration,
	logger *slog.Logger,
) Engine {
	if logger == nil {
		logger = slog.Default()
	}
	if sink == nil {
		sink = NewLogSink(logger)
	}
	if observer == nil {
		observer = NopObserver{}
	}
	return &engineImpl{
		uow:       uow,
		clock:     clock,
		sink:      sink,
		observer:  observer,
		threshold: threshold,
		logger:    logger,
	}
}

func (e *engineImpl) Threshold() time.Duration {
	return e.threshold
}

func (e *engineImpl) Subscribe(ctx context.Context, req SubscribeRequest) (*subscription.Subscription, error) {
	s, err := subscription.NewSubscription(subscription.Params{
		OwnerID:        req.OwnerID,
		Plan:           req.Plan,
		MembershipType: req.MembershipType,
		ExpiresAt:      req.ExpiresAt,
	}, e.clock.Now())
	if err != nil {
		return nil, err
	}
	err = e.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return shared.TranslateRepoErr(tx.Subscriptions().Create(ctx, s), "create subscription")
	})
	if err != nil {
		return nil, err
	}
	e.logger.Info("subscription created", "subscription_id", s.ID(), "plan", s.Plan(), "expires_at", s.ExpiresAt())
	return s, nil
}

func (e *engineImpl) GetSubscription(ctx context.Context, id uuid.UUID) (*subscription.Subscription, error) {
	return shared.RunReadOnly(ctx, e.uow, func(ctx context.Context, tx shared.Tx) (*subscription.Subscription, error) {
		s, err := tx.Subscriptions().Get(ctx, id)
		return s, shared.TranslateRepoErr(err, "get subscription")
	})
}

func (e *engineImpl) Evaluate(ctx context.Context, subscriptionID uuid.UUID, now time.Time, threshold time.Duration) ([]*notification.Notification, error) {
	if threshold <= 0 {
		return nil, errs.Mark(errs.Newf("expiry threshold must be positive, got %s", threshold), errs.ErrConfiguration)
	}
	emitted, err := shared.RunInTx(ctx, e.uow, func(ctx context.Context, tx shared.Tx) ([]*notification.Notification, error) {
		s, err := tx.Subscriptions().GetForUpdate(ctx, subscriptionID)
		if err != nil {
			return nil, shared.TranslateRepoErr(err, "get subscription")
		}
		return e.evaluate(ctx, tx, s, now, threshold)
	})
	if err != nil {
		return nil, err
	}
	e.deliver(ctx, emitted)
	return emitted, nil
}

// EvaluateAll runs one subscription per transaction so a failure on one does
// not hold back notices for the rest.
func (e *engineImpl) EvaluateAll(ctx context.Context, now time.Time) ([]*notification.Notification, error) {
	subs, err := shared.RunReadOnly(ctx, e.uow, func(ctx context.Context, tx shared.Tx) ([]*subscription.Subscription, error) {
		subs, err := tx.Subscriptions().List(ctx)
		return subs, shared.TranslateRepoErr(err, "list subscriptions")
	})
	if err != nil {
		return nil, err
	}

	var (
		all      []*notification.Notification
		failures []error
	)
	for _, s := range subs {
		if err := ctx.Err(); err != nil {
			return all, err
		}
		emitted, err := e.Evaluate(ctx, s.ID(), now, e.threshold)
		if err != nil {
			e.logger.Error("subscription evaluation failed", "subscription_id", s.ID(), "error", err)
			failures = append(failures, err)
			continue
		}
		all = append(all, emitted...)
	}
	if len(failures) > 0 {
		return all, errs.Wrapf(failures[0], "%d of %d subscriptions failed evaluation", len(failures), len(subs))
	}
	return all, nil
}

func (e *engineImpl) evaluate(
	ctx context.Context,
	tx shared.Tx,
	s *subscription.Subscription,
	now time.Time,
	threshold time.Duration,
) ([]*notification.Notification, error) {
	existing, err := tx.Notifications().ListBySubject(ctx, s.ID())
	if err != nil {
		return nil, shared.TranslateRepoErr(err, "list notifications")
	}

	remaining := s.TimeUntilExpiry(now)
	var n *notification.Notification
	switch {
	case remaining <= 0:
		if hasNotice(existing, notification.TypeExpired, false) {
			return nil, nil
		}
		n = notification.NewNotification(
			notification.TypeExpired,
			notification.SeverityCritical,
			s.ID(), s.OwnerID(),
			fmt.Sprintf("Your %s membership expired on %s.", s.Plan(), s.ExpiresAt().Format(time.DateOnly)),
			now,
		)
	case remaining <= threshold:
		if hasNotice(existing, notification.TypeRenewal, true) {
			return nil, nil
		}
		severity := notification.SeverityInfo
		if remaining <= urgentWithin {
			severity = notification.SeverityWarning
		}
		n = notification.NewNotification(
			notification.TypeRenewal,
			severity,
			s.ID(), s.OwnerID(),
			fmt.Sprintf("Your %s membership expires on %s. Renew to keep your benefits.", s.Plan(), s.ExpiresAt().Format(time.DateOnly)),
			now,
		)
	default:
		return nil, nil
	}

	if err := tx.Notifications().Create(ctx, n); err != nil {
		return nil, shared.TranslateRepoErr(err, "create notification")
	}
	return []*notification.Notification{n}, nil
}

func hasNotice(ns []*notification.Notification, typ notification.Type, unreadOnly bool) bool {
	for _, n := range ns {
		if n.Type() != typ {
			continue
		}
		if unreadOnly && n.Read() {
			continue
		}
		return true
	}
	return false
}

// deliver hands committed notices to the sink. Delivery is best effort: the
// stored notice stays the record of truth.
func (e *engineImpl) deliver(ctx context.Context, ns []*notification.Notification) {
	for _, n := range ns {
		e.observer.NotificationEmitted(n.Type())
		if err := e.sink.Publish(ctx, n); err != nil {
			e.logger.Warn("notification delivery failed",
				"notification_id", n.ID(),
				"subscription_id", n.SubjectID(),
				"error", err)
		}
	}
}

func (e *engineImpl) Renew(ctx context.Context, subscriptionID uuid.UUID, now time.Time) (*subscription.Subscription, error) {
	var cleared int64
	s, err := shared.RunInTx(ctx, e.uow, func(ctx context.Context, tx shared.Tx) (*subscription.Subscription, error) {
		s, err := tx.Subscriptions().GetForUpdate(ctx, subscriptionID)
		if err != nil {
			return nil, shared.TranslateRepoErr(err, "get subscription")
		}
		s.Renew(now)
		if err := tx.Subscriptions().Update(ctx, s); err != nil {
			return nil, shared.TranslateRepoErr(err, "update subscription")
		}
		cleared, err = tx.Notifications().DeleteBySubject(ctx, s.ID(), notification.TypeRenewal, notification.TypeExpired)
		if err != nil {
			return nil, shared.TranslateRepoErr(err, "clear notifications")
		}
		return s, nil
	})
	if err != nil {
		return nil, err
	}
	e.logger.Info("subscription renewed",
		"subscription_id", s.ID(),
		"expires_at", s.ExpiresAt(),
		"cleared_notifications", cleared)
	return s, nil
}

func (e *engineImpl) Notifications(ctx context.Context, subscriptionID uuid.UUID) ([]*notification.Notification, error) {
	return shared.RunReadOnly(ctx, e.uow, func(ctx context.Context, tx shared.Tx) ([]*notification.Notification, error) {
		if _, err := tx.Subscriptions().Get(ctx, subscriptionID); err != nil {
			return nil, shared.TranslateRepoErr(err, "get subscription")
		}
		ns, err := tx.Notifications().ListBySubject(ctx, subscriptionID)
		return ns, shared.TranslateRepoErr(err, "list notifications")
	})
}

func (e *engineImpl) MarkRead(ctx context.Context, notificationID uuid.UUID) (*notification.Notification, error) {
	return shared.RunInTx(ctx, e.uow, func(ctx context.Context, tx shared.Tx) (*notification.Notification, error) {
		if err := tx.Notifications().MarkRead(ctx, notificationID); err != nil {
			return nil, shared.TranslateRepoErr(err, "mark notification read")
		}
		n, err := tx.Notifications().Get(ctx, notificationID)
		return n, shared.TranslateRepoErr(err, "get notification")
	})
}
