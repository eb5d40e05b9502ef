package broker

import (
	"context"
	"time"

	"lounge-scheduler/internal/domain/notification"
)

type notificationMessage struct {
	ID             string    `json:"id"`
	Type           string    `json:"type"`
	Severity       string    `json:"severity"`
	SubscriptionID string    `json:"subscription_id"`
	OwnerID        string    `json:"owner_id"`
	Message        string    `json:"message"`
	CreatedAt      time.Time `json:"created_at"`
}

// NotificationSink publishes notices under notification.<type> routing keys.
type NotificationSink struct {
	publisher *Publisher
}

func NewNotificationSink(p *Publisher) *NotificationSink {
	return &NotificationSink{publisher: p}
}

func RoutingKey(typ notification.Type) string {
	return "notification." + string(typ)
}

func (s *NotificationSink) Publish(ctx context.Context, n *notification.Notification) error {
	return s.publisher.Publish(ctx, RoutingKey(n.Type()), notificationMessage{
		ID:             n.ID().String(),
		Type:           string(n.Type()),
		Severity:       string(n.Severity()),
		SubscriptionID: n.SubjectID().String(),
		OwnerID:        n.OwnerID(),
		Message:        n.Message(),
		CreatedAt:      n.CreatedAt(),
	})
}
