package response

import (
	"time"

	"lounge-scheduler/internal/domain/notification"
	"lounge-scheduler/internal/domain/subscription"

	"github.com/google/uuid"
)

type SubscriptionResponse struct {
	ID             uuid.UUID `json:"id"`
	OwnerID        string    `json:"ownerId"`
	Plan           string    `json:"plan"`
	MembershipType string    `json:"membershipType,omitempty"`
	ExpiresAt      time.Time `json:"expiresAt"`
	Renewed        bool      `json:"renewed"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// FromSubscription reports Active as of now.
func FromSubscription(s *subscription.Subscription, now time.Time) *SubscriptionResponse {
	return &SubscriptionResponse{
		ID:             s.ID(),
		OwnerID:        s.OwnerID(),
		Plan:           string(s.Plan()),
		MembershipType: s.MembershipType(),
		ExpiresAt:      s.ExpiresAt(),
		Renewed:        s.Renewed(),
		Active:         s.IsActiveAt(now),
		CreatedAt:      s.CreatedAt(),
		UpdatedAt:      s.UpdatedAt(),
	}
}

type NotificationResponse struct {
	ID        uuid.UUID `json:"id"`
	Type      string    `json:"type"`
	Severity  string    `json:"severity"`
	SubjectID uuid.UUID `json:"subjectId"`
	OwnerID   string    `json:"ownerId"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromNotification(n *notification.Notification) *NotificationResponse {
	return &NotificationResponse{
		ID:        n.ID(),
		Type:      string(n.Type()),
		Severity:  string(n.Severity()),
		SubjectID: n.SubjectID(),
		OwnerID:   n.OwnerID(),
		Message:   n.Message(),
		Read:      n.Read(),
		CreatedAt: n.CreatedAt(),
	}
}

func FromNotifications(ns []*notification.Notification) []*NotificationResponse {
	out := make([]*NotificationResponse, len(ns))
	for i, n := range ns {
		out[i] = FromNotification(n)
	}
	return out
}
