//go:build unit || e2e

package builder

import (
	"time"

	"lounge-scheduler/internal/domain/subscription"
	reqdto "lounge-scheduler/internal/handler/dto/request"

	"github.com/google/uuid"
)

type SubscriptionBuilder struct {
	ID             uuid.UUID
	OwnerID        string
	Plan           subscription.Plan
	MembershipType string
	ExpiresAt      time.Time
	Renewed        bool
	CreatedAt      time.Time
}

func NewSubscriptionBuilder() *SubscriptionBuilder {
	now := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	return &SubscriptionBuilder{
		ID:             uuid.New(),
		OwnerID:        "kai@example.com",
		Plan:           subscription.PlanMonthly,
		MembershipType: "premium",
		ExpiresAt:      now.AddDate(0, 1, 0),
		CreatedAt:      now,
	}
}

func (s *SubscriptionBuilder) With(mutate func(*SubscriptionBuilder)) *SubscriptionBuilder {
	mutate(s)
	return s
}

func (s *SubscriptionBuilder) BuildReconstructed() *subscription.Subscription {
	return subscription.ReconstructSubscription(
		s.ID, s.OwnerID, s.Plan, s.MembershipType,
		s.ExpiresAt, s.Renewed,
		s.CreatedAt, s.CreatedAt,
	)
}

func (s *SubscriptionBuilder) BuildCreateRequestDTO() reqdto.CreateSubscriptionRequest {
	expiresAt := s.ExpiresAt
	return reqdto.CreateSubscriptionRequest{
		OwnerID:        s.OwnerID,
		Plan:           string(s.Plan),
		MembershipType: s.MembershipType,
		ExpiresAt:      &expiresAt,
	}
}
