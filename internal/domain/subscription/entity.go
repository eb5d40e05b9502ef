package subscription

import (
	"strings"
	"time"

	"lounge-scheduler/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyOwner         = errs.Mark(errs.New("subscription owner cannot be empty"), errs.ErrValidation)
	ErrInvalidPlan        = errs.Mark(errs.New("invalid subscription plan"), errs.ErrValidation)
	ErrExpiryBeforeCreate = errs.Mark(errs.New("subscription cannot expire before it starts"), errs.ErrValidation)
)

type Plan string

const (
	PlanMonthly   Plan = "monthly"
	PlanQuarterly Plan = "quarterly"
	PlanYearly    Plan = "yearly"
)

func (p Plan) IsValid() bool {
	switch p {
	case PlanMonthly, PlanQuarterly, PlanYearly:
		return true
	default:
		return false
	}
}

// Extend returns from advanced by one plan period in calendar months.
func (p Plan) Extend(from time.Time) time.Time {
	switch p {
	case PlanQuarterly:
		return from.AddDate(0, 3, 0)
	case PlanYearly:
		return from.AddDate(1, 0, 0)
	default:
		return from.AddDate(0, 1, 0)
	}
}

type Subscription struct {
	id             uuid.UUID
	ownerID        string
	plan           Plan
	membershipType string
	expiresAt      time.Time
	renewed        bool
	createdAt      time.Time
	updatedAt      time.Time
}

type Params struct {
	OwnerID        string
	Plan           Plan
	MembershipType string
	// ExpiresAt overrides the first period end, e.g. for imported memberships.
	ExpiresAt *time.Time
}

func NewSubscription(p Params, now time.Time) (*Subscription, error) {
	owner := strings.TrimSpace(p.OwnerID)
	if owner == "" {
		return nil, ErrEmptyOwner
	}
	if !p.Plan.IsValid() {
		return nil, ErrInvalidPlan
	}
	expiresAt := p.Plan.Extend(now)
	if p.ExpiresAt != nil {
		if !p.ExpiresAt.After(now) {
			return nil, ErrExpiryBeforeCreate
		}
		expiresAt = *p.ExpiresAt
	}

	return &Subscription{
		id:             uuid.New(),
		ownerID:        owner,
		plan:           p.Plan,
		membershipType: strings.TrimSpace(p.MembershipType),
		expiresAt:      expiresAt,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructSubscription(
	id uuid.UUID,
	ownerID string,
	plan Plan,
	membershipType string,
	expiresAt time.Time,
	renewed bool,
	createdAt, updatedAt time.Time,
) *Subscription {
	return &Subscription{
		id:             id,
		ownerID:        ownerID,
		plan:           plan,
		membershipType: membershipType,
		expiresAt:      expiresAt,
		renewed:        renewed,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// IsActiveAt is false from expiresAt onward.
func (s *Subscription) IsActiveAt(now time.Time) bool {
	return now.Before(s.expiresAt)
}

func (s *Subscription) TimeUntilExpiry(now time.Time) time.Duration {
	return s.expiresAt.Sub(now)
}

// Renew extends by one plan period. An active subscription extends from its
// current expiry, a lapsed one from now.
func (s *Subscription) Renew(now time.Time) {
	base := s.expiresAt
	if now.After(base) {
		base = now
	}
	s.expiresAt = s.plan.Extend(base)
	s.renewed = true
	s.updatedAt = now
}

func (s *Subscription) OwnedBy(customer string) bool {
	return strings.EqualFold(s.ownerID, strings.TrimSpace(customer))
}

func (s *Subscription) Clone() *Subscription {
	c := *s
	return &c
}

func (s *Subscription) ID() uuid.UUID          { return s.id }
func (s *Subscription) OwnerID() string        { return s.ownerID }
func (s *Subscription) Plan() Plan             { return s.plan }
func (s *Subscription) MembershipType() string { return s.membershipType }
func (s *Subscription) ExpiresAt() time.Time   { return s.expiresAt }
func (s *Subscription) Renewed() bool          { return s.renewed }
func (s *Subscription) CreatedAt() time.Time   { return s.createdAt }
func (s *Subscription) UpdatedAt() time.Time   { return s.updatedAt }
