package offer

import (
	"strings"
	"time"

	"lounge-scheduler/internal/pkg/errs"
	"lounge-scheduler/internal/pkg/ptr"

	"github.com/google/uuid"
)

var (
	ErrEmptyOfferName  = errs.Mark(errs.New("offer name cannot be empty"), errs.ErrValidation)
	ErrInvalidCategory = errs.Mark(errs.New("invalid offer category"), errs.ErrValidation)
	ErrAlreadyRevoked  = errs.Mark(errs.New("offer already revoked"), errs.ErrInvalidTransition)
)

// Offer keeps its raw window bounds so that malformed offers can still be
// stored and reported as Invalid by Validate.
type Offer struct {
	id             uuid.UUID
	name           string
	category       Category
	validFrom      *time.Time
	validTo        *time.Time
	membershipType string
	discount       Discount
	createdAt      time.Time
	revokedAt      *time.Time
}

type Params struct {
	Name           string
	Category       Category
	ValidFrom      *time.Time
	ValidTo        *time.Time
	MembershipType string
	Discount       Discount
}

func NewOffer(p Params, now time.Time) (*Offer, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, ErrEmptyOfferName
	}
	if !p.Category.IsValid() {
		return nil, ErrInvalidCategory
	}
	return &Offer{
		id:             uuid.New(),
		name:           name,
		category:       p.Category,
		validFrom:      p.ValidFrom,
		validTo:        p.ValidTo,
		membershipType: strings.TrimSpace(p.MembershipType),
		discount:       p.Discount,
		createdAt:      now,
	}, nil
}

func ReconstructOffer(
	id uuid.UUID,
	name string,
	category Category,
	validFrom, validTo *time.Time,
	membershipType string,
	discount Discount,
	createdAt time.Time,
	revokedAt *time.Time,
) *Offer {
	return &Offer{
		id:             id,
		name:           name,
		category:       category,
		validFrom:      validFrom,
		validTo:        validTo,
		membershipType: membershipType,
		discount:       discount,
		createdAt:      createdAt,
		revokedAt:      revokedAt,
	}
}

func (o *Offer) Revoke(now time.Time) error {
	if o.revokedAt != nil {
		return ErrAlreadyRevoked
	}
	t := now
	o.revokedAt = &t
	return nil
}

func (o *Offer) Clone() *Offer {
	c := *o
	c.validFrom = ptr.Clone(o.validFrom)
	c.validTo = ptr.Clone(o.validTo)
	c.revokedAt = ptr.Clone(o.revokedAt)
	return &c
}

// EligibleFor reports whether a holder of membershipType may use the offer.
// Only exclusive offers restrict by membership.
func (o *Offer) EligibleFor(membershipType string) bool {
	if o.category != CategoryExclusive {
		return true
	}
	return o.membershipType != "" && strings.EqualFold(o.membershipType, membershipType)
}

func (o *Offer) ID() uuid.UUID          { return o.id }
func (o *Offer) Name() string           { return o.name }
func (o *Offer) Category() Category     { return o.category }
func (o *Offer) ValidFrom() *time.Time  { return o.validFrom }
func (o *Offer) ValidTo() *time.Time    { return o.validTo }
func (o *Offer) MembershipType() string { return o.membershipType }
func (o *Offer) Discount() Discount     { return o.discount }
func (o *Offer) CreatedAt() time.Time   { return o.createdAt }
func (o *Offer) RevokedAt() *time.Time  { return o.revokedAt }
