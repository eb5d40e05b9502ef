//go:build unit || e2e

package builder

import (
	"time"

	"lounge-scheduler/internal/domain/offer"
	reqdto "lounge-scheduler/internal/handler/dto/request"

	"github.com/google/uuid"
)

type OfferBuilder struct {
	ID             uuid.UUID
	Name           string
	Category       offer.Category
	ValidFrom      *time.Time
	ValidTo        *time.Time
	MembershipType string
	AmountOffCents *int64
	PercentOff     *float64
	CreatedAt      time.Time
	RevokedAt      *time.Time
}

func NewOfferBuilder() *OfferBuilder {
	now := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	from, to := now.Add(time.Hour), now.Add(24*time.Hour)
	return &OfferBuilder{
		ID:        uuid.New(),
		Name:      "Night owl",
		Category:  offer.CategoryTimeBased,
		ValidFrom: &from,
		ValidTo:   &to,
		CreatedAt: now,
	}
}

func (o *OfferBuilder) With(mutate func(*OfferBuilder)) *OfferBuilder {
	mutate(o)
	return o
}

func (o *OfferBuilder) discount() offer.Discount {
	d, err := offer.NewDiscount(o.AmountOffCents, o.PercentOff)
	if err != nil {
		panic(err)
	}
	return d
}

// Build methods
func (o *OfferBuilder) BuildDomain() (*offer.Offer, error) {
	d, err := offer.NewDiscount(o.AmountOffCents, o.PercentOff)
	if err != nil {
		return nil, err
	}
	return offer.NewOffer(offer.Params{
		Name:           o.Name,
		Category:       o.Category,
		ValidFrom:      o.ValidFrom,
		ValidTo:        o.ValidTo,
		MembershipType: o.MembershipType,
		Discount:       d,
	}, o.CreatedAt)
}

func (o *OfferBuilder) BuildReconstructed() *offer.Offer {
	return offer.ReconstructOffer(
		o.ID, o.Name, o.Category,
		o.ValidFrom, o.ValidTo,
		o.MembershipType, o.discount(),
		o.CreatedAt, o.RevokedAt,
	)
}

func (o *OfferBuilder) BuildCreateRequestDTO() reqdto.CreateOfferRequest {
	return reqdto.CreateOfferRequest{
		Name:           o.Name,
		Category:       string(o.Category),
		ValidFrom:      o.ValidFrom,
		ValidTo:        o.ValidTo,
		MembershipType: o.MembershipType,
		AmountOffCents: o.AmountOffCents,
		PercentOff:     o.PercentOff,
	}
}
