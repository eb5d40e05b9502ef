package offers

import (
	"context"
	"log/slog"
	"time"

	"lounge-scheduler/internal/domain/offer"
	"lounge-scheduler/internal/pkg/clock"
	"lounge-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateOfferRequest struct {
	Name           string
	Category       offer.Category
	ValidFrom      *time.Time
	ValidTo        *time.Time
	MembershipType string
	AmountOffCents *int64
	PercentOff     *float64
}

// OfferView pairs an offer with its status at read time. Status is never stored.
type OfferView struct {
	Offer  *offer.Offer
	Status offer.Status
}

//go:generate mockgen -destination=../../../tests/mock/offers/service.go -package=offersmock . Service

type Service interface {
	CreateOffer(ctx context.Context, req CreateOfferRequest) (*OfferView, error)
	Revoke(ctx context.Context, id uuid.UUID) (*OfferView, error)
	Get(ctx context.Context, id uuid.UUID) (*OfferView, error)
	List(ctx context.Context) ([]*OfferView, error)
}

type serviceImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewService(uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &serviceImpl{uow: uow, clock: clk, logger: logger}
}

func (s *serviceImpl) view(o *offer.Offer) *OfferView {
	return &OfferView{Offer: o, Status: offer.Validate(o, s.clock.Now())}
}

// CreateOffer stores the offer as given. A malformed window is not rejected
// here; the offer is kept and reports Invalid.
func (s *serviceImpl) CreateOffer(ctx context.Context, req CreateOfferRequest) (*OfferView, error) {
	discount, err := offer.NewDiscount(req.AmountOffCents, req.PercentOff)
	if err != nil {
		return nil, err
	}
	o, err := offer.NewOffer(offer.Params{
		Name:           req.Name,
		Category:       req.Category,
		ValidFrom:      req.ValidFrom,
		ValidTo:        req.ValidTo,
		MembershipType: req.MembershipType,
		Discount:       discount,
	}, s.clock.Now())
	if err != nil {
		return nil, err
	}

	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return shared.TranslateRepoErr(tx.Offers().Create(ctx, o), "create offer")
	})
	if err != nil {
		return nil, err
	}

	v := s.view(o)
	s.logger.Info("offer created", "offer_id", o.ID(), "category", o.Category(), "status", v.Status)
	return v, nil
}

func (s *serviceImpl) Revoke(ctx context.Context, id uuid.UUID) (*OfferView, error) {
	o, err := shared.RunInTx(ctx, s.uow, func(ctx context.Context, tx shared.Tx) (*offer.Offer, error) {
		o, err := tx.Offers().Get(ctx, id)
		if err != nil {
			return nil, shared.TranslateRepoErr(err, "get offer")
		}
		if err := o.Revoke(s.clock.Now()); err != nil {
			return nil, err
		}
		return o, shared.TranslateRepoErr(tx.Offers().Update(ctx, o), "update offer")
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("offer revoked", "offer_id", id)
	return s.view(o), nil
}

func (s *serviceImpl) Get(ctx context.Context, id uuid.UUID) (*OfferView, error) {
	o, err := shared.RunReadOnly(ctx, s.uow, func(ctx context.Context, tx shared.Tx) (*offer.Offer, error) {
		o, err := tx.Offers().Get(ctx, id)
		return o, shared.TranslateRepoErr(err, "get offer")
	})
	if err != nil {
		return nil, err
	}
	return s.view(o), nil
}

func (s *serviceImpl) List(ctx context.Context) ([]*OfferView, error) {
	all, err := shared.RunReadOnly(ctx, s.uow, func(ctx context.Context, tx shared.Tx) ([]*offer.Offer, error) {
		all, err := tx.Offers().List(ctx)
		return all, shared.TranslateRepoErr(err, "list offers")
	})
	if err != nil {
		return nil, err
	}
	views := make([]*OfferView, 0, len(all))
	for _, o := range all {
		views = append(views, s.view(o))
	}
	return views, nil
}
