package repository

import (
	"context"
	"log/slog"
	"time"

	"lounge-scheduler/internal/domain/offer"
	"lounge-scheduler/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const offerColumns = `id, name, category, valid_from, valid_to, membership_type,
	amount_off_cents, percent_off, created_at, revoked_at`

type OfferRepository struct {
	db     DBTX
	logger *slog.Logger
}

func NewOfferRepository(db DBTX, logger *slog.Logger) *OfferRepository {
	return &OfferRepository{db: db, logger: logger}
}

func scanOffer(row pgx.Row) (*offer.Offer, error) {
	var (
		id                         uuid.UUID
		name, category, membership string
		validFrom, validTo         pgtype.Timestamptz
		amountOff                  pgtype.Int8
		percentOff                 pgtype.Float8
		createdAt                  time.Time
		revokedAt                  pgtype.Timestamptz
	)
	if err := row.Scan(&id, &name, &category, &validFrom, &validTo, &membership,
		&amountOff, &percentOff, &createdAt, &revokedAt); err != nil {
		return nil, err
	}
	discount, err := offer.NewDiscount(pgconv.Int64PtrFromPgtype(amountOff), pgconv.Float64PtrFromPgtype(percentOff))
	if err != nil {
		return nil, err
	}
	return offer.ReconstructOffer(
		id, name, offer.Category(category),
		pgconv.TimePtrFromPgtype(validFrom), pgconv.TimePtrFromPgtype(validTo),
		membership, discount,
		createdAt, pgconv.TimePtrFromPgtype(revokedAt),
	), nil
}

func (r *OfferRepository) Create(ctx context.Context, o *offer.Offer) error {
	d := o.Discount()
	_, err := r.db.Exec(ctx,
		`INSERT INTO offers (`+offerColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		o.ID(), o.Name(), string(o.Category()),
		pgconv.TimePtrToPgtype(o.ValidFrom()), pgconv.TimePtrToPgtype(o.ValidTo()),
		o.MembershipType(),
		pgconv.Int64PtrToPgtype(d.AmountOffCents()), pgconv.Float64PtrToPgtype(d.PercentOff()),
		o.CreatedAt(), pgconv.TimePtrToPgtype(o.RevokedAt()),
	)
	if err != nil {
		return wrapErr(r.logger, "failed to create offer", err)
	}
	return nil
}

func (r *OfferRepository) Get(ctx context.Context, id uuid.UUID) (*offer.Offer, error) {
	o, err := scanOffer(r.db.QueryRow(ctx, `SELECT `+offerColumns+` FROM offers WHERE id = $1`, id))
	if err != nil {
		return nil, wrapErr(r.logger, "failed to get offer", err)
	}
	return o, nil
}

// Update only persists revocation; the rest of an offer is immutable.
func (r *OfferRepository) Update(ctx context.Context, o *offer.Offer) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE offers SET revoked_at = $2 WHERE id = $1`,
		o.ID(), pgconv.TimePtrToPgtype(o.RevokedAt()),
	)
	if err != nil {
		return wrapErr(r.logger, "failed to update offer", err)
	}
	return expectOne(r.logger, "offer", tag)
}

func (r *OfferRepository) List(ctx context.Context) ([]*offer.Offer, error) {
	rows, err := r.db.Query(ctx, `SELECT `+offerColumns+` FROM offers ORDER BY created_at, id`)
	if err != nil {
		return nil, wrapErr(r.logger, "failed to list offers", err)
	}
	return collect(r.logger, "offers", rows, scanOffer)
}
