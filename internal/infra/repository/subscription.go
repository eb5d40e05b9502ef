package repository

import (
	"context"
	"log/slog"
	"time"

	"lounge-scheduler/internal/domain/subscription"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const subscriptionColumns = `id, owner_id, plan, membership_type, expires_at, renewed, created_at, updated_at`

type SubscriptionRepository struct {
	db     DBTX
	logger *slog.Logger
}

func NewSubscriptionRepository(db DBTX, logger *slog.Logger) *SubscriptionRepository {
	return &SubscriptionRepository{db: db, logger: logger}
}

func scanSubscription(row pgx.Row) (*subscription.Subscription, error) {
	var (
		id                        uuid.UUID
		ownerID, plan, membership string
		expiresAt                 time.Time
		renewed                   bool
		createdAt, updatedAt      time.Time
	)
	if err := row.Scan(&id, &ownerID, &plan, &membership, &expiresAt, &renewed, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return subscription.ReconstructSubscription(
		id, ownerID, subscription.Plan(plan), membership,
		expiresAt, renewed, createdAt, updatedAt,
	), nil
}

func (r *SubscriptionRepository) Create(ctx context.Context, s *subscription.Subscription) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO subscriptions (`+subscriptionColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		s.ID(), s.OwnerID(), string(s.Plan()), s.MembershipType(),
		s.ExpiresAt(), s.Renewed(), s.CreatedAt(), s.UpdatedAt(),
	)
	if err != nil {
		return wrapErr(r.logger, "failed to create subscription", err)
	}
	return nil
}

func (r *SubscriptionRepository) Get(ctx context.Context, id uuid.UUID) (*subscription.Subscription, error) {
	s, err := scanSubscription(r.db.QueryRow(ctx, `SELECT `+subscriptionColumns+` FROM subscriptions WHERE id = $1`, id))
	if err != nil {
		return nil, wrapErr(r.logger, "failed to get subscription", err)
	}
	return s, nil
}

func (r *SubscriptionRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*subscription.Subscription, error) {
	s, err := scanSubscription(r.db.QueryRow(ctx, `SELECT `+subscriptionColumns+` FROM subscriptions WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		return nil, wrapErr(r.logger, "failed to lock subscription", err)
	}
	return s, nil
}

func (r *SubscriptionRepository) Update(ctx context.Context, s *subscription.Subscription) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE subscriptions SET expires_at = $2, renewed = $3, updated_at = $4 WHERE id = $1`,
		s.ID(), s.ExpiresAt(), s.Renewed(), s.UpdatedAt(),
	)
	if err != nil {
		return wrapErr(r.logger, "failed to update subscription", err)
	}
	return expectOne(r.logger, "subscription", tag)
}

func (r *SubscriptionRepository) List(ctx context.Context) ([]*subscription.Subscription, error) {
	rows, err := r.db.Query(ctx, `SELECT `+subscriptionColumns+` FROM subscriptions ORDER BY expires_at, id`)
	if err != nil {
		return nil, wrapErr(r.logger, "failed to list subscriptions", err)
	}
	return collect(r.logger, "subscriptions", rows, scanSubscription)
}
