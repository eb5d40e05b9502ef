//go:build unit

package subscription_test

import (
	"testing"
	"time"

	"lounge-scheduler/internal/domain/subscription"
	"lounge-scheduler/internal/pkg/errs"
	"lounge-scheduler/internal/pkg/ptr"
	"lounge-scheduler/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSubscription(t *testing.T) {
	now := time.Date(2025, 1, 31, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		params subscription.Params
		want   time.Time
		errIs  error
	}{
		{name: "monthly", params: subscription.Params{OwnerID: "kai", Plan: subscription.PlanMonthly}, want: now.AddDate(0, 1, 0)},
		{name: "quarterly", params: subscription.Params{OwnerID: "kai", Plan: subscription.PlanQuarterly}, want: now.AddDate(0, 3, 0)},
		{name: "yearly", params: subscription.Params{OwnerID: "kai", Plan: subscription.PlanYearly}, want: now.AddDate(1, 0, 0)},
		{name: "explicit expiry", params: subscription.Params{OwnerID: "kai", Plan: subscription.PlanMonthly, ExpiresAt: ptr.Of(now.Add(48 * time.Hour))}, want: now.Add(48 * time.Hour)},
		{name: "explicit expiry in the past", params: subscription.Params{OwnerID: "kai", Plan: subscription.PlanMonthly, ExpiresAt: ptr.Of(now)}, errIs: subscription.ErrExpiryBeforeCreate},
		{name: "blank owner", params: subscription.Params{OwnerID: " ", Plan: subscription.PlanMonthly}, errIs: subscription.ErrEmptyOwner},
		{name: "unknown plan", params: subscription.Params{OwnerID: "kai", Plan: "weekly"}, errIs: subscription.ErrInvalidPlan},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := subscription.NewSubscription(tt.params, now)
			if tt.errIs != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tt.errIs))
				assert.True(t, errs.Is(err, errs.ErrValidation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.ExpiresAt())
			assert.False(t, s.Renewed())
		})
	}
}

func TestSubscription(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	t.Run("active strictly before expiry", func(t *testing.T) {
		s := builder.NewSubscriptionBuilder().With(func(b *builder.SubscriptionBuilder) {
			b.ExpiresAt = now.Add(time.Hour)
		}).BuildReconstructed()

		assert.True(t, s.IsActiveAt(now))
		assert.True(t, s.IsActiveAt(now.Add(59*time.Minute)))
		assert.False(t, s.IsActiveAt(now.Add(time.Hour)))
		assert.Equal(t, time.Hour, s.TimeUntilExpiry(now))
	})

	t.Run("renew active extends from current expiry", func(t *testing.T) {
		expires := now.Add(48 * time.Hour)
		s := builder.NewSubscriptionBuilder().With(func(b *builder.SubscriptionBuilder) {
			b.ExpiresAt = expires
			b.Plan = subscription.PlanMonthly
		}).BuildReconstructed()

		s.Renew(now)
		assert.Equal(t, expires.AddDate(0, 1, 0), s.ExpiresAt())
		assert.True(t, s.Renewed())
		assert.Equal(t, now, s.UpdatedAt())
	})

	t.Run("renew lapsed extends from now", func(t *testing.T) {
		s := builder.NewSubscriptionBuilder().With(func(b *builder.SubscriptionBuilder) {
			b.ExpiresAt = now.Add(-72 * time.Hour)
			b.Plan = subscription.PlanQuarterly
		}).BuildReconstructed()

		s.Renew(now)
		assert.Equal(t, now.AddDate(0, 3, 0), s.ExpiresAt())
		assert.True(t, s.IsActiveAt(now))
	})

	t.Run("ownership is case insensitive", func(t *testing.T) {
		s := builder.NewSubscriptionBuilder().With(func(b *builder.SubscriptionBuilder) { b.OwnerID = "Kai" }).BuildReconstructed()
		assert.True(t, s.OwnedBy(" kai "))
		assert.False(t, s.OwnedBy("rin"))
	})
}
