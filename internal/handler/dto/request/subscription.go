package request

import "time"

type CreateSubscriptionRequest struct {
	OwnerID        string     `json:"ownerId" binding:"required,max=200"`
	Plan           string     `json:"plan" binding:"required,oneof=monthly quarterly yearly"`
	MembershipType string     `json:"membershipType,omitempty" binding:"max=50"`
	ExpiresAt      *time.Time `json:"expiresAt,omitempty"`
}
