package offer

import "time"

// Validate classifies the offer at now. It has no side effects and the same
// inputs always give the same answer.
//
// Windowed offers are Invalid when the window is missing or inverted, or when it
// starts before the offer was created. Standing offers are Active until revoked.
// A revoked offer reports Expired.
func Validate(o *Offer, now time.Time) Status {
	if o == nil || !o.category.IsValid() {
		return StatusInvalid
	}

	if !o.category.IsWindowed() {
		if o.revokedAt != nil && !now.Before(*o.revokedAt) {
			return StatusExpired
		}
		return StatusActive
	}

	if o.validFrom == nil || o.validTo == nil {
		return StatusInvalid
	}
	start, end := *o.validFrom, *o.validTo
	if !end.After(start) || start.Before(o.createdAt) {
		return StatusInvalid
	}
	if o.category == CategoryExclusive && o.membershipType == "" {
		return StatusInvalid
	}

	if o.revokedAt != nil && !now.Before(*o.revokedAt) {
		return StatusExpired
	}

	switch {
	case now.Before(start):
		return StatusPending
	case now.Before(end):
		return StatusActive
	default:
		return StatusExpired
	}
}

func (o *Offer) StatusAt(now time.Time) Status {
	return Validate(o, now)
}
