package offer

import "lounge-scheduler/internal/pkg/errs"

var (
	ErrInvalidDiscountAmount  = errs.Mark(errs.New("discount amount cannot be negative"), errs.ErrValidation)
	ErrInvalidDiscountPercent = errs.Mark(errs.New("percentage discount must be between 0 and 100"), errs.ErrValidation)
	ErrAmbiguousDiscount      = errs.Mark(errs.New("discount can only be either fixed amount or percentage, not both"), errs.ErrValidation)
)

// Discount is either a fixed amount or a percentage. The zero value discounts nothing.
type Discount struct {
	amountOffCents *int64
	percentOff     *float64
}

func NewDiscount(amountOffCents *int64, percentOff *float64) (Discount, error) {
	switch {
	case amountOffCents != nil && percentOff != nil:
		return Discount{}, ErrAmbiguousDiscount
	case amountOffCents != nil:
		if *amountOffCents < 0 {
			return Discount{}, ErrInvalidDiscountAmount
		}
		v := *amountOffCents
		return Discount{amountOffCents: &v}, nil
	case percentOff != nil:
		if *percentOff < 0 || *percentOff > 100 {
			return Discount{}, ErrInvalidDiscountPercent
		}
		v := *percentOff
		return Discount{percentOff: &v}, nil
	default:
		return Discount{}, nil
	}
}

func (d Discount) IsZero() bool       { return d.amountOffCents == nil && d.percentOff == nil }
func (d Discount) IsPercentage() bool { return d.percentOff != nil }

func (d Discount) AmountOffCents() *int64 { return d.amountOffCents }
func (d Discount) PercentOff() *float64   { return d.percentOff }

// Apply never discounts below zero.
func (d Discount) Apply(baseCents int64) int64 {
	var off int64
	switch {
	case d.percentOff != nil:
		off = int64(float64(baseCents) * (*d.percentOff / 100.0))
	case d.amountOffCents != nil:
		off = *d.amountOffCents
	}
	if off > baseCents {
		return 0
	}
	return baseCents - off
}
