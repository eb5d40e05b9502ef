package booking

import "lounge-scheduler/internal/pkg/errs"

// Money is an amount in minor currency units.
type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func NewMoneyFromInt(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.Mark(errs.New("money cannot be negative"), errs.ErrValidation)
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Major() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) IsZero() bool {
	return m.cents == 0
}
