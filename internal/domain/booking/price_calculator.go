package booking

import (
	"lounge-scheduler/internal/domain/machine"
	"lounge-scheduler/internal/domain/timewindow"

	"github.com/google/uuid"
)

type PriceContext struct {
	MachineID uuid.UUID
	Category  machine.Category
}

type PriceCalculator interface {
	CalculatePriceCents(ctx PriceContext, w timewindow.Window) int64
}

// HourlyPriceCalculator charges a per-category hourly rate, prorated to the minute.
type HourlyPriceCalculator struct {
	DefaultHourlyRateCents int64
	RatesCents             map[machine.Category]int64
}

func NewHourlyPriceCalculator(defaultRateCents int64, rates map[machine.Category]int64) *HourlyPriceCalculator {
	if rates == nil {
		rates = map[machine.Category]int64{}
	}
	return &HourlyPriceCalculator{
		DefaultHourlyRateCents: defaultRateCents,
		RatesCents:             rates,
	}
}

func (pc *HourlyPriceCalculator) CalculatePriceCents(ctx PriceContext, w timewindow.Window) int64 {
	rate, ok := pc.RatesCents[ctx.Category]
	if !ok {
		rate = pc.DefaultHourlyRateCents
	}
	minutes := int64(w.Duration().Minutes())
	return rate * minutes / 60
}
