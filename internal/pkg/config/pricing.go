package config

import (
	"os"

	"lounge-scheduler/internal/domain/booking"
	"lounge-scheduler/internal/domain/machine"
	"lounge-scheduler/internal/pkg/errs"

	"gopkg.in/yaml.v3"
)

// PricingTable is the on-disk form of the hourly rates:
//
//	default_hourly_rate_cents: 1200
//	rates:
//	  vr: 3000
type PricingTable struct {
	DefaultHourlyRateCents *int64           `yaml:"default_hourly_rate_cents"`
	Rates                  map[string]int64 `yaml:"rates"`
}

// LoadPriceCalculator builds the calculator from cfg, reading the YAML table
// when a file is configured. Rates in the file override the env default.
func LoadPriceCalculator(cfg PricingConfig) (*booking.HourlyPriceCalculator, error) {
	def := cfg.DefaultHourlyRateCents
	rates := map[machine.Category]int64{}
	if cfg.File == "" {
		return booking.NewHourlyPriceCalculator(def, rates), nil
	}

	data, err := os.ReadFile(cfg.File)
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "read pricing file %s", cfg.File), errs.ErrConfiguration)
	}
	var table PricingTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "parse pricing file %s", cfg.File), errs.ErrConfiguration)
	}

	if table.DefaultHourlyRateCents != nil {
		def = *table.DefaultHourlyRateCents
	}
	if def < 0 {
		return nil, errs.Mark(errs.New("default hourly rate cannot be negative"), errs.ErrConfiguration)
	}
	for name, cents := range table.Rates {
		cat := machine.Category(name)
		if !cat.IsValid() {
			return nil, errs.Mark(errs.Newf("pricing file: unknown machine category %q", name), errs.ErrConfiguration)
		}
		if cents < 0 {
			return nil, errs.Mark(errs.Newf("pricing file: negative rate for %s", name), errs.ErrConfiguration)
		}
		rates[cat] = cents
	}
	return booking.NewHourlyPriceCalculator(def, rates), nil
}
