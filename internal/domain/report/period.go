package report

import (
	"strings"
	"time"

	"lounge-scheduler/internal/domain/timewindow"
	"lounge-scheduler/internal/pkg/errs"
)

type Period string

const (
	PeriodPreviousMonth Period = "previous-month"
	PeriodLast3Months   Period = "last-3-months"
	PeriodLast6Months   Period = "last-6-months"
	PeriodLastYear      Period = "last-year"
)

var periodMonths = map[Period]int{
	PeriodPreviousMonth: 1,
	PeriodLast3Months:   3,
	PeriodLast6Months:   6,
	PeriodLastYear:      12,
}

func Periods() []Period {
	return []Period{PeriodPreviousMonth, PeriodLast3Months, PeriodLast6Months, PeriodLastYear}
}

// ResolvePeriod maps a named period to [now-N months, now).
func ResolvePeriod(name string, now time.Time) (timewindow.Window, error) {
	p := Period(strings.ToLower(strings.TrimSpace(name)))
	months, ok := periodMonths[p]
	if !ok {
		return timewindow.Window{}, errs.Mark(errs.Newf("unknown report period %q", name), errs.ErrConfiguration)
	}
	return timewindow.New(now.AddDate(0, -months, 0), now)
}
