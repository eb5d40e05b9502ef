package timewindow

import (
	"fmt"
	"time"

	"lounge-scheduler/internal/pkg/errs"
)

// Window is a half-open interval [start, end).
type Window struct {
	start time.Time
	end   time.Time
}

func New(start, end time.Time) (Window, error) {
	if start.IsZero() || end.IsZero() {
		return Window{}, errs.Mark(errs.New("start and end are required"), errs.ErrInvalidWindow)
	}
	if !end.After(start) {
		return Window{}, errs.Mark(
			errs.Newf("end %s must be after start %s", end.Format(time.RFC3339), start.Format(time.RFC3339)),
			errs.ErrInvalidWindow,
		)
	}
	return Window{start: start, end: end}, nil
}

func MustNew(start, end time.Time) Window {
	w, err := New(start, end)
	if err != nil {
		panic(err)
	}
	return w
}

// Reconstruct rebuilds a persisted window without validation.
func Reconstruct(start, end time.Time) Window {
	return Window{start: start, end: end}
}

func (w Window) Start() time.Time        { return w.start }
func (w Window) End() time.Time          { return w.end }
func (w Window) Duration() time.Duration { return w.end.Sub(w.start) }
func (w Window) IsZero() bool            { return w.start.IsZero() && w.end.IsZero() }

// Overlaps is true iff a.start < b.end && b.start < a.end. Touching windows do not overlap.
func (w Window) Overlaps(other Window) bool {
	return w.start.Before(other.end) && other.start.Before(w.end)
}

// Contains reports start <= t < end.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.start) && t.Before(w.end)
}

func (w Window) Covers(other Window) bool {
	return !other.start.Before(w.start) && !other.end.After(w.end)
}

func (w Window) ValidateNotPastAt(now time.Time) error {
	if w.start.Before(now) {
		return errs.Mark(
			errs.Newf("start %s is before now %s", w.start.Format(time.RFC3339), now.Format(time.RFC3339)),
			errs.ErrInvalidWindow,
		)
	}
	return nil
}

func (w Window) String() string {
	return fmt.Sprintf("[%s,%s)", w.start.Format(time.RFC3339), w.end.Format(time.RFC3339))
}
