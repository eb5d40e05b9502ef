//go:build unit

package timewindow_test

import (
	"testing"
	"time"

	"lounge-scheduler/internal/domain/timewindow"
	"lounge-scheduler/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func at(h, m int) time.Time {
	return time.Date(2025, 3, 1, h, m, 0, 0, time.UTC)
}

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		start, end time.Time
		errIs      error
	}{
		{name: "valid hour", start: at(10, 0), end: at(11, 0)},
		{name: "end equals start", start: at(10, 0), end: at(10, 0), errIs: errs.ErrInvalidWindow},
		{name: "end before start", start: at(11, 0), end: at(10, 0), errIs: errs.ErrInvalidWindow},
		{name: "zero start", end: at(10, 0), errIs: errs.ErrInvalidWindow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := timewindow.New(tt.start, tt.end)
			if tt.errIs != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tt.errIs))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.start, w.Start())
			assert.Equal(t, tt.end, w.End())
			assert.Equal(t, time.Hour, w.Duration())
		})
	}
}

func TestOverlaps(t *testing.T) {
	w := timewindow.MustNew(at(10, 0), at(11, 0))

	tests := []struct {
		name  string
		other timewindow.Window
		want  bool
	}{
		{name: "identical", other: timewindow.MustNew(at(10, 0), at(11, 0)), want: true},
		{name: "partial tail", other: timewindow.MustNew(at(10, 30), at(11, 30)), want: true},
		{name: "partial head", other: timewindow.MustNew(at(9, 30), at(10, 30)), want: true},
		{name: "enclosed", other: timewindow.MustNew(at(10, 15), at(10, 45)), want: true},
		{name: "enclosing", other: timewindow.MustNew(at(9, 0), at(12, 0)), want: true},
		{name: "touching after", other: timewindow.MustNew(at(11, 0), at(12, 0)), want: false},
		{name: "touching before", other: timewindow.MustNew(at(9, 0), at(10, 0)), want: false},
		{name: "disjoint", other: timewindow.MustNew(at(13, 0), at(14, 0)), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(w), "overlap must be symmetric")
		})
	}
}

func TestContainsAndCovers(t *testing.T) {
	w := timewindow.MustNew(at(10, 0), at(11, 0))

	assert.True(t, w.Contains(at(10, 0)))
	assert.True(t, w.Contains(at(10, 59)))
	assert.False(t, w.Contains(at(11, 0)))
	assert.False(t, w.Contains(at(9, 59)))

	assert.True(t, w.Covers(timewindow.MustNew(at(10, 0), at(11, 0))))
	assert.True(t, w.Covers(timewindow.MustNew(at(10, 10), at(10, 20))))
	assert.False(t, w.Covers(timewindow.MustNew(at(10, 30), at(11, 30))))
}

func TestValidateNotPastAt(t *testing.T) {
	w := timewindow.MustNew(at(10, 0), at(11, 0))

	require.NoError(t, w.ValidateNotPastAt(at(10, 0)))
	require.NoError(t, w.ValidateNotPastAt(at(9, 0)))

	err := w.ValidateNotPastAt(at(10, 1))
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrInvalidWindow))
}

func TestString(t *testing.T) {
	w := timewindow.MustNew(base, base.Add(time.Hour))
	assert.Equal(t, "[2025-03-01T10:00:00Z,2025-03-01T11:00:00Z)", w.String())
}
