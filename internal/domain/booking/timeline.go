package booking

import (
	"sort"

	"lounge-scheduler/internal/domain/timewindow"
)

// Timeline is the committed bookings of one machine ordered by window start.
// Committed windows never overlap, so ends are ordered as well.
type Timeline []*Booking

func NewTimeline(bookings []*Booking) Timeline {
	t := make(Timeline, 0, len(bookings))
	for _, b := range bookings {
		if b.IsCommitted() {
			t = append(t, b)
		}
	}
	sort.SliceStable(t, func(i, j int) bool {
		return t[i].window.Start().Before(t[j].window.Start())
	})
	return t
}

// InsertionIndex returns the first position whose window starts at or after w.
func (t Timeline) InsertionIndex(w timewindow.Window) int {
	return sort.Search(len(t), func(i int) bool {
		return !t[i].window.Start().Before(w.Start())
	})
}

// Conflict returns the neighbour overlapping w, or nil. Only the predecessor
// and successor of the insertion point need checking.
func (t Timeline) Conflict(w timewindow.Window) *Booking {
	i := t.InsertionIndex(w)
	if i > 0 && t[i-1].window.Overlaps(w) {
		return t[i-1]
	}
	if i < len(t) && t[i].window.Overlaps(w) {
		return t[i]
	}
	return nil
}

// Active returns bookings still in the booked status, excluding skip.
func (t Timeline) Active(skip *Booking) []*Booking {
	var out []*Booking
	for _, b := range t {
		if b.IsActive() && (skip == nil || b.id != skip.id) {
			out = append(out, b)
		}
	}
	return out
}
