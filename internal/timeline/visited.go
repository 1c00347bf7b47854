package timeline

import "sort"

// IsVisited reports whether display position i has been revealed by time t,
// i.e. its interval has started. It is monotonic in t.
func (tl *Timeline) IsVisited(i int, t float64) bool {
	if i < 0 || i >= len(tl.intervals) {
		return false
	}
	return reached(t, tl.intervals[i].Start)
}

// VisitedCount is the number of revealed items at time t. Interval starts
// are increasing, so the revealed items are always positions [0, count).
func (tl *Timeline) VisitedCount(t float64) int {
	return sort.Search(len(tl.intervals), func(i int) bool {
		return !reached(t, tl.intervals[i].Start)
	})
}
