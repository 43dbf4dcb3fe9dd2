package predict

import "time"

// FloorDt returns t truncated down to the nearest whole multiple of
// dtMinutes, clearing seconds and sub-second precision. The truncation is
// against the wall-clock minute field (spec.md §4.1), not relative to an
// arbitrary origin.
func FloorDt(t time.Time, dtMinutes int) time.Time {
	minute := t.Minute() - t.Minute()%dtMinutes
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), minute, 0, 0, t.Location())
}

// CeilDt returns the smallest dt-aligned instant >= t. If t already falls
// on a dt boundary, t is returned unchanged.
func CeilDt(t time.Time, dtMinutes int) time.Time {
	floored := FloorDt(t, dtMinutes)
	if floored.Equal(t) {
		return t
	}
	return floored.Add(time.Duration(dtMinutes) * time.Minute)
}

// Grid returns the inclusive sequence start, start+dt, ..., last where
// last is the first point of that sequence >= end. start is not
// re-aligned: the grid is dt-aligned only when start is (the effect
// functions floor their computed start; CalculateIOB's StartAt override
// is used as given). Length is ceil((end-start)/dt) + 1.
func Grid(start, end time.Time, dtMinutes int) []time.Time {
	step := time.Duration(dtMinutes) * time.Minute
	if !end.After(start) {
		return []time.Time{start}
	}
	n := int((end.Sub(start) + step - 1) / step)
	out := make([]time.Time, 0, n+1)
	for i := 0; i <= n; i++ {
		out = append(out, start.Add(time.Duration(i)*step))
	}
	return out
}
