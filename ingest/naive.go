package ingest

import "time"

// MakeNaive strips an offset-bearing timestamp down to an offset-free
// (naive) representation in loc, matching the original implementation's
// make_naive: convert to loc's wall-clock fields, then drop the zone so
// later subtraction and equality checks against other ingested
// timestamps are well-defined. A value already in UTC (e.g. time.Parse
// without a zone) is treated as a UTC instant like any other; it comes
// back unchanged only when loc is UTC.
func MakeNaive(value time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	local := value.In(loc)
	return time.Date(
		local.Year(), local.Month(), local.Day(),
		local.Hour(), local.Minute(), local.Second(), local.Nanosecond(),
		time.UTC,
	)
}
