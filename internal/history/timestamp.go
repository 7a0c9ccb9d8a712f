package history

import "time"

// Chrome stores visit times as microseconds since 1601-01-01 UTC (the
// WebKit epoch). The Unix epoch is exactly 11,644,473,600 seconds later.
const webkitEpochOffsetMicros int64 = 11_644_473_600 * 1_000_000

// fromWebkitMicros converts a WebKit timestamp to a time.Time using exact
// integer arithmetic. A malformed value (non-positive, or one that lands
// before the Unix epoch) falls back to now rather than failing the read.
func fromWebkitMicros(v int64, now time.Time) time.Time {
	if v <= 0 {
		return now
	}
	unixMicros := v - webkitEpochOffsetMicros
	if unixMicros < 0 {
		return now
	}
	return time.UnixMicro(unixMicros)
}

// toWebkitMicros converts a time.Time to a WebKit timestamp.
func toWebkitMicros(t time.Time) int64 {
	return t.UnixMicro() + webkitEpochOffsetMicros
}
