package models

// SecondsPerHour converts accumulated seconds into report hours.
const SecondsPerHour = 60 * 60

// Timeframe is a closed interval of Unix seconds, start <= stop. It is
// used both for allowed detection windows (input) and for work periods
// (output). A work period's bounds are always actual sample timestamps.
type Timeframe struct {
	Start int64 `json:"start"`
	Stop  int64 `json:"stop"`
}

// Contains reports whether ts falls inside the interval, both ends
// inclusive.
func (t Timeframe) Contains(ts int64) bool {
	return t.Start <= ts && ts <= t.Stop
}

// Seconds returns the interval length in seconds.
func (t Timeframe) Seconds() int64 {
	return t.Stop - t.Start
}

// Hours returns the interval length in fractional hours.
func (t Timeframe) Hours() float64 {
	return float64(t.Seconds()) / SecondsPerHour
}
