package models

// Run is one persisted analysis execution: the configuration snapshot it
// ran against is implicit (current samples, regions and windows); the
// outputs are stored with it so past runs remain reproducible reads.
type Run struct {
	ID           string      `json:"id" db:"id"`
	CreatedAt    int64       `json:"createdAt" db:"created_at"` // Unix timestamp in seconds
	SampleCount  int         `json:"sampleCount" db:"sample_count"`
	TotalSeconds int64       `json:"totalSeconds" db:"total_seconds"`
	Periods      []Timeframe `json:"periods,omitempty"`
	DateTotals   []DateTotal `json:"dateTotals,omitempty"`
}
