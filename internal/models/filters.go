package models

// SampleFilter represents filter parameters for querying stored samples
type SampleFilter struct {
	StartTime int64 `form:"startTime"` // Unix timestamp, inclusive
	EndTime   int64 `form:"endTime"`   // Unix timestamp, inclusive
	Page      int   `form:"page"`
	PageSize  int   `form:"pageSize"`
}

// RunFilter represents filter parameters for listing analysis runs
type RunFilter struct {
	Page     int `form:"page"`
	PageSize int `form:"pageSize"`
}
