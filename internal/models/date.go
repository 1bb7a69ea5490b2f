package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Date identifies one local calendar day. Two timestamps belong to the
// same Date iff they fall on the same day in local time, regardless of
// how the day is later formatted.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the local calendar date of a Unix timestamp.
func DateOf(ts int64) Date {
	y, m, d := time.Unix(ts, 0).Date()
	return Date{Year: y, Month: m, Day: d}
}

// Before reports whether d is an earlier calendar day than other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// String formats the date as MM/DD/YYYY.
func (d Date) String() string {
	return fmt.Sprintf("%02d/%02d/%04d", int(d.Month), d.Day, d.Year)
}

// MarshalJSON renders the date as its MM/DD/YYYY string.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// ParseDate reads a date back from its MM/DD/YYYY form.
func ParseDate(s string) (Date, error) {
	var m, day, year int
	if _, err := fmt.Sscanf(s, "%d/%d/%d", &m, &day, &year); err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	if m < 1 || m > 12 || day < 1 || day > 31 {
		return Date{}, fmt.Errorf("invalid date %q", s)
	}
	return Date{Year: year, Month: time.Month(m), Day: day}, nil
}

// DateTotal is the accumulated presence time for one calendar date. A
// work period is credited entirely to the date of its start, even when
// it spans midnight.
type DateTotal struct {
	Date    Date  `json:"date"`
	Seconds int64 `json:"seconds"`
}

// Hours returns the accumulated time in fractional hours.
func (t DateTotal) Hours() float64 {
	return float64(t.Seconds) / SecondsPerHour
}
