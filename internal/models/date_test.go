package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDateOfUsesLocalCalendarDay(t *testing.T) {
	ts := time.Date(2023, 3, 10, 23, 59, 59, 0, time.Local).Unix()
	require.Equal(t, Date{Year: 2023, Month: time.March, Day: 10}, DateOf(ts))

	next := time.Date(2023, 3, 11, 0, 0, 0, 0, time.Local).Unix()
	require.Equal(t, Date{Year: 2023, Month: time.March, Day: 11}, DateOf(next))
}

func TestDateString(t *testing.T) {
	d := Date{Year: 2021, Month: time.February, Day: 3}
	require.Equal(t, "02/03/2021", d.String())
}

func TestDateBefore(t *testing.T) {
	a := Date{Year: 2021, Month: time.February, Day: 3}
	b := Date{Year: 2021, Month: time.February, Day: 4}
	c := Date{Year: 2021, Month: time.March, Day: 1}
	d := Date{Year: 2022, Month: time.January, Day: 1}

	require.True(t, a.Before(b))
	require.True(t, b.Before(c))
	require.True(t, c.Before(d))
	require.False(t, b.Before(a))
	require.False(t, a.Before(a))
}

func TestParseDateRoundTrip(t *testing.T) {
	d := Date{Year: 2023, Month: time.December, Day: 31}
	parsed, err := ParseDate(d.String())
	require.NoError(t, err)
	require.Equal(t, d, parsed)

	_, err = ParseDate("13/01/2023")
	require.Error(t, err)
	_, err = ParseDate("not a date")
	require.Error(t, err)
}

func TestDateTotalJSON(t *testing.T) {
	total := DateTotal{Date: Date{Year: 2021, Month: time.October, Day: 1}, Seconds: 5400}
	out, err := json.Marshal(total)
	require.NoError(t, err)
	require.JSONEq(t, `{"date":"10/01/2021","seconds":5400}`, string(out))
	require.Equal(t, 1.5, total.Hours())
}
