package report

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/locatotal/presence-backend-go/internal/models"
	"github.com/stretchr/testify/require"
)

func TestWritePeriods(t *testing.T) {
	periods := []models.Timeframe{
		{Start: 1000, Stop: 4600},
		{Start: 10000, Stop: 11800},
	}

	var buf bytes.Buffer
	require.NoError(t, WritePeriods(&buf, periods))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)

	wantFirst := fmt.Sprintf("%s to %s, 1.00 hours (timestamp 1000 seconds)",
		time.Unix(1000, 0).Format("2006-01-02 15:04:05"),
		time.Unix(4600, 0).Format("2006-01-02 15:04:05"))
	require.Equal(t, wantFirst, lines[0])
	require.Contains(t, lines[1], "0.50 hours (timestamp 10000 seconds)")
	require.Equal(t, "Total time: 1.50 hours", lines[2])
}

func TestWritePeriodsEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePeriods(&buf, nil))
	require.Equal(t, "Total time: 0.00 hours\n", buf.String())
}

func TestWriteDateTotals(t *testing.T) {
	totals := []models.DateTotal{
		{Date: models.Date{Year: 2021, Month: time.October, Day: 1}, Seconds: 3600},
		{Date: models.Date{Year: 2021, Month: time.October, Day: 2}, Seconds: 5400},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteDateTotals(&buf, totals))

	want := "Date,Seconds,Hours\n" +
		"10/01/2021,3600,1\n" +
		"10/02/2021,5400,1.5\n"
	require.Equal(t, want, buf.String())
}

func TestWriteDateTotalsHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDateTotals(&buf, nil))
	require.Equal(t, "Date,Seconds,Hours\n", buf.String())
}
