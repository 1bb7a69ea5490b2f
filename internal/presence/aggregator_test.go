package presence

import (
	"testing"
	"time"

	"github.com/locatotal/presence-backend-go/internal/models"
	"github.com/stretchr/testify/require"
)

var testRegion = models.GeoPoint{Lat: 10.0, Long: 10.0, Radius: 0.01}

func inside(ts int64) models.Sample {
	return models.Sample{Time: ts, Point: models.GeoPoint{Lat: 10.0, Long: 10.0}}
}

func outside(ts int64) models.Sample {
	return models.Sample{Time: ts, Point: models.GeoPoint{Lat: 11.0, Long: 10.0}}
}

func TestDepartureClosesPeriod(t *testing.T) {
	// Inside at 100 and 200, outside at 300: the departure sample's
	// timestamp must not extend the period.
	samples := []models.Sample{inside(100), inside(200), outside(300)}

	result, err := Run(samples, []models.GeoPoint{testRegion}, nil, nil)
	require.NoError(t, err)
	require.Equal(t, []models.Timeframe{{Start: 100, Stop: 200}}, result.Periods)
	require.Equal(t, int64(100), result.TotalSeconds)
}

func TestEndOfStreamFinalizesOpenPeriod(t *testing.T) {
	samples := []models.Sample{inside(100), inside(200)}

	result, err := Run(samples, []models.GeoPoint{testRegion}, nil, nil)
	require.NoError(t, err)
	require.Equal(t, []models.Timeframe{{Start: 100, Stop: 200}}, result.Periods)
}

func TestNoPresenceYieldsEmptyOutputs(t *testing.T) {
	samples := []models.Sample{outside(100), outside(200), outside(300)}

	result, err := Run(samples, []models.GeoPoint{testRegion}, nil, nil)
	require.NoError(t, err)
	require.Empty(t, result.Periods)
	require.Empty(t, result.DateTotals)
	require.Zero(t, result.TotalSeconds)
}

func TestEmptyInputIsNotAnError(t *testing.T) {
	result, err := Run(nil, []models.GeoPoint{testRegion}, nil, nil)
	require.NoError(t, err)
	require.Empty(t, result.Periods)
	require.Empty(t, result.DateTotals)
	require.Zero(t, result.TotalSeconds)
}

func TestNoRegionsIsAnError(t *testing.T) {
	_, err := Run([]models.Sample{inside(100)}, nil, nil, nil)
	require.ErrorIs(t, err, ErrNoRegions)
}

func TestWindowsRestrictPresence(t *testing.T) {
	windows := []models.Timeframe{{Start: 0, Stop: 50}, {Start: 100, Stop: 150}}
	samples := []models.Sample{inside(60), inside(120)}

	result, err := Run(samples, []models.GeoPoint{testRegion}, windows, nil)
	require.NoError(t, err)
	require.Equal(t, []models.Timeframe{{Start: 120, Stop: 120}}, result.Periods)
}

func TestMultiplePeriodsOrderedAndDisjoint(t *testing.T) {
	samples := []models.Sample{
		inside(100), inside(200), outside(300),
		inside(400), inside(500), outside(600),
		inside(700),
	}

	result, err := Run(samples, []models.GeoPoint{testRegion}, nil, nil)
	require.NoError(t, err)
	require.Len(t, result.Periods, 3)

	for i, p := range result.Periods {
		require.LessOrEqual(t, p.Start, p.Stop)
		if i > 0 {
			prev := result.Periods[i-1]
			require.LessOrEqual(t, prev.Start, p.Start, "periods emitted in non-decreasing start order")
			require.Less(t, prev.Stop, p.Start, "periods must not overlap")
		}
	}
}

func TestSumPropertyMatchesGrandTotal(t *testing.T) {
	samples := []models.Sample{
		inside(100), inside(250), outside(300),
		inside(1000), inside(1500), inside(2200), outside(2300),
	}

	result, err := Run(samples, []models.GeoPoint{testRegion}, nil, nil)
	require.NoError(t, err)

	var sum int64
	for _, p := range result.Periods {
		sum += p.Seconds()
	}
	require.Equal(t, sum, result.TotalSeconds)
	require.Equal(t, sum, GrandTotal(result.Periods))
}

func TestRunSortsWithoutMutatingInput(t *testing.T) {
	unsorted := []models.Sample{inside(200), outside(300), inside(100)}
	original := make([]models.Sample, len(unsorted))
	copy(original, unsorted)

	result, err := Run(unsorted, []models.GeoPoint{testRegion}, nil, nil)
	require.NoError(t, err)
	require.Equal(t, []models.Timeframe{{Start: 100, Stop: 200}}, result.Periods)
	require.Equal(t, original, unsorted, "input slice must not be reordered")
}

func TestRunIsIdempotent(t *testing.T) {
	samples := []models.Sample{inside(100), inside(200), outside(300), inside(400)}
	regions := []models.GeoPoint{testRegion}
	windows := []models.Timeframe{{Start: 0, Stop: 1000}}

	first, err := Run(samples, regions, windows, nil)
	require.NoError(t, err)
	second, err := Run(samples, regions, windows, nil)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestDateTotalsAccumulatePerStartDate(t *testing.T) {
	day1 := time.Date(2023, 3, 10, 9, 0, 0, 0, time.Local).Unix()
	periods := []models.Timeframe{
		{Start: day1, Stop: day1 + 3600},
		{Start: day1 + 7200, Stop: day1 + 9000},
	}

	totals := DateTotals(periods)
	require.Len(t, totals, 1)
	require.Equal(t, models.Date{Year: 2023, Month: time.March, Day: 10}, totals[0].Date)
	require.Equal(t, int64(5400), totals[0].Seconds)
}

func TestPeriodSpanningMidnightCreditsStartDate(t *testing.T) {
	start := time.Date(2023, 3, 10, 23, 0, 0, 0, time.Local).Unix()
	stop := time.Date(2023, 3, 11, 1, 0, 0, 0, time.Local).Unix()

	totals := DateTotals([]models.Timeframe{{Start: start, Stop: stop}})
	require.Len(t, totals, 1)
	require.Equal(t, models.Date{Year: 2023, Month: time.March, Day: 10}, totals[0].Date)
	require.Equal(t, stop-start, totals[0].Seconds)
}

func TestDateTotalsSortedByDate(t *testing.T) {
	early := time.Date(2023, 1, 5, 12, 0, 0, 0, time.Local).Unix()
	late := time.Date(2023, 2, 1, 12, 0, 0, 0, time.Local).Unix()
	periods := []models.Timeframe{
		{Start: late, Stop: late + 60},
		{Start: early, Stop: early + 60},
	}

	totals := DateTotals(periods)
	require.Len(t, totals, 2)
	require.True(t, totals[0].Date.Before(totals[1].Date))
}
