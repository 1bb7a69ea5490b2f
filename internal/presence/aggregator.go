package presence

import (
	"sort"
	"time"

	"github.com/locatotal/presence-backend-go/internal/models"
)

// AggregatePeriods drives the presence state machine over samples that
// are already in non-decreasing timestamp order and returns the merged
// work periods. The only state is the currently open period, if any:
//
//	absent  -> present  opens a period at the sample's time
//	present -> present  extends the open period's stop
//	present -> absent   closes the open period as-is; the departure
//	                    sample's timestamp never extends it
//
// A period still open at end-of-stream is finalized the same way a
// departure would, capturing "history ends while still present".
func AggregatePeriods(samples []models.Sample, c Classifier, diag Logger) []models.Timeframe {
	if diag == nil {
		diag = NopLogger{}
	}

	var periods []models.Timeframe
	var open *models.Timeframe

	for _, s := range samples {
		present := c.Present(s)

		switch {
		case present && open == nil:
			open = &models.Timeframe{Start: s.Time, Stop: s.Time}
			diag.Debugf("Arrived at %s (%s)", time.Unix(s.Time, 0), MapsLink(s.Point))
		case present:
			open.Stop = s.Time
		case open != nil:
			periods = append(periods, *open)
			diag.Debugf("Departed, present for %.2f hours, %s to %s (went to %s)",
				open.Hours(), time.Unix(open.Start, 0), time.Unix(open.Stop, 0), MapsLink(s.Point))
			open = nil
		}
	}

	if open != nil {
		periods = append(periods, *open)
		diag.Debugf("History ended while present: %s to %s", time.Unix(open.Start, 0), time.Unix(open.Stop, 0))
	}

	return periods
}

// DateTotals folds finalized work periods into per-date second totals,
// keyed by the local calendar date of each period's start. A period
// spanning midnight is credited entirely to its start date; that is
// intentional policy, not rounding. Totals come back sorted by date.
func DateTotals(periods []models.Timeframe) []models.DateTotal {
	totals := make(map[models.Date]int64)
	for _, p := range periods {
		totals[models.DateOf(p.Start)] += p.Seconds()
	}

	out := make([]models.DateTotal, 0, len(totals))
	for d, seconds := range totals {
		out = append(out, models.DateTotal{Date: d, Seconds: seconds})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// GrandTotal sums the duration of all work periods in seconds.
func GrandTotal(periods []models.Timeframe) int64 {
	var total int64
	for _, p := range periods {
		total += p.Seconds()
	}
	return total
}
