package presence

import (
	"errors"
	"sort"

	"github.com/locatotal/presence-backend-go/internal/models"
)

// ErrNoRegions is returned when an analysis is attempted without any
// region of interest; with no regions nothing could ever be detected.
var ErrNoRegions = errors.New("at least one region of interest is required")

// Result holds everything one analysis pass produces.
type Result struct {
	Periods      []models.Timeframe `json:"periods"`
	DateTotals   []models.DateTotal `json:"dateTotals"`
	TotalSeconds int64              `json:"totalSeconds"`
	SampleCount  int                `json:"sampleCount"`
}

// Run executes the full pipeline: sort samples by timestamp, classify
// each against regions and windows, merge presence runs into work
// periods and total them per date. The input slice is copied before
// sorting and never modified. An empty sample set is not an error; an
// empty region set is.
func Run(samples []models.Sample, regions []models.GeoPoint, windows []models.Timeframe, diag Logger) (Result, error) {
	if len(regions) == 0 {
		return Result{}, ErrNoRegions
	}
	if diag == nil {
		diag = NopLogger{}
	}

	sorted := make([]models.Sample, len(samples))
	copy(sorted, samples)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Time < sorted[j].Time })

	classifier := Classifier{Regions: regions, Windows: windows}
	periods := AggregatePeriods(sorted, classifier, diag)

	return Result{
		Periods:      periods,
		DateTotals:   DateTotals(periods),
		TotalSeconds: GrandTotal(periods),
		SampleCount:  len(samples),
	}, nil
}
