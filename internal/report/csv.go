package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/locatotal/presence-backend-go/internal/models"
)

// WriteDateTotals emits the per-date totals as a CSV table with a
// Date,Seconds,Hours header, one row per distinct date in the order
// given (the aggregator hands them over sorted by date).
func WriteDateTotals(w io.Writer, totals []models.DateTotal) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"Date", "Seconds", "Hours"}); err != nil {
		return err
	}
	for _, t := range totals {
		row := []string{
			t.Date.String(),
			strconv.FormatInt(t.Seconds, 10),
			strconv.FormatFloat(t.Hours(), 'f', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
