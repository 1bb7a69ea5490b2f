package report

import (
	"fmt"
	"io"
	"time"

	"github.com/locatotal/presence-backend-go/internal/models"
)

const timeLayout = "2006-01-02 15:04:05"

// WritePeriods renders one human-readable line per work period followed
// by a grand total. The total always appears, even over zero periods.
func WritePeriods(w io.Writer, periods []models.Timeframe) error {
	var total int64
	for _, p := range periods {
		total += p.Seconds()
		_, err := fmt.Fprintf(w, "%s to %s, %.2f hours (timestamp %d seconds)\n",
			time.Unix(p.Start, 0).Format(timeLayout),
			time.Unix(p.Stop, 0).Format(timeLayout),
			p.Hours(), p.Start)
		if err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "Total time: %.2f hours\n", float64(total)/models.SecondsPerHour)
	return err
}
