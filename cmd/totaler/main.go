package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/locatotal/presence-backend-go/internal/ingest"
	"github.com/locatotal/presence-backend-go/internal/models"
	"github.com/locatotal/presence-backend-go/internal/presence"
	"github.com/locatotal/presence-backend-go/internal/report"
)

// timeFlags collects repeatable -time values.
type timeFlags []string

func (t *timeFlags) String() string     { return strings.Join(*t, " ") }
func (t *timeFlags) Set(v string) error { *t = append(*t, v); return nil }

func main() {
	os.Exit(run())
}

func run() int {
	var (
		areaPath string
		output   string
		debug    bool
		times    timeFlags
	)
	flag.StringVar(&areaPath, "area", "", "path to a file of lat,long,radius lines; a leading '#' comments a line out")
	flag.Var(&times, "time", "start,stop pair of Unix seconds; repeatable, omit to accept all times")
	flag.StringVar(&output, "o", "", "write per-date CSV totals to the given path instead of printing periods")
	flag.BoolVar(&debug, "debug", false, "enable debug narration")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"Usage: %s [flags] <location-export.json>\n\nTotals the time spent inside configured regions of interest.\n\n",
			os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		return 2
	}
	exportPath := flag.Arg(0)

	diag := presence.StdLogger{Debug: debug}

	if areaPath == "" {
		fmt.Fprintln(os.Stderr, "You must specify at least one region of interest via -area")
		return 1
	}
	diag.Infof("Opening points of interest from %s", areaPath)
	regions, err := readRegionFile(areaPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	var windows []models.Timeframe
	for _, pair := range times {
		w, err := ingest.ParseWindow(pair)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		diag.Infof("Allowed window from %s to %s", time.Unix(w.Start, 0), time.Unix(w.Stop, 0))
		windows = append(windows, w)
	}

	diag.Infof("Opening location export from %s", exportPath)
	samples, err := readExportFile(exportPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	result, err := presence.Run(samples, regions, windows, diag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if output == "" {
		if err := report.WritePeriods(os.Stdout, result.Periods); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		return 0
	}

	diag.Infof("Writing CSV to %s", output)
	if err := writeCSVFile(output, result.DateTotals); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func readRegionFile(path string) ([]models.GeoPoint, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ingest.ReadRegions(f)
}

func readExportFile(path string) ([]models.Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ingest.ReadExport(f)
}

func writeCSVFile(path string, totals []models.DateTotal) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := report.WriteDateTotals(f, totals); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
