package ingest

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/locatotal/presence-backend-go/internal/models"
)

// ErrNoRegions is returned when a region source yields no usable lines.
var ErrNoRegions = errors.New("region file defines no regions")

// ReadRegions parses a region file: one "lat,long,radius" line per
// region, all in decimal degrees. Blank lines are skipped and a leading
// '#' comments a line out. Zero usable lines is a configuration error,
// surfaced before any processing starts.
func ReadRegions(r io.Reader) ([]models.GeoPoint, error) {
	var regions []models.GeoPoint

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Split(line, ",")
		if len(parts) != 3 {
			return nil, fmt.Errorf("region line %d: want lat,long,radius, got %q", lineNo, line)
		}

		var vals [3]float64
		for i, part := range parts {
			v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
			if err != nil {
				return nil, fmt.Errorf("region line %d: %w", lineNo, err)
			}
			vals[i] = v
		}
		if vals[2] <= 0 {
			return nil, fmt.Errorf("region line %d: radius must be positive", lineNo)
		}

		regions = append(regions, models.GeoPoint{Lat: vals[0], Long: vals[1], Radius: vals[2]})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read region file: %w", err)
	}

	if len(regions) == 0 {
		return nil, ErrNoRegions
	}
	return regions, nil
}

// ParseWindow parses one "start,stop" pair of Unix seconds into an
// allowed detection window.
func ParseWindow(s string) (models.Timeframe, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return models.Timeframe{}, fmt.Errorf("want start,stop, got %q", s)
	}

	start, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil {
		return models.Timeframe{}, fmt.Errorf("invalid window start: %w", err)
	}
	stop, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
	if err != nil {
		return models.Timeframe{}, fmt.Errorf("invalid window stop: %w", err)
	}
	if start > stop {
		return models.Timeframe{}, fmt.Errorf("window start %d is after stop %d", start, stop)
	}

	return models.Timeframe{Start: start, Stop: stop}, nil
}
