package ingest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/locatotal/presence-backend-go/internal/models"
)

// coordinateScale is the fixed-point factor of exported coordinates:
// degrees multiplied by 1e7 and stored as integers.
const coordinateScale = 10_000_000

// RawLocation mirrors one record of a location-history export. The
// timestamp is milliseconds since epoch, serialized either as a decimal
// string or as a bare number depending on export vintage; coordinates
// are fixed-point integer degrees.
type RawLocation struct {
	TimestampMs json.Number `json:"timestampMs"`
	LatitudeE7  *int64      `json:"latitudeE7"`
	LongitudeE7 *int64      `json:"longitudeE7"`
}

type export struct {
	Locations []RawLocation `json:"locations"`
}

// Normalize converts one raw export record into a canonical sample:
// milliseconds become whole seconds (floor division, so pre-epoch
// timestamps land on the right second) and fixed-point coordinates
// become decimal degrees. No geographic range validation happens here.
func Normalize(raw RawLocation) (models.Sample, error) {
	if raw.TimestampMs == "" {
		return models.Sample{}, errors.New("record missing timestampMs")
	}
	ms, err := raw.TimestampMs.Int64()
	if err != nil {
		return models.Sample{}, fmt.Errorf("non-numeric timestampMs %q: %w", raw.TimestampMs.String(), err)
	}
	if raw.LatitudeE7 == nil {
		return models.Sample{}, errors.New("record missing latitudeE7")
	}
	if raw.LongitudeE7 == nil {
		return models.Sample{}, errors.New("record missing longitudeE7")
	}

	return models.Sample{
		Time: floorDiv(ms, 1000),
		Point: models.GeoPoint{
			Lat:  float64(*raw.LatitudeE7) / coordinateScale,
			Long: float64(*raw.LongitudeE7) / coordinateScale,
		},
	}, nil
}

// ReadExport decodes a location-history export and normalizes every
// record. A single malformed record fails the whole read: silently
// dropping samples could corrupt period boundaries downstream.
func ReadExport(r io.Reader) ([]models.Sample, error) {
	var exp export
	if err := json.NewDecoder(r).Decode(&exp); err != nil {
		return nil, fmt.Errorf("failed to decode location export: %w", err)
	}

	samples := make([]models.Sample, 0, len(exp.Locations))
	for i, raw := range exp.Locations {
		s, err := Normalize(raw)
		if err != nil {
			return nil, fmt.Errorf("location record %d: %w", i, err)
		}
		samples = append(samples, s)
	}
	return samples, nil
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
