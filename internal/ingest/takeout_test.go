package ingest

import (
	"strings"
	"testing"

	"github.com/locatotal/presence-backend-go/internal/models"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 { return &v }

func TestNormalize(t *testing.T) {
	s, err := Normalize(RawLocation{
		TimestampMs: "1633036800123",
		LatitudeE7:  int64Ptr(100_000_000),
		LongitudeE7: int64Ptr(-1_234_567_890),
	})
	require.NoError(t, err)
	require.Equal(t, int64(1633036800), s.Time, "milliseconds truncate to whole seconds")
	require.Equal(t, 10.0, s.Point.Lat)
	require.Equal(t, -123.456789, s.Point.Long)
	require.Zero(t, s.Point.Radius, "a sample's own point is never a region")
}

func TestNormalizeFloorsPreEpochTimestamps(t *testing.T) {
	s, err := Normalize(RawLocation{
		TimestampMs: "-1500",
		LatitudeE7:  int64Ptr(0),
		LongitudeE7: int64Ptr(0),
	})
	require.NoError(t, err)
	require.Equal(t, int64(-2), s.Time)
}

func TestNormalizeMalformedRecords(t *testing.T) {
	lat, long := int64Ptr(100_000_000), int64Ptr(100_000_000)

	_, err := Normalize(RawLocation{LatitudeE7: lat, LongitudeE7: long})
	require.ErrorContains(t, err, "timestampMs")

	_, err = Normalize(RawLocation{TimestampMs: "not-a-number", LatitudeE7: lat, LongitudeE7: long})
	require.ErrorContains(t, err, "timestampMs")

	_, err = Normalize(RawLocation{TimestampMs: "1000", LongitudeE7: long})
	require.ErrorContains(t, err, "latitudeE7")

	_, err = Normalize(RawLocation{TimestampMs: "1000", LatitudeE7: lat})
	require.ErrorContains(t, err, "longitudeE7")
}

func TestReadExport(t *testing.T) {
	body := `{
		"locations": [
			{"timestampMs": "200000", "latitudeE7": 100000000, "longitudeE7": 100000000},
			{"timestampMs": "100000", "latitudeE7": 100500000, "longitudeE7": 99500000}
		]
	}`

	samples, err := ReadExport(strings.NewReader(body))
	require.NoError(t, err)
	require.Equal(t, []models.Sample{
		{Time: 200, Point: models.GeoPoint{Lat: 10.0, Long: 10.0}},
		{Time: 100, Point: models.GeoPoint{Lat: 10.05, Long: 9.95}},
	}, samples, "export order is preserved; sorting is the pipeline's job")
}

func TestReadExportAcceptsNumericTimestamps(t *testing.T) {
	body := `{"locations": [{"timestampMs": 5999, "latitudeE7": 0, "longitudeE7": 0}]}`

	samples, err := ReadExport(strings.NewReader(body))
	require.NoError(t, err)
	require.Len(t, samples, 1)
	require.Equal(t, int64(5), samples[0].Time)
}

func TestReadExportFailsWholeReadOnOneBadRecord(t *testing.T) {
	body := `{
		"locations": [
			{"timestampMs": "1000", "latitudeE7": 0, "longitudeE7": 0},
			{"timestampMs": "2000", "latitudeE7": 0}
		]
	}`

	_, err := ReadExport(strings.NewReader(body))
	require.ErrorContains(t, err, "record 1")
}

func TestReadExportRejectsGarbage(t *testing.T) {
	_, err := ReadExport(strings.NewReader("not json"))
	require.ErrorContains(t, err, "decode")
}

func TestReadExportEmpty(t *testing.T) {
	samples, err := ReadExport(strings.NewReader(`{"locations": []}`))
	require.NoError(t, err)
	require.Empty(t, samples)
}
