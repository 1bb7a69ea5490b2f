package spatial

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHaversineDistance(t *testing.T) {
	require.Zero(t, HaversineDistance(10, 10, 10, 10))

	// One degree of longitude at the equator is ~111.2 km
	d := HaversineDistance(0, 0, 0, 1)
	require.InDelta(t, 111195, d, 10)

	// Symmetric
	require.InDelta(t, d, HaversineDistance(0, 1, 0, 0), 0.001)
}

func TestApproxRadiusMeters(t *testing.T) {
	atEquator := ApproxRadiusMeters(0, 0, 0.01)
	require.InDelta(t, 1112, atEquator, 1)

	// Longitude degrees shrink with latitude
	atSixty := ApproxRadiusMeters(60, 0, 0.01)
	require.Less(t, atSixty, atEquator)
	require.InDelta(t, atEquator/2, atSixty, 10)
}
