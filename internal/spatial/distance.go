package spatial

import (
	"github.com/golang/geo/s2"
)

// EarthRadiusMeters is Earth's mean radius in meters
const EarthRadiusMeters = 6371000.0

// HaversineDistance calculates the great-circle distance between two
// points in meters
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}

// ApproxRadiusMeters estimates the metric radius of a degree-radius
// circle by measuring its east-west extent at the center's latitude.
// Informational only: containment tests stay in planar degree space,
// where the circle is exact.
func ApproxRadiusMeters(lat, lon, radiusDeg float64) float64 {
	return HaversineDistance(lat, lon, lat, lon+radiusDeg)
}
