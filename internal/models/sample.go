package models

// GeoPoint is a position in decimal degrees. Radius is only meaningful
// for regions of interest; a sample's own point always carries radius 0.
type GeoPoint struct {
	Lat    float64 `json:"lat"`
	Long   float64 `json:"long"`
	Radius float64 `json:"radius,omitempty"`
}

// Sample is one normalized geolocation observation: a Unix timestamp in
// whole seconds and a position. Samples are never mutated after creation.
type Sample struct {
	Time  int64    `json:"time"`
	Point GeoPoint `json:"point"`
}
