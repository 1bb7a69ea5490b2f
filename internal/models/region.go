package models

// Region is a stored circular area of interest. Radius is in decimal
// degrees, matching the planar containment test; RadiusMeters is an
// informational approximation filled in when regions are listed.
type Region struct {
	ID           int64   `json:"id,omitempty" db:"id"`
	Name         string  `json:"name,omitempty" db:"name"`
	Lat          float64 `json:"lat" db:"lat"`
	Long         float64 `json:"long" db:"long"`
	Radius       float64 `json:"radius" db:"radius"`
	RadiusMeters float64 `json:"radiusMeters,omitempty" db:"-"`
	CreatedAt    string  `json:"createdAt,omitempty" db:"created_at"`
}

// Point returns the region as a GeoPoint for classification.
func (r Region) Point() GeoPoint {
	return GeoPoint{Lat: r.Lat, Long: r.Long, Radius: r.Radius}
}

// Window is a stored allowed detection window.
type Window struct {
	ID    int64 `json:"id,omitempty" db:"id"`
	Start int64 `json:"start" db:"start"`
	Stop  int64 `json:"stop" db:"stop"`
}

// Timeframe returns the window as a Timeframe for classification.
func (w Window) Timeframe() Timeframe {
	return Timeframe{Start: w.Start, Stop: w.Stop}
}
