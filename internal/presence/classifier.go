package presence

import (
	"github.com/locatotal/presence-backend-go/internal/models"
)

// Classifier decides whether a single sample counts as present: inside
// at least one region circle and inside an allowed window, if any are
// configured. Both checks are pure; the classifier holds no state.
type Classifier struct {
	Regions []models.GeoPoint
	Windows []models.Timeframe
}

// AtRegion reports whether p falls strictly inside any region circle.
// The distance is planar, in raw decimal degrees: no spherical
// correction, valid only for small regions. A point exactly on the
// boundary is outside.
func (c Classifier) AtRegion(p models.GeoPoint) bool {
	for _, r := range c.Regions {
		dLong := p.Long - r.Long
		dLat := p.Lat - r.Lat
		if dLong*dLong+dLat*dLat < r.Radius*r.Radius {
			return true
		}
	}
	return false
}

// InWindow reports whether ts falls inside any allowed window, both ends
// inclusive. An empty window list means no restriction.
func (c Classifier) InWindow(ts int64) bool {
	if len(c.Windows) == 0 {
		return true
	}
	for _, w := range c.Windows {
		if w.Contains(ts) {
			return true
		}
	}
	return false
}

// Present combines both predicates for one sample.
func (c Classifier) Present(s models.Sample) bool {
	return c.InWindow(s.Time) && c.AtRegion(s.Point)
}
