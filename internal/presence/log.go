package presence

import (
	"fmt"
	"log"

	"github.com/locatotal/presence-backend-go/internal/models"
)

// Logger is the diagnostic sink for transition narration. It is purely
// observational and never affects results.
type Logger interface {
	Infof(format string, args ...any)
	Debugf(format string, args ...any)
}

// StdLogger narrates through the standard library logger. Debug lines
// are emitted only when Debug is set.
type StdLogger struct {
	Debug bool
}

func (l StdLogger) Infof(format string, args ...any) {
	log.Printf(format, args...)
}

func (l StdLogger) Debugf(format string, args ...any) {
	if l.Debug {
		log.Printf(format, args...)
	}
}

// NopLogger discards all narration.
type NopLogger struct{}

func (NopLogger) Infof(string, ...any)  {}
func (NopLogger) Debugf(string, ...any) {}

// MapsLink returns a human-followable search link for a point's
// coordinates.
func MapsLink(p models.GeoPoint) string {
	return fmt.Sprintf("https://www.google.com/search?hl=en&q=%v%%2C%v", p.Lat, p.Long)
}
