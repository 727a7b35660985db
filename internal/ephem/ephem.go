// Package ephem supplies optional live sky positions for catalog
// bodies.
//
// The scene engine consults a [Provider] opportunistically on each
// frame; whenever the provider has no fix for a body the simulated
// kinematics stay authoritative. Providers must never block: the
// frame path tolerates a read lock and nothing more.
package ephem

import (
	"math"

	"github.com/kiimicoum5/Astrale/internal/orbit"
)

// Position is one live fix for a named body: equatorial coordinates
// in degrees, with an optional range.
type Position struct {
	Name    string  `json:"name"`
	RADeg   float64 `json:"ra"`
	DecDeg  float64 `json:"dec"`
	RangeAU float64 `json:"range_au,omitempty"`
}

// Provider yields the latest resolved fix for a body, if any.
type Provider interface {
	TryGetLatest(name string) (Position, bool)
}

// Null is the no-feed Provider; it never has a fix.
type Null struct{}

func (Null) TryGetLatest(string) (Position, bool) { return Position{}, false }

// ToCartesian projects a fix onto the scene sphere of the given
// radius: right ascension sweeps the X-Z plane, declination lifts
// toward +Y.
func ToCartesian(p Position, radius float64) orbit.Point3 {
	ra := orbit.Deg2Rad(p.RADeg)
	dec := orbit.Deg2Rad(p.DecDeg)
	return orbit.Point3{
		X: radius * math.Cos(dec) * math.Cos(ra),
		Y: radius * math.Sin(dec),
		Z: radius * math.Cos(dec) * math.Sin(ra),
	}
}
