package body

import (
	"math"

	"github.com/kiimicoum5/Astrale/internal/orbit"
)

// Scene time runs much faster than the sky: Earth completes one orbit
// in earthOrbitSeconds of scene time and one rotation in
// sceneDaySeconds. Every other body scales from its real period.
const (
	earthOrbitSeconds = 60.0
	sceneDaySeconds   = 4.0
	earthYearDays     = 365.25
)

// orbitRate converts a real orbital period in Earth days to an
// angular rate in radians per scene second.
func orbitRate(periodDays float64) float64 {
	return 2 * math.Pi / earthOrbitSeconds * (earthYearDays / periodDays)
}

// spinRate converts a real rotation period in Earth days to a spin
// rate in radians per scene second. Negative periods mean retrograde
// rotation and keep their sign.
func spinRate(rotationDays float64) float64 {
	if rotationDays == 0 {
		return 0
	}
	return 2 * math.Pi / (rotationDays * sceneDaySeconds)
}

// Builtin returns the default catalog: the eight planets, Pluto,
// Ceres, comet Halley and the scenario's hypothetical impactor.
// Distances and speeds are real values compressed to scene units;
// orbital inclinations are exaggerated for terminal visibility while
// InclinationDeg keeps the true figure for the info panel.
func Builtin() *Catalog {
	c, err := NewCatalog(builtinDefs())
	if err != nil {
		// The table below is compiled in; a validation failure here is
		// a programming error, not runtime input.
		panic(err)
	}
	return c
}

func builtinDefs() []Definition {
	return []Definition{
		{
			Name: "Mercury", Glyph: "●", Color: "#B5B5B5", BaseScale: 0.35,
			RotationSpeed: spinRate(58.65),
			Summary:       "Smallest planet, closest to the Sun; no atmosphere and extreme day-night swings.",
			DistanceAU:    0.387, InclinationDeg: 7.005,
			Orbit: orbit.Params{
				SemiMajorAxis: 6, Eccentricity: 0.2056,
				Inclination: orbit.Deg2Rad(21), Speed: orbitRate(87.97), Phase: 0.4,
			},
		},
		{
			Name: "Venus", Glyph: "●", Color: "#E8CDA2", BaseScale: 0.55,
			RotationSpeed: spinRate(-243.02),
			Summary:       "Hottest planet, wrapped in dense CO2 clouds; rotates backwards, slower than its own year.",
			DistanceAU:    0.723, InclinationDeg: 3.395,
			Orbit: orbit.Params{
				SemiMajorAxis: 8.5, Eccentricity: 0.0068,
				Inclination: orbit.Deg2Rad(10), Speed: orbitRate(224.70), Phase: 2.2,
			},
		},
		{
			Name: "Earth", Glyph: "●", Color: "#2E86AB", BaseScale: 0.6,
			RotationSpeed: spinRate(1.0),
			Summary:       "The only known harbor of life; 71% ocean, one large moon.",
			DistanceAU:    1.0, InclinationDeg: 0,
			Orbit: orbit.Params{
				SemiMajorAxis: 11, Eccentricity: 0.0167,
				Inclination: 0, Speed: orbitRate(earthYearDays), Phase: 4.0,
			},
		},
		{
			Name: "Mars", Glyph: "●", Color: "#C1440E", BaseScale: 0.45,
			RotationSpeed: spinRate(1.03),
			Summary:       "The red planet; home of Olympus Mons, the tallest volcano in the system.",
			DistanceAU:    1.524, InclinationDeg: 1.850,
			Orbit: orbit.Params{
				SemiMajorAxis: 14, Eccentricity: 0.0934,
				Inclination: orbit.Deg2Rad(5.5), Speed: orbitRate(686.97), Phase: 5.3,
			},
		},
		{
			Name: "Impactor", Glyph: "✦", Color: "#FF5D5D", BaseScale: 0.22,
			RotationSpeed: 2.8,
			Summary:       "Hypothetical near-Earth asteroid; the scenario controls drive this body when focused.",
			DistanceAU:    1.9, InclinationDeg: 12,
			Orbit: orbit.Params{
				SemiMajorAxis: 13, Eccentricity: 0.42,
				Inclination: orbit.Deg2Rad(19), Speed: orbitRate(550), Phase: 2.6,
			},
		},
		{
			Name: "Ceres", Glyph: "·", Color: "#9A9A8F", BaseScale: 0.2,
			RotationSpeed: spinRate(0.378),
			Summary:       "Largest object in the asteroid belt, promoted to dwarf planet.",
			DistanceAU:    2.77, InclinationDeg: 10.59,
			Orbit: orbit.Params{
				SemiMajorAxis: 17, Eccentricity: 0.0758,
				Inclination: orbit.Deg2Rad(18), Speed: orbitRate(1681.6), Phase: 1.1,
			},
		},
		{
			Name: "Jupiter", Glyph: "●", Color: "#C88B3A", BaseScale: 1.6,
			RotationSpeed: spinRate(0.41),
			Summary:       "Giant of the system; the Great Red Spot has raged for centuries.",
			DistanceAU:    5.204, InclinationDeg: 1.303,
			Orbit: orbit.Params{
				SemiMajorAxis: 21, Eccentricity: 0.0490,
				Inclination: orbit.Deg2Rad(4), Speed: orbitRate(4332.59), Phase: 3.3,
			},
		},
		{
			Name: "Halley", Glyph: "☄", Color: "#BFE3F0", BaseScale: 0.18,
			RotationSpeed: 0.4,
			Summary:       "Short-period comet on a long retrograde dive; returns every 75 years.",
			DistanceAU:    17.8, InclinationDeg: 162.26,
			Orbit: orbit.Params{
				SemiMajorAxis: 24, Eccentricity: 0.967,
				Inclination: orbit.Deg2Rad(162), Speed: orbitRate(27509), Phase: 0.15,
			},
		},
		{
			Name: "Saturn", Glyph: "●", Color: "#E4D191", BaseScale: 1.4,
			RotationSpeed: spinRate(0.44),
			Summary:       "Ringed gas giant light enough to float; rings are ice and rubble.",
			DistanceAU:    9.582, InclinationDeg: 2.489,
			Orbit: orbit.Params{
				SemiMajorAxis: 27, Eccentricity: 0.0565,
				Inclination: orbit.Deg2Rad(7.5), Speed: orbitRate(10759.22), Phase: 0.8,
			},
			Ring: &Ring{Inner: 1.6, Outer: 2.4},
		},
		{
			Name: "Uranus", Glyph: "●", Color: "#7DE8E8", BaseScale: 0.95,
			RotationSpeed: spinRate(-0.72),
			Summary:       "Ice giant rolling on its side; axis tipped past ninety degrees.",
			DistanceAU:    19.201, InclinationDeg: 0.773,
			Orbit: orbit.Params{
				SemiMajorAxis: 32, Eccentricity: 0.0463,
				Inclination: orbit.Deg2Rad(2.3), Speed: orbitRate(30688.5), Phase: 2.9,
			},
			Ring: &Ring{Inner: 1.3, Outer: 1.7},
		},
		{
			Name: "Neptune", Glyph: "●", Color: "#3F54BA", BaseScale: 0.9,
			RotationSpeed: spinRate(0.67),
			Summary:       "Farthest planet; supersonic winds and a 165 year orbit.",
			DistanceAU:    30.047, InclinationDeg: 1.770,
			Orbit: orbit.Params{
				SemiMajorAxis: 36, Eccentricity: 0.0097,
				Inclination: orbit.Deg2Rad(5.3), Speed: orbitRate(60182), Phase: 5.8,
			},
		},
		{
			Name: "Pluto", Glyph: "·", Color: "#C9B29B", BaseScale: 0.25,
			RotationSpeed: spinRate(6.39),
			Summary:       "Dwarf planet on a tilted, eccentric orbit that crosses inside Neptune's.",
			DistanceAU:    39.48, InclinationDeg: 17.16,
			Orbit: orbit.Params{
				SemiMajorAxis: 40, Eccentricity: 0.2488,
				Inclination: orbit.Deg2Rad(26), Speed: orbitRate(90560), Phase: 1.9,
			},
		},
	}
}

// Sun is the fixed visual anchor at the scene origin. It is not a
// catalog entry and has no orbit; the renderer draws it directly.
var Sun = Definition{
	Name: "Sun", Glyph: "☀", Color: "#FDB813", BaseScale: 3.0,
	RotationSpeed: spinRate(25.38),
	Summary:       "A near-perfect sphere of hot plasma holding the whole scene together.",
}
