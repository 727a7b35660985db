package orbit

import "math"

// Params describes one body's closed orbit. SemiMajorAxis is in scene
// units, Inclination and Phase in radians, Speed in radians per scene
// second. Params never change after catalog load; the focused body
// samples through a derived copy from [Params.Effective] instead.
type Params struct {
	SemiMajorAxis float64 `yaml:"semi_major_axis"`
	Eccentricity  float64 `yaml:"eccentricity"`
	Inclination   float64 `yaml:"inclination"`
	Speed         float64 `yaml:"speed"`
	Phase         float64 `yaml:"phase"`
}

// Point3 is a position in the shared scene frame. The orbital plane
// before tilt is X-Z; Y points out of the reference plane.
type Point3 struct {
	X float64
	Y float64
	Z float64
}

// at samples the ellipse at angle th. The -a*e term on X places the
// primary at a focus rather than the ellipse center; it is
// load-bearing, not a cosmetic offset. Tilt is a fixed rotation about
// the X axis, so periapsis stays on +X.
func (p Params) at(th float64) Point3 {
	a := p.SemiMajorAxis
	b := a * math.Sqrt(1-p.Eccentricity*p.Eccentricity)

	x := math.Cos(th)*a - a*p.Eccentricity
	planarZ := math.Sin(th) * b

	sinI, cosI := math.Sincos(p.Inclination)
	return Point3{X: x, Y: planarZ * sinI, Z: planarZ * cosI}
}

// Position samples the body position at elapsed scene time t.
func (p Params) Position(t float64) Point3 {
	return p.at(t*p.Speed + p.Phase)
}

// Path traces the static ellipse as segments+1 points at evenly
// spaced angles from 0 to 2pi inclusive, first and last coincident.
// Phase is deliberately ignored: the trace does not move with the
// body. Returns nil when segments < 1.
func (p Params) Path(segments int) []Point3 {
	if segments < 1 {
		return nil
	}
	pts := make([]Point3, segments+1)
	for i := 0; i < segments; i++ {
		pts[i] = p.at(2 * math.Pi * float64(i) / float64(segments))
	}
	pts[segments] = pts[0]
	return pts
}

// Override perturbs a focused body's sampling without touching its
// static Params.
type Override struct {
	SpeedMultiplier   float64
	InclinationOffset float64 // radians
}

// Effective returns a copy of p with the override applied. A zero
// SpeedMultiplier means no scaling, so the zero Override is the
// identity.
func (p Params) Effective(o Override) Params {
	if o.SpeedMultiplier != 0 {
		p.Speed *= o.SpeedMultiplier
	}
	p.Inclination += o.InclinationOffset
	return p
}
