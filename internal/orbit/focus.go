package orbit

import "github.com/kiimicoum5/Astrale/internal/impact"

// FocusEffect is the full perturbation a focused body picks up from
// the live scenario: the kinematic override plus the rendered-size,
// spin-rate and glow factors the presentation layer reads.
type FocusEffect struct {
	RadiusMultiplier   float64
	SpeedMultiplier    float64
	RotationMultiplier float64
	InclinationOffset  float64 // radians
	Glow               float64 // emissive intensity, presentation only
}

// FocusEffects maps the live scenario onto the focused body's
// perturbation. Each factor clamps independently so no single control
// can run the visual scale or speed away.
func FocusEffects(p impact.Params) FocusEffect {
	return FocusEffect{
		RadiusMultiplier:   Clamp(1+p.Radius*0.08, 0.4, 4.2),
		SpeedMultiplier:    Clamp(1+p.Velocity*0.03, 0.25, 4.5),
		RotationMultiplier: Clamp(1+p.Mass*0.005, 0.5, 4.2),
		InclinationOffset:  Deg2Rad(p.Angle) * 0.02,
		Glow:               Clamp(0.2+p.Mass*0.01, 0.2, 1),
	}
}

// Override returns the kinematic subset of the effect, the part
// [Params.Effective] understands.
func (e FocusEffect) Override() Override {
	return Override{
		SpeedMultiplier:   e.SpeedMultiplier,
		InclinationOffset: e.InclinationOffset,
	}
}
