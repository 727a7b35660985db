package orbit

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/kiimicoum5/Astrale/internal/impact"
)

func TestFocusEffectsReferenceScenario(t *testing.T) {
	p := impact.Params{Mass: 28, Radius: 0.9, Velocity: 22, Angle: 37, Gravity: 9.81, Density: 3.1}

	eff := FocusEffects(p)

	if !scalar.EqualWithinAbs(eff.RadiusMultiplier, 1+0.9*0.08, 1e-12) {
		t.Errorf("radius multiplier: got %f", eff.RadiusMultiplier)
	}
	if !scalar.EqualWithinAbs(eff.SpeedMultiplier, 1+22*0.03, 1e-12) {
		t.Errorf("speed multiplier: got %f", eff.SpeedMultiplier)
	}
	if !scalar.EqualWithinAbs(eff.RotationMultiplier, 1+28*0.005, 1e-12) {
		t.Errorf("rotation multiplier: got %f", eff.RotationMultiplier)
	}
	if !scalar.EqualWithinAbs(eff.InclinationOffset, Deg2Rad(37)*0.02, 1e-12) {
		t.Errorf("inclination offset: got %f", eff.InclinationOffset)
	}
}

func TestFocusEffectsClamps(t *testing.T) {
	tests := []struct {
		name   string
		params impact.Params
		get    func(FocusEffect) float64
		want   float64
	}{
		{"speed ceiling", impact.Params{Velocity: 200}, func(e FocusEffect) float64 { return e.SpeedMultiplier }, 4.5},
		{"speed floor", impact.Params{Velocity: -100}, func(e FocusEffect) float64 { return e.SpeedMultiplier }, 0.25},
		{"radius ceiling", impact.Params{Radius: 100}, func(e FocusEffect) float64 { return e.RadiusMultiplier }, 4.2},
		{"radius floor", impact.Params{Radius: -20}, func(e FocusEffect) float64 { return e.RadiusMultiplier }, 0.4},
		{"rotation ceiling", impact.Params{Mass: 2000}, func(e FocusEffect) float64 { return e.RotationMultiplier }, 4.2},
		{"rotation floor", impact.Params{Mass: -500}, func(e FocusEffect) float64 { return e.RotationMultiplier }, 0.5},
		{"glow ceiling", impact.Params{Mass: 200}, func(e FocusEffect) float64 { return e.Glow }, 1},
	}

	for _, tt := range tests {
		got := tt.get(FocusEffects(tt.params))
		if got != tt.want {
			t.Errorf("%s: expected %f, got %f", tt.name, tt.want, got)
		}
	}
}

func TestFocusEffectsInsideClampsForLegalDomain(t *testing.T) {
	// Across the declared parameter bounds every multiplier must stay
	// inside its clamp range.
	for _, m := range []float64{2, 80} {
		for _, r := range []float64{0.1, 2.5} {
			for _, v := range []float64{10, 45} {
				p := impact.Params{Mass: m, Radius: r, Velocity: v, Angle: 40}
				eff := FocusEffects(p)
				if eff.SpeedMultiplier < 0.25 || eff.SpeedMultiplier > 4.5 {
					t.Errorf("speed multiplier %f escaped its clamp", eff.SpeedMultiplier)
				}
				if eff.RadiusMultiplier < 0.4 || eff.RadiusMultiplier > 4.2 {
					t.Errorf("radius multiplier %f escaped its clamp", eff.RadiusMultiplier)
				}
				if eff.RotationMultiplier < 0.5 || eff.RotationMultiplier > 4.2 {
					t.Errorf("rotation multiplier %f escaped its clamp", eff.RotationMultiplier)
				}
			}
		}
	}
}

func TestOverrideSubset(t *testing.T) {
	eff := FocusEffects(impact.DefaultParams())
	o := eff.Override()

	if o.SpeedMultiplier != eff.SpeedMultiplier {
		t.Errorf("expected speed multiplier %f, got %f", eff.SpeedMultiplier, o.SpeedMultiplier)
	}
	if o.InclinationOffset != eff.InclinationOffset {
		t.Errorf("expected inclination offset %f, got %f", eff.InclinationOffset, o.InclinationOffset)
	}
}
