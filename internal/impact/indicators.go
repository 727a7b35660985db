package impact

import "math"

// Indicators holds the derived consequence read-outs. Every value is
// recomputed from scratch on each call to [Compute]; nothing here is
// cached or mutated in place.
type Indicators struct {
	Energy           float64 `json:"energy"`        // joules
	EnergyMegaton    float64 `json:"megaton"`       // megatons TNT equivalent
	Richter          float64 `json:"richter"`       // seismic magnitude proxy
	CraterDiameterKm float64 `json:"crater_km"`     // transient crater diameter, km
	TsunamiHeight    float64 `json:"tsunami_m"`     // meters at the nearest coast
	WarningHours     float64 `json:"warning_h"`     // remaining time to impact
	DeflectionDelta  float64 `json:"deflection_dv"` // m/s of deflection budget
}

// megatonJoules converts to TNT equivalent: one megaton is 4.184e15 J.
const megatonJoules = 4.184e15

// Compute derives all seven indicators from a scenario. The outputs
// are independent of each other and the function is total: any input
// produces defined numbers, out-of-range ones included. Gravity is
// carried for display only; no formula below reads it.
func Compute(p Params) Indicators {
	massKg := p.Mass * 1e12
	velocityMS := p.Velocity * 1000

	energy := 0.5 * massKg * velocityMS * velocityMS
	megaton := energy / megatonJoules

	// Strictly-less-than: the coastal multiplier steps from 1.5 to 1
	// at exactly 35 degrees, a sharp threshold rather than a ramp.
	coastal := 1.0
	if p.Angle < 35 {
		coastal = 1.5
	}

	return Indicators{
		Energy:           energy,
		EnergyMegaton:    megaton,
		Richter:          math.Max(0, (math.Log10(energy)-4.8)/1.5),
		CraterDiameterKm: math.Max(0.8, math.Pow(megaton, 0.29)*(1.1+p.Density*0.08)),
		TsunamiHeight:    math.Min(80, math.Pow(megaton, 0.36)*coastal),
		WarningHours:     math.Max(2, 18-p.Velocity*0.2+(40-p.Angle)*0.1),
		DeflectionDelta:  math.Max(35, p.Mass*p.Velocity/6),
	}
}
