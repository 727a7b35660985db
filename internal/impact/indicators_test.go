package impact_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kiimicoum5/Astrale/internal/impact"
)

func indicatorValues(ind impact.Indicators) map[string]float64 {
	return map[string]float64{
		"energy":     ind.Energy,
		"megaton":    ind.EnergyMegaton,
		"richter":    ind.Richter,
		"crater":     ind.CraterDiameterKm,
		"tsunami":    ind.TsunamiHeight,
		"warning":    ind.WarningHours,
		"deflection": ind.DeflectionDelta,
	}
}

var _ = Describe("Compute", func() {
	It("reproduces the reference scenario", func() {
		p := impact.Params{Mass: 28, Radius: 0.9, Velocity: 22, Angle: 37, Gravity: 9.81, Density: 3.1}
		ind := impact.Compute(p)

		Expect(ind.Energy).To(Equal(0.5 * 28e12 * 22000 * 22000))
		Expect(ind.EnergyMegaton).To(BeNumerically("~", 6.776e21/4.184e15, 1e-6))
		Expect(ind.Richter).To(BeNumerically("~", (math.Log10(6.776e21)-4.8)/1.5, 1e-12))
		Expect(ind.Richter).To(BeNumerically("~", 11.354, 0.001))
		// Entry at 37 degrees keeps the coastal multiplier at 1.
		Expect(ind.TsunamiHeight).To(BeNumerically("~", math.Pow(ind.EnergyMegaton, 0.36), 1e-12))
		Expect(ind.TsunamiHeight).To(BeNumerically("<=", 80))
	})

	It("budgets deflection from mass and velocity on a shallow entry", func() {
		p := impact.Params{Mass: 18, Radius: 0.7, Velocity: 19, Angle: 28, Gravity: 9.81, Density: 3.1}
		ind := impact.Compute(p)

		Expect(ind.DeflectionDelta).To(Equal(57.0))
		steep := p
		steep.Angle = 37
		Expect(ind.TsunamiHeight).To(BeNumerically(">", impact.Compute(steep).TsunamiHeight))
	})

	It("leaves twelve warning hours for a slow, near-vertical entry", func() {
		p := impact.Params{Mass: 2, Radius: 0.1, Velocity: 10, Angle: 80, Gravity: 9.81, Density: 1.5}
		ind := impact.Compute(p)

		Expect(ind.WarningHours).To(Equal(12.0))
	})

	It("steps the coastal multiplier at exactly 35 degrees", func() {
		// Small enough scenario that neither height reaches the cap, so
		// the raw 1.5x jump is visible.
		below := impact.Params{Mass: 2, Radius: 0.1, Velocity: 10, Angle: 34.999, Gravity: 9.81, Density: 1.5}
		at := below
		at.Angle = 35

		hBelow := impact.Compute(below).TsunamiHeight
		hAt := impact.Compute(at).TsunamiHeight
		Expect(hBelow).To(BeNumerically("<", 80))
		Expect(hAt).To(BeNumerically("<", 80))
		Expect(hBelow / hAt).To(BeNumerically("~", 1.5, 1e-12))
	})

	It("holds the deflection floor at the low end of the domain", func() {
		p := impact.Params{Mass: 2, Radius: 0.1, Velocity: 10, Angle: 45, Gravity: 9.81, Density: 1.5}
		// 2 * 10 / 6 is well under the floor.
		Expect(impact.Compute(p).DeflectionDelta).To(Equal(35.0))
	})

	It("stays total and railed even for out-of-range callers", func() {
		tiny := impact.Params{Mass: 1e-12, Radius: 0.01, Velocity: 10, Angle: 45, Gravity: 9.81, Density: 1.5}
		ind := impact.Compute(tiny)
		Expect(ind.CraterDiameterKm).To(Equal(0.8))

		fast := impact.Params{Mass: 5, Radius: 0.5, Velocity: 100, Angle: 40, Gravity: 9.81, Density: 3}
		Expect(impact.Compute(fast).WarningHours).To(Equal(2.0))
	})

	It("keeps every indicator finite, non-negative and inside its rails across the legal domain", func() {
		for _, m := range []float64{2, 28, 80} {
			for _, r := range []float64{0.1, 2.5} {
				for _, v := range []float64{10, 45} {
					for _, a := range []float64{5, 34.999, 35, 80} {
						for _, g := range []float64{7.5, 11.5} {
							for _, d := range []float64{1.5, 5.5} {
								p := impact.Params{Mass: m, Radius: r, Velocity: v, Angle: a, Gravity: g, Density: d}
								ind := impact.Compute(p)
								for name, val := range indicatorValues(ind) {
									Expect(math.IsNaN(val)).To(BeFalse(), "%s is NaN for %+v", name, p)
									Expect(math.IsInf(val, 0)).To(BeFalse(), "%s is Inf for %+v", name, p)
									Expect(val).To(BeNumerically(">=", 0), "%s negative for %+v", name, p)
								}
								Expect(ind.CraterDiameterKm).To(BeNumerically(">=", 0.8))
								Expect(ind.TsunamiHeight).To(BeNumerically("<=", 80))
								Expect(ind.WarningHours).To(BeNumerically(">=", 2))
								Expect(ind.DeflectionDelta).To(BeNumerically(">=", 35))
							}
						}
					}
				}
			}
		}
	})

	It("is deterministic", func() {
		p := impact.DefaultParams()
		Expect(impact.Compute(p)).To(Equal(impact.Compute(p)))
	})
})
