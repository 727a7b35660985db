// Package orbit samples closed Keplerian ellipses for the scene's
// celestial bodies.
//
// A body's [Params] fix its ellipse once at catalog load; sampling is
// pure and allocation-free on the per-frame path:
//
//   - [Params.Position]: body position at an elapsed scene time
//   - [Params.Path]: the static ellipse trace as a closed polyline
//   - [Params.Effective]: a perturbed copy for the focused body
//
// The primary sits at a focus of each ellipse, not its center; the
// planar sample carries a -a*e offset on the major axis to make that
// so. Inclination is a fixed tilt of the orbital plane about the X
// axis, applied after the planar sample.
//
// # Focus perturbation
//
// While a body is focused, the live scenario bends its motion through
// [FocusEffects]: orbital speed, spin rate, rendered size and plane
// tilt each pick up an independently clamped factor. Deselection drops
// the override entirely; the very next sample runs on static Params
// with no residue:
//
//	eff := orbit.FocusEffects(params)
//	pos := body.Orbit.Effective(eff.Override()).Position(t)
package orbit
