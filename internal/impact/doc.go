// Package impact derives physical consequence indicators for an
// asteroid impact scenario.
//
// The engine is a single pure function, [Compute], mapping the six
// scenario inputs in [Params] to the seven derived quantities in
// [Indicators]:
//
//   - kinetic energy (joules and megatons TNT)
//   - seismic magnitude on a Richter-style proxy scale
//   - transient crater diameter
//   - coastal tsunami height
//   - remaining warning time
//   - deflection delta-v budget
//
// Compute performs no I/O, holds no state and never fails: any input
// maps to defined, finite outputs. The formulas are illustrative
// approximations for an educational display, not peer-reviewed impact
// physics.
//
// # Parameter bounds
//
// Each field of [Params] carries a declared range in [Bounds]. The
// interactive surface keeps values inside those ranges; Compute trusts
// the caller and never clamps its inputs:
//
//	p := impact.DefaultParams()
//	p.Velocity = 38
//	ind := impact.Compute(p.Clamped())
package impact
