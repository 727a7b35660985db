// Package scene runs the solar system clock.
//
// An [Engine] owns the body catalog, the live scenario parameters,
// the selection state and each body's accumulated spin. One call to
// [Engine.Tick] advances scene time and evaluates every body into an
// immutable [FrameState]; hosts render the frame however they like.
//
// The engine follows a single-writer discipline: Tick and all setters
// ([Engine.SetParams], [Engine.Select], [Engine.Deselect]) must be
// called from one goroutine, typically the host's frame loop. Each
// frame then sees exactly one consistent (params, selection) pair.
// The only concurrency inside is the optional [ephem.Provider], which
// synchronizes internally and is consulted with a non-blocking probe
// per body per frame.
//
// # Selection
//
// At most one body is focused. While focused, that body's orbit,
// spin rate, rendered scale and glow bend under the scenario controls
// through [orbit.FocusEffects]; every other body always animates on
// its static catalog parameters. Deselection takes effect on the very
// next tick with zero residue, because static parameters are never
// written.
package scene
