package scene

import (
	"context"
	"fmt"

	"github.com/kiimicoum5/Astrale/internal/body"
	"github.com/kiimicoum5/Astrale/internal/ephem"
	"github.com/kiimicoum5/Astrale/internal/impact"
	"github.com/kiimicoum5/Astrale/internal/orbit"
)

// statusProvider is the optional face of a provider that can explain
// itself for the advisory line.
type statusProvider interface {
	Status() string
}

// refreshProvider is the optional face of a provider that accepts
// manual poll requests.
type refreshProvider interface {
	Refresh() error
}

type Engine struct {
	catalog  *body.Catalog
	provider ephem.Provider

	params  impact.Params
	focused string
	elapsed float64
	spins   []float64
}

func New(catalog *body.Catalog) *Engine {
	return &Engine{
		catalog:  catalog,
		provider: ephem.Null{},
		params:   impact.DefaultParams(),
		spins:    make([]float64, catalog.Len()),
	}
}

// SetProvider installs a live position feed. Passing nil restores the
// null provider.
func (e *Engine) SetProvider(p ephem.Provider) {
	if p == nil {
		p = ephem.Null{}
	}
	e.provider = p
}

// RefreshLive asks the provider for a poll outside its regular
// cadence. Providers without manual refresh have nothing to do.
func (e *Engine) RefreshLive() error {
	if rp, ok := e.provider.(refreshProvider); ok {
		return rp.Refresh()
	}
	return nil
}

// SetParams replaces the live scenario. Values are trusted as given;
// interactive surfaces clamp before calling.
func (e *Engine) SetParams(p impact.Params) { e.params = p }

func (e *Engine) Params() impact.Params { return e.params }

// Select focuses one body; its motion picks up the scenario overrides
// starting with the next tick. Re-selecting the focused body is a
// no-op. Unknown names leave the selection untouched.
func (e *Engine) Select(name string) error {
	if _, err := e.catalog.Lookup(name); err != nil {
		return err
	}
	e.focused = name
	return nil
}

// Deselect clears the focus; the next tick runs every body on static
// parameters again.
func (e *Engine) Deselect() { e.focused = "" }

// Focused returns the focused body name, or "" when nothing is.
func (e *Engine) Focused() string { return e.focused }

func (e *Engine) Catalog() *body.Catalog { return e.catalog }

// Reset rewinds the scene clock, zeroes accumulated spin, restores
// the default scenario and drops any selection.
func (e *Engine) Reset() {
	e.elapsed = 0
	e.focused = ""
	e.params = impact.DefaultParams()
	for i := range e.spins {
		e.spins[i] = 0
	}
}

// Tick advances the scene by dt seconds and evaluates every body.
// The frame is built from the one (params, selection) pair current at
// entry; callers own the returned slice.
func (e *Engine) Tick(dt float64) FrameState {
	e.elapsed += dt

	eff := orbit.FocusEffects(e.params)
	frame := FrameState{
		Elapsed: e.elapsed,
		Params:  e.params,
		Focused: e.focused,
		Bodies:  make([]BodyFrame, e.catalog.Len()),
	}

	for i, def := range e.catalog.Bodies() {
		focused := def.Name == e.focused

		op := def.Orbit
		spinRate := def.RotationSpeed
		scale := def.BaseScale
		glow := 0.0
		if focused {
			op = op.Effective(eff.Override())
			spinRate *= eff.RotationMultiplier
			scale *= eff.RadiusMultiplier
			glow = eff.Glow
		}
		e.spins[i] += spinRate * dt

		pos := op.Position(e.elapsed)
		live := false
		if fix, ok := e.provider.TryGetLatest(def.Name); ok {
			// A resolved fix overrides the model outright for this
			// frame; on any miss the model stays authoritative.
			pos = ephem.ToCartesian(fix, def.Orbit.SemiMajorAxis)
			live = true
		}

		frame.Bodies[i] = BodyFrame{
			Name:     def.Name,
			Position: pos,
			Spin:     e.spins[i],
			Scale:    scale,
			Glow:     glow,
			Focused:  focused,
			Live:     live,
		}
	}

	if sp, ok := e.provider.(statusProvider); ok {
		frame.Advisory = sp.Status()
	}
	return frame
}

// Run drives the engine without an interactive host: fixed dt steps
// until duration elapses, ctx cancels, or the callback returns false.
func (e *Engine) Run(ctx context.Context, duration, dt float64, callback func(FrameState) bool) error {
	if dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", dt)
	}
	if duration <= 0 {
		return fmt.Errorf("duration must be positive, got %f", duration)
	}

	for t := 0.0; t < duration; t += dt {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if !callback(e.Tick(dt)) {
			return nil
		}
	}
	return nil
}
