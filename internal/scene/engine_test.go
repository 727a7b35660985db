package scene

import (
	"context"
	"errors"
	"testing"

	"github.com/kiimicoum5/Astrale/internal/body"
	"github.com/kiimicoum5/Astrale/internal/ephem"
	"github.com/kiimicoum5/Astrale/internal/impact"
	"github.com/kiimicoum5/Astrale/internal/orbit"
)

func testCatalog(t *testing.T) *body.Catalog {
	t.Helper()
	c, err := body.NewCatalog([]body.Definition{
		{
			Name: "inner", BaseScale: 1, RotationSpeed: 2,
			Orbit: orbit.Params{SemiMajorAxis: 5, Eccentricity: 0.1, Inclination: 0.2, Speed: 1, Phase: 0.3},
		},
		{
			Name: "outer", BaseScale: 2, RotationSpeed: -0.5,
			Orbit: orbit.Params{SemiMajorAxis: 9, Eccentricity: 0.3, Speed: 0.25, Phase: 1.1},
		},
	})
	if err != nil {
		t.Fatalf("test catalog: %v", err)
	}
	return c
}

type stubProvider struct {
	fixes  map[string]ephem.Position
	status string
}

func (s *stubProvider) TryGetLatest(name string) (ephem.Position, bool) {
	p, ok := s.fixes[name]
	return p, ok
}

func (s *stubProvider) Status() string { return s.status }

type refreshStub struct {
	stubProvider
	calls int
	err   error
}

func (r *refreshStub) Refresh() error {
	r.calls++
	return r.err
}

func TestTickAdvancesElapsed(t *testing.T) {
	e := New(testCatalog(t))

	f := e.Tick(0.5)
	if f.Elapsed != 0.5 {
		t.Errorf("expected elapsed 0.5, got %f", f.Elapsed)
	}
	f = e.Tick(0.5)
	if f.Elapsed != 1.0 {
		t.Errorf("expected elapsed 1.0, got %f", f.Elapsed)
	}
}

func TestTickEvaluatesAllBodiesInOrder(t *testing.T) {
	c := testCatalog(t)
	e := New(c)

	f := e.Tick(0.1)
	if len(f.Bodies) != c.Len() {
		t.Fatalf("expected %d bodies, got %d", c.Len(), len(f.Bodies))
	}
	for i, name := range c.Names() {
		if f.Bodies[i].Name != name {
			t.Errorf("body %d: expected %s, got %s", i, name, f.Bodies[i].Name)
		}
	}
}

func TestStaticBodiesFollowTheirOrbits(t *testing.T) {
	c := testCatalog(t)
	e := New(c)

	f := e.Tick(0.7)
	for _, def := range c.Bodies() {
		got, ok := f.Body(def.Name)
		if !ok {
			t.Fatalf("missing body %s", def.Name)
		}
		if want := def.Orbit.Position(0.7); got.Position != want {
			t.Errorf("%s: expected %+v, got %+v", def.Name, want, got.Position)
		}
		if got.Scale != def.BaseScale || got.Glow != 0 || got.Focused || got.Live {
			t.Errorf("%s: unexpected decoration on an unfocused body: %+v", def.Name, got)
		}
	}
}

func TestFocusedBodyBendsUnderScenario(t *testing.T) {
	c := testCatalog(t)
	e := New(c)
	if err := e.Select("inner"); err != nil {
		t.Fatalf("select: %v", err)
	}

	f := e.Tick(0.5)

	def, _ := c.Lookup("inner")
	eff := orbit.FocusEffects(e.Params())

	got, _ := f.Body("inner")
	if want := def.Orbit.Effective(eff.Override()).Position(0.5); got.Position != want {
		t.Errorf("position: expected %+v, got %+v", want, got.Position)
	}
	if want := def.BaseScale * eff.RadiusMultiplier; got.Scale != want {
		t.Errorf("scale: expected %f, got %f", want, got.Scale)
	}
	if want := def.RotationSpeed * eff.RotationMultiplier * 0.5; got.Spin != want {
		t.Errorf("spin: expected %f, got %f", want, got.Spin)
	}
	if got.Glow != eff.Glow {
		t.Errorf("glow: expected %f, got %f", eff.Glow, got.Glow)
	}
	if !got.Focused {
		t.Error("expected focused flag")
	}
}

func TestOnlyFocusedBodyPerturbed(t *testing.T) {
	c := testCatalog(t)
	e := New(c)
	if err := e.Select("inner"); err != nil {
		t.Fatalf("select: %v", err)
	}

	f := e.Tick(0.5)

	def, _ := c.Lookup("outer")
	got, _ := f.Body("outer")
	if want := def.Orbit.Position(0.5); got.Position != want {
		t.Errorf("outer position perturbed: expected %+v, got %+v", want, got.Position)
	}
	if got.Scale != def.BaseScale || got.Glow != 0 || got.Focused {
		t.Errorf("outer picked up focus decoration: %+v", got)
	}
}

func TestSelectUnknown(t *testing.T) {
	e := New(testCatalog(t))

	err := e.Select("ganymede")
	if err == nil {
		t.Fatal("expected error for unknown body")
	}
	if !errors.Is(err, body.ErrUnknown) {
		t.Errorf("expected body.ErrUnknown, got %v", err)
	}
	if e.Focused() != "" {
		t.Errorf("selection must stay untouched, got %q", e.Focused())
	}
}

func TestSelectTransitions(t *testing.T) {
	e := New(testCatalog(t))

	if e.Focused() != "" {
		t.Fatalf("initial state must be unselected, got %q", e.Focused())
	}

	if err := e.Select("inner"); err != nil {
		t.Fatalf("select: %v", err)
	}
	if err := e.Select("inner"); err != nil {
		t.Fatalf("idempotent re-select: %v", err)
	}
	if e.Focused() != "inner" {
		t.Errorf("expected inner focused, got %q", e.Focused())
	}

	if err := e.Select("outer"); err != nil {
		t.Fatalf("switch selection: %v", err)
	}
	if e.Focused() != "outer" {
		t.Errorf("expected outer focused, got %q", e.Focused())
	}

	e.Deselect()
	if e.Focused() != "" {
		t.Errorf("expected unselected after deselect, got %q", e.Focused())
	}
}

func TestDeselectRestoresNextTick(t *testing.T) {
	c := testCatalog(t)
	e := New(c)
	if err := e.Select("inner"); err != nil {
		t.Fatalf("select: %v", err)
	}

	eff := orbit.FocusEffects(e.Params())
	e.Tick(0.5)
	e.Deselect()
	f := e.Tick(0.5)

	def, _ := c.Lookup("inner")
	got, _ := f.Body("inner")

	// Position depends only on total elapsed time and the static
	// orbit: the focused interval leaves no residue at all.
	if want := def.Orbit.Position(1.0); got.Position != want {
		t.Errorf("expected static position %+v, got %+v", want, got.Position)
	}
	if got.Scale != def.BaseScale || got.Glow != 0 || got.Focused {
		t.Errorf("focus decoration survived deselect: %+v", got)
	}

	// Spin keeps its accumulated angle but returns to the static rate.
	wantSpin := def.RotationSpeed*eff.RotationMultiplier*0.5 + def.RotationSpeed*0.5
	if got.Spin != wantSpin {
		t.Errorf("expected spin %f, got %f", wantSpin, got.Spin)
	}
}

func TestSetParamsTakesEffectNextTick(t *testing.T) {
	c := testCatalog(t)
	e := New(c)
	if err := e.Select("inner"); err != nil {
		t.Fatalf("select: %v", err)
	}
	e.Tick(0.5)

	p := e.Params()
	p.Velocity = 45
	e.SetParams(p)
	f := e.Tick(0.5)

	if f.Params != p {
		t.Errorf("frame params: expected %+v, got %+v", p, f.Params)
	}

	def, _ := c.Lookup("inner")
	eff := orbit.FocusEffects(p)
	got, _ := f.Body("inner")
	if want := def.Orbit.Effective(eff.Override()).Position(1.0); got.Position != want {
		t.Errorf("expected new override next tick: %+v vs %+v", want, got.Position)
	}
}

func TestProviderOverridesPosition(t *testing.T) {
	c := testCatalog(t)
	e := New(c)
	fix := ephem.Position{Name: "inner", RADeg: 120, DecDeg: 15}
	e.SetProvider(&stubProvider{fixes: map[string]ephem.Position{"inner": fix}})

	f := e.Tick(0.5)

	got, _ := f.Body("inner")
	if !got.Live {
		t.Fatal("expected live flag for provided body")
	}
	def, _ := c.Lookup("inner")
	if want := ephem.ToCartesian(fix, def.Orbit.SemiMajorAxis); got.Position != want {
		t.Errorf("expected provided position %+v, got %+v", want, got.Position)
	}

	other, _ := f.Body("outer")
	if other.Live {
		t.Error("body without a fix must stay on the model")
	}
}

func TestProviderMissFallsBack(t *testing.T) {
	c := testCatalog(t)
	e := New(c)
	e.SetProvider(&stubProvider{status: "live positions unavailable (timeout)"})

	f := e.Tick(0.5)

	for _, def := range c.Bodies() {
		got, _ := f.Body(def.Name)
		if got.Live {
			t.Errorf("%s: expected model fallback", def.Name)
		}
		if want := def.Orbit.Position(0.5); got.Position != want {
			t.Errorf("%s: expected simulated position", def.Name)
		}
	}
	if f.Advisory != "live positions unavailable (timeout)" {
		t.Errorf("expected advisory surfaced, got %q", f.Advisory)
	}
}

func TestSetProviderNilRestoresNull(t *testing.T) {
	e := New(testCatalog(t))
	e.SetProvider(nil)

	f := e.Tick(0.1)
	if f.Advisory != "" {
		t.Errorf("null provider has no advisory, got %q", f.Advisory)
	}
}

func TestRefreshLiveForwards(t *testing.T) {
	e := New(testCatalog(t))

	// The null provider has no manual refresh to forward to.
	if err := e.RefreshLive(); err != nil {
		t.Errorf("null provider refresh: %v", err)
	}

	rp := &refreshStub{err: errors.New("throttled")}
	e.SetProvider(rp)
	if err := e.RefreshLive(); !errors.Is(err, rp.err) {
		t.Errorf("expected provider error forwarded, got %v", err)
	}
	if rp.calls != 1 {
		t.Errorf("expected one refresh call, got %d", rp.calls)
	}
}

func TestReset(t *testing.T) {
	e := New(testCatalog(t))
	if err := e.Select("inner"); err != nil {
		t.Fatalf("select: %v", err)
	}
	p := e.Params()
	p.Mass = 80
	e.SetParams(p)
	e.Tick(2)

	e.Reset()

	f := e.Tick(0.25)
	if f.Elapsed != 0.25 {
		t.Errorf("expected clock rewound, elapsed %f", f.Elapsed)
	}
	if f.Focused != "" {
		t.Errorf("expected selection dropped, got %q", f.Focused)
	}
	if f.Params != impact.DefaultParams() {
		t.Errorf("expected default params, got %+v", f.Params)
	}
	got, _ := f.Body("inner")
	def, _ := e.Catalog().Lookup("inner")
	if want := def.RotationSpeed * 0.25; got.Spin != want {
		t.Errorf("expected spin restarted at %f, got %f", want, got.Spin)
	}
}

func TestRunCountsFrames(t *testing.T) {
	e := New(testCatalog(t))

	frames := 0
	err := e.Run(context.Background(), 1.0, 0.25, func(FrameState) bool {
		frames++
		return true
	})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if frames != 4 {
		t.Errorf("expected 4 frames, got %d", frames)
	}
}

func TestRunStopsOnCallbackFalse(t *testing.T) {
	e := New(testCatalog(t))

	frames := 0
	err := e.Run(context.Background(), 10, 0.5, func(FrameState) bool {
		frames++
		return frames < 3
	})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if frames != 3 {
		t.Errorf("expected early stop after 3 frames, got %d", frames)
	}
}

func TestRunHonorsContext(t *testing.T) {
	e := New(testCatalog(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := e.Run(ctx, 10, 0.5, func(FrameState) bool { return true })
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestRunValidates(t *testing.T) {
	e := New(testCatalog(t))

	if err := e.Run(context.Background(), 1, 0, func(FrameState) bool { return true }); err == nil {
		t.Error("expected error for zero dt")
	}
	if err := e.Run(context.Background(), -1, 0.1, func(FrameState) bool { return true }); err == nil {
		t.Error("expected error for negative duration")
	}
}
