package viz

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/kiimicoum5/Astrale/internal/body"
	"github.com/kiimicoum5/Astrale/internal/orbit"
	"github.com/kiimicoum5/Astrale/internal/scene"
)

const ringSegments = 24

// SolarView draws scene frames: orbit traces and rings as Braille
// lines, bodies and the star as colored sprites on top of them.
type SolarView struct {
	Canvas   *Canvas
	Camera   *Camera
	catalog  *body.Catalog
	segments int
	scale    float64
}

// NewSolarView sizes the view so the outermost orbit fits the canvas
// at zoom 1. The camera starts tilted to show orbital inclination.
func NewSolarView(cat *body.Catalog, width, height, segments int) *SolarView {
	maxA := 0.0
	for _, def := range cat.Bodies() {
		if def.Orbit.SemiMajorAxis > maxA {
			maxA = def.Orbit.SemiMajorAxis
		}
	}
	if maxA == 0 {
		maxA = 1
	}
	if segments < 8 {
		segments = 8
	}

	cam := NewCamera()
	cam.RotX = -0.9

	return &SolarView{
		Canvas:   NewCanvas(width, height),
		Camera:   cam,
		catalog:  cat,
		segments: segments,
		scale:    1.4 / maxA,
	}
}

func (v *SolarView) vec(p orbit.Point3) Vec3 {
	return Vec3{p.X * v.scale, p.Y * v.scale, p.Z * v.scale}
}

// Render redraws one frame and returns the canvas text. The focused
// body's trace is sampled with its override applied, so the body
// never drifts off its drawn orbit.
func (v *SolarView) Render(frame scene.FrameState) string {
	v.Canvas.Clear()
	sw, sh := v.Canvas.SubSize()

	wf := NewWireframe()
	for _, def := range v.catalog.Bodies() {
		op := def.Orbit
		if def.Name == frame.Focused {
			op = op.Effective(orbit.FocusEffects(frame.Params).Override())
		}
		pts := op.Path(v.segments)
		loop := make([]Vec3, len(pts))
		for i, p := range pts {
			loop[i] = v.vec(p)
		}
		wf.AddLoop(loop)
	}

	for _, bf := range frame.Bodies {
		def, err := v.catalog.Lookup(bf.Name)
		if err != nil || def.Ring == nil {
			continue
		}
		center := v.vec(bf.Position)
		wf.AddCircle(center, def.Ring.Inner*v.scale, ringSegments)
		wf.AddCircle(center, def.Ring.Outer*v.scale, ringSegments)
	}

	Render3D(v.Canvas, wf, v.Camera)

	for _, bf := range frame.Bodies {
		if !bf.Focused {
			continue
		}
		if sx, sy, _, ok := v.Camera.Project(v.vec(bf.Position), sw, sh); ok {
			v.Canvas.DrawCircle(sx, sy, 2+int(bf.Glow*4))
		}
	}

	// Sprites go on last so bodies sit over any trace behind them.
	if sx, sy, _, ok := v.Camera.Project(Vec3{}, sw, sh); ok {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(body.Sun.Color)).Bold(true)
		v.Canvas.Sprite(sx, sy, body.Sun.Glyph, style)
	}

	for _, bf := range frame.Bodies {
		def, err := v.catalog.Lookup(bf.Name)
		if err != nil {
			continue
		}
		sx, sy, _, ok := v.Camera.Project(v.vec(bf.Position), sw, sh)
		if !ok {
			continue
		}
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(def.Color))
		if bf.Focused {
			style = style.Bold(true)
		}
		if bf.Live {
			style = style.Underline(true)
		}
		v.Canvas.Sprite(sx, sy, def.Glyph, style)
	}

	return v.Canvas.String()
}
