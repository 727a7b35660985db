package export

import (
	"strings"
	"testing"

	"github.com/kiimicoum5/Astrale/internal/body"
	"github.com/kiimicoum5/Astrale/internal/viz"
)

func TestCanvasToSVGEmitsDots(t *testing.T) {
	c := viz.NewCanvas(4, 4)
	c.Set(3, 5)

	svg := CanvasToSVG(c, 4)
	if !strings.HasPrefix(svg, `<?xml version="1.0"`) {
		t.Errorf("missing xml declaration")
	}
	if got := strings.Count(svg, "<circle"); got != 1 {
		t.Errorf("expected exactly one dot, got %d", got)
	}

	if CanvasToSVG(nil, 4) != "" {
		t.Errorf("nil canvas should produce empty output")
	}
}

func TestOrbitMapSVGCoversCatalog(t *testing.T) {
	cat := body.Builtin()

	svg := OrbitMapSVG(cat, 0, 800, 600, 64)
	if got := strings.Count(svg, "<path"); got != cat.Len() {
		t.Errorf("expected %d orbit paths, got %d", cat.Len(), got)
	}
	for _, def := range cat.Bodies() {
		if !strings.Contains(svg, def.Color) {
			t.Errorf("missing color %s for %s", def.Color, def.Name)
		}
		if !strings.Contains(svg, ">"+def.Name+"</text>") {
			t.Errorf("missing label for %s", def.Name)
		}
	}
	if !strings.Contains(svg, body.Sun.Color) {
		t.Errorf("missing the star")
	}
}

func TestOrbitMapSVGRejectsEmptyInputs(t *testing.T) {
	if OrbitMapSVG(nil, 0, 800, 600, 64) != "" {
		t.Errorf("nil catalog should produce empty output")
	}
	if OrbitMapSVG(body.Builtin(), 0, 0, 600, 64) != "" {
		t.Errorf("zero width should produce empty output")
	}
}
