// Package export renders scene geometry to standalone SVG documents.
package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/kiimicoum5/Astrale/internal/body"
	"github.com/kiimicoum5/Astrale/internal/orbit"
	"github.com/kiimicoum5/Astrale/internal/viz"
)

// CanvasToSVG converts a Braille canvas to SVG, one dot per circle.
// Only the dot grid is exported; sprites are terminal-only. Colors
// follow the current theme.
func CanvasToSVG(canvas *viz.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width) * scale * 2   // 2 sub-pixels per char
	height := float64(canvas.Height) * scale * 4 // 4 sub-pixels per char

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
<g fill="%s">
`, width, height, width, height, string(viz.CurrentTheme.Background), string(viz.CurrentTheme.Primary)))

	// Braille dot-to-bit mapping
	pixelMap := [4][2]int{
		{0x01, 0x08},
		{0x02, 0x10},
		{0x04, 0x20},
		{0x40, 0x80},
	}

	dotRadius := scale * 0.4

	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			r := canvas.Grid[row][col]
			if r < 0x2800 {
				continue
			}
			pattern := int(r - 0x2800)

			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4

			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] != 0 {
						cx := baseX + float64(dx)*scale + scale/2
						cy := baseY + float64(dy)*scale + scale/2
						sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, cx, cy, dotRadius))
					}
				}
			}
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// OrbitMapSVG draws a top-down map of every orbit in the catalog with
// each body placed at scene time at. The view looks straight down the
// reference-plane normal, so tilted orbits appear slightly flattened.
func OrbitMapSVG(cat *body.Catalog, at float64, width, height, segments int) string {
	if cat == nil || cat.Len() == 0 || width <= 0 || height <= 0 {
		return ""
	}
	if segments < 8 {
		segments = 8
	}

	maxR := 0.0
	paths := make([][]orbit.Point3, 0, cat.Len())
	for _, def := range cat.Bodies() {
		pts := def.Orbit.Path(segments)
		for _, p := range pts {
			if r := math.Max(math.Abs(p.X), math.Abs(p.Z)); r > maxR {
				maxR = r
			}
		}
		paths = append(paths, pts)
	}
	if maxR == 0 {
		maxR = 1
	}

	half := math.Min(float64(width), float64(height)) / 2
	scale := half * 0.92 / maxR
	cx, cy := float64(width)/2, float64(height)/2

	toX := func(p orbit.Point3) float64 { return cx + p.X*scale }
	toY := func(p orbit.Point3) float64 { return cy - p.Z*scale }

	theme := viz.CurrentTheme

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, string(theme.Background)))

	for i, def := range cat.Bodies() {
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1" stroke-opacity="0.6" d="M`, def.Color))
		for j, p := range paths[i] {
			if j == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", toX(p), toY(p)))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", toX(p), toY(p)))
			}
		}
		sb.WriteString("\"/>\n")
	}

	// Rings under bodies, bodies under the star.
	for _, def := range cat.Bodies() {
		pos := def.Orbit.Position(at)
		if def.Ring != nil {
			for _, r := range []float64{def.Ring.Inner, def.Ring.Outer} {
				sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="none" stroke="%s" stroke-opacity="0.4"/>
`, toX(pos), toY(pos), r*scale, def.Color))
			}
		}
		radius := 1.5 + def.BaseScale
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, toX(pos), toY(pos), radius, def.Color))
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="%s" font-family="monospace" font-size="9">%s</text>
`, toX(pos)+radius+3, toY(pos)+3, string(theme.Muted), def.Name))
	}

	sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
</svg>`, cx, cy, 2.5+body.Sun.BaseScale, body.Sun.Color))
	return sb.String()
}
