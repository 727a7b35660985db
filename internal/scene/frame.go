package scene

import (
	"github.com/kiimicoum5/Astrale/internal/impact"
	"github.com/kiimicoum5/Astrale/internal/orbit"
)

// FrameState is one consistent snapshot of the scene: the elapsed
// time, the (params, selection) pair the frame was evaluated under,
// and every body's state in catalog order. Advisory carries a
// non-fatal provider note for the status line, or "".
type FrameState struct {
	Elapsed  float64
	Params   impact.Params
	Focused  string
	Advisory string
	Bodies   []BodyFrame
}

// BodyFrame is one body's evaluated state for a single frame.
type BodyFrame struct {
	Name     string
	Position orbit.Point3
	Spin     float64 // accumulated rotation, radians
	Scale    float64 // rendered size after any focus multiplier
	Glow     float64 // emissive intensity, zero unless focused
	Focused  bool
	Live     bool // position came from the live feed, not the model
}

// Body finds a body's frame by name.
func (f FrameState) Body(name string) (BodyFrame, bool) {
	for _, b := range f.Bodies {
		if b.Name == name {
			return b, true
		}
	}
	return BodyFrame{}, false
}
