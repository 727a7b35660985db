// Package body defines the celestial body catalog: one static
// definition per orbiting body. The star is not an entry; it anchors
// the scene origin and never moves.
package body

import (
	"errors"
	"fmt"

	"github.com/kiimicoum5/Astrale/internal/orbit"
)

var ErrUnknown = errors.New("body: unknown")

// Ring describes optional ring geometry as scene-unit radii around
// the body's center, in the same units as the orbit axes.
type Ring struct {
	Inner float64 `yaml:"inner"`
	Outer float64 `yaml:"outer"`
}

// Definition is one catalog entry. Visual attributes (Glyph, Color,
// BaseScale) feed the renderer; Summary, DistanceAU and
// InclinationDeg are descriptive metadata for the info panel. Orbit
// holds the scene-unit kinematic parameters, which may exaggerate the
// real inclination for visibility.
type Definition struct {
	Name           string       `yaml:"name"`
	Glyph          string       `yaml:"glyph"`
	Color          string       `yaml:"color"`
	BaseScale      float64      `yaml:"base_scale"`
	RotationSpeed  float64      `yaml:"rotation_speed"`
	Summary        string       `yaml:"summary"`
	DistanceAU     float64      `yaml:"distance_au"`
	InclinationDeg float64      `yaml:"inclination_deg"`
	Orbit          orbit.Params `yaml:"orbit"`
	Ring           *Ring        `yaml:"ring,omitempty"`
}

func (d Definition) validate() error {
	if d.Name == "" {
		return errors.New("body: name must not be empty")
	}
	if d.Orbit.SemiMajorAxis <= 0 {
		return fmt.Errorf("body %q: semi-major axis must be positive, got %f", d.Name, d.Orbit.SemiMajorAxis)
	}
	if d.Orbit.Eccentricity < 0 || d.Orbit.Eccentricity >= 1 {
		return fmt.Errorf("body %q: eccentricity must be in [0,1), got %f", d.Name, d.Orbit.Eccentricity)
	}
	if d.Ring != nil && (d.Ring.Inner <= 0 || d.Ring.Outer <= d.Ring.Inner) {
		return fmt.Errorf("body %q: ring must satisfy 0 < inner < outer", d.Name)
	}
	return nil
}

// Catalog is an ordered, name-indexed set of definitions. It is
// immutable after construction; overlays build a new catalog.
type Catalog struct {
	bodies []Definition
	index  map[string]int
}

func NewCatalog(defs []Definition) (*Catalog, error) {
	c := &Catalog{
		bodies: make([]Definition, 0, len(defs)),
		index:  make(map[string]int, len(defs)),
	}
	for _, d := range defs {
		if err := d.validate(); err != nil {
			return nil, err
		}
		if _, dup := c.index[d.Name]; dup {
			return nil, fmt.Errorf("body: duplicate entry %q", d.Name)
		}
		c.index[d.Name] = len(c.bodies)
		c.bodies = append(c.bodies, d)
	}
	return c, nil
}

// Lookup finds a definition by name.
func (c *Catalog) Lookup(name string) (Definition, error) {
	i, ok := c.index[name]
	if !ok {
		return Definition{}, fmt.Errorf("%w: %s", ErrUnknown, name)
	}
	return c.bodies[i], nil
}

// Names returns body names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.bodies))
	for i, d := range c.bodies {
		names[i] = d.Name
	}
	return names
}

// Bodies returns the definitions in catalog order. Callers must treat
// the slice as read-only.
func (c *Catalog) Bodies() []Definition {
	return c.bodies
}

func (c *Catalog) Len() int {
	return len(c.bodies)
}

// Overlay returns a new catalog with defs applied on top: entries
// matching an existing name replace it in place, new names append in
// the order given.
func (c *Catalog) Overlay(defs []Definition) (*Catalog, error) {
	merged := make([]Definition, len(c.bodies))
	copy(merged, c.bodies)
	for _, d := range defs {
		if err := d.validate(); err != nil {
			return nil, err
		}
		if i, ok := c.index[d.Name]; ok {
			merged[i] = d
			continue
		}
		merged = append(merged, d)
	}
	return NewCatalog(merged)
}
