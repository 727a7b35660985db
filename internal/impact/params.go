package impact

import (
	"fmt"
	"math"
)

// Params holds the six scenario inputs. Units follow the control
// surface: Mass in 10^12 kg, Radius in km, Velocity in km/s, Angle in
// degrees above the horizon, Gravity in m/s^2, Density in g/cm^3.
type Params struct {
	Mass     float64 `yaml:"mass" json:"mass"`
	Radius   float64 `yaml:"radius" json:"radius"`
	Velocity float64 `yaml:"velocity" json:"velocity"`
	Angle    float64 `yaml:"angle" json:"angle"`
	Gravity  float64 `yaml:"gravity" json:"gravity"`
	Density  float64 `yaml:"density" json:"density"`
}

// DefaultParams returns the scenario the controls start from.
func DefaultParams() Params {
	return Params{
		Mass:     28,
		Radius:   0.9,
		Velocity: 22,
		Angle:    37,
		Gravity:  9.81,
		Density:  3.1,
	}
}

// Field names a single Params entry for bound lookup and cursor-driven
// editing.
type Field string

const (
	FieldMass     Field = "mass"
	FieldRadius   Field = "radius"
	FieldVelocity Field = "velocity"
	FieldAngle    Field = "angle"
	FieldGravity  Field = "gravity"
	FieldDensity  Field = "density"
)

// Fields lists the parameters in control-surface order.
var Fields = []Field{FieldMass, FieldRadius, FieldVelocity, FieldAngle, FieldGravity, FieldDensity}

// Bound declares the legal range and editing step for one field.
type Bound struct {
	Min   float64
	Max   float64
	Step  float64
	Unit  string
	Label string
}

var Bounds = map[Field]Bound{
	FieldMass:     {Min: 2, Max: 80, Step: 1, Unit: "10^12 kg", Label: "Mass"},
	FieldRadius:   {Min: 0.1, Max: 2.5, Step: 0.1, Unit: "km", Label: "Radius"},
	FieldVelocity: {Min: 10, Max: 45, Step: 0.5, Unit: "km/s", Label: "Velocity"},
	FieldAngle:    {Min: 5, Max: 80, Step: 1, Unit: "deg", Label: "Entry angle"},
	FieldGravity:  {Min: 7.5, Max: 11.5, Step: 0.1, Unit: "m/s^2", Label: "Gravity"},
	FieldDensity:  {Min: 1.5, Max: 5.5, Step: 0.1, Unit: "g/cm^3", Label: "Density"},
}

func (p Params) Get(f Field) float64 {
	switch f {
	case FieldMass:
		return p.Mass
	case FieldRadius:
		return p.Radius
	case FieldVelocity:
		return p.Velocity
	case FieldAngle:
		return p.Angle
	case FieldGravity:
		return p.Gravity
	case FieldDensity:
		return p.Density
	}
	return 0
}

func (p *Params) Set(f Field, value float64) error {
	switch f {
	case FieldMass:
		p.Mass = value
	case FieldRadius:
		p.Radius = value
	case FieldVelocity:
		p.Velocity = value
	case FieldAngle:
		p.Angle = value
	case FieldGravity:
		p.Gravity = value
	case FieldDensity:
		p.Density = value
	default:
		return fmt.Errorf("unknown param: %s", f)
	}
	return nil
}

// Clamped returns a copy with every field pulled inside its declared
// bounds. Compute never calls this; the control surface does.
func (p Params) Clamped() Params {
	p.Mass = clampTo(FieldMass, p.Mass)
	p.Radius = clampTo(FieldRadius, p.Radius)
	p.Velocity = clampTo(FieldVelocity, p.Velocity)
	p.Angle = clampTo(FieldAngle, p.Angle)
	p.Gravity = clampTo(FieldGravity, p.Gravity)
	p.Density = clampTo(FieldDensity, p.Density)
	return p
}

func clampTo(f Field, v float64) float64 {
	b := Bounds[f]
	return math.Min(b.Max, math.Max(b.Min, v))
}
