package config

import (
	"sort"

	"github.com/kiimicoum5/Astrale/internal/impact"
)

// Scenarios are the named starting points offered by the CLI and the
// interactive presets menu. Every entry stays inside the declared
// parameter bounds.
var Scenarios = map[string]impact.Params{
	"default":   impact.DefaultParams(),
	"grazer":    {Mass: 12, Radius: 0.4, Velocity: 31, Angle: 12, Gravity: 9.81, Density: 2.2},
	"deep-sea":  {Mass: 46, Radius: 1.4, Velocity: 24, Angle: 52, Gravity: 9.81, Density: 3.0},
	"iron-core": {Mass: 64, Radius: 1.1, Velocity: 17, Angle: 44, Gravity: 9.81, Density: 5.3},
	"dusty":     {Mass: 6, Radius: 2.1, Velocity: 13, Angle: 30, Gravity: 9.81, Density: 1.6},
	"worst-day": {Mass: 80, Radius: 2.5, Velocity: 45, Angle: 33, Gravity: 9.81, Density: 4.8},
}

func GetScenario(name string) *impact.Params {
	p, ok := Scenarios[name]
	if !ok {
		return nil
	}
	return &p
}

func ListScenarios() []string {
	names := make([]string, 0, len(Scenarios))
	for name := range Scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
