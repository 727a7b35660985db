// Package sweep evaluates the indicator engine across one parameter's
// declared range, for tables, plots and stored runs.
package sweep

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/kiimicoum5/Astrale/internal/impact"
)

// Point is one sweep sample: the swept parameter's value and the
// indicators computed with every other parameter held at base.
type Point struct {
	Value      float64
	Indicators impact.Indicators
}

// Summary condenses one indicator column over the whole sweep.
type Summary struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stddev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Result is a finished sweep: samples in ascending parameter order
// plus per-indicator summaries.
type Result struct {
	Field     impact.Field
	Base      impact.Params
	Points    []Point
	Summaries map[string]Summary
}

// Columns lists the indicator column names in display order, shared
// by the CSV layout and the plot subcommand.
func Columns() []string {
	return []string{"energy", "megaton", "richter", "crater", "tsunami", "warning", "deflection"}
}

func columnValue(ind impact.Indicators, col string) (float64, bool) {
	switch col {
	case "energy":
		return ind.Energy, true
	case "megaton":
		return ind.EnergyMegaton, true
	case "richter":
		return ind.Richter, true
	case "crater":
		return ind.CraterDiameterKm, true
	case "tsunami":
		return ind.TsunamiHeight, true
	case "warning":
		return ind.WarningHours, true
	case "deflection":
		return ind.DeflectionDelta, true
	}
	return 0, false
}

// Column extracts one indicator column in point order, or nil for an
// unknown name.
func (r *Result) Column(name string) []float64 {
	if _, ok := columnValue(impact.Indicators{}, name); !ok {
		return nil
	}
	vals := make([]float64, len(r.Points))
	for i, pt := range r.Points {
		vals[i], _ = columnValue(pt.Indicators, name)
	}
	return vals
}

func setColumnValue(ind *impact.Indicators, col string, v float64) {
	switch col {
	case "energy":
		ind.Energy = v
	case "megaton":
		ind.EnergyMegaton = v
	case "richter":
		ind.Richter = v
	case "crater":
		ind.CraterDiameterKm = v
	case "tsunami":
		ind.TsunamiHeight = v
	case "warning":
		ind.WarningHours = v
	case "deflection":
		ind.DeflectionDelta = v
	}
}

// ResultFromSeries rebuilds a Result from stored series, the inverse
// of the Column layout. Missing summaries are recomputed.
func ResultFromSeries(field impact.Field, base impact.Params, values []float64, series map[string][]float64, summaries map[string]Summary) *Result {
	points := make([]Point, len(values))
	for i, v := range values {
		var ind impact.Indicators
		for _, col := range Columns() {
			if s := series[col]; i < len(s) {
				setColumnValue(&ind, col, s[i])
			}
		}
		points[i] = Point{Value: v, Indicators: ind}
	}

	r := &Result{Field: field, Base: base, Points: points, Summaries: summaries}
	if r.Summaries == nil {
		r.Summaries = summarize(points)
	}
	return r
}

func validate(field impact.Field, steps int) (impact.Bound, error) {
	b, ok := impact.Bounds[field]
	if !ok {
		return impact.Bound{}, fmt.Errorf("unknown param: %s", field)
	}
	if steps < 2 {
		return impact.Bound{}, fmt.Errorf("sweep needs at least 2 steps, got %d", steps)
	}
	return b, nil
}

func sample(base impact.Params, field impact.Field, b impact.Bound, steps, i int) Point {
	v := b.Min + (b.Max-b.Min)*float64(i)/float64(steps-1)
	p := base
	_ = p.Set(field, v)
	return Point{Value: v, Indicators: impact.Compute(p)}
}

// Run sweeps one field from its lower to its upper bound in steps
// evenly spaced samples, holding every other field at base.
func Run(base impact.Params, field impact.Field, steps int) (*Result, error) {
	b, err := validate(field, steps)
	if err != nil {
		return nil, err
	}

	points := make([]Point, steps)
	for i := range points {
		points[i] = sample(base, field, b, steps, i)
	}

	return &Result{
		Field:     field,
		Base:      base,
		Points:    points,
		Summaries: summarize(points),
	}, nil
}

// RunParallel is Run with the samples striped across workers.
// workers <= 0 means one per CPU.
func RunParallel(ctx context.Context, base impact.Params, field impact.Field, steps, workers int) (*Result, error) {
	b, err := validate(field, steps)
	if err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	points := make([]Point, steps)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(start int) {
			defer wg.Done()
			for i := start; i < steps; i += workers {
				select {
				case <-ctx.Done():
					return
				default:
				}
				points[i] = sample(base, field, b, steps, i)
			}
		}(w)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &Result{
		Field:     field,
		Base:      base,
		Points:    points,
		Summaries: summarize(points),
	}, nil
}

func summarize(points []Point) map[string]Summary {
	out := make(map[string]Summary, len(Columns()))
	if len(points) == 0 {
		return out
	}
	for _, col := range Columns() {
		vals := make([]float64, len(points))
		for i, pt := range points {
			vals[i], _ = columnValue(pt.Indicators, col)
		}
		mean, std := stat.MeanStdDev(vals, nil)
		out[col] = Summary{
			Mean:   mean,
			StdDev: std,
			Min:    floats.Min(vals),
			Max:    floats.Max(vals),
		}
	}
	return out
}
