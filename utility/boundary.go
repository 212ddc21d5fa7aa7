package utility

import (
	"math"

	"github.com/pkg/errors"
)

// anything that maps a 2D point to a scalar score
type Model interface {
	Evaluate(p [2]float64) float64
}

type ModelFunc func(p [2]float64) float64

func (f ModelFunc) Evaluate(p [2]float64) float64 { return f(p) }

// a dataset point with a binary label (0 or 1)
type LabeledPoint struct {
	P     [2]float64
	Label int
}

// GridSpec describes the square sampling grid. Points run from Min up to but
// excluding Max on both axes.
type GridSpec struct {
	Min, Max  float64
	Step      float64
	Threshold float64 // outputs strictly above are positive
}

func DefaultGrid() GridSpec {
	return GridSpec{Min: -0.1, Max: 1.1, Step: 0.05, Threshold: 0.5}
}

// number of samples per axis, like arange(min, max, step)
func (g GridSpec) size() int {
	return int(math.Ceil((g.Max-g.Min)/g.Step - 1e-9))
}

type Sample struct {
	P        [2]float64
	Out      float64
	Positive bool
}

// SampleBoundary evaluates m on every grid point, row by row in x.
func SampleBoundary(m Model, g GridSpec) ([]Sample, error) {
	if g.Step <= 0 || g.Max <= g.Min {
		return nil, errors.Errorf("utility: bad grid [%g, %g) step %g", g.Min, g.Max, g.Step)
	}
	n := g.size()
	samples := make([]Sample, 0, n*n)
	for i := 0; i < n; i++ {
		x := g.Min + float64(i)*g.Step
		for j := 0; j < n; j++ {
			y := g.Min + float64(j)*g.Step
			p := [2]float64{x, y}
			out := m.Evaluate(p)
			samples = append(samples, Sample{P: p, Out: out, Positive: out > g.Threshold})
		}
	}
	return samples, nil
}

// fraction of dataset points classified the same way as their label
func Accuracy(m Model, data []LabeledPoint, threshold float64) float64 {
	if len(data) == 0 {
		return 0
	}
	correct := 0
	for _, d := range data {
		positive := m.Evaluate(d.P) > threshold
		if positive == (d.Label == 1) {
			correct++
		}
	}
	return float64(correct) / float64(len(data))
}
