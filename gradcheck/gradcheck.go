// Package gradcheck compares the analytic gradients of op nodes against
// central finite differences.
package gradcheck

import (
	"fmt"
	"math"

	"github.com/pkg/errors"

	"go-opgraph/op"
)

type Config struct {
	Step      float64 // finite difference step h
	Tolerance float64 // relative tolerance
}

func DefaultConfig() Config {
	return Config{Step: 1e-6, Tolerance: 1e-4}
}

// Result is one operand's comparison.
type Result struct {
	Kind     op.Kind
	Operand  int
	At       []float64
	Analytic float64
	Numeric  float64
	RelErr   float64
	OK       bool
}

func (r Result) String() string {
	status := "ok"
	if !r.OK {
		status = "MISMATCH"
	}
	return fmt.Sprintf("%-8s operand %d at %v: analytic %.6g numeric %.6g rel %.2e %s",
		r.Kind, r.Operand, r.At, r.Analytic, r.Numeric, r.RelErr, status)
}

func (c Config) validate() error {
	if c.Step <= 0 || c.Tolerance <= 0 {
		return errors.Errorf("gradcheck: step and tolerance must be positive, got %g and %g", c.Step, c.Tolerance)
	}
	return nil
}

func (c Config) compare(kind op.Kind, operand int, at []float64, analytic, numeric float64) Result {
	scale := math.Max(1, math.Max(math.Abs(analytic), math.Abs(numeric)))
	rel := math.Abs(analytic-numeric) / scale
	return Result{
		Kind:     kind,
		Operand:  operand,
		At:       append([]float64{}, at...),
		Analytic: analytic,
		Numeric:  numeric,
		RelErr:   rel,
		OK:       rel <= c.Tolerance,
	}
}

// Unary checks n at e with upstream gradient g. The node is left remembering a
// forward call at e.
func Unary(n op.Unary, e, g float64, c Config) (Result, error) {
	if err := c.validate(); err != nil {
		return Result{}, err
	}
	h := c.Step
	numeric := g * (n.Forward(e+h) - n.Forward(e-h)) / (2 * h)

	n.Forward(e)
	analytic, err := n.Backward(g)
	if err != nil {
		return Result{}, errors.Wrapf(err, "gradcheck: %s", n.Kind())
	}
	return c.compare(n.Kind(), 0, []float64{e}, analytic, numeric), nil
}

// Binary checks both operands of n at (e1, e2) with upstream gradient g.
func Binary(n op.Binary, e1, e2, g float64, c Config) ([2]Result, error) {
	var out [2]Result
	if err := c.validate(); err != nil {
		return out, err
	}
	h := c.Step
	num1 := g * (n.Forward(e1+h, e2) - n.Forward(e1-h, e2)) / (2 * h)
	num2 := g * (n.Forward(e1, e2+h) - n.Forward(e1, e2-h)) / (2 * h)

	n.Forward(e1, e2)
	d1, err := n.Grad1(g)
	if err != nil {
		return out, errors.Wrapf(err, "gradcheck: %s", n.Kind())
	}
	d2, err := n.Grad2(g)
	if err != nil {
		return out, errors.Wrapf(err, "gradcheck: %s", n.Kind())
	}
	at := []float64{e1, e2}
	out[0] = c.compare(n.Kind(), 0, at, d1, num1)
	out[1] = c.compare(n.Kind(), 1, at, d2, num2)
	return out, nil
}

// Node dispatches to Unary or Binary by the node's arity. args must match it.
// Leaves have nothing to check and return no results.
func Node(n op.Node, g float64, c Config, args ...float64) ([]Result, error) {
	if want := n.Kind().Arity(); len(args) != want {
		return nil, errors.Wrapf(op.ErrArity, "gradcheck: %s takes %d, got %d", n.Kind(), want, len(args))
	}
	switch v := n.(type) {
	case op.Leaf:
		return nil, nil
	case op.Unary:
		r, err := Unary(v, args[0], g, c)
		if err != nil {
			return nil, err
		}
		return []Result{r}, nil
	case op.Binary:
		rs, err := Binary(v, args[0], args[1], g, c)
		if err != nil {
			return nil, err
		}
		return rs[:], nil
	}
	return nil, errors.Wrapf(op.ErrUnknownKind, "gradcheck: %T", n)
}
