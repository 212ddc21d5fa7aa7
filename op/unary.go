package op

import "math"

// Square: e^2, d/de = 2e.
type Square struct{ memory }

func NewSquare(opts ...Option) *Square {
	c := newConfig(opts)
	n := &Square{newMemory(KindSquare, c)}
	c.trace(n)
	return n
}

func (n *Square) Forward(e float64) float64 { return n.remember(e*e, e) }

func (n *Square) Backward(g float64) (float64, error) {
	if err := n.check(); err != nil {
		return 0, err
	}
	return 2 * g * n.in[0], nil
}

func (n *Square) Grad(g float64) (float64, error) { return n.Backward(g) }

// Relu: max(0, e). The derivative at e == 0 is taken as 0.
type Relu struct{ memory }

func NewRelu(opts ...Option) *Relu {
	c := newConfig(opts)
	n := &Relu{newMemory(KindRelu, c)}
	c.trace(n)
	return n
}

func (n *Relu) Forward(e float64) float64 { return n.remember(math.Max(0, e), e) }

func (n *Relu) Backward(g float64) (float64, error) {
	if err := n.check(); err != nil {
		return 0, err
	}
	if n.in[0] > 0 {
		return g, nil
	}
	return 0, nil
}

func (n *Relu) Grad(g float64) (float64, error) { return n.Backward(g) }

// Sigmoid: 1 / (1 + exp(-e)). The derivative s(1-s) is computed from the
// remembered output, not recomputed from the input.
type Sigmoid struct{ memory }

func NewSigmoid(opts ...Option) *Sigmoid {
	c := newConfig(opts)
	n := &Sigmoid{newMemory(KindSigmoid, c)}
	c.trace(n)
	return n
}

func (n *Sigmoid) Forward(e float64) float64 { return n.remember(1/(1+math.Exp(-e)), e) }

func (n *Sigmoid) Backward(g float64) (float64, error) {
	if err := n.check(); err != nil {
		return 0, err
	}
	s := n.out
	return g * s * (1 - s), nil
}

func (n *Sigmoid) Grad(g float64) (float64, error) { return n.Backward(g) }

// Tanh: tanh(e), derivative 1 - t^2 from the remembered output.
type Tanh struct{ memory }

func NewTanh(opts ...Option) *Tanh {
	c := newConfig(opts)
	n := &Tanh{newMemory(KindTanh, c)}
	c.trace(n)
	return n
}

func (n *Tanh) Forward(e float64) float64 { return n.remember(math.Tanh(e), e) }

func (n *Tanh) Backward(g float64) (float64, error) {
	if err := n.check(); err != nil {
		return 0, err
	}
	t := n.out
	return g * (1 - t*t), nil
}

func (n *Tanh) Grad(g float64) (float64, error) { return n.Backward(g) }
