package op

func newMemory(kind Kind, c config) memory {
	return memory{base: base{kind: kind, permissive: c.permissive}}
}

// Add: e1 + e2. Both operands receive the upstream gradient unchanged.
type Add struct{ memory }

func NewAdd(opts ...Option) *Add {
	c := newConfig(opts)
	n := &Add{newMemory(KindAdd, c)}
	c.trace(n)
	return n
}

func (n *Add) Forward(e1, e2 float64) float64 { return n.remember(e1+e2, e1, e2) }

func (n *Add) Grad1(g float64) (float64, error) {
	if err := n.check(); err != nil {
		return 0, err
	}
	return g, nil
}

func (n *Add) Grad2(g float64) (float64, error) {
	if err := n.check(); err != nil {
		return 0, err
	}
	return g, nil
}

// Sub: e1 - e2.
type Sub struct{ memory }

func NewSub(opts ...Option) *Sub {
	c := newConfig(opts)
	n := &Sub{newMemory(KindSub, c)}
	c.trace(n)
	return n
}

func (n *Sub) Forward(e1, e2 float64) float64 { return n.remember(e1-e2, e1, e2) }

func (n *Sub) Grad1(g float64) (float64, error) {
	if err := n.check(); err != nil {
		return 0, err
	}
	return g, nil
}

func (n *Sub) Grad2(g float64) (float64, error) {
	if err := n.check(); err != nil {
		return 0, err
	}
	return -g, nil
}

// Mul: e1 * e2. Each operand's derivative is the other operand.
type Mul struct{ memory }

func NewMul(opts ...Option) *Mul {
	c := newConfig(opts)
	n := &Mul{newMemory(KindMul, c)}
	c.trace(n)
	return n
}

func (n *Mul) Forward(e1, e2 float64) float64 { return n.remember(e1*e2, e1, e2) }

func (n *Mul) Grad1(g float64) (float64, error) {
	if err := n.check(); err != nil {
		return 0, err
	}
	return g * n.in[1], nil
}

func (n *Mul) Grad2(g float64) (float64, error) {
	if err := n.check(); err != nil {
		return 0, err
	}
	return g * n.in[0], nil
}
