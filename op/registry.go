package op

import "github.com/pkg/errors"

// constructors is the dispatch table behind New. Leaves start at 0.
var constructors = map[Kind]func(opts ...Option) Node{
	KindPlaceHolder: func(opts ...Option) Node { return NewPlaceHolder(0, opts...) },
	KindParameter:   func(opts ...Option) Node { return NewParameter(0, opts...) },
	KindAdd:         func(opts ...Option) Node { return NewAdd(opts...) },
	KindSub:         func(opts ...Option) Node { return NewSub(opts...) },
	KindMul:         func(opts ...Option) Node { return NewMul(opts...) },
	KindSquare:      func(opts ...Option) Node { return NewSquare(opts...) },
	KindRelu:        func(opts ...Option) Node { return NewRelu(opts...) },
	KindSigmoid:     func(opts ...Option) Node { return NewSigmoid(opts...) },
	KindTanh:        func(opts ...Option) Node { return NewTanh(opts...) },
}

// New builds the variant named by kind.
func New(kind Kind, opts ...Option) (Node, error) {
	ctor, ok := constructors[kind]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownKind, "%s", kind)
	}
	return ctor(opts...), nil
}

// Call runs Forward with args, checking the count against the variant's arity.
func Call(n Node, args ...float64) (float64, error) {
	if want := n.Kind().Arity(); len(args) != want {
		return 0, errors.Wrapf(ErrArity, "%s takes %d, got %d", n.Kind(), want, len(args))
	}
	switch v := n.(type) {
	case Leaf:
		return v.Forward(), nil
	case Unary:
		return v.Forward(args[0]), nil
	case Binary:
		return v.Forward(args[0], args[1]), nil
	}
	return 0, errors.Wrapf(ErrUnknownKind, "%T", n)
}

// Gradients returns the derivative of n's output with respect to each of its
// inputs, scaled by g. Leaves have no inputs and yield an empty slice.
func Gradients(n Node, g float64) ([]float64, error) {
	switch v := n.(type) {
	case Leaf:
		v.Backward()
		return []float64{}, nil
	case Unary:
		d, err := v.Backward(g)
		if err != nil {
			return nil, err
		}
		return []float64{d}, nil
	case Binary:
		d1, err := v.Grad1(g)
		if err != nil {
			return nil, err
		}
		d2, err := v.Grad2(g)
		if err != nil {
			return nil, err
		}
		return []float64{d1, d2}, nil
	}
	return nil, errors.Wrapf(ErrUnknownKind, "%T", n)
}
