package op

import (
	"log"

	"github.com/pkg/errors"
)

// Node is the capability shared by every operator variant.
type Node interface {
	Kind() Kind
	String() string
	// State returns a copy of what the last forward call left behind.
	State() State
}

// Leaf nodes take no inputs. Backward is a no-op: leaves terminate the chain.
type Leaf interface {
	Node
	Forward() float64
	Backward()
}

// Unary nodes take one input. Backward and Grad are the same accessor: the
// derivative at the last remembered input, scaled by the upstream gradient g.
type Unary interface {
	Node
	Forward(e float64) float64
	Backward(g float64) (float64, error)
	Grad(g float64) (float64, error)
}

// Binary nodes take two inputs and expose one accessor per operand.
type Binary interface {
	Node
	Forward(e1, e2 float64) float64
	Grad1(g float64) (float64, error)
	Grad2(g float64) (float64, error)
}

// State is a snapshot of a node's single remembered forward invocation.
type State struct {
	Inputs []float64
	Output float64
	Ready  bool
}

// Tracer observes node construction.
type Tracer func(n Node)

// LogTracer prints "Operator -> <Kind>" for every node built.
func LogTracer(l *log.Logger) Tracer {
	return func(n Node) { l.Println(n.String()) }
}

// Option configures a node at construction time.
type Option func(*config)

type config struct {
	tracer     Tracer
	permissive bool
}

// WithTracer installs a construction hook.
func WithTracer(t Tracer) Option {
	return func(c *config) { c.tracer = t }
}

// Permissive disables the forward-before-backward check. Gradient accessors
// called too early then read zero-initialized state and return a nil error.
func Permissive() Option {
	return func(c *config) { c.permissive = true }
}

func newConfig(opts []Option) config {
	var c config
	for _, o := range opts {
		if o != nil {
			o(&c)
		}
	}
	return c
}

func (c config) trace(n Node) {
	if c.tracer != nil {
		c.tracer(n)
	}
}

type base struct {
	kind       Kind
	permissive bool
}

func (b *base) Kind() Kind { return b.kind }

func (b *base) String() string { return "Operator -> " + b.kind.String() }

// memory holds the inputs and output of the most recent forward call.
// a new forward call overwrites it.
type memory struct {
	base
	in    [2]float64
	out   float64
	ready bool
}

func (m *memory) remember(out float64, in ...float64) float64 {
	copy(m.in[:], in)
	m.out = out
	m.ready = true
	return out
}

func (m *memory) check() error {
	if m.ready || m.permissive {
		return nil
	}
	return errors.WithStack(&UninitializedNodeError{Kind: m.kind})
}

func (m *memory) State() State {
	n := m.kind.Arity()
	inputs := make([]float64, n)
	copy(inputs, m.in[:n])
	return State{Inputs: inputs, Output: m.out, Ready: m.ready}
}
