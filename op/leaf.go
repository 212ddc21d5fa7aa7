package op

// PlaceHolder is an external input. Its value is supplied by the caller and
// changed only through Set.
type PlaceHolder struct {
	base
	value float64
}

func NewPlaceHolder(value float64, opts ...Option) *PlaceHolder {
	c := newConfig(opts)
	p := &PlaceHolder{base: base{kind: KindPlaceHolder, permissive: c.permissive}, value: value}
	c.trace(p)
	return p
}

func (p *PlaceHolder) Forward() float64 { return p.value }

// Backward does nothing; a placeholder is not trainable.
func (p *PlaceHolder) Backward() {}

func (p *PlaceHolder) Set(value float64) { p.value = value }

func (p *PlaceHolder) State() State { return State{Inputs: []float64{}, Output: p.value, Ready: true} }

// Parameter is a trainable scalar. Whatever optimizes it computes the
// gradient elsewhere and writes the new value back with Update.
type Parameter struct {
	base
	value float64
}

func NewParameter(value float64, opts ...Option) *Parameter {
	c := newConfig(opts)
	p := &Parameter{base: base{kind: KindParameter, permissive: c.permissive}, value: value}
	c.trace(p)
	return p
}

func (p *Parameter) Forward() float64 { return p.value }

func (p *Parameter) Backward() {}

func (p *Parameter) Update(value float64) { p.value = value }

func (p *Parameter) State() State { return State{Inputs: []float64{}, Output: p.value, Ready: true} }
