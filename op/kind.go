package op

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind identifies one of the closed set of operator variants.
type Kind int

const (
	KindPlaceHolder Kind = iota
	KindParameter
	KindAdd
	KindSub
	KindMul
	KindSquare
	KindRelu
	KindSigmoid
	KindTanh
)

var kindNames = [...]string{
	KindPlaceHolder: "PlaceHolder",
	KindParameter:   "Parameter",
	KindAdd:         "Add",
	KindSub:         "Sub",
	KindMul:         "Mul",
	KindSquare:      "Square",
	KindRelu:        "Relu",
	KindSigmoid:     "Sigmoid",
	KindTanh:        "Tanh",
}

// Kinds returns every variant in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, len(kindNames))
	for i := range kindNames {
		kinds[i] = Kind(i)
	}
	return kinds
}

func (k Kind) valid() bool { return k >= 0 && int(k) < len(kindNames) }

func (k Kind) String() string {
	if !k.valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Arity is the number of inputs Forward takes: 0 for leaves, 1 for unary, 2 for binary.
func (k Kind) Arity() int {
	switch k {
	case KindPlaceHolder, KindParameter:
		return 0
	case KindAdd, KindSub, KindMul:
		return 2
	case KindSquare, KindRelu, KindSigmoid, KindTanh:
		return 1
	}
	return -1
}

// ParseKind maps a variant name back to its Kind.
func ParseKind(name string) (Kind, error) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownKind, "%q", name)
}
