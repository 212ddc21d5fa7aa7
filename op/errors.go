package op

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrUnknownKind is returned when a Kind is outside the closed variant set.
	ErrUnknownKind = errors.New("op: unknown operator kind")

	// ErrArity is returned by Call when the argument count does not match the variant.
	ErrArity = errors.New("op: wrong number of inputs")
)

// UninitializedNodeError reports a gradient accessor invoked on a strict node
// that has not seen a forward call yet.
type UninitializedNodeError struct {
	Kind Kind
}

func (e *UninitializedNodeError) Error() string {
	return fmt.Sprintf("op: %s gradient requested before any forward call", e.Kind)
}

// IsUninitialized reports whether err carries an UninitializedNodeError.
func IsUninitialized(err error) bool {
	var target *UninitializedNodeError
	return errors.As(err, &target)
}
