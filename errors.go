package num

import (
	"github.com/pkg/errors"
)

var (
	// ErrUnsupported is the cause of every error returned for an operation
	// DynUint deliberately does not implement: subtraction with a negative
	// result, remainder by a divisor that is not a power of two, and
	// overflow-reporting addition.
	ErrUnsupported = errors.New("dynuint: unsupported operation")

	// ErrDivisionByZero is returned by Rem when the divisor is zero.
	ErrDivisionByZero = errors.New("dynuint: division by zero")
)

func unsupported(msg string) error {
	return errors.Wrap(ErrUnsupported, msg)
}
