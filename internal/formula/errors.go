// Package formula is the library of pure calculations behind the Form 3 and
// Form 4 calculators. Every function is stateless and deterministic; none
// performs I/O.
//
// Functions fail in one of two ways. Inputs of the wrong shape (an empty data
// set, a matrix with the wrong number of elements, an unknown operator) wrap
// ErrInvalidInput. Inputs of the right shape that make the calculation
// mathematically meaningless (a zero leading coefficient, a negative radius,
// a zero denominator) wrap ErrUndefined. A few calculations return a sentinel
// result instead of an error; those are documented on the function.
package formula

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks input that does not have the shape a formula expects.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUndefined marks input for which the calculation has no defined value.
	ErrUndefined = errors.New("undefined result")
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func undefined(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUndefined, fmt.Sprintf(format, args...))
}

func requireNonNegative(name string, v float64) error {
	if v < 0 {
		return undefined("%s must not be negative", name)
	}
	return nil
}

func requirePositive(name string, v float64) error {
	if v <= 0 {
		return undefined("%s must be greater than zero", name)
	}
	return nil
}
