package arith

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinel errors returned (wrapped in *OpError) by arithmetic operations.
var (
	ErrDivisionByZero = errors.New("division by zero")
	ErrOverflow       = errors.New("integer overflow")
	ErrUnknownOp      = errors.New("unknown operation")
	ErrUnknownPolicy  = errors.New("unknown overflow policy")
)

// OpError records the operation and operands that produced an error.
type OpError struct {
	Op  Op
	A   int64
	B   int64
	Err error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsDivisionByZero reports whether err was caused by a zero divisor.
func IsDivisionByZero(err error) bool {
	return errors.Is(err, ErrDivisionByZero)
}

// IsOverflow reports whether err was caused by an overflow under PolicyFail.
func IsOverflow(err error) bool {
	return errors.Is(err, ErrOverflow)
}
