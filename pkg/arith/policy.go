package arith

import (
	"math"
	"strings"

	"github.com/pkg/errors"
)

// OverflowPolicy decides what a Calculator does when a result does not fit
// in an int64.
type OverflowPolicy string

const (
	// PolicyWrap keeps the two's complement result.
	PolicyWrap OverflowPolicy = "wrap"
	// PolicySaturate clamps to math.MaxInt64 or math.MinInt64.
	PolicySaturate OverflowPolicy = "saturate"
	// PolicyFail returns ErrOverflow.
	PolicyFail OverflowPolicy = "fail"
)

// ParsePolicy resolves a policy name. The empty string means PolicyWrap.
func ParsePolicy(s string) (OverflowPolicy, error) {
	switch p := OverflowPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return PolicyWrap, nil
	case PolicyWrap, PolicySaturate, PolicyFail:
		return p, nil
	}
	return "", errors.Wrapf(ErrUnknownPolicy, "%q", s)
}

// Calculator applies the four operations under a single overflow policy.
// The zero value wraps.
type Calculator struct {
	Policy OverflowPolicy
}

// NewCalculator returns a Calculator using policy.
func NewCalculator(policy OverflowPolicy) *Calculator {
	return &Calculator{Policy: policy}
}

// Result is the outcome of one operation.
type Result struct {
	Value int64
	// Overflowed is set when the true result did not fit and the policy
	// wrapped or saturated it.
	Overflowed bool
}

// Add returns a + b.
func (c *Calculator) Add(a, b int64) (int64, error) {
	r, err := c.Compute(OpAdd, a, b)
	return r.Value, err
}

// Subtract returns a - b.
func (c *Calculator) Subtract(a, b int64) (int64, error) {
	r, err := c.Compute(OpSubtract, a, b)
	return r.Value, err
}

// Multiply returns a * b.
func (c *Calculator) Multiply(a, b int64) (int64, error) {
	r, err := c.Compute(OpMultiply, a, b)
	return r.Value, err
}

// Divide returns the truncated quotient a / b, or ErrDivisionByZero when b is 0.
func (c *Calculator) Divide(a, b int64) (int64, error) {
	r, err := c.Compute(OpDivide, a, b)
	return r.Value, err
}

// Compute applies op to a and b.
func (c *Calculator) Compute(op Op, a, b int64) (Result, error) {
	var (
		wrapped  int64
		overflow bool
	)

	switch op {
	case OpAdd:
		wrapped = Add(a, b)
		overflow = addOverflows(a, b, wrapped)
	case OpSubtract:
		wrapped = Subtract(a, b)
		overflow = subtractOverflows(a, b, wrapped)
	case OpMultiply:
		wrapped = Multiply(a, b)
		overflow = multiplyOverflows(a, b, wrapped)
	case OpDivide:
		q, err := Divide(a, b)
		if err != nil {
			return Result{}, err
		}
		wrapped = q
		overflow = a == math.MinInt64 && b == -1
	default:
		return Result{}, &OpError{Op: op, A: a, B: b, Err: ErrUnknownOp}
	}

	if !overflow {
		return Result{Value: wrapped}, nil
	}

	switch c.policy() {
	case PolicySaturate:
		return Result{Value: saturate(op, a, b), Overflowed: true}, nil
	case PolicyFail:
		return Result{}, &OpError{Op: op, A: a, B: b, Err: ErrOverflow}
	default:
		return Result{Value: wrapped, Overflowed: true}, nil
	}
}

func (c *Calculator) policy() OverflowPolicy {
	if c == nil || c.Policy == "" {
		return PolicyWrap
	}
	return c.Policy
}

// saturate returns the int64 bound on the side of the true result. Only
// called once overflow has been detected.
func saturate(op Op, a, b int64) int64 {
	var negative bool
	switch op {
	case OpAdd:
		negative = a < 0
	case OpSubtract:
		negative = a < 0
	case OpMultiply, OpDivide:
		negative = (a < 0) != (b < 0)
	}
	if negative {
		return math.MinInt64
	}
	return math.MaxInt64
}
