// Package arith provides basic integer arithmetic operations.
//
// The package-level functions wrap on overflow, which is Go's defined
// behavior for signed integers. Use a Calculator to saturate or fail instead.
package arith

import "math"

// Add returns the sum of two integers.
func Add(a, b int64) int64 {
	return a + b
}

// Subtract returns the difference between two integers.
func Subtract(a, b int64) int64 {
	return a - b
}

// Multiply returns the product of two integers.
func Multiply(a, b int64) int64 {
	return a * b
}

// Divide returns the truncated quotient of two integers.
// If b is 0, it returns ErrDivisionByZero.
// Divide(math.MinInt64, -1) wraps to math.MinInt64.
func Divide(a, b int64) (int64, error) {
	if b == 0 {
		return 0, &OpError{Op: OpDivide, A: a, B: b, Err: ErrDivisionByZero}
	}
	if a == math.MinInt64 && b == -1 {
		return math.MinInt64, nil
	}
	return a / b, nil
}

func addOverflows(a, b, r int64) bool {
	return (a > 0 && b > 0 && r < 0) || (a < 0 && b < 0 && r >= 0)
}

// a-b overflows only when the operands differ in sign and the result's sign
// differs from a.
func subtractOverflows(a, b, r int64) bool {
	return (a^b)&(a^r) < 0
}

func multiplyOverflows(a, b, r int64) bool {
	if a == 0 || b == 0 {
		return false
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return true
	}
	return r/b != a
}
