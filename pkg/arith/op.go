package arith

import "strings"

// Op names one of the four arithmetic operations.
type Op string

const (
	OpAdd      Op = "add"
	OpSubtract Op = "subtract"
	OpMultiply Op = "multiply"
	OpDivide   Op = "divide"
)

// Ops lists every operation in a stable order.
var Ops = []Op{OpAdd, OpSubtract, OpMultiply, OpDivide}

var opAliases = map[string]Op{
	"add":      OpAdd,
	"+":        OpAdd,
	"subtract": OpSubtract,
	"sub":      OpSubtract,
	"-":        OpSubtract,
	"multiply": OpMultiply,
	"mul":      OpMultiply,
	"*":        OpMultiply,
	"x":        OpMultiply,
	"divide":   OpDivide,
	"div":      OpDivide,
	"/":        OpDivide,
}

// ParseOp resolves an operation name or symbol such as "mul" or "/".
func ParseOp(s string) (Op, error) {
	if op, ok := opAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return op, nil
	}
	return "", &OpError{Op: Op(s), Err: ErrUnknownOp}
}

// Symbol returns the infix symbol for op, or "?" if op is unknown.
func (op Op) Symbol() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "*"
	case OpDivide:
		return "/"
	}
	return "?"
}
