package mcp

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// maxExactInt is the largest magnitude a JSON number (float64) carries exactly.
const maxExactInt = 1 << 53

func argument(request mcp.CallToolRequest, name string) (interface{}, error) {
	v, ok := request.Params.Arguments[name]
	if !ok || v == nil {
		return nil, fmt.Errorf("missing required argument %q", name)
	}
	return v, nil
}

// intArg reads an integer argument. JSON numbers must be integral and within
// ±2^53; decimal strings cover the full int64 range.
func intArg(request mcp.CallToolRequest, name string) (int64, error) {
	v, err := argument(request, name)
	if err != nil {
		return 0, err
	}

	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) || n != math.Trunc(n) {
			return 0, fmt.Errorf("argument %q must be an integer, got %v", name, n)
		}
		if math.Abs(n) > maxExactInt {
			return 0, fmt.Errorf("argument %q is beyond ±2^53, pass it as a decimal string", name)
		}
		return int64(n), nil
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, fmt.Errorf("argument %q must be an integer: %v", name, err)
		}
		return i, nil
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("argument %q must be an integer: %v", name, err)
		}
		return i, nil
	}
	return 0, fmt.Errorf("argument %q must be an integer, got %T", name, v)
}

func floatArg(request mcp.CallToolRequest, name string) (float64, error) {
	v, err := argument(request, name)
	if err != nil {
		return 0, err
	}

	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, fmt.Errorf("argument %q must be a number: %v", name, err)
		}
		return f, nil
	}
	return 0, fmt.Errorf("argument %q must be a number, got %T", name, v)
}

func stringArg(request mcp.CallToolRequest, name string) (string, error) {
	v, err := argument(request, name)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("argument %q must be a string, got %T", name, v)
	}
	return s, nil
}
