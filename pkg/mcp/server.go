package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sunfmin/mcp-go-arith/pkg/arith"
	"github.com/sunfmin/mcp-go-arith/pkg/config"
	"github.com/sunfmin/mcp-go-arith/pkg/logger"
	"github.com/sunfmin/mcp-go-arith/pkg/types"
)

// MCPArithServer encapsulates the MCP server with arithmetic tools
type MCPArithServer struct {
	server  *server.MCPServer
	calc    *arith.Calculator
	name    string
	version string

	calls  map[arith.Op]*atomic.Int64
	errors atomic.Int64
}

// NewMCPArithServer creates a new MCP server exposing the arithmetic tools
func NewMCPArithServer(cfg config.Config, version string) (*MCPArithServer, error) {
	policy, err := cfg.Policy()
	if err != nil {
		return nil, err
	}

	name := cfg.Name
	if name == "" {
		name = config.DefaultName
	}

	s := &MCPArithServer{
		server:  server.NewMCPServer(name, version),
		calc:    arith.NewCalculator(policy),
		name:    name,
		version: version,
		calls:   make(map[arith.Op]*atomic.Int64, len(arith.Ops)),
	}
	for _, op := range arith.Ops {
		s.calls[op] = new(atomic.Int64)
	}

	// Register all tools
	s.registerTools()

	return s, nil
}

// Server returns the underlying MCP server
func (s *MCPArithServer) Server() *server.MCPServer {
	return s.server
}

// Calculator returns the calculator backing the tools
func (s *MCPArithServer) Calculator() *arith.Calculator {
	return s.calc
}

// registerTools registers all arithmetic tools
func (s *MCPArithServer) registerTools() {
	s.addPingTool()
	s.addStatusTool()

	s.addOperationTool(arith.OpAdd, "Add two integers", s.Add)
	s.addOperationTool(arith.OpSubtract, "Subtract b from a", s.Subtract)
	s.addOperationTool(arith.OpMultiply, "Multiply two integers", s.Multiply)
	s.addOperationTool(arith.OpDivide, "Divide a by b, truncating toward zero; fails when b is 0", s.Divide)
	s.addCalculateTool()
	s.addInchToMMTool()
}

// addPingTool adds a simple ping tool for health checks
func (s *MCPArithServer) addPingTool() {
	pingTool := mcp.NewTool("ping",
		mcp.WithDescription("Simple ping tool to test connection"),
	)

	s.server.AddTool(pingTool, s.Ping)
}

// addStatusTool adds the status tool
func (s *MCPArithServer) addStatusTool() {
	statusTool := mcp.NewTool("status",
		mcp.WithDescription("Report server version, overflow policy and call counters"),
	)

	s.server.AddTool(statusTool, s.Status)
}

// addOperationTool adds a tool taking integer operands a and b
func (s *MCPArithServer) addOperationTool(op arith.Op, description string, handler server.ToolHandlerFunc) {
	tool := mcp.NewTool(string(op),
		mcp.WithDescription(description),
		mcp.WithNumber("a",
			mcp.Required(),
			mcp.Description("Left operand (integer; pass a decimal string beyond 2^53)"),
		),
		mcp.WithNumber("b",
			mcp.Required(),
			mcp.Description("Right operand (integer; pass a decimal string beyond 2^53)"),
		),
	)

	s.server.AddTool(tool, handler)
}

// addCalculateTool adds the calculate tool, which takes the operation by name
func (s *MCPArithServer) addCalculateTool() {
	calculateTool := mcp.NewTool("calculate",
		mcp.WithDescription("Apply an operation by name or symbol (add/+, subtract/-, multiply/*, divide//)"),
		mcp.WithString("operation",
			mcp.Required(),
			mcp.Description("Operation name or symbol"),
		),
		mcp.WithNumber("a",
			mcp.Required(),
			mcp.Description("Left operand"),
		),
		mcp.WithNumber("b",
			mcp.Required(),
			mcp.Description("Right operand"),
		),
	)

	s.server.AddTool(calculateTool, s.Calculate)
}

// addInchToMMTool adds the inch_to_mm tool
func (s *MCPArithServer) addInchToMMTool() {
	convertTool := mcp.NewTool("inch_to_mm",
		mcp.WithDescription("Convert a length in inches to millimeters"),
		mcp.WithNumber("inches",
			mcp.Required(),
			mcp.Description("Length in inches"),
		),
	)

	s.server.AddTool(convertTool, s.InchToMM)
}

// newErrorResult creates a tool result that represents an error
func newErrorResult(format string, args ...interface{}) *mcp.CallToolResult {
	result := mcp.NewToolResultText(fmt.Sprintf("Error: "+format, args...))
	result.IsError = true
	return result
}

// Ping handles the ping command
func (s *MCPArithServer) Ping(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger.Debug("Received ping request")
	return mcp.NewToolResultText(fmt.Sprintf("pong - %s is connected!", s.name)), nil
}

// Status handles the status command
func (s *MCPArithServer) Status(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger.Debug("Received status request")

	calls := make(map[string]int64, len(s.calls))
	for op, n := range s.calls {
		calls[string(op)] = n.Load()
	}

	response := types.StatusResponse{
		Server: types.ServerInfo{
			Name:    s.name,
			Version: s.version,
		},
		Policy: string(s.calc.Policy),
		Calls:  calls,
		Errors: s.errors.Load(),
	}

	return newToolResultJSON(response)
}

// Add handles the add command
func (s *MCPArithServer) Add(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.compute(arith.OpAdd, request), nil
}

// Subtract handles the subtract command
func (s *MCPArithServer) Subtract(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.compute(arith.OpSubtract, request), nil
}

// Multiply handles the multiply command
func (s *MCPArithServer) Multiply(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.compute(arith.OpMultiply, request), nil
}

// Divide handles the divide command
func (s *MCPArithServer) Divide(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.compute(arith.OpDivide, request), nil
}

// Calculate handles the calculate command
func (s *MCPArithServer) Calculate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger.Debug("Received calculate request")

	name, err := stringArg(request, "operation")
	if err != nil {
		s.errors.Add(1)
		return newErrorResult("%v", err), nil
	}

	op, err := arith.ParseOp(name)
	if err != nil {
		s.errors.Add(1)
		return newErrorResult("%v", err), nil
	}

	return s.compute(op, request), nil
}

// InchToMM handles the inch_to_mm command
func (s *MCPArithServer) InchToMM(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger.Debug("Received inch_to_mm request")

	inches, err := floatArg(request, "inches")
	if err != nil {
		s.errors.Add(1)
		return newErrorResult("%v", err), nil
	}

	response := types.ConversionResponse{
		ID:          uuid.NewString(),
		Inches:      inches,
		Millimeters: arith.InchToMillimeters(inches),
		Timestamp:   time.Now(),
	}

	return newToolResultJSON(response)
}

func (s *MCPArithServer) compute(op arith.Op, request mcp.CallToolRequest) *mcp.CallToolResult {
	id := uuid.NewString()
	logger.Debug("Received operation request", "id", id, "operation", op)

	a, err := intArg(request, "a")
	if err != nil {
		s.errors.Add(1)
		return newErrorResult("%v", err)
	}
	b, err := intArg(request, "b")
	if err != nil {
		s.errors.Add(1)
		return newErrorResult("%v", err)
	}

	result, err := s.calc.Compute(op, a, b)
	if err != nil {
		s.errors.Add(1)
		logger.Warn("Operation failed", "id", id, "operation", op, "a", a, "b", b, "error", err)
		return newErrorResult("%v", err)
	}
	if result.Overflowed {
		logger.Info("Operation overflowed", "id", id, "operation", op, "a", a, "b", b, "policy", s.calc.Policy)
	}

	s.calls[op].Add(1)

	response := types.OperationResponse{
		ID:         id,
		Operation:  string(op),
		A:          a,
		B:          b,
		Result:     result.Value,
		Expression: fmt.Sprintf("%d %s %d = %d", a, op.Symbol(), b, result.Value),
		Policy:     string(s.calc.Policy),
		Overflowed: result.Overflowed,
		Timestamp:  time.Now(),
	}

	out, _ := newToolResultJSON(response)
	return out
}

func newToolResultJSON(data interface{}) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return newErrorResult("failed to serialize data: %v", err), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}
