package types

import (
	"time"
)

// OperationResponse is returned by every arithmetic tool
type OperationResponse struct {
	ID         string    `json:"id"`                   // Correlates the response with server log lines
	Operation  string    `json:"operation"`            // add, subtract, multiply or divide
	A          int64     `json:"a"`                    // Left operand
	B          int64     `json:"b"`                    // Right operand
	Result     int64     `json:"result"`               // Operation result
	Expression string    `json:"expression"`           // Human-readable form, e.g. "10 / 2 = 5"
	Policy     string    `json:"policy"`               // Overflow policy in effect
	Overflowed bool      `json:"overflowed,omitempty"` // Result was wrapped or saturated
	Timestamp  time.Time `json:"timestamp"`
}

// ConversionResponse is returned by the inch_to_mm tool
type ConversionResponse struct {
	ID          string    `json:"id"`
	Inches      float64   `json:"inches"`
	Millimeters float64   `json:"millimeters"`
	Timestamp   time.Time `json:"timestamp"`
}

// ServerInfo identifies the running server
type ServerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// StatusResponse reports server identity and call counters
type StatusResponse struct {
	Server ServerInfo       `json:"server"`
	Policy string           `json:"policy"`
	Calls  map[string]int64 `json:"calls"`  // Successful calls per operation
	Errors int64            `json:"errors"` // Calls that returned an error result
}
