package mcp

import (
	"encoding/json"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mamaar/gocalc/pkg/calc"
	"github.com/mamaar/gocalc/pkg/format"
)

// StateResult is the structured output returned by every state-changing tool:
// the raw and grouped display text, the pending equation, and whether the
// display shows the error sentinel.
type StateResult struct {
	Display   string `json:"display"`
	Formatted string `json:"formatted_display"`
	Equation  string `json:"equation"`
	Error     bool   `json:"error"`
}

// stateResult captures the engine's display state. Callers must hold the
// server lock.
func stateResult(e *calc.Engine) StateResult {
	d := e.Display()
	return StateResult{
		Display:   d,
		Formatted: format.Group(d),
		Equation:  e.Equation(),
		Error:     d == format.ErrorSentinel,
	}
}

// textResult is a convenience that marshals v to JSON and wraps it in a
// CallToolResult with a single TextContent block.
func textResult(v any) *mcpsdk.CallToolResult {
	b, _ := json.MarshalIndent(v, "", "  ")
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{
			&mcpsdk.TextContent{Text: string(b)},
		},
	}
}

// errResult returns a CallToolResult that signals an error.
func errResult(err error) *mcpsdk.CallToolResult {
	r := &mcpsdk.CallToolResult{}
	r.SetError(err)
	return r
}
