package mcp

import (
	"context"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mamaar/gocalc/pkg/calc"
)

// --- press_key ---

type PressKeyInput struct {
	Keys []string `json:"keys" jsonschema:"key tokens to press in order: digits, '.', ')', operators (+ - * / % ^), '=', 'AC', 'back', memory ops (M+ M- MR MC), or function names (sin cos tan log ln sqrt pow2 powY PI E)"`
}

// --- press_operator ---

type PressOperatorInput struct {
	Operator string `json:"operator" jsonschema:"binary operator to commit: + - * / % ^ (the × and ÷ glyphs are accepted)"`
}

// --- apply_function ---

type ApplyFunctionInput struct {
	Name string `json:"name" jsonschema:"function key: sin, cos, tan, log, ln, sqrt, pow2, powY, PI, or E"`
}

// --- evaluate ---

type EvaluateInput struct{}

type EvaluateOutput struct {
	StateResult
	Expression string `json:"expression,omitempty"`
	Result     string `json:"result,omitempty"`
}

// --- evaluate_expression ---

type EvaluateExpressionInput struct {
	Expression string `json:"expression" jsonschema:"arithmetic expression over digits, + - * / % ^, parentheses, sin/cos/tan/log/ln/sqrt, PI and E"`
}

// --- clear / backspace ---

type ClearInput struct{}
type BackspaceInput struct{}

// --- calculator_state ---

type CalculatorStateInput struct{}

type CalculatorStateOutput struct {
	StateResult
	Memory       float64 `json:"memory"`
	HistoryCount int     `json:"history_count"`
}

var operators = map[string]bool{
	"+": true, "-": true, "*": true, "/": true,
	"%": true, "^": true, "×": true, "÷": true,
}

func registerKeypadTools(s *mcpsdk.Server, state *MCPServer) {
	mcpsdk.AddTool(s, &mcpsdk.Tool{
		Name:        "press_key",
		Description: "Press a sequence of calculator keys and return the resulting display state.",
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, in PressKeyInput) (*mcpsdk.CallToolResult, any, error) {
		state.Lock()
		defer state.Unlock()

		eng := state.Engine()
		for _, tok := range in.Keys {
			a, err := calc.ParseKey(tok)
			if err != nil {
				return errResult(err), nil, nil
			}
			eng.Apply(a)
		}
		return textResult(stateResult(eng)), nil, nil
	})

	mcpsdk.AddTool(s, &mcpsdk.Tool{
		Name:        "press_operator",
		Description: "Commit the current operand and a binary operator into the pending equation.",
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, in PressOperatorInput) (*mcpsdk.CallToolResult, any, error) {
		state.Lock()
		defer state.Unlock()

		if !operators[in.Operator] {
			return errResult(fmt.Errorf("unknown operator %q", in.Operator)), nil, nil
		}
		eng := state.Engine()
		eng.PressOperator(in.Operator)
		return textResult(stateResult(eng)), nil, nil
	})

	mcpsdk.AddTool(s, &mcpsdk.Tool{
		Name:        "apply_function",
		Description: "Apply a function key: square the operand (pow2), start a power (powY), insert a constant (PI, E), or open a pending call (sin, cos, tan, log, ln, sqrt).",
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, in ApplyFunctionInput) (*mcpsdk.CallToolResult, any, error) {
		state.Lock()
		defer state.Unlock()

		a, err := calc.ParseKey(in.Name)
		if err != nil || a.Kind != calc.ActionFunction {
			return errResult(fmt.Errorf("unknown function %q", in.Name)), nil, nil
		}
		eng := state.Engine()
		eng.ApplyFunction(in.Name)
		return textResult(stateResult(eng)), nil, nil
	})

	mcpsdk.AddTool(s, &mcpsdk.Tool{
		Name:        "evaluate",
		Description: "Evaluate the pending equation plus the current operand. On failure the display shows the Error sentinel.",
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, in EvaluateInput) (*mcpsdk.CallToolResult, any, error) {
		state.Lock()
		defer state.Unlock()

		eng := state.Engine()
		expr := eng.Equation() + eng.Display()
		eng.Evaluate()

		out := EvaluateOutput{StateResult: stateResult(eng)}
		if !out.Error {
			out.Expression = expr
			out.Result = eng.Display()
		}
		return textResult(out), nil, nil
	})

	mcpsdk.AddTool(s, &mcpsdk.Tool{
		Name:        "evaluate_expression",
		Description: "Evaluate a complete arithmetic expression directly, recording it in history.",
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, in EvaluateExpressionInput) (*mcpsdk.CallToolResult, any, error) {
		state.Lock()
		defer state.Unlock()

		eng := state.Engine()
		result, err := eng.EvaluateExpression(in.Expression)
		if err != nil {
			return errResult(fmt.Errorf("evaluate %q: %w", in.Expression, err)), nil, nil
		}
		out := EvaluateOutput{
			StateResult: stateResult(eng),
			Expression:  in.Expression,
			Result:      result,
		}
		return textResult(out), nil, nil
	})

	mcpsdk.AddTool(s, &mcpsdk.Tool{
		Name:        "clear",
		Description: "Clear the display and pending equation (AC). Memory and history survive.",
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, in ClearInput) (*mcpsdk.CallToolResult, any, error) {
		state.Lock()
		defer state.Unlock()

		eng := state.Engine()
		eng.Clear()
		return textResult(stateResult(eng)), nil, nil
	})

	mcpsdk.AddTool(s, &mcpsdk.Tool{
		Name:        "backspace",
		Description: "Drop the last character of the current operand, flooring at 0.",
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, in BackspaceInput) (*mcpsdk.CallToolResult, any, error) {
		state.Lock()
		defer state.Unlock()

		eng := state.Engine()
		eng.Backspace()
		return textResult(stateResult(eng)), nil, nil
	})

	mcpsdk.AddTool(s, &mcpsdk.Tool{
		Name:        "calculator_state",
		Description: "Return the current display, pending equation, memory register, and history count.",
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, in CalculatorStateInput) (*mcpsdk.CallToolResult, any, error) {
		state.RLock()
		defer state.RUnlock()

		eng := state.Engine()
		out := CalculatorStateOutput{
			StateResult:  stateResult(eng),
			Memory:       eng.MemoryValue(),
			HistoryCount: len(eng.History()),
		}
		return textResult(out), nil, nil
	})
}
