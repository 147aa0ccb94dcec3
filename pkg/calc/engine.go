// Package calc implements the calculator engine: the state machine that turns
// a stream of discrete user actions into display state, backed by the
// expression evaluator, the bounded history log, and the memory register.
//
// The engine's state is the pair (display, equation): display is the operand
// currently being typed (always a numeric literal, "0", or the "Error"
// sentinel), equation is the committed expression prefix including trailing
// operator text. Every action is total from every reachable state; failures
// collapse into the sentinel, which any digit or clear exits.
//
// The engine is not safe for concurrent use. Callers that receive actions
// from multiple sources must serialize them onto one goroutine.
package calc

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/mamaar/gocalc/pkg/eval"
	"github.com/mamaar/gocalc/pkg/format"
	"github.com/mamaar/gocalc/pkg/history"
	"github.com/mamaar/gocalc/pkg/memory"
)

// Engine owns the display state and is the sole mutator of its history log
// and memory register.
type Engine struct {
	display  string
	equation string
	mem      *memory.Store
	hist     *history.Log
	now      func() time.Time
}

// NewEngine returns an engine in the initial state: display "0", empty
// equation, cleared memory, empty history.
func NewEngine() *Engine {
	return &Engine{
		display: "0",
		mem:     memory.NewStore(),
		hist:    history.NewLog(),
		now:     time.Now,
	}
}

// SetClock replaces the engine's clock. Timestamps on history entries come
// from this clock; tests pin it.
func (e *Engine) SetClock(now func() time.Time) {
	e.now = now
}

// Apply dispatches a single action. Unknown kinds are ignored.
func (e *Engine) Apply(a Action) {
	switch a.Kind {
	case ActionKey:
		e.PressKey(a.Arg)
	case ActionOperator:
		e.PressOperator(a.Arg)
	case ActionEvaluate:
		e.Evaluate()
	case ActionClear:
		e.Clear()
	case ActionBackspace:
		e.Backspace()
	case ActionFunction:
		e.ApplyFunction(a.Arg)
	case ActionMemory:
		e.ApplyMemory(a.Arg)
	case ActionRecallHistory:
		e.RecallHistory(a.Entry)
	case ActionClearHistory:
		e.ClearHistory()
	}
}

// PressKey handles a digit, decimal point, or closing paren.
// A second "." within the current operand is ignored, "." onto "0" or the
// sentinel starts "0.", and ")" always appends so a pending function call
// closes around the typed operand rather than replacing it.
func (e *Engine) PressKey(key string) {
	if key == ")" {
		if e.display == format.ErrorSentinel {
			e.display = "0"
		}
		e.display += key
		return
	}
	if key == "." && strings.Contains(e.display, ".") {
		return
	}
	if e.display == "0" || e.display == format.ErrorSentinel {
		if key == "." {
			e.display = "0."
		} else {
			e.display = key
		}
		return
	}
	e.display += key
}

// PressOperator commits the current operand and op into the equation and
// resets the display. No-op while the sentinel is shown.
func (e *Engine) PressOperator(op string) {
	if e.display == format.ErrorSentinel {
		return
	}
	e.equation += e.display + " " + op + " "
	e.display = "0"
}

// Evaluate runs the evaluator over equation + display. Success records a
// history entry and shows the canonical result; failure shows the sentinel.
// Either way the equation empties.
func (e *Engine) Evaluate() {
	text := e.equation + e.display
	result, err := eval.Evaluate(text)
	if err != nil {
		e.display = format.ErrorSentinel
		e.equation = ""
		return
	}
	e.hist.Record(text, result, e.now())
	e.display = result
	e.equation = ""
}

// EvaluateExpression evaluates arbitrary restricted-grammar text through the
// same success and failure paths as Evaluate, discarding any pending state.
// The typed error is returned so callers can report it.
func (e *Engine) EvaluateExpression(text string) (string, error) {
	result, err := eval.Evaluate(text)
	if err != nil {
		e.display = format.ErrorSentinel
		e.equation = ""
		return "", err
	}
	e.hist.Record(text, result, e.now())
	e.display = result
	e.equation = ""
	return result, nil
}

// Clear resets display and equation (AC). Memory and history survive.
func (e *Engine) Clear() {
	e.display = "0"
	e.equation = ""
}

// Backspace drops the last character of the display, flooring at "0".
func (e *Engine) Backspace() {
	if len(e.display) <= 1 || e.display == format.ErrorSentinel {
		e.display = "0"
		return
	}
	e.display = e.display[:len(e.display)-1]
}

// ApplyFunction handles the named function keys. pow2 squares the operand in
// place, powY is the power operator, PI and E replace the operand with the
// constant, and every other name opens a pending call in the equation; its
// ")" must arrive as a key token.
func (e *Engine) ApplyFunction(name string) {
	switch name {
	case "pow2":
		v := parseOperand(e.display)
		sq := v * v
		if math.IsInf(sq, 0) {
			e.display = format.ErrorSentinel
			return
		}
		e.display = format.Canonical(sq)
	case "powY":
		e.PressOperator("^")
	case "PI":
		e.display = format.Canonical(math.Pi)
	case "E":
		e.display = format.Canonical(math.E)
	default:
		e.equation += name + "("
		e.display = "0"
	}
}

// ApplyMemory handles M+, M-, MR, and MC using the current operand. The
// sentinel contributes zero. MR replaces the display with the recalled value.
func (e *Engine) ApplyMemory(op string) {
	switch op {
	case MemoryAdd:
		e.mem.Add(parseOperand(e.display))
	case MemorySubtract:
		e.mem.Subtract(parseOperand(e.display))
	case MemoryRecall:
		e.display = format.Canonical(e.mem.Recall())
	case MemoryClear:
		e.mem.Clear()
	}
}

// RecallHistory replaces the display with a past result.
func (e *Engine) RecallHistory(entry history.Entry) {
	if entry.Result == "" {
		return
	}
	e.display = entry.Result
}

// ClearHistory empties the history log.
func (e *Engine) ClearHistory() {
	e.hist.Clear()
}

// Display returns the raw current operand text.
func (e *Engine) Display() string { return e.display }

// Equation returns the committed expression prefix.
func (e *Engine) Equation() string { return e.equation }

// MemoryValue returns the memory register value.
func (e *Engine) MemoryValue() float64 { return e.mem.Recall() }

// History returns a newest-first snapshot of the history log.
func (e *Engine) History() []history.Entry { return e.hist.Entries() }

// HistoryAt returns the history entry at index i (0 = newest).
func (e *Engine) HistoryAt(i int) (history.Entry, bool) { return e.hist.At(i) }

// parseOperand parses display text, treating anything non-numeric (the
// sentinel) as zero so memory and function actions stay total.
func parseOperand(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
