package calc

import (
	"fmt"
	"strings"

	"github.com/mamaar/gocalc/pkg/history"
)

// ActionKind discriminates the engine's action vocabulary.
type ActionKind int

const (
	ActionKey ActionKind = iota // digit, decimal point, or closing paren
	ActionOperator
	ActionEvaluate
	ActionClear
	ActionBackspace
	ActionFunction
	ActionMemory
	ActionRecallHistory
	ActionClearHistory
)

func (k ActionKind) String() string {
	switch k {
	case ActionKey:
		return "key"
	case ActionOperator:
		return "operator"
	case ActionEvaluate:
		return "evaluate"
	case ActionClear:
		return "clear"
	case ActionBackspace:
		return "backspace"
	case ActionFunction:
		return "function"
	case ActionMemory:
		return "memory"
	case ActionRecallHistory:
		return "recall-history"
	case ActionClearHistory:
		return "clear-history"
	default:
		return "unknown"
	}
}

// Action is one discrete user action. Arg carries the key, operator, function
// name, or memory op for the kinds that take one; Entry carries the history
// entry for ActionRecallHistory.
type Action struct {
	Kind  ActionKind
	Arg   string
	Entry history.Entry
}

// Memory operation names accepted by ApplyMemory.
const (
	MemoryAdd      = "M+"
	MemorySubtract = "M-"
	MemoryRecall   = "MR"
	MemoryClear    = "MC"
)

// ParseKey translates a raw key token from an input-mapping collaborator into
// an Action. Recognized tokens: digits, ".", ")", the binary operators
// (+ - * / % ^ and the × ÷ glyphs), "=", "AC", "back", the memory ops, and
// function names (pow2, powY, PI, E, sin, cos, tan, log, ln, sqrt).
func ParseKey(tok string) (Action, error) {
	switch tok {
	case "=":
		return Action{Kind: ActionEvaluate}, nil
	case "AC", "C":
		return Action{Kind: ActionClear}, nil
	case "back", "backspace":
		return Action{Kind: ActionBackspace}, nil
	case "+", "-", "*", "/", "%", "^", "×", "÷":
		return Action{Kind: ActionOperator, Arg: tok}, nil
	case MemoryAdd, MemorySubtract, MemoryRecall, MemoryClear:
		return Action{Kind: ActionMemory, Arg: tok}, nil
	case "pow2", "powY", "PI", "E", "sin", "cos", "tan", "log", "ln", "sqrt":
		return Action{Kind: ActionFunction, Arg: tok}, nil
	case ".", ")":
		return Action{Kind: ActionKey, Arg: tok}, nil
	}
	if len(tok) == 1 && strings.ContainsAny(tok, "0123456789") {
		return Action{Kind: ActionKey, Arg: tok}, nil
	}
	return Action{}, fmt.Errorf("unrecognized key %q", tok)
}
