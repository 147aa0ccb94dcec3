package calc

import (
	"github.com/mamaar/gocalc/pkg/history"
)

// Snapshot is the plain-data persistence surface: everything a storage
// collaborator needs to save and restore an engine. The engine performs no
// I/O itself.
type Snapshot struct {
	Display  string          `json:"display"`
	Equation string          `json:"equation"`
	Memory   float64         `json:"memory"`
	History  []history.Entry `json:"history"`
}

// Snapshot exports the current engine state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Display:  e.display,
		Equation: e.equation,
		Memory:   e.mem.Recall(),
		History:  e.hist.Entries(),
	}
}

// Restore replaces the engine state from a snapshot. An empty display (from
// a zero-value or hand-edited snapshot) restores as "0" so the display
// invariant holds; the history capacity bound is re-applied.
func (e *Engine) Restore(s Snapshot) {
	e.display = s.Display
	if e.display == "" {
		e.display = "0"
	}
	e.equation = s.Equation
	e.mem.Set(s.Memory)
	e.hist.Restore(s.History)
}
