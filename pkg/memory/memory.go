// Package memory implements the calculator's single memory register.
package memory

// Store is a single numeric register. It defaults to zero and persists across
// evaluations until explicitly cleared. All operations are total.
type Store struct {
	register float64
}

// NewStore returns a cleared register.
func NewStore() *Store {
	return &Store{}
}

// Add accumulates current into the register (M+).
func (s *Store) Add(current float64) {
	s.register += current
}

// Subtract removes current from the register (M-).
func (s *Store) Subtract(current float64) {
	s.register -= current
}

// Recall returns the register value without mutating it (MR).
func (s *Store) Recall() float64 {
	return s.register
}

// Clear resets the register to zero (MC).
func (s *Store) Clear() {
	s.register = 0
}

// Set overwrites the register. Used by snapshot restore.
func (s *Store) Set(v float64) {
	s.register = v
}
