// Package history implements the bounded, newest-first log of past
// calculations.
package history

import "time"

// Capacity is the maximum number of entries retained; older entries are
// evicted from the tail by count, not by age.
const Capacity = 50

// Entry is one completed calculation. Immutable once recorded.
type Entry struct {
	Expression string `json:"expression"`
	Result     string `json:"result"`
	Timestamp  int64  `json:"timestamp"` // Unix milliseconds
}

// Log is an ordered, append-at-head sequence of entries, newest first.
type Log struct {
	entries []Entry
}

// NewLog returns an empty log.
func NewLog() *Log {
	return &Log{}
}

// Record prepends a new entry and evicts from the tail past Capacity.
func (l *Log) Record(expression, result string, now time.Time) {
	e := Entry{Expression: expression, Result: result, Timestamp: now.UnixMilli()}
	l.entries = append([]Entry{e}, l.entries...)
	if len(l.entries) > Capacity {
		l.entries = l.entries[:Capacity]
	}
}

// Clear empties the log.
func (l *Log) Clear() {
	l.entries = nil
}

// Entries returns a snapshot copy, newest first.
func (l *Log) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of retained entries.
func (l *Log) Len() int {
	return len(l.entries)
}

// At returns the entry at index i (0 = newest) and whether it exists.
func (l *Log) At(i int) (Entry, bool) {
	if i < 0 || i >= len(l.entries) {
		return Entry{}, false
	}
	return l.entries[i], true
}

// Restore replaces the log contents, re-applying the capacity bound. Used by
// snapshot import; entries are expected newest first.
func (l *Log) Restore(entries []Entry) {
	if len(entries) > Capacity {
		entries = entries[:Capacity]
	}
	l.entries = make([]Entry, len(entries))
	copy(l.entries, entries)
}
