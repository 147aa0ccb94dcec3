package history

import (
	"fmt"
	"testing"
	"time"
)

func TestLogRecordNewestFirst(t *testing.T) {
	l := NewLog()
	base := time.UnixMilli(1000)
	l.Record("7 + 3", "10", base)
	l.Record("2 * 4", "8", base.Add(time.Second))

	entries := l.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Expression != "2 * 4" || entries[0].Result != "8" {
		t.Errorf("newest entry = %+v, want 2 * 4 = 8", entries[0])
	}
	if entries[1].Expression != "7 + 3" {
		t.Errorf("oldest entry = %+v, want 7 + 3", entries[1])
	}
	if entries[0].Timestamp != base.Add(time.Second).UnixMilli() {
		t.Errorf("timestamp = %d, want %d", entries[0].Timestamp, base.Add(time.Second).UnixMilli())
	}
}

func TestLogCapacity(t *testing.T) {
	l := NewLog()
	now := time.UnixMilli(0)
	for i := 0; i < Capacity+25; i++ {
		l.Record(fmt.Sprintf("%d + 0", i), fmt.Sprintf("%d", i), now)
	}

	if l.Len() != Capacity {
		t.Fatalf("expected %d entries after overflow, got %d", Capacity, l.Len())
	}
	entries := l.Entries()
	// The retained entries are exactly the last Capacity, newest first.
	for i, e := range entries {
		want := fmt.Sprintf("%d", Capacity+25-1-i)
		if e.Result != want {
			t.Fatalf("entry %d result = %q, want %q", i, e.Result, want)
		}
	}
}

func TestLogClear(t *testing.T) {
	l := NewLog()
	l.Record("1 + 1", "2", time.Now())
	l.Clear()
	if l.Len() != 0 {
		t.Errorf("expected empty log after clear, got %d entries", l.Len())
	}
}

func TestLogAt(t *testing.T) {
	l := NewLog()
	l.Record("1 + 1", "2", time.Now())

	if e, ok := l.At(0); !ok || e.Result != "2" {
		t.Errorf("At(0) = %+v, %v", e, ok)
	}
	if _, ok := l.At(1); ok {
		t.Error("At(1) should not exist")
	}
	if _, ok := l.At(-1); ok {
		t.Error("At(-1) should not exist")
	}
}

func TestLogEntriesIsSnapshot(t *testing.T) {
	l := NewLog()
	l.Record("1 + 1", "2", time.Now())
	entries := l.Entries()
	entries[0].Result = "mutated"
	if e, _ := l.At(0); e.Result != "2" {
		t.Error("Entries() should return a copy, not the backing slice")
	}
}

func TestLogRestore(t *testing.T) {
	l := NewLog()
	in := make([]Entry, Capacity+10)
	for i := range in {
		in[i] = Entry{Expression: "x", Result: fmt.Sprintf("%d", i)}
	}
	l.Restore(in)
	if l.Len() != Capacity {
		t.Fatalf("restore should re-apply the capacity bound, got %d", l.Len())
	}
	if e, _ := l.At(0); e.Result != "0" {
		t.Errorf("restore should keep the head entries, got %+v", e)
	}
}
