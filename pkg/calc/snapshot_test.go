package calc

import (
	"encoding/json"
	"testing"
)

func TestSnapshotRoundTrip(t *testing.T) {
	e := testEngine()
	press(e, "5", "M+", "AC", "7", "+", "3", "=", "AC", "4", "2", "+")

	snap := e.Snapshot()
	if snap.Display != "0" || snap.Equation != "42 + " {
		t.Fatalf("snapshot = %+v", snap)
	}
	if snap.Memory != 5 {
		t.Errorf("snapshot memory = %v, want 5", snap.Memory)
	}
	if len(snap.History) != 1 {
		t.Fatalf("snapshot history length = %d, want 1", len(snap.History))
	}

	// Plain data: survives JSON.
	b, err := json.Marshal(snap)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back Snapshot
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	restored := testEngine()
	restored.Restore(back)
	if restored.Display() != "0" || restored.Equation() != "42 + " {
		t.Errorf("restored state: %q / %q", restored.Display(), restored.Equation())
	}
	if restored.MemoryValue() != 5 {
		t.Errorf("restored memory = %v, want 5", restored.MemoryValue())
	}
	hist := restored.History()
	if len(hist) != 1 || hist[0].Expression != "7 + 3" || hist[0].Result != "10" {
		t.Errorf("restored history = %+v", hist)
	}

	// The restored engine keeps working from the pending state.
	press(restored, "8", "=")
	if restored.Display() != "50" {
		t.Errorf("display after resume = %q, want \"50\"", restored.Display())
	}
}

func TestRestoreEmptySnapshot(t *testing.T) {
	e := testEngine()
	press(e, "1", "2")
	e.Restore(Snapshot{})
	if e.Display() != "0" {
		t.Errorf("empty snapshot should restore display \"0\", got %q", e.Display())
	}
	if e.Equation() != "" || e.MemoryValue() != 0 || len(e.History()) != 0 {
		t.Errorf("empty snapshot should reset everything")
	}
}
