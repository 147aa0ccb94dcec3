package memory

import "testing"

func TestStoreAccumulation(t *testing.T) {
	s := NewStore()
	if s.Recall() != 0 {
		t.Fatalf("new store should recall 0, got %v", s.Recall())
	}

	s.Add(5)
	s.Add(3)
	if s.Recall() != 8 {
		t.Errorf("after M+ 5 and M+ 3, recall = %v, want 8", s.Recall())
	}

	s.Subtract(2)
	if s.Recall() != 6 {
		t.Errorf("after M- 2, recall = %v, want 6", s.Recall())
	}

	// Recall does not mutate.
	_ = s.Recall()
	if s.Recall() != 6 {
		t.Errorf("recall mutated the register")
	}

	s.Clear()
	if s.Recall() != 0 {
		t.Errorf("after clear, recall = %v, want 0", s.Recall())
	}
}

func TestStoreSet(t *testing.T) {
	s := NewStore()
	s.Set(42.5)
	if s.Recall() != 42.5 {
		t.Errorf("Set(42.5) then recall = %v", s.Recall())
	}
}
