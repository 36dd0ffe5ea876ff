package unionfind

import "testing"

func TestInit_Identity(t *testing.T) {
	s := New(16)
	s.Init(4)
	for i := int64(0); i <= 5; i++ {
		if got := s.Successor(i); got != i {
			t.Errorf("successor(%d) after init = %d, want %d", i, got, i)
		}
	}
}

func TestScenario1(t *testing.T) {
	s := New(16)
	s.Init(4)
	s.Delete(1)
	s.Delete(2)
	s.Delete(3)
	s.Delete(4)
	for k := 0; k < 4; k++ {
		if got := s.Successor(1); got != 5 {
			t.Errorf("successor(1) = %d, want 5", got)
		}
	}
}

func TestScenario2(t *testing.T) {
	s := New(16)
	s.Init(4)
	if got := s.Successor(1); got != 1 {
		t.Errorf("successor(1) = %d, want 1", got)
	}
	s.Delete(1)
	if got := s.Successor(1); got != 2 {
		t.Errorf("successor(1) after delete(1) = %d, want 2", got)
	}
	s.Delete(2)
	if got := s.Successor(2); got != 3 {
		t.Errorf("successor(2) after delete(2) = %d, want 3", got)
	}
}

func TestScenario3(t *testing.T) {
	s := New(16)
	s.Init(4)
	s.Delete(2)
	if got := s.Successor(1); got != 1 {
		t.Errorf("successor(1) = %d, want 1", got)
	}
	if got := s.Successor(2); got != 3 {
		t.Errorf("successor(2) = %d, want 3", got)
	}
	if got := s.Successor(3); got != 3 {
		t.Errorf("successor(3) = %d, want 3", got)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	s := New(16)
	s.Init(4)
	s.Delete(2)
	s.Delete(2)
	s.Delete(2)
	if got := s.Successor(2); got != 3 {
		t.Errorf("successor(2) = %d, want 3", got)
	}
	if !s.IdempotentDelete() {
		t.Error("expected union-find delete to be idempotent")
	}
}

func TestSuccessorIsFixpoint(t *testing.T) {
	s := New(16)
	s.Init(8)
	s.Delete(3)
	s.Delete(4)
	s.Delete(5)
	for i := int64(0); i <= 9; i++ {
		r := s.Successor(i)
		if r2 := s.Successor(r); r2 != r {
			t.Errorf("successor(%d)=%d not a fixpoint, successor(%d)=%d", i, r, r, r2)
		}
	}
}

func TestSequentialDeletesLargerN(t *testing.T) {
	s := New(32)
	n := int64(16)
	s.Init(n)
	for i := int64(1); i <= n; i++ {
		s.Delete(i)
		if got := s.Successor(0); got != 0 {
			t.Fatalf("after deleting 1..%d, successor(0) = %d, want 0 (sentinel stays live)", i, got)
		}
		for j := int64(1); j <= i; j++ {
			if got := s.Successor(j); got != i+1 {
				t.Fatalf("after deleting 1..%d, successor(%d) = %d, want %d", i, j, got, i+1)
			}
		}
	}
}
