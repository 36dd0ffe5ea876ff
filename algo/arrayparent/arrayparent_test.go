package arrayparent

import "testing"

var allVariants = []Variant{Naive, Recursive, TwoPass, TwoPassChecked, Halving}

func TestInit_Identity(t *testing.T) {
	for _, v := range allVariants {
		s := New(v, 16)
		s.Init(4)
		for i := int64(0); i <= 5; i++ {
			if got := s.Successor(i); got != i {
				t.Errorf("%s: successor(%d) after init = %d, want %d", s.Name(), i, got, i)
			}
		}
	}
}

func TestScenario1(t *testing.T) {
	// scenario: delete 1..4, query successor(1) four times.
	for _, v := range allVariants {
		s := New(v, 16)
		s.Init(4)
		s.Delete(1)
		s.Delete(2)
		s.Delete(3)
		s.Delete(4)
		for k := 0; k < 4; k++ {
			if got := s.Successor(1); got != 5 {
				t.Errorf("%s: successor(1) = %d, want 5", s.Name(), got)
			}
		}
	}
}

func TestScenario2(t *testing.T) {
	// scenario: [1, -1, 1, -2, 2, 0] -> [1, 0, 2, 0, 3, 0]
	for _, v := range allVariants {
		s := New(v, 16)
		s.Init(4)
		if got := s.Successor(1); got != 1 {
			t.Errorf("%s: successor(1) = %d, want 1", s.Name(), got)
		}
		s.Delete(1)
		if got := s.Successor(1); got != 2 {
			t.Errorf("%s: successor(1) after delete(1) = %d, want 2", s.Name(), got)
		}
		s.Delete(2)
		if got := s.Successor(2); got != 3 {
			t.Errorf("%s: successor(2) after delete(2) = %d, want 3", s.Name(), got)
		}
	}
}

func TestScenario3(t *testing.T) {
	// scenario: [-2, 1, 2, 3, 0] -> [0, 1, 3, 3, 0]
	for _, v := range allVariants {
		s := New(v, 16)
		s.Init(4)
		s.Delete(2)
		if got := s.Successor(1); got != 1 {
			t.Errorf("%s: successor(1) = %d, want 1", s.Name(), got)
		}
		if got := s.Successor(2); got != 3 {
			t.Errorf("%s: successor(2) = %d, want 3", s.Name(), got)
		}
		if got := s.Successor(3); got != 3 {
			t.Errorf("%s: successor(3) = %d, want 3", s.Name(), got)
		}
	}
}

func TestSuccessorIsFixpoint(t *testing.T) {
	for _, v := range allVariants {
		s := New(v, 16)
		s.Init(8)
		s.Delete(3)
		s.Delete(4)
		s.Delete(5)
		for i := int64(0); i <= 9; i++ {
			r := s.Successor(i)
			if r2 := s.Successor(r); r2 != r {
				t.Errorf("%s: successor(%d)=%d not a fixpoint, successor(%d)=%d", s.Name(), i, r, r, r2)
			}
		}
	}
}

func TestCheckedDeleteIsIdempotent(t *testing.T) {
	s := New(TwoPassChecked, 16)
	s.Init(4)
	s.Delete(2)
	s.Delete(2)
	s.Delete(2)
	if got := s.Successor(2); got != 3 {
		t.Errorf("successor(2) = %d, want 3", got)
	}
	if !s.IdempotentDelete() {
		t.Error("expected TwoPassChecked to report idempotent delete")
	}
}

func TestNonCheckedVariantsReportNonIdempotent(t *testing.T) {
	for _, v := range []Variant{Naive, Recursive, TwoPass, Halving} {
		s := New(v, 16)
		if s.IdempotentDelete() {
			t.Errorf("%s: expected non-idempotent delete", s.Name())
		}
	}
}

func TestName(t *testing.T) {
	want := map[Variant]string{
		Naive:          "array-parent-naive",
		Recursive:      "array-parent-recursive",
		TwoPass:        "array-parent-2pass",
		TwoPassChecked: "array-parent-2pass-checked",
		Halving:        "array-parent-halving",
	}
	for v, name := range want {
		if got := New(v, 4).Name(); got != name {
			t.Errorf("variant %d: Name() = %q, want %q", v, got, name)
		}
	}
}
