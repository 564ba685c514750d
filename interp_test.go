package dpll

import "testing"

func TestInterpSetTrue(t *testing.T) {
	in := NewInterp(4)
	in.SetTrue(NegLitOf(2))
	if v, ok := in.GetVal(NegLitOf(2)); !ok || !v {
		t.Fatalf("GetVal(NegLitOf(2)) = (%v, %v), want (true, true)", v, ok)
	}
	if v, ok := in.GetVal(LitOf(2)); !ok || v {
		t.Fatalf("GetVal(LitOf(2)) = (%v, %v), want (false, true)", v, ok)
	}
	if _, ok := in.GetVal(LitOf(3)); ok {
		t.Fatalf("GetVal(LitOf(3)) reported assigned for an untouched variable")
	}
}

func TestInterpCloneIsIndependent(t *testing.T) {
	in := NewInterp(3)
	in.SetTrue(LitOf(1))
	snap := in.Clone()
	in.SetTrue(NegLitOf(1))
	if v, _ := snap.GetVal(LitOf(1)); !v {
		t.Fatalf("mutating the original interp affected its clone")
	}
	if v, _ := in.GetVal(LitOf(1)); v {
		t.Fatalf("SetTrue(NegLitOf(1)) did not flip var 1 to false")
	}
}

func TestInterpClear(t *testing.T) {
	in := NewInterp(2)
	in.SetTrue(LitOf(1))
	in.Clear(1)
	if _, ok := in.GetVal(LitOf(1)); ok {
		t.Fatalf("Clear did not reset the variable to unassigned")
	}
}

func TestInterpModel(t *testing.T) {
	in := NewInterp(4)
	in.SetTrue(LitOf(1))
	in.SetTrue(NegLitOf(2))
	in.SetTrue(LitOf(3))
	got := in.Model(3)
	want := []int{1, -2, 3}
	if len(got) != len(want) {
		t.Fatalf("Model() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Model() = %v, want %v", got, want)
		}
	}
}
