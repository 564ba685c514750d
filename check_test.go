package dpll

import "testing"

func TestCheckClause(t *testing.T) {
	in := NewInterp(4)
	in.SetTrue(NegLitOf(1))
	in.SetTrue(LitOf(2))

	cases := []struct {
		cls  Clause
		want bool
	}{
		{Clause{LitOf(1), LitOf(2)}, true},           // LitOf(2) is true
		{Clause{LitOf(1)}, false},                     // var 1 is false
		{Clause{LitOf(1), NegLitOf(2)}, false},        // both falsified
		{Clause{LitOf(3)}, false},                     // unassigned counts as not-yet-true
	}
	for _, c := range cases {
		if got := CheckClause(c.cls, in); got != c.want {
			t.Errorf("CheckClause(%v) = %v, want %v", c.cls, got, c.want)
		}
	}
}

func TestCheck(t *testing.T) {
	in := NewInterp(3)
	in.SetTrue(LitOf(1))
	in.SetTrue(NegLitOf(2))

	cnf := CNF{
		{LitOf(1), LitOf(2)},
		{NegLitOf(2), LitOf(3)},
	}
	if !Check(cnf, in) {
		t.Fatalf("Check reported false for a satisfied formula")
	}

	cnf = append(cnf, Clause{NegLitOf(1), LitOf(2)})
	if Check(cnf, in) {
		t.Fatalf("Check reported true for a formula with an unsatisfied clause")
	}
}
