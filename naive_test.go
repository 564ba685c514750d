package dpll

import "testing"

func TestNaiveSolverUnitPropagation(t *testing.T) {
	cnf := CNF{
		{LitOf(1)},
		{NegLitOf(1), LitOf(2)},
	}
	s := NewNaiveSolver(cnf, 2, Interp{})
	result := s.Solve()
	if !result.Sat {
		t.Fatalf("got UNSAT; want SAT")
	}
	if v, ok := result.Model.GetVal(LitOf(2)); !ok || !v {
		t.Fatalf("x2 should have been forced true by unit propagation")
	}
}

func TestNaiveSolverBacktracks(t *testing.T) {
	// No unit clauses: forces at least one decision, conflict, and flip.
	cnf := CNF{
		{LitOf(1), LitOf(2)},
		{LitOf(1), NegLitOf(2)},
		{NegLitOf(1), LitOf(2)},
		{NegLitOf(1), NegLitOf(2)},
	}
	s := NewNaiveSolver(cnf, 2, Interp{})
	result := s.Solve()
	if result.Sat {
		t.Fatalf("got SAT with model %v; want UNSAT", result.Model.Model(2))
	}
}

func TestNaiveSolverHonorsInitialAssignment(t *testing.T) {
	cnf := CNF{
		{LitOf(1), LitOf(2)},
	}
	initial := NewInterp(3)
	initial.SetTrue(NegLitOf(1))
	s := NewNaiveSolver(cnf, 2, initial)
	result := s.Solve()
	if !result.Sat {
		t.Fatalf("got UNSAT; want SAT")
	}
	if v, ok := result.Model.GetVal(LitOf(2)); !ok || !v {
		t.Fatalf("x2 should have been true: with x1=false, x2 is the clause's only unassigned literal, so findVar decides it true directly")
	}
}
