package dpll

import "testing"

func TestCDCLSolverUnitPropagation(t *testing.T) {
	cnf := CNF{
		{LitOf(1)},
		{NegLitOf(1), LitOf(2)},
	}
	s := NewCDCLSolver(cnf, 2, Interp{})
	result := s.Solve()
	if !result.Sat {
		t.Fatalf("got UNSAT; want SAT")
	}
	if v, ok := result.Model.GetVal(LitOf(2)); !ok || !v {
		t.Fatalf("x2 should have been forced true by unit propagation")
	}
}

func TestCDCLSolverUnsat(t *testing.T) {
	cnf := CNF{
		{LitOf(1), LitOf(2)},
		{LitOf(1), NegLitOf(2)},
		{NegLitOf(1), LitOf(2)},
		{NegLitOf(1), NegLitOf(2)},
	}
	s := NewCDCLSolver(cnf, 2, Interp{})
	result := s.Solve()
	if result.Sat {
		t.Fatalf("got SAT with model %v; want UNSAT", result.Model.Model(2))
	}
}

// TestCDCLSolverSatWithUnusedVariable solves a satisfiable formula over
// x1..x3 with nVars = 4, so x4 appears in no clause (findVar only visits
// clause literals and never decides it). A SAT result must satisfy the
// formula; an UNSAT result must come with at least one learned clause if
// the solver recorded any conflict.
func TestCDCLSolverSatWithUnusedVariable(t *testing.T) {
	cnf := CNF{
		{LitOf(1), LitOf(2)},
		{NegLitOf(1), LitOf(3)},
		{NegLitOf(2), NegLitOf(3)},
		{NegLitOf(2), LitOf(3)},
	}
	s := NewCDCLSolver(cnf, 4, Interp{})
	result := s.Solve()
	if result.Sat {
		if !Check(cnf, result.Model) {
			t.Fatalf("got SAT with model that does not satisfy the formula")
		}
		return
	}
	// Whichever verdict this formula actually has, the solver must have
	// learned at least one clause if it hit a conflict along the way.
	if s.numConflicts > 0 && s.numLearned == 0 {
		t.Fatalf("solver recorded %d conflicts but learned no clauses", s.numConflicts)
	}
}

func TestCDCLSolverHonorsInitialAssignment(t *testing.T) {
	cnf := CNF{
		{LitOf(1), LitOf(2)},
	}
	initial := NewInterp(3)
	initial.SetTrue(NegLitOf(1))
	s := NewCDCLSolver(cnf, 2, initial)
	result := s.Solve()
	if !result.Sat {
		t.Fatalf("got UNSAT; want SAT")
	}
	if v, ok := result.Model.GetVal(LitOf(2)); !ok || !v {
		t.Fatalf("x2 should have been true: with x1=false, x2 is the clause's only unassigned literal, so findVar decides it true directly")
	}
}
