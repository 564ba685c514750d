package dpll

import "testing"

func TestWatchSolverUnitPropagation(t *testing.T) {
	cnf := CNF{
		{LitOf(1)},
		{NegLitOf(1), LitOf(2)},
	}
	s := NewWatchSolver(cnf, 2, Interp{})
	result := s.Solve()
	if !result.Sat {
		t.Fatalf("got UNSAT; want SAT")
	}
	if v, ok := result.Model.GetVal(LitOf(2)); !ok || !v {
		t.Fatalf("x2 should have been forced true by unit propagation")
	}
}

func TestWatchSolverBacktracks(t *testing.T) {
	cnf := CNF{
		{LitOf(1), LitOf(2)},
		{LitOf(1), NegLitOf(2)},
		{NegLitOf(1), LitOf(2)},
		{NegLitOf(1), NegLitOf(2)},
	}
	s := NewWatchSolver(cnf, 2, Interp{})
	result := s.Solve()
	if result.Sat {
		t.Fatalf("got SAT with model %v; want UNSAT", result.Model.Model(2))
	}
}

// TestWatchSolverLongClause checks watch movement on a long clause: the
// unit x1 falsifies the clause's first watch (-1), so bcp moves that watch
// to the first unassigned non-watched literal (x3) instead of reporting a
// unit or a conflict, and the solve must still terminate SAT.
func TestWatchSolverLongClause(t *testing.T) {
	cnf := CNF{
		{LitOf(1)},
		{NegLitOf(1), LitOf(2), LitOf(3), LitOf(4), LitOf(5)},
	}
	s := NewWatchSolver(cnf, 5, Interp{})
	result := s.Solve()
	if !result.Sat {
		t.Fatalf("got UNSAT; want SAT")
	}
}
