package dpll

// SolverStats reports the internal counters a solver tracked while
// running. Fields that don't apply to a given engine (conflicts and
// learned clauses, for the two chronological solvers) are left zero.
type SolverStats struct {
	Decisions    int64
	Propagations int64
	Conflicts    int64
	Learned      int64
}

// Stats returns s's counters.
func (s *NaiveSolver) Stats() SolverStats {
	return SolverStats{Decisions: s.numDecisions, Propagations: s.numPropagations}
}

// Stats returns s's counters.
func (s *WatchSolver) Stats() SolverStats {
	return SolverStats{Decisions: s.numDecisions, Propagations: s.numPropagations}
}

// Stats returns s's counters.
func (s *CDCLSolver) Stats() SolverStats {
	return SolverStats{
		Decisions:    s.numDecisions,
		Propagations: s.numPropagations,
		Conflicts:    s.numConflicts,
		Learned:      s.numLearned,
	}
}
