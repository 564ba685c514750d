package dpll

// CheckClause reports whether at least one literal of cls evaluates true
// under interp. A variable that is still unassigned is treated as not
// satisfying the literal it appears as (an unassigned variable appearing
// only in already-satisfied clauses is fine; one appearing in an
// unsatisfied clause with no other true literal is a usage error on the
// caller's part, per the model-checker contract).
func CheckClause(cls Clause, interp Interp) bool {
	for _, l := range cls {
		if v, ok := interp.GetVal(l); ok && v {
			return true
		}
	}
	return false
}

// Check reports whether every clause of cnf has at least one literal
// evaluating true under interp.
func Check(cnf CNF, interp Interp) bool {
	for _, cls := range cnf {
		if !CheckClause(cls, interp) {
			return false
		}
	}
	return true
}
