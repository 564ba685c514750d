package dpll

// FromInts converts a DIMACS-style problem (one clause per slice, negative
// integers denoting negated variables, as produced by ParseDIMACS) into the
// internal CNF representation. Variables are assumed dense in [1, nVars]
// per the data model's invariant; nVars is the highest variable id that
// appears, or the declared count from a DIMACS problem line if it is
// larger.
func FromInts(problem [][]int, nVars int) CNF {
	cnf := make(CNF, len(problem))
	for i, ints := range problem {
		cls := make(Clause, len(ints))
		for j, n := range ints {
			if n > 0 {
				cls[j] = LitOf(VarID(n))
			} else {
				cls[j] = NegLitOf(VarID(-n))
			}
			if v := absInt(n); v > nVars {
				nVars = v
			}
		}
		cnf[i] = cls
	}
	return cnf
}

// NVars returns the highest variable id appearing in problem.
func NVars(problem [][]int) int {
	n := 0
	for _, cls := range problem {
		for _, v := range cls {
			if a := absInt(v); a > n {
				n = a
			}
		}
	}
	return n
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// ToInts renders cnf (as produced by FromInts) back into the
// slice-of-signed-ints form ParseDIMACS/WriteDIMACS use.
func ToInts(cnf CNF) [][]int {
	problem := make([][]int, len(cnf))
	for i, cls := range cnf {
		ints := make([]int, len(cls))
		for j, l := range cls {
			if l.IsPos() {
				ints[j] = int(l.Var())
			} else {
				ints[j] = -int(l.Var())
			}
		}
		problem[i] = ints
	}
	return problem
}
