package dpll

// Result is the outcome of a solve: either a satisfying model or an UNSAT
// verdict carrying a human-readable reason. It is the Go rendering of the
// two-armed Satness::SAT(Interp) | UNSAT(reason) result.
type Result struct {
	Sat    bool
	Model  Interp
	Reason string
}

// Solver is the public contract shared by all three engines. A Solver is
// single-use: Solve must be called at most once per instance.
type Solver interface {
	Solve() Result
}

// Variant names one of the three solving strategies. The CLI selects one
// at startup via this enumerated tag; there is no implementation
// inheritance between them, only a shared interface.
type Variant int

const (
	Naive Variant = iota
	Watch
	NonChro
)

func (v Variant) String() string {
	switch v {
	case Naive:
		return "naive"
	case Watch:
		return "watch"
	case NonChro:
		return "nonchro"
	default:
		return "unknown"
	}
}

// ParseVariant maps a CLI flag value to a Variant. The empty string and
// "nonchro" both select the CDCL solver, which is the default engine.
func ParseVariant(s string) (Variant, bool) {
	switch s {
	case "", "nonchro":
		return NonChro, true
	case "naive":
		return Naive, true
	case "watch":
		return Watch, true
	default:
		return NonChro, false
	}
}

// New constructs the solver for the given variant over cnf, honoring an
// optional starting partial assignment (a zero Interp{} means none). nVars is the
// highest variable id that appears in cnf; variables are numbered [1, nVars].
func New(v Variant, cnf CNF, nVars int, initial Interp) Solver {
	switch v {
	case Naive:
		return NewNaiveSolver(cnf, nVars, initial)
	case Watch:
		return NewWatchSolver(cnf, nVars, initial)
	default:
		return NewCDCLSolver(cnf, nVars, initial)
	}
}
