package dpll

// Assignment is a tri-state truth value: a variable is either Unassigned,
// or assigned AssnTrue/AssnFalse.
type Assignment uint8

const (
	Unassigned Assignment = iota
	AssnTrue
	AssnFalse
)

func (a Assignment) String() string {
	switch a {
	case Unassigned:
		return "unassigned"
	case AssnTrue:
		return "true"
	case AssnFalse:
		return "false"
	default:
		return "invalid"
	}
}

// inv flips a definite assignment; Unassigned is left unchanged.
func (a Assignment) inv() Assignment {
	switch a {
	case AssnTrue:
		return AssnFalse
	case AssnFalse:
		return AssnTrue
	default:
		return Unassigned
	}
}

func boolToAssn(v bool) Assignment {
	if v {
		return AssnTrue
	}
	return AssnFalse
}

// Interp is a partial mapping from variable id to boolean, realized as a
// dense slice indexed directly by VarID (index 0 is unused). "Unassigned" is
// distinct from "assigned false": once a variable is assigned within a
// solve, it is only cleared by backtracking.
type Interp struct {
	vals []Assignment
}

// NewInterp returns an Interp with n slots, all initially unassigned.
// Slots are indexed by VarID, so variables 1..nVars need NewInterp(nVars+1).
func NewInterp(n int) Interp {
	return Interp{vals: make([]Assignment, n)}
}

// Clone returns an independent copy of interp, suitable for storing as a
// trail snapshot.
func (in Interp) Clone() Interp {
	vals := make([]Assignment, len(in.vals))
	copy(vals, in.vals)
	return Interp{vals: vals}
}

// GetVal returns the truth value of l under interp, or (false, false) if
// l's variable is unassigned.
func (in Interp) GetVal(l Lit) (val bool, ok bool) {
	a := in.vals[l.Var()]
	if a == Unassigned {
		return false, false
	}
	return l.Eval(a == AssnTrue), true
}

// VarAssn returns the raw assignment of a variable, ignoring polarity.
func (in Interp) VarAssn(v VarID) Assignment {
	return in.vals[v]
}

// SetTrue assigns l's underlying variable such that l evaluates true.
// SetTrue(l) followed by GetVal(l) yields (true, true); GetVal(l.Not())
// yields (false, true).
func (in Interp) SetTrue(l Lit) {
	in.vals[l.Var()] = boolToAssn(l.Eval(true))
}

// Clear resets a variable to unassigned, undoing a prior SetTrue.
func (in Interp) Clear(v VarID) {
	in.vals[v] = Unassigned
}

// Len returns the number of slots this Interp has (the highest VarID it
// can hold, plus one).
func (in Interp) Len() int {
	return len(in.vals)
}

// Model renders variables 1..nVars as a DIMACS-style assignment: a
// positive entry means the variable is true, negative means false.
func (in Interp) Model(nVars int) []int {
	soln := make([]int, nVars)
	for v := 1; v <= nVars; v++ {
		switch in.vals[v] {
		case AssnTrue:
			soln[v-1] = v
		case AssnFalse:
			soln[v-1] = -v
		default:
			// An unassigned variable appears only in clauses that are
			// already satisfied by other literals; report it true by
			// convention so every model is total.
			soln[v-1] = v
		}
	}
	return soln
}
