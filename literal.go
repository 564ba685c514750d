// Package dpll implements a Boolean satisfiability (SAT) decision procedure
// over propositional formulas in conjunctive normal form. It provides three
// progressively more sophisticated solvers — a chronological-backtracking
// DPLL solver with naive unit propagation, a watched-literal DPLL solver, and
// a conflict-driven clause-learning (CDCL) solver with non-chronological
// backjumping — sharing one data model and one public solver contract.
package dpll

import "fmt"

// VarID is a dense, positive variable identifier in the DIMACS convention:
// variables are numbered [1, N]. Zero is reserved as a clause terminator in
// the input format only and never appears as a VarID.
type VarID int32

// Lit is a literal: a variable paired with a polarity. The low bit is the
// negation bit (1 means negated); the remaining bits hold the variable id.
// This is the polarity-preserving code from the data model: 2*id + (0 or 1).
type Lit uint32

// LitOf returns the positive literal for v.
func LitOf(v VarID) Lit {
	return Lit(v) << 1
}

// NegLitOf returns the negative literal for v.
func NegLitOf(v VarID) Lit {
	return Lit(v)<<1 | 1
}

// Var returns the underlying variable of l.
func (l Lit) Var() VarID {
	return VarID(l >> 1)
}

// IsPos reports whether l is the positive polarity of its variable.
func (l Lit) IsPos() bool {
	return l&1 == 0
}

// Not returns the negation of l. not(not(l)) == l for every l.
func (l Lit) Not() Lit {
	return l ^ 1
}

// Eval returns the truth value of l given that its underlying variable has
// been assigned v.
func (l Lit) Eval(v bool) bool {
	if l.IsPos() {
		return v
	}
	return !v
}

func (l Lit) String() string {
	if l.IsPos() {
		return fmt.Sprintf("%d", l.Var())
	}
	return fmt.Sprintf("-%d", l.Var())
}

// Clause is an ordered sequence of literals. The order is semantically
// irrelevant to satisfiability but, once a clause is handed to a
// watched-literal solver, its literal order must not change afterward: watch
// positions are indices into this slice.
type Clause []Lit

// CNF is an ordered sequence of clauses forming a conjunction. Ordering is
// semantically irrelevant.
type CNF []Clause
