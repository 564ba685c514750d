package dpll

// naiveTrailFrame records a decision point for the naive solver: the
// literal chosen, whether this is the post-conflict (flipped) try, and a
// full snapshot of the interpretation from immediately before the literal
// was assigned. Restoring the snapshot undoes every propagation made since
// the decision in one step.
type naiveTrailFrame struct {
	lit     Lit
	flipped bool
	snap    Interp
}

// NaiveSolver is the baseline chronological-backtracking DPLL solver: on
// every propagation round it rescans every clause looking for units. It
// favors simplicity over speed and is the textbook reference the other two
// solvers are checked against.
type NaiveSolver struct {
	cnf    CNF
	nVars  int
	interp Interp

	trail []naiveTrailFrame
	queue []Lit

	numDecisions    int64
	numPropagations int64
}

// NewNaiveSolver constructs a naive solver over cnf. initial, if non-zero
// length, is honored as a starting partial assignment at decision level 0.
func NewNaiveSolver(cnf CNF, nVars int, initial Interp) *NaiveSolver {
	interp := NewInterp(nVars + 1)
	if initial.Len() > 0 {
		copy(interp.vals, initial.vals)
	}
	return &NaiveSolver{cnf: cnf, nVars: nVars, interp: interp}
}

// getUnit returns the literal that should be forced true to keep cls
// satisfiable, or (0, false) if cls is already satisfied or has two or more
// unassigned literals. If every literal is falsified, it returns the first
// falsified literal (signaling an imminent conflict when enqueued).
func getUnit(cls Clause, interp Interp) (Lit, bool) {
	var maybeUnit Lit
	haveCandidate := false
	haveUnassigned := false
	for _, l := range cls {
		v, ok := interp.GetVal(l)
		if ok {
			if v {
				return 0, false // clause already satisfied
			}
			if !haveCandidate {
				maybeUnit = l
				haveCandidate = true
			}
			continue
		}
		if !haveUnassigned {
			haveUnassigned = true
			maybeUnit = l
			haveCandidate = true
		} else {
			return 0, false // two or more unassigned: not unit yet
		}
	}
	return maybeUnit, haveCandidate
}

func (s *NaiveSolver) queueHas(l Lit) bool {
	for _, q := range s.queue {
		if q == l {
			return true
		}
	}
	return false
}

// propagate scans every clause in insertion order and enqueues each
// returned unit literal that is not already pending. O(|F|*|Cmax|) per
// call, exactly matching the naive propagator's cost in the spec.
func (s *NaiveSolver) propagate() {
	for _, cls := range s.cnf {
		u, ok := getUnit(cls, s.interp)
		if !ok {
			continue
		}
		if !s.queueHas(u) {
			logger.WithField("lit", u).Trace("naive: enqueue implied unit")
			s.queue = append(s.queue, u)
		}
	}
}

func (s *NaiveSolver) haveConflict(l Lit) bool {
	v, ok := s.interp.GetVal(l)
	return ok && !v
}

func (s *NaiveSolver) findVar() (Lit, bool) {
	for _, cls := range s.cnf {
		for _, l := range cls {
			if _, ok := s.interp.GetVal(l); !ok {
				return l, true
			}
		}
	}
	return 0, false
}

func (s *NaiveSolver) decideVar() bool {
	lit, ok := s.findVar()
	if !ok {
		return false
	}
	logger.WithField("lit", lit).Debug("naive: decide")
	s.numDecisions++
	s.trail = append(s.trail, naiveTrailFrame{lit: lit, snap: s.interp.Clone()})
	s.interp.SetTrue(lit)
	s.propagate()
	return true
}

// backtrack pops trail frames until it finds one that hasn't yet been tried
// both ways, restores its pre-decision snapshot, and retries the opposite
// polarity. It reports false if the trail is exhausted (root-level
// conflict, UNSAT).
func (s *NaiveSolver) backtrack() bool {
	for len(s.trail) > 0 {
		top := s.trail[len(s.trail)-1]
		s.trail = s.trail[:len(s.trail)-1]
		if top.flipped {
			continue
		}
		logger.WithField("lit", top.lit.Not()).Debug("naive: backtrack, flip")
		s.interp = top.snap
		flipped := top.lit.Not()
		s.trail = append(s.trail, naiveTrailFrame{lit: flipped, flipped: true, snap: s.interp.Clone()})
		s.interp.SetTrue(flipped)
		s.queue = s.queue[:0]
		s.propagate()
		return true
	}
	logger.Debug("naive: exhausted trail, UNSAT")
	return false
}

// Solve runs the naive solver to completion.
func (s *NaiveSolver) Solve() Result {
	for _, cls := range s.cnf {
		if len(cls) == 1 {
			s.queue = append(s.queue, cls[0])
		}
	}

	for {
		if len(s.queue) == 0 {
			if !s.decideVar() {
				return Result{Sat: true, Model: s.interp}
			}
			continue
		}
		lit := s.queue[0]
		s.queue = s.queue[1:]
		if s.haveConflict(lit) {
			if !s.backtrack() {
				return Result{Reason: "root-level conflict"}
			}
			continue
		}
		s.numPropagations++
		s.interp.SetTrue(lit)
		s.propagate()
	}
}
