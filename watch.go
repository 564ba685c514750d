package dpll

// propResult is the discriminated result of testing a watched clause
// against a newly asserted literal. The driver matches on it; there are no
// callbacks.
type propResult int

const (
	propTrue propResult = iota
	propConflict
	propUnit
	propNewWatch
)

// watchedClause pairs a clause with its two watch positions (indices into
// its own literal slice). Outside of propagation, the literals at these
// two positions are either unassigned or satisfied. A unit clause (length
// 1) uses i = j = 0.
type watchedClause struct {
	lits Clause
	i, j int
}

// bcp is invoked when l has just been asserted true and therefore one of
// the clause's two watches is l.Not(). It returns the propagation result
// and, for propNewWatch, the literal that replaced l.Not() as a watch.
func (wc *watchedClause) bcp(interp Interp, l Lit) (propResult, Lit) {
	notL := l.Not()
	watchIsI := wc.lits[wc.i] == notL
	var otherPos int
	if watchIsI {
		otherPos = wc.j
	} else {
		otherPos = wc.i
	}
	other := wc.lits[otherPos]
	if v, ok := interp.GetVal(other); ok && v {
		return propTrue, 0
	}
	for k := range wc.lits {
		if k == wc.i || k == wc.j {
			continue
		}
		cand := wc.lits[k]
		if v, ok := interp.GetVal(cand); !ok || v {
			if watchIsI {
				wc.i = k
			} else {
				wc.j = k
			}
			return propNewWatch, cand
		}
	}
	if v, ok := interp.GetVal(other); ok && !v {
		return propConflict, 0
	}
	return propUnit, other
}

// watchSolver implements the shared two-watched-literal bookkeeping used
// by both the chronological WatchSolver and the CDCL CDCLSolver: an
// append-only clause arena and a watch list mapping each literal to the
// indices of the clauses that currently watch that literal.
type watchSolver struct {
	clauses []watchedClause
	watches [][]int // indexed by literal code
}

func newWatchSolver(nVars int) watchSolver {
	return watchSolver{watches: make([][]int, 2*(nVars+1))}
}

// addWatch registers clause idx as watching lit: idx is added to lit's
// list when one of the clause's two watch positions holds lit. The list is
// re-examined when lit becomes false, i.e. when lit.Not() is asserted.
func (ws *watchSolver) addWatch(lit Lit, idx int) {
	ws.watches[lit] = append(ws.watches[lit], idx)
}

// addClause appends cls to the arena, watching its first two literals (or
// its only literal twice, for a unit clause), and returns its index.
func (ws *watchSolver) addClause(cls Clause) int {
	idx := len(ws.clauses)
	if len(cls) > 1 {
		ws.clauses = append(ws.clauses, watchedClause{lits: cls, i: 0, j: 1})
		ws.addWatch(cls[0], idx)
		ws.addWatch(cls[1], idx)
	} else {
		ws.clauses = append(ws.clauses, watchedClause{lits: cls, i: 0, j: 0})
		ws.addWatch(cls[0], idx)
	}
	return idx
}

// WatchSolver is the watched-literal DPLL solver: same chronological
// backtracking discipline as NaiveSolver, but propagation only visits
// clauses that watch the literal that just became true.
type WatchSolver struct {
	watchSolver
	nVars  int
	interp Interp

	trail []naiveTrailFrame
	queue []Lit

	numDecisions    int64
	numPropagations int64
}

// NewWatchSolver constructs a watched-literal solver over cnf.
func NewWatchSolver(cnf CNF, nVars int, initial Interp) *WatchSolver {
	s := &WatchSolver{
		watchSolver: newWatchSolver(nVars),
		nVars:       nVars,
		interp:      NewInterp(nVars + 1),
	}
	if initial.Len() > 0 {
		copy(s.interp.vals, initial.vals)
	}
	for _, cls := range cnf {
		s.addClause(cls)
	}
	return s
}

func (s *WatchSolver) findVar() (Lit, bool) {
	for _, wc := range s.clauses {
		for _, l := range wc.lits {
			if _, ok := s.interp.GetVal(l); !ok {
				return l, true
			}
		}
	}
	return 0, false
}

// checkWatchers runs bcp, for a lit that has just been asserted true,
// against every clause that was watching lit.Not() (the literal lit has
// just falsified), compacting
// that watch list in place. It returns the index of a falsified clause on
// conflict, or -1 if none was found. Watch-list processing continues
// after a conflict is seen (to preserve watch-list integrity) but no
// further units are enqueued.
func (s *WatchSolver) checkWatchers(lit Lit) int {
	notL := lit.Not()
	watchers := s.watches[notL]
	s.watches[notL] = nil
	conflict := -1
	for _, idx := range watchers {
		if conflict != -1 {
			s.watches[notL] = append(s.watches[notL], idx)
			continue
		}
		res, newLit := s.clauses[idx].bcp(s.interp, lit)
		switch res {
		case propNewWatch:
			s.addWatch(newLit, idx)
		case propTrue:
			s.watches[notL] = append(s.watches[notL], idx)
		case propConflict:
			s.watches[notL] = append(s.watches[notL], idx)
			conflict = idx
		case propUnit:
			s.watches[notL] = append(s.watches[notL], idx)
			s.queue = append(s.queue, newLit)
		}
	}
	return conflict
}

// process asserts lit true and propagates; it returns false on conflict.
func (s *WatchSolver) process(lit Lit) bool {
	s.interp.SetTrue(lit)
	return s.checkWatchers(lit) == -1
}

func (s *WatchSolver) processQueue() bool {
	for len(s.queue) > 0 {
		lit := s.queue[0]
		s.queue = s.queue[1:]
		s.numPropagations++
		if !s.process(lit) {
			return false
		}
	}
	return true
}

// backtrack pops trail frames until it finds one that hasn't been tried
// both ways, restores its snapshot, and retries the opposite polarity. If
// asserting the flipped literal conflicts immediately, it keeps popping
// rather than reporting success; it reports false once the trail is
// exhausted (root-level conflict, UNSAT).
func (s *WatchSolver) backtrack() bool {
	for len(s.trail) > 0 {
		top := s.trail[len(s.trail)-1]
		s.trail = s.trail[:len(s.trail)-1]
		if top.flipped {
			continue
		}
		s.interp = top.snap
		flipped := top.lit.Not()
		s.trail = append(s.trail, naiveTrailFrame{lit: flipped, flipped: true, snap: s.interp.Clone()})
		s.queue = s.queue[:0]
		if s.process(flipped) {
			return true
		}
	}
	logger.Debug("watch: exhausted trail, UNSAT")
	return false
}

// Solve runs the watched-literal solver to completion.
func (s *WatchSolver) Solve() Result {
	for _, wc := range s.clauses {
		if len(wc.lits) == 1 {
			s.queue = append(s.queue, wc.lits[0])
		}
	}

	for {
		if !s.processQueue() {
			if !s.backtrack() {
				return Result{Reason: "root-level conflict"}
			}
			continue
		}
		lit, ok := s.findVar()
		if !ok {
			return Result{Sat: true, Model: s.interp}
		}
		s.numDecisions++
		s.trail = append(s.trail, naiveTrailFrame{lit: lit, snap: s.interp.Clone()})
		if !s.process(lit) {
			if !s.backtrack() {
				return Result{Reason: "root-level conflict"}
			}
		}
	}
}
