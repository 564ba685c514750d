package dpll

import log "github.com/sirupsen/logrus"

// noCause marks a queue item or implication record with no antecedent
// clause: either a decision literal or one of the formula's original
// top-level units.
const noCause = -1

// implRecord is the bookkeeping kept per variable for conflict analysis:
// the decision level it was assigned at, and the clause that forced it
// (none, for a decision or a top-level unit).
type implRecord struct {
	assigned bool
	level    int
	hasCause bool
	cause    int
}

func cloneTrack(t []implRecord) []implRecord {
	out := make([]implRecord, len(t))
	copy(out, t)
	return out
}

// cdclTrailFrame records one decision: the literal decided, and a full
// snapshot of both the interpretation and the implication records from
// immediately before it was asserted. Unlike the chronological solvers,
// this frame is never "flipped" in place; conflicts are resolved by
// backjumping to a learned clause's asserting literal instead.
type cdclTrailFrame struct {
	lit        Lit
	snapInterp Interp
	snapTrack  []implRecord
}

// cdclQueueItem is a pending propagation: the literal to assert, and the
// clause that forced it (noCause for decisions and top-level units).
type cdclQueueItem struct {
	lit   Lit
	cause int
}

// CDCLSolver is the conflict-driven clause-learning solver: propagation
// uses the same two-watched-literal scheme as WatchSolver, but a conflict
// triggers analysis of the implication graph instead of chronological
// flipping. Analysis derives a learned clause and a backjump level, which
// may skip over several decisions at once.
type CDCLSolver struct {
	watchSolver
	nVars  int
	interp Interp
	track  []implRecord

	trail []cdclTrailFrame
	queue []cdclQueueItem

	numDecisions    int64
	numConflicts    int64
	numPropagations int64
	numLearned      int64
}

// NewCDCLSolver constructs a CDCL solver over cnf. initial, if non-zero
// length, is honored as a starting partial assignment, recorded as
// decision-level-0 facts with no antecedent clause.
func NewCDCLSolver(cnf CNF, nVars int, initial Interp) *CDCLSolver {
	s := &CDCLSolver{
		watchSolver: newWatchSolver(nVars),
		nVars:       nVars,
		interp:      NewInterp(nVars + 1),
		track:       make([]implRecord, nVars+1),
	}
	if initial.Len() > 0 {
		for v := 0; v < initial.Len() && v <= nVars; v++ {
			a := initial.vals[v]
			if a == Unassigned {
				continue
			}
			s.interp.vals[v] = a
			s.track[v] = implRecord{assigned: true}
		}
	}
	for _, cls := range cnf {
		s.addClause(cls)
	}
	return s
}

func (s *CDCLSolver) level() int {
	return len(s.trail)
}

// setTrue assigns lit true and records the implication that caused it.
func (s *CDCLSolver) setTrue(lit Lit, cause int) {
	s.interp.SetTrue(lit)
	s.track[lit.Var()] = implRecord{
		assigned: true,
		level:    s.level(),
		hasCause: cause != noCause,
		cause:    cause,
	}
}

// checkWatchers runs bcp, for a lit that has just been asserted true,
// against every clause that was watching lit.Not(), enqueuing any new units together with the
// clause that implied them. It returns the index of a falsified clause
// on conflict, or -1 if none was found.
func (s *CDCLSolver) checkWatchers(lit Lit) int {
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
			s.queue = append(s.queue, cdclQueueItem{lit: newLit, cause: idx})
		}
	}
	return conflict
}

// process asserts lit with the given cause and propagates; it returns the
// index of a falsified clause, or -1 on success.
func (s *CDCLSolver) process(lit Lit, cause int) int {
	s.setTrue(lit, cause)
	return s.checkWatchers(lit)
}

// drainQueue asserts queued literals in order until the queue empties or
// one of them conflicts.
func (s *CDCLSolver) drainQueue() int {
	for len(s.queue) > 0 {
		item := s.queue[0]
		s.queue = s.queue[1:]
		s.numPropagations++
		if ci := s.process(item.lit, item.cause); ci != -1 {
			return ci
		}
	}
	return -1
}

func (s *CDCLSolver) findVar() (Lit, bool) {
	for _, wc := range s.clauses {
		for _, l := range wc.lits {
			if _, ok := s.interp.GetVal(l); !ok {
				return l, true
			}
		}
	}
	return 0, false
}

// decide pushes a new decision frame and asserts lit as the choice at the
// new decision level.
func (s *CDCLSolver) decide(lit Lit) int {
	logger.WithField("lit", lit).Debug("cdcl: decide")
	s.trail = append(s.trail, cdclTrailFrame{
		lit:        lit,
		snapInterp: s.interp.Clone(),
		snapTrack:  cloneTrack(s.track),
	})
	return s.process(lit, noCause)
}

// negatedOthers returns the negation of every literal in cls except skip
// (when skipValid is true). Used to build the work queue for conflict
// analysis: negating a currently-true literal yields the antecedent that
// needs to be explained.
func negatedOthers(cls Clause, skip Lit, skipValid bool) []Lit {
	out := make([]Lit, 0, len(cls))
	for _, l := range cls {
		if skipValid && l == skip {
			continue
		}
		out = append(out, l.Not())
	}
	return out
}

// traceConflict walks the implication graph backward from conflLits,
// expanding any literal assigned at the current level whose cause is a
// clause, and otherwise adding its negation to the learned clause. It
// returns the learned clause and the highest decision level among the
// literals it kept (the backjump level).
func (s *CDCLSolver) traceConflict(level int, conflLits Clause) (Clause, int) {
	seen := make([]bool, len(s.track))
	queue := negatedOthers(conflLits, 0, false)
	var learned Clause
	backLvl := 0
	for len(queue) > 0 {
		x := queue[0]
		queue = queue[1:]
		v := x.Var()
		rec := s.track[v]
		if !rec.assigned {
			continue
		}
		if seen[v] {
			continue
		}
		seen[v] = true
		if rec.hasCause && rec.level == level {
			causeLits := s.clauses[rec.cause].lits
			queue = append(queue, negatedOthers(causeLits, x, true)...)
			continue
		}
		learned = append(learned, x.Not())
		if rec.level > backLvl {
			backLvl = rec.level
		}
	}
	return learned, backLvl
}

// handleConflict runs traceConflict against conflIdx's clause and, as
// long as the derived backjump level is strictly below the level it was
// computed at, re-runs the analysis at that lower level treating the
// learned clause itself as the new conflict. It stops once a pass yields
// a backjump level equal to the level it was run at, i.e. when no further
// level reduction is possible.
func (s *CDCLSolver) handleConflict(conflIdx int) (Clause, int) {
	level := s.level()
	logger.WithField("level", level).Debug("cdcl: conflict")
	learned, backLvl := s.traceConflict(level, s.clauses[conflIdx].lits)
	for backLvl < level {
		level = backLvl
		learned, backLvl = s.traceConflict(level, learned)
	}
	logger.WithFields(log.Fields{"clause": learned, "backjump": backLvl}).Debug("cdcl: conflict analyzed")
	return learned, backLvl
}

// addLearnedClause appends a learned clause to the arena, watching
// thisLit (the literal it asserts) and the literal among the rest whose
// variable was assigned at the highest decision level above 0. If no
// other literal is above level 0, the second watch is position 0.
func (s *CDCLSolver) addLearnedClause(thisLit Lit, cls Clause) int {
	idx := len(s.clauses)
	i, j := 0, 0
	maxDec := 0
	for k, l := range cls {
		if l == thisLit {
			i = k
			continue
		}
		if rec := s.track[l.Var()]; rec.assigned && rec.level > maxDec {
			maxDec = rec.level
			j = k
		}
	}
	s.clauses = append(s.clauses, watchedClause{lits: cls, i: i, j: j})
	s.addWatch(cls[i], idx)
	s.addWatch(cls[j], idx)
	s.numLearned++
	logger.WithField("clause", cls).Debug("cdcl: learned")
	return idx
}

// backjump truncates the trail to backLvl decisions, recovers the
// pre-decision interpretation and implication records at that boundary,
// learns cls watching the newly-freed decision's negation as the
// asserting literal, and asserts it. It returns the index of a clause
// that conflicts with that assertion (or -1 if none), and false if the
// trail was exhausted (a root-level conflict: the formula is UNSAT).
func (s *CDCLSolver) backjump(learned Clause, backLvl int) (int, bool) {
	truncLen := backLvl
	if truncLen > len(s.trail) {
		truncLen = len(s.trail)
	}
	s.trail = s.trail[:truncLen]
	if len(s.trail) == 0 {
		return -1, false
	}
	frame := s.trail[len(s.trail)-1]
	s.trail = s.trail[:len(s.trail)-1]
	s.interp = frame.snapInterp
	s.track = frame.snapTrack

	lastNot := frame.lit.Not()
	newIdx := s.addLearnedClause(lastNot, learned)
	s.trail = append(s.trail, cdclTrailFrame{
		lit:        lastNot,
		snapInterp: s.interp.Clone(),
		snapTrack:  cloneTrack(s.track),
	})
	s.queue = s.queue[:0]
	return s.process(lastNot, newIdx), true
}

// Solve runs the CDCL solver to completion.
func (s *CDCLSolver) Solve() Result {
	for _, wc := range s.clauses {
		if len(wc.lits) == 1 {
			s.queue = append(s.queue, cdclQueueItem{lit: wc.lits[0], cause: noCause})
		}
	}

	for {
		conflictIdx := s.drainQueue()
		if conflictIdx == -1 {
			lit, ok := s.findVar()
			if !ok {
				return Result{Sat: true, Model: s.interp}
			}
			s.numDecisions++
			conflictIdx = s.decide(lit)
		}
		for conflictIdx != -1 {
			s.numConflicts++
			learned, backLvl := s.handleConflict(conflictIdx)
			var ok bool
			conflictIdx, ok = s.backjump(learned, backLvl)
			if !ok {
				logger.Debug("cdcl: hit root level, UNSAT")
				return Result{Reason: "root-level conflict"}
			}
		}
	}
}
