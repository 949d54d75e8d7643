package kociemba

import "time"

// phase1State is the coordinate tuple phase 1 searches over, plus the
// three coordinates carried along only so a phase-1-ending state can be
// handed to phase 2 without recomputing them from the facelet string.
type phase1State struct {
	twist, flip, frToBR   int
	urfToDLF              int
	urToUL, ubToDF        int
	parity                int
}

func initialPhase1State(c *CubieCube) phase1State {
	return phase1State{
		twist:    getTwist(c),
		flip:     getFlip(c),
		frToBR:   getFRtoBR(c),
		urfToDLF: getURFtoDLF(c),
		urToUL:   getURtoUL(c),
		ubToDF:   getUBtoDF(c),
		parity:   cornerParity(c),
	}
}

// apply returns the state reached from s by move mv.
func (s phase1State) apply(mt *moveTables, mv int) phase1State {
	return phase1State{
		twist:    int(mt.Twist[s.twist][mv]),
		flip:     int(mt.Flip[s.flip][mv]),
		frToBR:   int(mt.FrToBR[s.frToBR][mv]),
		urfToDLF: int(mt.UrfToDLF[s.urfToDLF][mv]),
		urToUL:   int(mt.UrToUL[s.urToUL][mv]),
		ubToDF:   int(mt.UbToDF[s.ubToDF][mv]),
		parity:   int(mt.Parity[s.parity][mv]),
	}
}

func (s phase1State) inH() bool {
	return s.twist == 0 && s.flip == 0 && s.frToBR/nSliceMul == 0
}

// phase1Heuristic is the admissible lower bound on remaining phase-1
// moves: the larger of the twist-based and flip-based slice heuristics.
func phase1Heuristic(pt *pruneTables, s phase1State) int {
	slice := s.frToBR / nSliceMul
	h1 := pt.SliceTwist.get(s.twist*nSlice + slice)
	h2 := pt.SliceFlip.get(s.flip*nSlice + slice)
	if h2 > h1 {
		return h2
	}
	return h1
}

// axisOf reports the face axis (0..5) of move index mv.
func axisOf(mv int) int { return mv / 3 }

// moveAllowed applies the same-face and commuting-opposite-face
// canonicalization: never repeat the previous move's axis, and never
// follow a D/L/B turn immediately with its opposite U/R/F turn (the
// reverse order is allowed, which is enough to dedupe every commuting
// pair without losing reachability).
func moveAllowed(prevAxis, mv int) bool {
	if prevAxis < 0 {
		return true
	}
	axis := axisOf(mv)
	if axis == prevAxis {
		return false
	}
	if prevAxis-3 == axis {
		return false
	}
	return true
}

// searchResult carries a found solution as move indices, phase-1 length
// included, ready for phase2.go to extend or solver.go to render.
type searchResult struct {
	moves      []int
	phase1Len  int
}

// solveSearch is the top-level IDA*: iterative deepening on the phase-1
// length, handing every phase-1 ending off to phase2's own bounded
// search, per the two-phase design.
func solveSearch(c *CubieCube, maxDepth int, deadline time.Time, t *tables) (*searchResult, error) {
	start := initialPhase1State(c)

	for depth1 := 0; depth1 <= maxDepth; depth1++ {
		moves := make([]int, 0, depth1)
		result, err := phase1Search(t, start, depth1, -1, moves, maxDepth, deadline)
		if err != nil {
			return nil, err
		}
		if result != nil {
			return result, nil
		}
		if time.Now().After(deadline) {
			return nil, newSolveError(codeTimeout)
		}
	}
	return nil, newSolveError(codeDepthExceeded)
}

// phase1Search extends moves (currently at phase1State s) toward exactly
// remaining more moves, exploring every legal next move and, once the
// budget is spent, checking whether s lies in H and — if so — handing off
// to phase2Search with whatever total-depth budget remains.
func phase1Search(t *tables, s phase1State, remaining, prevAxis int, moves []int, maxDepth int, deadline time.Time) (*searchResult, error) {
	if remaining == 0 {
		if !s.inH() {
			return nil, nil
		}
		phase1Len := len(moves)
		urToDF := t.move.Merge[s.urToUL][s.ubToDF]
		p2 := phase2State{
			urfToDLF: s.urfToDLF,
			urToDF:   int(urToDF),
			frToBR24: s.frToBR % 24,
			parity:   s.parity,
		}
		maxDepth2 := maxDepth - phase1Len
		if maxDepth2 < 0 {
			return nil, nil
		}
		junctionAxis := -1
		if phase1Len > 0 {
			junctionAxis = axisOf(moves[phase1Len-1])
		}
		sol, err := phase2Search(t, p2, maxDepth2, -1, deadline)
		if err != nil {
			return nil, err
		}
		if sol == nil {
			return nil, nil
		}
		// Phase 2 runs without the junction axis; its result is rejected
		// here when its first move continues or cancels phase 1's last
		// axis, since that junction collapses into a shorter phase-1 path
		// that the search reaches on its own.
		if len(sol) > 0 && junctionAxis >= 0 && !moveAllowed(junctionAxis, sol[0]) {
			return nil, nil
		}
		total := append(append([]int{}, moves...), sol...)
		return &searchResult{moves: total, phase1Len: phase1Len}, nil
	}

	if time.Now().After(deadline) {
		return nil, newSolveError(codeTimeout)
	}
	if phase1Heuristic(t.prune, s) > remaining {
		return nil, nil
	}

	for mv := 0; mv < nMove; mv++ {
		if !moveAllowed(prevAxis, mv) {
			continue
		}
		next := s.apply(t.move, mv)
		result, err := phase1Search(t, next, remaining-1, axisOf(mv), append(moves, mv), maxDepth, deadline)
		if err != nil {
			return nil, err
		}
		if result != nil {
			return result, nil
		}
	}
	return nil, nil
}
