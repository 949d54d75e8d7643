package kociemba

import "time"

// phase2State is the coordinate tuple phase 2 searches over, restricted
// to the subgroup H: the slice-location coordinate has collapsed to its
// 24 within-slice arrangements (frToBR24) and only the 10 phase2Moves
// are legal.
type phase2State struct {
	urfToDLF, urToDF, frToBR24, parity int
}

func (s phase2State) solved() bool {
	return s.urfToDLF == 0 && s.urToDF == 0 && s.frToBR24 == 0 && s.parity == 0
}

func (s phase2State) apply(mt *moveTables, mv int) phase2State {
	return phase2State{
		urfToDLF: int(mt.UrfToDLF[s.urfToDLF][mv]),
		urToDF:   int(mt.UrToDF[s.urToDF][mv]),
		frToBR24: int(mt.FrToBR[s.frToBR24][mv]),
		parity:   int(mt.Parity[s.parity][mv]),
	}
}

// phase2Heuristic is the admissible lower bound on remaining phase-2
// moves, the larger of the two parity-combined coordinate heuristics.
func phase2Heuristic(pt *pruneTables, s phase2State) int {
	i1 := (s.parity*nURFtoDLF+s.urfToDLF)*24 + s.frToBR24
	i2 := (s.parity*nURtoDF+s.urToDF)*24 + s.frToBR24
	h1 := pt.UrfToDLFParity.get(i1)
	h2 := pt.UrToDFParity.get(i2)
	if h2 > h1 {
		return h2
	}
	return h1
}

// phase2Search finds a move sequence of at most maxDepth moves (counted
// among phase2Moves) taking s to solved, or nil if none exists within
// that bound. junctionAxis, if not -1, seeds the same-axis/opposite-axis
// canonicalization of the first move as if it were the axis of a
// preceding move; phase1Search passes -1 and applies the junction rule to
// the returned sequence instead. It returns an error only on a timeout.
func phase2Search(t *tables, s phase2State, maxDepth, junctionAxis int, deadline time.Time) ([]int, error) {
	if s.solved() {
		return []int{}, nil
	}
	for depth := 1; depth <= maxDepth; depth++ {
		moves := make([]int, 0, depth)
		sol, err := phase2Bounded(t, s, depth, junctionAxis, moves, deadline)
		if err != nil {
			return nil, err
		}
		if sol != nil {
			return sol, nil
		}
	}
	return nil, nil
}

func phase2Bounded(t *tables, s phase2State, remaining, prevAxis int, moves []int, deadline time.Time) ([]int, error) {
	if remaining == 0 {
		if s.solved() {
			return append([]int{}, moves...), nil
		}
		return nil, nil
	}
	if time.Now().After(deadline) {
		return nil, newSolveError(codeTimeout)
	}
	if phase2Heuristic(t.prune, s) > remaining {
		return nil, nil
	}
	for _, mv := range phase2Moves {
		if !moveAllowed(prevAxis, mv) {
			continue
		}
		next := s.apply(t.move, mv)
		sol, err := phase2Bounded(t, next, remaining-1, axisOf(mv), append(moves, mv), deadline)
		if err != nil {
			return nil, err
		}
		if sol != nil {
			return sol, nil
		}
	}
	return nil, nil
}
