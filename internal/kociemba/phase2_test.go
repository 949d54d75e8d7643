package kociemba

import (
	"testing"
	"time"
)

// scrambledPhase2State returns the phase2State reached from solved by
// applying the given phase2Moves indices, along with the axis of the
// last move applied (or -1 if moves is empty).
func scrambledPhase2State(mt *moveTables, moves []int) (phase2State, int) {
	s := phase2State{}
	axis := -1
	for _, mv := range moves {
		s = s.apply(mt, mv)
		axis = axisOf(mv)
	}
	return s, axis
}

// TestPhase2SearchRespectsJunctionAxis checks that, whatever axis is
// passed as junctionAxis, the first move of any solution phase2Search
// returns never continues or cancels that axis — the same relation
// moveAllowed already encodes for moves within a single search.
func TestPhase2SearchRespectsJunctionAxis(t *testing.T) {
	mt := newMoveTables()
	pt := newPruneTables(mt)
	tb := &tables{move: mt, prune: pt}

	deadline := testDeadline(t)

	for _, scramble := range [][]int{
		{0, 4},     // U R2
		{1, 7},     // U2 F2
		{9, 2},     // D U'
		{16, 9, 1}, // B2 D U2
	} {
		s, _ := scrambledPhase2State(mt, scramble)
		for axis := 0; axis < 6; axis++ {
			sol, err := phase2Search(tb, s, 12, axis, deadline)
			if err != nil {
				t.Fatalf("scramble %v, junctionAxis %d: phase2Search error: %v", scramble, axis, err)
			}
			if sol == nil || len(sol) == 0 {
				continue
			}
			if !moveAllowed(axis, sol[0]) {
				t.Errorf("scramble %v, junctionAxis %d: first move %s violates the junction rule",
					scramble, axis, moveNames[sol[0]])
			}
		}
	}
}

// TestSolveNoRedundantJunction engineers scrambles whose optimal phase-1
// ending axis is likely to match phase 2's natural opening move, then
// asserts the returned solution never has two consecutive tokens (across
// any boundary, including the phase-1/phase-2 junction) that share an
// axis or belong to an opposite-face pair — per spec.md §4.6's success
// condition.
func TestSolveNoRedundantJunction(t *testing.T) {
	scrambles := [][]int{
		{0},        // U: phase 1 already ends in H, likely to tempt a U/U' junction
		{9},        // D
		{3},        // R
		{0, 4},     // U R2
		{4, 12},    // R2 L2: already inside H
		{0, 3, 9},  // U R D
		{6, 3, 15}, // F R B
	}

	for _, scramble := range scrambles {
		facelets := scrambledFacelets(scramble)
		c, err := parseFacelets(facelets)
		if err != nil {
			t.Fatalf("scramble %v: parseFacelets error: %v", scramble, err)
		}

		result, err := solveSearch(c, defaultMaxDepth, testDeadline(t), sharedTables())
		if err != nil {
			t.Fatalf("scramble %v: solveSearch error: %v", scramble, err)
		}
		if result == nil {
			t.Fatalf("scramble %v: no solution found", scramble)
		}

		for i := 0; i+1 < len(result.moves); i++ {
			a, b := axisOf(result.moves[i]), result.moves[i+1]
			if !moveAllowed(a, b) {
				t.Errorf("scramble %v: solution %v has a redundant pair at position %d/%d (phase1Len=%d)",
					scramble, tokensFor(result.moves), i, i+1, result.phase1Len)
			}
		}
	}
}

func tokensFor(moves []int) []string {
	out := make([]string, len(moves))
	for i, mv := range moves {
		out[i] = moveNames[mv]
	}
	return out
}

func testDeadline(t *testing.T) time.Time {
	t.Helper()
	return time.Now().Add(defaultTimeout)
}
