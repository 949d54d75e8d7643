package kociemba

import (
	"math/rand"
	"strings"
	"testing"
	"time"
)

const defaultMaxDepth = 24
const defaultTimeout = 10 * time.Second

func scrambledFacelets(moves []int) string {
	c := solvedCube
	for _, mv := range moves {
		c = applyMoveToCubie(c, mv)
	}
	return faceletString(&c)
}

// replay applies a solution string (as returned by Solve) to facelets and
// reports whether the result is the solved state, for P1 (soundness).
func replay(facelets, solution string) bool {
	c, err := parseFacelets(facelets)
	if err != nil {
		return false
	}
	if solution != "" {
		for _, tok := range strings.Fields(solution) {
			if tok == phaseSeparator {
				continue
			}
			mv, ok := parseMoveToken(tok)
			if !ok {
				return false
			}
			*c = applyMoveToCubie(*c, mv)
		}
	}
	return *c == solvedCube
}

func parseMoveToken(tok string) (int, bool) {
	for i, name := range moveNames {
		if name == tok {
			return i, true
		}
	}
	return 0, false
}

func TestSolveSolvedInput(t *testing.T) {
	sol, err := Solve(solvedFacelets, defaultMaxDepth, defaultTimeout, Options{})
	if err != nil {
		t.Fatalf("Solve(solved) error: %v", err)
	}
	if sol != "" {
		t.Errorf("Solve(solved) = %q, want empty string", sol)
	}
}

func TestSolveSingleMove(t *testing.T) {
	facelets := scrambledFacelets([]int{3}) // R
	sol, err := Solve(facelets, defaultMaxDepth, defaultTimeout, Options{})
	if err != nil {
		t.Fatalf("Solve(R) error: %v", err)
	}
	tokens := strings.Fields(sol)
	if len(tokens) != 1 {
		t.Fatalf("Solve(R) = %q, want a single-move solution", sol)
	}
	if !replay(facelets, sol) {
		t.Fatalf("Solve(R) = %q does not restore the solved state", sol)
	}
}

func TestSolveTwoMoveCommuting(t *testing.T) {
	facelets := scrambledFacelets([]int{0, 9}) // U D
	sol, err := Solve(facelets, defaultMaxDepth, defaultTimeout, Options{})
	if err != nil {
		t.Fatalf("Solve(U D) error: %v", err)
	}
	if len(strings.Fields(sol)) > 2 {
		t.Errorf("Solve(U D) = %q, want length <= 2", sol)
	}
	if !replay(facelets, sol) {
		t.Fatalf("Solve(U D) = %q does not restore the solved state", sol)
	}
}

func TestSolveEighteenMoveScramble(t *testing.T) {
	scramble := []int{0, 5, 8, 11, 14, 2, 6, 9, 12, 15, 1, 4, 7, 10, 13, 16, 3, 17}
	facelets := scrambledFacelets(scramble)
	sol, err := Solve(facelets, defaultMaxDepth, 30*time.Second, Options{})
	if err != nil {
		t.Fatalf("Solve(18-move scramble) error: %v", err)
	}
	if n := len(strings.Fields(sol)); n > 24 {
		t.Errorf("Solve(18-move scramble) length = %d, want <= 24", n)
	}
	if !replay(facelets, sol) {
		t.Fatalf("Solve(18-move scramble) = %q does not restore the solved state", sol)
	}
}

func TestSolveBadColorCount(t *testing.T) {
	bad := "R" + solvedFacelets[1:]
	_, err := Solve(bad, defaultMaxDepth, defaultTimeout, Options{})
	se, ok := err.(*SolveError)
	if !ok || se.Code() != codeBadInput {
		t.Fatalf("Solve(bad color count) error = %v, want Error %d", err, codeBadInput)
	}
}

func TestSolveCornerTwistViolation(t *testing.T) {
	c := solvedCube
	c.co[URF] = 1 // twist URF clockwise without compensating, an illegal state
	facelets := faceletString(&c)
	_, err := Solve(facelets, defaultMaxDepth, defaultTimeout, Options{})
	se, ok := err.(*SolveError)
	if !ok || se.Code() != codeCornerTwist {
		t.Fatalf("Solve(twisted corner) error = %v, want Error %d", err, codeCornerTwist)
	}
}

func TestSolveSeparatorOption(t *testing.T) {
	facelets := scrambledFacelets([]int{3, 6}) // R F: usually needs both phases
	sol, err := Solve(facelets, defaultMaxDepth, defaultTimeout, Options{Separator: true})
	if err != nil {
		t.Fatalf("Solve with separator error: %v", err)
	}
	if sol != "" && !strings.Contains(sol, phaseSeparator) && !replay(facelets, strings.ReplaceAll(sol, phaseSeparator+" ", "")) {
		t.Errorf("Solve with separator produced %q, replay mismatch", sol)
	}
}

func TestSolveDepthExceeded(t *testing.T) {
	scramble := []int{0, 5, 8, 11, 14, 2, 6, 9, 12, 15, 1, 4, 7, 10, 13, 16, 3, 17}
	facelets := scrambledFacelets(scramble)
	_, err := Solve(facelets, 1, defaultTimeout, Options{})
	se, ok := err.(*SolveError)
	if !ok || se.Code() != codeDepthExceeded {
		t.Fatalf("Solve with maxDepth=1 on a deep scramble error = %v, want Error %d", err, codeDepthExceeded)
	}
}

func TestSolveTimeout(t *testing.T) {
	scramble := []int{0, 5, 8, 11, 14, 2, 6, 9, 12, 15, 1, 4, 7, 10, 13, 16, 3, 17}
	facelets := scrambledFacelets(scramble)
	_, err := Solve(facelets, defaultMaxDepth, 0, Options{})
	se, ok := err.(*SolveError)
	if !ok || se.Code() != codeTimeout {
		t.Fatalf("Solve with zero timeout error = %v, want Error %d", err, codeTimeout)
	}
}

// randomScrambledFacelets returns the facelets of a cube reached by n
// random legal moves, seeded for reproducibility (a standalone test
// helper supplementing spec.md's property tests; not part of the public
// API, mirroring the original engine's tools.randomCube but scoped to
// this package's own tests).
func randomScrambledFacelets(r *rand.Rand, n int) string {
	c := solvedCube
	prevAxis := -1
	for i := 0; i < n; i++ {
		var mv int
		for {
			mv = r.Intn(nMove)
			if moveAllowed(prevAxis, mv) {
				break
			}
		}
		c = applyMoveToCubie(c, mv)
		prevAxis = axisOf(mv)
	}
	return faceletString(&c)
}

// TestSolvePropertySample checks P1 and P2 for a handful of deterministic
// random scrambles: every solution replays to solved, within maxDepth.
func TestSolvePropertySample(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 8; i++ {
		facelets := randomScrambledFacelets(r, 8)
		sol, err := Solve(facelets, defaultMaxDepth, defaultTimeout, Options{})
		if err != nil {
			t.Fatalf("sample %d: Solve error: %v", i, err)
		}
		if n := len(strings.Fields(sol)); n > defaultMaxDepth {
			t.Errorf("sample %d: solution length %d exceeds maxDepth %d", i, n, defaultMaxDepth)
		}
		if !replay(facelets, sol) {
			t.Errorf("sample %d: solution %q does not restore the solved state", i, sol)
		}
	}
}
