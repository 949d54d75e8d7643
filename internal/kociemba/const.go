// Package kociemba implements Kociemba's two-phase IDA* algorithm for the
// 3x3x3 Rubik's cube: a cubie-level group representation, a facelet codec,
// nine coordinate encodings, move and pruning tables, and the phase-1/
// phase-2 search that together restore a scrambled cube to the solved
// state in a small, caller-bounded number of moves.
package kociemba

// Corner cubicle indices. A corner's home index doubles as its name.
const (
	URF = iota
	UFL
	ULB
	UBR
	DFR
	DLF
	DBL
	DRB
)

// Edge cubicle indices.
const (
	UR = iota
	UF
	UL
	UB
	DR
	DF
	DL
	DB
	FR
	FL
	BL
	BR
)

// Face/axis indices, in the order the 54-character facelet string lists
// them: U R F D L B.
const (
	axisU = iota
	axisR
	axisF
	axisD
	axisL
	axisB
)

// nMove is 6 axes times 3 quarter-turn powers (90, 180, 270 degrees).
const nMove = 18

// Coordinate ranges, per the data model.
const (
	nTwist     = 2187  // 3^7
	nFlip      = 2048  // 2^11
	nSlice     = 495   // C(12,4)
	nFRtoBR    = 11880 // C(12,4) * 4!
	nURFtoDLF  = 20160 // C(8,6) * 6!
	nURtoUL    = 1320  // C(12,3) * 3!
	nUBtoDF    = 1320  // C(12,3) * 3!
	nURtoDF    = 20160 // C(8,6) * 6!, phase 2 only
	nParity    = 2
	nSliceMul  = 24 // nFRtoBR / nSlice
	nURtoDFPh1 = 20160 * 24 // not referenced; the Merge move table itself is 336 x 336
)

// moveNames gives the face-turn token for each of the 18 moves, indexed by
// 3*axis + (power-1). Power 1 = quarter turn, 2 = half turn, 3 = inverse
// quarter turn.
var moveNames = [nMove]string{
	"U", "U2", "U'",
	"R", "R2", "R'",
	"F", "F2", "F'",
	"D", "D2", "D'",
	"L", "L2", "L'",
	"B", "B2", "B'",
}

// phase2Moves lists the 10 move indices that stay inside the subgroup
// H = <U, D, L2, R2, F2, B2>: the full U and D turns (all three powers)
// plus only the half turns of R, F, L, B.
var phase2Moves = [10]int{0, 1, 2, 4, 7, 9, 10, 11, 13, 16}

// isPhase2Move reports whether move mv belongs to phase2Moves.
func isPhase2Move(mv int) bool {
	switch mv {
	case 0, 1, 2, 4, 7, 9, 10, 11, 13, 16:
		return true
	default:
		return false
	}
}

// binomial is a precomputed table of C(n,k) for n,k in [0,12].
var binomial [13][13]int

func init() {
	for n := 0; n <= 12; n++ {
		binomial[n][0] = 1
		for k := 1; k <= n; k++ {
			binomial[n][k] = binomial[n-1][k-1]
			if k <= n-1 {
				binomial[n][k] += binomial[n-1][k]
			}
		}
	}
}

func cnk(n, k int) int {
	if k < 0 || k > n || n < 0 || n > 12 {
		return 0
	}
	return binomial[n][k]
}

var factTable = [9]int{1, 1, 2, 6, 24, 120, 720, 5040, 40320}

func factorial(n int) int {
	return factTable[n]
}
