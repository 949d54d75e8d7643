package kociemba

// CubieCube is the cubie-level group representation (C1): a corner
// permutation/orientation pair and an edge permutation/orientation pair.
// cp[i] (co[i]) is the home index (orientation) of the cubie currently
// sitting in corner slot i; ep/eo are the edge analogues. Orientation is
// stored mod 3 for corners, mod 2 for edges.
type CubieCube struct {
	cp [8]int
	co [8]int
	ep [12]int
	eo [12]int
}

// solvedCube is the identity element of the cube group.
var solvedCube = CubieCube{
	cp: [8]int{URF, UFL, ULB, UBR, DFR, DLF, DBL, DRB},
	ep: [12]int{UR, UF, UL, UB, DR, DF, DL, DB, FR, FL, BL, BR},
}

// The six basic move cubies, one 90-degree clockwise turn each. Composing
// a cube with moveCubes[axis] applies that turn; movetables.go derives the
// 180 and 270 degree versions by repeated composition.
var moveCubes = [6]CubieCube{
	{ // U
		cp: [8]int{UBR, URF, UFL, ULB, DFR, DLF, DBL, DRB},
		co: [8]int{0, 0, 0, 0, 0, 0, 0, 0},
		ep: [12]int{UB, UR, UF, UL, DR, DF, DL, DB, FR, FL, BL, BR},
		eo: [12]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	{ // R
		cp: [8]int{DFR, UFL, ULB, URF, DRB, DLF, DBL, UBR},
		co: [8]int{2, 0, 0, 1, 1, 0, 0, 2},
		ep: [12]int{FR, UF, UL, UB, BR, DF, DL, DB, DR, FL, BL, UR},
		eo: [12]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	{ // F
		cp: [8]int{UFL, DLF, ULB, UBR, URF, DFR, DBL, DRB},
		co: [8]int{1, 2, 0, 0, 2, 1, 0, 0},
		ep: [12]int{UR, FL, UL, UB, DR, FR, DL, DB, UF, DF, BL, BR},
		eo: [12]int{0, 1, 0, 0, 0, 1, 0, 0, 1, 1, 0, 0},
	},
	{ // D
		cp: [8]int{URF, UFL, ULB, UBR, DLF, DBL, DRB, DFR},
		co: [8]int{0, 0, 0, 0, 0, 0, 0, 0},
		ep: [12]int{UR, UF, UL, UB, DF, DL, DB, DR, FR, FL, BL, BR},
		eo: [12]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	{ // L
		cp: [8]int{URF, ULB, DBL, UBR, DFR, UFL, DLF, DRB},
		co: [8]int{0, 1, 2, 0, 0, 2, 1, 0},
		ep: [12]int{UR, UF, BL, UB, DR, DF, FL, DB, FR, UL, DL, BR},
		eo: [12]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	{ // B
		cp: [8]int{URF, UFL, UBR, DRB, DFR, DLF, ULB, DBL},
		co: [8]int{0, 0, 1, 2, 0, 0, 2, 1},
		ep: [12]int{UR, UF, UL, BR, DR, DF, DL, BL, FR, FL, UB, DB},
		eo: [12]int{0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 1, 1},
	},
}

// cornerMultiply sets c to c composed with b: (c*b).cp[i] = c.cp[b.cp[i]],
// (c*b).co[i] = (c.co[b.cp[i]] + b.co[i]) mod 3.
func (c *CubieCube) cornerMultiply(b *CubieCube) {
	var cp, co [8]int
	for i := 0; i < 8; i++ {
		cp[i] = c.cp[b.cp[i]]
		co[i] = (c.co[b.cp[i]] + b.co[i]) % 3
	}
	c.cp, c.co = cp, co
}

// edgeMultiply is cornerMultiply's edge analogue, mod 2 orientation.
func (c *CubieCube) edgeMultiply(b *CubieCube) {
	var ep, eo [12]int
	for i := 0; i < 12; i++ {
		ep[i] = c.ep[b.ep[i]]
		eo[i] = (c.eo[b.ep[i]] + b.eo[i]) % 2
	}
	c.ep, c.eo = ep, eo
}

// Multiply composes c with b in place, c := c*b (apply b's moves after c's).
func (c *CubieCube) Multiply(b *CubieCube) {
	c.cornerMultiply(b)
	c.edgeMultiply(b)
}

// Invert returns the group inverse of c.
func (c *CubieCube) Invert() *CubieCube {
	var inv CubieCube
	for i := 0; i < 8; i++ {
		inv.cp[c.cp[i]] = i
	}
	for i := 0; i < 8; i++ {
		inv.co[i] = (3 - c.co[inv.cp[i]]) % 3
	}
	for i := 0; i < 12; i++ {
		inv.ep[c.ep[i]] = i
	}
	for i := 0; i < 12; i++ {
		inv.eo[i] = c.eo[inv.ep[i]]
	}
	return &inv
}

// Verify checks the five group-membership invariants and returns the
// error-taxonomy code of the first one violated, or 0 if c is a legally
// reachable cube state.
func (c *CubieCube) Verify() int {
	var edgeCount [12]int
	for i := 0; i < 12; i++ {
		edgeCount[c.ep[i]]++
	}
	for i := 0; i < 12; i++ {
		if edgeCount[i] != 1 {
			return codeEdgeCount
		}
	}

	eoSum := 0
	for i := 0; i < 12; i++ {
		eoSum += c.eo[i]
	}
	if eoSum%2 != 0 {
		return codeEdgeFlip
	}

	var cornerCount [8]int
	for i := 0; i < 8; i++ {
		cornerCount[c.cp[i]]++
	}
	for i := 0; i < 8; i++ {
		if cornerCount[i] != 1 {
			return codeCornerCount
		}
	}

	coSum := 0
	for i := 0; i < 8; i++ {
		coSum += c.co[i]
	}
	if coSum%3 != 0 {
		return codeCornerTwist
	}

	if cornerParity(c) != edgeParity(c) {
		return codeParity
	}

	return 0
}

// cornerParity is the sign (0 even, 1 odd) of the corner permutation.
func cornerParity(c *CubieCube) int {
	s := 0
	for i := 7; i > 0; i-- {
		for j := i - 1; j >= 0; j-- {
			if c.cp[j] > c.cp[i] {
				s++
			}
		}
	}
	return s % 2
}

// edgeParity is the sign of the edge permutation.
func edgeParity(c *CubieCube) int {
	s := 0
	for i := 11; i > 0; i-- {
		for j := i - 1; j >= 0; j-- {
			if c.ep[j] > c.ep[i] {
				s++
			}
		}
	}
	return s % 2
}
