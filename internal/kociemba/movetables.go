package kociemba

// moveTables holds, for every coordinate the search touches, an N x 18
// table mapping (coordinate value, move index) to the resulting
// coordinate value. Built once by newMoveTables and shared read-only by
// every search goroutine thereafter (see phase1.go/phase2.go and the
// concurrency note in the package doc). Fields are exported so cache.go
// can gob-encode the table set; the type itself stays unexported.
type moveTables struct {
	Twist    [nTwist][nMove]int16
	Flip     [nFlip][nMove]int16
	FrToBR   [nFRtoBR][nMove]int16
	UrfToDLF [nURFtoDLF][nMove]int16
	UrToUL   [nURtoUL][nMove]int16
	UbToDF   [nUBtoDF][nMove]int16
	UrToDF   [nURtoDF][nMove]int16 // phase 2 only; entries for non-H moves are left 0 and unused
	Merge    [336][336]int16
	Parity   [2][nMove]int8
}

// applyAllMoves calls emit once for every (axis, power) combination
// reached from base, power 0..2 meaning 90/180/270 degrees.
func applyAllMoves(base *CubieCube, emit func(axis, power int, c *CubieCube)) {
	for axis := 0; axis < 6; axis++ {
		c := *base
		for power := 0; power < 3; power++ {
			c.Multiply(&moveCubes[axis])
			emit(axis, power, &c)
		}
	}
}

func newMoveTables() *moveTables {
	mt := &moveTables{}

	var c CubieCube
	for i := 0; i < nTwist; i++ {
		c = solvedCube
		setTwist(&c, i)
		applyAllMoves(&c, func(axis, power int, r *CubieCube) {
			mt.Twist[i][3*axis+power] = int16(getTwist(r))
		})
	}
	for i := 0; i < nFlip; i++ {
		c = solvedCube
		setFlip(&c, i)
		applyAllMoves(&c, func(axis, power int, r *CubieCube) {
			mt.Flip[i][3*axis+power] = int16(getFlip(r))
		})
	}
	for i := 0; i < nFRtoBR; i++ {
		c = solvedCube
		setFRtoBR(&c, i)
		applyAllMoves(&c, func(axis, power int, r *CubieCube) {
			mt.FrToBR[i][3*axis+power] = int16(getFRtoBR(r))
		})
	}
	for i := 0; i < nURFtoDLF; i++ {
		c = solvedCube
		setURFtoDLF(&c, i)
		applyAllMoves(&c, func(axis, power int, r *CubieCube) {
			mt.UrfToDLF[i][3*axis+power] = int16(getURFtoDLF(r))
		})
	}
	for i := 0; i < nURtoUL; i++ {
		c = solvedCube
		setURtoUL(&c, i)
		applyAllMoves(&c, func(axis, power int, r *CubieCube) {
			mt.UrToUL[i][3*axis+power] = int16(getURtoUL(r))
		})
	}
	for i := 0; i < nUBtoDF; i++ {
		c = solvedCube
		setUBtoDF(&c, i)
		applyAllMoves(&c, func(axis, power int, r *CubieCube) {
			mt.UbToDF[i][3*axis+power] = int16(getUBtoDF(r))
		})
	}
	for i := 0; i < nURtoDF; i++ {
		c = solvedCube
		setURtoDF(&c, i)
		applyAllMoves(&c, func(axis, power int, r *CubieCube) {
			mv := 3*axis + power
			if isPhase2Move(mv) {
				mt.UrToDF[i][mv] = int16(getURtoDF(r))
			}
		})
	}

	for a := 0; a < 336; a++ {
		for b := 0; b < 336; b++ {
			mt.Merge[a][b] = int16(mergeURtoULandUBtoDF(a, b))
		}
	}

	mt.Parity[0] = [nMove]int8{1, 0, 1, 1, 0, 1, 1, 0, 1, 1, 0, 1, 1, 0, 1, 1, 0, 1}
	mt.Parity[1] = [nMove]int8{0, 1, 0, 0, 1, 0, 0, 1, 0, 0, 1, 0, 0, 1, 0, 0, 1, 0}

	return mt
}
