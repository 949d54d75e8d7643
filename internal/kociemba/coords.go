package kociemba

// permRank computes the factorial-number-system rank of a permutation of
// 0..len(xs)-1, in [0, len(xs)!).
func permRank(xs []int) int {
	n := len(xs)
	var used [12]bool
	rank := 0
	for i, x := range xs {
		smaller := 0
		for v := 0; v < x; v++ {
			if !used[v] {
				smaller++
			}
		}
		rank += smaller * factorial(n-1-i)
		used[x] = true
	}
	return rank
}

// permUnrank inverts permRank for n elements.
func permUnrank(rank, n int) []int {
	elems := make([]int, n)
	for i := range elems {
		elems[i] = i
	}
	out := make([]int, n)
	for i := 0; i < n; i++ {
		f := factorial(n - 1 - i)
		idx := rank / f
		rank %= f
		out[i] = elems[idx]
		elems = append(elems[:idx], elems[idx+1:]...)
	}
	return out
}

// unrankCombination inverts the standard combinatorial-number-system rank
// sum_{i=1}^{k} C(m_i, i) (m_1 < m_2 < ... < m_k) used by both the
// ascending and descending ("FRtoBR") coordinate scans below.
func unrankCombination(rank, n, k int) []bool {
	chosen := make([]bool, n)
	r := rank
	for i := k; i >= 1; i-- {
		m := i - 1
		for cnk(m+1, i) <= r {
			m++
		}
		chosen[m] = true
		r -= cnk(m, i)
	}
	return chosen
}

// --- twist: corner orientation, 0..2186 ---

func getTwist(c *CubieCube) int {
	t := 0
	for i := 0; i < 7; i++ {
		t = 3*t + c.co[i]
	}
	return t
}

func setTwist(c *CubieCube, twist int) {
	sum := 0
	for i := 6; i >= 0; i-- {
		c.co[i] = twist % 3
		sum += c.co[i]
		twist /= 3
	}
	c.co[7] = (3 - sum%3) % 3
}

// --- flip: edge orientation, 0..2047 ---

func getFlip(c *CubieCube) int {
	f := 0
	for i := 0; i < 11; i++ {
		f = 2*f + c.eo[i]
	}
	return f
}

func setFlip(c *CubieCube, flip int) {
	sum := 0
	for i := 10; i >= 0; i-- {
		c.eo[i] = flip % 2
		sum += c.eo[i]
		flip /= 2
	}
	c.eo[11] = (2 - sum%2) % 2
}

// --- slice: location of the four UD-slice edges among the 12 edge slots,
// collapsed to 0..494 (FRtoBR / 24) ---

func getSlice(c *CubieCube) int {
	return getFRtoBR(c) / nSliceMul
}

// --- FRtoBR: slice edges FR,FL,BL,BR, 0..11879. Uses a descending scan
// (Cnk(11-j, x+1)) so that the solved cube, which holds these edges in
// the highest four slots, ranks to 0. ---

func getFRtoBR(c *CubieCube) int {
	var label [4]int
	x := 0
	comb := 0
	for j := 11; j >= 0; j-- {
		if c.ep[j] >= FR {
			comb += cnk(11-j, x+1)
			label[3-x] = c.ep[j] - FR
			x++
		}
	}
	return factorial(4)*comb + permRank(label[:])
}

func setFRtoBR(c *CubieCube, idx int) {
	comb := idx / factorial(4)
	permIdx := idx % factorial(4)
	labels := permUnrank(permIdx, 4)
	chosenM := unrankCombination(comb, 12, 4) // chosen[m], m = 11-j

	// Walk j descending, matching getFRtoBR's own scan, and consume
	// labels in the same order they were produced.
	x := 0
	for j := 11; j >= 0; j-- {
		if chosenM[11-j] {
			c.ep[j] = FR + labels[3-x]
			x++
		}
	}
	other := 0
	for j := 0; j < 12; j++ {
		if !chosenM[11-j] {
			c.ep[j] = other
			other++
		}
	}
	for i := 0; i < 12; i++ {
		c.eo[i] = 0
	}
}

// --- URFtoDLF: corners URF..DLF, 0..20159. Ascending scan: the solved
// cube holds these in the lowest six slots and ranks to 0. ---

func getURFtoDLF(c *CubieCube) int {
	var label [6]int
	x := 0
	comb := 0
	for j := 0; j < 8; j++ {
		if c.cp[j] <= DLF {
			comb += cnk(j, x+1)
			label[x] = c.cp[j]
			x++
		}
	}
	return factorial(6)*comb + permRank(label[:])
}

func setURFtoDLF(c *CubieCube, idx int) {
	comb := idx / factorial(6)
	permIdx := idx % factorial(6)
	labels := permUnrank(permIdx, 6)
	chosen := unrankCombination(comb, 8, 6)
	x := 0
	other := DBL
	for j := 0; j < 8; j++ {
		if chosen[j] {
			c.cp[j] = labels[x]
			x++
		} else {
			c.cp[j] = other
			other++
		}
	}
	for i := 0; i < 8; i++ {
		c.co[i] = 0
	}
}

// --- URtoDF: edges UR..DF, 0..20159, phase 2 only. Ascending scan over
// all 12 edge slots; valid in phase 2 because UR..DF never occupy a
// slice slot there. ---

func getURtoDF(c *CubieCube) int {
	var label [6]int
	x := 0
	comb := 0
	for j := 0; j < 12; j++ {
		if c.ep[j] <= DF {
			comb += cnk(j, x+1)
			label[x] = c.ep[j]
			x++
		}
	}
	return factorial(6)*comb + permRank(label[:])
}

func setURtoDF(c *CubieCube, idx int) {
	comb := idx / factorial(6)
	permIdx := idx % factorial(6)
	labels := permUnrank(permIdx, 6)
	chosen := unrankCombination(comb, 12, 6)
	x := 0
	other := DL
	for j := 0; j < 12; j++ {
		if chosen[j] {
			c.ep[j] = labels[x]
			x++
		} else {
			c.ep[j] = other
			other++
		}
	}
	for i := 0; i < 12; i++ {
		c.eo[i] = 0
	}
}

// --- URtoUL / UBtoDF: phase-1-to-2 bridge coordinates, each an ascending
// scan over all 12 edge slots tracking three named edges. ---

func getURtoUL(c *CubieCube) int {
	var label [3]int
	x := 0
	comb := 0
	for j := 0; j < 12; j++ {
		if c.ep[j] <= UL {
			comb += cnk(j, x+1)
			label[x] = c.ep[j]
			x++
		}
	}
	return factorial(3)*comb + permRank(label[:])
}

func setURtoUL(c *CubieCube, idx int) {
	comb := idx / factorial(3)
	permIdx := idx % factorial(3)
	labels := permUnrank(permIdx, 3)
	chosen := unrankCombination(comb, 12, 3)
	x := 0
	other := UB
	for j := 0; j < 12; j++ {
		if chosen[j] {
			c.ep[j] = labels[x]
			x++
		} else {
			c.ep[j] = other
			other++
		}
	}
}

func getUBtoDF(c *CubieCube) int {
	var label [3]int
	x := 0
	comb := 0
	for j := 0; j < 12; j++ {
		if c.ep[j] >= UB && c.ep[j] <= DF {
			comb += cnk(j, x+1)
			label[x] = c.ep[j] - UB
			x++
		}
	}
	return factorial(3)*comb + permRank(label[:])
}

func setUBtoDF(c *CubieCube, idx int) {
	comb := idx / factorial(3)
	permIdx := idx % factorial(3)
	labels := permUnrank(permIdx, 3)
	chosen := unrankCombination(comb, 12, 3)
	x := 0
	others := []int{UR, UF, UL, DL, DB, FR, FL, BL, BR}
	oi := 0
	for j := 0; j < 12; j++ {
		if chosen[j] {
			c.ep[j] = UB + labels[x]
			x++
		} else {
			c.ep[j] = others[oi]
			oi++
		}
	}
}

// mergeURtoULandUBtoDF combines URtoUL and UBtoDF, both restricted to
// their sub-range below 336 (the three tracked edges confined to the
// eight non-slice slots), into a single URtoDF-space value used to seed
// phase 2's URtoDF coordinate at the phase-1/phase-2 boundary.
func mergeURtoULandUBtoDF(urToUL, ubToDF int) int {
	var c, d CubieCube
	setURtoUL(&c, urToUL)
	setUBtoDF(&d, ubToDF)

	var merged CubieCube
	for i := 0; i < 12; i++ {
		merged.ep[i] = -1
	}
	for i := 0; i < 12; i++ {
		if c.ep[i] <= UL {
			merged.ep[i] = c.ep[i]
		}
	}
	for i := 0; i < 12; i++ {
		if d.ep[i] >= UB && d.ep[i] <= DF {
			merged.ep[i] = d.ep[i]
		}
	}
	other := DL
	for i := 0; i < 12; i++ {
		if merged.ep[i] == -1 {
			merged.ep[i] = other
			other++
		}
	}
	return getURtoDF(&merged)
}
