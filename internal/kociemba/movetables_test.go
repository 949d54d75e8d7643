package kociemba

import "testing"

// TestMoveTablesMatchDirectComposition checks P3 directly: for a sample of
// coordinate values and every move, the table entry equals the coordinate
// of the cubie composed with the move cubie by hand.
func TestMoveTablesMatchDirectComposition(t *testing.T) {
	mt := newMoveTables()

	twistSamples := []int{0, 1, 17, 500, 2186}
	for _, i := range twistSamples {
		c := solvedCube
		setTwist(&c, i)
		for mv := 0; mv < nMove; mv++ {
			got := int(mt.Twist[i][mv])
			want := getTwist(applyMoveToCubie(c, mv).self())
			if got != want {
				t.Errorf("twist %d move %s: table=%d direct=%d", i, moveNames[mv], got, want)
			}
		}
	}

	flipSamples := []int{0, 3, 99, 2047}
	for _, i := range flipSamples {
		c := solvedCube
		setFlip(&c, i)
		for mv := 0; mv < nMove; mv++ {
			got := int(mt.Flip[i][mv])
			want := getFlip(applyMoveToCubie(c, mv).self())
			if got != want {
				t.Errorf("flip %d move %s: table=%d direct=%d", i, moveNames[mv], got, want)
			}
		}
	}

	urfSamples := []int{0, 7, 20159}
	for _, i := range urfSamples {
		c := solvedCube
		setURFtoDLF(&c, i)
		for mv := 0; mv < nMove; mv++ {
			got := int(mt.UrfToDLF[i][mv])
			want := getURFtoDLF(applyMoveToCubie(c, mv).self())
			if got != want {
				t.Errorf("URFtoDLF %d move %s: table=%d direct=%d", i, moveNames[mv], got, want)
			}
		}
	}
}

func (c CubieCube) self() *CubieCube { return &c }

func TestParityTableMatchesDirect(t *testing.T) {
	mt := newMoveTables()
	for p := 0; p < 2; p++ {
		for mv := 0; mv < nMove; mv++ {
			base := solvedCube
			if p == 1 {
				base.cp[0], base.cp[1] = base.cp[1], base.cp[0]
			}
			want := cornerParity(applyMoveToCubie(base, mv).self())
			got := int(mt.Parity[p][mv])
			if got != want {
				t.Errorf("parity %d move %s: table=%d direct=%d", p, moveNames[mv], got, want)
			}
		}
	}
}
