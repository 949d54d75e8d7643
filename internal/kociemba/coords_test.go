package kociemba

import "testing"

func TestSolvedCoordinates(t *testing.T) {
	c := solvedCube
	tests := []struct {
		name string
		got  int
		want int
	}{
		{"twist", getTwist(&c), 0},
		{"flip", getFlip(&c), 0},
		{"slice", getSlice(&c), 0},
		{"FRtoBR", getFRtoBR(&c), 0},
		{"URFtoDLF", getURFtoDLF(&c), 0},
		{"URtoUL", getURtoUL(&c), 0},
		{"UBtoDF", getUBtoDF(&c), 114},
		{"URtoDF", getURtoDF(&c), 0},
		{"parity", cornerParity(&c), 0},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s on solved cube = %d, want %d", tt.name, tt.got, tt.want)
		}
	}
}

func TestTwistRoundTrip(t *testing.T) {
	for i := 0; i < nTwist; i += 37 {
		c := solvedCube
		setTwist(&c, i)
		if got := getTwist(&c); got != i {
			t.Fatalf("twist round trip: set %d, got %d", i, got)
		}
	}
}

func TestFlipRoundTrip(t *testing.T) {
	for i := 0; i < nFlip; i += 41 {
		c := solvedCube
		setFlip(&c, i)
		if got := getFlip(&c); got != i {
			t.Fatalf("flip round trip: set %d, got %d", i, got)
		}
	}
}

func TestFRtoBRRoundTrip(t *testing.T) {
	for i := 0; i < nFRtoBR; i += 97 {
		c := solvedCube
		setFRtoBR(&c, i)
		if got := getFRtoBR(&c); got != i {
			t.Fatalf("FRtoBR round trip: set %d, got %d", i, got)
		}
	}
}

func TestURFtoDLFRoundTrip(t *testing.T) {
	for i := 0; i < nURFtoDLF; i += 167 {
		c := solvedCube
		setURFtoDLF(&c, i)
		if got := getURFtoDLF(&c); got != i {
			t.Fatalf("URFtoDLF round trip: set %d, got %d", i, got)
		}
	}
}

func TestURtoDFRoundTrip(t *testing.T) {
	for i := 0; i < nURtoDF; i += 167 {
		c := solvedCube
		setURtoDF(&c, i)
		if got := getURtoDF(&c); got != i {
			t.Fatalf("URtoDF round trip: set %d, got %d", i, got)
		}
	}
}

func TestURtoULRoundTrip(t *testing.T) {
	for i := 0; i < nURtoUL; i += 13 {
		c := solvedCube
		setURtoUL(&c, i)
		if got := getURtoUL(&c); got != i {
			t.Fatalf("URtoUL round trip: set %d, got %d", i, got)
		}
	}
}

func TestUBtoDFRoundTrip(t *testing.T) {
	for i := 0; i < nUBtoDF; i += 13 {
		c := solvedCube
		setUBtoDF(&c, i)
		if got := getUBtoDF(&c); got != i {
			t.Fatalf("UBtoDF round trip: set %d, got %d", i, got)
		}
	}
}

// TestMergeMatchesDirectEncoding checks that combining a cube's URtoUL and
// UBtoDF coordinates through mergeURtoULandUBtoDF reproduces the same
// cube's URtoDF coordinate, for every move applied to the solved cube.
func TestMergeMatchesDirectEncoding(t *testing.T) {
	for mv := 0; mv < nMove; mv++ {
		c := applyMoveToCubie(solvedCube, mv)
		if getSlice(&c) != 0 {
			continue // URtoUL/UBtoDF are only meaningful inside subgroup H
		}
		urToUL := getURtoUL(&c)
		ubToDF := getUBtoDF(&c)
		merged := mergeURtoULandUBtoDF(urToUL, ubToDF)
		want := getURtoDF(&c)
		if merged != want {
			t.Errorf("move %s: merged URtoDF = %d, want %d", moveNames[mv], merged, want)
		}
	}
}
