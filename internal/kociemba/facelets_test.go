package kociemba

import "testing"

const solvedFacelets = "UUUUUUUUURRRRRRRRRFFFFFFFFFDDDDDDDDDLLLLLLLLLBBBBBBBBB"

func TestParseFaceletsSolved(t *testing.T) {
	c, err := parseFacelets(solvedFacelets)
	if err != nil {
		t.Fatalf("parseFacelets(solved) error: %v", err)
	}
	if *c != solvedCube {
		t.Errorf("parseFacelets(solved) = %+v, want solved cube", *c)
	}
}

func TestFaceletStringRoundTrip(t *testing.T) {
	for mv := 0; mv < nMove; mv++ {
		c := applyMoveToCubie(solvedCube, mv)
		s := faceletString(&c)
		back, err := parseFacelets(s)
		if err != nil {
			t.Fatalf("move %s: parseFacelets(faceletString(c)) error: %v", moveNames[mv], err)
		}
		if *back != c {
			t.Errorf("move %s: facelet round trip mismatch", moveNames[mv])
		}
	}
}

func TestParseFaceletsWrongLength(t *testing.T) {
	_, err := parseFacelets(solvedFacelets[:53])
	assertBadInput(t, err)
}

func TestParseFaceletsUnknownLetter(t *testing.T) {
	bad := "X" + solvedFacelets[1:]
	_, err := parseFacelets(bad)
	assertBadInput(t, err)
}

func TestParseFaceletsWrongColorCount(t *testing.T) {
	bad := "R" + solvedFacelets[1:] // one U replaced by R: P5 scenario from spec
	_, err := parseFacelets(bad)
	assertBadInput(t, err)
}

func assertBadInput(t *testing.T, err error) {
	t.Helper()
	se, ok := err.(*SolveError)
	if !ok {
		t.Fatalf("error type = %T, want *SolveError", err)
	}
	if se.Code() != codeBadInput {
		t.Fatalf("error code = %d, want %d", se.Code(), codeBadInput)
	}
}
