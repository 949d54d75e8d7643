package kociemba

import "strings"

// Facelet colors, indexed identically to the face axes: U R F D L B. The
// 54-character facelet string lists 9 facelets per face in that order,
// each face in row-major reading order.
const (
	colorU = iota
	colorR
	colorF
	colorD
	colorL
	colorB
)

var faceLetters = [6]byte{'U', 'R', 'F', 'D', 'L', 'B'}

func letterToColor(b byte) (int, bool) {
	switch b {
	case 'U':
		return colorU, true
	case 'R':
		return colorR, true
	case 'F':
		return colorF, true
	case 'D':
		return colorD, true
	case 'L':
		return colorL, true
	case 'B':
		return colorB, true
	default:
		return 0, false
	}
}

// cornerFacelet[c] gives the three facelet indices (0-53, U R F D L B
// blocks of nine) that belong to corner cubicle c, listed so that index 0
// is the facelet facing the cubicle's U/D axis.
var cornerFacelet = [8][3]int{
	{8, 9, 20},   // URF
	{6, 18, 38},  // UFL
	{0, 36, 47},  // ULB
	{2, 45, 11},  // UBR
	{29, 26, 15}, // DFR
	{27, 44, 24}, // DLF
	{33, 53, 42}, // DBL
	{35, 17, 51}, // DRB
}

// cornerColor[c] gives the home colors of corner c's three stickers, in
// the same U/D-first order as cornerFacelet.
var cornerColor = [8][3]int{
	{colorU, colorR, colorF}, // URF
	{colorU, colorF, colorL}, // UFL
	{colorU, colorL, colorB}, // ULB
	{colorU, colorB, colorR}, // UBR
	{colorD, colorF, colorR}, // DFR
	{colorD, colorL, colorF}, // DLF
	{colorD, colorB, colorL}, // DBL
	{colorD, colorR, colorB}, // DRB
}

// edgeFacelet[e] gives the two facelet indices belonging to edge cubicle
// e, index 0 facing the cubicle's U/D or F/B axis.
var edgeFacelet = [12][2]int{
	{5, 10},  // UR
	{7, 19},  // UF
	{3, 37},  // UL
	{1, 46},  // UB
	{32, 16}, // DR
	{28, 25}, // DF
	{30, 43}, // DL
	{34, 52}, // DB
	{23, 12}, // FR
	{21, 41}, // FL
	{50, 39}, // BL
	{48, 14}, // BR
}

var edgeColor = [12][2]int{
	{colorU, colorR}, // UR
	{colorU, colorF}, // UF
	{colorU, colorL}, // UL
	{colorU, colorB}, // UB
	{colorD, colorR}, // DR
	{colorD, colorF}, // DF
	{colorD, colorL}, // DL
	{colorD, colorB}, // DB
	{colorF, colorR}, // FR
	{colorF, colorL}, // FL
	{colorB, colorL}, // BL
	{colorB, colorR}, // BR
}

// parseFacelets decodes a 54-character facelet string (U-block, R-block,
// F-block, D-block, L-block, B-block, nine characters each, row-major)
// into a CubieCube. It returns a *SolveError with codeBadInput for any
// malformed input: wrong length, unknown letters, or a color count other
// than nine of each.
func parseFacelets(s string) (*CubieCube, error) {
	if len(s) != 54 {
		return nil, newSolveError(codeBadInput)
	}
	s = strings.ToUpper(s)

	var facelet [54]int
	var count [6]int
	for i := 0; i < 54; i++ {
		col, ok := letterToColor(s[i])
		if !ok {
			return nil, newSolveError(codeBadInput)
		}
		facelet[i] = col
		count[col]++
	}
	for _, n := range count {
		if n != 9 {
			return nil, newSolveError(codeBadInput)
		}
	}
	// The center of each face must match the block it anchors; this is
	// implied by the color-count check above combined with the standard
	// convention that centers are fixed, but a malformed permutation of
	// otherwise-valid colors (e.g. two swapped center letters) is caught
	// below when no consistent cubie assignment can be found.

	var c CubieCube
	for i := 0; i < 8; i++ {
		var ori int
		for ori = 0; ori < 3; ori++ {
			col := facelet[cornerFacelet[i][ori]]
			if col == colorU || col == colorD {
				break
			}
		}
		if ori == 3 {
			return nil, newSolveError(codeBadInput)
		}
		col1 := facelet[cornerFacelet[i][(ori+1)%3]]
		col2 := facelet[cornerFacelet[i][(ori+2)%3]]
		found := false
		for j := 0; j < 8; j++ {
			if col1 == cornerColor[j][1] && col2 == cornerColor[j][2] {
				c.cp[i] = j
				c.co[i] = ori
				found = true
				break
			}
		}
		if !found {
			return nil, newSolveError(codeBadInput)
		}
	}

	for i := 0; i < 12; i++ {
		a, b := facelet[edgeFacelet[i][0]], facelet[edgeFacelet[i][1]]
		found := false
		for j := 0; j < 12 && !found; j++ {
			if a == edgeColor[j][0] && b == edgeColor[j][1] {
				c.ep[i], c.eo[i] = j, 0
				found = true
			} else if a == edgeColor[j][1] && b == edgeColor[j][0] {
				c.ep[i], c.eo[i] = j, 1
				found = true
			}
		}
		if !found {
			return nil, newSolveError(codeBadInput)
		}
	}

	return &c, nil
}

// faceletString is parseFacelets's inverse: it renders a CubieCube as the
// 54-character string the external interface exchanges.
func faceletString(c *CubieCube) string {
	var facelet [54]byte
	for f := 0; f < 6; f++ {
		facelet[9*f+4] = faceLetters[f]
	}
	for i := 0; i < 8; i++ {
		j, ori := c.cp[i], c.co[i]
		for k := 0; k < 3; k++ {
			facelet[cornerFacelet[i][(k+ori)%3]] = faceLetters[cornerColor[j][k]]
		}
	}
	for i := 0; i < 12; i++ {
		j, ori := c.ep[i], c.eo[i]
		for k := 0; k < 2; k++ {
			facelet[edgeFacelet[i][(k+ori)%2]] = faceLetters[edgeColor[j][k]]
		}
	}
	return string(facelet[:])
}
