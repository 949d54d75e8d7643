package cube

import "fmt"

// colorAxisLetter maps a sticker's fixed solved-state color to the face
// letter the kociemba package expects, since a center sticker never moves
// and therefore always identifies the same axis: NewCube assigns White to
// Front, Yellow to Back, Red to Left, Orange to Right, Blue to Up and
// Green to Down, so those colors map to F, B, L, R, U, D respectively.
var colorAxisLetter = map[Color]byte{
	Blue:   'U',
	Orange: 'R',
	White:  'F',
	Green:  'D',
	Red:    'L',
	Yellow: 'B',
}

var axisLetterColor = map[byte]Color{
	'U': Blue,
	'R': Orange,
	'F': White,
	'D': Green,
	'L': Red,
	'B': Yellow,
}

// faceletFaceOrder is the order kociemba's 54-character contract lists
// faces in: U R F D L B.
var faceletFaceOrder = [6]Face{Up, Right, Front, Down, Left, Back}

// ToKociembaFacelets renders a 3x3x3 Cube as the 54-character facelet
// string kociemba.Solve expects, reading each face row-major exactly as
// Faces[face] stores it.
func (c *Cube) ToKociembaFacelets() (string, error) {
	if c.Size != 3 {
		return "", fmt.Errorf("kociemba bridge only supports 3x3x3 cubes, got %dx%dx%d", c.Size, c.Size, c.Size)
	}
	buf := make([]byte, 0, 54)
	for _, face := range faceletFaceOrder {
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				letter, ok := colorAxisLetter[c.Faces[face][row][col]]
				if !ok {
					return "", fmt.Errorf("sticker at face %s (%d,%d) has an unrecognized color", face, row, col)
				}
				buf = append(buf, letter)
			}
		}
	}
	return string(buf), nil
}

// FromKociembaFacelets builds a 3x3x3 Cube from a 54-character facelet
// string, the inverse of ToKociembaFacelets.
func FromKociembaFacelets(facelets string) (*Cube, error) {
	if len(facelets) != 54 {
		return nil, fmt.Errorf("facelet string must be 54 characters, got %d", len(facelets))
	}
	c := NewCube(3)
	i := 0
	for _, face := range faceletFaceOrder {
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				color, ok := axisLetterColor[facelets[i]]
				if !ok {
					return nil, fmt.Errorf("unrecognized facelet letter %q at position %d", facelets[i], i)
				}
				c.Faces[face][row][col] = color
				i++
			}
		}
	}
	return c, nil
}

// kociembaMoveToken maps a Move to the single-face quarter/half-turn
// token kociemba.Solve's solution string uses. Wide turns, slice moves and
// whole-cube rotations have no token in that alphabet since the Kociemba
// solver only ever returns the six basic face turns.
func kociembaMoveToken(move Move) (string, error) {
	var letter byte
	switch move.Face {
	case Up:
		letter = 'U'
	case Right:
		letter = 'R'
	case Front:
		letter = 'F'
	case Down:
		letter = 'D'
	case Left:
		letter = 'L'
	case Back:
		letter = 'B'
	}
	if move.Wide || move.Slice != NoSlice || move.Rotation != NoRotation || move.Layer != 0 {
		return "", fmt.Errorf("move %v has no equivalent in the kociemba token alphabet", move)
	}
	suffix := ""
	switch {
	case move.Double:
		suffix = "2"
	case !move.Clockwise:
		suffix = "'"
	}
	return string(letter) + suffix, nil
}

// kociembaTokenToMove is kociembaMoveToken's inverse, parsing one token
// from a kociemba solution string into a Move this package can apply.
func kociembaTokenToMove(tok string) (Move, error) {
	if tok == "" {
		return Move{}, fmt.Errorf("empty move token")
	}
	var face Face
	switch tok[0] {
	case 'U':
		face = Up
	case 'R':
		face = Right
	case 'F':
		face = Front
	case 'D':
		face = Down
	case 'L':
		face = Left
	case 'B':
		face = Back
	default:
		return Move{}, fmt.Errorf("unrecognized move token %q", tok)
	}
	move := Move{Face: face, Clockwise: true}
	if len(tok) == 2 {
		switch tok[1] {
		case '2':
			move.Double = true
		case '\'':
			move.Clockwise = false
		default:
			return Move{}, fmt.Errorf("unrecognized move token %q", tok)
		}
	} else if len(tok) > 2 {
		return Move{}, fmt.Errorf("unrecognized move token %q", tok)
	}
	return move, nil
}
