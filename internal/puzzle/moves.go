package puzzle

import "strings"

// Direction is one of the four ways the blank square can slide.
type Direction int

const (
	Up Direction = iota
	Left
	Down
	Right
)

// Directions lists every direction in expansion order. The order is fixed
// so searches without a secondary ordering stay deterministic.
var Directions = [4]Direction{Up, Left, Down, Right}

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Left:
		return "Left"
	case Down:
		return "Down"
	case Right:
		return "Right"
	default:
		return "?"
	}
}

// offset returns the move of the blank square as a coordinate delta.
// Y grows downward within a column.
func (d Direction) offset() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Left:
		return -1, 0
	case Down:
		return 0, 1
	default:
		return 1, 0
	}
}

// FormatActions renders a move sequence the way solutions are reported:
// every action label followed by a ";".
func FormatActions(actions []Direction) string {
	var b strings.Builder
	for _, d := range actions {
		b.WriteString(d.String())
		b.WriteString(";")
	}
	return b.String()
}

// Apply slides the blank square one cell in the given direction. It returns
// the successor state and true, or the zero state and false when the target
// cell is off the grid. Off-grid moves are normal control flow, not errors.
// The input state is never modified.
//
// Panics if the state has no blank square, which the grid invariant rules
// out for anything produced by ParseStateLine or by Apply itself.
func Apply(s State, d Direction) (State, bool) {
	x, y, err := s.CoordsOf(Blank)
	if err != nil {
		panic(err)
	}
	dx, dy := d.offset()
	x2, y2 := x+dx, y+dy
	if x2 < 0 || x2 >= s.Width() || y2 < 0 || y2 >= s.Height() {
		return nil, false
	}
	next := s.Clone()
	next[x][y], next[x2][y2] = next[x2][y2], next[x][y]
	return next, true
}
