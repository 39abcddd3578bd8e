package puzzle

import (
	"fmt"
	"strings"
)

// Blank is the reserved label for the empty square.
const Blank = "0"

// ErrTileNotFound means a label is missing from a state, which can only
// happen when a malformed grid got past the parsing boundary.
var ErrTileNotFound = fmt.Errorf("tile not found in state")

// State is a W×H arrangement of tile labels, stored as columns of rows and
// indexed [x][y]. States are values: every move produces a fresh copy,
// nothing ever mutates a state in place.
type State [][]string

func (s State) Width() int { return len(s) }

func (s State) Height() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

func (s State) Clone() State {
	c := make(State, len(s))
	for x, column := range s {
		c[x] = append([]string(nil), column...)
	}
	return c
}

func (s State) Equal(o State) bool {
	return s.Compare(o) == 0
}

// Compare defines a total order over states, lexicographic across the
// column-major label sequence. The order carries no puzzle meaning; it
// exists so states can live in sorted collections for deduplication.
func (s State) Compare(o State) int {
	if d := len(s) - len(o); d != 0 {
		return d
	}
	for x, column := range s {
		if d := len(column) - len(o[x]); d != 0 {
			return d
		}
		for y, tile := range column {
			if d := strings.Compare(tile, o[x][y]); d != 0 {
				return d
			}
		}
	}
	return 0
}

// CoordsOf locates a label. A missing label violates the grid invariant
// that every label of the puzzle alphabet appears exactly once.
func (s State) CoordsOf(label string) (x, y int, err error) {
	for x, column := range s {
		for y, tile := range column {
			if tile == label {
				return x, y, nil
			}
		}
	}
	return 0, 0, fmt.Errorf("%w: %q in %s", ErrTileNotFound, label, s)
}

// String renders the labels row-major, the same shape a puzzle file uses.
func (s State) String() string {
	var b strings.Builder
	for y := range s.Height() {
		for x := range s.Width() {
			if x > 0 || y > 0 {
				b.WriteString(" ")
			}
			b.WriteString(s[x][y])
		}
	}
	return b.String()
}
