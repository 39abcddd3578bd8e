package puzzle

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParsePuzzle reads a puzzle definition:
//
//	2x3          width x height
//	1 2 3 4 0 5  initial state, row-major
//	3 1 2 4 5 0  goal state, row-major
//
// and returns the initial and goal states reshaped into column-major grids.
func ParsePuzzle(r io.Reader) (initial, goal State, err error) {
	scanner := bufio.NewScanner(r)

	width, height, err := parseDimensions(nextLine(scanner))
	if err != nil {
		return nil, nil, err
	}
	initial, err = ParseStateLine(width, height, strings.Fields(nextLine(scanner)))
	if err != nil {
		return nil, nil, fmt.Errorf("initial state: %w", err)
	}
	goal, err = ParseStateLine(width, height, strings.Fields(nextLine(scanner)))
	if err != nil {
		return nil, nil, fmt.Errorf("goal state: %w", err)
	}
	return initial, goal, nil
}

// ParseStateLine reshapes row-major labels into a column-major state.
// "1 2 3 4 0 5" on a 2x3 board becomes columns [[1 3 0] [2 4 5]].
func ParseStateLine(width, height int, labels []string) (State, error) {
	// callers feed in unvalidated dimensions, e.g. from the query string
	if width < 1 || height < 1 || width > len(labels) || height > len(labels) {
		return nil, fmt.Errorf(
			"board dimensions %dx%d out of range for %d labels",
			width, height, len(labels),
		)
	}
	if len(labels) != width*height {
		return nil, fmt.Errorf(
			"expected %d labels for a %dx%d board, got %d",
			width*height, width, height, len(labels),
		)
	}
	s := make(State, width)
	for x := range width {
		s[x] = make([]string, height)
		for y := range height {
			s[x][y] = labels[x+y*width]
		}
	}
	if _, _, err := s.CoordsOf(Blank); err != nil {
		return nil, fmt.Errorf("state has no blank square (%q)", Blank)
	}
	return s, nil
}

func parseDimensions(line string) (width, height int, err error) {
	parts := strings.Split(strings.TrimSpace(line), "x")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("malformed dimensions %q, expected WxH", line)
	}
	if width, err = strconv.Atoi(parts[0]); err != nil {
		return 0, 0, fmt.Errorf("malformed width in %q: %w", line, err)
	}
	if height, err = strconv.Atoi(parts[1]); err != nil {
		return 0, 0, fmt.Errorf("malformed height in %q: %w", line, err)
	}
	if width < 1 || height < 1 {
		return 0, 0, fmt.Errorf("board dimensions %dx%d out of range", width, height)
	}
	return width, height, nil
}

func nextLine(scanner *bufio.Scanner) string {
	if scanner.Scan() {
		return scanner.Text()
	}
	return ""
}
