package puzzle

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePuzzle(t *testing.T) {
	initial, goal, err := ParsePuzzle(strings.NewReader(
		"2x3\n1 2 3 4 0 5\n3 1 2 4 5 0\n",
	))
	require.NoError(t, err)
	assert.Equal(t, State{{"1", "3", "0"}, {"2", "4", "5"}}, initial)
	assert.Equal(t, State{{"3", "2", "5"}, {"1", "4", "0"}}, goal)
}

func TestParsePuzzleErrors(t *testing.T) {
	for name, contents := range map[string]string{
		"empty":             "",
		"bad dimensions":    "2by3\n1 2 3 4 0 5\n3 1 2 4 5 0\n",
		"bad width":         "wx3\n1 2 3 4 0 5\n3 1 2 4 5 0\n",
		"zero height":       "2x0\n\n\n",
		"short state line":  "2x3\n1 2 3\n3 1 2 4 5 0\n",
		"missing goal line": "2x3\n1 2 3 4 0 5\n",
		"no blank square":   "2x3\n1 2 3 4 6 5\n3 1 2 4 5 6\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, _, err := ParsePuzzle(strings.NewReader(contents))
			assert.Error(t, err)
		})
	}
}

func TestParseStateLineRejectsWrongLabelCount(t *testing.T) {
	_, err := ParseStateLine(2, 2, []string{"1", "2", "0"})
	assert.ErrorContains(t, err, "expected 4 labels")
}

func TestParseStateLineRejectsBadDimensions(t *testing.T) {
	labels := strings.Fields("1 2 3 4 0 5")
	for name, dims := range map[string][2]int{
		// (-2)*(-3) matches the label count; must still be rejected
		"negative":    {-2, -3},
		"zero width":  {0, 6},
		"zero height": {6, 0},
		// product overflows; neither side may be allocated
		"oversized": {1 << 40, 1 << 40},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ParseStateLine(dims[0], dims[1], labels)
			assert.ErrorContains(t, err, "out of range")
		})
	}
}
