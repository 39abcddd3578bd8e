package puzzle

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustState(t *testing.T, width, height int, line string) State {
	t.Helper()
	s, err := ParseStateLine(width, height, strings.Fields(line))
	require.NoError(t, err)
	return s
}

func TestStateShape(t *testing.T) {
	s := mustState(t, 2, 3, "1 2 3 4 0 5")
	assert.Equal(t, 2, s.Width())
	assert.Equal(t, 3, s.Height())
	// row-major input reshaped into columns
	assert.Equal(t, State{{"1", "3", "0"}, {"2", "4", "5"}}, s)
}

func TestStateEqualAndCompare(t *testing.T) {
	a := mustState(t, 2, 3, "1 2 3 4 0 5")
	b := mustState(t, 2, 3, "1 2 3 4 0 5")
	c := mustState(t, 2, 3, "1 2 3 4 5 0")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.Zero(t, a.Compare(b))
	assert.NotZero(t, a.Compare(c))
	// Compare is antisymmetric so sorted collections behave
	assert.Equal(t, -c.Compare(a) < 0, a.Compare(c) < 0)
}

func TestCloneIsIndependent(t *testing.T) {
	a := mustState(t, 2, 2, "1 2 3 0")
	b := a.Clone()
	b[0][0] = "9"
	assert.Equal(t, "1", a[0][0])
}

func TestCoordsOf(t *testing.T) {
	s := mustState(t, 2, 3, "1 2 3 4 0 5")

	x, y, err := s.CoordsOf(Blank)
	require.NoError(t, err)
	assert.Equal(t, 0, x)
	assert.Equal(t, 2, y)

	_, _, err = s.CoordsOf("42")
	assert.ErrorIs(t, err, ErrTileNotFound)
}

func TestStateString(t *testing.T) {
	s := mustState(t, 2, 3, "1 2 3 4 0 5")
	assert.Equal(t, "1 2 3 4 0 5", s.String())
}
