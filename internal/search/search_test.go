package search

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jgardner8/NPuzzle/internal/puzzle"
)

func mustState(t *testing.T, width, height int, line string) puzzle.State {
	t.Helper()
	s, err := puzzle.ParseStateLine(width, height, strings.Fields(line))
	require.NoError(t, err)
	return s
}

// replay applies the actions from initial and requires that they arrive
// exactly at goal, every step being a legal move.
func replay(t *testing.T, initial, goal puzzle.State, actions []puzzle.Direction) {
	t.Helper()
	s := initial
	for _, d := range actions {
		next, ok := puzzle.Apply(s, d)
		require.True(t, ok, "illegal move %s in solution", d)
		s = next
	}
	assert.True(t, s.Equal(goal), "replayed solution ends at %s, want %s", s, goal)
}

// A small 2x3 instance whose optimal solution takes 7 moves
// (e.g. Right Up Up Left Down Right Down).
func scenario2x3(t *testing.T) (initial, goal puzzle.State) {
	t.Helper()
	return mustState(t, 2, 3, "1 2 3 4 0 5"), mustState(t, 2, 3, "3 1 2 4 5 0")
}

func TestOptimalStrategiesFindShortestSolution(t *testing.T) {
	initial, goal := scenario2x3(t)
	for _, code := range []string{"BFS", "AS", "DIJ"} {
		t.Run(code, func(t *testing.T) {
			result, err := Run(code, initial, goal)
			require.NoError(t, err)
			require.True(t, result.Found)
			assert.Len(t, result.Actions, 7)
			assert.Positive(t, result.Expanded)
			replay(t, initial, goal, result.Actions)
		})
	}
}

func TestEveryStrategyReturnsReplayableSolutions(t *testing.T) {
	initial, goal := scenario2x3(t)
	for _, strategy := range Strategies() {
		t.Run(strategy.Code, func(t *testing.T) {
			result, err := Run(strategy.Code, initial, goal)
			require.NoError(t, err)
			if !result.Found {
				// hill-climb may give up; everything else must solve this
				assert.Equal(t, "HC", strategy.Code)
				return
			}
			assert.GreaterOrEqual(t, len(result.Actions), 7)
			replay(t, initial, goal, result.Actions)
		})
	}
}

func TestInitialEqualsGoal(t *testing.T) {
	goal := mustState(t, 2, 3, "3 1 2 4 5 0")
	for _, strategy := range Strategies() {
		t.Run(strategy.Code, func(t *testing.T) {
			result, err := Run(strategy.Code, goal, goal)
			require.NoError(t, err)
			assert.True(t, result.Found)
			assert.Empty(t, result.Actions)
			assert.Zero(t, result.Expanded)
		})
	}
}

func TestSingleMoveInstance(t *testing.T) {
	initial := mustState(t, 1, 2, "0 1")
	goal := mustState(t, 1, 2, "1 0")
	for _, strategy := range Strategies() {
		t.Run(strategy.Code, func(t *testing.T) {
			result, err := Run(strategy.Code, initial, goal)
			require.NoError(t, err)
			require.True(t, result.Found)
			assert.Len(t, result.Actions, 1)
			replay(t, initial, goal, result.Actions)
		})
	}
}

func TestUnsolvableInstanceExhaustsFrontier(t *testing.T) {
	// swapping one pair of tiles flips permutation parity: unreachable
	initial := mustState(t, 2, 2, "1 2 3 0")
	goal := mustState(t, 2, 2, "2 1 3 0")
	for _, strategy := range Strategies() {
		t.Run(strategy.Code, func(t *testing.T) {
			result, err := Run(strategy.Code, initial, goal)
			require.NoError(t, err)
			assert.False(t, result.Found)
			assert.Nil(t, result.Actions)
			assert.Positive(t, result.Expanded)
		})
	}
}

func TestDepthBoundOneMatchesBreadthFirstExpansion(t *testing.T) {
	// on an unsolvable instance both must expand the full reachable space
	initial := mustState(t, 2, 2, "1 2 3 0")
	goal := mustState(t, 2, 2, "2 1 3 0")

	bfs := Search(initial, goal, &queueFrontier{})
	dl := Search(initial, goal, newDepthBoundedFrontier(1))

	assert.False(t, bfs.Found)
	assert.False(t, dl.Found)
	assert.Equal(t, bfs.Expanded, dl.Expanded)
	// half of the 4!: the reachable orbit of a 2x2 board
	assert.Equal(t, 12, bfs.Expanded)
}

func TestRepeatedRunsAreDeterministic(t *testing.T) {
	initial, goal := scenario2x3(t)
	for _, strategy := range Strategies() {
		t.Run(strategy.Code, func(t *testing.T) {
			first, err := Run(strategy.Code, initial, goal)
			require.NoError(t, err)
			second, err := Run(strategy.Code, initial, goal)
			require.NoError(t, err)
			assert.Equal(t, first, second)
		})
	}
}

func TestByCode(t *testing.T) {
	strategy, err := ByCode("as")
	require.NoError(t, err)
	assert.Equal(t, "AS", strategy.Code)

	_, err = ByCode("IDDFS")
	require.Error(t, err)
	// valid codes listed alphabetically
	assert.ErrorContains(t, err, "AS, BFS, DFS, DIJ, DL, GBFS, HC")
}

func TestStepperReportsProgress(t *testing.T) {
	initial, goal := scenario2x3(t)
	strategy, err := ByCode("AS")
	require.NoError(t, err)

	stepper := NewStepper(initial, goal, strategy.NewFrontier(goal))
	var last Snapshot
	steps := 0
	for {
		snap := stepper.Step()
		if steps > 0 && !snap.Done {
			assert.GreaterOrEqual(t, snap.Expanded, last.Expanded)
		}
		last = snap
		steps++
		if snap.Done {
			break
		}
		require.Less(t, steps, 100_000, "stepper failed to terminate")
	}

	assert.True(t, last.Found)
	assert.Len(t, last.Actions, 7)

	// once done, further steps return the same terminal snapshot
	assert.Equal(t, last, stepper.Step())
}
