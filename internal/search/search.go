package search

import (
	"slices"

	"github.com/jgardner8/NPuzzle/internal/puzzle"
)

// Result is the outcome of one search. Expanded is the number of states
// taken from the frontier and expanded (the size of the closed set);
// Actions is the move sequence from initial to goal, empty when initial
// already equals goal and nil when no solution exists.
type Result struct {
	Expanded int
	Actions  []puzzle.Direction
	Found    bool
}

// Search drives the frontier to completion. All seven strategies run this
// exact loop; they differ only in the frontier handed in.
func Search(initial, goal puzzle.State, frontier Frontier) Result {
	s := NewStepper(initial, goal, frontier)
	for {
		if snap := s.Step(); snap.Done {
			return Result{
				Expanded: snap.Expanded,
				Actions:  snap.Actions,
				Found:    snap.Found,
			}
		}
	}
}

// Snapshot is the per-expansion view of a running search, for progress
// reporting. Once Done is set the search has terminated and Found/Actions
// carry the outcome.
type Snapshot struct {
	Expanded     int
	Depth        int
	FrontierSize int
	Done         bool
	Found        bool
	Actions      []puzzle.Direction
}

// Stepper runs the generic search loop one expansion at a time so callers
// can watch progress. Search is a Stepper driven to completion; both paths
// share these loop semantics.
type Stepper struct {
	goal     puzzle.State
	frontier Frontier
	closed   closedSet
	current  *Node
	done     bool
	found    bool
	actions  []puzzle.Direction
}

func NewStepper(initial, goal puzzle.State, frontier Frontier) *Stepper {
	return &Stepper{
		goal:     goal,
		frontier: frontier,
		current:  &Node{State: initial},
	}
}

// Step expands the current node: closes its state, queues its unvisited
// successors in the fixed order up, left, down, right, and pulls the next
// node from the frontier. Reaching the goal or exhausting the frontier
// terminates the search; further calls return the final snapshot.
func (s *Stepper) Step() Snapshot {
	if s.done {
		return s.snapshot()
	}
	if s.current.State.Equal(s.goal) {
		s.done, s.found = true, true
		s.actions = s.current.Actions()
		return s.snapshot()
	}

	s.closed.Add(s.current.State)
	for _, d := range puzzle.Directions {
		successor, ok := puzzle.Apply(s.current.State, d)
		if !ok || s.closed.Contains(successor) {
			continue
		}
		s.frontier.Push(&Node{
			State:  successor,
			Parent: s.current,
			Action: d,
			Depth:  s.current.Depth + 1,
		})
	}

	next, ok := s.frontier.Pop()
	if !ok {
		s.done = true
		return s.snapshot()
	}
	s.current = next
	return s.snapshot()
}

func (s *Stepper) snapshot() Snapshot {
	snap := Snapshot{
		Expanded: s.closed.Len(),
		Depth:    s.current.Depth,
		Done:     s.done,
		Found:    s.found,
		Actions:  s.actions,
	}
	if sized, ok := s.frontier.(interface{ Len() int }); ok {
		snap.FrontierSize = sized.Len()
	}
	return snap
}

// closedSet records already-expanded states in a sorted slice, giving
// O(log n) membership tests without requiring states to be hashable.
type closedSet struct {
	states []puzzle.State
}

func (c *closedSet) Add(s puzzle.State) {
	i, found := slices.BinarySearchFunc(c.states, s, puzzle.State.Compare)
	if !found {
		c.states = slices.Insert(c.states, i, s)
	}
}

func (c *closedSet) Contains(s puzzle.State) bool {
	_, found := slices.BinarySearchFunc(c.states, s, puzzle.State.Compare)
	return found
}

func (c *closedSet) Len() int { return len(c.states) }
