package search

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jgardner8/NPuzzle/internal/puzzle"
)

const (
	// depthBound is the initial depth reach of depth-limited search; the
	// reach grows by this much each round.
	depthBound = 3
	// backtrackTolerance caps how much worse than its parent a successor
	// may look before hill-climb refuses to queue it.
	backtrackTolerance = 2
)

// Strategy describes one frontier ordering. The registry of strategies is
// built once and never mutated, so lookups are safe from anywhere.
type Strategy struct {
	Code    string
	Name    string
	Optimal bool
	// NewFrontier builds a fresh frontier for one search; informed
	// strategies close over the goal to score nodes against it.
	NewFrontier func(goal puzzle.State) Frontier
}

var strategies = map[string]Strategy{
	"DFS": {
		Code:    "DFS",
		Name:    "depth-first",
		Optimal: false,
		NewFrontier: func(puzzle.State) Frontier {
			return &stackFrontier{}
		},
	},
	"BFS": {
		Code:    "BFS",
		Name:    "breadth-first",
		Optimal: true,
		NewFrontier: func(puzzle.State) Frontier {
			return &queueFrontier{}
		},
	},
	"GBFS": {
		Code:    "GBFS",
		Name:    "greedy best-first",
		Optimal: false,
		NewFrontier: func(goal puzzle.State) Frontier {
			return &priorityFrontier{priority: func(n *Node) int {
				return puzzle.ManhattanDistance(n.State, goal)
			}}
		},
	},
	"AS": {
		Code:    "AS",
		Name:    "A*",
		Optimal: true,
		NewFrontier: func(goal puzzle.State) Frontier {
			return &priorityFrontier{priority: func(n *Node) int {
				return n.Depth + puzzle.ManhattanDistance(n.State, goal)
			}}
		},
	},
	"DIJ": {
		Code:    "DIJ",
		Name:    "Dijkstra",
		Optimal: true,
		// A* with a zero heuristic; with unit move costs this matches
		// breadth-first up to tie-breaks.
		NewFrontier: func(puzzle.State) Frontier {
			return &priorityFrontier{priority: func(n *Node) int {
				return n.Depth
			}}
		},
	},
	"DL": {
		Code:    "DL",
		Name:    "depth-limited",
		Optimal: false,
		NewFrontier: func(puzzle.State) Frontier {
			return newDepthBoundedFrontier(depthBound)
		},
	},
	"HC": {
		Code:    "HC",
		Name:    "hill-climb",
		Optimal: false,
		NewFrontier: func(goal puzzle.State) Frontier {
			return newHillClimbFrontier(
				goal, puzzle.ManhattanDistance, backtrackTolerance,
			)
		},
	},
}

// Codes lists every strategy code in alphabetical order.
func Codes() []string {
	codes := make([]string, 0, len(strategies))
	for code := range strategies {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Strategies lists every strategy, ordered by code.
func Strategies() []Strategy {
	all := make([]Strategy, 0, len(strategies))
	for _, code := range Codes() {
		all = append(all, strategies[code])
	}
	return all
}

// ByCode resolves a case-insensitive strategy code.
func ByCode(code string) (Strategy, error) {
	s, ok := strategies[strings.ToUpper(code)]
	if !ok {
		return Strategy{}, fmt.Errorf(
			"unknown search strategy %q, available: %s",
			code, strings.Join(Codes(), ", "),
		)
	}
	return s, nil
}

// Run resolves a strategy code and searches from initial to goal with it.
func Run(code string, initial, goal puzzle.State) (Result, error) {
	strategy, err := ByCode(code)
	if err != nil {
		return Result{}, err
	}
	return Search(initial, goal, strategy.NewFrontier(goal)), nil
}
