package handlers

import (
	"fmt"
	"strings"
	"time"

	"github.com/gorilla/schema"

	"github.com/jgardner8/NPuzzle/internal/puzzle"
	"github.com/jgardner8/NPuzzle/internal/repository"
	"github.com/jgardner8/NPuzzle/internal/search"
)

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

// SolveRequestDTO is an ad-hoc solve: a complete puzzle in the query
// string, states as row-major label strings.
type SolveRequestDTO struct {
	Width    int    `schema:"width,required"`
	Height   int    `schema:"height,required"`
	Initial  string `schema:"initial,required"`
	Goal     string `schema:"goal,required"`
	Strategy string `schema:"strategy,required"`
}

func ParseSolveRequestDTO(src map[string][]string) (SolveRequestDTO, error) {
	var dto SolveRequestDTO
	err := decoder.Decode(&dto, src)
	return dto, err
}

// States parses both label strings into grids.
func (dto SolveRequestDTO) States() (initial, goal puzzle.State, err error) {
	initial, err = puzzle.ParseStateLine(
		dto.Width, dto.Height, strings.Fields(dto.Initial),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("initial state: %w", err)
	}
	goal, err = puzzle.ParseStateLine(
		dto.Width, dto.Height, strings.Fields(dto.Goal),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("goal state: %w", err)
	}
	return initial, goal, nil
}

type CreatePuzzleDTO struct {
	Name    string `schema:"name,required"`
	Width   int    `schema:"width,required"`
	Height  int    `schema:"height,required"`
	Initial string `schema:"initial,required"`
	Goal    string `schema:"goal,required"`
}

func ParseCreatePuzzleDTO(src map[string][]string) (CreatePuzzleDTO, error) {
	var dto CreatePuzzleDTO
	err := decoder.Decode(&dto, src)
	return dto, err
}

type PuzzleDTO struct {
	Name    string `json:"name"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Initial string `json:"initial"`
	Goal    string `json:"goal"`
}

func NewPuzzleDTO(p *repository.Puzzle) PuzzleDTO {
	return PuzzleDTO{
		Name:    p.Name,
		Width:   p.Width,
		Height:  p.Height,
		Initial: p.Initial,
		Goal:    p.Goal,
	}
}

type StrategyDTO struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Optimal bool   `json:"optimal"`
}

type SolutionDTO struct {
	Strategy     string   `json:"strategy"`
	StrategyName string   `json:"strategy_name"`
	Expanded     int      `json:"expanded"`
	Found        bool     `json:"found"`
	Moves        []string `json:"moves,omitempty"`
	Solution     string   `json:"solution"`
	DurationMs   float64  `json:"duration_ms"`
}

func NewSolutionDTO(
	strategy search.Strategy, result search.Result, elapsed time.Duration,
) SolutionDTO {
	moves := make([]string, 0, len(result.Actions))
	for _, a := range result.Actions {
		moves = append(moves, a.String())
	}
	return SolutionDTO{
		Strategy:     strategy.Code,
		StrategyName: strategy.Name,
		Expanded:     result.Expanded,
		Found:        result.Found,
		Moves:        moves,
		Solution:     puzzle.FormatActions(result.Actions),
		DurationMs:   float64(elapsed) / float64(time.Millisecond),
	}
}

// WatchFrameDTO is one websocket frame: progress while the search runs,
// then a final frame carrying the result.
type WatchFrameDTO struct {
	Type         string       `json:"type"` // "progress" or "result"
	Strategy     string       `json:"strategy"`
	Expanded     int          `json:"expanded"`
	Depth        int          `json:"depth"`
	FrontierSize int          `json:"frontier_size"`
	Result       *SolutionDTO `json:"result,omitempty"`
}
