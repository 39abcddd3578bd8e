package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
)

// SolveRecord is the outcome of one solver run against a stored puzzle.
// Only results are persisted; no frontier or closed-set state survives
// the run itself.
type SolveRecord struct {
	PuzzleName     string  `json:"puzzle_name"`
	Strategy       string  `json:"strategy"`
	Expanded       int     `json:"expanded"`
	SolutionLength *int    `json:"solution_length"`
	Found          bool    `json:"found"`
	DurationMs     float64 `json:"duration_ms"`
}

type CreateSolveRecordParams struct {
	PuzzleId       int
	Strategy       string
	Expanded       int
	SolutionLength *int
	Found          bool
	DurationMs     float64
}

func (q *Queries) CreateSolveRecord(
	ctx context.Context, params CreateSolveRecordParams,
) error {
	_, err := q.db.Exec(
		ctx,
		`INSERT INTO solve_record (
			puzzle_id, strategy, expanded, solution_length, found, duration_ms
		)
		VALUES (
			@puzzle_id, @strategy, @expanded, @solution_length, @found, @duration_ms
		);`,
		pgx.NamedArgs{
			"puzzle_id":       params.PuzzleId,
			"strategy":        params.Strategy,
			"expanded":        params.Expanded,
			"solution_length": params.SolutionLength,
			"found":           params.Found,
			"duration_ms":     params.DurationMs,
		},
	)
	return err
}

type SolveRecordFilter struct {
	PuzzleName *string
	Strategy   *string
}

func (f SolveRecordFilter) WhereClause() (string, pgx.NamedArgs) {
	clauses := make([]string, 0)
	args := pgx.NamedArgs{}
	if f.PuzzleName != nil {
		clauses = append(clauses, "name = @puzzle_name")
		args["puzzle_name"] = *f.PuzzleName
	}
	if f.Strategy != nil {
		clauses = append(clauses, "strategy = @strategy")
		args["strategy"] = *f.Strategy
	}
	return strings.Join(clauses, " AND "), args
}

// ListSolveRecords returns records best-first: fewest nodes expanded, then
// shortest solution.
func (q *Queries) ListSolveRecords(
	ctx context.Context, filter SolveRecordFilter,
) ([]SolveRecord, error) {
	query := `
	SELECT
		name puzzle_name,
		strategy,
		expanded,
		solution_length,
		found,
		duration_ms
	FROM solve_record
		JOIN puzzle USING (puzzle_id)
	`

	whereClause, args := filter.WhereClause()
	if whereClause != "" {
		query += " WHERE " + whereClause
	}

	query += " ORDER BY expanded, solution_length NULLS LAST;"

	rows, err := q.db.Query(ctx, query, args)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[SolveRecord])
}
