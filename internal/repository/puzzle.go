package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// Puzzle is a stored instance: dimensions plus both states as row-major
// label strings, the same shape a puzzle file uses.
type Puzzle struct {
	PuzzleId  int
	Name      string
	Width     int
	Height    int
	Initial   string
	Goal      string
	CreatedAt pgtype.Timestamptz
}

type CreatePuzzleParams struct {
	Name    string
	Width   int
	Height  int
	Initial string
	Goal    string
}

func (q *Queries) CreatePuzzle(
	ctx context.Context, params CreatePuzzleParams,
) (*Puzzle, error) {
	rows, _ := q.db.Query(
		ctx,
		`INSERT INTO puzzle (name, width, height, initial, goal)
		VALUES (@name, @width, @height, @initial, @goal)
		RETURNING *;`,
		pgx.NamedArgs{
			"name":    params.Name,
			"width":   params.Width,
			"height":  params.Height,
			"initial": params.Initial,
			"goal":    params.Goal,
		},
	)
	puzzle, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[Puzzle])
	if isUniqueViolation(err) {
		return nil, ErrDuplicateName
	}
	return puzzle, err
}

func (q *Queries) FetchPuzzle(ctx context.Context, name string) (*Puzzle, error) {
	rows, _ := q.db.Query(
		ctx, "SELECT * FROM puzzle WHERE name = $1", name,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[Puzzle])
}
