package puzzle

// Heuristic estimates the cost of the cheapest move sequence from current
// to goal. Both heuristics here are admissible (never overestimate) and
// consistent (one move changes the estimate by at most one unit more than
// the move's cost), so priority searches using them never have to re-open
// closed states.
type Heuristic func(current, goal State) int

// MisplacedTiles counts tiles that sit on a different cell than they do in
// goal. The blank is not a tile and is not counted; counting it overshoots
// whenever a single move fixes both the blank and a tile.
func MisplacedTiles(current, goal State) int {
	misplaced := 0
	for x, column := range current {
		for y, tile := range column {
			if tile == Blank {
				continue
			}
			if tile != goal[x][y] {
				misplaced++
			}
		}
	}
	return misplaced
}

// ManhattanDistance sums, over every tile, the distance between the tile's
// cell in current and its cell in goal. The blank is excluded, as in
// MisplacedTiles.
func ManhattanDistance(current, goal State) int {
	where := goal.index()
	total := 0
	for x, column := range current {
		for y, tile := range column {
			if tile == Blank {
				continue
			}
			c := where[tile]
			total += abs(x-c.x) + abs(y-c.y)
		}
	}
	return total
}

type coords struct{ x, y int }

func (s State) index() map[string]coords {
	m := make(map[string]coords, s.Width()*s.Height())
	for x, column := range s {
		for y, tile := range column {
			m[tile] = coords{x, y}
		}
	}
	return m
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
