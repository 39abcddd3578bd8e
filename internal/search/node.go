package search

import "github.com/jgardner8/NPuzzle/internal/puzzle"

// Node is a search-tree entry: a state plus the provenance needed to
// reconstruct how it was reached. Children reference parents, never the
// other way around, so the tree is rebuilt by walking backward from a goal
// node and no reference cycles can form.
type Node struct {
	State  puzzle.State
	Parent *Node
	Action puzzle.Direction
	Depth  int
}

// Actions collects the moves from the root to this node, in order.
func (n *Node) Actions() []puzzle.Direction {
	actions := make([]puzzle.Direction, 0, n.Depth)
	for ; n.Parent != nil; n = n.Parent {
		actions = append(actions, n.Action)
	}
	for i, j := 0, len(actions)-1; i < j; i, j = i+1, j-1 {
		actions[i], actions[j] = actions[j], actions[i]
	}
	return actions
}
