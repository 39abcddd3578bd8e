package search

import (
	"container/heap"

	"github.com/jgardner8/NPuzzle/internal/puzzle"
)

// Frontier holds the discovered-but-unexpanded nodes. Its removal order is
// the whole difference between the search strategies; the loop in Search
// only ever calls these two methods.
type Frontier interface {
	Push(n *Node)
	// Pop removes the next node to expand, or reports false when the
	// frontier is exhausted.
	Pop() (*Node, bool)
}

// stackFrontier expands the most recently discovered node first (LIFO).
type stackFrontier struct {
	nodes []*Node
}

func (f *stackFrontier) Push(n *Node) {
	f.nodes = append(f.nodes, n)
}

func (f *stackFrontier) Pop() (*Node, bool) {
	if len(f.nodes) == 0 {
		return nil, false
	}
	n := f.nodes[len(f.nodes)-1]
	f.nodes = f.nodes[:len(f.nodes)-1]
	return n, true
}

func (f *stackFrontier) Len() int { return len(f.nodes) }

// queueFrontier expands the oldest discovered node first (FIFO).
type queueFrontier struct {
	nodes []*Node
}

func (f *queueFrontier) Push(n *Node) {
	f.nodes = append(f.nodes, n)
}

func (f *queueFrontier) Pop() (*Node, bool) {
	if len(f.nodes) == 0 {
		return nil, false
	}
	n := f.nodes[0]
	f.nodes = f.nodes[1:]
	return n, true
}

func (f *queueFrontier) Len() int { return len(f.nodes) }

// priorityFrontier expands the node with the lowest priority first. Equal
// priorities fall back to insertion order, so nodes themselves never need
// to be comparable and repeated runs expand in the same order.
type priorityFrontier struct {
	priority func(n *Node) int
	// accept, when set, can veto an insertion (hill-climb backtrack limit).
	accept func(n *Node) bool
	items  prioritized
	seq    int
}

func (f *priorityFrontier) Push(n *Node) {
	if f.accept != nil && !f.accept(n) {
		return
	}
	f.seq++
	heap.Push(&f.items, &prioritizedNode{
		node:     n,
		priority: f.priority(n),
		seq:      f.seq,
	})
}

func (f *priorityFrontier) Pop() (*Node, bool) {
	if f.items.Len() == 0 {
		return nil, false
	}
	return heap.Pop(&f.items).(*prioritizedNode).node, true
}

func (f *priorityFrontier) Len() int { return f.items.Len() }

type prioritizedNode struct {
	node     *Node
	priority int
	seq      int
}

type prioritized []*prioritizedNode

func (q prioritized) Len() int { return len(q) }

func (q prioritized) Less(i, j int) bool {
	if q[i].priority != q[j].priority {
		return q[i].priority < q[j].priority
	}
	return q[i].seq < q[j].seq
}

func (q prioritized) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *prioritized) Push(x any) { *q = append(*q, x.(*prioritizedNode)) }

func (q *prioritized) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// depthBoundedFrontier is a stack whose reach grows in rounds. Nodes deeper
// than bound×iteration are parked on a deferred stack; once the active
// stack drains, the deferred nodes become the next round and the bound
// effectively grows. With bound=1 this degenerates to breadth-first order
// across rounds; larger bounds trade optimality for speed.
type depthBoundedFrontier struct {
	active    []*Node
	deferred  []*Node
	bound     int
	iteration int
}

func newDepthBoundedFrontier(bound int) *depthBoundedFrontier {
	return &depthBoundedFrontier{bound: bound, iteration: 1}
}

func (f *depthBoundedFrontier) Push(n *Node) {
	if n.Depth < f.bound*f.iteration {
		f.active = append(f.active, n)
	} else {
		f.deferred = append(f.deferred, n)
	}
}

func (f *depthBoundedFrontier) Pop() (*Node, bool) {
	if len(f.active) == 0 {
		f.active, f.deferred = f.deferred, nil
		f.iteration++
	}
	if len(f.active) == 0 {
		return nil, false
	}
	n := f.active[len(f.active)-1]
	f.active = f.active[:len(f.active)-1]
	return n, true
}

func (f *depthBoundedFrontier) Len() int {
	return len(f.active) + len(f.deferred)
}

// newHillClimbFrontier orders like A* but refuses successors whose priority
// exceeds their parent's by more than tolerance. A move changes Manhattan
// distance by exactly one, so a successor's priority is at most its
// parent's plus two and tolerance >= 2 rejects nothing; below that the
// search is incomplete but keeps its queue short.
func newHillClimbFrontier(goal puzzle.State, h puzzle.Heuristic, tolerance int) Frontier {
	priority := func(n *Node) int {
		return n.Depth + h(n.State, goal)
	}
	return &priorityFrontier{
		priority: priority,
		accept: func(n *Node) bool {
			if n.Parent == nil {
				return true
			}
			return priority(n) <= priority(n.Parent)+tolerance
		},
	}
}
