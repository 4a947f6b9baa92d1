package solver

import (
	"container/heap"

	"github.com/mazelab/mazesolve/grid"
)

// frontierItem is one pending expansion. g is the accumulated step cost
// from the start; f is the heap priority (g for Dijkstra, g + heuristic
// for A*). FIFO/LIFO frontiers ignore f.
type frontierItem struct {
	cell grid.Point
	g    int
	f    int
}

// frontier abstracts the per-algorithm container semantics: the only
// thing that differs between the four variants is the order items come
// back out.
type frontier interface {
	push(frontierItem)
	pop() (frontierItem, bool)
	len() int
}

// fifoFrontier pops from the front: breadth-first order.
type fifoFrontier struct {
	items []frontierItem
}

func (q *fifoFrontier) push(it frontierItem) { q.items = append(q.items, it) }

func (q *fifoFrontier) pop() (frontierItem, bool) {
	if len(q.items) == 0 {
		return frontierItem{}, false
	}
	it := q.items[0]
	q.items = q.items[1:]

	return it, true
}

func (q *fifoFrontier) len() int { return len(q.items) }

// lifoFrontier pops from the back: depth-first order.
type lifoFrontier struct {
	items []frontierItem
}

func (s *lifoFrontier) push(it frontierItem) { s.items = append(s.items, it) }

func (s *lifoFrontier) pop() (frontierItem, bool) {
	n := len(s.items)
	if n == 0 {
		return frontierItem{}, false
	}
	it := s.items[n-1]
	s.items = s.items[:n-1]

	return it, true
}

func (s *lifoFrontier) len() int { return len(s.items) }

// minFrontier pops the smallest f first. Duplicate entries for one cell
// are expected ("lazy decrease-key"): a cheaper rediscovery pushes a new
// item rather than adjusting the old one.
type minFrontier struct {
	items itemHeap
}

func (m *minFrontier) push(it frontierItem) { heap.Push(&m.items, it) }

func (m *minFrontier) pop() (frontierItem, bool) {
	if m.items.Len() == 0 {
		return frontierItem{}, false
	}

	return heap.Pop(&m.items).(frontierItem), true
}

func (m *minFrontier) len() int { return m.items.Len() }

// itemHeap is a min-heap of frontierItem ordered by f ascending.
type itemHeap []frontierItem

// Len returns the number of items in the heap.
func (h itemHeap) Len() int { return len(h) }

// Less defines the comparison: smaller f → higher priority.
func (h itemHeap) Less(i, j int) bool { return h[i].f < h[j].f }

// Swap swaps two elements in the heap.
func (h itemHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push adds a new element x onto the heap; called by heap.Push.
func (h *itemHeap) Push(x interface{}) { *h = append(*h, x.(frontierItem)) }

// Pop removes and returns the last element; called by heap.Pop.
func (h *itemHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]

	return it
}
