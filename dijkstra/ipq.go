// File: ipq.go
// Role: IndexMinPQ, an indexed binary min-heap over vertex ids with decrease-key.
// Determinism:
//   - Equal keys are ordered by vertex index, so extraction order never depends on heap layout.

package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/johnson/core"
)

// IndexMinPQ is a min-priority queue of vertex ids in [0, n) keyed by float64.
// It supports decrease-key on a queued vertex by its id, the operation
// Dijkstra needs to keep at most one entry per vertex.
//
// Each run owns a private queue; it is not safe for concurrent use.
type IndexMinPQ struct {
	h pqHeap
}

// pqHeap implements heap.Interface; pos[v] is v's slot in items or -1.
type pqHeap struct {
	items []int     // heap-ordered vertex ids
	keys  []float64 // keys[v] = priority of v while queued
	pos   []int     // pos[v] = index of v in items, -1 when absent
}

// NewIndexMinPQ returns an empty queue able to hold vertices 0..n-1.
func NewIndexMinPQ(n int) *IndexMinPQ {
	pos := make([]int, n)
	for i := range pos {
		pos[i] = -1
	}

	return &IndexMinPQ{h: pqHeap{
		items: make([]int, 0, n),
		keys:  make([]float64, n),
		pos:   pos,
	}}
}

func (q *IndexMinPQ) validate(v int) error {
	if v < 0 || v >= len(q.h.pos) {
		return fmt.Errorf("%w: pq index %d is not between 0 and %d", core.ErrVertexOutOfRange, v, len(q.h.pos)-1)
	}

	return nil
}

// Len returns the number of queued vertices.
func (q *IndexMinPQ) Len() int { return len(q.h.items) }

// Contains reports whether v is queued.
func (q *IndexMinPQ) Contains(v int) bool {
	return v >= 0 && v < len(q.h.pos) && q.h.pos[v] >= 0
}

// KeyOf returns the key of a queued vertex.
func (q *IndexMinPQ) KeyOf(v int) (float64, bool) {
	if !q.Contains(v) {
		return 0, false
	}

	return q.h.keys[v], true
}

// Insert queues v with the given key. v must not already be queued.
func (q *IndexMinPQ) Insert(v int, key float64) error {
	if err := q.validate(v); err != nil {
		return err
	}
	if q.h.pos[v] >= 0 {
		return fmt.Errorf("dijkstra: vertex %d already in priority queue", v)
	}
	q.h.keys[v] = key
	heap.Push(&q.h, v)

	return nil
}

// DecreaseKey lowers the key of queued vertex v. The new key must not exceed
// the current one.
func (q *IndexMinPQ) DecreaseKey(v int, key float64) error {
	if err := q.validate(v); err != nil {
		return err
	}
	if q.h.pos[v] < 0 {
		return fmt.Errorf("dijkstra: vertex %d not in priority queue", v)
	}
	if key > q.h.keys[v] {
		return fmt.Errorf("dijkstra: key %v for vertex %d is greater than current key %v", key, v, q.h.keys[v])
	}
	q.h.keys[v] = key
	heap.Fix(&q.h, q.h.pos[v])

	return nil
}

// DelMin removes and returns the vertex with the smallest key (ties: smallest id).
// It panics on an empty queue, like heap.Pop would.
func (q *IndexMinPQ) DelMin() (int, float64) {
	v := heap.Pop(&q.h).(int)

	return v, q.h.keys[v]
}

// Len returns the number of items in the heap.
func (h pqHeap) Len() int { return len(h.items) }

// Less orders by key, then by vertex id for determinism.
func (h pqHeap) Less(i, j int) bool {
	a, b := h.items[i], h.items[j]
	if h.keys[a] != h.keys[b] {
		return h.keys[a] < h.keys[b]
	}

	return a < b
}

// Swap swaps two elements and keeps pos in sync.
func (h pqHeap) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.pos[h.items[i]] = i
	h.pos[h.items[j]] = j
}

// Push appends a vertex id. Called by heap.Push.
func (h *pqHeap) Push(x interface{}) {
	v := x.(int)
	h.pos[v] = len(h.items)
	h.items = append(h.items, v)
}

// Pop removes the last vertex id. Called by heap.Pop.
func (h *pqHeap) Pop() interface{} {
	old := h.items
	n := len(old)
	v := old[n-1]
	h.items = old[:n-1]
	h.pos[v] = -1

	return v
}
