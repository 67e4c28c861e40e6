package bellmanford

// vertexQueue is the FIFO of vertices waiting to be relaxed. onQueue keeps
// track of membership so a vertex is never queued twice.
type vertexQueue struct {
	items   []int
	head    int
	onQueue []bool
}

func newVertexQueue(v int) *vertexQueue {
	return &vertexQueue{
		items:   make([]int, 0, v),
		onQueue: make([]bool, v),
	}
}

// enqueue adds v unless it is already queued.
func (q *vertexQueue) enqueue(v int) {
	if q.onQueue[v] {
		return
	}
	q.onQueue[v] = true
	q.items = append(q.items, v)
}

// dequeue removes and returns the oldest vertex. The backing array is
// compacted once the consumed prefix dominates it.
func (q *vertexQueue) dequeue() int {
	v := q.items[q.head]
	q.head++
	q.onQueue[v] = false
	if q.head > len(q.items)/2 && q.head >= 64 {
		n := copy(q.items, q.items[q.head:])
		q.items = q.items[:n]
		q.head = 0
	}

	return v
}

func (q *vertexQueue) len() int { return len(q.items) - q.head }

func (q *vertexQueue) has(v int) bool { return q.onQueue[v] }
