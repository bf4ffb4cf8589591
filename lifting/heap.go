package lifting

import (
	"container/heap"

	"github.com/katalvlaran/parigo/graph"
)

// vertexQueue is a container/heap priority queue over graph.Vertex, ordered
// by a caller-supplied comparator (less(a, b) reports whether a should be
// popped before b). It tracks each queued vertex's heap index so a repeated
// push re-establishes heap order in place (heap.Fix) instead of enqueuing a
// duplicate, mirroring the teacher's nodeItem/nodePQ container/heap idiom
// generalized to vertex-indexed repositioning.
type vertexQueue struct {
	items []graph.Vertex
	pos   map[graph.Vertex]int
	less  func(a, b graph.Vertex) bool
}

func newVertexQueue(less func(a, b graph.Vertex) bool) *vertexQueue {
	return &vertexQueue{pos: make(map[graph.Vertex]int), less: less}
}

func (q *vertexQueue) Len() int { return len(q.items) }

func (q *vertexQueue) Less(i, j int) bool { return q.less(q.items[i], q.items[j]) }

func (q *vertexQueue) Swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
	q.pos[q.items[i]] = i
	q.pos[q.items[j]] = j
}

func (q *vertexQueue) Push(x interface{}) {
	v := x.(graph.Vertex)
	q.pos[v] = len(q.items)
	q.items = append(q.items, v)
}

func (q *vertexQueue) Pop() interface{} {
	n := len(q.items)
	v := q.items[n-1]
	q.items = q.items[:n-1]
	delete(q.pos, v)
	return v
}

// bump enqueues v, or re-sorts it in place if already queued (its priority
// key may have changed since).
func (q *vertexQueue) bump(v graph.Vertex) {
	if i, ok := q.pos[v]; ok {
		heap.Fix(q, i)
		return
	}
	heap.Push(q, v)
}

// pop removes and returns the front of the queue.
func (q *vertexQueue) pop() (graph.Vertex, bool) {
	if q.Len() == 0 {
		return graph.NoVertex, false
	}
	return heap.Pop(q).(graph.Vertex), true
}

// memory estimates the queue's footprint in bytes: one slice slot plus one
// map entry per queued vertex.
func (q *vertexQueue) memory() int { return len(q.items)*4 + len(q.pos)*24 }
