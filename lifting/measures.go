package lifting

import (
	"github.com/katalvlaran/parigo/graph"
	"github.com/katalvlaran/parigo/spm"
)

// MaxMeasure always lifts the queued vertex whose current vector is
// lexicographically greatest, on the heuristic that the vertex already
// furthest along is closest to forcing the next carry.
type MaxMeasure struct {
	e *spm.Engine
	q *vertexQueue
}

// NewMaxMeasure builds a MaxMeasure strategy over e's game, queuing every
// vertex.
func NewMaxMeasure(e *spm.Engine) *MaxMeasure {
	m := &MaxMeasure{e: e}
	m.q = newVertexQueue(func(a, b graph.Vertex) bool { return e.Compare(a, b, e.Length()) > 0 })
	for v := 0; v < e.Game().V(); v++ {
		m.q.bump(graph.Vertex(v))
	}
	return m
}

func (m *MaxMeasure) Push(e *spm.Engine, v graph.Vertex) { m.q.bump(v) }
func (m *MaxMeasure) Pop(e *spm.Engine) (graph.Vertex, bool) { return m.q.pop() }

// EstimatedMemory reports the strategy's footprint in bytes.
func (m *MaxMeasure) EstimatedMemory() int { return m.q.memory() }

// MinMeasure is MaxMeasure's dual: always lifts the vertex whose current
// vector is lexicographically smallest.
type MinMeasure struct {
	e *spm.Engine
	q *vertexQueue
}

// NewMinMeasure builds a MinMeasure strategy over e's game, queuing every
// vertex.
func NewMinMeasure(e *spm.Engine) *MinMeasure {
	m := &MinMeasure{e: e}
	m.q = newVertexQueue(func(a, b graph.Vertex) bool { return e.Compare(a, b, e.Length()) < 0 })
	for v := 0; v < e.Game().V(); v++ {
		m.q.bump(graph.Vertex(v))
	}
	return m
}

func (m *MinMeasure) Push(e *spm.Engine, v graph.Vertex) { m.q.bump(v) }
func (m *MinMeasure) Pop(e *spm.Engine) (graph.Vertex, bool) { return m.q.pop() }

// EstimatedMemory reports the strategy's footprint in bytes.
func (m *MinMeasure) EstimatedMemory() int { return m.q.memory() }

// MaxStep orders its queue by a vertex's own priority, highest first: a
// vertex at a high priority dominates more tracked components and so has the
// greatest potential carry distance on its next successful lift. This is a
// static proxy for the step size a lift would produce, since measuring the
// actual step requires performing the lift itself.
type MaxStep struct {
	e *spm.Engine
	q *vertexQueue
}

// NewMaxStep builds a MaxStep strategy over e's game, queuing every vertex.
func NewMaxStep(e *spm.Engine) *MaxStep {
	m := &MaxStep{e: e}
	m.q = newVertexQueue(func(a, b graph.Vertex) bool {
		return e.Game().Priority(a) > e.Game().Priority(b)
	})
	for v := 0; v < e.Game().V(); v++ {
		m.q.bump(graph.Vertex(v))
	}
	return m
}

func (m *MaxStep) Push(e *spm.Engine, v graph.Vertex) { m.q.bump(v) }
func (m *MaxStep) Pop(e *spm.Engine) (graph.Vertex, bool) { return m.q.pop() }

// EstimatedMemory reports the strategy's footprint in bytes.
func (m *MaxStep) EstimatedMemory() int { return m.q.memory() }
