package lifting

import (
	"container/list"

	"github.com/katalvlaran/parigo/graph"
	"github.com/katalvlaran/parigo/spm"
)

// Predecessor maintains a worklist of "dirty" vertices, initially every
// vertex. Each successful lift pushes that vertex's predecessors back onto
// the worklist (their extremal successor may now compare differently), and
// the strategy terminates once the worklist empties. stack selects LIFO
// (depth-first) rather than FIFO (breadth-first) processing order.
type Predecessor struct {
	stack bool
	q     *list.List
	elems []*list.Element // elems[v] is v's node in q, or nil if v is not queued
}

// NewPredecessor builds a Predecessor worklist over v vertices, all
// initially queued.
func NewPredecessor(v int, stack bool) *Predecessor {
	p := &Predecessor{stack: stack, q: list.New(), elems: make([]*list.Element, v)}
	for i := 0; i < v; i++ {
		p.elems[i] = p.q.PushBack(graph.Vertex(i))
	}
	return p
}

func (p *Predecessor) NextVertex(e *spm.Engine) (graph.Vertex, bool) {
	if p.q.Len() == 0 {
		return graph.NoVertex, false
	}
	var elem *list.Element
	if p.stack {
		elem = p.q.Back()
	} else {
		elem = p.q.Front()
	}
	v := elem.Value.(graph.Vertex)
	p.q.Remove(elem)
	p.elems[v] = nil
	return v, true
}

func (p *Predecessor) Lifted(e *spm.Engine, v graph.Vertex, changed bool) {
	if !changed {
		return
	}
	for _, w := range e.Game().Graph().Pred(v) {
		if p.elems[w] == nil {
			p.elems[w] = p.q.PushBack(w)
		}
	}
}

// EstimatedMemory reports the worklist's footprint in bytes: one list node
// plus one pointer slot per vertex.
func (p *Predecessor) EstimatedMemory() int { return len(p.elems) * 40 }
