package lifting

import (
	"github.com/katalvlaran/parigo/graph"
	"github.com/katalvlaran/parigo/spm"
)

// LinPred combines Linear's scan order with Predecessor's dirty-set
// reactivation: it visits vertices in index order, but only those currently
// marked dirty, and marks a vertex's predecessors dirty again whenever its
// own lift succeeds.
type LinPred struct {
	v         int
	dirty     []bool
	cursor    int
	remaining int
}

// NewLinPred builds a LinPred strategy over v vertices, all initially dirty.
func NewLinPred(v int) *LinPred {
	dirty := make([]bool, v)
	for i := range dirty {
		dirty[i] = true
	}
	return &LinPred{v: v, dirty: dirty, remaining: v}
}

func (l *LinPred) NextVertex(e *spm.Engine) (graph.Vertex, bool) {
	if l.remaining == 0 {
		return graph.NoVertex, false
	}
	for !l.dirty[l.cursor] {
		l.cursor = (l.cursor + 1) % l.v
	}
	return graph.Vertex(l.cursor), true
}

func (l *LinPred) Lifted(e *spm.Engine, v graph.Vertex, changed bool) {
	l.dirty[v] = false
	l.remaining--
	if changed {
		for _, w := range e.Game().Graph().Pred(v) {
			if !l.dirty[w] {
				l.dirty[w] = true
				l.remaining++
			}
		}
	}
	l.cursor = (l.cursor + 1) % l.v
}

// EstimatedMemory reports LinPred's footprint in bytes: one dirty flag per
// vertex.
func (l *LinPred) EstimatedMemory() int { return len(l.dirty) }
