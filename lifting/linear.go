package lifting

import (
	"github.com/katalvlaran/parigo/graph"
	"github.com/katalvlaran/parigo/spm"
)

// Linear sweeps vertices 0..V-1 in order, optionally reversing direction at
// each end instead of wrapping (the "alternating" variant), and stops once a
// full sweep produces no change.
type Linear struct {
	v           int
	alternating bool
	dir         int
	cursor      int
	fails       int
	limit       int
}

// NewLinear builds a Linear strategy over v vertices. When alternating is
// true the cursor bounces between 0 and v-1 instead of wrapping, and
// termination allows up to 2v-1 consecutive failures (one full round trip)
// rather than v, matching the extra slack a bouncing sweep needs to prove a
// fixpoint.
func NewLinear(v int, alternating bool) *Linear {
	limit := v
	if alternating {
		limit = 2*v - 1
	}
	return &Linear{v: v, alternating: alternating, dir: 1, limit: limit}
}

func (l *Linear) NextVertex(e *spm.Engine) (graph.Vertex, bool) {
	if l.v == 0 || l.fails >= l.limit {
		return graph.NoVertex, false
	}
	return graph.Vertex(l.cursor), true
}

func (l *Linear) Lifted(e *spm.Engine, v graph.Vertex, changed bool) {
	if changed {
		l.fails = 0
	} else {
		l.fails++
	}
	l.cursor += l.dir
	switch {
	case l.cursor >= l.v:
		if l.alternating {
			l.dir = -1
			l.cursor = l.v - 2
		} else {
			l.cursor = 0
		}
	case l.cursor < 0:
		if l.alternating {
			l.dir = 1
			l.cursor = 1
		} else {
			l.cursor = l.v - 1
		}
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
	if l.cursor >= l.v {
		l.cursor = l.v - 1
	}
}

// EstimatedMemory reports Linear's (constant) footprint in bytes.
func (l *Linear) EstimatedMemory() int { return 32 }
