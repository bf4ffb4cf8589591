package lifting

import (
	"container/list"

	"github.com/katalvlaran/parigo/graph"
	"github.com/katalvlaran/parigo/spm"
)

// FocusList prefers vertices known to need re-examination (a "focus list"
// seeded by the predecessors of every successful lift) over a full linear
// scan, falling back to the scan only once the focus list drains. The scan
// cursor only advances, and only counts toward termination, when a focus-list
// vertex isn't available to serve instead.
type FocusList struct {
	v            int
	cursor       int
	fails        int
	focus        *list.List
	inFocus      []bool
	lastFromScan bool
}

// NewFocusList builds a FocusList strategy over v vertices, focus list
// initially empty (so the first round is a plain linear scan).
func NewFocusList(v int) *FocusList {
	return &FocusList{v: v, focus: list.New(), inFocus: make([]bool, v)}
}

func (f *FocusList) NextVertex(e *spm.Engine) (graph.Vertex, bool) {
	if f.focus.Len() > 0 {
		elem := f.focus.Front()
		v := elem.Value.(graph.Vertex)
		f.focus.Remove(elem)
		f.inFocus[v] = false
		f.lastFromScan = false
		return v, true
	}
	if f.v == 0 || f.fails >= f.v {
		return graph.NoVertex, false
	}
	f.lastFromScan = true
	return graph.Vertex(f.cursor), true
}

func (f *FocusList) Lifted(e *spm.Engine, v graph.Vertex, changed bool) {
	if f.lastFromScan {
		if changed {
			f.fails = 0
		} else {
			f.fails++
		}
		f.cursor = (f.cursor + 1) % f.v
	}
	if !changed {
		return
	}
	for _, w := range e.Game().Graph().Pred(v) {
		if !f.inFocus[w] {
			f.inFocus[w] = true
			f.focus.PushBack(w)
		}
	}
}

// EstimatedMemory reports FocusList's footprint in bytes: one membership
// flag plus an upper bound on queued list nodes per vertex.
func (f *FocusList) EstimatedMemory() int { return len(f.inFocus) * 41 }
