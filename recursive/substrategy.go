package recursive

import (
	"github.com/katalvlaran/parigo/graph"
	"github.com/katalvlaran/parigo/parity"
)

// Substrategy is a view onto a single shared, original-index parity.Strategy
// slice: idx[i] is the original vertex that a subgame's local vertex i
// corresponds to. Recursing into an induced subgame never copies or wraps
// the strategy slice itself, only narrows the index map — a plain pair of
// (shared slice, index map), not an inheritance chain of subgame types.
type Substrategy struct {
	strat parity.Strategy
	idx   []graph.Vertex
}

// NewSubstrategy builds the root view over strat (which must have length v,
// one slot per original vertex), with the identity index map.
func NewSubstrategy(strat parity.Strategy, v int) *Substrategy {
	idx := make([]graph.Vertex, v)
	for i := range idx {
		idx[i] = graph.Vertex(i)
	}
	return &Substrategy{strat: strat, idx: idx}
}

// Original translates a vertex local to the current subgame into its
// original-game index.
func (s *Substrategy) Original(local graph.Vertex) graph.Vertex { return s.idx[local] }

// Set records a winning move for local vertex v: the local successor move,
// or graph.NoVertex if v has none (the opponent wins it). Both are
// translated through the index map before writing into the shared slice.
func (s *Substrategy) Set(v, move graph.Vertex) {
	if move == graph.NoVertex {
		s.strat[s.idx[v]] = graph.NoVertex
		return
	}
	s.strat[s.idx[v]] = s.idx[move]
}

// View narrows s to the subgame induced by verts (local vertex indices of
// the current game), producing a new Substrategy whose own local index 0..
// len(verts)-1 corresponds, in order, to verts translated through s.
func (s *Substrategy) View(verts []graph.Vertex) *Substrategy {
	idx := make([]graph.Vertex, len(verts))
	for i, v := range verts {
		idx[i] = s.idx[v]
	}
	return &Substrategy{strat: s.strat, idx: idx}
}
