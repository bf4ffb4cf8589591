package attractor

import (
	"github.com/katalvlaran/parigo/denseset"
	"github.com/katalvlaran/parigo/graph"
	"github.com/katalvlaran/parigo/parity"
)

// Make computes the attractor set of player over the vertices already in
// `set`, using `todo` as the initial worklist (a subset of, or equal to,
// `set`'s current contents). It mutates `set` in place, adding every vertex
// pulled into the attractor, and records a winning move in `strategy` for
// every added vertex: the chosen successor if it is owned by `player`, or
// graph.NoVertex if it is owned by the opponent (meaning every successor is
// already in the attractor).
//
// Requires game's graph to store predecessor adjacency.
func Make(game *parity.Game, player parity.Player, set *denseset.Set, todo []graph.Vertex, strategy parity.Strategy) {
	g := game.Graph()
	liberties := make([]int, g.V())
	touched := make([]bool, g.V())

	worklist := append([]graph.Vertex(nil), todo...)
	for len(worklist) > 0 {
		w := worklist[0]
		worklist = worklist[1:]

		for _, v := range g.Pred(w) {
			if set.Contains(int(v)) {
				continue
			}

			if game.Player(v) == player {
				strategy[v] = w
				set.Add(int(v))
				worklist = append(worklist, v)
				continue
			}

			if !touched[v] {
				liberties[v] = g.OutDegree(v)
				touched[v] = true
			}
			liberties[v]--
			if liberties[v] == 0 {
				strategy[v] = graph.NoVertex
				set.Add(int(v))
				worklist = append(worklist, v)
			}
		}
	}
}
