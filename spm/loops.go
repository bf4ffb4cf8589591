package spm

import (
	"github.com/katalvlaran/parigo/graph"
	"github.com/katalvlaran/parigo/parity"
)

// PreprocessLoops implements step 1 of the solve procedure (§4.3): for every
// vertex with a self-loop, if the owner's parity matches the priority's
// parity the self-loop is beneficial to its owner and every other outgoing
// edge is removed; otherwise, if the vertex has other outgoing edges, the
// self-loop itself is removed. It returns a new game over a rebuilt graph
// (the original is left untouched).
func PreprocessLoops(game *parity.Game) (*parity.Game, error) {
	g := game.Graph()
	edges := make([]graph.Edge, 0, g.E())

	for v := 0; v < g.V(); v++ {
		vv := graph.Vertex(v)
		hasLoop := g.HasSuccEdge(vv, vv)
		hasOther := g.OutDegree(vv) > 1 || (g.OutDegree(vv) == 1 && !hasLoop)
		beneficial := hasLoop && int(game.Player(vv)) == game.Priority(vv)%2
		dropLoop := hasLoop && !beneficial && hasOther

		for _, w := range g.Succ(vv) {
			if w == vv {
				if !dropLoop {
					edges = append(edges, graph.Edge{From: vv, To: vv})
				}
				continue
			}
			if !beneficial {
				edges = append(edges, graph.Edge{From: vv, To: w})
			}
		}
	}

	rebuilt, err := graph.New(g.V(), edges, g.Direction())
	if err != nil {
		return nil, err
	}
	labels := make([]parity.VertexLabel, g.V())
	for v := 0; v < g.V(); v++ {
		vv := graph.Vertex(v)
		labels[v] = parity.VertexLabel{Player: game.Player(vv), Priority: game.Priority(vv)}
	}
	return parity.New(rebuilt, labels, game.D())
}
