package preprocess

import (
	"github.com/katalvlaran/parigo/graph"
	"github.com/katalvlaran/parigo/parity"
)

// Deloop wraps inner, resolving every vertex whose only outgoing edge is a
// self-loop directly (§4.7): such a vertex is won by whichever player its
// own priority favors, regardless of who owns it — the owner gets a move
// (the loop itself) only when it is also the favored player, since that is
// the only case in which the owner actually wins. The remaining vertices
// are handed to inner as an induced subgame.
func Deloop(inner Solver) Solver {
	return func(game *parity.Game) (parity.Strategy, bool) {
		g := game.Graph()
		v := game.V()
		strat := make(parity.Strategy, v)
		for i := range strat {
			strat[i] = graph.NoVertex
		}

		resolved := make([]bool, v)
		var rest []graph.Vertex
		for i := 0; i < v; i++ {
			vv := graph.Vertex(i)
			succ := g.Succ(vv)
			if len(succ) == 1 && succ[0] == vv {
				favored := parity.Player(game.Priority(vv) % 2)
				if game.Player(vv) == favored {
					strat[i] = vv
				}
				resolved[i] = true
				continue
			}
			rest = append(rest, vv)
		}

		if len(rest) == v {
			return inner(game)
		}
		if len(rest) == 0 {
			return strat, true
		}

		sub, err := parity.MakeSubgame(game, rest, false, g.Direction())
		if err != nil {
			return strat, false
		}
		subStrat, ok := inner(sub)
		if !ok {
			return strat, false
		}
		embedSubset(rest, subStrat, strat)
		return strat, true
	}
}

// embedSubset copies subStrat (indexed by position in rest) back into strat
// (indexed by original vertex), translating each local move through rest.
func embedSubset(rest []graph.Vertex, subStrat parity.Strategy, strat parity.Strategy) {
	for i, v := range rest {
		if subStrat[i] == graph.NoVertex {
			continue
		}
		strat[v] = rest[subStrat[i]]
	}
}
