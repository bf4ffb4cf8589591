package preprocess

import (
	"github.com/katalvlaran/parigo/graph"
	"github.com/katalvlaran/parigo/parity"
)

// Decycle wraps inner, resolving any strongly connected component of two or
// more vertices that is both closed (no edge leaves it) and uniform (every
// member shares one priority) directly (§4.7): since no vertex in such a
// component can ever
// escape it, the same priority recurs on every infinite play through it, so
// its winner is fixed by that priority's parity for every member regardless
// of ownership. A member owned by the winner gets a move back into the
// component; a member owned by the loser has none, since it cannot escape
// either. This is a cheap syntactic special case of the general SCC
// decomposition, left to catch common lone or short dominated cycles before
// SCC's heavier reverse-topological pass runs.
func Decycle(inner Solver) Solver {
	return func(game *parity.Game) (parity.Strategy, bool) {
		g := game.Graph()
		v := game.V()
		strat := make(parity.Strategy, v)
		for i := range strat {
			strat[i] = graph.NoVertex
		}
		resolved := make([]bool, v)

		for _, comp := range TarjanSCC(g) {
			if len(comp) < 2 || !closedAndUniform(game, g, comp) {
				continue
			}
			winner := parity.Player(game.Priority(comp[0]) % 2)
			inComp := make(map[graph.Vertex]bool, len(comp))
			for _, cv := range comp {
				inComp[cv] = true
			}
			for _, cv := range comp {
				resolved[cv] = true
				if game.Player(cv) != winner {
					continue
				}
				for _, w := range g.Succ(cv) {
					if inComp[w] {
						strat[cv] = w
						break
					}
				}
			}
		}

		var rest []graph.Vertex
		for i := 0; i < v; i++ {
			if !resolved[i] {
				rest = append(rest, graph.Vertex(i))
			}
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

// closedAndUniform reports whether comp has no edge leaving it and every
// member shares the same priority.
func closedAndUniform(game *parity.Game, g *graph.StaticGraph, comp []graph.Vertex) bool {
	p := game.Priority(comp[0])
	inComp := make(map[graph.Vertex]bool, len(comp))
	for _, v := range comp {
		inComp[v] = true
	}
	for _, v := range comp {
		if game.Priority(v) != p {
			return false
		}
		for _, w := range g.Succ(v) {
			if !inComp[w] {
				return false
			}
		}
	}
	return true
}
