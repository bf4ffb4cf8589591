// Package verify implements the strategy verifier of §4.9: an independent
// check that a claimed (winner, strategy) pair for a parity.Game is actually
// correct, without trusting whichever solver produced it.
package verify

import (
	"github.com/katalvlaran/parigo/graph"
	"github.com/katalvlaran/parigo/parity"
	"github.com/katalvlaran/parigo/preprocess"
)

// Violation describes why Strategy failed verification: either a single
// vertex whose recorded move (or lack of one) disagrees with its own
// winner, or a component of the strategy-restricted graph whose members
// don't agree on a winner consistent with the component's own maximum
// priority.
type Violation struct {
	// Vertex is set for a single-vertex violation (step 1); NoVertex
	// otherwise.
	Vertex graph.Vertex
	// Members is the offending component for a cycle violation (step 2);
	// nil for a single-vertex violation.
	Members []graph.Vertex
	// MaxPriority is the offending component's own highest priority; -1 for
	// a single-vertex violation.
	MaxPriority int
}

// Strategy reports whether strat is a valid positional winning strategy for
// game (§4.9), in two steps:
//
//  1. Local move validity: for every v, let pl = game.Winner(strat, v). If
//     v's owner is pl, strat[v] must be a real successor and that successor
//     must also be won by pl. Otherwise strat[v] must be NoVertex and every
//     successor of v must be won by pl (the losing player is free to play
//     anything, so all of its options must still lose).
//  2. Cycle domination: build the strategy-restricted graph (a vertex with
//     a recorded move keeps only that edge, a vertex without one keeps all
//     of its original edges) and decompose it into strongly connected
//     components. Every genuine cycle (a component of size > 1, or a
//     singleton with a self-loop) is a counter-example unless all of its
//     members share one claimed winner and that winner's parity matches the
//     component's own maximum priority — the priority that actually
//     recurs infinitely once play enters the cycle.
func Strategy(game *parity.Game, strat parity.Strategy) (bool, *Violation) {
	winner := make([]parity.Player, game.V())
	for v := 0; v < game.V(); v++ {
		winner[v] = game.Winner(strat, graph.Vertex(v))
	}

	g := game.Graph()
	for v := 0; v < game.V(); v++ {
		vv := graph.Vertex(v)
		pl := winner[v]
		if strat[v] != graph.NoVertex {
			if !g.HasSuccEdge(vv, strat[v]) || winner[strat[v]] != pl {
				return false, &Violation{Vertex: vv, MaxPriority: -1}
			}
			continue
		}
		for _, w := range g.Succ(vv) {
			if winner[w] != pl {
				return false, &Violation{Vertex: vv, MaxPriority: -1}
			}
		}
	}

	restricted := restrict(game, strat)
	for _, comp := range preprocess.TarjanSCC(restricted) {
		if len(comp) == 1 && !restricted.HasSuccEdge(comp[0], comp[0]) {
			continue // no cycle here, nothing to check
		}
		w := winner[comp[0]]
		maxP := game.Priority(comp[0])
		consistent := true
		for _, v := range comp[1:] {
			if winner[v] != w {
				consistent = false
			}
			if p := game.Priority(v); p > maxP {
				maxP = p
			}
		}
		if !consistent || parity.Player(maxP%2) != w {
			return false, &Violation{Members: comp, MaxPriority: maxP}
		}
	}
	return true, nil
}

// restrict builds the graph used by Strategy's step 2: a vertex with a
// recorded move keeps only that one outgoing edge; a vertex without one
// keeps all of its original edges.
func restrict(game *parity.Game, strat parity.Strategy) *graph.StaticGraph {
	g := game.Graph()
	var edges []graph.Edge
	for v := 0; v < game.V(); v++ {
		vv := graph.Vertex(v)
		if strat[v] != graph.NoVertex {
			edges = append(edges, graph.Edge{From: vv, To: strat[v]})
			continue
		}
		for _, w := range g.Succ(vv) {
			edges = append(edges, graph.Edge{From: vv, To: w})
		}
	}
	restricted, _ := graph.New(game.V(), edges, graph.Successor)
	return restricted
}
