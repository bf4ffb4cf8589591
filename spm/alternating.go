package spm

import (
	"github.com/katalvlaran/parigo/graph"
	"github.com/katalvlaran/parigo/parity"
	"github.com/katalvlaran/parigo/stats"
)

// Alternating implements the alternating variant of the solve procedure
// (§4.3): two SPM engines, one per player, sharing the same (loop-
// preprocessed) game. Work proceeds in fixed-size chunks, alternating
// engines; after each chunk the Top assignments of one engine are
// propagated into the other (a vertex lost by one player is necessarily won
// by the other). The first engine to exhaust its lifting candidates stops;
// the other runs to completion. Strategies from both engines are then
// combined into a single result. Returns false if aborted partway through.
func Alternating(game *parity.Game, st *stats.LiftingStatistics, newStrategy func(*Engine) StrategyV1) (parity.Strategy, bool) {
	pre, err := PreprocessLoops(game)
	if err != nil {
		pre = game
	}

	even := New(pre, parity.Even, st)
	even.InitializeSelfLoops()
	odd := New(pre, parity.Odd, st)
	odd.InitializeSelfLoops()

	sEven := newStrategy(even)
	sOdd := newStrategy(odd)

	evenDone, oddDone := false, false
	for !evenDone || !oddDone {
		if stats.CheckAbort() {
			return nil, false
		}
		if !evenDone {
			if !SolveSome(even, sEven, workChunk) {
				return nil, false
			}
			if _, ok := sEven.NextVertex(even); !ok {
				evenDone = true
			}
		}
		if !oddDone {
			if !SolveSome(odd, sOdd, workChunk) {
				return nil, false
			}
			if _, ok := sOdd.NextVertex(odd); !ok {
				oddDone = true
			}
		}
		propagateTop(even, odd)
	}

	strat := make(parity.Strategy, game.V())
	for i := range strat {
		strat[i] = graph.NoVertex
	}
	for v := 0; v < pre.V(); v++ {
		vv := graph.Vertex(v)
		switch pre.Player(vv) {
		case parity.Even:
			if !even.IsTop(vv) {
				strat[v] = even.Strategy(vv)
			}
		case parity.Odd:
			if !odd.IsTop(vv) {
				strat[v] = odd.Strategy(vv)
			}
		}
	}
	return strat, true
}

// propagateTop copies each engine's Top vertices into the other: a vertex
// lost under one player's engine is won by the opponent, so the opponent's
// engine can fix it at Top immediately rather than rediscovering it by
// lifting.
func propagateTop(even, odd *Engine) {
	for v := 0; v < even.game.V(); v++ {
		vv := graph.Vertex(v)
		if even.IsTop(vv) && !odd.IsTop(vv) {
			odd.SetTop(vv)
		}
		if odd.IsTop(vv) && !even.IsTop(vv) {
			even.SetTop(vv)
		}
	}
}
