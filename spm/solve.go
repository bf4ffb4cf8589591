package spm

import (
	"github.com/katalvlaran/parigo/graph"
	"github.com/katalvlaran/parigo/parity"
	"github.com/katalvlaran/parigo/stats"
)

// workChunk is the number of lift attempts processed per call to SolveSome
// before control returns to the caller, matching the original work_size used
// to pace abort-flag polling and, in the alternating variant, engine
// switches (see SPEC_FULL.md's supplemented-features section).
const workChunk = 10000

// SolveOne drives e with strategy until the strategy reports no further
// candidate, or the process-wide abort flag is set. Returns true if it
// stopped because of exhaustion (a complete fixpoint), false if aborted.
func SolveOne(e *Engine, strategy StrategyV1) bool {
	for i := 0; ; i++ {
		if i%256 == 0 && stats.CheckAbort() {
			return false
		}
		v, ok := strategy.NextVertex(e)
		if !ok {
			return true
		}
		changed, _ := e.Lift(v)
		strategy.Lifted(e, v, changed)
	}
}

// SolveSome performs up to n lift attempts under strategy, stopping early if
// the strategy is exhausted or the abort flag becomes set. Returns false iff
// it stopped because of abort (exhaustion is not itself a failure).
func SolveSome(e *Engine, strategy StrategyV1, n int) bool {
	for i := 0; i < n; i++ {
		if i%256 == 0 && stats.CheckAbort() {
			return false
		}
		v, ok := strategy.NextVertex(e)
		if !ok {
			return true
		}
		changed, _ := e.Lift(v)
		strategy.Lifted(e, v, changed)
	}
	return true
}

// Strategy returns v's cached extremal successor (graph.NoVertex if none has
// been computed yet, or if v has no successors).
func (e *Engine) Strategy(v graph.Vertex) graph.Vertex { return e.strat[v] }

// SolveV2 drives e with a v2 (push/pop) strategy until its queue empties, or
// the process-wide abort flag is set. Every successful lift's predecessors
// are pushed back onto strategy's queue (the engine, not the strategy, knows
// the graph's reverse adjacency), matching the push/pop/bump generation of
// §4.4/§9. Unlike SolveOne/SolveSome, Pop itself consumes its candidate, so
// this cannot be split into a chunked peek-then-drain pair without either
// losing a candidate or re-deriving "is the queue empty" some other way;
// abort is polled every 256 pops instead.
func SolveV2(e *Engine, strategy StrategyV2) bool {
	g := e.game.Graph()
	for i := 0; ; i++ {
		if i%256 == 0 && stats.CheckAbort() {
			return false
		}
		v, ok := strategy.Pop(e)
		if !ok {
			return true
		}
		changed, _ := e.Lift(v)
		if changed {
			for _, p := range g.Pred(v) {
				strategy.Push(e, p)
			}
		}
	}
}

// Solve implements the full solve procedure of §4.3: loop-preprocess, run
// SPM for Even, then recurse on the dual of Odd's winning subgame to resolve
// the complementary strategy. newStrategy builds a fresh StrategyV1 bound to
// an engine; it is called once per recursive SPM instantiation. Returns the
// combined strategy over game's original vertices, or false if aborted
// partway through (the returned strategy is then incomplete).
func Solve(game *parity.Game, st *stats.LiftingStatistics, newStrategy func(*Engine) StrategyV1) (parity.Strategy, bool) {
	pre, err := PreprocessLoops(game)
	if err != nil {
		pre = game
	}
	strat := make(parity.Strategy, game.V())
	for i := range strat {
		strat[i] = graph.NoVertex
	}
	ok := solveRec(pre, st, newStrategy, strat, identityMap(pre.V()))
	return strat, ok
}

// solveRec solves pre (a subgame of the original, dualised at every odd
// recursion depth) and writes winning moves into strat, which is always
// indexed by the ORIGINAL game's vertex numbers. idx[i] is the original
// vertex corresponding to pre's local vertex i.
func solveRec(pre *parity.Game, st *stats.LiftingStatistics, newStrategy func(*Engine) StrategyV1, strat parity.Strategy, idx []graph.Vertex) bool {
	if pre.V() == 0 {
		return true
	}

	e := New(pre, parity.Even, st)
	e.InitializeSelfLoops()
	strategy := newStrategy(e)
	if !SolveOne(e, strategy) {
		return false
	}

	for v := 0; v < pre.V(); v++ {
		vv := graph.Vertex(v)
		if pre.Player(vv) == parity.Even && !e.IsTop(vv) {
			if s := e.Strategy(vv); s != graph.NoVertex {
				strat[idx[v]] = idx[s]
			}
		}
	}

	oddWin := e.LosingSet()
	if len(oddWin) == 0 {
		return true
	}

	sub, err := parity.MakeSubgame(pre, oddWin, false, pre.Graph().Direction())
	if err != nil {
		return false
	}
	dual := sub.Dual()

	subIdx := make([]graph.Vertex, len(oddWin))
	for i, v := range oddWin {
		subIdx[i] = idx[v]
	}

	return solveRec(dual, st, newStrategy, strat, subIdx)
}

// SolveV2Based is Solve's counterpart for a v2 (push/pop) strategy
// constructor, used by the factory-produced strategies that are naturally
// queue-driven (the heap-ordered measure strategies of package lifting).
func SolveV2Based(game *parity.Game, st *stats.LiftingStatistics, newStrategy func(*Engine) StrategyV2) (parity.Strategy, bool) {
	pre, err := PreprocessLoops(game)
	if err != nil {
		pre = game
	}
	strat := make(parity.Strategy, game.V())
	for i := range strat {
		strat[i] = graph.NoVertex
	}
	ok := solveRecV2(pre, st, newStrategy, strat, identityMap(pre.V()))
	return strat, ok
}

func solveRecV2(pre *parity.Game, st *stats.LiftingStatistics, newStrategy func(*Engine) StrategyV2, strat parity.Strategy, idx []graph.Vertex) bool {
	if pre.V() == 0 {
		return true
	}

	e := New(pre, parity.Even, st)
	e.InitializeSelfLoops()
	strategy := newStrategy(e)
	if !SolveV2(e, strategy) {
		return false
	}

	for v := 0; v < pre.V(); v++ {
		vv := graph.Vertex(v)
		if pre.Player(vv) == parity.Even && !e.IsTop(vv) {
			if s := e.Strategy(vv); s != graph.NoVertex {
				strat[idx[v]] = idx[s]
			}
		}
	}

	oddWin := e.LosingSet()
	if len(oddWin) == 0 {
		return true
	}

	sub, err := parity.MakeSubgame(pre, oddWin, false, pre.Graph().Direction())
	if err != nil {
		return false
	}
	dual := sub.Dual()

	subIdx := make([]graph.Vertex, len(oddWin))
	for i, v := range oddWin {
		subIdx[i] = idx[v]
	}

	return solveRecV2(dual, st, newStrategy, strat, subIdx)
}

func identityMap(n int) []graph.Vertex {
	idx := make([]graph.Vertex, n)
	for i := range idx {
		idx[i] = graph.Vertex(i)
	}
	return idx
}
