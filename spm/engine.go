package spm

import (
	"github.com/katalvlaran/parigo/graph"
	"github.com/katalvlaran/parigo/parity"
	"github.com/katalvlaran/parigo/stats"
)

// StrategyV1 is the "pull" lifting-strategy API (§4.4): the engine asks the
// strategy which vertex to lift next, one at a time.
type StrategyV1 interface {
	// NextVertex returns the next vertex to attempt lifting, or
	// (graph.NoVertex, false) once the strategy has nothing left to offer
	// (a full round produced no successful lift).
	NextVertex(e *Engine) (graph.Vertex, bool)
	// Lifted is called after a lift attempt at v, reporting whether it
	// changed v's vector, so the strategy can update its own bookkeeping
	// (e.g. re-enqueue v's predecessors).
	Lifted(e *Engine, v graph.Vertex, changed bool)
}

// StrategyV2 is the "push/pop/bump" lifting-strategy API (§9's noted later
// generation): the engine reports successful lifts by pushing predecessors
// onto the strategy's own queue, and pops the next candidate itself.
type StrategyV2 interface {
	// Push notifies the strategy that v's predecessors should be
	// considered again, because v's vector just changed.
	Push(e *Engine, v graph.Vertex)
	// Pop returns the next vertex to attempt, or (graph.NoVertex, false)
	// when the strategy's queue is empty.
	Pop(e *Engine) (graph.Vertex, bool)
}

// Engine holds one run of the small progress measures algorithm over a fixed
// game and player: the per-vertex vector store, the per-index bounds M, and
// the cached extremal successors; per-vertex relevant lengths are derived on
// demand by lenOf (§4.3).
type Engine struct {
	game   *parity.Game
	player parity.Player
	length int // engine-wide vector length: count of tracked priorities below d
	m      []uint32
	vecs   []vector
	strat  []graph.Vertex // cached extremal successor, per vertex
	stats  *stats.LiftingStatistics
}

// New builds an Engine for game, computing vectors for player (i.e. the
// measures bound Odd-priority vertices when player is Even, per §4.3).
func New(game *parity.Game, player parity.Player, st *stats.LiftingStatistics) *Engine {
	e := &Engine{game: game, player: player, stats: st}
	e.length = (game.D() + int(player)) / 2
	e.m = make([]uint32, e.length)
	for i := 0; i < e.length; i++ {
		e.m[i] = e.boundAt(i)
	}
	e.vecs = make([]vector, game.V())
	for v := range e.vecs {
		e.vecs[v] = zeroVector(e.length)
	}
	e.strat = make([]graph.Vertex, game.V())
	for v := range e.strat {
		e.strat[v] = graph.NoVertex
	}
	return e
}

// lenOf returns the number of relevant vector components for v: the count of
// opposing-parity priorities at most priority(v), per §4.3's definition
// len(v) = floor((priority(v) + 1 + player) / 2). Zero is valid: a vertex
// whose own priority dominates no tracked priority at all is a pure
// pass-through (see progress).
func (e *Engine) lenOf(v graph.Vertex) int {
	p := e.game.Priority(v)
	n := p + 1 + int(e.player)
	m := n / 2
	if m > e.length {
		m = e.length
	}
	return m
}

// boundAt returns M[i]: one more than the number of vertices at the
// priority that index i constrains, i.e. cardinality_at(2i+1-player) + 1, or
// 0 if that priority is out of range (forcing any lift at i to carry away).
func (e *Engine) boundAt(i int) uint32 {
	prio := 2*i + 1 - int(e.player)
	if prio < 0 || prio >= e.game.D() {
		return 0
	}
	return uint32(e.game.Cardinality(prio)) + 1
}

// Game returns the underlying game.
func (e *Engine) Game() *parity.Game { return e.game }

// Player returns the player this engine computes for: vertices left below
// Top are won by this player, and the vectors count visits to the
// opponent's priorities (§4.3).
func (e *Engine) Player() parity.Player { return e.player }

// Length returns the engine-wide vector length.
func (e *Engine) Length() int { return e.length }

// Bound returns M[i].
func (e *Engine) Bound(i int) uint32 { return e.m[i] }

// IsTop reports whether v's vector is Top.
func (e *Engine) IsTop(v graph.Vertex) bool { return e.vecs[v].top }

// Component returns the i'th component of v's vector. Invalid on a Top
// vector.
func (e *Engine) Component(v graph.Vertex, i int) uint32 { return e.vecs[v].val[i] }

// Compare compares the vectors of a and b over n components (see compare).
func (e *Engine) Compare(a, b graph.Vertex, n int) int {
	return compare(e.vecs[a], e.vecs[b], n)
}

// SetTop forces v's vector to Top.
func (e *Engine) SetTop(v graph.Vertex) { e.vecs[v] = vector{top: true} }

// Lift attempts to raise v's vector, per the three steps of §4.3: pick the
// extremal successor (by raw vector, minimal if v's owner is this engine's
// player, maximal otherwise), then compute the progress value against that
// successor and install it if it strictly exceeds v's current vector.
// Returns whether the vector changed, and (if it did) the chosen successor,
// for the caller to record in a strategy.
func (e *Engine) Lift(v graph.Vertex) (changed bool, chosen graph.Vertex) {
	if e.vecs[v].top {
		return false, graph.NoVertex
	}

	succs := e.game.Graph().Succ(v)
	if len(succs) == 0 {
		return false, graph.NoVertex
	}

	minimize := e.game.Player(v) == e.player
	best := succs[0]
	for _, w := range succs[1:] {
		c := compare(e.vecs[w], e.vecs[best], e.length)
		if (minimize && c < 0) || (!minimize && c > 0) {
			best = w
		}
	}

	if e.stats != nil {
		defer func() { e.stats.Record(v, changed) }()
	}

	e.strat[v] = best
	if e.vecs[best].top {
		e.vecs[v] = vector{top: true}
		return true, best
	}

	m := e.lenOf(v)
	prog := e.progress(v, best, m)
	if compare(prog, e.vecs[v], e.length) <= 0 {
		return false, graph.NoVertex
	}
	e.vecs[v] = prog
	return true, best
}

// progress computes Prog(v, w), per §4.3 step 3. Index i holds the count for
// the i'th tracked (opposing-parity) priority, ascending; v's own priority
// dominates exactly the first m = lenOf(v) of them. Components from m
// onward hold counts for tracked priorities strictly above v's own, which v
// cannot affect, so they are always carried over from w unchanged.
//
// Within the first m components:
//   - if v's own priority matches player's favorable parity, v dominates
//     every tracked priority it covers: the prefix resets to zero rather
//     than inheriting w's counts.
//   - otherwise v's own priority is itself tracked: the prefix is copied
//     from w and incremented with carry entering at component m-1 and
//     propagating toward index 0; a carry escaping past 0 yields Top.
func (e *Engine) progress(v, w graph.Vertex, m int) vector {
	out := zeroVector(e.length)
	copy(out.val[m:], e.vecs[w].val[m:])

	if e.game.Priority(v)%2 == int(e.player) {
		return out
	}

	copy(out.val[:m], e.vecs[w].val[:m])
	for i := m - 1; i >= 0; i-- {
		out.val[i]++
		if out.val[i] < e.m[i] {
			return out
		}
		out.val[i] = 0
	}
	return vector{top: true}
}

// Winner reports the winner of v under this engine's final vectors: v is
// lost by e.Player() (and so won by its opponent) iff vec(v) is Top.
func (e *Engine) Winner(v graph.Vertex) parity.Player {
	if e.vecs[v].top {
		return e.player.Opponent()
	}
	return e.player
}

// LosingSet returns the vertices lost by e.Player(), i.e. those at Top.
func (e *Engine) LosingSet() []graph.Vertex {
	var out []graph.Vertex
	for v := 0; v < e.game.V(); v++ {
		if e.vecs[v].top {
			out = append(out, graph.Vertex(v))
		}
	}
	return out
}

// WinningSet returns the vertices won by e.Player(), i.e. those not at Top.
func (e *Engine) WinningSet() []graph.Vertex {
	var out []graph.Vertex
	for v := 0; v < e.game.V(); v++ {
		if !e.vecs[v].top {
			out = append(out, graph.Vertex(v))
		}
	}
	return out
}

// FillStrategy records into s a winning move for every vertex owned by
// e.Player() that is not at Top: its cached extremal successor. Vertices
// owned by the opponent, or at Top, are left untouched (the caller is
// expected to fill those from the dual engine, or mark them NoVertex).
func (e *Engine) FillStrategy(s parity.Strategy) {
	for v := 0; v < e.game.V(); v++ {
		vv := graph.Vertex(v)
		if e.game.Player(vv) == e.player && !e.vecs[v].top {
			s[v] = e.strat[v]
		}
	}
}

// InitializeSelfLoops sets to Top every vertex whose only outgoing edge is a
// self-loop owned by the opponent's parity (priority parity 1-player),
// per §4.3's initial state. The game's graph must already have been
// loop-preprocessed (§4.3's solve procedure step 1) so that "self-loop only"
// precisely identifies these vertices.
func (e *Engine) InitializeSelfLoops() {
	g := e.game.Graph()
	for v := 0; v < e.game.V(); v++ {
		vv := graph.Vertex(v)
		succ := g.Succ(vv)
		if len(succ) == 1 && succ[0] == vv && e.game.Priority(vv)%2 != int(e.player) {
			e.vecs[v] = vector{top: true}
		}
	}
}
