package spm_test

import (
	"testing"

	"github.com/katalvlaran/parigo/graph"
	"github.com/katalvlaran/parigo/parity"
	"github.com/katalvlaran/parigo/spm"
	"github.com/katalvlaran/parigo/stats"
	"github.com/stretchr/testify/require"
)

// roundRobin is a minimal StrategyV1: cycle through every vertex in order,
// counting consecutive failed lifts, and stop once a full pass (V
// consecutive failures) produces nothing.
type roundRobin struct {
	cursor int
	fails  int
}

func (r *roundRobin) NextVertex(e *spm.Engine) (graph.Vertex, bool) {
	if r.fails >= e.Game().V() {
		return graph.NoVertex, false
	}
	return graph.Vertex(r.cursor), true
}

func (r *roundRobin) Lifted(e *spm.Engine, v graph.Vertex, changed bool) {
	if changed {
		r.fails = 0
	} else {
		r.fails++
	}
	r.cursor = (r.cursor + 1) % e.Game().V()
}

func newRoundRobin(*spm.Engine) spm.StrategyV1 { return &roundRobin{} }

func TestPreprocessLoopsKeepsBeneficialLoop(t *testing.T) {
	g, err := graph.New(2, []graph.Edge{{0, 0}, {0, 1}, {1, 0}}, graph.Bidirectional)
	require.NoError(t, err)
	pg, err := parity.New(g, []parity.VertexLabel{
		{Player: parity.Even, Priority: 2}, // even priority, Even owner: beneficial
		{Player: parity.Odd, Priority: 1},
	}, 3)
	require.NoError(t, err)

	out, err := spm.PreprocessLoops(pg)
	require.NoError(t, err)
	require.ElementsMatch(t, []graph.Vertex{0}, out.Graph().Succ(0))
}

func TestPreprocessLoopsDropsNonBeneficialLoop(t *testing.T) {
	g, err := graph.New(2, []graph.Edge{{0, 0}, {0, 1}}, graph.Bidirectional)
	require.NoError(t, err)
	pg, err := parity.New(g, []parity.VertexLabel{
		{Player: parity.Odd, Priority: 2}, // even priority, Odd owner: not beneficial
		{Player: parity.Even, Priority: 0},
	}, 3)
	require.NoError(t, err)

	out, err := spm.PreprocessLoops(pg)
	require.NoError(t, err)
	require.ElementsMatch(t, []graph.Vertex{1}, out.Graph().Succ(0))
}

func TestPreprocessLoopsKeepsLoneNonBeneficialLoop(t *testing.T) {
	g, err := graph.New(1, []graph.Edge{{0, 0}}, graph.Bidirectional)
	require.NoError(t, err)
	pg, err := parity.New(g, []parity.VertexLabel{{Player: parity.Odd, Priority: 1}}, 2)
	require.NoError(t, err)

	out, err := spm.PreprocessLoops(pg)
	require.NoError(t, err)
	require.ElementsMatch(t, []graph.Vertex{0}, out.Graph().Succ(0))
}

func TestInitializeSelfLoopsMarksTop(t *testing.T) {
	g, err := graph.New(1, []graph.Edge{{0, 0}}, graph.Bidirectional)
	require.NoError(t, err)
	// priority 1 (odd), the opponent's favorable parity for an Even engine.
	pg, err := parity.New(g, []parity.VertexLabel{{Player: parity.Even, Priority: 1}}, 2)
	require.NoError(t, err)

	e := spm.New(pg, parity.Even, nil)
	e.InitializeSelfLoops()
	require.True(t, e.IsTop(0))
}

func TestSolveSmallestCycleEvenWins(t *testing.T) {
	// 0 --(Even,prio2)--> 1 --(Odd,prio1)--> 0. Max priority on the only
	// cycle is 2 (even): Even wins both vertices.
	g, err := graph.New(2, []graph.Edge{{0, 1}, {1, 0}}, graph.Bidirectional)
	require.NoError(t, err)
	pg, err := parity.New(g, []parity.VertexLabel{
		{Player: parity.Even, Priority: 2},
		{Player: parity.Odd, Priority: 1},
	}, 3)
	require.NoError(t, err)

	strat, ok := spm.Solve(pg, stats.New(pg.V()), newRoundRobin)
	require.True(t, ok)
	require.Equal(t, parity.Even, pg.Winner(strat, 0))
	require.Equal(t, parity.Even, pg.Winner(strat, 1))
	require.Equal(t, graph.Vertex(1), strat[0])
}

func TestSolveSmallestCycleOddWins(t *testing.T) {
	// Same shape, but the cycle's max priority is 1 (odd): Odd wins both.
	g, err := graph.New(2, []graph.Edge{{0, 1}, {1, 0}}, graph.Bidirectional)
	require.NoError(t, err)
	pg, err := parity.New(g, []parity.VertexLabel{
		{Player: parity.Even, Priority: 0},
		{Player: parity.Odd, Priority: 1},
	}, 2)
	require.NoError(t, err)

	strat, ok := spm.Solve(pg, stats.New(pg.V()), newRoundRobin)
	require.True(t, ok)
	require.Equal(t, parity.Odd, pg.Winner(strat, 0))
	require.Equal(t, parity.Odd, pg.Winner(strat, 1))
}

func TestAlternatingAgreesWithNormalSolve(t *testing.T) {
	g, err := graph.New(2, []graph.Edge{{0, 1}, {1, 0}}, graph.Bidirectional)
	require.NoError(t, err)
	pg, err := parity.New(g, []parity.VertexLabel{
		{Player: parity.Even, Priority: 2},
		{Player: parity.Odd, Priority: 1},
	}, 3)
	require.NoError(t, err)

	strat, ok := spm.Alternating(pg, stats.New(pg.V()), newRoundRobin)
	require.True(t, ok)
	require.Equal(t, parity.Even, pg.Winner(strat, 0))
	require.Equal(t, parity.Even, pg.Winner(strat, 1))
}
