package parity_test

import (
	"testing"

	"github.com/katalvlaran/parigo/graph"
	"github.com/katalvlaran/parigo/parity"
	"github.com/stretchr/testify/require"
)

func toggleGame(t *testing.T) *parity.Game {
	t.Helper()
	g, err := graph.New(2, []graph.Edge{{0, 1}, {1, 0}}, graph.Bidirectional)
	require.NoError(t, err)
	pg, err := parity.New(g, []parity.VertexLabel{
		{Player: parity.Odd, Priority: 1},
		{Player: parity.Even, Priority: 0},
	}, 2)
	require.NoError(t, err)
	return pg
}

func TestWinner(t *testing.T) {
	pg := toggleGame(t)
	strat := parity.Strategy{1, graph.NoVertex}
	require.Equal(t, parity.Odd, pg.Winner(strat, 0))
	require.Equal(t, parity.Odd, pg.Winner(strat, 1))

	strat2 := parity.Strategy{graph.NoVertex, 0}
	require.Equal(t, parity.Even, pg.Winner(strat2, 0))
}

func TestDualInvertsWinners(t *testing.T) {
	pg := toggleGame(t)
	dual := pg.Dual()
	require.Equal(t, 2, dual.V())

	strat := parity.Strategy{1, 0}
	for v := graph.Vertex(0); int(v) < pg.V(); v++ {
		require.Equal(t, pg.Winner(strat, v).Opponent(), dual.Winner(strat, v))
	}
}

func TestCompressPrioritiesIdempotent(t *testing.T) {
	g, err := graph.New(3, []graph.Edge{{0, 1}, {1, 2}, {2, 0}}, graph.Bidirectional)
	require.NoError(t, err)
	pg, err := parity.New(g, []parity.VertexLabel{
		{Player: parity.Even, Priority: 4},
		{Player: parity.Even, Priority: 4},
		{Player: parity.Odd, Priority: 7},
	}, 8)
	require.NoError(t, err)

	pg.CompressPriorities(nil, true)
	d1 := pg.D()
	before := make([]int, d1)
	for p := range before {
		before[p] = pg.Cardinality(p)
	}

	pg.CompressPriorities(nil, true)
	require.Equal(t, d1, pg.D())
	for p := range before {
		require.Equal(t, before[p], pg.Cardinality(p))
	}
}

func TestCompressPrioritiesNoZeroGaps(t *testing.T) {
	g, err := graph.New(2, []graph.Edge{{0, 1}, {1, 0}}, graph.Bidirectional)
	require.NoError(t, err)
	pg, err := parity.New(g, []parity.VertexLabel{
		{Player: parity.Even, Priority: 5},
		{Player: parity.Odd, Priority: 2},
	}, 8)
	require.NoError(t, err)

	pg.CompressPriorities(nil, true)
	for p := 1; p < pg.D(); p++ {
		require.NotZero(t, pg.Cardinality(p), "priority %d must not be a zero-cardinality gap", p)
	}
}

func TestPropagatePrioritiesLowersToNeighbourMaximum(t *testing.T) {
	// 0 --2--> 1 --0--> 0  (0 has priority 2, unreachable from higher priorities)
	g, err := graph.New(2, []graph.Edge{{0, 1}, {1, 0}}, graph.Bidirectional)
	require.NoError(t, err)
	pg, err := parity.New(g, []parity.VertexLabel{
		{Player: parity.Even, Priority: 2},
		{Player: parity.Even, Priority: 0},
	}, 3)
	require.NoError(t, err)

	changed := pg.PropagatePriorities()
	require.Equal(t, 2, changed)
	require.Equal(t, 0, pg.Priority(0)) // lowered from 2 to max(neighbour priorities) = 0
	require.Equal(t, 0, pg.Priority(1)) // unaffected, already minimal
}
