package solverapi_test

import (
	"testing"

	"github.com/katalvlaran/parigo/graph"
	"github.com/katalvlaran/parigo/parity"
	"github.com/katalvlaran/parigo/solverapi"
	"github.com/stretchr/testify/require"
)

// togglingPair is the two-vertex toggle fixture: owner 0 is Odd, owner 1 is
// Even, priorities 1 and 0, edges 0->1 and 1->0. Every infinite play
// alternates both vertices forever, so the highest priority seen infinitely
// often is 1 and Odd wins both vertices; each vertex has exactly one move.
func togglingPair(t *testing.T) *parity.Game {
	t.Helper()
	g, err := graph.New(2, []graph.Edge{{From: 0, To: 1}, {From: 1, To: 0}}, graph.Bidirectional)
	require.NoError(t, err)
	pg, err := parity.New(g, []parity.VertexLabel{
		{Player: parity.Odd, Priority: 1},
		{Player: parity.Even, Priority: 0},
	}, 2)
	require.NoError(t, err)
	return pg
}

func TestNewRejectsUnknownBackend(t *testing.T) {
	game := togglingPair(t)
	_, _, err := solverapi.New("quantum", game)
	require.ErrorIs(t, err, solverapi.ErrUnknownBackend)
}

func TestNewRejectsInvalidLiftingDescriptor(t *testing.T) {
	game := togglingPair(t)
	_, _, err := solverapi.New("spm:notarealstrategy", game)
	require.Error(t, err)
}

func TestRecursiveChainSolvesTogglingPair(t *testing.T) {
	game := togglingPair(t)
	solve, _, err := solverapi.New("recursive", game)
	require.NoError(t, err)

	strat, ok := solve(game)
	require.True(t, ok)
	require.Equal(t, graph.Vertex(1), strat[0])
	require.Equal(t, graph.NoVertex, strat[1])
	require.Equal(t, parity.Odd, game.Winner(strat, 0))
	require.Equal(t, parity.Odd, game.Winner(strat, 1))
}

func TestSPMChainAgreesWithRecursiveChain(t *testing.T) {
	game := togglingPair(t)

	recSolve, _, err := solverapi.New("recursive", game)
	require.NoError(t, err)
	recStrat, ok := recSolve(game)
	require.True(t, ok)

	spmSolve, st, err := solverapi.New("spm:maxmeasure", game)
	require.NoError(t, err)
	spmStrat, ok := spmSolve(game)
	require.True(t, ok)
	require.NotNil(t, st)

	for v := 0; v < game.V(); v++ {
		vv := graph.Vertex(v)
		require.Equal(t, game.Winner(recStrat, vv), game.Winner(spmStrat, vv))
	}
}

func TestSPMChainHonorsV1Descriptor(t *testing.T) {
	game := togglingPair(t)
	solve, _, err := solverapi.New("spm:predecessor:true", game)
	require.NoError(t, err)

	strat, ok := solve(game)
	require.True(t, ok)
	require.Equal(t, parity.Odd, game.Winner(strat, 0))
	require.Equal(t, parity.Odd, game.Winner(strat, 1))
}
