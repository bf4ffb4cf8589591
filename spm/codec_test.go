package spm_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/parigo/graph"
	"github.com/katalvlaran/parigo/parity"
	"github.com/katalvlaran/parigo/spm"
	"github.com/stretchr/testify/require"
)

func TestWriteVectorsReadVectorsRoundTrip(t *testing.T) {
	// Same fixture as TestSolveSmallestCycleEvenWins: a 2-cycle whose max
	// priority (2) is even, so Even's engine should leave both vertices
	// below Top with a recorded extremal successor.
	g, err := graph.New(2, []graph.Edge{{0, 1}, {1, 0}}, graph.Bidirectional)
	require.NoError(t, err)
	pg, err := parity.New(g, []parity.VertexLabel{
		{Player: parity.Even, Priority: 2},
		{Player: parity.Odd, Priority: 1},
	}, 3)
	require.NoError(t, err)

	e := spm.New(pg, parity.Even, nil)
	e.InitializeSelfLoops()
	require.True(t, spm.SolveOne(e, &roundRobin{}))

	var buf bytes.Buffer
	require.NoError(t, spm.WriteVectors(&buf, e))

	got, err := spm.ReadVectors(&buf, pg, parity.Even, nil)
	require.NoError(t, err)

	require.Equal(t, e.Length(), got.Length())
	for v := 0; v < pg.V(); v++ {
		vv := graph.Vertex(v)
		require.Equal(t, e.IsTop(vv), got.IsTop(vv), "vertex %d top flag", v)
		require.Equal(t, e.Winner(vv), got.Winner(vv), "vertex %d winner", v)
		require.Equal(t, e.Strategy(vv), got.Strategy(vv), "vertex %d strategy", v)
		if !e.IsTop(vv) {
			for i := 0; i < e.Length(); i++ {
				require.Equal(t, e.Component(vv, i), got.Component(vv, i), "vertex %d component %d", v, i)
			}
		}
	}
}

func TestReadVectorsRejectsVertexCountMismatch(t *testing.T) {
	g, err := graph.New(2, []graph.Edge{{0, 1}, {1, 0}}, graph.Bidirectional)
	require.NoError(t, err)
	pg, err := parity.New(g, []parity.VertexLabel{
		{Player: parity.Even, Priority: 2},
		{Player: parity.Odd, Priority: 1},
	}, 3)
	require.NoError(t, err)

	e := spm.New(pg, parity.Even, nil)
	e.InitializeSelfLoops()
	require.True(t, spm.SolveOne(e, &roundRobin{}))

	var buf bytes.Buffer
	require.NoError(t, spm.WriteVectors(&buf, e))

	other, err := graph.New(3, []graph.Edge{{0, 1}, {1, 2}, {2, 0}}, graph.Bidirectional)
	require.NoError(t, err)
	otherPg, err := parity.New(other, []parity.VertexLabel{
		{Player: parity.Even, Priority: 2},
		{Player: parity.Odd, Priority: 1},
		{Player: parity.Even, Priority: 0},
	}, 3)
	require.NoError(t, err)

	_, err = spm.ReadVectors(&buf, otherPg, parity.Even, nil)
	require.ErrorIs(t, err, spm.ErrVectorMismatch)
}
