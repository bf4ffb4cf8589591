// Package solverapi implements the composition glue of §9: the
// SolverFactory/Solver trait pair and the standard preprocessing chain
// (SCC wraps Decycle wraps Deloop wraps a base SPM-or-recursive solver),
// assembled from a single ASCII descriptor string.
package solverapi

import (
	"github.com/katalvlaran/parigo/lifting"
	"github.com/katalvlaran/parigo/parity"
	"github.com/katalvlaran/parigo/preprocess"
	"github.com/katalvlaran/parigo/recursive"
	"github.com/katalvlaran/parigo/spm"
	"github.com/katalvlaran/parigo/stats"
)

// Solver solves a whole parity.Game. It is the type every stage of the
// preprocessing chain (preprocess.Deloop/Decycle/SCC) and every backend
// below shares.
type Solver = preprocess.Solver

// Factory builds a Solver for a game of v vertices, along with the
// LiftingStatistics instance that Solver reports its lifting attempts into
// (§4.3/§9). The instance is sized once, up front, and is then shared
// across every recursively spawned sub-solver of that one top-level solve,
// since a subgame's vertices are always a subset of the original game's
// indices.
type Factory interface {
	Create(v int) (Solver, *stats.LiftingStatistics)
}

// SPMFactory builds Solvers backed by the Small Progress Measures engine
// (§4.3) under a single parsed lifting-strategy descriptor (§4.4, §6).
type SPMFactory struct {
	Descriptor lifting.Descriptor
}

// Create implements Factory.
func (f SPMFactory) Create(v int) (Solver, *stats.LiftingStatistics) {
	st := stats.New(v)
	if f.Descriptor.Generation == lifting.V1 {
		return func(game *parity.Game) (parity.Strategy, bool) {
			return spm.Solve(game, st, f.Descriptor.NewV1)
		}, st
	}
	return func(game *parity.Game) (parity.Strategy, bool) {
		return spm.SolveV2Based(game, st, f.Descriptor.NewV2)
	}, st
}

// RecursiveFactory builds Solvers backed by Zielonka's recursive algorithm
// (§4.5). It returns an unused, zero-sized LiftingStatistics: the recursive
// solver never lifts, so there is nothing for it to report.
type RecursiveFactory struct{}

// Create implements Factory.
func (RecursiveFactory) Create(v int) (Solver, *stats.LiftingStatistics) {
	return Solver(recursive.SolveGame), stats.New(0)
}

// Chain wraps base in the standard preprocessing composition (§9):
// SCC(Decycle(Deloop(base))).
func Chain(base Solver) Solver {
	return preprocess.SCC(preprocess.Decycle(preprocess.Deloop(base)))
}
