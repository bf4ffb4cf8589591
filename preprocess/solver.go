// Package preprocess implements the solver-wrapping preprocessing passes of
// §4.7: Deloop (resolve lone self-loops directly), Decycle (resolve closed,
// single-priority cycles directly) and SCC (decompose into strongly
// connected components, solving each in reverse topological order with
// already-solved downstream vertices folded into two synthetic sink
// vertices). Each wraps an inner Solver and returns a new one; the intended
// composition (§9) is SCC(Decycle(Deloop(base))).
package preprocess

import "github.com/katalvlaran/parigo/parity"

// Solver solves a whole parity.Game, returning a complete strategy or false
// if aborted partway through.
type Solver func(game *parity.Game) (parity.Strategy, bool)
