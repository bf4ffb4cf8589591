// Package spm implements the Small Progress Measures engine (§4.3): the
// progress-measure vector store, the lift operation, and the driver loops
// that repeatedly lift vertices under a pluggable lifting strategy until no
// candidate remains.
//
// Engine is deliberately agnostic of which lifting strategy drives it: it
// exports the StrategyV1 and StrategyV2 interfaces (the "pull" and
// "push/pop/bump" API generations from §4.4/§9) and the read-only accessors
// a strategy needs (vector values, comparisons, vertex ordering) without
// importing the lifting package itself — lifting strategies live downstream
// and hold a scoped borrow of an *Engine for one solve call.
package spm
