// Package parity implements ParityGame, a labelling of graph.StaticGraph
// vertices with (player, priority) pairs, plus the transformations used by
// the solvers in spm, recursive, and preprocess: dualisation, priority
// compression, and priority propagation.
//
// A Game owns its StaticGraph, its label table, and its cardinality table
// (the count of vertices at each priority). Labels and cardinality stay in
// sync through every transformation.
package parity
