// Package graph implements StaticGraph, an immutable directed graph over a
// dense vertex index range [0, V), stored in compressed-sparse-row form.
//
// A StaticGraph is built once (via New or MakeSubgraph) and never mutated in
// place; the edge-removal and shuffle operations (RemoveEdges,
// ShuffleVertices) return a new graph. It can store successor
// lists, predecessor lists, or both, matching the direction the caller
// requested at construction time.
//
//	g.Succ(v)  — sorted, duplicate-free successors of v
//	g.Pred(v)  — sorted, duplicate-free predecessors of v (only if stored)
//
// Time complexity: construction is O(E log E) (sorting); all other queries
// are O(degree(v)) or O(1).
// Memory usage: O(V + E) integers.
package graph
