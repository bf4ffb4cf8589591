// Package randgraph generates random directed graphs for property tests and
// benchmarks, following StaticGraph's make_random / make_random_clustered
// operations (spec §4.1).
package randgraph

import (
	"math/rand"

	"github.com/katalvlaran/parigo/graph"
)

// Random builds a random graph with v vertices and an average out-degree of
// outDeg (minimum out-degree 1), using rng for all random choices. Self-edges
// are possible; no duplicate edges are produced.
func Random(rng *rand.Rand, v int, outDeg int, dir graph.Direction) (*graph.StaticGraph, error) {
	if outDeg < 1 {
		outDeg = 1
	}
	neighbours := make([]int, v)
	for i := range neighbours {
		neighbours[i] = i
	}

	var edges []graph.Edge
	for i := 0; i < v; i++ {
		n := 1 + rng.Intn(2*outDeg-1)
		for k := 0; k < n && k < v; k++ {
			j := k + rng.Intn(v-k)
			neighbours[k], neighbours[j] = neighbours[j], neighbours[k]
			edges = append(edges, graph.Edge{From: graph.Vertex(i), To: graph.Vertex(neighbours[k])})
		}
	}
	return graph.New(v, edges, dir)
}

// RandomClustered builds a two-level clustered random graph: vertices are
// partitioned into blocks of size cluster (a random graph on [0,cluster)
// each), and the blocks are connected by one random graph over block
// indices, each of its edges becoming one edge between random vertices of
// the two blocks. Blocks are not subdivided further.
func RandomClustered(rng *rand.Rand, v int, outDeg int, cluster int, dir graph.Direction) (*graph.StaticGraph, error) {
	if cluster <= 1 || cluster >= v {
		return Random(rng, v, outDeg, dir)
	}

	numBlocks := (v + cluster - 1) / cluster
	var edges []graph.Edge

	// Intra-block edges: one independent random graph per block.
	for b := 0; b < numBlocks; b++ {
		lo := b * cluster
		hi := lo + cluster
		if hi > v {
			hi = v
		}
		size := hi - lo
		if size <= 0 {
			continue
		}
		blockEdges, err := Random(rng, size, outDeg, graph.Successor)
		if err != nil {
			return nil, err
		}
		for i := 0; i < size; i++ {
			for _, w := range blockEdges.Succ(graph.Vertex(i)) {
				edges = append(edges, graph.Edge{From: graph.Vertex(lo + i), To: graph.Vertex(lo + int(w))})
			}
		}
	}

	// Inter-block edges: a random graph over block indices, one representative
	// edge per block-pair chosen, connecting a random vertex in each block.
	if numBlocks > 1 {
		blockGraph, err := Random(rng, numBlocks, outDeg, graph.Successor)
		if err != nil {
			return nil, err
		}
		for b := 0; b < numBlocks; b++ {
			for _, c := range blockGraph.Succ(graph.Vertex(b)) {
				if int(c) == b {
					continue
				}
				from := b*cluster + rng.Intn(blockSize(b, cluster, v))
				to := int(c)*cluster + rng.Intn(blockSize(int(c), cluster, v))
				edges = append(edges, graph.Edge{From: graph.Vertex(from), To: graph.Vertex(to)})
			}
		}
	}

	return graph.New(v, edges, dir)
}

func blockSize(b, cluster, v int) int {
	lo := b * cluster
	hi := lo + cluster
	if hi > v {
		hi = v
	}
	return hi - lo
}

// Shuffle returns a uniformly random permutation of [0, v) suitable for
// StaticGraph.ShuffleVertices.
func Shuffle(rng *rand.Rand, v int) []graph.Vertex {
	perm := make([]graph.Vertex, v)
	for i := range perm {
		perm[i] = graph.Vertex(i)
	}
	rng.Shuffle(v, func(i, j int) { perm[i], perm[j] = perm[j], perm[i] })
	return perm
}
