package graph

// MakeSubgraph builds the subgraph of g induced by verts (a duplicate-free
// list of vertex indices into g). New vertex i corresponds to verts[i];
// edges whose other endpoint is not in verts are dropped. If proper is set,
// every new vertex must retain at least one outgoing edge, or ErrNotProper
// is returned.
func MakeSubgraph(g *StaticGraph, verts []Vertex, proper bool, dir Direction) (*StaticGraph, error) {
	newIndex := make(map[Vertex]Vertex, len(verts))
	for i, v := range verts {
		newIndex[v] = Vertex(i)
	}

	var edges []Edge
	for i, v := range verts {
		for _, w := range g.Succ(v) {
			if j, ok := newIndex[w]; ok {
				edges = append(edges, Edge{From: Vertex(i), To: j})
			}
		}
	}

	sub, err := New(len(verts), edges, dir)
	if err != nil {
		return nil, err
	}
	if proper && dir.HasSucc() && !sub.Proper() {
		return nil, ErrNotProper
	}
	return sub, nil
}

// RemoveEdges returns a new StaticGraph with the given edges removed. The
// direction stored matches g's.
func RemoveEdges(g *StaticGraph, edges []Edge) (*StaticGraph, error) {
	remove := make(map[Edge]bool, len(edges))
	for _, e := range edges {
		remove[e] = true
	}

	var kept []Edge
	for v := Vertex(0); int(v) < g.V(); v++ {
		for _, w := range g.Succ(v) {
			if !remove[Edge{From: v, To: w}] {
				kept = append(kept, Edge{From: v, To: w})
			}
		}
	}
	return New(g.V(), kept, g.Direction())
}

// ShuffleVertices returns a new StaticGraph with vertex v relabeled to
// perm[v]. perm must be a permutation of [0, V).
func ShuffleVertices(g *StaticGraph, perm []Vertex) (*StaticGraph, error) {
	var edges []Edge
	for v := Vertex(0); int(v) < g.V(); v++ {
		for _, w := range g.Succ(v) {
			edges = append(edges, Edge{From: perm[v], To: perm[w]})
		}
	}
	return New(g.V(), edges, g.Direction())
}
