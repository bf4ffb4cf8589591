package parity

import "github.com/katalvlaran/parigo/graph"

// Dual returns the dual game: same graph, every vertex's player swapped and
// priority increased by one (shifting the cardinality table right by one
// slot; D() becomes D()+1), then compressed with CompressPriorities(nil,
// true). For every strategy s, Winner(dual, s, v) == Winner(g, s, v).Opponent().
func (g *Game) Dual() *Game {
	out := g.Clone()
	out.d = g.d + 1
	out.card = make([]uint32, out.d)
	for i, c := range g.card {
		out.card[i+1] = c
	}
	for i, l := range g.labels {
		out.labels[i] = label{player: l.player.Opponent(), priority: l.priority + 1}
	}
	out.CompressPriorities(nil, true)
	return out
}

// CompressPriorities remaps priorities so that consecutive used priorities
// alternate parity, dropping runs of same-parity priorities and unused
// priorities entirely (§4.2).
//
// If card is nil, g's own cardinality table is used. If preserveParity is
// true, every priority keeps its parity (and priority 0 stays 0 even if
// unused); otherwise the lowest used priority is mapped to 0, which may swap
// every vertex's player, and CompressPriorities reports which parity ended
// up at zero. When preserveParity is true the returned player is always Even
// and carries no meaning.
func (g *Game) CompressPriorities(card []int, preserveParity bool) Player {
	if card == nil {
		card = make([]int, g.d)
		for p := range card {
			card[p] = int(g.card[p])
		}
	}

	start := 0
	if !preserveParity {
		for start < g.d && card[start] == 0 {
			start++
		}
		if start == g.d {
			start = 0 // empty game
		}
	}

	swapPlayers := !preserveParity && start%2 != 0

	const unmapped = -1
	priomap := make([]int, g.d)
	for i := range priomap {
		priomap[i] = unmapped
	}

	lastPrio := 0
	priomap[start] = lastPrio
	for p := start + 1; p < g.d; p++ {
		if card[p] == 0 {
			continue
		}
		if lastPrio%2 != (p-start)%2 {
			lastPrio++
		}
		priomap[p] = lastPrio
	}

	newD := lastPrio + 1
	newCard := make([]uint32, newD)
	for p := 0; p < g.d; p++ {
		if priomap[p] != unmapped {
			newCard[priomap[p]] += uint32(card[p])
		}
	}

	for i, l := range g.labels {
		np := priomap[l.priority]
		pl := l.player
		if swapPlayers {
			pl = pl.Opponent()
		}
		g.labels[i] = label{player: pl, priority: uint32(np)}
	}
	g.card = newCard
	g.d = newD

	if swapPlayers {
		return Odd
	}
	return Even
}

// ShuffleVertices relabels vertex v to perm[v]; labels follow.
func (g *Game) ShuffleVertices(perm []graph.Vertex) (*Game, error) {
	sg, err := graph.ShuffleVertices(g.g, perm)
	if err != nil {
		return nil, err
	}
	out := &Game{g: sg, d: g.d, card: append([]uint32(nil), g.card...)}
	out.labels = make([]label, len(g.labels))
	for v, l := range g.labels {
		out.labels[perm[v]] = l
	}
	return out, nil
}

// PropagatePriorities iteratively lowers each vertex's priority to the
// maximum priority occurring among its predecessors and successors, whenever
// that maximum is strictly lower than the vertex's current priority. It
// returns the sum of all priority decreases. Winners and optimal strategies
// are preserved (§9 design note). Requires the game's graph to store both
// successor and predecessor adjacency.
func (g *Game) PropagatePriorities() int {
	total := 0
	dirty := make([]bool, g.V())
	var worklist []graph.Vertex

	lower := func(v graph.Vertex) bool {
		p := g.Priority(v)
		if p == 0 {
			return false
		}
		q := 0
		for _, w := range g.g.Succ(v) {
			if int(g.labels[w].priority) > q {
				q = int(g.labels[w].priority)
			}
		}
		for _, w := range g.g.Pred(v) {
			if int(g.labels[w].priority) > q {
				q = int(g.labels[w].priority)
			}
		}
		if q >= p {
			return false
		}
		g.card[p]--
		g.card[q]++
		g.labels[v].priority = uint32(q)
		total += p - q
		return true
	}

	for v := graph.Vertex(0); int(v) < g.V(); v++ {
		if lower(v) {
			dirty[v] = true
			worklist = append(worklist, v)
		}
	}

	for len(worklist) > 0 {
		w := worklist[0]
		worklist = worklist[1:]
		dirty[w] = false

		neighbours := append(append([]graph.Vertex(nil), g.g.Pred(w)...), g.g.Succ(w)...)
		for _, v := range neighbours {
			if dirty[v] {
				continue
			}
			if lower(v) {
				dirty[v] = true
				worklist = append(worklist, v)
			}
		}
	}

	return total
}
