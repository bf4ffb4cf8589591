package preprocess

import (
	"github.com/katalvlaran/parigo/graph"
	"github.com/katalvlaran/parigo/parity"
	"github.com/katalvlaran/parigo/stats"
)

// TarjanSCC returns g's strongly connected components. Components are
// emitted in the order Tarjan's algorithm naturally completes them: a
// component finishes only once every component reachable from it (via
// successor edges) has already finished, so the result is already in
// reverse topological order — sinks first, matching what SCC needs to fold
// already-solved vertices into the sink vertices of later components.
func TarjanSCC(g *graph.StaticGraph) [][]graph.Vertex {
	v := g.V()
	index := make([]int, v)
	low := make([]int, v)
	onStack := make([]bool, v)
	for i := range index {
		index[i] = -1
	}
	stack := make([]graph.Vertex, 0, v)
	var components [][]graph.Vertex
	counter := 0

	var strongconnect func(graph.Vertex)
	strongconnect = func(vv graph.Vertex) {
		index[vv] = counter
		low[vv] = counter
		counter++
		stack = append(stack, vv)
		onStack[vv] = true

		for _, w := range g.Succ(vv) {
			switch {
			case index[w] == -1:
				strongconnect(w)
				if low[w] < low[vv] {
					low[vv] = low[w]
				}
			case onStack[w]:
				if index[w] < low[vv] {
					low[vv] = index[w]
				}
			}
		}

		if low[vv] != index[vv] {
			return
		}
		var comp []graph.Vertex
		for {
			n := len(stack) - 1
			w := stack[n]
			stack = stack[:n]
			onStack[w] = false
			comp = append(comp, w)
			if w == vv {
				break
			}
		}
		components = append(components, comp)
	}

	for i := 0; i < v; i++ {
		if index[i] == -1 {
			strongconnect(graph.Vertex(i))
		}
	}
	return components
}

// SCC wraps inner, decomposing game into strongly connected components and
// solving each in reverse topological order (§4.7). A singleton component
// with no self-loop has no internal edges and is resolved directly: its
// owner wins iff some successor (necessarily already solved) is won by that
// same owner. A larger or self-looping component is genuinely cyclic and is
// handed to inner as an augmented subgame: every edge leaving the component
// to an already-solved vertex w is redirected to one of two synthetic sink
// vertices (EvenSink, OddSink, each a trivial self-loop of the matching
// parity) standing in for "reaches a vertex Even/Odd already wins", and the
// real edge is recovered afterward to translate the sink move back.
func SCC(inner Solver) Solver {
	return func(game *parity.Game) (parity.Strategy, bool) {
		g := game.Graph()
		comps := TarjanSCC(g)

		strat := make(parity.Strategy, game.V())
		for i := range strat {
			strat[i] = graph.NoVertex
		}
		winner := make([]parity.Player, game.V())
		resolved := make([]bool, game.V())

		for _, comp := range comps {
			if stats.CheckAbort() {
				return strat, false
			}
			if len(comp) == 1 && !g.HasSuccEdge(comp[0], comp[0]) {
				v := comp[0]
				w, move := resolveTrivial(game, v, winner)
				winner[v] = w
				strat[v] = move
				resolved[v] = true
				continue
			}

			sub, evenExit, oddExit, err := buildAugmented(game, comp, winner)
			if err != nil {
				return strat, false
			}
			subStrat, ok := inner(sub)
			if !ok {
				return strat, false
			}
			embedComponent(comp, sub, subStrat, evenExit, oddExit, strat, winner, resolved)
		}
		return strat, true
	}
}

// resolveTrivial decides the winner of a singleton, non-self-looping
// component v, all of whose successors lie in already-resolved components
// (guaranteed by TarjanSCC's emission order): v's owner wins by picking any
// successor already won by that owner, else the opponent wins and v gets
// no move.
func resolveTrivial(game *parity.Game, v graph.Vertex, winner []parity.Player) (parity.Player, graph.Vertex) {
	owner := game.Player(v)
	for _, w := range game.Graph().Succ(v) {
		if winner[w] == owner {
			return owner, w
		}
	}
	return owner.Opponent(), graph.NoVertex
}

const (
	evenSinkPriority = 0
	oddSinkPriority  = 1
)

// buildAugmented builds the subgame induced by comp plus two trailing sink
// vertices (local index len(comp) for Even, len(comp)+1 for Odd). evenExit
// and oddExit record, per local vertex, one real out-of-component successor
// already won by Even/Odd respectively (graph.NoVertex if none), so the
// sink move can be translated back to a real edge after solving.
func buildAugmented(game *parity.Game, comp []graph.Vertex, winner []parity.Player) (sub *parity.Game, evenExit, oddExit []graph.Vertex, err error) {
	n := len(comp)
	localIdx := make(map[graph.Vertex]int, n)
	for i, v := range comp {
		localIdx[v] = i
	}

	evenExit = make([]graph.Vertex, n)
	oddExit = make([]graph.Vertex, n)
	for i := range evenExit {
		evenExit[i] = graph.NoVertex
		oddExit[i] = graph.NoVertex
	}

	evenSink := graph.Vertex(n)
	oddSink := graph.Vertex(n + 1)

	g := game.Graph()
	var edges []graph.Edge
	for i, v := range comp {
		for _, w := range g.Succ(v) {
			if j, ok := localIdx[w]; ok {
				edges = append(edges, graph.Edge{From: graph.Vertex(i), To: graph.Vertex(j)})
				continue
			}
			if winner[w] == parity.Even {
				if evenExit[i] == graph.NoVertex {
					evenExit[i] = w
				}
			} else if oddExit[i] == graph.NoVertex {
				oddExit[i] = w
			}
		}
	}
	for i := range comp {
		if evenExit[i] != graph.NoVertex {
			edges = append(edges, graph.Edge{From: graph.Vertex(i), To: evenSink})
		}
		if oddExit[i] != graph.NoVertex {
			edges = append(edges, graph.Edge{From: graph.Vertex(i), To: oddSink})
		}
	}
	edges = append(edges, graph.Edge{From: evenSink, To: evenSink}, graph.Edge{From: oddSink, To: oddSink})

	total := n + 2
	sg, err := graph.New(total, edges, g.Direction())
	if err != nil {
		return nil, nil, nil, err
	}

	labels := make([]parity.VertexLabel, total)
	for i, v := range comp {
		labels[i] = parity.VertexLabel{Player: game.Player(v), Priority: game.Priority(v)}
	}
	labels[n] = parity.VertexLabel{Player: parity.Even, Priority: evenSinkPriority}
	labels[n+1] = parity.VertexLabel{Player: parity.Odd, Priority: oddSinkPriority}

	d := game.D()
	if d < 2 {
		d = 2
	}
	sub, err = parity.New(sg, labels, d)
	if err != nil {
		return nil, nil, nil, err
	}
	sub.CompressPriorities(nil, true)
	return sub, evenExit, oddExit, nil
}

// embedComponent copies subStrat's winners and moves for comp's vertices
// back into the original-index strat/winner/resolved arrays, translating a
// sink move into the real out-of-component edge it stands for.
func embedComponent(comp []graph.Vertex, sub *parity.Game, subStrat parity.Strategy, evenExit, oddExit []graph.Vertex, strat parity.Strategy, winner []parity.Player, resolved []bool) {
	n := len(comp)
	evenSink := graph.Vertex(n)
	oddSink := graph.Vertex(n + 1)
	for i, v := range comp {
		winner[v] = sub.Winner(subStrat, graph.Vertex(i))
		resolved[v] = true
		switch m := subStrat[i]; {
		case m == graph.NoVertex:
			strat[v] = graph.NoVertex
		case m == evenSink:
			strat[v] = evenExit[i]
		case m == oddSink:
			strat[v] = oddExit[i]
		default:
			strat[v] = comp[m]
		}
	}
}
