package parity

import (
	"github.com/katalvlaran/parigo/graph"
)

// Game wraps a StaticGraph and adds a (player, priority) label per vertex,
// plus a cardinality table: card[p] is the number of vertices at priority p.
type Game struct {
	g      *graph.StaticGraph
	labels []label
	card   []uint32
	d      int // priority limit: labels use priorities in [0, d)
}

// VertexLabel is the input shape for New: the player and priority for one
// vertex, in vertex-index order.
type VertexLabel struct {
	Player   Player
	Priority int
}

// New builds a Game over g, with one label per vertex (len(labels) must
// equal g.V()) and priority limit d (every label's priority must be in
// [0, d)).
func New(g *graph.StaticGraph, labels []VertexLabel, d int) (*Game, error) {
	if len(labels) != g.V() {
		return nil, ErrInvalidInput
	}
	pg := &Game{g: g, d: d, card: make([]uint32, d)}
	pg.labels = make([]label, len(labels))
	for i, l := range labels {
		if l.Priority < 0 || l.Priority >= d {
			return nil, ErrInvalidInput
		}
		pg.labels[i] = label{player: l.Player, priority: uint32(l.Priority)}
		pg.card[l.Priority]++
	}
	return pg, nil
}

// Graph returns the underlying StaticGraph.
func (g *Game) Graph() *graph.StaticGraph { return g.g }

// V returns the number of vertices.
func (g *Game) V() int { return g.g.V() }

// D returns the priority limit (not necessarily the maximum priority used).
func (g *Game) D() int { return g.d }

// Player returns the owner of v.
func (g *Game) Player(v graph.Vertex) Player { return g.labels[v].player }

// Priority returns the priority of v.
func (g *Game) Priority(v graph.Vertex) int { return int(g.labels[v].priority) }

// Cardinality returns the number of vertices at priority p.
func (g *Game) Cardinality(p int) int { return int(g.card[p]) }

// Clone returns a deep copy of g.
func (g *Game) Clone() *Game {
	out := &Game{g: g.g, d: g.d}
	out.labels = append([]label(nil), g.labels...)
	out.card = append([]uint32(nil), g.card...)
	return out
}

// MakeSubgame builds the subgame induced by verts, carrying labels across
// and inducing the underlying subgraph (§4.2). proper and dir are forwarded
// to graph.MakeSubgraph.
func MakeSubgame(game *Game, verts []graph.Vertex, proper bool, dir graph.Direction) (*Game, error) {
	sub, err := graph.MakeSubgraph(game.g, verts, proper, dir)
	if err != nil {
		return nil, err
	}
	labels := make([]VertexLabel, len(verts))
	for i, v := range verts {
		labels[i] = VertexLabel{Player: game.Player(v), Priority: game.Priority(v)}
	}
	return New(sub, labels, game.d)
}

// Proper reports whether every vertex has at least one outgoing edge.
func (g *Game) Proper() bool { return g.g.Proper() }
