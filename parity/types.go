package parity

import (
	"fmt"

	"github.com/katalvlaran/parigo/graph"
)

// Player is one of the two parity-game players.
type Player uint8

const (
	// Even wins when the maximum priority seen infinitely often is even.
	Even Player = 0
	// Odd wins when the maximum priority seen infinitely often is odd.
	Odd Player = 1
)

// Opponent returns the other player.
func (p Player) Opponent() Player { return 1 - p }

// String renders the player as "Even" or "Odd".
func (p Player) String() string {
	if p == Even {
		return "Even"
	}
	return "Odd"
}

// ErrInvalidInput is returned for ill-formed games: a priority out of range,
// or (in callers that require it) a vertex without an outgoing edge.
var ErrInvalidInput = fmt.Errorf("parity: invalid input")

// Strategy assigns each vertex either a chosen successor (meaning: the
// vertex's owner wins and this is a winning move) or graph.NoVertex (meaning:
// the opponent wins from this vertex).
type Strategy []graph.Vertex

// Winner returns the winner of vertex v given strategy s: the vertex's owner
// if s[v] is a real successor, otherwise the opponent.
func (g *Game) Winner(s Strategy, v graph.Vertex) Player {
	if s[v] != graph.NoVertex {
		return g.Player(v)
	}
	return g.Player(v).Opponent()
}

// label holds the (player, priority) pair stored per vertex.
type label struct {
	player   Player
	priority uint32
}
