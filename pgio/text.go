package pgio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/parigo/graph"
	"github.com/katalvlaran/parigo/parity"
)

const winnerLineWidth = 80

// WriteWinners prints one ASCII character per vertex of game, in vertex
// order: 'E' for Even, 'O' for Odd, '?' when solved is false (the solver
// aborted before a winner was determined for any vertex). Characters are
// grouped in lines of 80. If invert is set (the game was dualised before
// solving), each winner is replaced by its opponent before printing.
func WriteWinners(w io.Writer, game *parity.Game, strat parity.Strategy, solved, invert bool) error {
	bw := bufio.NewWriter(w)
	for v := 0; v < game.V(); v++ {
		ch := byte('?')
		if solved {
			winner := game.Winner(strat, graph.Vertex(v))
			if invert {
				winner = winner.Opponent()
			}
			if winner == parity.Even {
				ch = 'E'
			} else {
				ch = 'O'
			}
		}
		if err := bw.WriteByte(ch); err != nil {
			return err
		}
		if (v+1)%winnerLineWidth == 0 {
			if err := bw.WriteByte('\n'); err != nil {
				return err
			}
		}
	}
	if game.V()%winnerLineWidth != 0 {
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteStrategy prints one line "v->w" for every vertex v with
// strat[v] != NoVertex, using decimal indices.
func WriteStrategy(w io.Writer, strat parity.Strategy) error {
	bw := bufio.NewWriter(w)
	for v, move := range strat {
		if move == graph.NoVertex {
			continue
		}
		if _, err := fmt.Fprintf(bw, "%d->%d\n", v, move); err != nil {
			return err
		}
	}
	return bw.Flush()
}
