package pgio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/parigo/graph"
	"github.com/katalvlaran/parigo/parity"
)

// ErrMalformedSolution is returned by ReadSolution on a line that doesn't
// parse as "<vertex> <winner> <move>".
var ErrMalformedSolution = fmt.Errorf("pgio: malformed solution line")

// WriteSolution prints one line per vertex of game, in vertex order:
// "<vertex> <winner> <move>", where winner is 0 (Even) or 1 (Odd) and move
// is the chosen successor, or "-" if the vertex's owner lost it.
func WriteSolution(w io.Writer, game *parity.Game, strat parity.Strategy) error {
	bw := bufio.NewWriter(w)
	for v := 0; v < game.V(); v++ {
		vv := graph.Vertex(v)
		winner := game.Winner(strat, vv)
		move := "-"
		if strat[v] != graph.NoVertex {
			move = strconv.Itoa(int(strat[v]))
		}
		if _, err := fmt.Fprintf(bw, "%d %d %s\n", v, uint8(winner), move); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadSolution parses the format WriteSolution emits into a per-vertex
// winner slice and strategy. v is the expected vertex count.
func ReadSolution(r io.Reader, v int) ([]parity.Player, parity.Strategy, error) {
	winner := make([]parity.Player, v)
	strat := make(parity.Strategy, v)
	seen := make([]bool, v)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, nil, ErrMalformedSolution
		}
		idx, err := strconv.Atoi(fields[0])
		if err != nil || idx < 0 || idx >= v {
			return nil, nil, ErrMalformedSolution
		}
		w, err := strconv.Atoi(fields[1])
		if err != nil || (w != 0 && w != 1) {
			return nil, nil, ErrMalformedSolution
		}
		winner[idx] = parity.Player(w)
		if fields[2] == "-" {
			strat[idx] = graph.NoVertex
		} else {
			m, err := strconv.Atoi(fields[2])
			if err != nil || m < 0 {
				return nil, nil, ErrMalformedSolution
			}
			strat[idx] = graph.Vertex(m)
		}
		seen[idx] = true
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	for _, ok := range seen {
		if !ok {
			return nil, nil, ErrMalformedSolution
		}
	}
	return winner, strat, nil
}
