// Package pgio implements the canonical on-disk formats of §6: a raw
// little-endian binary encoding of a whole parity.Game (graph plus labels),
// and ASCII printers for a solved winner/strategy pair.
package pgio

import (
	"encoding/binary"
	"io"

	"github.com/katalvlaran/parigo/graph"
	"github.com/katalvlaran/parigo/parity"
)

// WriteGame emits game in the canonical binary layout: the underlying
// graph (graph.WriteRaw), then d:i32, then one player:u8/priority:u8 pair
// per vertex, then the d-entry cardinality table. The cardinality table is
// redundant with the per-vertex labels (ReadGame recomputes it via
// parity.New) but is part of the wire format so a reader can size
// per-priority structures before scanning every label.
func WriteGame(w io.Writer, game *parity.Game) error {
	if err := game.Graph().WriteRaw(w); err != nil {
		return err
	}
	if err := writeU32(w, uint32(game.D())); err != nil {
		return err
	}
	for v := 0; v < game.V(); v++ {
		vv := graph.Vertex(v)
		if err := writeU8(w, uint8(game.Player(vv))); err != nil {
			return err
		}
		if err := writeU8(w, uint8(game.Priority(vv))); err != nil {
			return err
		}
	}
	for p := 0; p < game.D(); p++ {
		if err := writeU32(w, uint32(game.Cardinality(p))); err != nil {
			return err
		}
	}
	return nil
}

// ReadGame decodes a parity.Game written by WriteGame.
func ReadGame(r io.Reader) (*parity.Game, error) {
	sg, err := graph.ReadRaw(r)
	if err != nil {
		return nil, err
	}
	d32, err := readU32(r)
	if err != nil {
		return nil, err
	}
	d := int(d32)

	labels := make([]parity.VertexLabel, sg.V())
	for v := range labels {
		pl, err := readU8(r)
		if err != nil {
			return nil, err
		}
		pr, err := readU8(r)
		if err != nil {
			return nil, err
		}
		labels[v] = parity.VertexLabel{Player: parity.Player(pl), Priority: int(pr)}
	}

	for p := 0; p < d; p++ {
		if _, err := readU32(r); err != nil {
			return nil, err
		}
	}

	return parity.New(sg, labels, d)
}

func writeU32(w io.Writer, n uint32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], n)
	_, err := w.Write(buf[:])
	return err
}

func readU32(r io.Reader) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

func writeU8(w io.Writer, n uint8) error {
	_, err := w.Write([]byte{n})
	return err
}

func readU8(r io.Reader) (uint8, error) {
	var buf [1]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}
