package graph

import (
	"encoding/binary"
	"io"
)

// WriteRaw emits g in the canonical little-endian binary layout (§6):
// V:u32, E:u32, direction:u32, then (if successors stored) the successor
// array followed by its index array, then (if predecessors stored) the
// analogous predecessor arrays.
func (g *StaticGraph) WriteRaw(w io.Writer) error {
	if err := writeU32(w, g.v); err != nil {
		return err
	}
	if err := writeU32(w, g.e); err != nil {
		return err
	}
	if err := writeU32(w, uint32(g.dir)); err != nil {
		return err
	}
	if g.dir.HasSucc() {
		if err := writeVertices(w, g.succ); err != nil {
			return err
		}
		if err := writeU32s(w, g.succIndex); err != nil {
			return err
		}
	}
	if g.dir.HasPred() {
		if err := writeVertices(w, g.pred); err != nil {
			return err
		}
		if err := writeU32s(w, g.predIndex); err != nil {
			return err
		}
	}
	return nil
}

// ReadRaw decodes a StaticGraph written by WriteRaw.
func ReadRaw(r io.Reader) (*StaticGraph, error) {
	v, err := readU32(r)
	if err != nil {
		return nil, err
	}
	e, err := readU32(r)
	if err != nil {
		return nil, err
	}
	dirRaw, err := readU32(r)
	if err != nil {
		return nil, err
	}
	dir := Direction(dirRaw)

	g := &StaticGraph{v: v, e: e, dir: dir}
	if dir.HasSucc() {
		g.succ, err = readVertices(r, int(e))
		if err != nil {
			return nil, err
		}
		g.succIndex, err = readU32s(r, int(v)+1)
		if err != nil {
			return nil, err
		}
	}
	if dir.HasPred() {
		g.pred, err = readVertices(r, int(e))
		if err != nil {
			return nil, err
		}
		g.predIndex, err = readU32s(r, int(v)+1)
		if err != nil {
			return nil, err
		}
	}
	return g, nil
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

func writeU32s(w io.Writer, vals []uint32) error {
	for _, n := range vals {
		if err := writeU32(w, n); err != nil {
			return err
		}
	}
	return nil
}

func readU32s(r io.Reader, n int) ([]uint32, error) {
	out := make([]uint32, n)
	for i := range out {
		v, err := readU32(r)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func writeVertices(w io.Writer, vals []Vertex) error {
	for _, v := range vals {
		if err := writeU32(w, uint32(v)); err != nil {
			return err
		}
	}
	return nil
}

func readVertices(r io.Reader, n int) ([]Vertex, error) {
	out := make([]Vertex, n)
	for i := range out {
		v, err := readU32(r)
		if err != nil {
			return nil, err
		}
		out[i] = Vertex(v)
	}
	return out, nil
}

// Equal reports whether g and other have structurally identical adjacency
// (used by the round-trip property test).
func (g *StaticGraph) Equal(other *StaticGraph) bool {
	if g.v != other.v || g.e != other.e || g.dir != other.dir {
		return false
	}
	if g.dir.HasSucc() && (!equalU32(g.succIndex, other.succIndex) || !equalVertices(g.succ, other.succ)) {
		return false
	}
	if g.dir.HasPred() && (!equalU32(g.predIndex, other.predIndex) || !equalVertices(g.pred, other.pred)) {
		return false
	}
	return true
}

func equalU32(a, b []uint32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalVertices(a, b []Vertex) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
