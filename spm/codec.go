package spm

import (
	"fmt"
	"io"

	"github.com/katalvlaran/parigo/bitstream"
	"github.com/katalvlaran/parigo/graph"
	"github.com/katalvlaran/parigo/parity"
	"github.com/katalvlaran/parigo/stats"
)

// progressMeasureHeader identifies parigo's progress-measure bitstream (§6).
var progressMeasureHeader = bitstream.Header{Magic: 0x8baf, Version: 0x8306}

// ErrVectorMismatch is returned by ReadVectors when the stream's vertex
// count or vector length doesn't match the engine it's being read into.
var ErrVectorMismatch = fmt.Errorf("spm: vector count or length mismatch")

// WriteVectors persists e's solved progress-measure vectors and cached
// lifting decisions: the §6 header, then e's vertex count and vector
// length, then per vertex a Top flag (and, if not Top, e.Length() components)
// followed by the cached extremal successor (or its absence), so a solved
// engine can be reloaded without re-running the lifting loop.
//
// Every field after the header is written with WriteInteger, including the
// flags that would otherwise fit a single bit: ReadInteger requires the
// stream to stay byte-aligned, and WriteHeader's 32 header bits already are,
// so mixing in raw WriteBits calls here would desync the reader.
func WriteVectors(w io.Writer, e *Engine) error {
	bw := bitstream.NewWriter(w)
	if err := bitstream.WriteHeader(bw, progressMeasureHeader); err != nil {
		return err
	}
	if err := bw.WriteInteger(uint64(e.game.V())); err != nil {
		return err
	}
	if err := bw.WriteInteger(uint64(e.length)); err != nil {
		return err
	}
	for v := 0; v < e.game.V(); v++ {
		vv := graph.Vertex(v)
		if e.IsTop(vv) {
			if err := bw.WriteInteger(1); err != nil {
				return err
			}
		} else {
			if err := bw.WriteInteger(0); err != nil {
				return err
			}
			for i := 0; i < e.length; i++ {
				if err := bw.WriteInteger(uint64(e.Component(vv, i))); err != nil {
					return err
				}
			}
		}
		move := e.strat[v]
		if move == graph.NoVertex {
			if err := bw.WriteInteger(0); err != nil {
				return err
			}
		} else {
			if err := bw.WriteInteger(1); err != nil {
				return err
			}
			if err := bw.WriteInteger(uint64(move)); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// ReadVectors reads a stream written by WriteVectors back into a fresh
// Engine for game/player/st, restoring every vertex's vector and cached
// move exactly. Returns ErrVectorMismatch if the stream's vertex count or
// vector length doesn't match the engine New would build for game/player.
func ReadVectors(r io.Reader, game *parity.Game, player parity.Player, st *stats.LiftingStatistics) (*Engine, error) {
	e := New(game, player, st)

	br := bitstream.NewReader(r)
	if err := bitstream.ReadHeader(br, progressMeasureHeader); err != nil {
		return nil, err
	}
	v, err := br.ReadInteger()
	if err != nil {
		return nil, err
	}
	length, err := br.ReadInteger()
	if err != nil {
		return nil, err
	}
	if int(v) != game.V() || int(length) != e.length {
		return nil, ErrVectorMismatch
	}

	for vv := 0; vv < game.V(); vv++ {
		top, err := br.ReadInteger()
		if err != nil {
			return nil, err
		}
		if top == 1 {
			e.vecs[vv] = vector{top: true}
		} else {
			vec := zeroVector(e.length)
			for i := 0; i < e.length; i++ {
				c, err := br.ReadInteger()
				if err != nil {
					return nil, err
				}
				vec.val[i] = uint32(c)
			}
			e.vecs[vv] = vec
		}

		hasMove, err := br.ReadInteger()
		if err != nil {
			return nil, err
		}
		if hasMove == 1 {
			m, err := br.ReadInteger()
			if err != nil {
				return nil, err
			}
			e.strat[vv] = graph.Vertex(m)
		} else {
			e.strat[vv] = graph.NoVertex
		}
	}

	return e, nil
}
