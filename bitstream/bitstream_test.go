package bitstream_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/parigo/bitstream"
	"github.com/stretchr/testify/require"
)

func TestWriteReadInteger(t *testing.T) {
	values := []uint64{0, 1, 127, 128, 300, 1 << 20, 1<<63 - 1}

	var buf bytes.Buffer
	w := bitstream.NewWriter(&buf)
	for _, v := range values {
		require.NoError(t, w.WriteInteger(v))
	}
	require.NoError(t, w.Flush())

	r := bitstream.NewReader(&buf)
	for _, want := range values {
		got, err := r.ReadInteger()
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestWriteReadBits(t *testing.T) {
	var buf bytes.Buffer
	w := bitstream.NewWriter(&buf)
	require.NoError(t, w.WriteBits(0b101, 3))
	require.NoError(t, w.WriteBits(0xff, 8))
	require.NoError(t, w.WriteBits(0, 1))
	require.NoError(t, w.Flush())

	r := bitstream.NewReader(&buf)
	v, err := r.ReadBits(3)
	require.NoError(t, err)
	require.Equal(t, uint64(0b101), v)

	v, err = r.ReadBits(8)
	require.NoError(t, err)
	require.Equal(t, uint64(0xff), v)

	v, err = r.ReadBits(1)
	require.NoError(t, err)
	require.Equal(t, uint64(0), v)
}

func TestWriteReadString(t *testing.T) {
	var buf bytes.Buffer
	w := bitstream.NewWriter(&buf)
	require.NoError(t, w.WriteString("hello, parity"))
	require.NoError(t, w.WriteString(""))
	require.NoError(t, w.Flush())

	r := bitstream.NewReader(&buf)
	s, err := r.ReadString()
	require.NoError(t, err)
	require.Equal(t, "hello, parity", s)

	s, err = r.ReadString()
	require.NoError(t, err)
	require.Equal(t, "", s)
}

func TestBitWidthOutOfRange(t *testing.T) {
	var buf bytes.Buffer
	w := bitstream.NewWriter(&buf)
	require.ErrorIs(t, w.WriteBits(1, 0), bitstream.ErrBitWidth)
	require.ErrorIs(t, w.WriteBits(1, 65), bitstream.ErrBitWidth)
}

func TestShortRead(t *testing.T) {
	r := bitstream.NewReader(bytes.NewReader(nil))
	_, err := r.ReadInteger()
	require.ErrorIs(t, err, bitstream.ErrShortRead)
}

func TestHeaderRoundTrip(t *testing.T) {
	want := bitstream.Header{Magic: 0x8baf, Version: 0x8306}

	var buf bytes.Buffer
	w := bitstream.NewWriter(&buf)
	require.NoError(t, bitstream.WriteHeader(w, want))
	require.NoError(t, w.Flush())

	r := bitstream.NewReader(&buf)
	require.NoError(t, bitstream.ReadHeader(r, want))
}

func TestHeaderMismatch(t *testing.T) {
	var buf bytes.Buffer
	w := bitstream.NewWriter(&buf)
	require.NoError(t, bitstream.WriteHeader(w, bitstream.Header{Magic: 0x1234, Version: 0x5678}))
	require.NoError(t, w.Flush())

	r := bitstream.NewReader(&buf)
	err := bitstream.ReadHeader(r, bitstream.Header{Magic: 0x8baf, Version: 0x8306})
	require.ErrorIs(t, err, bitstream.ErrVersionMismatch)
}
