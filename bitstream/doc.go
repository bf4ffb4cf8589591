// Package bitstream implements a bit-oriented reader and writer used by
// parigo's canonical binary formats (see pgio).
//
// Three primitives are provided:
//
//   - WriteInteger / ReadInteger — a 7-bits-per-byte variable-length integer
//     encoding with a continuation bit, low-order bits first.
//   - WriteBits / ReadBits — a fixed-width encoding of the low k bits of a
//     value, most-significant bit first.
//   - WriteString / ReadString — a length-prefixed (WriteInteger) byte string.
//
// Writers buffer bits until a full byte is available; readers consume a
// byte at a time and unpack bits on demand. Both fail closed: a short read
// or an out-of-range bit width returns an error rather than panicking.
package bitstream
