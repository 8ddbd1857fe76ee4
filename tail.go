package blockhash

import (
	"encoding/binary"
	"fmt"

	"lukechampine.com/uint128"
)

// Tail is the state of an engine at finalization: the block buffer, the number of valid bytes in it and the number of
// blocks compressed so far. Padding routines write into Block and compress it through Tail so that Index stays
// accurate.
type Tail struct {
	// Block is the engine's block buffer. Only the first N bytes are input.
	Block []byte

	// N is the number of input bytes in Block.
	N int

	// Index is the number of blocks compressed so far.
	Index uint64
}

// Len returns the total number of bytes absorbed, modulo 2^64.
func (t *Tail) Len() uint64 {
	return t.Index*uint64(len(t.Block)) + uint64(t.N)
}

// Bits returns the total number of bits absorbed, modulo 2^128.
func (t *Tail) Bits() uint128.Uint128 {
	return uint128.From64(t.Index).Mul64(uint64(len(t.Block))).Add64(uint64(t.N)).Lsh(3)
}

// Compress compresses the whole block buffer as the next block and marks it empty.
func (t *Tail) Compress(c Compressor) {
	c.Compress(t.Block, t.Index)
	t.Index++
	t.N = 0
}

// ZeroFrom clears Block[i:].
func (t *Tail) ZeroFrom(i int) {
	clear(t.Block[i:])
}

// MDPadding describes Merkle–Damgård strengthening: a marker byte, zeros and the message length in bits.
type MDPadding struct {
	// Marker is the first padding byte, usually 0x80.
	Marker byte

	// LengthSize is the size of the length field in bytes, either 8 or 16.
	LengthSize int

	// BigEndian selects the byte order of the length field.
	BigEndian bool
}

// MerkleDamgard appends the marker byte, zero-pads and writes the length field into the final block, compressing one
// extra block first if the length field does not fit after the marker.
func (t *Tail) MerkleDamgard(c Compressor, p MDPadding) {
	bits := t.Bits()

	t.Block[t.N] = p.Marker
	t.ZeroFrom(t.N + 1)

	limit := len(t.Block) - p.LengthSize
	if t.N >= limit {
		t.Compress(c)
		t.ZeroFrom(0)
	}

	dst := t.Block[limit:]
	switch {
	case p.LengthSize == 8 && p.BigEndian:
		binary.BigEndian.PutUint64(dst, bits.Lo)
	case p.LengthSize == 8:
		binary.LittleEndian.PutUint64(dst, bits.Lo)
	case p.LengthSize == 16 && p.BigEndian:
		bits.PutBytesBE(dst)
	case p.LengthSize == 16:
		bits.PutBytes(dst)
	default:
		panic(fmt.Sprintf("blockhash: invalid length field size %d", p.LengthSize))
	}

	t.Compress(c)
}

// Sponge applies multi-rate padding with a domain separation byte: ds is XORed at the end of the input, 0x80 at the
// last byte of the block, and the block is compressed.
func (t *Tail) Sponge(c Compressor, ds byte) {
	t.ZeroFrom(t.N)
	t.Block[t.N] ^= ds
	t.Block[len(t.Block)-1] ^= 0x80
	t.Compress(c)
}

// PutUint32s writes words to out in the given byte order, stopping when out is full.
func PutUint32s(out []byte, order binary.ByteOrder, words ...uint32) {
	var buf [4]byte
	for _, w := range words {
		if len(out) == 0 {
			return
		}
		order.PutUint32(buf[:], w)
		out = out[copy(out, buf[:]):]
	}
}

// PutUint64s writes words to out in the given byte order, stopping when out is full.
func PutUint64s(out []byte, order binary.ByteOrder, words ...uint64) {
	var buf [8]byte
	for _, w := range words {
		if len(out) == 0 {
			return
		}
		order.PutUint64(buf[:], w)
		out = out[copy(out, buf[:]):]
	}
}
