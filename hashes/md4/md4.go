// Package md4 implements the MD4 hash function as defined in RFC 1320.
//
// MD4 is cryptographically broken and should only be used for compatibility with legacy protocols.
package md4

import (
	"encoding/binary"
	"math/bits"

	"github.com/codahale/blockhash"
)

const (
	// Size is the size, in bytes, of an MD4 digest.
	Size = 16

	// BlockSize is the block size, in bytes, of MD4.
	BlockSize = 64
)

// Digest is an incremental MD4 hash.
type Digest = blockhash.Engine[*core]

// New returns a new MD4 hash.
func New() *Digest {
	return blockhash.New(&core{})
}

// Sum returns the MD4 digest of data.
func Sum(data []byte) (sum [Size]byte) {
	d := New()
	d.Update(data)
	d.DigestInto(sum[:])
	return sum
}

var padding = blockhash.MDPadding{Marker: 0x80, LengthSize: 8}

type core struct {
	s [4]uint32
	x [16]uint32
}

func (c *core) BlockLength() blockhash.BlockLength { return blockhash.Fixed(BlockSize) }

func (c *core) DigestLength() int { return Size }

func (c *core) Reset() {
	c.s = [4]uint32{0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476}
}

var (
	shift1 = [4]int{3, 7, 11, 19}
	shift2 = [4]int{3, 5, 9, 13}
	shift3 = [4]int{3, 9, 11, 15}

	xIndex2 = [16]int{0, 4, 8, 12, 1, 5, 9, 13, 2, 6, 10, 14, 3, 7, 11, 15}
	xIndex3 = [16]int{0, 8, 4, 12, 2, 10, 6, 14, 1, 9, 5, 13, 3, 11, 7, 15}
)

func (c *core) Compress(block []byte, _ uint64) {
	x := &c.x
	for i := range x {
		x[i] = binary.LittleEndian.Uint32(block[i*4:])
	}

	a, b, cc, d := c.s[0], c.s[1], c.s[2], c.s[3]

	for i := range 16 {
		f := (b & cc) | (^b & d)
		a = bits.RotateLeft32(a+f+x[i], shift1[i%4])
		a, b, cc, d = d, a, b, cc
	}

	for i := range 16 {
		g := (b & cc) | (b & d) | (cc & d)
		a = bits.RotateLeft32(a+g+x[xIndex2[i]]+0x5a827999, shift2[i%4])
		a, b, cc, d = d, a, b, cc
	}

	for i := range 16 {
		h := b ^ cc ^ d
		a = bits.RotateLeft32(a+h+x[xIndex3[i]]+0x6ed9eba1, shift3[i%4])
		a, b, cc, d = d, a, b, cc
	}

	c.s[0] += a
	c.s[1] += b
	c.s[2] += cc
	c.s[3] += d
}

func (c *core) Finish(t *blockhash.Tail, out []byte) {
	t.MerkleDamgard(c, padding)
	blockhash.PutUint32s(out, binary.LittleEndian, c.s[:]...)
}

func (c *core) Clone() *core {
	d := *c
	return &d
}

func (c *core) String() string { return "MD4" }
