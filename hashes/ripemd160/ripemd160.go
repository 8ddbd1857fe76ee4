// Package ripemd160 implements the RIPEMD-160 hash function.
//
// RIPEMD-160 runs two parallel lines of five rounds each over every block and combines them into the chaining value.
package ripemd160

import (
	"encoding/binary"
	"math/bits"

	"github.com/codahale/blockhash"
)

const (
	// Size is the size, in bytes, of a RIPEMD-160 digest.
	Size = 20

	// BlockSize is the block size, in bytes, of RIPEMD-160.
	BlockSize = 64
)

// Digest is an incremental RIPEMD-160 hash.
type Digest = blockhash.Engine[*core]

// New returns a new RIPEMD-160 hash.
func New() *Digest {
	return blockhash.New(&core{})
}

// Sum returns the RIPEMD-160 digest of data.
func Sum(data []byte) (sum [Size]byte) {
	d := New()
	d.Update(data)
	d.DigestInto(sum[:])
	return sum
}

var padding = blockhash.MDPadding{Marker: 0x80, LengthSize: 8}

var (
	rl = [80]uint8{
		0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
		7, 4, 13, 1, 10, 6, 15, 3, 12, 0, 9, 5, 2, 14, 11, 8,
		3, 10, 14, 4, 9, 15, 8, 1, 2, 7, 0, 6, 13, 11, 5, 12,
		1, 9, 11, 10, 0, 8, 12, 4, 13, 3, 7, 15, 14, 5, 6, 2,
		4, 0, 5, 9, 7, 12, 2, 10, 14, 1, 3, 8, 11, 6, 15, 13,
	}
	rr = [80]uint8{
		5, 14, 7, 0, 9, 2, 11, 4, 13, 6, 15, 8, 1, 10, 3, 12,
		6, 11, 3, 7, 0, 13, 5, 10, 14, 15, 8, 12, 4, 9, 1, 2,
		15, 5, 1, 3, 7, 14, 6, 9, 11, 8, 12, 2, 10, 0, 4, 13,
		8, 6, 4, 1, 3, 11, 15, 0, 5, 12, 2, 13, 9, 7, 10, 14,
		12, 15, 10, 4, 1, 5, 8, 7, 6, 2, 13, 14, 0, 3, 9, 11,
	}
	sl = [80]uint8{
		11, 14, 15, 12, 5, 8, 7, 9, 11, 13, 14, 15, 6, 7, 9, 8,
		7, 6, 8, 13, 11, 9, 7, 15, 7, 12, 15, 9, 11, 7, 13, 12,
		11, 13, 6, 7, 14, 9, 13, 15, 14, 8, 13, 6, 5, 12, 7, 5,
		11, 12, 14, 15, 14, 15, 9, 8, 9, 14, 5, 6, 8, 6, 5, 12,
		9, 15, 5, 11, 6, 8, 13, 12, 5, 12, 13, 14, 11, 8, 5, 6,
	}
	sr = [80]uint8{
		8, 9, 9, 11, 13, 15, 15, 5, 7, 7, 8, 11, 14, 14, 12, 6,
		9, 13, 15, 7, 12, 8, 9, 11, 7, 7, 12, 7, 6, 15, 13, 11,
		9, 7, 15, 11, 8, 6, 6, 14, 12, 13, 5, 14, 13, 13, 7, 5,
		15, 5, 8, 11, 14, 14, 6, 14, 6, 9, 12, 9, 12, 5, 15, 8,
		8, 5, 12, 9, 12, 5, 14, 6, 8, 13, 6, 5, 15, 13, 11, 11,
	}
	kl = [5]uint32{0x00000000, 0x5a827999, 0x6ed9eba1, 0x8f1bbcdc, 0xa953fd4e}
	kr = [5]uint32{0x50a28be6, 0x5c4dd124, 0x6d703ef3, 0x7a6d76e9, 0x00000000}
)

// f is the boolean function for round j/16.
func f(round int, x, y, z uint32) uint32 {
	switch round {
	case 0:
		return x ^ y ^ z
	case 1:
		return (x & y) | (^x & z)
	case 2:
		return (x | ^y) ^ z
	case 3:
		return (x & z) | (y & ^z)
	default:
		return x ^ (y | ^z)
	}
}

type core struct {
	h [5]uint32
	x [16]uint32
}

func (c *core) BlockLength() blockhash.BlockLength { return blockhash.Fixed(BlockSize) }

func (c *core) DigestLength() int { return Size }

func (c *core) Reset() {
	c.h = [5]uint32{0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476, 0xc3d2e1f0}
}

func (c *core) Compress(block []byte, _ uint64) {
	x := &c.x
	for i := range x {
		x[i] = binary.LittleEndian.Uint32(block[i*4:])
	}

	al, bl, cl, dl, el := c.h[0], c.h[1], c.h[2], c.h[3], c.h[4]
	ar, br, cr, dr, er := al, bl, cl, dl, el

	for j := range 80 {
		round := j / 16

		t := bits.RotateLeft32(al+f(round, bl, cl, dl)+x[rl[j]]+kl[round], int(sl[j])) + el
		al, el, dl, cl, bl = el, dl, bits.RotateLeft32(cl, 10), bl, t

		t = bits.RotateLeft32(ar+f(4-round, br, cr, dr)+x[rr[j]]+kr[round], int(sr[j])) + er
		ar, er, dr, cr, br = er, dr, bits.RotateLeft32(cr, 10), br, t
	}

	t := c.h[1] + cl + dr
	c.h[1] = c.h[2] + dl + er
	c.h[2] = c.h[3] + el + ar
	c.h[3] = c.h[4] + al + br
	c.h[4] = c.h[0] + bl + cr
	c.h[0] = t
}

func (c *core) Finish(t *blockhash.Tail, out []byte) {
	t.MerkleDamgard(c, padding)
	blockhash.PutUint32s(out, binary.LittleEndian, c.h[:]...)
}

func (c *core) Clone() *core {
	d := *c
	return &d
}

func (c *core) String() string { return "RIPEMD-160" }
