// Package sha1 implements the SHA-1 hash function as defined in FIPS 180-4.
//
// SHA-1 is cryptographically broken and should only be used for compatibility with legacy protocols.
package sha1

import (
	"encoding/binary"
	"math/bits"

	"github.com/codahale/blockhash"
)

const (
	// Size is the size, in bytes, of a SHA-1 digest.
	Size = 20

	// BlockSize is the block size, in bytes, of SHA-1.
	BlockSize = 64
)

// Digest is an incremental SHA-1 hash.
type Digest = blockhash.Engine[*core]

// New returns a new SHA-1 hash.
func New() *Digest {
	return blockhash.New(&core{})
}

// Sum returns the SHA-1 digest of data.
func Sum(data []byte) (sum [Size]byte) {
	d := New()
	d.Update(data)
	d.DigestInto(sum[:])
	return sum
}

var padding = blockhash.MDPadding{Marker: 0x80, LengthSize: 8, BigEndian: true}

type core struct {
	h [5]uint32
	w [80]uint32
}

func (c *core) BlockLength() blockhash.BlockLength { return blockhash.Fixed(BlockSize) }

func (c *core) DigestLength() int { return Size }

func (c *core) Reset() {
	c.h = [5]uint32{0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476, 0xc3d2e1f0}
}

func (c *core) Compress(block []byte, _ uint64) {
	w := &c.w
	for i := range 16 {
		w[i] = binary.BigEndian.Uint32(block[i*4:])
	}
	for i := 16; i < 80; i++ {
		w[i] = bits.RotateLeft32(w[i-3]^w[i-8]^w[i-14]^w[i-16], 1)
	}

	a, b, cc, d, e := c.h[0], c.h[1], c.h[2], c.h[3], c.h[4]

	for i := range 80 {
		var f, k uint32
		switch {
		case i < 20:
			f, k = (b&cc)|(^b&d), 0x5a827999
		case i < 40:
			f, k = b^cc^d, 0x6ed9eba1
		case i < 60:
			f, k = (b&cc)|(b&d)|(cc&d), 0x8f1bbcdc
		default:
			f, k = b^cc^d, 0xca62c1d6
		}

		tmp := bits.RotateLeft32(a, 5) + f + e + k + w[i]
		a, b, cc, d, e = tmp, a, bits.RotateLeft32(b, 30), cc, d
	}

	c.h[0] += a
	c.h[1] += b
	c.h[2] += cc
	c.h[3] += d
	c.h[4] += e
}

func (c *core) Finish(t *blockhash.Tail, out []byte) {
	t.MerkleDamgard(c, padding)
	blockhash.PutUint32s(out, binary.BigEndian, c.h[:]...)
}

func (c *core) Clone() *core {
	d := *c
	return &d
}

func (c *core) String() string { return "SHA-1" }
