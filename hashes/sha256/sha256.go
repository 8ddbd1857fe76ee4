// Package sha256 implements the SHA-224 and SHA-256 hash functions as defined in FIPS 180-4.
package sha256

import (
	"encoding/binary"
	"math/bits"

	"github.com/codahale/blockhash"
)

const (
	// Size is the size, in bytes, of a SHA-256 digest.
	Size = 32

	// Size224 is the size, in bytes, of a SHA-224 digest.
	Size224 = 28

	// BlockSize is the block size, in bytes, of SHA-224 and SHA-256.
	BlockSize = 64
)

// Digest is an incremental SHA-224 or SHA-256 hash.
type Digest = blockhash.Engine[*core]

// New returns a new SHA-256 hash.
func New() *Digest {
	return blockhash.New(&core{iv: &iv256, size: Size})
}

// New224 returns a new SHA-224 hash.
func New224() *Digest {
	return blockhash.New(&core{iv: &iv224, size: Size224})
}

// Sum256 returns the SHA-256 digest of data.
func Sum256(data []byte) (sum [Size]byte) {
	d := New()
	d.Update(data)
	d.DigestInto(sum[:])
	return sum
}

// Sum224 returns the SHA-224 digest of data.
func Sum224(data []byte) (sum [Size224]byte) {
	d := New224()
	d.Update(data)
	d.DigestInto(sum[:])
	return sum
}

var (
	padding = blockhash.MDPadding{Marker: 0x80, LengthSize: 8, BigEndian: true}

	iv256 = [8]uint32{0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a, 0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19}
	iv224 = [8]uint32{0xc1059ed8, 0x367cd507, 0x3070dd17, 0xf70e5939, 0xffc00b31, 0x68581511, 0x64f98fa7, 0xbefa4fa4}
)

var k = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5, 0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3, 0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc, 0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7, 0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13, 0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3, 0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5, 0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208, 0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

type core struct {
	iv   *[8]uint32
	size int
	h    [8]uint32
	w    [64]uint32
}

func (c *core) BlockLength() blockhash.BlockLength { return blockhash.Fixed(BlockSize) }

func (c *core) DigestLength() int { return c.size }

func (c *core) Reset() {
	c.h = *c.iv
}

func (c *core) Compress(block []byte, _ uint64) {
	w := &c.w
	for i := range 16 {
		w[i] = binary.BigEndian.Uint32(block[i*4:])
	}
	for i := 16; i < 64; i++ {
		v1, v2 := w[i-2], w[i-15]
		s1 := bits.RotateLeft32(v1, -17) ^ bits.RotateLeft32(v1, -19) ^ (v1 >> 10)
		s0 := bits.RotateLeft32(v2, -7) ^ bits.RotateLeft32(v2, -18) ^ (v2 >> 3)
		w[i] = s1 + w[i-7] + s0 + w[i-16]
	}

	a, b, cc, d, e, f, g, h := c.h[0], c.h[1], c.h[2], c.h[3], c.h[4], c.h[5], c.h[6], c.h[7]

	for i := range 64 {
		t1 := h + (bits.RotateLeft32(e, -6) ^ bits.RotateLeft32(e, -11) ^ bits.RotateLeft32(e, -25)) +
			((e & f) ^ (^e & g)) + k[i] + w[i]
		t2 := (bits.RotateLeft32(a, -2) ^ bits.RotateLeft32(a, -13) ^ bits.RotateLeft32(a, -22)) +
			((a & b) ^ (a & cc) ^ (b & cc))
		h, g, f, e, d, cc, b, a = g, f, e, d+t1, cc, b, a, t1+t2
	}

	c.h[0] += a
	c.h[1] += b
	c.h[2] += cc
	c.h[3] += d
	c.h[4] += e
	c.h[5] += f
	c.h[6] += g
	c.h[7] += h
}

func (c *core) Finish(t *blockhash.Tail, out []byte) {
	t.MerkleDamgard(c, padding)
	blockhash.PutUint32s(out, binary.BigEndian, c.h[:]...)
}

func (c *core) Clone() *core {
	d := *c
	return &d
}

func (c *core) String() string {
	if c.size == Size224 {
		return "SHA-224"
	}
	return "SHA-256"
}
