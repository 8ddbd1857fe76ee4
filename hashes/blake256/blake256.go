// Package blake256 implements the BLAKE-224 and BLAKE-256 hash functions (SHA-3 finalists, final round version).
//
// BLAKE feeds the number of message bits processed so far into every compression as a counter, so its finalization
// decides per block which counter value to use, and sets a domain bit before the length field for BLAKE-256.
package blake256

import (
	"encoding/binary"
	"math/bits"

	"github.com/codahale/blockhash"
)

const (
	// Size is the size, in bytes, of a BLAKE-256 digest.
	Size = 32

	// Size224 is the size, in bytes, of a BLAKE-224 digest.
	Size224 = 28

	// BlockSize is the block size, in bytes, of BLAKE-224 and BLAKE-256.
	BlockSize = 64

	rounds = 14
)

// Digest is an incremental BLAKE-224 or BLAKE-256 hash.
type Digest = blockhash.Engine[*core]

// New returns a new BLAKE-256 hash.
func New() *Digest {
	return blockhash.New(&core{iv: &iv256, size: Size})
}

// New224 returns a new BLAKE-224 hash.
func New224() *Digest {
	return blockhash.New(&core{iv: &iv224, size: Size224})
}

// Sum256 returns the BLAKE-256 digest of data.
func Sum256(data []byte) (sum [Size]byte) {
	d := New()
	d.Update(data)
	d.DigestInto(sum[:])
	return sum
}

// Sum224 returns the BLAKE-224 digest of data.
func Sum224(data []byte) (sum [Size224]byte) {
	d := New224()
	d.Update(data)
	d.DigestInto(sum[:])
	return sum
}

var (
	iv256 = [8]uint32{0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a, 0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19}
	iv224 = [8]uint32{0xc1059ed8, 0x367cd507, 0x3070dd17, 0xf70e5939, 0xffc00b31, 0x68581511, 0x64f98fa7, 0xbefa4fa4}

	u256 = [16]uint32{
		0x243f6a88, 0x85a308d3, 0x13198a2e, 0x03707344, 0xa4093822, 0x299f31d0, 0x082efa98, 0xec4e6c89,
		0x452821e6, 0x38d01377, 0xbe5466cf, 0x34e90c6c, 0xc0ac29b7, 0xc97c50dd, 0x3f84d5b5, 0xb5470917,
	}

	sigma = [10][16]uint8{
		{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
		{14, 10, 4, 8, 9, 15, 13, 6, 1, 12, 0, 2, 11, 7, 5, 3},
		{11, 8, 12, 0, 5, 2, 15, 13, 10, 14, 3, 6, 7, 1, 9, 4},
		{7, 9, 3, 1, 13, 12, 11, 14, 2, 6, 5, 10, 4, 0, 15, 8},
		{9, 0, 5, 7, 2, 4, 10, 15, 14, 1, 11, 12, 6, 8, 3, 13},
		{2, 12, 6, 10, 0, 11, 8, 3, 4, 13, 7, 5, 15, 14, 1, 9},
		{12, 5, 1, 15, 14, 13, 4, 10, 0, 7, 6, 3, 9, 2, 8, 11},
		{13, 11, 7, 14, 12, 1, 3, 9, 5, 0, 15, 4, 8, 6, 2, 10},
		{6, 15, 14, 9, 11, 3, 0, 8, 12, 2, 13, 7, 1, 4, 10, 5},
		{10, 2, 8, 4, 7, 6, 1, 5, 15, 11, 9, 14, 3, 12, 13, 0},
	}
)

type core struct {
	iv   *[8]uint32
	size int
	h    [8]uint32
	m    [16]uint32
}

func (c *core) BlockLength() blockhash.BlockLength { return blockhash.Fixed(BlockSize) }

func (c *core) DigestLength() int { return c.size }

func (c *core) Reset() {
	c.h = *c.iv
}

// Compress processes a block which is entirely message, so the counter is the number of bits up to its end.
func (c *core) Compress(block []byte, index uint64) {
	c.compress(block, (index+1)*BlockSize*8)
}

func (c *core) Finish(t *blockhash.Tail, out []byte) {
	l := t.Bits().Lo

	// A final block without message bits is compressed with a zero counter.
	counter := l
	if t.N == 0 {
		counter = 0
	}

	t.Block[t.N] = 0x80
	t.ZeroFrom(t.N + 1)

	if t.N > 55 {
		c.compress(t.Block, l)
		t.ZeroFrom(0)
		counter = 0
	}

	if c.size == Size {
		t.Block[55] |= 0x01
	}
	binary.BigEndian.PutUint64(t.Block[56:], l)
	c.compress(t.Block, counter)

	blockhash.PutUint32s(out, binary.BigEndian, c.h[:]...)
}

func (c *core) Clone() *core {
	d := *c
	return &d
}

func (c *core) String() string {
	if c.size == Size224 {
		return "BLAKE-224"
	}
	return "BLAKE-256"
}

func (c *core) compress(block []byte, counter uint64) {
	m := &c.m
	for i := range m {
		m[i] = binary.BigEndian.Uint32(block[i*4:])
	}

	t0, t1 := uint32(counter), uint32(counter>>32)

	var v [16]uint32
	copy(v[:8], c.h[:])
	v[8], v[9], v[10], v[11] = u256[0], u256[1], u256[2], u256[3]
	v[12], v[13], v[14], v[15] = t0^u256[4], t0^u256[5], t1^u256[6], t1^u256[7]

	for r := range rounds {
		s := &sigma[r%10]
		g(&v, m, s, 0, 0, 4, 8, 12)
		g(&v, m, s, 1, 1, 5, 9, 13)
		g(&v, m, s, 2, 2, 6, 10, 14)
		g(&v, m, s, 3, 3, 7, 11, 15)
		g(&v, m, s, 4, 0, 5, 10, 15)
		g(&v, m, s, 5, 1, 6, 11, 12)
		g(&v, m, s, 6, 2, 7, 8, 13)
		g(&v, m, s, 7, 3, 4, 9, 14)
	}

	for i := range c.h {
		c.h[i] ^= v[i] ^ v[i+8]
	}
}

func g(v *[16]uint32, m *[16]uint32, s *[16]uint8, i, a, b, c, d int) {
	x, y := s[2*i], s[2*i+1]

	v[a] += v[b] + (m[x] ^ u256[y])
	v[d] = bits.RotateLeft32(v[d]^v[a], -16)
	v[c] += v[d]
	v[b] = bits.RotateLeft32(v[b]^v[c], -12)

	v[a] += v[b] + (m[y] ^ u256[x])
	v[d] = bits.RotateLeft32(v[d]^v[a], -8)
	v[c] += v[d]
	v[b] = bits.RotateLeft32(v[b]^v[c], -7)
}
