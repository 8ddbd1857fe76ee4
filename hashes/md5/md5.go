// Package md5 implements the MD5 hash function as defined in RFC 1321.
//
// MD5 is cryptographically broken and should only be used for compatibility with legacy protocols.
package md5

import (
	"encoding/binary"
	"math"
	"math/bits"

	"github.com/codahale/blockhash"
)

const (
	// Size is the size, in bytes, of an MD5 digest.
	Size = 16

	// BlockSize is the block size, in bytes, of MD5.
	BlockSize = 64
)

// Digest is an incremental MD5 hash.
type Digest = blockhash.Engine[*core]

// New returns a new MD5 hash.
func New() *Digest {
	return blockhash.New(&core{})
}

// Sum returns the MD5 digest of data.
func Sum(data []byte) (sum [Size]byte) {
	d := New()
	d.Update(data)
	d.DigestInto(sum[:])
	return sum
}

var padding = blockhash.MDPadding{Marker: 0x80, LengthSize: 8}

// k[i] is the integer part of 2^32 * |sin(i+1)|.
var k = func() (k [64]uint32) {
	for i := range k {
		k[i] = uint32(math.Floor(math.Abs(math.Sin(float64(i+1))) * (1 << 32)))
	}
	return k
}()

var shifts = [4][4]int{
	{7, 12, 17, 22},
	{5, 9, 14, 20},
	{4, 11, 16, 23},
	{6, 10, 15, 21},
}

type core struct {
	s [4]uint32
	x [16]uint32
}

func (c *core) BlockLength() blockhash.BlockLength { return blockhash.Fixed(BlockSize) }

func (c *core) DigestLength() int { return Size }

func (c *core) Reset() {
	c.s = [4]uint32{0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476}
}

func (c *core) Compress(block []byte, _ uint64) {
	x := &c.x
	for i := range x {
		x[i] = binary.LittleEndian.Uint32(block[i*4:])
	}

	a, b, cc, d := c.s[0], c.s[1], c.s[2], c.s[3]

	for i := range 64 {
		var f uint32
		var g int
		switch i / 16 {
		case 0:
			f, g = (b&cc)|(^b&d), i
		case 1:
			f, g = (d&b)|(^d&cc), (5*i+1)%16
		case 2:
			f, g = b^cc^d, (3*i+5)%16
		default:
			f, g = cc^(b|^d), (7*i)%16
		}

		f += a + k[i] + x[g]
		a, d, cc = d, cc, b
		b += bits.RotateLeft32(f, shifts[i/16][i%4])
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

func (c *core) String() string { return "MD5" }
