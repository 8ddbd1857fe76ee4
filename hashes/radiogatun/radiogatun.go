// Package radiogatun implements the RadioGatún[32] and RadioGatún[64] hash functions.
//
// RadioGatún is a belt-and-mill permutation. Input is injected three words at a time and followed by one round; after
// the last (padded) input block, 16 blank rounds without input diffuse the state, and output is then extracted two
// mill words per further round. Input is buffered 13 input blocks at a time.
//
// RadioGatún has no natural block length for HMAC, so it reports a block length derived from the key, in units of
// its buffer size.
package radiogatun

import (
	"encoding/binary"
	"fmt"

	"github.com/codahale/blockhash"
)

const (
	// Size is the size, in bytes, of a RadioGatún digest.
	Size = 32

	// BlockSize32 is the size, in bytes, of the RadioGatún[32] input buffer.
	BlockSize32 = beltLength * 3 * 4

	// BlockSize64 is the size, in bytes, of the RadioGatún[64] input buffer.
	BlockSize64 = beltLength * 3 * 8

	millSize    = 19
	beltLength  = 13
	blankRounds = 16
)

// Digest32 is an incremental RadioGatún[32] hash.
type Digest32 = blockhash.Engine[*core[uint32]]

// Digest64 is an incremental RadioGatún[64] hash.
type Digest64 = blockhash.Engine[*core[uint64]]

// New32 returns a new RadioGatún[32] hash.
func New32() *Digest32 {
	return blockhash.New(&core[uint32]{})
}

// New64 returns a new RadioGatún[64] hash.
func New64() *Digest64 {
	return blockhash.New(&core[uint64]{})
}

// Sum32 returns the RadioGatún[32] digest of data.
func Sum32(data []byte) (sum [Size]byte) {
	d := New32()
	d.Update(data)
	d.DigestInto(sum[:])
	return sum
}

// Sum64 returns the RadioGatún[64] digest of data.
func Sum64(data []byte) (sum [Size]byte) {
	d := New64()
	d.Update(data)
	d.DigestInto(sum[:])
	return sum
}

type word interface {
	~uint32 | ~uint64
}

type core[W word] struct {
	mill [millSize]W
	belt [beltLength][3]W
}

func (c *core[W]) wordSize() int {
	var w W
	if uint64(^w) == 0xffffffff {
		return 4
	}
	return 8
}

func (c *core[W]) BlockLength() blockhash.BlockLength {
	return blockhash.DerivedFromKey(beltLength * 3 * c.wordSize())
}

func (c *core[W]) DigestLength() int { return Size }

func (c *core[W]) Reset() {
	clear(c.mill[:])
	clear(c.belt[:])
}

func (c *core[W]) Compress(block []byte, _ uint64) {
	step := 3 * c.wordSize()
	for len(block) > 0 {
		c.inject(block[:step])
		c.beat()
		block = block[step:]
	}
}

func (c *core[W]) Finish(t *blockhash.Tail, out []byte) {
	step := 3 * c.wordSize()

	t.Block[t.N] = 0x01
	t.ZeroFrom(t.N + 1)

	// Only the input blocks up to and including the one holding the marker are absorbed.
	end := (t.N/step + 1) * step
	for p := t.Block[:end]; len(p) > 0; p = p[step:] {
		c.inject(p[:step])
		c.beat()
	}

	for range blankRounds {
		c.beat()
	}

	for len(out) > 0 {
		c.beat()
		n := min(len(out), 2*c.wordSize())
		c.put(out[:n], c.mill[1], c.mill[2])
		out = out[n:]
	}
}

func (c *core[W]) Clone() *core[W] {
	d := *c
	return &d
}

func (c *core[W]) String() string {
	return fmt.Sprintf("RadioGatún[%d]", c.wordSize()*8)
}

func (c *core[W]) inject(p []byte) {
	for i := range 3 {
		w := c.load(p[i*c.wordSize():])
		c.belt[0][i] ^= w
		c.mill[i+16] ^= w
	}
}

// beat is the round function. Both feedforwards use the values from before the round.
func (c *core[W]) beat() {
	bits := uint(c.wordSize() * 8)

	q := c.belt[beltLength-1]
	copy(c.belt[1:], c.belt[:beltLength-1])
	c.belt[0] = q

	for i := range 12 {
		c.belt[i+1][i%3] ^= c.mill[i+1]
	}

	// γ
	var a [millSize]W
	for i := range millSize {
		a[i] = c.mill[i] ^ (c.mill[(i+1)%millSize] | ^c.mill[(i+2)%millSize])
	}

	// π with per-word rotation by i(i+1)/2
	var r uint
	for i := range millSize {
		r = (r + uint(i)) % bits
		x := a[(7*i)%millSize]
		c.mill[i] = x>>r | x<<((bits-r)%bits)
	}

	// θ
	for i := range millSize {
		a[i] = c.mill[i] ^ c.mill[(i+1)%millSize] ^ c.mill[(i+4)%millSize]
	}

	// ι
	a[0] ^= 1

	c.mill = a
	for i := range 3 {
		c.mill[i+13] ^= q[i]
	}
}

func (c *core[W]) load(p []byte) W {
	if c.wordSize() == 4 {
		return W(binary.LittleEndian.Uint32(p))
	}
	return W(binary.LittleEndian.Uint64(p))
}

func (c *core[W]) put(out []byte, words ...W) {
	if c.wordSize() == 4 {
		ws := make([]uint32, len(words))
		for i, w := range words {
			ws[i] = uint32(w)
		}
		blockhash.PutUint32s(out, binary.LittleEndian, ws...)
		return
	}

	ws := make([]uint64, len(words))
	for i, w := range words {
		ws[i] = uint64(w)
	}
	blockhash.PutUint64s(out, binary.LittleEndian, ws...)
}
