// Package sha3 implements the SHA-3 hash functions as defined in FIPS 202, and the original Keccak submission's
// padding as used by Ethereum and others.
//
// Both are sponges over Keccak-f[1600] with a capacity of twice the digest size. They differ only in the domain
// separation byte appended to the message: 0x06 for SHA-3, 0x01 for Keccak.
package sha3

import (
	"fmt"

	"github.com/codahale/blockhash"
	"github.com/codahale/blockhash/hazmat/keccak"
	"github.com/codahale/blockhash/internal/mem"
)

const (
	dsSHA3   = 0x06
	dsKeccak = 0x01
)

// Digest is an incremental SHA-3 or Keccak hash.
type Digest = blockhash.Engine[*core]

// New224 returns a new SHA3-224 hash.
func New224() *Digest { return newDigest(28, dsSHA3) }

// New256 returns a new SHA3-256 hash.
func New256() *Digest { return newDigest(32, dsSHA3) }

// New384 returns a new SHA3-384 hash.
func New384() *Digest { return newDigest(48, dsSHA3) }

// New512 returns a new SHA3-512 hash.
func New512() *Digest { return newDigest(64, dsSHA3) }

// NewLegacyKeccak224 returns a new Keccak-224 hash.
func NewLegacyKeccak224() *Digest { return newDigest(28, dsKeccak) }

// NewLegacyKeccak256 returns a new Keccak-256 hash.
func NewLegacyKeccak256() *Digest { return newDigest(32, dsKeccak) }

// NewLegacyKeccak384 returns a new Keccak-384 hash.
func NewLegacyKeccak384() *Digest { return newDigest(48, dsKeccak) }

// NewLegacyKeccak512 returns a new Keccak-512 hash.
func NewLegacyKeccak512() *Digest { return newDigest(64, dsKeccak) }

// Sum256 returns the SHA3-256 digest of data.
func Sum256(data []byte) (sum [32]byte) {
	d := New256()
	d.Update(data)
	d.DigestInto(sum[:])
	return sum
}

// Sum512 returns the SHA3-512 digest of data.
func Sum512(data []byte) (sum [64]byte) {
	d := New512()
	d.Update(data)
	d.DigestInto(sum[:])
	return sum
}

func newDigest(size int, ds byte) *Digest {
	return blockhash.New(&core{size: size, ds: ds})
}

type core struct {
	s    [200]byte
	size int
	ds   byte
}

func (c *core) rate() int { return 200 - 2*c.size }

func (c *core) BlockLength() blockhash.BlockLength { return blockhash.Fixed(c.rate()) }

func (c *core) DigestLength() int { return c.size }

func (c *core) Reset() {
	clear(c.s[:])
}

func (c *core) Compress(block []byte, _ uint64) {
	mem.XORInPlace(c.s[:len(block)], block)
	keccak.F1600(&c.s)
}

func (c *core) Finish(t *blockhash.Tail, out []byte) {
	t.Sponge(c, c.ds)
	copy(out, c.s[:c.size])
}

func (c *core) Clone() *core {
	d := *c
	return &d
}

func (c *core) String() string {
	if c.ds == dsKeccak {
		return fmt.Sprintf("Keccak-%d", c.size*8)
	}
	return fmt.Sprintf("SHA3-%d", c.size*8)
}
