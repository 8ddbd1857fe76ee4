// Package turboshake implements TurboSHAKE128 as specified in RFC 9861, as a fixed-output-length hash.
//
// TurboSHAKE128 is a sponge over the Keccak-p[1600,12] permutation with a rate of 168 bytes. The output length is
// chosen at construction and may exceed the rate, in which case the state is permuted between output blocks.
package turboshake

import (
	"fmt"

	"github.com/codahale/blockhash"
	"github.com/codahale/blockhash/hazmat/keccak"
	"github.com/codahale/blockhash/internal/mem"
)

// Rate is the TurboSHAKE128 rate in bytes (200 - 32).
const Rate = 168

// Digest is an incremental TurboSHAKE128 hash with a fixed output length.
type Digest = blockhash.Engine[*core]

// New returns a new TurboSHAKE128 hash with the given domain separation byte and output length in bytes. The domain
// separation byte must be in the range [0x01, 0x7F].
func New(ds byte, size int) *Digest {
	if ds < 0x01 || ds > 0x7f {
		panic(fmt.Sprintf("turboshake: invalid domain separation byte %#02x", ds))
	}

	if size <= 0 {
		panic(fmt.Sprintf("turboshake: invalid output length %d", size))
	}

	return blockhash.New(&core{ds: ds, size: size})
}

// Sum computes TurboSHAKE128(msg, ds, outLen) and returns the result.
func Sum(msg []byte, ds byte, outLen int) []byte {
	return New(ds, outLen).DigestOf(msg)
}

type core struct {
	s    [200]byte
	ds   byte
	size int
}

func (c *core) BlockLength() blockhash.BlockLength { return blockhash.Fixed(Rate) }

func (c *core) DigestLength() int { return c.size }

func (c *core) Reset() {
	clear(c.s[:])
}

func (c *core) Compress(block []byte, _ uint64) {
	mem.XORInPlace(c.s[:Rate], block)
	keccak.P1600(&c.s)
}

func (c *core) Finish(t *blockhash.Tail, out []byte) {
	t.Sponge(c, c.ds)
	for {
		n := copy(out, c.s[:Rate])
		out = out[n:]
		if len(out) == 0 {
			return
		}
		keccak.P1600(&c.s)
	}
}

func (c *core) Clone() *core {
	d := *c
	return &d
}

func (c *core) String() string {
	return fmt.Sprintf("TurboSHAKE128(%#02x, %d)", c.ds, c.size)
}
