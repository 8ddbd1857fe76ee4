// Package hmac implements the keyed-hash message authentication code (HMAC) construction of RFC 2104 over any
// [blockhash.Cloner].
//
// An HMAC is itself a [blockhash.Engine]: input is buffered and forwarded block by block to the wrapped digest, which
// was primed with the inner pad, and finalization computes H(opad ‖ H(ipad ‖ m)). Because an HMAC is a Cloner too, it
// can wrap another HMAC.
//
// The pad length is the block length of the wrapped digest. For digests whose block length is derived from the key,
// the pad length is the key length rounded up to a multiple of the unit, and the key is never hashed.
package hmac

import (
	"crypto/subtle"
	"fmt"

	"github.com/codahale/blockhash"
	"github.com/codahale/blockhash/internal/mem"
)

const (
	ipadByte = 0x36
	opadByte = 0x5c

	// bufferLength is the number of bytes buffered before being forwarded to the wrapped digest.
	bufferLength = 64
)

// MAC is an incremental HMAC over a digest of type D.
type MAC[D blockhash.Cloner[D]] = blockhash.Engine[*Core[D]]

// New returns a new HMAC using the given digest and key. The digest is owned by the HMAC afterward.
func New[D blockhash.Cloner[D]](d D, key []byte) *MAC[D] {
	return blockhash.New(newCore(d, key, d.DigestLength()))
}

// NewTruncated returns a new HMAC using the given digest and key whose output is truncated to size bytes. It panics if
// size is negative or larger than the digest length of d.
func NewTruncated[D blockhash.Cloner[D]](d D, key []byte, size int) *MAC[D] {
	if size < 0 || size > d.DigestLength() {
		panic(fmt.Sprintf("hmac: invalid output length %d for a %d-byte digest", size, d.DigestLength()))
	}
	return blockhash.New(newCore(d, key, size))
}

// Equal compares two MACs for equality without leaking timing information.
func Equal(mac1, mac2 []byte) bool {
	return subtle.ConstantTimeCompare(mac1, mac2) == 1
}

// Core is the HMAC construction as a [blockhash.Core].
type Core[D blockhash.Cloner[D]] struct {
	d          D
	ipad, opad []byte
	size       int
	inner      []byte
}

func newCore[D blockhash.Cloner[D]](d D, key []byte, size int) *Core[D] {
	b := d.BlockLength().ForKey(len(key))

	d.Reset()
	if len(key) > b {
		key = d.DigestOf(key)
	}

	ipad := make([]byte, b)
	copy(ipad, key)
	opad := make([]byte, b)
	copy(opad, ipad)

	mem.XORByte(ipad, ipadByte)
	mem.XORByte(opad, opadByte)

	return &Core[D]{
		d:     d,
		ipad:  ipad,
		opad:  opad,
		size:  size,
		inner: make([]byte, d.DigestLength()),
	}
}

// BlockLength returns the block length of the wrapped digest.
func (c *Core[D]) BlockLength() blockhash.BlockLength {
	return c.d.BlockLength()
}

// BufferLength returns the number of bytes buffered before being forwarded to the wrapped digest.
func (c *Core[D]) BufferLength() int {
	return bufferLength
}

// DigestLength returns the size of the MAC in bytes.
func (c *Core[D]) DigestLength() int {
	return c.size
}

// Reset resets the wrapped digest and absorbs the inner pad.
func (c *Core[D]) Reset() {
	c.d.Reset()
	c.d.Update(c.ipad)
}

// Compress forwards block to the wrapped digest.
func (c *Core[D]) Compress(block []byte, _ uint64) {
	c.d.Update(block)
}

// Finish flushes the residual input and computes the outer hash.
func (c *Core[D]) Finish(t *blockhash.Tail, out []byte) {
	c.d.Update(t.Block[:t.N])
	c.d.DigestInto(c.inner)

	c.d.Update(c.opad)
	c.d.Update(c.inner)
	c.d.DigestInto(out)
}

// Clone returns a copy of the construction. The wrapped digest is cloned; the pads are shared.
func (c *Core[D]) Clone() *Core[D] {
	return &Core[D]{
		d:     c.d.Copy(),
		ipad:  c.ipad,
		opad:  c.opad,
		size:  c.size,
		inner: make([]byte, len(c.inner)),
	}
}

func (c *Core[D]) String() string {
	if c.size != c.d.DigestLength() {
		return fmt.Sprintf("HMAC(%v, %d)", c.d, c.size)
	}
	return fmt.Sprintf("HMAC(%v)", c.d)
}
