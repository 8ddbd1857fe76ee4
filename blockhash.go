// Package blockhash implements a streaming digest engine shared by block-oriented hash functions.
//
// An [Engine] buffers input until a full block is available, hands each block to an algorithm-specific [Core] as soon
// as it is complete, and asks the Core to pad the residual input and extract output when a digest is requested. The
// Core never sees the buffering; the Engine never interprets the Core's state. This lets Merkle–Damgård functions,
// sponges and permutations with blank rounds share one absorb/finalize path and one set of chunking guarantees.
//
// Engines are not safe for concurrent use. [Engine.Copy] returns a fully independent clone which may be driven from a
// different goroutine.
package blockhash

import (
	"fmt"
	"hash"
	"io"
	"slices"
)

// Compressor processes exactly one block of input.
type Compressor interface {
	// Compress absorbs block into the state. The length of block always equals the engine's buffer length. index is
	// the number of blocks compressed since the last reset. Implementations must not retain block.
	Compress(block []byte, index uint64)
}

// Core is the algorithm-specific part of a hash function: its state, its compression function and its finalization.
//
// C is the concrete type implementing Core, which lets [Engine.Copy] return a statically-typed clone.
type Core[C any] interface {
	Compressor

	// BlockLength returns the block length reported to callers such as HMAC.
	BlockLength() BlockLength

	// DigestLength returns the size of the digest in bytes.
	DigestLength() int

	// Reset reinitializes the state.
	Reset()

	// Finish pads the residual input held by t, compresses the final block(s) and writes exactly len(out) bytes of
	// output, where len(out) equals DigestLength. The engine resets the Core afterward.
	Finish(t *Tail, out []byte)

	// Clone returns a deep copy of the state.
	Clone() C
}

// Buffered is implemented by cores which want a number of bytes per Compress call other than the unit of their
// reported block length.
type Buffered interface {
	BufferLength() int
}

// Hash is the interface shared by every engine, regardless of algorithm.
type Hash interface {
	hash.Hash
	io.StringWriter
	io.ReaderFrom

	// Update absorbs p.
	Update(p []byte)

	// UpdateByte absorbs a single byte.
	UpdateByte(b byte)

	// Digest finalizes the hash, returns the digest and resets the hash.
	Digest() []byte

	// DigestOf absorbs p, then finalizes the hash, returns the digest and resets the hash.
	DigestOf(p []byte) []byte

	// DigestInto finalizes the hash into out, resets the hash and returns the number of bytes written. If out is
	// shorter than the digest, the digest is truncated.
	DigestInto(out []byte) int

	// DigestLength returns the size of the digest in bytes.
	DigestLength() int

	// BlockLength returns the block length of the hash.
	BlockLength() BlockLength
}

// Cloner is a [Hash] which can produce an independent copy of itself.
type Cloner[D any] interface {
	Hash

	// Copy returns an independent clone of the hash at its current position.
	Copy() D
}

// Engine is a streaming hash built from a [Core].
type Engine[C Core[C]] struct {
	core   C
	block  []byte
	n      int
	blocks uint64
}

// New returns a new Engine using the given core. The core is reset before use.
func New[C Core[C]](core C) *Engine[C] {
	size := core.BlockLength().Unit()
	if b, ok := any(core).(Buffered); ok {
		size = b.BufferLength()
	}

	if size <= 0 {
		panic(fmt.Sprintf("blockhash: invalid buffer length %d", size))
	}

	e := &Engine[C]{
		core:  core,
		block: make([]byte, size),
	}
	e.Reset()
	return e
}

// Core returns the engine's core.
func (e *Engine[C]) Core() C {
	return e.core
}

// Reset returns the engine to its initial state.
func (e *Engine[C]) Reset() {
	e.core.Reset()
	clear(e.block)
	e.n = 0
	e.blocks = 0
}

// Update absorbs p. Complete blocks are compressed immediately; at most one partial block is buffered.
func (e *Engine[C]) Update(p []byte) {
	bl := len(e.block)

	if e.n > 0 {
		c := copy(e.block[e.n:], p)
		e.n += c
		p = p[c:]
		if e.n < bl {
			return
		}
		e.compress(e.block)
		e.n = 0
	}

	for len(p) >= bl {
		e.compress(p[:bl:bl])
		p = p[bl:]
	}

	e.n = copy(e.block, p)
}

// UpdateByte absorbs a single byte.
func (e *Engine[C]) UpdateByte(b byte) {
	e.block[e.n] = b
	e.n++
	if e.n == len(e.block) {
		e.compress(e.block)
		e.n = 0
	}
}

// Write absorbs p. It never returns an error.
func (e *Engine[C]) Write(p []byte) (int, error) {
	e.Update(p)
	return len(p), nil
}

// WriteString absorbs s. It never returns an error.
func (e *Engine[C]) WriteString(s string) (int, error) {
	n := len(s)
	for len(s) > 0 {
		c := copy(e.block[e.n:], s)
		e.n += c
		s = s[c:]
		if e.n == len(e.block) {
			e.compress(e.block)
			e.n = 0
		}
	}
	return n, nil
}

// ReadFrom absorbs data from r until EOF. Data is read directly into the block buffer. Any error other than io.EOF is
// returned, and the data read before it remains absorbed.
func (e *Engine[C]) ReadFrom(r io.Reader) (int64, error) {
	var total int64
	for {
		n, err := r.Read(e.block[e.n:])
		total += int64(n)
		e.n += n
		if e.n == len(e.block) {
			e.compress(e.block)
			e.n = 0
		}

		if err == io.EOF {
			return total, nil
		} else if err != nil {
			return total, err
		}
	}
}

// Digest finalizes the hash, returns the digest and resets the engine.
func (e *Engine[C]) Digest() []byte {
	out := make([]byte, e.core.DigestLength())
	e.finish(out)
	return out
}

// DigestOf absorbs p, then finalizes the hash, returns the digest and resets the engine.
func (e *Engine[C]) DigestOf(p []byte) []byte {
	e.Update(p)
	return e.Digest()
}

// DigestInto finalizes the hash into out, resets the engine and returns the number of bytes written. If out is shorter
// than the digest, only the first len(out) bytes of the digest are written.
func (e *Engine[C]) DigestInto(out []byte) int {
	size := e.core.DigestLength()
	if len(out) >= size {
		e.finish(out[:size])
		return size
	}

	full := make([]byte, size)
	e.finish(full)
	return copy(out, full)
}

// Sum appends the digest of the data absorbed so far to b and returns the resulting slice. Unlike [Engine.Digest], it
// does not change the state of the engine.
func (e *Engine[C]) Sum(b []byte) []byte {
	return append(b, e.Copy().Digest()...)
}

// Copy returns an independent clone of the engine at its current position.
func (e *Engine[C]) Copy() *Engine[C] {
	return &Engine[C]{
		core:   e.core.Clone(),
		block:  slices.Clone(e.block),
		n:      e.n,
		blocks: e.blocks,
	}
}

// Size returns the size of the digest in bytes.
func (e *Engine[C]) Size() int {
	return e.core.DigestLength()
}

// DigestLength returns the size of the digest in bytes.
func (e *Engine[C]) DigestLength() int {
	return e.core.DigestLength()
}

// BlockSize returns the unit of the engine's block length.
func (e *Engine[C]) BlockSize() int {
	return e.core.BlockLength().Unit()
}

// BlockLength returns the block length reported by the core.
func (e *Engine[C]) BlockLength() BlockLength {
	return e.core.BlockLength()
}

func (e *Engine[C]) String() string {
	if s, ok := any(e.core).(fmt.Stringer); ok {
		return fmt.Sprintf("blockhash.Engine(%s)", s)
	}
	return "blockhash.Engine"
}

func (e *Engine[C]) compress(block []byte) {
	e.core.Compress(block, e.blocks)
	e.blocks++
}

func (e *Engine[C]) finish(out []byte) {
	t := Tail{Block: e.block, N: e.n, Index: e.blocks}
	e.core.Finish(&t, out)
	e.Reset()
}
