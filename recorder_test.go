package blockhash_test

import (
	"encoding/binary"
	"slices"

	"github.com/codahale/blockhash"
)

// recorder is a Core which records every block it is given and, at finalization, the tail it was handed. Its digest
// is the number of bytes absorbed.
type recorder struct {
	unit, buffer int
	blocks       [][]byte
	indexes      []uint64
	tail         blockhash.Tail
}

func (r *recorder) BlockLength() blockhash.BlockLength { return blockhash.Fixed(r.unit) }

func (r *recorder) DigestLength() int { return 8 }

func (r *recorder) Reset() {
	r.blocks, r.indexes = nil, nil
}

func (r *recorder) Compress(block []byte, index uint64) {
	r.blocks = append(r.blocks, slices.Clone(block))
	r.indexes = append(r.indexes, index)
}

func (r *recorder) Finish(t *blockhash.Tail, out []byte) {
	r.tail = blockhash.Tail{Block: slices.Clone(t.Block[:t.N]), N: t.N, Index: t.Index}
	binary.BigEndian.PutUint64(out, t.Len())
}

func (r *recorder) Clone() *recorder {
	c := *r
	c.blocks = slices.Clone(r.blocks)
	c.indexes = slices.Clone(r.indexes)
	return &c
}

// buffered is a recorder which asks for a buffer larger than its block length.
type buffered struct {
	*recorder
}

func (b buffered) BufferLength() int { return b.buffer }

func (b buffered) Clone() buffered { return buffered{b.recorder.Clone()} }

// compressor counts and keeps copies of compressed blocks.
type compressor struct {
	blocks [][]byte
}

func (c *compressor) Compress(block []byte, _ uint64) {
	c.blocks = append(c.blocks, slices.Clone(block))
}
