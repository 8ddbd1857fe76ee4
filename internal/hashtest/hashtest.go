// Package hashtest provides checks shared by the tests of every hash function built on blockhash.
package hashtest

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/codahale/blockhash"
	"github.com/codahale/blockhash/internal/testdata"
)

// Vector is a known-answer test vector.
type Vector struct {
	Name string
	In   []byte
	Want string // hex
}

// Vectors checks each vector one-shot, byte by byte and through Sum.
func Vectors[D blockhash.Cloner[D]](t *testing.T, newHash func() D, vectors []Vector) {
	t.Helper()

	for _, v := range vectors {
		t.Run(v.Name, func(t *testing.T) {
			want := testdata.Hex(v.Want)

			h := newHash()
			if got := h.DigestOf(v.In); !bytes.Equal(got, want) {
				t.Errorf("DigestOf = %x, want = %x", got, want)
			}

			for _, b := range v.In {
				h.UpdateByte(b)
			}
			if got := h.Digest(); !bytes.Equal(got, want) {
				t.Errorf("UpdateByte+Digest = %x, want = %x", got, want)
			}

			_, _ = h.Write(v.In)
			if got := h.Sum([]byte("prefix")); !bytes.Equal(got, append([]byte("prefix"), want...)) {
				t.Errorf("Sum = %x, want = prefix||%x", got, want)
			}
		})
	}
}

// Reference compares the hash against a reference implementation for every length up to three blocks and for
// pseudorandom messages written in pseudorandom chunks.
func Reference[D blockhash.Cloner[D]](t *testing.T, newHash func() D, ref func([]byte) []byte) {
	t.Helper()

	drbg := testdata.New("hashtest reference")
	h := newHash()
	bs := h.BlockSize()

	for n := range 3*bs + 2 {
		msg := drbg.Data(n)
		if got, want := h.DigestOf(msg), ref(msg); !bytes.Equal(got, want) {
			t.Fatalf("len=%d: digest = %x, want = %x", n, got, want)
		}
	}

	for range 20 {
		msg := drbg.Data(drbg.Intn(8 * bs))
		for _, chunk := range drbg.Split(msg, 2*bs) {
			h.Update(chunk)
		}
		if got, want := h.Digest(), ref(msg); !bytes.Equal(got, want) {
			t.Fatalf("len=%d (chunked): digest = %x, want = %x", len(msg), got, want)
		}
	}
}

// Properties checks the streaming, clone, reset and truncation guarantees of the engine.
func Properties[D blockhash.Cloner[D]](t *testing.T, newHash func() D) {
	t.Helper()

	drbg := testdata.New(fmt.Sprintf("hashtest properties %v", newHash()))
	bs := newHash().BlockSize()
	msg := drbg.Data(5*bs + 17)
	full := newHash().DigestOf(msg)

	t.Run("lengths", func(t *testing.T) {
		h := newHash()
		if got, want := h.Size(), h.DigestLength(); got != want {
			t.Errorf("Size() = %d, want = %d", got, want)
		}
		if got, want := len(h.Digest()), h.DigestLength(); got != want {
			t.Errorf("len(Digest()) = %d, want = %d", got, want)
		}
		if got, want := h.BlockSize(), h.BlockLength().Unit(); got != want {
			t.Errorf("BlockSize() = %d, want = %d", got, want)
		}
	})

	t.Run("chunk invariance", func(t *testing.T) {
		for i := range 10 {
			h := newHash()
			for j, chunk := range drbg.Split(msg, bs+3) {
				switch (i + j) % 3 {
				case 0:
					h.Update(chunk)
				case 1:
					_, _ = h.WriteString(string(chunk))
				default:
					for _, b := range chunk {
						h.UpdateByte(b)
					}
				}
			}
			if got, want := h.Digest(), full; !bytes.Equal(got, want) {
				t.Fatalf("split %d: digest = %x, want = %x", i, got, want)
			}
		}
	})

	t.Run("block boundaries", func(t *testing.T) {
		seen := make(map[string]int)
		for _, n := range []int{0, 1, bs - 1, bs, bs + 1, 2*bs - 1, 2 * bs, 2*bs + 1} {
			h := newHash()
			want := h.DigestOf(msg[:n])

			for _, chunk := range [][]byte{msg[:n/2], msg[n/2 : n]} {
				h.Update(chunk)
			}
			if got := h.Digest(); !bytes.Equal(got, want) {
				t.Errorf("len=%d: split digest = %x, want = %x", n, got, want)
			}

			if prev, ok := seen[string(want)]; ok {
				t.Errorf("len=%d and len=%d have the same digest %x", n, prev, want)
			}
			seen[string(want)] = n
		}
	})

	t.Run("reset", func(t *testing.T) {
		fresh := newHash().Digest()

		h := newHash()
		h.Update(msg)
		_ = h.Digest()
		if got, want := h.Digest(), fresh; !bytes.Equal(got, want) {
			t.Errorf("Digest() after Digest() = %x, want = %x", got, want)
		}

		h.Update(msg[:bs+1])
		h.Reset()
		if got, want := h.DigestOf(msg), full; !bytes.Equal(got, want) {
			t.Errorf("DigestOf() after Reset() = %x, want = %x", got, want)
		}
	})

	t.Run("copy", func(t *testing.T) {
		for _, n := range []int{0, 1, bs - 1, bs, bs + 1, 3*bs + 5} {
			prefix, suffixA, suffixB := msg[:n], msg[n:], []byte("a different suffix")

			h1 := newHash()
			h1.Update(prefix)
			h2 := h1.Copy()

			h1.Update(suffixA)
			h2.Update(suffixB)

			if got, want := h1.Digest(), full; !bytes.Equal(got, want) {
				t.Errorf("prefix=%d: original = %x, want = %x", n, got, want)
			}

			wantB := newHash().DigestOf(append(bytes.Clone(prefix), suffixB...))
			if got := h2.Digest(); !bytes.Equal(got, wantB) {
				t.Errorf("prefix=%d: copy = %x, want = %x", n, got, wantB)
			}
		}
	})

	t.Run("sum", func(t *testing.T) {
		h := newHash()
		h.Update(msg[:bs+1])

		s1 := h.Sum(nil)
		s2 := h.Sum(nil)
		if !bytes.Equal(s1, s2) {
			t.Errorf("Sum() = %x, then %x", s1, s2)
		}

		h.Update(msg[bs+1:])
		if got, want := h.Sum(nil), full; !bytes.Equal(got, want) {
			t.Errorf("Sum() = %x, want = %x", got, want)
		}
		if got, want := h.Digest(), full; !bytes.Equal(got, want) {
			t.Errorf("Digest() after Sum() = %x, want = %x", got, want)
		}
	})

	t.Run("truncation", func(t *testing.T) {
		h := newHash()
		size := h.DigestLength()

		for k := range size + 1 {
			out := make([]byte, k)
			h.Update(msg)
			if got, want := h.DigestInto(out), k; got != want {
				t.Errorf("DigestInto(%d bytes) = %d, want = %d", k, got, want)
			}
			if got, want := out, full[:k]; !bytes.Equal(got, want) {
				t.Errorf("DigestInto(%d bytes) wrote %x, want = %x", k, got, want)
			}
		}

		out := bytes.Repeat([]byte{0xAA}, size+8)
		h.Update(msg)
		if got, want := h.DigestInto(out), size; got != want {
			t.Errorf("DigestInto(%d bytes) = %d, want = %d", size+8, got, want)
		}
		if got, want := out[size:], bytes.Repeat([]byte{0xAA}, 8); !bytes.Equal(got, want) {
			t.Errorf("DigestInto wrote past the digest: %x", got)
		}
	})

	t.Run("read from", func(t *testing.T) {
		h := newHash()
		n, err := h.ReadFrom(bytes.NewReader(msg))
		if err != nil {
			t.Fatal(err)
		}
		if got, want := n, int64(len(msg)); got != want {
			t.Errorf("ReadFrom() = %d, want = %d", got, want)
		}
		if got, want := h.Digest(), full; !bytes.Equal(got, want) {
			t.Errorf("Digest() = %x, want = %x", got, want)
		}

		errFail := errors.New("read failed")
		n, err = h.ReadFrom(&testdata.ErrReader{Data: msg[:bs+1], Err: errFail})
		if !errors.Is(err, errFail) {
			t.Errorf("ReadFrom() err = %v, want = %v", err, errFail)
		}
		if got, want := n, int64(bs+1); got != want {
			t.Errorf("ReadFrom() = %d, want = %d", got, want)
		}

		h.Update(msg[bs+1:])
		if got, want := h.Digest(), full; !bytes.Equal(got, want) {
			t.Errorf("Digest() after failed ReadFrom() = %x, want = %x", got, want)
		}
	})
}
