package sha512_test

import (
	stdsha512 "crypto/sha512"
	"testing"

	"github.com/codahale/blockhash/hashes/sha512"
	"github.com/codahale/blockhash/internal/hashtest"
)

func TestVectors(t *testing.T) {
	// FIPS 180-4 examples.
	t.Run("SHA-512", func(t *testing.T) {
		hashtest.Vectors(t, sha512.New, []hashtest.Vector{
			{
				Name: "empty",
				Want: "cf83e1357eefb8bdf1542850d66d8007d620e4050b5715dc83f4a921d36ce9ce" +
					"47d0d13c5d85f2b0ff8318d2877eec2f63b931bd47417a81a538327af927da3e",
			},
			{
				Name: "abc",
				In:   []byte("abc"),
				Want: "ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a" +
					"2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f",
			},
			{
				Name: "896 bits",
				In: []byte("abcdefghbcdefghicdefghijdefghijkefghijklfghijklmghijklmnhijklmno" +
					"ijklmnopjklmnopqklmnopqrlmnopqrsmnopqrstnopqrstu"),
				Want: "8e959b75dae313da8cf4f72814fc143f8f7779c6eb9f7fa17299aeadb6889018" +
					"501d289e4900f7e4331b99dec4b5433ac7d329eeb6dd26545e96e55b874be909",
			},
		})
	})

	t.Run("SHA-384", func(t *testing.T) {
		hashtest.Vectors(t, sha512.New384, []hashtest.Vector{
			{
				Name: "abc",
				In:   []byte("abc"),
				Want: "cb00753f45a35e8bb5a03d699ac65007272c32ab0eded1631a8b605a43ff5bed" +
					"8086072ba1e7cc2358baeca134c825a7",
			},
		})
	})
}

func TestReference(t *testing.T) {
	for _, tc := range []struct {
		name string
		new  func() *sha512.Digest
		ref  func([]byte) []byte
	}{
		{"SHA-512", sha512.New, func(b []byte) []byte { s := stdsha512.Sum512(b); return s[:] }},
		{"SHA-384", sha512.New384, func(b []byte) []byte { s := stdsha512.Sum384(b); return s[:] }},
		{"SHA-512/224", sha512.New512_224, func(b []byte) []byte { s := stdsha512.Sum512_224(b); return s[:] }},
		{"SHA-512/256", sha512.New512_256, func(b []byte) []byte { s := stdsha512.Sum512_256(b); return s[:] }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			hashtest.Reference(t, tc.new, tc.ref)
		})
	}
}

func TestProperties(t *testing.T) {
	for _, tc := range []struct {
		name string
		new  func() *sha512.Digest
	}{
		{"SHA-512", sha512.New},
		{"SHA-384", sha512.New384},
		{"SHA-512/224", sha512.New512_224},
		{"SHA-512/256", sha512.New512_256},
	} {
		t.Run(tc.name, func(t *testing.T) {
			hashtest.Properties(t, tc.new)
		})
	}
}

func TestSum(t *testing.T) {
	msg := []byte("The quick brown fox jumps over the lazy dog")

	if got, want := sha512.Sum512(msg), stdsha512.Sum512(msg); got != want {
		t.Errorf("Sum512 = %x, want = %x", got, want)
	}
	if got, want := sha512.Sum384(msg), stdsha512.Sum384(msg); got != want {
		t.Errorf("Sum384 = %x, want = %x", got, want)
	}
	if got, want := sha512.Sum512_224(msg), stdsha512.Sum512_224(msg); got != want {
		t.Errorf("Sum512_224 = %x, want = %x", got, want)
	}
	if got, want := sha512.Sum512_256(msg), stdsha512.Sum512_256(msg); got != want {
		t.Errorf("Sum512_256 = %x, want = %x", got, want)
	}
}
