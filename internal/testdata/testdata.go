// Package testdata provides a deterministic random bit generator and other helpers for testing.
package testdata

import (
	"crypto/sha3"
	"strings"

	"github.com/tmthrgd/go-hex"
)

// DRBG is a deterministic random bit generator based on SHAKE128.
type DRBG struct {
	h *sha3.SHAKE
}

// New returns a new DRBG instance initialized with the given customization string.
func New(customization string) *DRBG {
	h := sha3.NewSHAKE128()
	_, _ = h.Write([]byte(customization))
	return &DRBG{h}
}

// Data returns n bytes of deterministic data from the DRBG.
func (d *DRBG) Data(n int) []byte {
	b := make([]byte, n)
	_, _ = d.h.Read(b)
	return b
}

// Intn returns a deterministic integer in [0, n).
func (d *DRBG) Intn(n int) int {
	var b [4]byte
	_, _ = d.h.Read(b[:])
	v := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	return int(v % uint32(n))
}

// Split divides p into consecutive chunks of pseudorandom lengths between 0 and max bytes.
func (d *DRBG) Split(p []byte, max int) [][]byte {
	var chunks [][]byte
	for len(p) > 0 {
		n := min(d.Intn(max+1), len(p))
		chunks = append(chunks, p[:n])
		p = p[n:]
	}
	return chunks
}

// Hex decodes a hex string, ignoring spaces. It panics on invalid input.
func Hex(s string) []byte {
	b, err := hex.DecodeString(strings.ReplaceAll(s, " ", ""))
	if err != nil {
		panic(err)
	}
	return b
}
