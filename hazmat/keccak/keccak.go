// Package keccak provides the Keccak-f[1600] permutation and its reduced-round variant Keccak-p[1600,12].
package keccak

import (
	"encoding/binary"
	"math/bits"
)

// F1600 applies the full 24-round Keccak-f[1600] permutation to the state.
func F1600(state *[200]byte) {
	permute(state, 24)
}

// P1600 applies the Keccak-p[1600, 12] permutation to the state.
func P1600(state *[200]byte) {
	permute(state, 12)
}

// permute applies the last n rounds of Keccak-f[1600] to the state. n must be between 1 and 24.
func permute(state *[200]byte, n int) {
	if n < 1 || n > 24 {
		panic("keccak: invalid round count")
	}
	f1600Generic(state, n)
}

var rc = [24]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808A, 0x8000000080008000,
	0x000000000000808B, 0x0000000080000001, 0x8000000080008081, 0x8000000000008009,
	0x000000000000008A, 0x0000000000000088, 0x0000000080008009, 0x000000008000000A,
	0x000000008000808B, 0x800000000000008B, 0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080, 0x000000000000800A, 0x800000008000000A,
	0x8000000080008081, 0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

// rho offsets, indexed by x+5y.
var rotc = [25]int{
	0, 1, 62, 28, 27,
	36, 44, 6, 55, 20,
	3, 10, 43, 25, 39,
	41, 45, 15, 21, 8,
	18, 2, 61, 56, 14,
}

func f1600Generic(state *[200]byte, rounds int) {
	var a [25]uint64
	for i := range a {
		a[i] = binary.LittleEndian.Uint64(state[i*8:])
	}

	for r := 24 - rounds; r < 24; r++ {
		// θ
		var c [5]uint64
		for x := range 5 {
			c[x] = a[x] ^ a[x+5] ^ a[x+10] ^ a[x+15] ^ a[x+20]
		}
		for x := range 5 {
			d := c[(x+4)%5] ^ bits.RotateLeft64(c[(x+1)%5], 1)
			for y := 0; y < 25; y += 5 {
				a[y+x] ^= d
			}
		}

		// ρ and π
		var b [25]uint64
		for x := range 5 {
			for y := range 5 {
				b[y+5*((2*x+3*y)%5)] = bits.RotateLeft64(a[x+5*y], rotc[x+5*y])
			}
		}

		// χ
		for y := 0; y < 25; y += 5 {
			for x := range 5 {
				a[y+x] = b[y+x] ^ (^b[y+(x+1)%5] & b[y+(x+2)%5])
			}
		}

		// ι
		a[0] ^= rc[r]
	}

	for i, v := range a {
		binary.LittleEndian.PutUint64(state[i*8:], v)
	}
}
