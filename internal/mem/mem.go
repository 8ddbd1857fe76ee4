// Package mem provides XOR helpers shared by sponge absorption and HMAC pad derivation.
package mem

// XORInPlace sets dst[i] ^= src[i] for each i in dst. src must be at least as long as dst; bytes of src past
// len(dst) are ignored.
func XORInPlace(dst, src []byte) {
	for i, s := range src[:len(dst)] {
		dst[i] ^= s
	}
}

// XORByte sets dst[i] ^= b for each i.
func XORByte(dst []byte, b byte) {
	for i := range dst {
		dst[i] ^= b
	}
}
