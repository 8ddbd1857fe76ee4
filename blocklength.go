package blockhash

import "fmt"

// BlockLength is the block length of a hash function as seen by constructions like HMAC. It is either fixed, or
// derived from the length of a key by rounding it up to a multiple of a unit.
type BlockLength struct {
	unit    int
	derived bool
}

// Fixed returns a fixed block length of n bytes.
func Fixed(n int) BlockLength {
	if n <= 0 {
		panic(fmt.Sprintf("blockhash: invalid block length %d", n))
	}
	return BlockLength{unit: n}
}

// DerivedFromKey returns a block length which is derived from the key length by rounding it up to a multiple of n.
func DerivedFromKey(n int) BlockLength {
	if n <= 0 {
		panic(fmt.Sprintf("blockhash: invalid block length unit %d", n))
	}
	return BlockLength{unit: n, derived: true}
}

// Unit returns the fixed block length, or the unit of a derived one.
func (b BlockLength) Unit() int {
	return b.unit
}

// IsDerived returns true if the block length is derived from the key length.
func (b BlockLength) IsDerived() bool {
	return b.derived
}

// ForKey returns the block length to use with a key of keyLen bytes.
func (b BlockLength) ForKey(keyLen int) int {
	if !b.derived {
		return b.unit
	}
	return b.unit * ((keyLen + b.unit - 1) / b.unit)
}

func (b BlockLength) String() string {
	if b.derived {
		return fmt.Sprintf("derived(%d)", b.unit)
	}
	return fmt.Sprintf("fixed(%d)", b.unit)
}
