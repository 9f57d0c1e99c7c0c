package sidea

// Shared arithmetic.  Every value in the cipher is a Word and all of the
// operations below wrap modulo 2^32.

import (
	"math/bits"
)

// Word is the 32-bit value type used for blocks, subkeys and output
type Word uint32

// Modular addition, (a + b) mod 2^32
func ModAdd(a, b Word) Word {
	return a + b
}

// Modular multiplication done as shift-and-add.  Each set bit of b (low bit
// first) adds the current copy of a into the result, and the copy is rotated
// right one position after every bit rather than shifted left, so this is
// NOT the same as a*b.  ModMul(3, 5) == 0xC0000003.
func ModMul(a, b Word) Word {
	var result Word
	mask := a

	for i := 0; i < 32; i++ {
		if b&1 == 1 {
			result = ModAdd(result, mask)
		}
		mask = CircularShift(mask, 1)
		b >>= 1
	}

	return result
}

// Rotates value right by amount bits.  Negative amounts rotate left.
func CircularShift(value Word, amount int) Word {
	return Word(bits.RotateLeft32(uint32(value), -amount))
}

// Bitwise XOR
func ModXOR(a, b Word) Word {
	return a ^ b
}
