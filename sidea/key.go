package sidea

// Key handling.  The master key is a sequence of bit values, either the
// characters '0'/'1' typed by a user or raw 0x00/0x01 bytes from RandomKey.
// Subkeys are the first four elements widened to Words, byte values and all,
// so '1' becomes 49 and 0x01 becomes 1.

import (
	"fmt"
	"math/rand"
)

// Number of elements in a full master key
const KeySize = 32

// Number of subkeys consumed by the round transform
const SubkeyCount = 4

// Z1..Z4.  One set serves every round of every block.
type SubkeySet [SubkeyCount]Word

// Derives the subkey set from the first four elements of the key
func DeriveSubkeys(key []byte) (SubkeySet, error) {
	var z SubkeySet
	if len(key) < SubkeyCount {
		return z, fmt.Errorf("%w: have %d elements, need %d", ErrInvalidKeyLength, len(key), SubkeyCount)
	}

	for i := range z {
		z[i] = Word(key[i])
	}

	return z, nil
}

func isBit(b byte) bool {
	return b == '0' || b == '1' || b == 0 || b == 1
}

// Reports whether key is a full KeySize sequence made only of bits
func ValidateKey(key []byte) bool {
	if len(key) != KeySize {
		return false
	}

	for _, b := range key {
		if !isBit(b) {
			return false
		}
	}

	return true
}

// The legacy console check: KeySize-1 elements, accepted as soon as one
// element holds the integer value 0 or 1.  Typed
// characters '0' and '1' never satisfy it, so a typed key is almost always
// rejected and replaced by a random one.
func ValidateKeyLegacy(key []byte) bool {
	if len(key) != KeySize-1 {
		return false
	}

	for _, b := range key {
		if b == 1 || b == 0 {
			return true
		}
	}

	return false
}

// Generates a size element key of 0x00/0x01 values from rng
func RandomKey(rng *rand.Rand, size int) []byte {
	key := make([]byte, size)
	for i := range key {
		key[i] = byte(rng.Intn(2))
	}
	return key
}

// Renders raw 0x00/0x01 elements as '0'/'1' for display
func FormatKey(key []byte) string {
	out := make([]byte, len(key))
	for i, b := range key {
		switch b {
		case 0, 1:
			out[i] = '0' + b
		default:
			out[i] = b
		}
	}
	return string(out)
}
