package sidea

import (
	"crypto/subtle"

	"github.com/aead/cmac"
)

// Number of bytes in a MAC block, four cipher lanes side by side
const MACBlockSize = 4 * BlockSize

// Wraps a cipher in the 16 byte block shape CMAC needs.  Each 4 byte lane
// goes through the cipher on its own and is replaced by its output word.
// Note that Decrypt doesn't exist for this transform, but CMAC only ever
// calls Encrypt.
type ForMAC struct {
	c *Cipher
}

// Generates the MAC view of the cipher
func (c *Cipher) ForMAC() *ForMAC {
	return &ForMAC{c}
}

func (m *ForMAC) BlockSize() int {
	return MACBlockSize
}

// Encrypts the four lanes of a MAC block.  dst and src may overlap exactly.
func (m *ForMAC) Encrypt(dst, src []byte) {
	for i := 0; i < MACBlockSize; i += BlockSize {
		m.c.Encrypt(dst[i:i+BlockSize], src[i:i+BlockSize])
	}
}

func (m *ForMAC) Decrypt(dst, src []byte) {
	panic("sidea: the transform has no inverse")
}

// Convenience function for doing a CMAC
func (m *ForMAC) CMAC(msg []byte) []byte {
	h, err := cmac.NewWithTagSize(m, MACBlockSize)
	if err != nil {
		panic(err)
	}
	h.Write(msg)
	return h.Sum(nil)
}

// Convenience function for an 8 byte tag made of the odd bytes of the CMAC
func (m *ForMAC) ShortCMAC(msg []byte) []byte {
	mac := m.CMAC(msg)
	return []byte{mac[1], mac[3], mac[5], mac[7], mac[9], mac[11], mac[13], mac[15]}
}

// Checks a full or short tag against msg in constant time
func (m *ForMAC) Verify(tag, msg []byte) bool {
	var want []byte
	switch len(tag) {
	case MACBlockSize:
		want = m.CMAC(msg)
	case MACBlockSize / 2:
		want = m.ShortCMAC(msg)
	default:
		return false
	}
	return subtle.ConstantTimeCompare(tag, want) == 1
}
