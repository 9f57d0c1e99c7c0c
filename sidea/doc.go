// Package sidea implements a simplified, teaching-grade variant of the IDEA
// block cipher.
//
// Each 4 byte block is widened to four 32-bit words and folded into a single
// output word by four forward rounds and a four step output transform, using
// modular addition, a rotate-based modular multiplication and XOR.  The four
// subkeys come straight from the first four key elements and are reused for
// every round and every block.
//
// This is not IDEA and offers no security.  There is no decryption.
//
//	c, err := sidea.NewCipher(key)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	words, err := c.EncryptAll(plaintext)
//
// Cipher values are safe for concurrent use as long as their fields are not
// changed while encrypting.
package sidea
