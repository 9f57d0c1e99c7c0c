package sidea

import (
	"encoding/binary"
	"sync"
)

type Cipher struct {
	Subkeys SubkeySet
	Padding Padding // Applied by EncryptAll to a trailing partial block
	Workers int     // Goroutines used by EncryptAll; 0 or 1 runs inline
}

// Creates a cipher for the given master key.  The subkeys are derived once
// here and reused for every block.
func NewCipher(key []byte) (*Cipher, error) {
	z, err := DeriveSubkeys(key)
	if err != nil {
		return nil, err
	}

	return &Cipher{
		Subkeys: z,
		Padding: PadReject,
	}, nil
}

// Number of bytes in a block
func (c *Cipher) BlockSize() int {
	return BlockSize
}

/* Fundamental Primitives */

// Encrypts one block, returning its output word
func (c *Cipher) EncryptBlock(src []byte) Word {
	return Transform(NewBlock(src), c.Subkeys)
}

// Same as EncryptBlock, but keeps every intermediate mix value
func (c *Cipher) TraceBlock(src []byte) Trace {
	return TransformTrace(NewBlock(src), c.Subkeys)
}

// Encrypts the full blocks of src into dst, one word per block.  Based on
// the smaller of src/dst.  Returns the number of blocks written.
func (c *Cipher) EncryptBlocks(dst []Word, src []byte) int {
	numblocks := len(src) / BlockSize
	if len(dst) < numblocks {
		numblocks = len(dst)
	}

	for i := 0; i < numblocks; i++ {
		blockstart := i * BlockSize
		dst[i] = c.EncryptBlock(src[blockstart : blockstart+BlockSize])
	}

	return numblocks
}

/* cipher.Block style single block */

// Encrypts a single block; dst receives the output word big-endian.  There
// is no Decrypt: the transform folds four words into one.
func (c *Cipher) Encrypt(dst, src []byte) {
	w := c.EncryptBlock(src[0:BlockSize])
	binary.BigEndian.PutUint32(dst[0:BlockSize], uint32(w))
}

/* Convenience functions */

// Encrypts the entire message, one word per block, in input order.  The
// padding policy is applied before any block is processed, so an error
// means nothing was encrypted.
func (c *Cipher) EncryptAll(src []byte) ([]Word, error) {
	src, err := c.Padding.apply(src)
	if err != nil {
		return nil, err
	}

	numblocks := len(src) / BlockSize
	dst := make([]Word, numblocks)

	workers := c.Workers
	if workers > numblocks {
		workers = numblocks
	}
	if workers <= 1 {
		c.EncryptBlocks(dst, src)
		return dst, nil
	}

	// Blocks are independent, so each worker takes a contiguous run and
	// writes straight into its own part of dst.
	per := (numblocks + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < numblocks; start += per {
		end := start + per
		if end > numblocks {
			end = numblocks
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			c.EncryptBlocks(dst[start:end], src[start*BlockSize:end*BlockSize])
		}(start, end)
	}
	wg.Wait()

	return dst, nil
}

// Traces every block of the message after padding, in input order
func (c *Cipher) TraceAll(src []byte) ([]Trace, error) {
	src, err := c.Padding.apply(src)
	if err != nil {
		return nil, err
	}

	traces := make([]Trace, 0, len(src)/BlockSize)
	for i := 0; i < len(src); i += BlockSize {
		traces = append(traces, c.TraceBlock(src[i:i+BlockSize]))
	}
	return traces, nil
}

// Encrypts src under key, rejecting input that is not whole blocks
func Encrypt(src, key []byte) ([]Word, error) {
	c, err := NewCipher(key)
	if err != nil {
		return nil, err
	}
	return c.EncryptAll(src)
}
