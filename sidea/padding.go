package sidea

import (
	"fmt"
	"strings"
)

// What to do with a trailing partial block
type Padding int

const (
	// Refuse input that is not a whole number of blocks
	PadReject Padding = iota
	// Fill the final partial block with zero bytes
	PadZero
	// Drop the final partial block
	PadTruncate
)

var paddingNames = map[Padding]string{
	PadReject:   "reject",
	PadZero:     "zero",
	PadTruncate: "truncate",
}

func (p Padding) String() string {
	if name, ok := paddingNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Padding(%d)", int(p))
}

// Looks a policy up by the name String returns
func ParsePadding(name string) (Padding, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for p, n := range paddingNames {
		if n == name {
			return p, nil
		}
	}
	return PadReject, fmt.Errorf("%w: %q", ErrUnknownPadding, name)
}

// Returns src sized to whole blocks.  src itself is never modified; PadZero
// copies into a new slice.
func (p Padding) apply(src []byte) ([]byte, error) {
	rem := len(src) % BlockSize
	if rem == 0 {
		return src, nil
	}

	switch p {
	case PadZero:
		padded := make([]byte, len(src)+BlockSize-rem)
		copy(padded, src)
		return padded, nil
	case PadTruncate:
		return src[:len(src)-rem], nil
	case PadReject:
		return nil, fmt.Errorf("%w: %d bytes leaves %d over", ErrMalformedBlock, len(src), rem)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownPadding, p)
	}
}
