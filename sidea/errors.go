package sidea

import "errors"

var (
	// ErrInvalidKeyLength is returned when the key has fewer elements than
	// there are subkeys.
	ErrInvalidKeyLength = errors.New("sidea: key too short to derive subkeys")

	// ErrMalformedBlock is returned when the input does not split into whole
	// blocks and the padding policy is PadReject.
	ErrMalformedBlock = errors.New("sidea: input is not a whole number of blocks")

	// ErrUnknownPadding is returned by ParsePadding for an unrecognised name.
	ErrUnknownPadding = errors.New("sidea: unknown padding policy")
)
