package modes

import "errors"

var (
	// ErrInputNotFullBlocks is returned when ECB or CBC input is not a whole
	// number of blocks. Pad the message first.
	ErrInputNotFullBlocks = errors.New("modes: input not full blocks")

	// ErrInputNotFullSegments is returned when CFB input is not a whole number
	// of segments.
	ErrInputNotFullSegments = errors.New("modes: input not full segments")

	// ErrInvalidIVSize is returned when an IV or initial counter is not exactly
	// one block long.
	ErrInvalidIVSize = errors.New("modes: IV length must equal block size")

	// ErrInvalidSegmentSize is returned when a CFB segment size is not a proper
	// divisor of the block size in bits.
	ErrInvalidSegmentSize = errors.New("modes: invalid CFB segment size")

	// ErrInvalidPadding is returned when no padding marker is found where one
	// is expected.
	ErrInvalidPadding = errors.New("modes: invalid padding")

	// ErrInvalidLength is returned by Trim when the original length does not
	// fit the padded message.
	ErrInvalidLength = errors.New("modes: invalid original length")
)
