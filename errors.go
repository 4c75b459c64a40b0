package sdes

import (
	"errors"
	"strconv"
)

var (
	// ErrInvalidTable is returned when a permutation or substitution table is
	// malformed: wrong length, unsupported width or an out-of-range entry.
	ErrInvalidTable = errors.New("sdes: invalid table configuration")

	// ErrNilSchedule is returned when a nil key schedule is passed to NewCipherWithSchedule.
	ErrNilSchedule = errors.New("sdes: key schedule is nil")
)

// KeySizeError is returned when a key does not fit in KeyBits bits.
type KeySizeError uint16

func (k KeySizeError) Error() string {
	return "sdes: key 0x" + strconv.FormatUint(uint64(k), 16) + " does not fit in 10 bits"
}
