package modes

import "fmt"

// paddingMarker starts every pad. It is followed by zero bytes.
const paddingMarker = 0x80

// Pad appends 0x80 and then zero bytes until the length is a multiple of
// blockSize. At least one byte is always added, so an aligned message gains a
// full block. src is not modified.
func Pad(src []byte, blockSize int) []byte {
	if blockSize < 1 {
		panic("modes: invalid block size")
	}
	n := blockSize - len(src)%blockSize
	out := make([]byte, len(src)+n)
	copy(out, src)
	out[len(src)] = paddingMarker
	return out
}

// Unpad strips padding added by Pad by scanning back over trailing zeros in
// the last block to the 0x80 marker. The result aliases src.
//
// Removal is best effort and is not verified: the scheme carries no length, so
// corrupted or foreign data that happens to end in 0x80 00..00 is accepted.
// Callers that need exact recovery should keep the original length and use
// Trim.
func Unpad(src []byte, blockSize int) ([]byte, error) {
	if blockSize < 1 || len(src) == 0 || len(src)%blockSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a positive multiple of %d", ErrInvalidPadding, len(src), blockSize)
	}
	for i := len(src) - 1; i >= len(src)-blockSize; i-- {
		if src[i] == paddingMarker {
			return src[:i], nil
		}
		if src[i] != 0 {
			break
		}
	}
	return nil, fmt.Errorf("%w: no marker in final block", ErrInvalidPadding)
}

// Trim returns the first n bytes of a padded message after checking that the
// bytes after them are exactly a marker and zeros. The result aliases src.
func Trim(src []byte, n int) ([]byte, error) {
	if n < 0 || n >= len(src) {
		return nil, fmt.Errorf("%w: %d for %d padded bytes", ErrInvalidLength, n, len(src))
	}
	if src[n] != paddingMarker {
		return nil, fmt.Errorf("%w: byte %d is 0x%02x, expected 0x80", ErrInvalidPadding, n, src[n])
	}
	for i := n + 1; i < len(src); i++ {
		if src[i] != 0 {
			return nil, fmt.Errorf("%w: non-zero byte at %d", ErrInvalidPadding, i)
		}
	}
	return src[:n], nil
}
