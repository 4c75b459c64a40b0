package modes

import (
	"crypto/cipher"
	"crypto/subtle"
	"fmt"
)

// HalfBlockSegment returns half of b's block size in bits, the segment size
// used when no other is agreed (64 bits for a 128-bit cipher, 4 bits for an
// 8-bit one).
func HalfBlockSegment(b cipher.Block) int {
	return b.BlockSize() * 8 / 2
}

// EncryptCFB encrypts src in s-bit cipher feedback mode.
//
// A shift register the width of one block starts as iv. For each segment the
// register is encrypted, the leading s bits of the result are XORed with the
// plaintext segment, and the register is shifted left by s bits with the new
// ciphertext segment entering at the tail.
//
// s must be positive and smaller than the block size in bits. It must divide
// the block size and be either a multiple of 8 or one of 1, 2 and 4. src must
// hold a whole number of segments. Segments narrower than a byte are
// taken most significant bits first.
func EncryptCFB(b cipher.Block, iv []byte, s int, src []byte) ([]byte, error) {
	return cfb(b, iv, s, src, false)
}

// DecryptCFB reverses EncryptCFB.
func DecryptCFB(b cipher.Block, iv []byte, s int, src []byte) ([]byte, error) {
	return cfb(b, iv, s, src, true)
}

func cfb(b cipher.Block, iv []byte, s int, src []byte, decrypt bool) ([]byte, error) {
	bs := b.BlockSize()
	if err := checkIV(bs, iv); err != nil {
		return nil, err
	}
	// Segments are either whole bytes or fit inside one byte.
	if s <= 0 || s >= bs*8 || (bs*8)%s != 0 || (s%8 != 0 && 8%s != 0) {
		return nil, fmt.Errorf("%w: %d bits with a %d-bit block", ErrInvalidSegmentSize, s, bs*8)
	}
	if (len(src)*8)%s != 0 {
		return nil, fmt.Errorf("%w: %d bytes with %d-bit segments", ErrInputNotFullSegments, len(src), s)
	}

	register := make([]byte, bs)
	copy(register, iv)
	keystream := make([]byte, bs)
	dst := make([]byte, len(src))

	// The feedback is always ciphertext: the output when encrypting, the
	// input when decrypting.
	feedback := dst
	if decrypt {
		feedback = src
	}

	if s%8 == 0 {
		n := s / 8
		for i := 0; i < len(src); i += n {
			b.Encrypt(keystream, register)
			subtle.XORBytes(dst[i:i+n], src[i:i+n], keystream[:n])
			copy(register, register[n:])
			copy(register[bs-n:], feedback[i:i+n])
		}
		return dst, nil
	}

	// s is 1, 2 or 4: every segment sits inside one byte.
	mask := byte(1)<<uint(s) - 1
	for off := 0; off < len(src)*8; off += s {
		b.Encrypt(keystream, register)

		i, shift := off/8, uint(8-off%8-s)
		seg := (src[i]>>shift ^ keystream[0]>>uint(8-s)) & mask
		dst[i] |= seg << shift

		shiftLeft(register, uint(s))
		register[bs-1] |= (feedback[i] >> shift) & mask
	}
	return dst, nil
}

// shiftLeft shifts buf left by n bits (0 < n < 8), filling with zeros
func shiftLeft(buf []byte, n uint) {
	var carry byte
	for i := len(buf) - 1; i >= 0; i-- {
		b := buf[i]
		buf[i] = b<<n | carry
		carry = b >> (8 - n)
	}
}
