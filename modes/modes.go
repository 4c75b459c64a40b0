package modes

import (
	"crypto/cipher"
	"crypto/subtle"
	"fmt"
)

func checkBlocks(b cipher.Block, src []byte) (int, error) {
	bs := b.BlockSize()
	if len(src)%bs != 0 {
		return 0, fmt.Errorf("%w: %d bytes with block size %d", ErrInputNotFullBlocks, len(src), bs)
	}
	return bs, nil
}

func checkIV(bs int, iv []byte) error {
	if len(iv) != bs {
		return fmt.Errorf("%w: got %d, expected %d", ErrInvalidIVSize, len(iv), bs)
	}
	return nil
}

// EncryptECB encrypts every block of src independently. Identical plaintext
// blocks produce identical ciphertext blocks.
func EncryptECB(b cipher.Block, src []byte) ([]byte, error) {
	return ecb(b, src, b.Encrypt)
}

// DecryptECB reverses EncryptECB.
func DecryptECB(b cipher.Block, src []byte) ([]byte, error) {
	return ecb(b, src, b.Decrypt)
}

func ecb(b cipher.Block, src []byte, crypt func(dst, src []byte)) ([]byte, error) {
	bs, err := checkBlocks(b, src)
	if err != nil {
		return nil, err
	}

	dst := make([]byte, len(src))
	forEachRange(len(src)/bs, func(lo, hi int) {
		for i := lo * bs; i < hi*bs; i += bs {
			crypt(dst[i:i+bs], src[i:i+bs])
		}
	})
	return dst, nil
}

// EncryptCBC encrypts src in cipher block chaining mode. Each plaintext block
// is XORed with the previous ciphertext block (the IV for the first) before
// encryption, so blocks are produced strictly in order.
func EncryptCBC(b cipher.Block, iv, src []byte) ([]byte, error) {
	bs, err := checkBlocks(b, src)
	if err != nil {
		return nil, err
	}
	if err := checkIV(bs, iv); err != nil {
		return nil, err
	}

	dst := make([]byte, len(src))
	in := make([]byte, bs)
	prev := iv
	for i := 0; i < len(src); i += bs {
		subtle.XORBytes(in, src[i:i+bs], prev)
		b.Encrypt(dst[i:i+bs], in)
		prev = dst[i : i+bs]
	}
	return dst, nil
}

// DecryptCBC reverses EncryptCBC. Each block depends only on ciphertext, so
// large inputs are decrypted in parallel.
func DecryptCBC(b cipher.Block, iv, src []byte) ([]byte, error) {
	bs, err := checkBlocks(b, src)
	if err != nil {
		return nil, err
	}
	if err := checkIV(bs, iv); err != nil {
		return nil, err
	}

	dst := make([]byte, len(src))
	forEachRange(len(src)/bs, func(lo, hi int) {
		tmp := make([]byte, bs)
		for i := lo * bs; i < hi*bs; i += bs {
			prev := iv
			if i > 0 {
				prev = src[i-bs : i]
			}
			b.Decrypt(tmp, src[i:i+bs])
			subtle.XORBytes(dst[i:i+bs], tmp, prev)
		}
	})
	return dst, nil
}

// XORKeyStreamCTR XORs src with the encryptions of successive counter blocks,
// starting at counter. The counter is a big-endian integer the width of one
// block and wraps around to zero. A trailing partial block uses the leading
// bytes of its keystream block. counter is not modified.
func XORKeyStreamCTR(b cipher.Block, counter, src []byte) ([]byte, error) {
	bs := b.BlockSize()
	if err := checkIV(bs, counter); err != nil {
		return nil, err
	}

	dst := make([]byte, len(src))
	n := (len(src) + bs - 1) / bs
	forEachRange(n, func(lo, hi int) {
		ctr := make([]byte, bs)
		copy(ctr, counter)
		addCounter(ctr, uint64(lo))

		keystream := make([]byte, bs)
		for i := lo; i < hi; i++ {
			b.Encrypt(keystream, ctr)
			start, end := i*bs, min((i+1)*bs, len(src))
			subtle.XORBytes(dst[start:end], src[start:end], keystream)
			incrementCounter(ctr)
		}
	})
	return dst, nil
}

// EncryptCTR encrypts src in counter mode.
func EncryptCTR(b cipher.Block, counter, src []byte) ([]byte, error) {
	return XORKeyStreamCTR(b, counter, src)
}

// DecryptCTR decrypts src in counter mode. It is the same operation as EncryptCTR.
func DecryptCTR(b cipher.Block, counter, src []byte) ([]byte, error) {
	return XORKeyStreamCTR(b, counter, src)
}

// incrementCounter increments a big-endian counter of any width
func incrementCounter(ctr []byte) {
	for i := len(ctr) - 1; i >= 0; i-- {
		ctr[i]++
		if ctr[i] != 0 {
			break
		}
	}
}

// addCounter adds n to a big-endian counter, wrapping at its width
func addCounter(ctr []byte, n uint64) {
	var carry uint64
	for i := len(ctr) - 1; i >= 0 && (n != 0 || carry != 0); i-- {
		sum := uint64(ctr[i]) + n&0xFF + carry
		ctr[i] = byte(sum)
		carry = sum >> 8
		n >>= 8
	}
}
