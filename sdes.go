package sdes

import "crypto/cipher"

const (
	// BlockSize is the cipher block size in bytes.
	BlockSize = 1

	// KeyBits is the number of significant key bits.
	KeyBits = 10

	// MaxKey is the largest valid key.
	MaxKey = 1<<KeyBits - 1
)

var (
	ip    = mustPermutation(8, []int{1, 5, 2, 0, 3, 7, 4, 6})
	ipInv = mustPermutation(8, []int{3, 0, 2, 4, 6, 1, 7, 5})
)

// Cipher is a two-round S-DES style Feistel cipher on 8-bit blocks.
// It implements crypto/cipher.Block and is safe for concurrent use.
type Cipher struct {
	k1, k2 uint8
}

var _ cipher.Block = (*Cipher)(nil)

// NewCipher returns a Cipher for a 10-bit key using WindowSchedule.
func NewCipher(key uint16) (*Cipher, error) {
	return NewCipherWithSchedule(key, WindowSchedule{})
}

// NewCipherWithSchedule returns a Cipher whose subkeys come from ks.
// Use StandardSchedule for interoperability with textbook S-DES vectors.
func NewCipherWithSchedule(key uint16, ks KeySchedule) (*Cipher, error) {
	if key > MaxKey {
		return nil, KeySizeError(key)
	}
	if ks == nil {
		return nil, ErrNilSchedule
	}
	k1, k2 := ks.Subkeys(key)
	return &Cipher{k1: k1, k2: k2}, nil
}

// Subkeys returns the round subkeys in encryption order.
func (c *Cipher) Subkeys() (k1, k2 uint8) {
	return c.k1, c.k2
}

// BlockSize returns BlockSize.
func (c *Cipher) BlockSize() int {
	return BlockSize
}

// Encrypt encrypts the first byte of src into dst.
func (c *Cipher) Encrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("sdes: input not full block")
	}
	if len(dst) < BlockSize {
		panic("sdes: output not full block")
	}
	dst[0] = c.EncryptByte(src[0])
}

// Decrypt decrypts the first byte of src into dst.
func (c *Cipher) Decrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("sdes: input not full block")
	}
	if len(dst) < BlockSize {
		panic("sdes: output not full block")
	}
	dst[0] = c.DecryptByte(src[0])
}

// EncryptByte encrypts a single block.
func (c *Cipher) EncryptByte(b byte) byte {
	return crypt(b, c.k1, c.k2)
}

// DecryptByte decrypts a single block.
func (c *Cipher) DecryptByte(b byte) byte {
	return crypt(b, c.k2, c.k1)
}

// crypt runs IP, a round keyed with first, the half swap, a round keyed with
// second and IP⁻¹. There is no swap after the second round, which is what
// makes decryption the same network with the subkeys reversed.
func crypt(b byte, first, second uint8) byte {
	x := uint8(ip.Apply(uint16(b)))
	left, right := x>>4, x&0x0F

	left ^= RoundFunction(right, first)
	left, right = right, left
	left ^= RoundFunction(right, second)

	return byte(ipInv.Apply(uint16(left<<4 | right)))
}

// EncryptBlock encrypts one block under key with WindowSchedule.
func EncryptBlock(key uint16, b byte) (byte, error) {
	c, err := NewCipher(key)
	if err != nil {
		return 0, err
	}
	return c.EncryptByte(b), nil
}

// DecryptBlock decrypts one block under key with WindowSchedule.
func DecryptBlock(key uint16, b byte) (byte, error) {
	c, err := NewCipher(key)
	if err != nil {
		return 0, err
	}
	return c.DecryptByte(b), nil
}
