package modes_test

import (
	"bytes"
	"crypto/aes"
	"fmt"

	"github.com/jedisct1/go-sdes"
	"github.com/jedisct1/go-sdes/modes"
)

// ExampleEncryptCBC demonstrates CBC with AES and the 0x80 padding
func ExampleEncryptCBC() {
	key := []byte("1234567890abcdef")
	iv := []byte("fedcba0987654321")
	block, err := aes.NewCipher(key)
	if err != nil {
		panic(err)
	}

	plaintext := []byte("This is a test plaintext for ECB, CBC, and CFB.")
	padded := modes.Pad(plaintext, block.BlockSize())

	ciphertext, err := modes.EncryptCBC(block, iv, padded)
	if err != nil {
		panic(err)
	}

	decrypted, err := modes.DecryptCBC(block, iv, ciphertext)
	if err != nil {
		panic(err)
	}
	unpadded, err := modes.Unpad(decrypted, block.BlockSize())
	if err != nil {
		panic(err)
	}

	fmt.Printf("Padded length: %d\n", len(padded))
	fmt.Printf("Ciphertext length: %d\n", len(ciphertext))
	fmt.Printf("Decrypted matches: %t\n", bytes.Equal(unpadded, plaintext))

	// Output:
	// Padded length: 48
	// Ciphertext length: 48
	// Decrypted matches: true
}

// ExampleEncryptCFB runs 4-bit cipher feedback over the 8-bit toy cipher
func ExampleEncryptCFB() {
	c, err := sdes.NewCipher(0b0111111101)
	if err != nil {
		panic(err)
	}

	iv := []byte{0b10101010}
	ciphertext, err := modes.EncryptCFB(c, iv, modes.HalfBlockSegment(c), []byte{0b00000001, 0b00000010})
	if err != nil {
		panic(err)
	}

	for _, b := range ciphertext {
		fmt.Printf("%08b\n", b)
	}

	// Output:
	// 11110000
	// 10011101
}

// ExampleEncryptECB shows the codebook property: equal blocks, equal output
func ExampleEncryptECB() {
	c, err := sdes.NewCipher(0b0111111101)
	if err != nil {
		panic(err)
	}

	ciphertext, err := modes.EncryptECB(c, []byte{0x01, 0x01, 0x02})
	if err != nil {
		panic(err)
	}
	fmt.Printf("%08b\n", ciphertext)

	// Output:
	// [10011001 10011001 01000010]
}
