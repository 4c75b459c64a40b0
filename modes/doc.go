// Package modes drives any crypto/cipher.Block across arbitrary-length
// messages in ECB, CBC, CFB and CTR modes, with the 0x80 00..00 padding used
// for the block-aligned modes.
//
// Every function is a pure transform of its arguments: inputs are never
// modified, chaining state lives only for the duration of one call, and a new
// output slice is returned. The same functions serve the 8-bit sdes.Cipher and
// 128-bit production ciphers such as AES.
//
//	block, _ := aes.NewCipher(key)
//	ct, err := modes.EncryptCBC(block, iv, modes.Pad(msg, block.BlockSize()))
//
// ECB and CBC require whole blocks; apply Pad first. CFB works on segments of
// s bits, where s divides the block size (see HalfBlockSegment). CTR accepts
// any length.
//
// ECB, CTR and CBC decryption have no dependency between blocks and split
// large inputs across goroutines. CBC encryption and both CFB directions are
// inherently sequential.
package modes
