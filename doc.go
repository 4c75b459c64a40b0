// Package sdes implements a two-round Feistel cipher on 8-bit blocks with a
// 10-bit key, modelled on Simplified DES, together with the building blocks it
// is assembled from.
//
// The cipher is a teaching toy. It is trivially brute-forced (1024 keys) and
// offers no security whatsoever. Its value is as a fully enumerable block
// primitive for exercising modes of operation (see the modes subpackage) and
// for checking bit-level plumbing against known vectors.
//
// # Components
//
//   - Permutation: MSB-first bit selection tables (IP, IP⁻¹, EP, P4, P10, P8)
//   - SBox: the two 4x4 substitution boxes S0 and S1
//   - RoundFunction: expansion, key mixing, substitution and P4 compaction
//   - KeySchedule: WindowSchedule (default) and StandardSchedule
//   - Cipher: IP, round(k1), swap, round(k2), IP⁻¹
//
// # Bit numbering
//
// Every table in this package numbers bits from the most significant bit of
// the value's declared width. For an 8-bit block, position 0 is 0x80 and
// position 7 is 0x01. For a 4-bit half, position 0 is 0x8.
//
// # Key schedules
//
// NewCipher uses WindowSchedule, which slices the two subkeys straight out of
// the key (key>>2 and key>>4). It performs no P10/P8 permutation or rotation,
// and the two lowest key bits are never used. StandardSchedule implements the
// textbook schedule and reproduces published S-DES vectors:
//
//	c, err := sdes.NewCipherWithSchedule(0b1010000010, sdes.StandardSchedule{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ct := c.EncryptByte(0b10111101) // 0b01110101
//
// # Block interface
//
// *Cipher implements crypto/cipher.Block with a block size of one byte, so it
// can be driven by the modes package or by anything else that accepts a
// cipher.Block.
package sdes
