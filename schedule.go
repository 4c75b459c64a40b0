package sdes

// KeySchedule derives the two round subkeys from a 10-bit key.
type KeySchedule interface {
	Subkeys(key uint16) (k1, k2 uint8)
}

// WindowSchedule takes each subkey as a fixed 8-bit window of the key:
// k1 = key>>2 and k2 = key>>4, both truncated to 8 bits. The top two bits of
// k2 are therefore always zero.
//
// Unlike the textbook schedule there is no P10/P8 permutation and no rotation
// between rounds, so the two lowest key bits never influence the cipher.
// This is the schedule NewCipher uses.
type WindowSchedule struct{}

// Subkeys implements KeySchedule.
func (WindowSchedule) Subkeys(key uint16) (k1, k2 uint8) {
	key &= MaxKey
	return uint8(key >> 2), uint8(key >> 4)
}

var (
	p10 = mustPermutation(10, []int{2, 4, 1, 6, 3, 9, 0, 8, 7, 5})
	p8  = mustPermutation(10, []int{5, 2, 6, 3, 7, 4, 9, 8})
)

// StandardSchedule is the textbook S-DES schedule: P10, a one-bit left
// rotation of each 5-bit half followed by P8 for k1, then a further two-bit
// rotation followed by P8 for k2.
type StandardSchedule struct{}

// Subkeys implements KeySchedule.
func (StandardSchedule) Subkeys(key uint16) (k1, k2 uint8) {
	x := p10.Apply(key & MaxKey)
	x = rotateHalves(x, 1)
	k1 = uint8(p8.Apply(x))
	x = rotateHalves(x, 2)
	k2 = uint8(p8.Apply(x))
	return k1, k2
}

// rotateHalves rotates both 5-bit halves of a 10-bit value left by n.
func rotateHalves(x uint16, n uint) uint16 {
	rot := func(h uint16) uint16 {
		return (h<<n | h>>(5-n)) & 0x1F
	}
	return rot(x>>5)<<5 | rot(x&0x1F)
}
