package sdes

import "fmt"

// SBox is a 4x4 substitution table of 2-bit values.
//
// A 4-bit input b0 b1 b2 b3 (b0 most significant) selects
// row b0*2 + b3 and column b1*2 + b2.
type SBox [4][4]uint8

var (
	s0 = mustSBox([4][4]uint8{
		{1, 0, 3, 2},
		{3, 2, 1, 0},
		{0, 2, 1, 3},
		{3, 1, 3, 2},
	})
	s1 = mustSBox([4][4]uint8{
		{0, 1, 2, 3},
		{2, 0, 1, 3},
		{3, 0, 1, 0},
		{2, 1, 0, 3},
	})
)

// NewSBox returns rows as an SBox, rejecting entries wider than 2 bits.
func NewSBox(rows [4][4]uint8) (SBox, error) {
	for r := range rows {
		for c, v := range rows[r] {
			if v > 3 {
				return SBox{}, fmt.Errorf("%w: s-box entry [%d][%d] = %d exceeds 2 bits", ErrInvalidTable, r, c, v)
			}
		}
	}
	return SBox(rows), nil
}

// mustSBox is used for the package's fixed tables.
func mustSBox(rows [4][4]uint8) SBox {
	sb, err := NewSBox(rows)
	if err != nil {
		panic(err)
	}
	return sb
}

// Substitute maps the low nibble of x to its 2-bit table entry.
func (s *SBox) Substitute(x uint8) uint8 {
	row := (x>>2)&0x2 | x&0x1
	col := (x >> 1) & 0x3
	return s[row][col]
}
