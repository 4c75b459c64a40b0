package sdes

import "fmt"

// maxWidth bounds permutation input and output widths. It covers every table
// the cipher uses (P10 is the widest input).
const maxWidth = 16

// Permutation is a validated bit-selection table.
//
// Bits are numbered from the most significant bit of the declared width:
// position 0 is the MSB of an inWidth-bit value and position inWidth-1 is its
// LSB. Output bit i (counted the same way over len(table) bits) is the input
// bit at position table[i]. Tables may reorder, drop (8 to 4) or repeat
// (4 to 8) input bits.
type Permutation struct {
	in    int
	table []int
}

// NewPermutation validates table against inWidth and returns a Permutation.
// It fails with ErrInvalidTable if either width is outside 1..16 or any entry
// does not select a bit of the input.
func NewPermutation(inWidth int, table []int) (Permutation, error) {
	if inWidth < 1 || inWidth > maxWidth {
		return Permutation{}, fmt.Errorf("%w: input width %d outside 1..%d", ErrInvalidTable, inWidth, maxWidth)
	}
	if len(table) < 1 || len(table) > maxWidth {
		return Permutation{}, fmt.Errorf("%w: output width %d outside 1..%d", ErrInvalidTable, len(table), maxWidth)
	}
	for i, pos := range table {
		if pos < 0 || pos >= inWidth {
			return Permutation{}, fmt.Errorf("%w: entry %d selects bit %d of a %d-bit input", ErrInvalidTable, i, pos, inWidth)
		}
	}
	t := make([]int, len(table))
	copy(t, table)
	return Permutation{in: inWidth, table: t}, nil
}

// mustPermutation is used for the package's fixed tables.
func mustPermutation(inWidth int, table []int) Permutation {
	p, err := NewPermutation(inWidth, table)
	if err != nil {
		panic(err)
	}
	return p
}

// InWidth returns the number of input bits the table reads from.
func (p Permutation) InWidth() int { return p.in }

// OutWidth returns the number of bits Apply produces.
func (p Permutation) OutWidth() int { return len(p.table) }

// Apply permutes the low InWidth bits of x. Higher bits of x are ignored.
func (p Permutation) Apply(x uint16) uint16 {
	var out uint16
	n := len(p.table)
	for i, pos := range p.table {
		bit := (x >> uint(p.in-1-pos)) & 1
		out |= bit << uint(n-1-i)
	}
	return out
}

// Permute is a one-shot form of NewPermutation followed by Apply.
func Permute(x uint16, inWidth int, table []int) (uint16, error) {
	p, err := NewPermutation(inWidth, table)
	if err != nil {
		return 0, err
	}
	return p.Apply(x), nil
}
