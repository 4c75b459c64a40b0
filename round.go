package sdes

var (
	// expansion widens a 4-bit half to 8 bits, using every input bit twice.
	expansion = mustPermutation(4, []int{3, 0, 1, 2, 1, 2, 3, 0})
	// p4 permutes the concatenated S-box outputs.
	p4 = mustPermutation(4, []int{1, 3, 2, 0})
)

// RoundFunction is the Feistel function f(half, subkey).
//
// The 4-bit half is expanded to 8 bits and mixed with the subkey. The left
// nibble of the result goes through S0 and the right through S1, and the two
// 2-bit outputs are joined and permuted by P4. The result is a 4-bit value.
func RoundFunction(half, subkey uint8) uint8 {
	x := uint8(expansion.Apply(uint16(half&0x0F))) ^ subkey
	y := s0.Substitute(x>>4)<<2 | s1.Substitute(x&0x0F)
	return uint8(p4.Apply(uint16(y)))
}
