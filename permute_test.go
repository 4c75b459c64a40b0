package sdes

import (
	"errors"
	"fmt"
	"testing"
)

// TestPermutationMSBFirst checks that position 0 is the most significant bit
// of the declared input width
func TestPermutationMSBFirst(t *testing.T) {
	want := []uint16{0b00010000, 0b10000000, 0b00100000, 0b00001000, 0b00000010, 0b01000000, 0b00000001, 0b00000100}

	for i := 0; i < 8; i++ {
		in := uint16(1) << uint(7-i)
		if got := ip.Apply(in); got != want[i] {
			t.Errorf("IP(bit %d): got %08b, expected %08b", i, got, want[i])
		}
	}
}

func TestPermutationInverse(t *testing.T) {
	for x := 0; x < 256; x++ {
		if got := ipInv.Apply(ip.Apply(uint16(x))); got != uint16(x) {
			t.Fatalf("IP⁻¹(IP(%08b)) = %08b", x, got)
		}
		if got := ip.Apply(ipInv.Apply(uint16(x))); got != uint16(x) {
			t.Fatalf("IP(IP⁻¹(%08b)) = %08b", x, got)
		}
	}
}

func TestPermutationExpansion(t *testing.T) {
	testCases := []struct {
		in, want uint16
	}{
		{0b0000, 0b00000000},
		{0b0001, 0b10000010},
		{0b1000, 0b01000001},
		{0b1010, 0b01010101},
		{0b1111, 0b11111111},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%04b", tc.in), func(t *testing.T) {
			if got := expansion.Apply(tc.in); got != tc.want {
				t.Errorf("EP(%04b): got %08b, expected %08b", tc.in, got, tc.want)
			}
		})
	}

	if expansion.InWidth() != 4 || expansion.OutWidth() != 8 {
		t.Errorf("EP widths: got %d->%d, expected 4->8", expansion.InWidth(), expansion.OutWidth())
	}
}

// TestPermutationIgnoresHighBits verifies that bits above the input width do
// not leak into the output
func TestPermutationIgnoresHighBits(t *testing.T) {
	for half := uint16(0); half < 16; half++ {
		if expansion.Apply(half|0xFFF0) != expansion.Apply(half) {
			t.Fatalf("EP(%04b) depends on bits above the input width", half)
		}
	}
}

func TestPermute(t *testing.T) {
	got, err := Permute(0b1100, 4, []int{3, 2, 1, 0})
	if err != nil {
		t.Fatalf("Permute failed: %v", err)
	}
	if got != 0b0011 {
		t.Errorf("reverse of 1100: got %04b, expected 0011", got)
	}

	// Compression keeps only the selected bits
	got, err = Permute(0b10110000, 8, []int{0, 2, 3})
	if err != nil {
		t.Fatalf("Permute failed: %v", err)
	}
	if got != 0b111 {
		t.Errorf("compression: got %03b, expected 111", got)
	}
}

func TestPermutationInvalidTables(t *testing.T) {
	testCases := []struct {
		name    string
		inWidth int
		table   []int
	}{
		{"empty_table", 8, nil},
		{"negative_entry", 8, []int{0, -1}},
		{"entry_equal_to_width", 4, []int{0, 1, 2, 4}},
		{"zero_width", 0, []int{0}},
		{"wide_input", 17, []int{0}},
		{"wide_output", 8, make([]int, 17)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewPermutation(tc.inWidth, tc.table)
			if !errors.Is(err, ErrInvalidTable) {
				t.Errorf("expected ErrInvalidTable, got %v", err)
			}
			if _, err := Permute(0, tc.inWidth, tc.table); !errors.Is(err, ErrInvalidTable) {
				t.Errorf("Permute: expected ErrInvalidTable, got %v", err)
			}
		})
	}
}

// TestPermutationCopiesTable verifies that a validated table cannot be changed
// through the caller's slice
func TestPermutationCopiesTable(t *testing.T) {
	table := []int{0, 1, 2, 3}
	p, err := NewPermutation(4, table)
	if err != nil {
		t.Fatalf("NewPermutation failed: %v", err)
	}
	table[0] = 3

	if got := p.Apply(0b1000); got != 0b1000 {
		t.Errorf("identity changed after caller mutation: got %04b", got)
	}
}

func TestSBox(t *testing.T) {
	wantS0 := []uint8{1, 3, 0, 2, 3, 1, 2, 0, 0, 3, 2, 1, 1, 3, 3, 2}
	wantS1 := []uint8{0, 2, 1, 0, 2, 1, 3, 3, 3, 2, 0, 1, 1, 0, 0, 3}

	for x := uint8(0); x < 16; x++ {
		if got := s0.Substitute(x); got != wantS0[x] {
			t.Errorf("S0(%04b): got %d, expected %d", x, got, wantS0[x])
		}
		if got := s1.Substitute(x); got != wantS1[x] {
			t.Errorf("S1(%04b): got %d, expected %d", x, got, wantS1[x])
		}
		// Only the low nibble is consulted
		if s0.Substitute(x|0xF0) != s0.Substitute(x) {
			t.Errorf("S0(%04b) depends on the high nibble", x)
		}
	}
}

func TestNewSBox(t *testing.T) {
	sb, err := NewSBox(s1)
	if err != nil {
		t.Fatalf("NewSBox rejected S1: %v", err)
	}
	if sb != s1 {
		t.Error("NewSBox changed the table")
	}

	bad := s0
	bad[2][1] = 4
	if _, err := NewSBox(bad); !errors.Is(err, ErrInvalidTable) {
		t.Errorf("expected ErrInvalidTable, got %v", err)
	}
}

func TestMustSBoxPanics(t *testing.T) {
	if got := mustSBox(s0); got != s0 {
		t.Error("mustSBox changed a valid table")
	}

	defer func() {
		if recover() == nil {
			t.Error("mustSBox accepted a 3-bit entry")
		}
	}()
	mustSBox([4][4]uint8{{7}})
}
