package solver

import "math/bits"

// DigitSet is a bitset over the digits 1..9; bit v-1 stands for digit v.
type DigitSet uint16

// AllDigits has every digit 1..9 set.
const AllDigits DigitSet = 1<<9 - 1

func digitBit(v uint8) DigitSet { return 1 << (v - 1) }

// Has reports whether digit v (1..9) is in the set.
func (s DigitSet) Has(v uint8) bool { return s&digitBit(v) != 0 }

// Count returns the number of digits in the set.
func (s DigitSet) Count() int { return bits.OnesCount16(uint16(s)) }

// Lowest returns the smallest digit in the set, or 0 when empty.
func (s DigitSet) Lowest() uint8 {
	if s == 0 {
		return 0
	}
	return uint8(bits.TrailingZeros16(uint16(s))) + 1
}

// Digits lists the member digits in ascending order.
func (s DigitSet) Digits() []uint8 {
	out := make([]uint8, 0, s.Count())
	for s != 0 {
		bit := s & -s
		out = append(out, bit.Lowest())
		s ^= bit
	}
	return out
}
