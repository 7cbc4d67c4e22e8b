package bitset128

import "math/bits"

// MostSignificantBit returns the position of the highest set bit, where the
// least significant bit is at position 0. An empty set returns ErrNoBitsSet.
//
// The result satisfies: b has a bit at msb, and no bit above it.
func (b BitSet) MostSignificantBit() (uint, error) {
	if b.hi != 0 {
		return uint(127 - bits.LeadingZeros64(b.hi)), nil
	}
	if b.lo != 0 {
		return uint(63 - bits.LeadingZeros64(b.lo)), nil
	}
	return 0, ErrNoBitsSet
}

// LeastSignificantBit returns the position of the lowest set bit, where the
// least significant bit is at position 0. An empty set returns ErrNoBitsSet.
func (b BitSet) LeastSignificantBit() (uint, error) {
	if b.lo != 0 {
		return uint(bits.TrailingZeros64(b.lo)), nil
	}
	if b.hi != 0 {
		return uint(64 + bits.TrailingZeros64(b.hi)), nil
	}
	return 0, ErrNoBitsSet
}

// NextSet returns the position of the smallest set bit at or above pos.
// It reports false when no such bit exists, including when pos >= Capacity.
func (b BitSet) NextSet(pos uint) (uint, bool) {
	if pos >= Capacity {
		return 0, false
	}
	// Clear everything below pos, then scan from the bottom.
	masked := b.Rsh(pos).Lsh(pos)
	i, err := masked.LeastSignificantBit()
	if err != nil {
		return 0, false
	}
	return i, true
}

// PrevSet returns the position of the largest set bit at or below pos.
// It reports false when no such bit exists; positions beyond 127 clamp to
// 127, so PrevSet(Capacity) scans the whole set.
func (b BitSet) PrevSet(pos uint) (uint, bool) {
	if pos > Capacity-1 {
		pos = Capacity - 1
	}
	// Clear everything above pos, then scan from the top.
	shift := Capacity - 1 - pos
	masked := b.Lsh(shift).Rsh(shift)
	i, err := masked.MostSignificantBit()
	if err != nil {
		return 0, false
	}
	return i, true
}
