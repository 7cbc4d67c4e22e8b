// Package bitset128 implements a fixed-capacity set of 128 boolean flags
// backed by two machine words. Bit position 0 is the least significant bit.
//
// BitSet is a plain value: it is comparable with ==, usable as a map key, and
// trivially copyable. Non-mutating operations take value receivers and return
// new instances; mutating operations take pointer receivers. The type holds no
// locks; a single instance shared across concurrent mutators requires external
// synchronization, while independent copies need none.
package bitset128

import "math/bits"

// Capacity is the fixed number of addressable bit positions. It is a permanent
// property of the type, not a configurable parameter.
const Capacity uint = 128

const allBits uint64 = 0xFFFF_FFFF_FFFF_FFFF

// BitSet is a vector of 128 independently addressable boolean flags.
// The zero value has every bit cleared and is ready to use.
type BitSet struct {
	hi, lo uint64
}

// New returns a BitSet with all 128 bits cleared.
func New() BitSet {
	return BitSet{}
}

// FromUint64 returns a BitSet whose bits 0-63 are the bits of v and whose
// bits 64-127 are cleared.
func FromUint64(v uint64) BitSet {
	return BitSet{lo: v}
}

// FromWords returns a BitSet built from an exact 128-bit pattern: hi supplies
// bits 64-127 and lo supplies bits 0-63.
func FromWords(hi, lo uint64) BitSet {
	return BitSet{hi: hi, lo: lo}
}

// Capacity returns the number of addressable bit positions, always 128.
func (b BitSet) Capacity() uint {
	return Capacity
}

// Get returns the value of the bit at position pos. It is the canonical
// bounds-checked read: positions >= Capacity return ErrOutOfRange.
func (b BitSet) Get(pos uint) (bool, error) {
	if pos >= Capacity {
		return false, ErrOutOfRange
	}
	if pos < 64 {
		return b.lo&(1<<pos) != 0, nil
	}
	return b.hi&(1<<(pos-64)) != 0, nil
}

// Test reports whether the bit at position pos is set. It is equivalent to
// Get and exists for callers used to the test/set/flip vocabulary; both share
// the same out-of-range contract.
func (b BitSet) Test(pos uint) (bool, error) {
	return b.Get(pos)
}

// Count returns the number of bits set to true, in the range [0, 128].
func (b BitSet) Count() int {
	return bits.OnesCount64(b.hi) + bits.OnesCount64(b.lo)
}

// All reports whether every bit is set.
func (b BitSet) All() bool {
	return b.hi == allBits && b.lo == allBits
}

// None reports whether no bit is set.
func (b BitSet) None() bool {
	return b.hi == 0 && b.lo == 0
}

// Any reports whether at least one bit is set.
func (b BitSet) Any() bool {
	return !b.None()
}

// Set sets the bit at position pos to value. Positions >= Capacity return
// ErrOutOfRange and leave the receiver unchanged. Setting a bit to the value
// it already holds is a no-op.
func (b *BitSet) Set(pos uint, value bool) error {
	if pos >= Capacity {
		return ErrOutOfRange
	}
	if pos < 64 {
		if value {
			b.lo |= 1 << pos
		} else {
			b.lo &^= 1 << pos
		}
		return nil
	}
	if value {
		b.hi |= 1 << (pos - 64)
	} else {
		b.hi &^= 1 << (pos - 64)
	}
	return nil
}

// Flip inverts the bit at position pos. Positions >= Capacity return
// ErrOutOfRange and leave the receiver unchanged. Flipping the same position
// twice restores the original value.
func (b *BitSet) Flip(pos uint) error {
	if pos >= Capacity {
		return ErrOutOfRange
	}
	if pos < 64 {
		b.lo ^= 1 << pos
	} else {
		b.hi ^= 1 << (pos - 64)
	}
	return nil
}

// SetAll sets all 128 bits.
func (b *BitSet) SetAll() {
	b.hi, b.lo = allBits, allBits
}

// ResetAll clears all 128 bits.
func (b *BitSet) ResetAll() {
	b.hi, b.lo = 0, 0
}

// FlipAll inverts every bit in place. It is the in-place form of Not;
// applying it twice restores the original value.
func (b *BitSet) FlipAll() {
	b.hi ^= allBits
	b.lo ^= allBits
}
