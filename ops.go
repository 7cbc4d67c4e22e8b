package bitset128

// And returns the bitwise intersection of b and o.
func (b BitSet) And(o BitSet) BitSet {
	return BitSet{hi: b.hi & o.hi, lo: b.lo & o.lo}
}

// Or returns the bitwise union of b and o.
func (b BitSet) Or(o BitSet) BitSet {
	return BitSet{hi: b.hi | o.hi, lo: b.lo | o.lo}
}

// Xor returns the bitwise symmetric difference of b and o.
func (b BitSet) Xor(o BitSet) BitSet {
	return BitSet{hi: b.hi ^ o.hi, lo: b.lo ^ o.lo}
}

// AndNot returns the bits of b with every bit of o cleared, the set
// difference b \ o.
func (b BitSet) AndNot(o BitSet) BitSet {
	return BitSet{hi: b.hi &^ o.hi, lo: b.lo &^ o.lo}
}

// Not returns the bitwise complement of b.
func (b BitSet) Not() BitSet {
	return BitSet{hi: ^b.hi, lo: ^b.lo}
}

// Lsh returns b shifted left by n positions. The shift is logical: vacated
// low positions are zero-filled and bits shifted past position 127 are
// discarded. Any n is valid; n >= Capacity yields the empty set.
func (b BitSet) Lsh(n uint) BitSet {
	switch {
	case n == 0:
		return b
	case n >= Capacity:
		return BitSet{}
	case n >= 64:
		return BitSet{hi: b.lo << (n - 64)}
	default:
		return BitSet{hi: b.hi<<n | b.lo>>(64-n), lo: b.lo << n}
	}
}

// Rsh returns b shifted right by n positions. The shift is logical: vacated
// high positions are zero-filled and bits shifted past position 0 are
// discarded. Any n is valid; n >= Capacity yields the empty set.
func (b BitSet) Rsh(n uint) BitSet {
	switch {
	case n == 0:
		return b
	case n >= Capacity:
		return BitSet{}
	case n >= 64:
		return BitSet{lo: b.hi >> (n - 64)}
	default:
		return BitSet{hi: b.hi >> n, lo: b.lo>>n | b.hi<<(64-n)}
	}
}

// AndAssign replaces b with b.And(o).
func (b *BitSet) AndAssign(o BitSet) {
	b.hi &= o.hi
	b.lo &= o.lo
}

// OrAssign replaces b with b.Or(o).
func (b *BitSet) OrAssign(o BitSet) {
	b.hi |= o.hi
	b.lo |= o.lo
}

// XorAssign replaces b with b.Xor(o).
func (b *BitSet) XorAssign(o BitSet) {
	b.hi ^= o.hi
	b.lo ^= o.lo
}

// AndNotAssign replaces b with b.AndNot(o).
func (b *BitSet) AndNotAssign(o BitSet) {
	b.hi &^= o.hi
	b.lo &^= o.lo
}

// LshAssign replaces b with b.Lsh(n).
func (b *BitSet) LshAssign(n uint) {
	*b = b.Lsh(n)
}

// RshAssign replaces b with b.Rsh(n).
func (b *BitSet) RshAssign(n uint) {
	*b = b.Rsh(n)
}
