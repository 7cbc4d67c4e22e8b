package bitset128

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
)

// Uint64 returns the low 64 bits of b. It succeeds only when bits 64-127 are
// all clear; otherwise it returns ErrOverflow.
func (b BitSet) Uint64() (uint64, error) {
	if b.hi != 0 {
		return 0, ErrOverflow
	}
	return b.lo, nil
}

// Words returns the exact 128-bit pattern of b as two 64-bit words: hi holds
// bits 64-127 and lo holds bits 0-63. It is total and inverts FromWords.
func (b BitSet) Words() (hi, lo uint64) {
	return b.hi, b.lo
}

// Uint256 returns the 128-bit pattern of b as a freshly allocated
// uint256.Int. It is total; the upper 128 bits of the result are zero.
func (b BitSet) Uint256() *uint256.Int {
	return &uint256.Int{b.lo, b.hi, 0, 0}
}

// FromUint256 returns a BitSet carrying the exact bit pattern of v. It
// returns ErrNilValue when v is nil and ErrOverflow when v has bits set at or
// above position 128.
func FromUint256(v *uint256.Int) (BitSet, error) {
	if v == nil {
		return BitSet{}, ErrNilValue
	}
	if v[2] != 0 || v[3] != 0 {
		return BitSet{}, ErrOverflow
	}
	return BitSet{hi: v[1], lo: v[0]}, nil
}

// Bytes returns the 128-bit pattern of b as a 16-byte big-endian slice,
// bit 127 in the most significant bit of the first byte.
func (b BitSet) Bytes() []byte {
	buf := make([]byte, 16)
	binary.BigEndian.PutUint64(buf[:8], b.hi)
	binary.BigEndian.PutUint64(buf[8:], b.lo)
	return buf
}

// FromBytes returns a BitSet decoded from a 16-byte big-endian slice, the
// inverse of Bytes. Slices of any other length return ErrInvalidLength.
func FromBytes(data []byte) (BitSet, error) {
	if len(data) != 16 {
		return BitSet{}, ErrInvalidLength
	}
	return BitSet{
		hi: binary.BigEndian.Uint64(data[:8]),
		lo: binary.BigEndian.Uint64(data[8:]),
	}, nil
}

// Binary renders b as a string of exactly 128 '0' and '1' characters, most
// significant bit first: the character at index 0 is bit 127 and the
// character at index 127 is bit 0.
func (b BitSet) Binary() string {
	buf := make([]byte, Capacity)
	for i := range buf {
		pos := Capacity - 1 - uint(i)
		if set, _ := b.Get(pos); set {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}
	return string(buf)
}

// FromBinary parses the exact output format of Binary: a 128-character
// big-endian string of '0' and '1' digits. Other lengths return
// ErrInvalidLength; other characters return ErrInvalidDigit.
func FromBinary(s string) (BitSet, error) {
	if uint(len(s)) != Capacity {
		return BitSet{}, ErrInvalidLength
	}
	var b BitSet
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
		case '1':
			pos := Capacity - 1 - uint(i)
			if pos < 64 {
				b.lo |= 1 << pos
			} else {
				b.hi |= 1 << (pos - 64)
			}
		default:
			return BitSet{}, ErrInvalidDigit
		}
	}
	return b, nil
}

// Hex renders b as a 0x-prefixed, zero-padded, 32-digit lowercase hex string.
func (b BitSet) Hex() string {
	return hexutil.Encode(b.Bytes())
}

// FromHex parses a 0x-prefixed hex string of up to 32 digits, accepting the
// exact output of Hex as well as shorter even-length encodings, which are
// zero-extended on the left.
func FromHex(s string) (BitSet, error) {
	data, err := hexutil.Decode(s)
	if err != nil {
		return BitSet{}, err
	}
	if len(data) > 16 {
		return BitSet{}, ErrOverflow
	}
	buf := make([]byte, 16)
	copy(buf[16-len(data):], data)
	return FromBytes(buf)
}

// String implements fmt.Stringer using the hex form, keeping logged values
// short; use Binary for the full per-bit rendering.
func (b BitSet) String() string {
	return b.Hex()
}

// MarshalText implements encoding.TextMarshaler using the hex form.
func (b BitSet) MarshalText() ([]byte, error) {
	return []byte(b.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting the exact
// output of MarshalText. The receiver is left unchanged on error.
func (b *BitSet) UnmarshalText(text []byte) error {
	v, err := FromHex(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}
