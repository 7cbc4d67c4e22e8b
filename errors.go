package bitset128

import "errors"

var (
	// ErrOutOfRange is returned when a bit position argument is >= Capacity.
	// The receiver is left unchanged when a mutator returns it.
	ErrOutOfRange = errors.New("bit position out of range")
	// ErrOverflow is returned when a value does not fit in the requested width.
	ErrOverflow = errors.New("value does not fit")
	// ErrNoBitsSet is returned by bit scans over an empty set.
	ErrNoBitsSet = errors.New("no bits set")
	// ErrInvalidLength is returned when an input string or byte slice has the wrong length.
	ErrInvalidLength = errors.New("invalid input length")
	// ErrInvalidDigit is returned when a binary string contains a character other than '0' or '1'.
	ErrInvalidDigit = errors.New("invalid binary digit")
	// ErrNilValue is returned when a function receives a nil pointer.
	ErrNilValue = errors.New("input cannot be nil")
)
