package rlp

import "errors"

var (
	// ErrExpectedString is returned when a list is encountered where a string was expected.
	ErrExpectedString = errors.New("rlp: expected string")

	// ErrExpectedList is returned when a string is encountered where a list was expected.
	ErrExpectedList = errors.New("rlp: expected list")

	// ErrCanonSize is returned when a single byte below 0x80 is wrapped in a string header.
	ErrCanonSize = errors.New("rlp: non-canonical size information")

	// ErrCanonInt is returned when an integer uses non-canonical encoding (leading zeros).
	ErrCanonInt = errors.New("rlp: non-canonical integer encoding")

	// ErrNonCanonicalSize is returned when the long form is used for a payload of
	// 55 bytes or less, or the length-of-length has leading zeros.
	ErrNonCanonicalSize = errors.New("rlp: non-canonical size")

	// ErrUint64Range is returned when a decoded integer exceeds uint64 range.
	ErrUint64Range = errors.New("rlp: uint64 overflow")

	// ErrUint256Range is returned when a decoded integer exceeds 256 bits.
	ErrUint256Range = errors.New("rlp: uint256 overflow")

	// ErrUintRange is returned when a decoded integer is wider than the
	// caller-supplied byte limit.
	ErrUintRange = errors.New("rlp: integer too large")

	// ErrInvalidBool is returned for a boolean that is neither 0x80 nor 0x01.
	ErrInvalidBool = errors.New("rlp: invalid boolean value")

	// ErrNotAtEOL is returned by ListEnd when the list region has unread bytes.
	ErrNotAtEOL = errors.New("rlp: call of ListEnd not positioned at EOL")

	// ErrNoOpenList is returned by ListEnd when no list has been entered.
	ErrNoOpenList = errors.New("rlp: call of ListEnd outside of any list")
)
