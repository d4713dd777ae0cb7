package rlp

import (
	"io"
	"math/big"

	"github.com/holiman/uint256"
)

// Kind represents the type of an RLP value.
type Kind int

const (
	Byte   Kind = iota // Single byte in [0x00, 0x7f].
	String             // RLP string (including empty string).
	List               // RLP list.
)

func (k Kind) String() string {
	switch k {
	case Byte:
		return "Byte"
	case String:
		return "String"
	case List:
		return "List"
	default:
		return "Unknown"
	}
}

// Stream reads RLP items from an in-memory buffer. Lists are entered with
// List and left with ListEnd; while inside a list every read is confined to
// the list's declared payload region.
//
// A Stream never reads past the region declared by the enclosing header, and
// every length taken from a header is checked against the bytes actually
// available before it is used.
type Stream struct {
	data  []byte
	pos   int
	stack []int // exclusive end offsets of the open lists
}

// NewStreamFromBytes creates a stream over data. The stream does not copy
// data; slices returned by Bytes alias it.
func NewStreamFromBytes(data []byte) *Stream {
	return &Stream{data: data}
}

// Pos returns the number of bytes consumed so far.
func (s *Stream) Pos() int {
	return s.pos
}

// limit returns the current read boundary.
func (s *Stream) limit() int {
	if len(s.stack) > 0 {
		return s.stack[len(s.stack)-1]
	}
	return len(s.data)
}

// AtListEnd reports whether the innermost open list (or the whole input,
// when no list is open) has been fully read.
func (s *Stream) AtListEnd() bool {
	return s.pos >= s.limit()
}

// PeekByte returns the next byte without consuming it.
func (s *Stream) PeekByte() (byte, error) {
	if s.pos >= s.limit() {
		return 0, io.ErrUnexpectedEOF
	}
	return s.data[s.pos], nil
}

// Kind returns the kind and content size of the next value without
// consuming it.
func (s *Stream) Kind() (Kind, uint64, error) {
	kind, _, size, err := s.readHeader()
	return kind, uint64(size), err
}

// readHeader decodes the header at the current position. It returns the
// kind, the header length and the content size. The content is guaranteed
// to lie within the current limit.
func (s *Stream) readHeader() (kind Kind, headerLen, size int, err error) {
	lim := s.limit()
	if s.pos >= lim {
		return 0, 0, 0, io.EOF
	}
	prefix := s.data[s.pos]
	switch {
	case prefix < 0x80:
		return Byte, 0, 1, nil

	case prefix <= 0xb7:
		size = int(prefix - 0x80)
		if s.pos+1+size > lim {
			return 0, 0, 0, io.ErrUnexpectedEOF
		}
		if size == 1 && s.data[s.pos+1] < 0x80 {
			return 0, 0, 0, ErrCanonSize
		}
		return String, 1, size, nil

	case prefix < 0xc0:
		headerLen, size, err = s.readLongSize(int(prefix - 0xb7))
		return String, headerLen, size, err

	case prefix <= 0xf7:
		size = int(prefix - 0xc0)
		if s.pos+1+size > lim {
			return 0, 0, 0, io.ErrUnexpectedEOF
		}
		return List, 1, size, nil

	default:
		headerLen, size, err = s.readLongSize(int(prefix - 0xf7))
		return List, headerLen, size, err
	}
}

// readLongSize parses the length-of-length form of a header.
func (s *Stream) readLongSize(lenOfLen int) (headerLen, size int, err error) {
	lim := s.limit()
	start := s.pos + 1
	if start+lenOfLen > lim {
		return 0, 0, io.ErrUnexpectedEOF
	}
	sizeBytes := s.data[start : start+lenOfLen]
	if sizeBytes[0] == 0 {
		return 0, 0, ErrNonCanonicalSize
	}
	var v uint64
	for _, b := range sizeBytes {
		v = v<<8 | uint64(b)
	}
	if v <= shortSizeLimit {
		return 0, 0, ErrNonCanonicalSize
	}
	avail := uint64(lim - start - lenOfLen)
	if v > avail {
		return 0, 0, io.ErrUnexpectedEOF
	}
	return 1 + lenOfLen, int(v), nil
}

// Bytes reads an RLP string and returns its content.
func (s *Stream) Bytes() ([]byte, error) {
	kind, headerLen, size, err := s.readHeader()
	if err != nil {
		return nil, err
	}
	if kind == List {
		return nil, ErrExpectedString
	}
	start := s.pos + headerLen
	s.pos = start + size
	return s.data[start:s.pos:s.pos], nil
}

// List enters the next list and returns its payload size. Subsequent reads
// are confined to the list until ListEnd is called.
func (s *Stream) List() (uint64, error) {
	kind, headerLen, size, err := s.readHeader()
	if err != nil {
		return 0, err
	}
	if kind != List {
		return 0, ErrExpectedList
	}
	s.pos += headerLen
	s.stack = append(s.stack, s.pos+size)
	return uint64(size), nil
}

// ListEnd leaves the innermost list. It fails with ErrNotAtEOL if any bytes
// of the list payload were left unread.
func (s *Stream) ListEnd() error {
	if len(s.stack) == 0 {
		return ErrNoOpenList
	}
	if s.pos != s.stack[len(s.stack)-1] {
		return ErrNotAtEOL
	}
	s.stack = s.stack[:len(s.stack)-1]
	return nil
}

// uintBytes reads a canonical unsigned integer of at most maxLen bytes and
// returns its big-endian content. Zero is returned as an empty slice.
func (s *Stream) uintBytes(maxLen int, rangeErr error) ([]byte, error) {
	b, err := s.Bytes()
	if err != nil {
		return nil, err
	}
	if len(b) > maxLen {
		return nil, rangeErr
	}
	if len(b) > 0 && b[0] == 0 {
		return nil, ErrCanonInt
	}
	return b, nil
}

// UintBytes reads a canonical unsigned integer no wider than maxLen bytes.
func (s *Stream) UintBytes(maxLen int) ([]byte, error) {
	return s.uintBytes(maxLen, ErrUintRange)
}

// Uint64 reads an RLP-encoded unsigned integer.
func (s *Stream) Uint64() (uint64, error) {
	b, err := s.uintBytes(8, ErrUint64Range)
	if err != nil {
		return 0, err
	}
	var v uint64
	for _, x := range b {
		v = v<<8 | uint64(x)
	}
	return v, nil
}

// BigInt reads an unsigned integer of up to 256 bits.
func (s *Stream) BigInt() (*big.Int, error) {
	b, err := s.uintBytes(32, ErrUint256Range)
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(b), nil
}

// Uint256 reads an unsigned integer of up to 256 bits.
func (s *Stream) Uint256() (*uint256.Int, error) {
	b, err := s.uintBytes(32, ErrUint256Range)
	if err != nil {
		return nil, err
	}
	return new(uint256.Int).SetBytes(b), nil
}

// Bool reads a boolean encoded as 0x80 (false) or 0x01 (true).
func (s *Stream) Bool() (bool, error) {
	b, err := s.Bytes()
	if err != nil {
		return false, err
	}
	switch {
	case len(b) == 0:
		return false, nil
	case len(b) == 1 && b[0] == 0x01:
		return true, nil
	case len(b) == 1 && b[0] == 0x00:
		return false, ErrCanonInt
	default:
		return false, ErrInvalidBool
	}
}
