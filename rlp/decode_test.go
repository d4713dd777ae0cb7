package rlp

import (
	"bytes"
	"errors"
	"io"
	"math/big"
	"testing"
)

func TestStreamBytes(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  []byte
	}{
		{"empty", []byte{0x80}, []byte{}},
		{"single zero", []byte{0x00}, []byte{0x00}},
		{"single 0x7f", []byte{0x7f}, []byte{0x7f}},
		{"single 0x80", []byte{0x81, 0x80}, []byte{0x80}},
		{"three bytes", []byte{0x83, 0x01, 0x02, 0x03}, []byte{0x01, 0x02, 0x03}},
		{"long", append([]byte{0xb8, 0x38}, bytes.Repeat([]byte{0xaa}, 56)...), bytes.Repeat([]byte{0xaa}, 56)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStreamFromBytes(tt.input)
			got, err := s.Bytes()
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Fatalf("got %x, want %x", got, tt.want)
			}
			if s.Pos() != len(tt.input) {
				t.Fatalf("consumed %d, want %d", s.Pos(), len(tt.input))
			}
		})
	}
}

func TestStreamUint64(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  uint64
	}{
		{"uint(0)", []byte{0x80}, 0},
		{"uint(1)", []byte{0x01}, 1},
		{"uint(127)", []byte{0x7f}, 127},
		{"uint(128)", []byte{0x81, 0x80}, 128},
		{"uint(1024)", []byte{0x82, 0x04, 0x00}, 1024},
		{"uint(max)", []byte{0x88, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, 1<<64 - 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewStreamFromBytes(tt.input).Uint64()
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Fatalf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestStreamBigInt(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  *big.Int
	}{
		{"big.Int(0)", []byte{0x80}, big.NewInt(0)},
		{"big.Int(1)", []byte{0x01}, big.NewInt(1)},
		{"big.Int(128)", []byte{0x81, 0x80}, big.NewInt(128)},
		{"big.Int(1024)", []byte{0x82, 0x04, 0x00}, big.NewInt(1024)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewStreamFromBytes(tt.input).BigInt()
			if err != nil {
				t.Fatal(err)
			}
			if got.Cmp(tt.want) != 0 {
				t.Fatalf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestStreamBool(t *testing.T) {
	for _, tt := range []struct {
		input []byte
		want  bool
		err   error
	}{
		{[]byte{0x80}, false, nil},
		{[]byte{0x01}, true, nil},
		{[]byte{0x00}, false, ErrCanonInt},
		{[]byte{0x02}, false, ErrInvalidBool},
		{[]byte{0xc0}, false, ErrExpectedString},
	} {
		got, err := NewStreamFromBytes(tt.input).Bool()
		if !errors.Is(err, tt.err) {
			t.Fatalf("%x: err = %v, want %v", tt.input, err, tt.err)
		}
		if err == nil && got != tt.want {
			t.Fatalf("%x: got %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestStreamList(t *testing.T) {
	// ["cat", "dog"]
	input := []byte{0xc8, 0x83, 0x63, 0x61, 0x74, 0x83, 0x64, 0x6f, 0x67}
	s := NewStreamFromBytes(input)
	size, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	if size != 8 {
		t.Fatalf("list size = %d, want 8", size)
	}
	var got []string
	for !s.AtListEnd() {
		b, err := s.Bytes()
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, string(b))
	}
	if err := s.ListEnd(); err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0] != "cat" || got[1] != "dog" {
		t.Fatalf("got %v, want [cat dog]", got)
	}
	if s.Pos() != len(input) {
		t.Fatalf("consumed %d, want %d", s.Pos(), len(input))
	}
}

func TestStreamListEndLeftover(t *testing.T) {
	// ["cat", "dog"], only the first item read.
	s := NewStreamFromBytes([]byte{0xc8, 0x83, 0x63, 0x61, 0x74, 0x83, 0x64, 0x6f, 0x67})
	if _, err := s.List(); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Bytes(); err != nil {
		t.Fatal(err)
	}
	if err := s.ListEnd(); !errors.Is(err, ErrNotAtEOL) {
		t.Fatalf("err = %v, want ErrNotAtEOL", err)
	}
}

func TestStreamReadsConfinedToList(t *testing.T) {
	// [0x01] followed by an unrelated byte outside the list.
	s := NewStreamFromBytes([]byte{0xc1, 0x01, 0x02})
	if _, err := s.List(); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Uint64(); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Uint64(); !errors.Is(err, io.EOF) {
		t.Fatalf("read past list end: err = %v, want io.EOF", err)
	}
	if err := s.ListEnd(); err != nil {
		t.Fatal(err)
	}
}

func TestStreamErrors(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		read  func(*Stream) error
		want  error
	}{
		{"string too short", []byte{0x83, 0x01}, bytesRead, io.ErrUnexpectedEOF},
		{"long string too short", []byte{0xb8, 0x38, 0x01}, bytesRead, io.ErrUnexpectedEOF},
		{"long string length truncated", []byte{0xb9, 0x01}, bytesRead, io.ErrUnexpectedEOF},
		{"huge declared length", []byte{0xbf, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, bytesRead, io.ErrUnexpectedEOF},
		{"list too short", []byte{0xc3, 0x01}, listRead, io.ErrUnexpectedEOF},
		{"huge list length", []byte{0xfb, 0x7f, 0xff, 0xff, 0xff}, listRead, io.ErrUnexpectedEOF},
		{"non-canonical single byte", []byte{0x81, 0x05}, bytesRead, ErrCanonSize},
		{"long form for short string", []byte{0xb8, 0x01, 0x01}, bytesRead, ErrNonCanonicalSize},
		{"leading zero in length", []byte{0xb9, 0x00, 0x38}, bytesRead, ErrNonCanonicalSize},
		{"long form for short list", []byte{0xf8, 0x01, 0x01}, listRead, ErrNonCanonicalSize},
		{"list where string expected", []byte{0xc0}, bytesRead, ErrExpectedString},
		{"string where list expected", []byte{0x80}, listRead, ErrExpectedList},
		{"leading zero integer", []byte{0x82, 0x00, 0x01}, uint64Read, ErrCanonInt},
		{"uint64 overflow", append([]byte{0x89}, bytes.Repeat([]byte{0x01}, 9)...), uint64Read, ErrUint64Range},
		{"uint256 overflow", append([]byte{0xa1}, bytes.Repeat([]byte{0x01}, 33)...), bigRead, ErrUint256Range},
		{"empty input", []byte{}, bytesRead, io.EOF},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.read(NewStreamFromBytes(tt.input))
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestStreamUintBytesLimit(t *testing.T) {
	enc := AppendBytes(nil, bytes.Repeat([]byte{0xff}, 17))
	if _, err := NewStreamFromBytes(enc).UintBytes(16); !errors.Is(err, ErrUintRange) {
		t.Fatalf("err = %v, want ErrUintRange", err)
	}
	enc = AppendBytes(nil, bytes.Repeat([]byte{0xff}, 16))
	b, err := NewStreamFromBytes(enc).UintBytes(16)
	if err != nil {
		t.Fatal(err)
	}
	if len(b) != 16 {
		t.Fatalf("got %d bytes, want 16", len(b))
	}
}

func TestListEndWithoutList(t *testing.T) {
	if err := NewStreamFromBytes([]byte{0x80}).ListEnd(); !errors.Is(err, ErrNoOpenList) {
		t.Fatalf("err = %v, want ErrNoOpenList", err)
	}
}

func bytesRead(s *Stream) error  { _, err := s.Bytes(); return err }
func listRead(s *Stream) error   { _, err := s.List(); return err }
func uint64Read(s *Stream) error { _, err := s.Uint64(); return err }
func bigRead(s *Stream) error    { _, err := s.BigInt(); return err }
