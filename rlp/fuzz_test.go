package rlp

import (
	"testing"
)

func FuzzStream(f *testing.F) {
	f.Add([]byte{0x80})                                                 // empty string
	f.Add([]byte{0x83, 0x64, 0x6f, 0x67})                               // "dog"
	f.Add([]byte{0x82, 0x04, 0x00})                                     // uint(1024)
	f.Add([]byte{0xc0})                                                 // empty list
	f.Add([]byte{0xc8, 0x83, 0x63, 0x61, 0x74, 0x83, 0x64, 0x6f, 0x67}) // ["cat","dog"]
	f.Add([]byte{0xf9, 0xff, 0xff})                                     // long list, truncated

	f.Fuzz(func(t *testing.T, data []byte) {
		// Walk the input as nested lists of strings; must never panic or
		// report a position past the input.
		s := NewStreamFromBytes(data)
		walk(s, 0)
		if s.Pos() > len(data) {
			t.Fatalf("position %d beyond input length %d", s.Pos(), len(data))
		}
	})
}

func walk(s *Stream, depth int) {
	if depth > 16 {
		return
	}
	for !s.AtListEnd() {
		kind, _, err := s.Kind()
		if err != nil {
			return
		}
		if kind == List {
			if _, err := s.List(); err != nil {
				return
			}
			walk(s, depth+1)
			if err := s.ListEnd(); err != nil {
				return
			}
			continue
		}
		if _, err := s.Bytes(); err != nil {
			return
		}
	}
}
