// Package rlp implements the recursive length prefix encoding used on the
// wire by Ethereum-family nodes.
//
// The encoder is append-based: every Append function writes one item to dst
// and returns the extended slice, and every Size function reports how many
// bytes the matching Append call will write. Composite values compute their
// payload size first, emit the list header, and then append their items, so
// no intermediate buffers are needed.
package rlp

import (
	"encoding/binary"
	"math/big"
	"math/bits"

	"github.com/holiman/uint256"
)

const (
	// shortSizeLimit is the largest payload that fits in a single-byte header.
	shortSizeLimit = 55

	emptyString = 0x80
	emptyList   = 0xc0
)

// AppendUint64 appends the canonical encoding of v to dst.
func AppendUint64(dst []byte, v uint64) []byte {
	switch {
	case v == 0:
		return append(dst, emptyString)
	case v < 0x80:
		return append(dst, byte(v))
	}
	n := intsize(v)
	dst = append(dst, emptyString+byte(n))
	return appendUintBE(dst, v, n)
}

// AppendBool appends true as 0x01 and false as the empty string.
func AppendBool(dst []byte, v bool) []byte {
	if v {
		return append(dst, 0x01)
	}
	return append(dst, emptyString)
}

// AppendBigInt appends the canonical big-endian encoding of i. A nil value
// encodes as zero. The sign is ignored; negative numbers have no encoding.
func AppendBigInt(dst []byte, i *big.Int) []byte {
	if i == nil || i.Sign() == 0 {
		return append(dst, emptyString)
	}
	if i.BitLen() <= 64 {
		return AppendUint64(dst, new(big.Int).Abs(i).Uint64())
	}
	return AppendBytes(dst, i.Bytes())
}

// AppendUint256 appends the canonical big-endian encoding of i. A nil value
// encodes as zero.
func AppendUint256(dst []byte, i *uint256.Int) []byte {
	if i == nil || i.IsZero() {
		return append(dst, emptyString)
	}
	if i.IsUint64() {
		return AppendUint64(dst, i.Uint64())
	}
	return AppendBytes(dst, i.Bytes())
}

// AppendBytes appends data as an RLP string.
func AppendBytes(dst, data []byte) []byte {
	n := len(data)
	if n == 1 && data[0] < 0x80 {
		return append(dst, data[0])
	}
	dst = appendHeader(dst, emptyString, uint64(n))
	return append(dst, data...)
}

// AppendListHeader appends a list header for a payload of payloadSize bytes.
// The caller must append exactly payloadSize bytes of items afterwards.
func AppendListHeader(dst []byte, payloadSize int) []byte {
	return appendHeader(dst, emptyList, uint64(payloadSize))
}

// WrapList returns payload prefixed with a list header.
func WrapList(payload []byte) []byte {
	out := make([]byte, 0, ListSize(len(payload)))
	out = AppendListHeader(out, len(payload))
	return append(out, payload...)
}

// appendHeader writes a short or long header. base is 0x80 for strings and
// 0xc0 for lists.
func appendHeader(dst []byte, base byte, size uint64) []byte {
	if size <= shortSizeLimit {
		return append(dst, base+byte(size))
	}
	n := intsize(size)
	dst = append(dst, base+shortSizeLimit+byte(n))
	return appendUintBE(dst, size, n)
}

// Uint64Size returns the number of bytes AppendUint64 writes for v.
func Uint64Size(v uint64) int {
	if v < 0x80 {
		return 1
	}
	return 1 + intsize(v)
}

// BigIntSize returns the number of bytes AppendBigInt writes for i.
func BigIntSize(i *big.Int) int {
	if i == nil || i.Sign() == 0 {
		return 1
	}
	if i.BitLen() <= 7 {
		return 1
	}
	return StringSize((i.BitLen() + 7) / 8)
}

// Uint256Size returns the number of bytes AppendUint256 writes for i.
func Uint256Size(i *uint256.Int) int {
	if i == nil || i.BitLen() <= 7 {
		return 1
	}
	return StringSize(i.ByteLen())
}

// BytesSize returns the number of bytes AppendBytes writes for data.
func BytesSize(data []byte) int {
	if len(data) == 1 && data[0] < 0x80 {
		return 1
	}
	return StringSize(len(data))
}

// StringSize returns the encoded size of a string whose content is n bytes
// long and is not a single byte below 0x80.
func StringSize(n int) int {
	return headerSize(uint64(n)) + n
}

// ListSize returns the encoded size of a list with the given payload size.
func ListSize(payloadSize int) int {
	return headerSize(uint64(payloadSize)) + payloadSize
}

func headerSize(size uint64) int {
	if size <= shortSizeLimit {
		return 1
	}
	return 1 + intsize(size)
}

// intsize returns the minimal number of big-endian bytes needed for v.
func intsize(v uint64) int {
	if v == 0 {
		return 1
	}
	return (bits.Len64(v) + 7) / 8
}

func appendUintBE(dst []byte, v uint64, n int) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	return append(dst, buf[8-n:]...)
}
