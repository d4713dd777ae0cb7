package types

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"
)

// BloomBitLength is the number of bits in a bloom filter (2048).
const BloomBitLength = 8 * BloomLength

// bloom9 computes the 3 bit positions for a bloom filter entry.
// It takes the first 6 bytes of keccak256(data), splits them into 3 pairs
// of 2 bytes each, and interprets each pair as a big-endian uint16 mod 2048.
func bloom9(data []byte) [3]uint {
	d := sha3.NewLegacyKeccak256()
	d.Write(data)
	h := d.Sum(nil)
	var bits [3]uint
	for i := 0; i < 3; i++ {
		bits[i] = uint(binary.BigEndian.Uint16(h[2*i:])) & (BloomBitLength - 1)
	}
	return bits
}

// Add sets the 3 bloom bits derived from data. Bit 0 is the least
// significant bit of the last byte.
func (b *Bloom) Add(data []byte) {
	for _, bit := range bloom9(data) {
		b[BloomLength-1-bit/8] |= 1 << (bit % 8)
	}
}

// Test reports whether all 3 bits for data are set. False positives are
// possible.
func (b Bloom) Test(data []byte) bool {
	return BloomContains(b, data)
}

// CreateBloom computes the bloom for a list of logs from each log address
// and topic.
func CreateBloom(logs []*Log) Bloom {
	var bloom Bloom
	for _, log := range logs {
		bloom.Add(log.Address.Bytes())
		for _, topic := range log.Topics {
			bloom.Add(topic.Bytes())
		}
	}
	return bloom
}

// MergeBloom ORs together the blooms of the given receipts.
func MergeBloom(receipts []*Receipt) Bloom {
	var bloom Bloom
	for _, receipt := range receipts {
		for i := range receipt.Bloom {
			bloom[i] |= receipt.Bloom[i]
		}
	}
	return bloom
}

// BloomContains checks whether the bloom filter contains the given data.
func BloomContains(bloom Bloom, data []byte) bool {
	for _, bit := range bloom9(data) {
		if bloom[BloomLength-1-bit/8]&(1<<(bit%8)) == 0 {
			return false
		}
	}
	return true
}

// BloomMatchesLog checks if a bloom filter could contain the given log.
func BloomMatchesLog(bloom Bloom, l *Log) bool {
	if !BloomContains(bloom, l.Address.Bytes()) {
		return false
	}
	for _, topic := range l.Topics {
		if !BloomContains(bloom, topic.Bytes()) {
			return false
		}
	}
	return true
}
