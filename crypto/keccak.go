// Package crypto holds the hashing helpers used to derive ABI selectors,
// event topics and retryable escrow addresses.
package crypto

import (
	"golang.org/x/crypto/sha3"

	"github.com/arbwire/arbwire/core/types"
)

// Keccak256 calculates the Keccak-256 hash of the given data.
func Keccak256(data ...[]byte) []byte {
	d := sha3.NewLegacyKeccak256()
	for _, b := range data {
		d.Write(b)
	}
	return d.Sum(nil)
}

// Keccak256Hash calculates Keccak-256 and returns it as a types.Hash.
func Keccak256Hash(data ...[]byte) types.Hash {
	return types.BytesToHash(Keccak256(data...))
}

// Selector returns the 4-byte ABI method id for a canonical signature such
// as "redeem(bytes32)".
func Selector(signature string) [4]byte {
	var id [4]byte
	copy(id[:], Keccak256([]byte(signature)))
	return id
}

// EventTopic returns topic 0 of logs emitted by the event with the given
// canonical signature.
func EventTopic(signature string) types.Hash {
	return Keccak256Hash([]byte(signature))
}

// HashToAddress keeps the low 20 bytes of h.
func HashToAddress(h types.Hash) types.Address {
	return types.BytesToAddress(h[12:])
}
