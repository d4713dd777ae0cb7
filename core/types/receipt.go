package types

import "github.com/holiman/uint256"

// Receipt status values as they appear on the wire.
const (
	ReceiptStatusFailed     = uint64(0)
	ReceiptStatusSuccessful = uint64(1)
)

// Receipt represents the results of a transaction.
type Receipt struct {
	// Consensus fields
	Status            bool
	CumulativeGasUsed uint256.Int // at most 128 bits
	Bloom             Bloom
	Logs              []*Log

	// GasUsedForL1 is the share of gas spent on L1 data posting. It is
	// reported over JSON only and never encoded.
	GasUsedForL1 *uint64
}

// NewReceipt creates a receipt with the given status and cumulative gas.
func NewReceipt(succeeded bool, cumulativeGasUsed uint64) *Receipt {
	r := &Receipt{Status: succeeded}
	r.CumulativeGasUsed.SetUint64(cumulativeGasUsed)
	return r
}

// Succeeded returns true if the receipt indicates a successful transaction.
func (r *Receipt) Succeeded() bool {
	return r.Status
}

// StatusCode returns the wire value of the status field.
func (r *Receipt) StatusCode() uint64 {
	if r.Status {
		return ReceiptStatusSuccessful
	}
	return ReceiptStatusFailed
}

// DeriveBloom recomputes the bloom from the receipt's logs.
func (r *Receipt) DeriveBloom() {
	r.Bloom = CreateBloom(r.Logs)
}
