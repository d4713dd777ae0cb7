// Package l1pricing estimates what a batch poster pays on the parent chain
// for a transaction's compressed calldata.
//
// Quantities are 128-bit: every intermediate result saturates at 2^128-1
// instead of wrapping.
package l1pricing

import "github.com/holiman/uint256"

const (
	// TxDataNonZeroGasEIP2028 is the parent-chain gas charged per non-zero
	// calldata byte.
	TxDataNonZeroGasEIP2028 = 16

	OneInBips = 10_000

	// EstimationPaddingUnits pads estimates by sixteen non-zero bytes.
	EstimationPaddingUnits = 16 * TxDataNonZeroGasEIP2028

	// EstimationPaddingBasisPoints adds 1% on top of the padded units.
	EstimationPaddingBasisPoints = 100
)

// MaxAmount is the saturation bound of all results.
var MaxAmount = new(uint256.Int).Sub(new(uint256.Int).Lsh(uint256.NewInt(1), 128), uint256.NewInt(1))

// State is the pricing state needed for estimates.
type State struct {
	L1BaseFeeWei *uint256.Int
}

// NewState returns a State with the given parent-chain base fee.
func NewState(l1BaseFeeWei uint64) *State {
	return &State{L1BaseFeeWei: uint256.NewInt(l1BaseFeeWei)}
}

func (s *State) baseFee() *uint256.Int {
	if s == nil || s.L1BaseFeeWei == nil {
		return new(uint256.Int)
	}
	return clamp(new(uint256.Int).Set(s.L1BaseFeeWei))
}

// PosterDataCostFromUnits prices units of parent-chain calldata gas.
func (s *State) PosterDataCostFromUnits(units *uint256.Int) *uint256.Int {
	return saturatingMul(s.baseFee(), units)
}

// PosterDataCost prices dataGas at the current base fee.
func (s *State) PosterDataCost(dataGas *uint256.Int) *uint256.Int {
	return saturatingMul(s.baseFee(), dataGas)
}

// PosterDataCostEstimateFromLen estimates the cost of posting brotliLen
// compressed bytes. It returns the cost and the padded units it priced.
func (s *State) PosterDataCostEstimateFromLen(brotliLen uint64) (cost, paddedUnits *uint256.Int) {
	paddedUnits = ApplyEstimationPadding(PosterUnitsFromBrotliLen(brotliLen))
	return s.PosterDataCostFromUnits(paddedUnits), paddedUnits
}

// PosterUnitsFromBrotliLen charges every compressed byte as non-zero.
func PosterUnitsFromBrotliLen(brotliLen uint64) *uint256.Int {
	return saturatingMul(uint256.NewInt(brotliLen), uint256.NewInt(TxDataNonZeroGasEIP2028))
}

// ApplyEstimationPadding adds EstimationPaddingUnits and then
// EstimationPaddingBasisPoints to units.
func ApplyEstimationPadding(units *uint256.Int) *uint256.Int {
	padded := saturatingAdd(units, uint256.NewInt(EstimationPaddingUnits))
	padded = saturatingMul(padded, uint256.NewInt(OneInBips+EstimationPaddingBasisPoints))
	return padded.Div(padded, uint256.NewInt(OneInBips))
}

func saturatingMul(a, b *uint256.Int) *uint256.Int {
	a, b = clamp(new(uint256.Int).Set(a)), clamp(new(uint256.Int).Set(b))
	// Two 128-bit operands cannot overflow 256 bits.
	return clamp(a.Mul(a, b))
}

func saturatingAdd(a, b *uint256.Int) *uint256.Int {
	a, b = clamp(new(uint256.Int).Set(a)), clamp(new(uint256.Int).Set(b))
	return clamp(a.Add(a, b))
}

func clamp(x *uint256.Int) *uint256.Int {
	if x.Gt(MaxAmount) {
		return x.Set(MaxAmount)
	}
	return x
}
