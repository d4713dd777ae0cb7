// Package geth converts between arbwire's receipt types and go-ethereum's.
// It is the only non-test package that imports go-ethereum/core/types.
package geth

import (
	"errors"
	"math/big"

	gethcommon "github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/holiman/uint256"

	"github.com/arbwire/arbwire/core/types"
)

// ErrGasOverflow is returned when a cumulative gas value does not fit the
// uint64 go-ethereum stores it in.
var ErrGasOverflow = errors.New("geth: cumulative gas exceeds uint64")

// --- Address and Hash conversion (layout-compatible) ---

func ToGethAddress(a types.Address) gethcommon.Address { return gethcommon.Address(a) }

func FromGethAddress(a gethcommon.Address) types.Address { return types.Address(a) }

func ToGethHash(h types.Hash) gethcommon.Hash { return gethcommon.Hash(h) }

func FromGethHash(h gethcommon.Hash) types.Hash { return types.Hash(h) }

// ToGethAddressPtr converts an optional address, keeping nil.
func ToGethAddressPtr(a *types.Address) *gethcommon.Address {
	if a == nil {
		return nil
	}
	g := ToGethAddress(*a)
	return &g
}

// --- Integer conversion ---

// ToUint256 converts a big integer, returning zero for nil and reporting
// whether the value was truncated.
func ToUint256(b *big.Int) (*uint256.Int, bool) {
	if b == nil {
		return new(uint256.Int), false
	}
	if b.Sign() < 0 {
		return new(uint256.Int), true
	}
	return uint256.FromBig(b)
}

// FromUint256 converts *uint256.Int to *big.Int.
func FromUint256(u *uint256.Int) *big.Int {
	if u == nil {
		return new(big.Int)
	}
	return u.ToBig()
}

// --- Log conversion ---

// ToGethLog converts the consensus fields of a log.
func ToGethLog(l *types.Log) *gethtypes.Log {
	if l == nil {
		return nil
	}
	topics := make([]gethcommon.Hash, len(l.Topics))
	for i, t := range l.Topics {
		topics[i] = ToGethHash(t)
	}
	return &gethtypes.Log{
		Address: ToGethAddress(l.Address),
		Topics:  topics,
		Data:    l.Data,
	}
}

// FromGethLog converts a go-ethereum log, dropping its block context.
func FromGethLog(l *gethtypes.Log) *types.Log {
	if l == nil {
		return nil
	}
	var topics []types.Hash
	if len(l.Topics) > 0 {
		topics = make([]types.Hash, len(l.Topics))
		for i, t := range l.Topics {
			topics[i] = FromGethHash(t)
		}
	}
	return &types.Log{
		Address: FromGethAddress(l.Address),
		Topics:  topics,
		Data:    l.Data,
	}
}

// FromGethLogs converts a slice of go-ethereum Logs.
func FromGethLogs(logs []*gethtypes.Log) []*types.Log {
	if len(logs) == 0 {
		return nil
	}
	result := make([]*types.Log, len(logs))
	for i, l := range logs {
		result[i] = FromGethLog(l)
	}
	return result
}

// --- Receipt conversion ---

// ToGethReceipt converts a receipt to a legacy-typed go-ethereum receipt,
// whose consensus encoding is the same four-field list.
func ToGethReceipt(r *types.Receipt) (*gethtypes.Receipt, error) {
	if !r.CumulativeGasUsed.IsUint64() {
		return nil, ErrGasOverflow
	}
	logs := make([]*gethtypes.Log, len(r.Logs))
	for i, l := range r.Logs {
		logs[i] = ToGethLog(l)
	}
	return &gethtypes.Receipt{
		Type:              gethtypes.LegacyTxType,
		Status:            r.StatusCode(),
		CumulativeGasUsed: r.CumulativeGasUsed.Uint64(),
		Bloom:             gethtypes.Bloom(r.Bloom),
		Logs:              logs,
	}, nil
}

// FromGethReceipt converts the consensus fields of a go-ethereum receipt.
// Pre-Byzantium receipts carrying a post-state root are treated by status
// alone.
func FromGethReceipt(r *gethtypes.Receipt) *types.Receipt {
	out := types.NewReceipt(r.Status == gethtypes.ReceiptStatusSuccessful, r.CumulativeGasUsed)
	out.Bloom = types.Bloom(r.Bloom)
	out.Logs = FromGethLogs(r.Logs)
	return out
}
