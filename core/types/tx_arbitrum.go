package types

import (
	"math/big"
)

// DepositTx credits L1 funds to an L2 account (type 0x64).
type DepositTx struct {
	ChainID     *big.Int
	L1RequestID Hash
	From        Address
	To          Address
	Value       *big.Int
}

// UnsignedTx is an L1-originated call without an L2 signature (type 0x65).
type UnsignedTx struct {
	ChainID   *big.Int
	From      Address
	Nonce     uint64
	GasFeeCap *big.Int
	Gas       uint64
	To        *Address // nil means contract creation
	Value     *big.Int
	Data      []byte
}

// ContractTx is an L1 contract call keyed by its inbox request id (type 0x66).
type ContractTx struct {
	ChainID   *big.Int
	RequestID Hash
	From      Address
	GasFeeCap *big.Int
	Gas       uint64
	To        *Address // nil means contract creation
	Value     *big.Int
	Data      []byte
}

// RetryTx is a redeem attempt of a retryable ticket (type 0x68).
type RetryTx struct {
	ChainID             *big.Int
	Nonce               uint64
	From                Address
	GasFeeCap           *big.Int
	Gas                 uint64
	To                  *Address // nil means contract creation
	Value               *big.Int
	Data                []byte
	TicketID            Hash
	RefundTo            Address
	MaxRefund           *big.Int // the maximum refund sent to RefundTo (the rest goes to From)
	SubmissionFeeRefund *big.Int // the submission fee to refund if successful (capped by MaxRefund)
}

// SubmitRetryableTx creates a retryable ticket from L1 (type 0x69).
type SubmitRetryableTx struct {
	ChainID          *big.Int
	RequestID        Hash
	From             Address
	L1BaseFee        *big.Int
	DepositValue     *big.Int
	GasFeeCap        *big.Int // wei per gas
	Gas              uint64   // gas limit for the retryable tx, actual gas spending is EffectiveGas
	RetryTo          *Address // nil means contract creation
	RetryValue       *big.Int // wei amount
	Beneficiary      Address
	MaxSubmissionFee *big.Int
	FeeRefundAddr    Address
	RetryData        []byte // contract invocation input data
}

// InternalTx is an ArbOS-issued system transaction (type 0x6A).
type InternalTx struct {
	ChainID *big.Int
	Data    []byte
}

// LegacyTx wraps a pre-typed transaction carried inside an Arbitrum
// envelope (type 0x78). Payload is everything after the type byte and is
// never field-decoded here.
type LegacyTx struct {
	Payload []byte
}

func (tx *DepositTx) txType() TxType      { return DepositTxType }
func (tx *DepositTx) chainID() *big.Int    { return tx.ChainID }
func (tx *DepositTx) data() []byte         { return nil }
func (tx *DepositTx) gas() uint64          { return 0 }
func (tx *DepositTx) gasFeeCap() *big.Int  { return new(big.Int) }
func (tx *DepositTx) value() *big.Int      { return tx.Value }
func (tx *DepositTx) nonce() uint64        { return 0 }
func (tx *DepositTx) to() *Address         { to := tx.To; return &to }
func (tx *DepositTx) copy() TxData {
	return &DepositTx{
		ChainID:     copyBig(tx.ChainID),
		L1RequestID: tx.L1RequestID,
		From:        tx.From,
		To:          tx.To,
		Value:       copyBig(tx.Value),
	}
}

func (tx *UnsignedTx) txType() TxType     { return UnsignedTxType }
func (tx *UnsignedTx) chainID() *big.Int   { return tx.ChainID }
func (tx *UnsignedTx) data() []byte        { return tx.Data }
func (tx *UnsignedTx) gas() uint64         { return tx.Gas }
func (tx *UnsignedTx) gasFeeCap() *big.Int { return tx.GasFeeCap }
func (tx *UnsignedTx) value() *big.Int     { return tx.Value }
func (tx *UnsignedTx) nonce() uint64       { return tx.Nonce }
func (tx *UnsignedTx) to() *Address        { return tx.To }
func (tx *UnsignedTx) copy() TxData {
	return &UnsignedTx{
		ChainID:   copyBig(tx.ChainID),
		From:      tx.From,
		Nonce:     tx.Nonce,
		GasFeeCap: copyBig(tx.GasFeeCap),
		Gas:       tx.Gas,
		To:        copyAddressPtr(tx.To),
		Value:     copyBig(tx.Value),
		Data:      copyBytes(tx.Data),
	}
}

func (tx *ContractTx) txType() TxType     { return ContractTxType }
func (tx *ContractTx) chainID() *big.Int   { return tx.ChainID }
func (tx *ContractTx) data() []byte        { return tx.Data }
func (tx *ContractTx) gas() uint64         { return tx.Gas }
func (tx *ContractTx) gasFeeCap() *big.Int { return tx.GasFeeCap }
func (tx *ContractTx) value() *big.Int     { return tx.Value }
func (tx *ContractTx) nonce() uint64       { return 0 }
func (tx *ContractTx) to() *Address        { return tx.To }
func (tx *ContractTx) copy() TxData {
	return &ContractTx{
		ChainID:   copyBig(tx.ChainID),
		RequestID: tx.RequestID,
		From:      tx.From,
		GasFeeCap: copyBig(tx.GasFeeCap),
		Gas:       tx.Gas,
		To:        copyAddressPtr(tx.To),
		Value:     copyBig(tx.Value),
		Data:      copyBytes(tx.Data),
	}
}

func (tx *RetryTx) txType() TxType     { return RetryTxType }
func (tx *RetryTx) chainID() *big.Int   { return tx.ChainID }
func (tx *RetryTx) data() []byte        { return tx.Data }
func (tx *RetryTx) gas() uint64         { return tx.Gas }
func (tx *RetryTx) gasFeeCap() *big.Int { return tx.GasFeeCap }
func (tx *RetryTx) value() *big.Int     { return tx.Value }
func (tx *RetryTx) nonce() uint64       { return tx.Nonce }
func (tx *RetryTx) to() *Address        { return tx.To }
func (tx *RetryTx) copy() TxData {
	return &RetryTx{
		ChainID:             copyBig(tx.ChainID),
		Nonce:               tx.Nonce,
		From:                tx.From,
		GasFeeCap:           copyBig(tx.GasFeeCap),
		Gas:                 tx.Gas,
		To:                  copyAddressPtr(tx.To),
		Value:               copyBig(tx.Value),
		Data:                copyBytes(tx.Data),
		TicketID:            tx.TicketID,
		RefundTo:            tx.RefundTo,
		MaxRefund:           copyBig(tx.MaxRefund),
		SubmissionFeeRefund: copyBig(tx.SubmissionFeeRefund),
	}
}

func (tx *SubmitRetryableTx) txType() TxType     { return SubmitRetryableTxType }
func (tx *SubmitRetryableTx) chainID() *big.Int   { return tx.ChainID }
func (tx *SubmitRetryableTx) data() []byte        { return tx.RetryData }
func (tx *SubmitRetryableTx) gas() uint64         { return tx.Gas }
func (tx *SubmitRetryableTx) gasFeeCap() *big.Int { return tx.GasFeeCap }
func (tx *SubmitRetryableTx) value() *big.Int     { return new(big.Int) }
func (tx *SubmitRetryableTx) nonce() uint64       { return 0 }

// to returns the ArbRetryableTx precompile, which receives the submission.
func (tx *SubmitRetryableTx) to() *Address { to := ArbRetryableTxAddress; return &to }
func (tx *SubmitRetryableTx) copy() TxData {
	return &SubmitRetryableTx{
		ChainID:          copyBig(tx.ChainID),
		RequestID:        tx.RequestID,
		From:             tx.From,
		L1BaseFee:        copyBig(tx.L1BaseFee),
		DepositValue:     copyBig(tx.DepositValue),
		GasFeeCap:        copyBig(tx.GasFeeCap),
		Gas:              tx.Gas,
		RetryTo:          copyAddressPtr(tx.RetryTo),
		RetryValue:       copyBig(tx.RetryValue),
		Beneficiary:      tx.Beneficiary,
		MaxSubmissionFee: copyBig(tx.MaxSubmissionFee),
		FeeRefundAddr:    tx.FeeRefundAddr,
		RetryData:        copyBytes(tx.RetryData),
	}
}

func (tx *InternalTx) txType() TxType     { return InternalTxType }
func (tx *InternalTx) chainID() *big.Int   { return tx.ChainID }
func (tx *InternalTx) data() []byte        { return tx.Data }
func (tx *InternalTx) gas() uint64         { return 0 }
func (tx *InternalTx) gasFeeCap() *big.Int { return new(big.Int) }
func (tx *InternalTx) value() *big.Int     { return new(big.Int) }
func (tx *InternalTx) nonce() uint64       { return 0 }
func (tx *InternalTx) to() *Address        { to := ArbosAddress; return &to }
func (tx *InternalTx) copy() TxData {
	return &InternalTx{
		ChainID: copyBig(tx.ChainID),
		Data:    copyBytes(tx.Data),
	}
}

// The legacy payload is opaque, so none of its fields are visible here.
func (tx *LegacyTx) txType() TxType     { return LegacyTxType }
func (tx *LegacyTx) chainID() *big.Int   { return nil }
func (tx *LegacyTx) data() []byte        { return nil }
func (tx *LegacyTx) gas() uint64         { return 0 }
func (tx *LegacyTx) gasFeeCap() *big.Int { return nil }
func (tx *LegacyTx) value() *big.Int     { return nil }
func (tx *LegacyTx) nonce() uint64       { return 0 }
func (tx *LegacyTx) to() *Address        { return nil }
func (tx *LegacyTx) copy() TxData {
	return &LegacyTx{Payload: copyBytes(tx.Payload)}
}

func copyBig(i *big.Int) *big.Int {
	if i == nil {
		return nil
	}
	return new(big.Int).Set(i)
}

func copyAddressPtr(a *Address) *Address {
	if a == nil {
		return nil
	}
	cpy := *a
	return &cpy
}

func copyBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	cpy := make([]byte, len(b))
	copy(cpy, b)
	return cpy
}
