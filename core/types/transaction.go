package types

import (
	"math/big"
	"sync/atomic"

	"golang.org/x/crypto/sha3"
)

// Transaction is an Arbitrum transaction envelope. Exactly one payload is
// active and its concrete type fixes the envelope's type byte.
type Transaction struct {
	inner TxData

	// caches
	hash atomic.Pointer[Hash]
	size atomic.Uint64
}

// TxData is the payload of an envelope. It is implemented only by the
// seven payload types of this package: DepositTx, UnsignedTx, ContractTx,
// RetryTx, SubmitRetryableTx, InternalTx and LegacyTx.
type TxData interface {
	txType() TxType
	chainID() *big.Int
	data() []byte
	gas() uint64
	gasFeeCap() *big.Int
	value() *big.Int
	nonce() uint64
	to() *Address

	copy() TxData
}

// NewTx creates a new transaction wrapping a deep copy of inner.
func NewTx(inner TxData) *Transaction {
	return &Transaction{inner: inner.copy()}
}

// Type returns the envelope type byte.
func (tx *Transaction) Type() TxType { return tx.inner.txType() }

// Inner returns a copy of the payload. Callers switch on its concrete type.
func (tx *Transaction) Inner() TxData { return tx.inner.copy() }

// ChainID returns the chain id the payload commits to, or nil for legacy
// envelopes whose payload is not decoded.
func (tx *Transaction) ChainID() *big.Int { return copyBig(tx.inner.chainID()) }

// Data returns the call input.
func (tx *Transaction) Data() []byte { return copyBytes(tx.inner.data()) }

// Gas returns the gas limit.
func (tx *Transaction) Gas() uint64 { return tx.inner.gas() }

// GasFeeCap returns the per-gas fee cap.
func (tx *Transaction) GasFeeCap() *big.Int { return copyBig(tx.inner.gasFeeCap()) }

// Value returns the amount of wei transferred to the recipient.
func (tx *Transaction) Value() *big.Int { return copyBig(tx.inner.value()) }

// Nonce returns the sender nonce. Kinds without a nonce report zero.
func (tx *Transaction) Nonce() uint64 { return tx.inner.nonce() }

// To returns the recipient address, or nil for contract creation and for
// legacy envelopes.
func (tx *Transaction) To() *Address { return copyAddressPtr(tx.inner.to()) }

// IsLegacy reports whether the envelope carries an opaque legacy payload.
func (tx *Transaction) IsLegacy() bool { return tx.Type() == LegacyTxType }

// Hash returns the Keccak-256 of the typed encoding. The result is cached.
func (tx *Transaction) Hash() Hash {
	if h := tx.hash.Load(); h != nil {
		return *h
	}
	d := sha3.NewLegacyKeccak256()
	d.Write(tx.EncodeTyped())
	var h Hash
	d.Sum(h[:0])
	tx.hash.Store(&h)
	return h
}

// Size returns the length of the typed encoding. The result is cached.
func (tx *Transaction) Size() uint64 {
	if size := tx.size.Load(); size > 0 {
		return size
	}
	size := uint64(1 + encodingSize(tx.inner))
	tx.size.Store(size)
	return size
}
