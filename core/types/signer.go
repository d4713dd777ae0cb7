package types

import (
	"errors"
	"math/big"
)

var ErrInvalidChainID = errors.New("invalid chain ID for signer")

// Signer resolves the sender of an envelope for one chain.
type Signer interface {
	// ChainID returns the chain ID this signer operates on.
	ChainID() *big.Int

	// Sender returns the account the envelope executes as.
	Sender(tx *Transaction) (Address, error)
}

// ArbitrumSigner resolves senders of the Arbitrum kinds, which carry no
// signature: the sender is a payload field, or ArbOS itself for internal
// transactions.
type ArbitrumSigner struct {
	chainID *big.Int
}

// NewArbitrumSigner creates a signer for the given chain.
func NewArbitrumSigner(chainID *big.Int) ArbitrumSigner {
	return ArbitrumSigner{chainID: copyBig(chainID)}
}

func (s ArbitrumSigner) ChainID() *big.Int { return copyBig(s.chainID) }

// Sender returns the sender after checking the envelope commits to the
// signer's chain. Legacy envelopes fail with ErrLegacySender.
func (s ArbitrumSigner) Sender(tx *Transaction) (Address, error) {
	if !tx.IsLegacy() && s.chainID != nil && bigOrZero(tx.inner.chainID()).Cmp(s.chainID) != 0 {
		return Address{}, ErrInvalidChainID
	}
	return Sender(tx)
}

// Sender returns the account an envelope executes as, without any chain
// check.
func Sender(tx *Transaction) (Address, error) {
	switch inner := tx.inner.(type) {
	case *DepositTx:
		return inner.From, nil
	case *UnsignedTx:
		return inner.From, nil
	case *ContractTx:
		return inner.From, nil
	case *RetryTx:
		return inner.From, nil
	case *SubmitRetryableTx:
		return inner.From, nil
	case *InternalTx:
		return ArbosAddress, nil
	case *LegacyTx:
		return Address{}, ErrLegacySender
	default:
		return Address{}, errors.New("types: unsupported tx data")
	}
}

// bigOrZero returns i if non-nil, otherwise a zero big.Int.
func bigOrZero(i *big.Int) *big.Int {
	if i != nil {
		return i
	}
	return new(big.Int)
}
