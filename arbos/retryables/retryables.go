// Package retryables builds the envelopes of the retryable ticket lifecycle:
// the submission from the parent chain and the retry redeeming it.
package retryables

import (
	"errors"
	"math/big"

	"github.com/arbwire/arbwire/core/types"
	"github.com/arbwire/arbwire/crypto"
)

const (
	// RetryableLifetimeSeconds is how long a ticket lives before it can be
	// reaped.
	RetryableLifetimeSeconds = 7 * 24 * 60 * 60

	// RetryableReapPrice is the gas charged to reap one expired ticket.
	RetryableReapPrice = 58_000

	submissionFeeOverhead = 1400
	submissionFeePerByte  = 6
)

var escrowPrefix = []byte("retryable escrow")

var ErrNotSubmitRetryable = errors.New("retryables: not a submit-retryable transaction")

// SubmissionFee is the fee charged for storing a ticket whose retry carries
// calldataLen bytes: (1400 + 6*calldataLen) * l1BaseFee.
func SubmissionFee(calldataLen int, l1BaseFee *big.Int) *big.Int {
	fee := big.NewInt(submissionFeeOverhead + submissionFeePerByte*int64(calldataLen))
	if l1BaseFee == nil {
		return fee.SetUint64(0)
	}
	return fee.Mul(fee, l1BaseFee)
}

// EscrowAddressFromTicket returns the account holding a ticket's call value
// until it is redeemed or expires.
func EscrowAddressFromTicket(ticketID types.Hash) types.Address {
	return crypto.HashToAddress(crypto.Keccak256Hash(escrowPrefix, ticketID[:]))
}

// Timeout returns the expiry timestamp of a ticket created at now.
func Timeout(now uint64) uint64 {
	return now + RetryableLifetimeSeconds
}

// Submission holds the fields of a ticket submission chosen by the parent
// chain inbox. The submission fee is derived, not supplied.
type Submission struct {
	ChainID       *big.Int
	RequestID     types.Hash
	From          types.Address
	L1BaseFee     *big.Int
	DepositValue  *big.Int
	GasFeeCap     *big.Int
	Gas           uint64
	RetryTo       *types.Address
	RetryValue    *big.Int
	Beneficiary   types.Address
	FeeRefundAddr types.Address
	RetryData     []byte
}

// NewSubmitRetryable builds a submit-retryable envelope whose
// MaxSubmissionFee is the fee SubmissionFee charges for its retry data.
func NewSubmitRetryable(s *Submission) *types.Transaction {
	return types.NewTx(&types.SubmitRetryableTx{
		ChainID:          s.ChainID,
		RequestID:        s.RequestID,
		From:             s.From,
		L1BaseFee:        s.L1BaseFee,
		DepositValue:     s.DepositValue,
		GasFeeCap:        s.GasFeeCap,
		Gas:              s.Gas,
		RetryTo:          s.RetryTo,
		RetryValue:       s.RetryValue,
		Beneficiary:      s.Beneficiary,
		MaxSubmissionFee: SubmissionFee(len(s.RetryData), s.L1BaseFee),
		FeeRefundAddr:    s.FeeRefundAddr,
		RetryData:        s.RetryData,
	})
}

// NewRetry builds the retry envelope that redeems the ticket created by
// submit. The ticket id is the submission's hash.
func NewRetry(submit *types.Transaction, nonce uint64, maxRefund *big.Int) (*types.Transaction, error) {
	inner, ok := submit.Inner().(*types.SubmitRetryableTx)
	if !ok {
		return nil, ErrNotSubmitRetryable
	}
	return types.NewTx(&types.RetryTx{
		ChainID:             inner.ChainID,
		Nonce:               nonce,
		From:                inner.From,
		GasFeeCap:           inner.GasFeeCap,
		Gas:                 inner.Gas,
		To:                  inner.RetryTo,
		Value:               inner.RetryValue,
		Data:                inner.RetryData,
		TicketID:            submit.Hash(),
		RefundTo:            inner.FeeRefundAddr,
		MaxRefund:           maxRefund,
		SubmissionFeeRefund: SubmissionFee(len(inner.RetryData), inner.L1BaseFee),
	}), nil
}
