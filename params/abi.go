package params

import (
	"github.com/arbwire/arbwire/core/types"
	"github.com/arbwire/arbwire/crypto"
)

// Canonical signatures of the precompile methods and events that produce or
// consume Arbitrum system transactions.
const (
	SigSendTxToL1            = "sendTxToL1(address,bytes)"
	SigWithdrawEth           = "withdrawEth(address)"
	SigCreateRetryableTicket = "createRetryableTicket(address,uint256,uint256,address,address,uint256,uint256,bytes)"
	SigRedeem                = "redeem(bytes32)"
	SigCancelRetryableTicket = "cancelRetryableTicket(bytes32)"

	EvtTicketCreated = "TicketCreated(bytes32,address,uint256,uint256,address,address,uint256,uint256)"
	EvtRedeemed      = "Redeemed(bytes32,address)"
	EvtCanceled      = "Canceled(bytes32,address)"
)

var (
	SendTxToL1Selector            = crypto.Selector(SigSendTxToL1)
	WithdrawEthSelector           = crypto.Selector(SigWithdrawEth)
	CreateRetryableTicketSelector = crypto.Selector(SigCreateRetryableTicket)
	RedeemSelector                = crypto.Selector(SigRedeem)
	CancelRetryableTicketSelector = crypto.Selector(SigCancelRetryableTicket)

	TicketCreatedTopic = crypto.EventTopic(EvtTicketCreated)
	RedeemedTopic      = crypto.EventTopic(EvtRedeemed)
	CanceledTopic      = crypto.EventTopic(EvtCanceled)
)

// RetryableEventFilter matches the ArbRetryableTx lifecycle events.
func RetryableEventFilter() *types.LogFilter {
	return &types.LogFilter{
		Addresses: []types.Address{types.ArbRetryableTxAddress},
		Topics:    [][]types.Hash{{TicketCreatedTopic, RedeemedTopic, CanceledTopic}},
	}
}
