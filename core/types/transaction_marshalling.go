package types

import (
	"encoding/json"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// txJSON is the JSON representation of envelopes. Field names follow the
// reference node's RPC output.
type txJSON struct {
	Type hexutil.Uint64 `json:"type"`

	ChainID      *hexutil.Big    `json:"chainId,omitempty"`
	Nonce        *hexutil.Uint64 `json:"nonce,omitempty"`
	To           *Address        `json:"to,omitempty"`
	Gas          *hexutil.Uint64 `json:"gas,omitempty"`
	MaxFeePerGas *hexutil.Big    `json:"maxFeePerGas,omitempty"`
	Value        *hexutil.Big    `json:"value,omitempty"`
	Input        *hexutil.Bytes  `json:"input,omitempty"`

	From                *Address       `json:"from,omitempty"`                // Deposit Unsigned Contract Retry SubmitRetryable
	RequestID           *Hash          `json:"requestId,omitempty"`           // Deposit Contract SubmitRetryable
	TicketID            *Hash          `json:"ticketId,omitempty"`            // Retry
	MaxRefund           *hexutil.Big   `json:"maxRefund,omitempty"`           // Retry
	SubmissionFeeRefund *hexutil.Big   `json:"submissionFeeRefund,omitempty"` // Retry
	RefundTo            *Address       `json:"refundTo,omitempty"`            // Retry SubmitRetryable
	L1BaseFee           *hexutil.Big   `json:"l1BaseFee,omitempty"`           // SubmitRetryable
	DepositValue        *hexutil.Big   `json:"depositValue,omitempty"`        // SubmitRetryable
	RetryTo             *Address       `json:"retryTo,omitempty"`             // SubmitRetryable
	RetryValue          *hexutil.Big   `json:"retryValue,omitempty"`          // SubmitRetryable
	RetryData           *hexutil.Bytes `json:"retryData,omitempty"`           // SubmitRetryable
	Beneficiary         *Address       `json:"beneficiary,omitempty"`         // SubmitRetryable
	MaxSubmissionFee    *hexutil.Big   `json:"maxSubmissionFee,omitempty"`    // SubmitRetryable

	// Only used for encoding.
	Hash Hash `json:"hash"`
}

// MarshalJSON marshals as JSON with a hash field.
func (tx *Transaction) MarshalJSON() ([]byte, error) {
	var enc txJSON
	enc.Hash = tx.Hash()
	enc.Type = hexutil.Uint64(tx.Type())

	switch itx := tx.inner.(type) {
	case *DepositTx:
		enc.ChainID = (*hexutil.Big)(bigOrZero(itx.ChainID))
		enc.RequestID = &itx.L1RequestID
		enc.From = &itx.From
		enc.To = &itx.To
		enc.Value = (*hexutil.Big)(bigOrZero(itx.Value))
	case *UnsignedTx:
		enc.ChainID = (*hexutil.Big)(bigOrZero(itx.ChainID))
		enc.From = &itx.From
		enc.Nonce = (*hexutil.Uint64)(&itx.Nonce)
		enc.MaxFeePerGas = (*hexutil.Big)(bigOrZero(itx.GasFeeCap))
		enc.Gas = (*hexutil.Uint64)(&itx.Gas)
		enc.To = itx.To
		enc.Value = (*hexutil.Big)(bigOrZero(itx.Value))
		enc.Input = (*hexutil.Bytes)(&itx.Data)
	case *ContractTx:
		enc.ChainID = (*hexutil.Big)(bigOrZero(itx.ChainID))
		enc.RequestID = &itx.RequestID
		enc.From = &itx.From
		enc.MaxFeePerGas = (*hexutil.Big)(bigOrZero(itx.GasFeeCap))
		enc.Gas = (*hexutil.Uint64)(&itx.Gas)
		enc.To = itx.To
		enc.Value = (*hexutil.Big)(bigOrZero(itx.Value))
		enc.Input = (*hexutil.Bytes)(&itx.Data)
	case *RetryTx:
		enc.ChainID = (*hexutil.Big)(bigOrZero(itx.ChainID))
		enc.Nonce = (*hexutil.Uint64)(&itx.Nonce)
		enc.From = &itx.From
		enc.MaxFeePerGas = (*hexutil.Big)(bigOrZero(itx.GasFeeCap))
		enc.Gas = (*hexutil.Uint64)(&itx.Gas)
		enc.To = itx.To
		enc.Value = (*hexutil.Big)(bigOrZero(itx.Value))
		enc.Input = (*hexutil.Bytes)(&itx.Data)
		enc.TicketID = &itx.TicketID
		enc.RefundTo = &itx.RefundTo
		enc.MaxRefund = (*hexutil.Big)(bigOrZero(itx.MaxRefund))
		enc.SubmissionFeeRefund = (*hexutil.Big)(bigOrZero(itx.SubmissionFeeRefund))
	case *SubmitRetryableTx:
		enc.ChainID = (*hexutil.Big)(bigOrZero(itx.ChainID))
		enc.RequestID = &itx.RequestID
		enc.From = &itx.From
		enc.L1BaseFee = (*hexutil.Big)(bigOrZero(itx.L1BaseFee))
		enc.DepositValue = (*hexutil.Big)(bigOrZero(itx.DepositValue))
		enc.MaxFeePerGas = (*hexutil.Big)(bigOrZero(itx.GasFeeCap))
		enc.Gas = (*hexutil.Uint64)(&itx.Gas)
		enc.RetryTo = itx.RetryTo
		enc.RetryValue = (*hexutil.Big)(bigOrZero(itx.RetryValue))
		enc.Beneficiary = &itx.Beneficiary
		enc.MaxSubmissionFee = (*hexutil.Big)(bigOrZero(itx.MaxSubmissionFee))
		enc.RefundTo = &itx.FeeRefundAddr
		enc.RetryData = (*hexutil.Bytes)(&itx.RetryData)
	case *InternalTx:
		enc.ChainID = (*hexutil.Big)(bigOrZero(itx.ChainID))
		enc.Input = (*hexutil.Bytes)(&itx.Data)
	case *LegacyTx:
		enc.Input = (*hexutil.Bytes)(&itx.Payload)
	}
	return json.Marshal(&enc)
}

// UnmarshalJSON unmarshals from JSON. Every wire field of the kind named by
// "type" is required; "to" and "retryTo" may be omitted for contract
// creation. The hash field is ignored.
func (tx *Transaction) UnmarshalJSON(input []byte) error {
	var dec txJSON
	if err := json.Unmarshal(input, &dec); err != nil {
		return err
	}
	if dec.Type > 0xff {
		return &UnknownTypeError{Type: 0xff}
	}
	t, err := TxTypeFromByte(byte(dec.Type))
	if err != nil {
		return err
	}

	var inner TxData
	switch t {
	case DepositTxType:
		if err := requireFields(map[string]bool{
			"chainId": dec.ChainID != nil, "requestId": dec.RequestID != nil,
			"from": dec.From != nil, "to": dec.To != nil, "value": dec.Value != nil,
		}); err != nil {
			return err
		}
		inner = &DepositTx{
			ChainID:     (*big.Int)(dec.ChainID),
			L1RequestID: *dec.RequestID,
			From:        *dec.From,
			To:          *dec.To,
			Value:       (*big.Int)(dec.Value),
		}

	case UnsignedTxType:
		if err := requireFields(map[string]bool{
			"chainId": dec.ChainID != nil, "from": dec.From != nil, "nonce": dec.Nonce != nil,
			"maxFeePerGas": dec.MaxFeePerGas != nil, "gas": dec.Gas != nil,
			"value": dec.Value != nil, "input": dec.Input != nil,
		}); err != nil {
			return err
		}
		inner = &UnsignedTx{
			ChainID:   (*big.Int)(dec.ChainID),
			From:      *dec.From,
			Nonce:     uint64(*dec.Nonce),
			GasFeeCap: (*big.Int)(dec.MaxFeePerGas),
			Gas:       uint64(*dec.Gas),
			To:        dec.To,
			Value:     (*big.Int)(dec.Value),
			Data:      *dec.Input,
		}

	case ContractTxType:
		if err := requireFields(map[string]bool{
			"chainId": dec.ChainID != nil, "requestId": dec.RequestID != nil, "from": dec.From != nil,
			"maxFeePerGas": dec.MaxFeePerGas != nil, "gas": dec.Gas != nil,
			"value": dec.Value != nil, "input": dec.Input != nil,
		}); err != nil {
			return err
		}
		inner = &ContractTx{
			ChainID:   (*big.Int)(dec.ChainID),
			RequestID: *dec.RequestID,
			From:      *dec.From,
			GasFeeCap: (*big.Int)(dec.MaxFeePerGas),
			Gas:       uint64(*dec.Gas),
			To:        dec.To,
			Value:     (*big.Int)(dec.Value),
			Data:      *dec.Input,
		}

	case RetryTxType:
		if err := requireFields(map[string]bool{
			"chainId": dec.ChainID != nil, "nonce": dec.Nonce != nil, "from": dec.From != nil,
			"maxFeePerGas": dec.MaxFeePerGas != nil, "gas": dec.Gas != nil,
			"value": dec.Value != nil, "input": dec.Input != nil, "ticketId": dec.TicketID != nil,
			"refundTo": dec.RefundTo != nil, "maxRefund": dec.MaxRefund != nil,
			"submissionFeeRefund": dec.SubmissionFeeRefund != nil,
		}); err != nil {
			return err
		}
		inner = &RetryTx{
			ChainID:             (*big.Int)(dec.ChainID),
			Nonce:               uint64(*dec.Nonce),
			From:                *dec.From,
			GasFeeCap:           (*big.Int)(dec.MaxFeePerGas),
			Gas:                 uint64(*dec.Gas),
			To:                  dec.To,
			Value:               (*big.Int)(dec.Value),
			Data:                *dec.Input,
			TicketID:            *dec.TicketID,
			RefundTo:            *dec.RefundTo,
			MaxRefund:           (*big.Int)(dec.MaxRefund),
			SubmissionFeeRefund: (*big.Int)(dec.SubmissionFeeRefund),
		}

	case SubmitRetryableTxType:
		if err := requireFields(map[string]bool{
			"chainId": dec.ChainID != nil, "requestId": dec.RequestID != nil, "from": dec.From != nil,
			"l1BaseFee": dec.L1BaseFee != nil, "depositValue": dec.DepositValue != nil,
			"maxFeePerGas": dec.MaxFeePerGas != nil, "gas": dec.Gas != nil,
			"retryValue": dec.RetryValue != nil, "beneficiary": dec.Beneficiary != nil,
			"maxSubmissionFee": dec.MaxSubmissionFee != nil, "refundTo": dec.RefundTo != nil,
			"retryData": dec.RetryData != nil,
		}); err != nil {
			return err
		}
		inner = &SubmitRetryableTx{
			ChainID:          (*big.Int)(dec.ChainID),
			RequestID:        *dec.RequestID,
			From:             *dec.From,
			L1BaseFee:        (*big.Int)(dec.L1BaseFee),
			DepositValue:     (*big.Int)(dec.DepositValue),
			GasFeeCap:        (*big.Int)(dec.MaxFeePerGas),
			Gas:              uint64(*dec.Gas),
			RetryTo:          dec.RetryTo,
			RetryValue:       (*big.Int)(dec.RetryValue),
			Beneficiary:      *dec.Beneficiary,
			MaxSubmissionFee: (*big.Int)(dec.MaxSubmissionFee),
			FeeRefundAddr:    *dec.RefundTo,
			RetryData:        *dec.RetryData,
		}

	case InternalTxType:
		if err := requireFields(map[string]bool{
			"chainId": dec.ChainID != nil, "input": dec.Input != nil,
		}); err != nil {
			return err
		}
		inner = &InternalTx{
			ChainID: (*big.Int)(dec.ChainID),
			Data:    *dec.Input,
		}

	case LegacyTxType:
		if dec.Input == nil {
			return errors.New("missing required field 'input' in transaction")
		}
		inner = &LegacyTx{Payload: *dec.Input}
	}

	tx.inner = inner
	tx.hash.Store(nil)
	tx.size.Store(0)
	return nil
}

// requireFields reports the first missing field in a fixed order so the
// error is deterministic.
func requireFields(present map[string]bool) error {
	for _, name := range jsonFieldOrder {
		if ok, listed := present[name]; listed && !ok {
			return errors.New("missing required field '" + name + "' in transaction")
		}
	}
	return nil
}

var jsonFieldOrder = []string{
	"chainId", "requestId", "nonce", "from", "to", "maxFeePerGas", "gas", "value", "input",
	"ticketId", "refundTo", "maxRefund", "submissionFeeRefund", "l1BaseFee", "depositValue",
	"retryValue", "beneficiary", "maxSubmissionFee", "retryData",
}
