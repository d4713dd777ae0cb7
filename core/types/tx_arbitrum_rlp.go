package types

import (
	"github.com/arbwire/arbwire/rlp"
)

// Field order of every payload list is fixed by the wire format:
//
//	Deposit:         [chainID, l1RequestID, from, to, value]
//	Unsigned:        [chainID, from, nonce, gasFeeCap, gas, to?, value, data]
//	Contract:        [chainID, requestID, from, gasFeeCap, gas, to?, value, data]
//	Retry:           [chainID, nonce, from, gasFeeCap, gas, to?, value, data,
//	                  ticketID, refundTo, maxRefund, submissionFeeRefund]
//	SubmitRetryable: [chainID, requestID, from, l1BaseFee, depositValue,
//	                  gasFeeCap, gas, retryTo?, retryValue, beneficiary,
//	                  maxSubmissionFee, feeRefundAddr, retryData]
//	Internal:        [chainID, data]
//
// to? is an optional address: 0x80 when absent, a 20-byte string otherwise.

const (
	addressSize = 1 + AddressLength
	hashSize    = 1 + HashLength
)

// ---- Encoding ----

func optAddressSize(a *Address) int {
	if a == nil {
		return 1
	}
	return addressSize
}

func appendOptAddress(dst []byte, a *Address) []byte {
	if a == nil {
		return append(dst, 0x80)
	}
	return rlp.AppendBytes(dst, a[:])
}

func (tx *DepositTx) payloadSize() int {
	return rlp.BigIntSize(tx.ChainID) + hashSize + 2*addressSize + rlp.BigIntSize(tx.Value)
}

func (tx *DepositTx) appendPayload(dst []byte) []byte {
	dst = rlp.AppendBigInt(dst, tx.ChainID)
	dst = rlp.AppendBytes(dst, tx.L1RequestID[:])
	dst = rlp.AppendBytes(dst, tx.From[:])
	dst = rlp.AppendBytes(dst, tx.To[:])
	return rlp.AppendBigInt(dst, tx.Value)
}

func (tx *UnsignedTx) payloadSize() int {
	return rlp.BigIntSize(tx.ChainID) + addressSize + rlp.Uint64Size(tx.Nonce) +
		rlp.BigIntSize(tx.GasFeeCap) + rlp.Uint64Size(tx.Gas) + optAddressSize(tx.To) +
		rlp.BigIntSize(tx.Value) + rlp.BytesSize(tx.Data)
}

func (tx *UnsignedTx) appendPayload(dst []byte) []byte {
	dst = rlp.AppendBigInt(dst, tx.ChainID)
	dst = rlp.AppendBytes(dst, tx.From[:])
	dst = rlp.AppendUint64(dst, tx.Nonce)
	dst = rlp.AppendBigInt(dst, tx.GasFeeCap)
	dst = rlp.AppendUint64(dst, tx.Gas)
	dst = appendOptAddress(dst, tx.To)
	dst = rlp.AppendBigInt(dst, tx.Value)
	return rlp.AppendBytes(dst, tx.Data)
}

func (tx *ContractTx) payloadSize() int {
	return rlp.BigIntSize(tx.ChainID) + hashSize + addressSize +
		rlp.BigIntSize(tx.GasFeeCap) + rlp.Uint64Size(tx.Gas) + optAddressSize(tx.To) +
		rlp.BigIntSize(tx.Value) + rlp.BytesSize(tx.Data)
}

func (tx *ContractTx) appendPayload(dst []byte) []byte {
	dst = rlp.AppendBigInt(dst, tx.ChainID)
	dst = rlp.AppendBytes(dst, tx.RequestID[:])
	dst = rlp.AppendBytes(dst, tx.From[:])
	dst = rlp.AppendBigInt(dst, tx.GasFeeCap)
	dst = rlp.AppendUint64(dst, tx.Gas)
	dst = appendOptAddress(dst, tx.To)
	dst = rlp.AppendBigInt(dst, tx.Value)
	return rlp.AppendBytes(dst, tx.Data)
}

func (tx *RetryTx) payloadSize() int {
	return rlp.BigIntSize(tx.ChainID) + rlp.Uint64Size(tx.Nonce) + addressSize +
		rlp.BigIntSize(tx.GasFeeCap) + rlp.Uint64Size(tx.Gas) + optAddressSize(tx.To) +
		rlp.BigIntSize(tx.Value) + rlp.BytesSize(tx.Data) + hashSize + addressSize +
		rlp.BigIntSize(tx.MaxRefund) + rlp.BigIntSize(tx.SubmissionFeeRefund)
}

func (tx *RetryTx) appendPayload(dst []byte) []byte {
	dst = rlp.AppendBigInt(dst, tx.ChainID)
	dst = rlp.AppendUint64(dst, tx.Nonce)
	dst = rlp.AppendBytes(dst, tx.From[:])
	dst = rlp.AppendBigInt(dst, tx.GasFeeCap)
	dst = rlp.AppendUint64(dst, tx.Gas)
	dst = appendOptAddress(dst, tx.To)
	dst = rlp.AppendBigInt(dst, tx.Value)
	dst = rlp.AppendBytes(dst, tx.Data)
	dst = rlp.AppendBytes(dst, tx.TicketID[:])
	dst = rlp.AppendBytes(dst, tx.RefundTo[:])
	dst = rlp.AppendBigInt(dst, tx.MaxRefund)
	return rlp.AppendBigInt(dst, tx.SubmissionFeeRefund)
}

func (tx *SubmitRetryableTx) payloadSize() int {
	return rlp.BigIntSize(tx.ChainID) + hashSize + addressSize +
		rlp.BigIntSize(tx.L1BaseFee) + rlp.BigIntSize(tx.DepositValue) +
		rlp.BigIntSize(tx.GasFeeCap) + rlp.Uint64Size(tx.Gas) + optAddressSize(tx.RetryTo) +
		rlp.BigIntSize(tx.RetryValue) + addressSize + rlp.BigIntSize(tx.MaxSubmissionFee) +
		addressSize + rlp.BytesSize(tx.RetryData)
}

func (tx *SubmitRetryableTx) appendPayload(dst []byte) []byte {
	dst = rlp.AppendBigInt(dst, tx.ChainID)
	dst = rlp.AppendBytes(dst, tx.RequestID[:])
	dst = rlp.AppendBytes(dst, tx.From[:])
	dst = rlp.AppendBigInt(dst, tx.L1BaseFee)
	dst = rlp.AppendBigInt(dst, tx.DepositValue)
	dst = rlp.AppendBigInt(dst, tx.GasFeeCap)
	dst = rlp.AppendUint64(dst, tx.Gas)
	dst = appendOptAddress(dst, tx.RetryTo)
	dst = rlp.AppendBigInt(dst, tx.RetryValue)
	dst = rlp.AppendBytes(dst, tx.Beneficiary[:])
	dst = rlp.AppendBigInt(dst, tx.MaxSubmissionFee)
	dst = rlp.AppendBytes(dst, tx.FeeRefundAddr[:])
	return rlp.AppendBytes(dst, tx.RetryData)
}

func (tx *InternalTx) payloadSize() int {
	return rlp.BigIntSize(tx.ChainID) + rlp.BytesSize(tx.Data)
}

func (tx *InternalTx) appendPayload(dst []byte) []byte {
	dst = rlp.AppendBigInt(dst, tx.ChainID)
	return rlp.AppendBytes(dst, tx.Data)
}

// structuredTx is implemented by the six kinds encoded as an RLP list.
type structuredTx interface {
	TxData
	payloadSize() int
	appendPayload(dst []byte) []byte
}

// encodingSize returns the length of the payload encoding that follows the
// type byte.
func encodingSize(inner TxData) int {
	switch tx := inner.(type) {
	case *LegacyTx:
		return len(tx.Payload)
	case structuredTx:
		return rlp.ListSize(tx.payloadSize())
	default:
		panic("types: unsupported tx data")
	}
}

// appendEncoding appends the payload encoding that follows the type byte.
func appendEncoding(dst []byte, inner TxData) []byte {
	switch tx := inner.(type) {
	case *LegacyTx:
		return append(dst, tx.Payload...)
	case structuredTx:
		dst = rlp.AppendListHeader(dst, tx.payloadSize())
		return tx.appendPayload(dst)
	default:
		panic("types: unsupported tx data")
	}
}

// ---- Decoding ----

func decodeAddress(s *rlp.Stream) (Address, error) {
	var a Address
	b, err := s.Bytes()
	if err != nil {
		return a, err
	}
	if len(b) != AddressLength {
		return a, ErrAddressLength
	}
	copy(a[:], b)
	return a, nil
}

// decodeOptAddress reads an address that may be absent. Absence is the
// empty string; anything else must be a full 20-byte address.
func decodeOptAddress(s *rlp.Stream) (*Address, error) {
	first, err := s.PeekByte()
	if err != nil {
		return nil, err
	}
	if first == 0x80 {
		if _, err := s.Bytes(); err != nil {
			return nil, err
		}
		return nil, nil
	}
	a, err := decodeAddress(s)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func decodeHash(s *rlp.Stream) (Hash, error) {
	var h Hash
	b, err := s.Bytes()
	if err != nil {
		return h, err
	}
	if len(b) != HashLength {
		return h, ErrHashLength
	}
	copy(h[:], b)
	return h, nil
}

// decodeData reads a byte string into a fresh slice that does not alias the
// input buffer. The empty string decodes as nil.
func decodeData(s *rlp.Stream) ([]byte, error) {
	b, err := s.Bytes()
	if err != nil || len(b) == 0 {
		return nil, err
	}
	return copyBytes(b), nil
}

// decodePayload decodes the structured list of the given kind from the
// start of b. It returns the payload and the number of bytes of b it
// occupies.
func decodePayload(t TxType, b []byte) (TxData, int, error) {
	s := rlp.NewStreamFromBytes(b)
	if _, err := s.List(); err != nil {
		return nil, 0, err
	}
	var (
		inner TxData
		err   error
	)
	switch t {
	case DepositTxType:
		inner, err = decodeDepositTx(s)
	case UnsignedTxType:
		inner, err = decodeUnsignedTx(s)
	case ContractTxType:
		inner, err = decodeContractTx(s)
	case RetryTxType:
		inner, err = decodeRetryTx(s)
	case SubmitRetryableTxType:
		inner, err = decodeSubmitRetryableTx(s)
	case InternalTxType:
		inner, err = decodeInternalTx(s)
	default:
		return nil, 0, &UnknownTypeError{Type: byte(t)}
	}
	if err != nil {
		return nil, 0, err
	}
	if err := s.ListEnd(); err != nil {
		return nil, 0, err
	}
	return inner, s.Pos(), nil
}

func decodeDepositTx(s *rlp.Stream) (*DepositTx, error) {
	var (
		tx  DepositTx
		err error
	)
	if tx.ChainID, err = s.BigInt(); err != nil {
		return nil, err
	}
	if tx.L1RequestID, err = decodeHash(s); err != nil {
		return nil, err
	}
	if tx.From, err = decodeAddress(s); err != nil {
		return nil, err
	}
	if tx.To, err = decodeAddress(s); err != nil {
		return nil, err
	}
	if tx.Value, err = s.BigInt(); err != nil {
		return nil, err
	}
	return &tx, nil
}

func decodeUnsignedTx(s *rlp.Stream) (*UnsignedTx, error) {
	var (
		tx  UnsignedTx
		err error
	)
	if tx.ChainID, err = s.BigInt(); err != nil {
		return nil, err
	}
	if tx.From, err = decodeAddress(s); err != nil {
		return nil, err
	}
	if tx.Nonce, err = s.Uint64(); err != nil {
		return nil, err
	}
	if tx.GasFeeCap, err = s.BigInt(); err != nil {
		return nil, err
	}
	if tx.Gas, err = s.Uint64(); err != nil {
		return nil, err
	}
	if tx.To, err = decodeOptAddress(s); err != nil {
		return nil, err
	}
	if tx.Value, err = s.BigInt(); err != nil {
		return nil, err
	}
	if tx.Data, err = decodeData(s); err != nil {
		return nil, err
	}
	return &tx, nil
}

func decodeContractTx(s *rlp.Stream) (*ContractTx, error) {
	var (
		tx  ContractTx
		err error
	)
	if tx.ChainID, err = s.BigInt(); err != nil {
		return nil, err
	}
	if tx.RequestID, err = decodeHash(s); err != nil {
		return nil, err
	}
	if tx.From, err = decodeAddress(s); err != nil {
		return nil, err
	}
	if tx.GasFeeCap, err = s.BigInt(); err != nil {
		return nil, err
	}
	if tx.Gas, err = s.Uint64(); err != nil {
		return nil, err
	}
	if tx.To, err = decodeOptAddress(s); err != nil {
		return nil, err
	}
	if tx.Value, err = s.BigInt(); err != nil {
		return nil, err
	}
	if tx.Data, err = decodeData(s); err != nil {
		return nil, err
	}
	return &tx, nil
}

func decodeRetryTx(s *rlp.Stream) (*RetryTx, error) {
	var (
		tx  RetryTx
		err error
	)
	if tx.ChainID, err = s.BigInt(); err != nil {
		return nil, err
	}
	if tx.Nonce, err = s.Uint64(); err != nil {
		return nil, err
	}
	if tx.From, err = decodeAddress(s); err != nil {
		return nil, err
	}
	if tx.GasFeeCap, err = s.BigInt(); err != nil {
		return nil, err
	}
	if tx.Gas, err = s.Uint64(); err != nil {
		return nil, err
	}
	if tx.To, err = decodeOptAddress(s); err != nil {
		return nil, err
	}
	if tx.Value, err = s.BigInt(); err != nil {
		return nil, err
	}
	if tx.Data, err = decodeData(s); err != nil {
		return nil, err
	}
	if tx.TicketID, err = decodeHash(s); err != nil {
		return nil, err
	}
	if tx.RefundTo, err = decodeAddress(s); err != nil {
		return nil, err
	}
	if tx.MaxRefund, err = s.BigInt(); err != nil {
		return nil, err
	}
	if tx.SubmissionFeeRefund, err = s.BigInt(); err != nil {
		return nil, err
	}
	return &tx, nil
}

func decodeSubmitRetryableTx(s *rlp.Stream) (*SubmitRetryableTx, error) {
	var (
		tx  SubmitRetryableTx
		err error
	)
	if tx.ChainID, err = s.BigInt(); err != nil {
		return nil, err
	}
	if tx.RequestID, err = decodeHash(s); err != nil {
		return nil, err
	}
	if tx.From, err = decodeAddress(s); err != nil {
		return nil, err
	}
	if tx.L1BaseFee, err = s.BigInt(); err != nil {
		return nil, err
	}
	if tx.DepositValue, err = s.BigInt(); err != nil {
		return nil, err
	}
	if tx.GasFeeCap, err = s.BigInt(); err != nil {
		return nil, err
	}
	if tx.Gas, err = s.Uint64(); err != nil {
		return nil, err
	}
	if tx.RetryTo, err = decodeOptAddress(s); err != nil {
		return nil, err
	}
	if tx.RetryValue, err = s.BigInt(); err != nil {
		return nil, err
	}
	if tx.Beneficiary, err = decodeAddress(s); err != nil {
		return nil, err
	}
	if tx.MaxSubmissionFee, err = s.BigInt(); err != nil {
		return nil, err
	}
	if tx.FeeRefundAddr, err = decodeAddress(s); err != nil {
		return nil, err
	}
	if tx.RetryData, err = decodeData(s); err != nil {
		return nil, err
	}
	return &tx, nil
}

func decodeInternalTx(s *rlp.Stream) (*InternalTx, error) {
	var (
		tx  InternalTx
		err error
	)
	if tx.ChainID, err = s.BigInt(); err != nil {
		return nil, err
	}
	if tx.Data, err = decodeData(s); err != nil {
		return nil, err
	}
	return &tx, nil
}
