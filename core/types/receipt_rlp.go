package types

import (
	"errors"

	"github.com/arbwire/arbwire/metrics"
	"github.com/arbwire/arbwire/rlp"
)

// maxGasBytes bounds the cumulative gas field to 128 bits.
const maxGasBytes = 16

// EncodeRLP returns the RLP encoding of the receipt's consensus fields:
// [Status, CumulativeGasUsed, Bloom, Logs].
func (r *Receipt) EncodeRLP() []byte {
	logsSize := r.logsSize()
	payloadSize := 1 + rlp.Uint256Size(&r.CumulativeGasUsed) + rlp.StringSize(BloomLength) + rlp.ListSize(logsSize)

	out := make([]byte, 0, rlp.ListSize(payloadSize))
	out = rlp.AppendListHeader(out, payloadSize)
	out = rlp.AppendBool(out, r.Status)
	out = rlp.AppendUint256(out, &r.CumulativeGasUsed)
	out = rlp.AppendBytes(out, r.Bloom[:])
	out = rlp.AppendListHeader(out, logsSize)
	for _, l := range r.Logs {
		out = l.appendRLP(out)
	}
	return out
}

func (r *Receipt) logsSize() int {
	size := 0
	for _, l := range r.Logs {
		size += l.encodingSize()
	}
	return size
}

// DecodeReceipt decodes one receipt from the start of b and returns it with
// the number of bytes consumed.
func DecodeReceipt(b []byte) (*Receipt, int, error) {
	s := rlp.NewStreamFromBytes(b)
	r, err := decodeReceipt(s)
	if err != nil {
		metrics.ReceiptRejected.Inc()
		logger().Debug("rejected receipt", "len", len(b), "err", err)
		return nil, 0, err
	}
	metrics.ReceiptDecoded.Inc()
	return r, s.Pos(), nil
}

func decodeReceipt(s *rlp.Stream) (*Receipt, error) {
	if _, err := s.List(); err != nil {
		return nil, err
	}
	r := new(Receipt)

	status, err := s.Bool()
	if err != nil {
		return nil, err
	}
	r.Status = status

	gas, err := s.UintBytes(maxGasBytes)
	if err != nil {
		if errors.Is(err, rlp.ErrUintRange) {
			return nil, ErrGasRange
		}
		return nil, err
	}
	r.CumulativeGasUsed.SetBytes(gas)

	if err := decodeBloom(s, &r.Bloom); err != nil {
		return nil, err
	}

	if _, err := s.List(); err != nil {
		return nil, err
	}
	for !s.AtListEnd() {
		l, err := decodeLog(s)
		if err != nil {
			return nil, err
		}
		r.Logs = append(r.Logs, l)
	}
	if err := s.ListEnd(); err != nil {
		return nil, err
	}

	if err := s.ListEnd(); err != nil {
		return nil, err
	}
	return r, nil
}

// decodeBloom reads the bloom, which must be a string of exactly 256 bytes.
func decodeBloom(s *rlp.Stream, bloom *Bloom) error {
	kind, _, err := s.Kind()
	if err != nil {
		return err
	}
	if kind == rlp.List {
		return rlp.ErrExpectedString
	}
	b, err := s.Bytes()
	if err != nil {
		return err
	}
	if len(b) != BloomLength {
		return ErrBloomLength
	}
	copy(bloom[:], b)
	return nil
}
