package types

import (
	"fmt"

	"github.com/arbwire/arbwire/log"
	"github.com/arbwire/arbwire/metrics"
)

func logger() *log.Logger { return log.Default().Module("arbtypes") }

// EncodeTyped returns the envelope encoding: the type byte followed by the
// payload list, or by the raw legacy payload without further framing.
func (tx *Transaction) EncodeTyped() []byte {
	out := make([]byte, 0, 1+encodingSize(tx.inner))
	out = append(out, tx.Type().Byte())
	return appendEncoding(out, tx.inner)
}

// MarshalBinary returns the envelope encoding. The error is always nil.
func (tx *Transaction) MarshalBinary() ([]byte, error) {
	return tx.EncodeTyped(), nil
}

// UnmarshalBinary decodes an envelope that must span all of b.
func (tx *Transaction) UnmarshalBinary(b []byte) error {
	dec, n, err := DecodeTyped(b)
	if err != nil {
		return err
	}
	if n != len(b) {
		return &DecodeError{Type: dec.Type(), Err: fmt.Errorf("%d trailing bytes after envelope", len(b)-n)}
	}
	tx.inner = dec.inner
	tx.hash.Store(nil)
	tx.size.Store(0)
	return nil
}

// DecodeTyped decodes one envelope from the start of b and returns it with
// the number of bytes consumed.
//
// Inputs shorter than two bytes fail with an *UnknownTypeError reporting
// type 0xff; such errors also match ErrTxTooShort. An unrecognised type byte
// fails with an *UnknownTypeError carrying that byte. A malformed payload
// fails with a *DecodeError, which matches ErrDecode and wraps the
// underlying cause. A legacy payload is taken verbatim and consumes the
// rest of b.
func DecodeTyped(b []byte) (*Transaction, int, error) {
	tx, n, err := decodeTyped(b)
	if err != nil {
		metrics.TxRejected.Inc()
		if len(b) > 0 {
			logger().Debug("rejected transaction envelope", "type", fmt.Sprintf("0x%02x", b[0]), "len", len(b), "err", err)
		} else {
			logger().Debug("rejected transaction envelope", "len", 0, "err", err)
		}
		return nil, 0, err
	}
	metrics.TxDecoded.Inc()
	metrics.TxDecodedByKind(tx.Type().String()).Inc()
	metrics.TxSize.Observe(float64(n))
	return tx, n, nil
}

func decodeTyped(b []byte) (*Transaction, int, error) {
	if len(b) < 2 {
		return nil, 0, &UnknownTypeError{Type: shortTxType, short: true}
	}
	t, err := TxTypeFromByte(b[0])
	if err != nil {
		return nil, 0, err
	}
	if t == LegacyTxType {
		return &Transaction{inner: &LegacyTx{Payload: copyBytes(b[1:])}}, len(b), nil
	}
	inner, n, err := decodePayload(t, b[1:])
	if err != nil {
		return nil, 0, &DecodeError{Type: t, Err: err}
	}
	return &Transaction{inner: inner}, 1 + n, nil
}
