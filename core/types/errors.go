package types

import (
	"errors"
	"fmt"
)

var (
	// ErrDecode is the coarse error kind reported by DecodeTyped when a
	// structured payload fails to decode. The underlying cause is still
	// reachable through errors.Is / errors.As.
	ErrDecode = errors.New("arbitrum tx decode failed")

	// ErrTxTooShort is matched by the UnknownTypeError returned for inputs
	// shorter than two bytes.
	ErrTxTooShort = errors.New("typed transaction too short")

	ErrAddressLength = errors.New("address must be 20 bytes")
	ErrHashLength    = errors.New("hash must be 32 bytes")
	ErrBloomLength   = errors.New("logs bloom must be 256 bytes")
	ErrTopicLength   = errors.New("log topic must be 32 bytes")
	ErrGasRange      = errors.New("cumulative gas used exceeds 128 bits")

	// ErrLegacySender is returned by Sender for legacy envelopes, whose
	// sender can only be recovered from the signature.
	ErrLegacySender = errors.New("legacy transaction sender requires signature recovery")
)

// shortTxType is the type byte reported when the input cannot hold a
// discriminant and a payload.
const shortTxType = 0xff

// UnknownTypeError reports a discriminant byte outside the known set.
type UnknownTypeError struct {
	Type byte

	short bool
}

func (e *UnknownTypeError) Error() string {
	if e.short {
		return fmt.Sprintf("unknown transaction type 0x%02x (input too short)", e.Type)
	}
	return fmt.Sprintf("unknown transaction type 0x%02x", e.Type)
}

// Is lets callers tell the short-input case apart with errors.Is(err, ErrTxTooShort).
func (e *UnknownTypeError) Is(target error) bool {
	return e.short && target == ErrTxTooShort
}

// DecodeError wraps a failure inside a structured payload.
type DecodeError struct {
	Type TxType
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s tx: %v", e.Type, e.Err)
}

func (e *DecodeError) Unwrap() []error {
	return []error{ErrDecode, e.Err}
}
