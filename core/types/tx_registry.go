package types

import "fmt"

// TxType is the one-byte discriminant that prefixes every Arbitrum envelope.
type TxType byte

// Arbitrum transaction types. The values are fixed by the wire format;
// 0x67 and 0x6B..0x77 are reserved.
const (
	DepositTxType         TxType = 0x64
	UnsignedTxType        TxType = 0x65
	ContractTxType        TxType = 0x66
	RetryTxType           TxType = 0x68
	SubmitRetryableTxType TxType = 0x69
	InternalTxType        TxType = 0x6A
	LegacyTxType          TxType = 0x78
)

// TxTypeInfo describes metadata about a transaction type.
type TxTypeInfo struct {
	Type TxType
	Name string

	// HasOptionalTo is set for kinds whose destination may be absent
	// (contract creation).
	HasOptionalTo bool

	// Opaque kinds are carried verbatim and never field-decoded.
	Opaque bool
}

// txTypes is ordered by type byte.
var txTypes = [...]TxTypeInfo{
	{Type: DepositTxType, Name: "ArbitrumDeposit"},
	{Type: UnsignedTxType, Name: "ArbitrumUnsigned", HasOptionalTo: true},
	{Type: ContractTxType, Name: "ArbitrumContract", HasOptionalTo: true},
	{Type: RetryTxType, Name: "ArbitrumRetry", HasOptionalTo: true},
	{Type: SubmitRetryableTxType, Name: "ArbitrumSubmitRetryable", HasOptionalTo: true},
	{Type: InternalTxType, Name: "ArbitrumInternal"},
	{Type: LegacyTxType, Name: "ArbitrumLegacy", Opaque: true},
}

// TxTypeFromByte maps a discriminant byte to its TxType. Any byte outside
// the seven known codes yields an *UnknownTypeError carrying that byte.
func TxTypeFromByte(b byte) (TxType, error) {
	if _, ok := lookupTxType(TxType(b)); !ok {
		return 0, &UnknownTypeError{Type: b}
	}
	return TxType(b), nil
}

// Byte returns the wire discriminant.
func (t TxType) Byte() byte { return byte(t) }

// Info returns the metadata of a known type.
func (t TxType) Info() (TxTypeInfo, bool) {
	return lookupTxType(t)
}

// String returns a human-readable name. It is for diagnostics only and never
// part of the wire format.
func (t TxType) String() string {
	if info, ok := lookupTxType(t); ok {
		return info.Name
	}
	return fmt.Sprintf("TxType(0x%02x)", byte(t))
}

// AllTxTypes returns every known type sorted by type byte.
func AllTxTypes() []TxTypeInfo {
	out := make([]TxTypeInfo, len(txTypes))
	copy(out, txTypes[:])
	return out
}

func lookupTxType(t TxType) (TxTypeInfo, bool) {
	for _, info := range txTypes {
		if info.Type == t {
			return info, true
		}
	}
	return TxTypeInfo{}, false
}
