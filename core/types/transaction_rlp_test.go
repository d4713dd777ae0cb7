package types

import (
	"bytes"
	"errors"
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"

	"github.com/arbwire/arbwire/rlp"
)

var (
	testChainID = big.NewInt(42161)
	testFrom    = HexToAddress("0x1111111111111111111111111111111111111111")
	testTo      = HexToAddress("0x2222222222222222222222222222222222222222")
	testRefund  = HexToAddress("0x3333333333333333333333333333333333333333")
	testReqID   = HexToHash("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	testTicket  = HexToHash("0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb")

	// maxUint256 exercises the widest integer fields.
	maxUint256 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
)

// txCmpOpts treats nil and zero big integers as equal, since both encode as
// the empty string, and nil and empty byte slices likewise.
var txCmpOpts = []cmp.Option{
	cmp.Comparer(func(a, b *big.Int) bool { return bigOrZero(a).Cmp(bigOrZero(b)) == 0 }),
	cmpopts.EquateEmpty(),
}

func addrPtr(a Address) *Address { return &a }

// testPayloads returns one or more payloads of every kind.
func testPayloads() map[string]TxData {
	return map[string]TxData{
		"deposit": &DepositTx{
			ChainID:     testChainID,
			L1RequestID: testReqID,
			From:        testFrom,
			To:          testTo,
			Value:       big.NewInt(1_000_000_000_000_000_000),
		},
		"deposit/zero": &DepositTx{},
		"unsigned": &UnsignedTx{
			ChainID:   testChainID,
			From:      testFrom,
			Nonce:     7,
			GasFeeCap: big.NewInt(100_000_000),
			Gas:       21000,
			To:        addrPtr(testTo),
			Value:     big.NewInt(1),
			Data:      []byte{0xde, 0xad, 0xbe, 0xef},
		},
		"unsigned/create": &UnsignedTx{
			ChainID:   testChainID,
			From:      testFrom,
			GasFeeCap: big.NewInt(1),
			Gas:       1 << 40,
			Data:      bytes.Repeat([]byte{0x60}, 300),
		},
		"contract": &ContractTx{
			ChainID:   testChainID,
			RequestID: testReqID,
			From:      testFrom,
			GasFeeCap: big.NewInt(0x7f),
			Gas:       0x80,
			To:        addrPtr(testTo),
			Value:     maxUint256,
			Data:      []byte{0x01},
		},
		"contract/create": &ContractTx{
			ChainID:   testChainID,
			RequestID: testReqID,
			From:      testFrom,
		},
		"retry": &RetryTx{
			ChainID:             testChainID,
			Nonce:               ^uint64(0),
			From:                testFrom,
			GasFeeCap:           big.NewInt(1_000_000),
			Gas:                 100_000,
			To:                  addrPtr(testTo),
			Value:               big.NewInt(5),
			Data:                []byte("redeem"),
			TicketID:            testTicket,
			RefundTo:            testRefund,
			MaxRefund:           big.NewInt(77),
			SubmissionFeeRefund: big.NewInt(12),
		},
		"retry/create": &RetryTx{
			ChainID:  testChainID,
			From:     testFrom,
			TicketID: testTicket,
			RefundTo: testRefund,
		},
		"submit_retryable": &SubmitRetryableTx{
			ChainID:          testChainID,
			RequestID:        testReqID,
			From:             testFrom,
			L1BaseFee:        big.NewInt(30_000_000_000),
			DepositValue:     big.NewInt(2_000_000_000_000_000),
			GasFeeCap:        big.NewInt(100_000_000),
			Gas:              500_000,
			RetryTo:          addrPtr(testTo),
			RetryValue:       big.NewInt(1_000),
			Beneficiary:      testRefund,
			MaxSubmissionFee: big.NewInt(4_000_000_000_000),
			FeeRefundAddr:    testFrom,
			RetryData:        bytes.Repeat([]byte{0xab}, 56),
		},
		"submit_retryable/create": &SubmitRetryableTx{
			ChainID:     testChainID,
			RequestID:   testReqID,
			From:        testFrom,
			Beneficiary: testRefund,
		},
		"internal": &InternalTx{
			ChainID: testChainID,
			Data:    []byte{0x6b, 0xf6, 0xa4, 0x2d, 0x00, 0x01},
		},
		"legacy": &LegacyTx{
			Payload: []byte{0xf8, 0x6b, 0x01, 0x02, 0x03},
		},
	}
}

func TestDecodeTypedRoundTrip(t *testing.T) {
	for name, inner := range testPayloads() {
		t.Run(name, func(t *testing.T) {
			enc := NewTx(inner).EncodeTyped()
			require.Equal(t, inner.txType().Byte(), enc[0])

			dec, n, err := DecodeTyped(enc)
			require.NoError(t, err)
			require.Equal(t, len(enc), n)
			require.Equal(t, inner.txType(), dec.Type())
			if diff := cmp.Diff(inner, dec.Inner(), txCmpOpts...); diff != "" {
				t.Fatalf("decoded payload mismatch (-want +got):\n%s", diff)
			}
			require.Equal(t, enc, dec.EncodeTyped())
			require.Equal(t, uint64(len(enc)), dec.Size())
		})
	}
}

func TestDecodeTypedTruncated(t *testing.T) {
	for name, inner := range testPayloads() {
		if inner.txType() == LegacyTxType {
			continue
		}
		t.Run(name, func(t *testing.T) {
			enc := NewTx(inner).EncodeTyped()
			for i := 0; i < len(enc); i++ {
				_, _, err := DecodeTyped(enc[:i])
				require.Errorf(t, err, "prefix of length %d decoded", i)
			}
		})
	}
}

func TestDecodeTypedShortInput(t *testing.T) {
	for _, in := range [][]byte{nil, {}, {0x64}, {0x78}, {0x00}} {
		_, n, err := DecodeTyped(in)
		var ute *UnknownTypeError
		require.ErrorAs(t, err, &ute)
		require.Equal(t, byte(0xff), ute.Type)
		require.ErrorIs(t, err, ErrTxTooShort)
		require.Zero(t, n)
	}
}

func TestDecodeTypedUnknownType(t *testing.T) {
	for b := 0; b < 256; b++ {
		if _, ok := TxType(b).Info(); ok {
			continue
		}
		_, _, err := DecodeTyped([]byte{byte(b), 0xc0})
		var ute *UnknownTypeError
		require.ErrorAs(t, err, &ute)
		require.Equal(t, byte(b), ute.Type)
		require.NotErrorIs(t, err, ErrTxTooShort)
		require.NotErrorIs(t, err, ErrDecode)
	}
}

func TestDecodeTypedLegacyPassthrough(t *testing.T) {
	tests := [][]byte{
		{0x78, 0x00},
		{0x78, 0xc0},
		{0x78, 0xff, 0xff, 0xff},             // not valid RLP, still accepted
		{0x78, 0xf8, 0x02, 0x01, 0x02, 0x03}, // header disagrees with length
	}
	for _, in := range tests {
		tx, n, err := DecodeTyped(in)
		require.NoError(t, err)
		require.Equal(t, len(in), n)
		require.True(t, tx.IsLegacy())
		require.Equal(t, in[1:], tx.Inner().(*LegacyTx).Payload)
		require.Equal(t, in, tx.EncodeTyped())
	}

	// The decoded payload must not alias the input.
	in := []byte{0x78, 0x01, 0x02}
	tx, _, err := DecodeTyped(in)
	require.NoError(t, err)
	in[1] = 0xee
	require.Equal(t, []byte{0x01, 0x02}, tx.Inner().(*LegacyTx).Payload)
}

func TestOptionalAddressSymmetry(t *testing.T) {
	to := addrPtr(testTo)
	kinds := []struct {
		name string
		make func(to *Address) TxData
	}{
		{"unsigned", func(to *Address) TxData { return &UnsignedTx{ChainID: testChainID, To: to} }},
		{"contract", func(to *Address) TxData { return &ContractTx{ChainID: testChainID, To: to} }},
		{"retry", func(to *Address) TxData { return &RetryTx{ChainID: testChainID, To: to} }},
		{"submit_retryable", func(to *Address) TxData { return &SubmitRetryableTx{ChainID: testChainID, RetryTo: to} }},
	}
	for _, k := range kinds {
		t.Run(k.name, func(t *testing.T) {
			absent := NewTx(k.make(nil)).EncodeTyped()
			present := NewTx(k.make(to)).EncodeTyped()
			// Absence is one marker byte, presence a 21-byte string.
			require.Equal(t, len(absent)+AddressLength, len(present))

			dec, _, err := DecodeTyped(absent)
			require.NoError(t, err)
			if diff := cmp.Diff(k.make(nil), dec.Inner(), txCmpOpts...); diff != "" {
				t.Fatalf("absent address mismatch (-want +got):\n%s", diff)
			}

			dec, _, err = DecodeTyped(present)
			require.NoError(t, err)
			if diff := cmp.Diff(k.make(to), dec.Inner(), txCmpOpts...); diff != "" {
				t.Fatalf("present address mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// The all-zero address is a present address and must not collapse to nil.
func TestOptionalAddressZeroIsPresent(t *testing.T) {
	enc := NewTx(&UnsignedTx{To: &Address{}}).EncodeTyped()
	dec, _, err := DecodeTyped(enc)
	require.NoError(t, err)
	require.NotNil(t, dec.To())
	require.Equal(t, Address{}, *dec.To())
}

func TestInternalTxGolden(t *testing.T) {
	tx := NewTx(&InternalTx{ChainID: big.NewInt(42161)})
	want := []byte{0x6a, 0xc4, 0x82, 0xa4, 0xb1, 0x80}
	require.Equal(t, want, tx.EncodeTyped())

	dec, n, err := DecodeTyped(want)
	require.NoError(t, err)
	require.Equal(t, len(want), n)
	require.Equal(t, 0, dec.ChainID().Cmp(big.NewInt(42161)))
	require.Empty(t, dec.Data())
}

// internalPayload builds an internal envelope from hand-assembled items.
func internalPayload(items ...[]byte) []byte {
	payload := bytes.Join(items, nil)
	return append([]byte{byte(InternalTxType)}, rlp.WrapList(payload)...)
}

func TestDecodeTypedErrors(t *testing.T) {
	chainID := rlp.AppendBigInt(nil, testChainID)
	data := rlp.AppendBytes(nil, []byte{1, 2})

	depositWith := func(from []byte) []byte {
		var p []byte
		p = append(p, chainID...)
		p = rlp.AppendBytes(p, testReqID[:])
		p = rlp.AppendBytes(p, from)
		p = rlp.AppendBytes(p, testTo[:])
		p = rlp.AppendUint64(p, 1)
		return append([]byte{byte(DepositTxType)}, rlp.WrapList(p)...)
	}
	unsignedWithTo := func(to []byte) []byte {
		var p []byte
		p = append(p, chainID...)
		p = rlp.AppendBytes(p, testFrom[:])
		p = rlp.AppendUint64(p, 0)
		p = rlp.AppendUint64(p, 0)
		p = rlp.AppendUint64(p, 0)
		p = append(p, to...)
		p = rlp.AppendUint64(p, 0)
		p = rlp.AppendBytes(p, nil)
		return append([]byte{byte(UnsignedTxType)}, rlp.WrapList(p)...)
	}

	tests := []struct {
		name  string
		input []byte
		cause error
	}{
		{"extra field", internalPayload(chainID, data, data), rlp.ErrNotAtEOL},
		{"missing field", internalPayload(chainID), nil},
		{"payload is a string", append([]byte{byte(InternalTxType)}, 0x82, 0x01, 0x02), rlp.ErrExpectedList},
		{"chain id is a list", internalPayload([]byte{0xc0}, data), rlp.ErrExpectedString},
		{"chain id leading zero", internalPayload([]byte{0x82, 0x00, 0x01}, data), rlp.ErrCanonInt},
		{"chain id too wide", internalPayload(rlp.AppendBytes(nil, bytes.Repeat([]byte{1}, 33)), data), rlp.ErrUint256Range},
		{"non-canonical byte", internalPayload(chainID, []byte{0x81, 0x01}), rlp.ErrCanonSize},
		{"short address", depositWith(testFrom[:19]), ErrAddressLength},
		{"long address", depositWith(append(testFrom[:], 0)), ErrAddressLength},
		{"optional address single byte", unsignedWithTo([]byte{0x00}), ErrAddressLength},
		{"optional address short", unsignedWithTo(rlp.AppendBytes(nil, testTo[:10])), ErrAddressLength},
		{"optional address is a list", unsignedWithTo([]byte{0xc0}), rlp.ErrExpectedString},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, n, err := DecodeTyped(tt.input)
			require.Error(t, err)
			require.Zero(t, n)
			require.ErrorIs(t, err, ErrDecode)

			var de *DecodeError
			require.ErrorAs(t, err, &de)
			require.Equal(t, TxType(tt.input[0]), de.Type)
			if tt.cause != nil {
				require.ErrorIs(t, err, tt.cause)
			}
		})
	}
}

func TestDecodeTypedTrailingBytes(t *testing.T) {
	enc := NewTx(testPayloads()["retry"]).EncodeTyped()
	withTail := append(bytes.Clone(enc), 0x01, 0x02)

	tx, n, err := DecodeTyped(withTail)
	require.NoError(t, err)
	require.Equal(t, len(enc), n)
	require.Equal(t, enc, tx.EncodeTyped())

	var dec Transaction
	require.Error(t, dec.UnmarshalBinary(withTail))
	require.ErrorIs(t, dec.UnmarshalBinary(withTail), ErrDecode)
	require.NoError(t, dec.UnmarshalBinary(enc))
	require.Equal(t, RetryTxType, dec.Type())
}

func TestMarshalBinary(t *testing.T) {
	for name, inner := range testPayloads() {
		t.Run(name, func(t *testing.T) {
			tx := NewTx(inner)
			b, err := tx.MarshalBinary()
			require.NoError(t, err)

			var dec Transaction
			require.NoError(t, dec.UnmarshalBinary(b))
			require.Equal(t, tx.Hash(), dec.Hash())
		})
	}
}

func TestTransactionHash(t *testing.T) {
	tx := NewTx(testPayloads()["submit_retryable"])
	enc := tx.EncodeTyped()

	d := sha3.NewLegacyKeccak256()
	d.Write(enc)
	want := BytesToHash(d.Sum(nil))

	require.Equal(t, want, tx.Hash())
	require.Equal(t, want, tx.Hash()) // cached
}

func TestNewTxCopiesPayload(t *testing.T) {
	inner := &UnsignedTx{ChainID: big.NewInt(1), To: addrPtr(testTo), Data: []byte{1}}
	tx := NewTx(inner)
	before := tx.EncodeTyped()

	inner.ChainID.SetInt64(2)
	inner.To[0] = 0xff
	inner.Data[0] = 2
	require.Equal(t, before, tx.EncodeTyped())

	got := tx.Inner().(*UnsignedTx)
	got.Data[0] = 3
	require.Equal(t, before, tx.EncodeTyped())
}

func TestDecodeDoesNotAliasInput(t *testing.T) {
	enc := NewTx(testPayloads()["unsigned"]).EncodeTyped()
	tx, _, err := DecodeTyped(enc)
	require.NoError(t, err)
	want := tx.Data()
	for i := range enc {
		enc[i] = 0
	}
	require.Equal(t, want, tx.Data())
}

func TestDecodeErrorChain(t *testing.T) {
	_, _, err := DecodeTyped(internalPayload(testChainID.Bytes()))
	require.True(t, errors.Is(err, ErrDecode))
	require.Contains(t, err.Error(), "ArbitrumInternal")
}
