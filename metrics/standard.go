package metrics

// Codec metrics. Per-kind counters are created on demand under
// "codec.tx_decoded.<kind>".
var (
	// TxDecoded counts envelopes decoded successfully.
	TxDecoded = DefaultRegistry.Counter("codec.tx_decoded")
	// TxRejected counts envelopes rejected by the decoder.
	TxRejected = DefaultRegistry.Counter("codec.tx_rejected")
	// TxSize records the size in bytes of decoded envelopes.
	TxSize = DefaultRegistry.Histogram("codec.tx_size")

	ReceiptDecoded  = DefaultRegistry.Counter("codec.receipt_decoded")
	ReceiptRejected = DefaultRegistry.Counter("codec.receipt_rejected")
)

// TxDecodedByKind returns the decode counter for one transaction kind.
func TxDecodedByKind(kind string) *Counter {
	return DefaultRegistry.Counter("codec.tx_decoded." + kind)
}
