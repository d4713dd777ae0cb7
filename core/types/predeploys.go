package types

// System addresses of ArbOS and its precompiles.
var (
	ArbosAddress      = HexToAddress("0xa4b05")
	ArbosStateAddress = HexToAddress("0xA4B05FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF")

	ArbSysAddress                = HexToAddress("0x64")
	ArbInfoAddress               = HexToAddress("0x65")
	ArbAddressTableAddress       = HexToAddress("0x66")
	ArbBLSAddress                = HexToAddress("0x67")
	ArbFunctionTableAddress      = HexToAddress("0x68")
	ArbosTestAddress             = HexToAddress("0x69")
	ArbOwnerPublicAddress        = HexToAddress("0x6b")
	ArbGasInfoAddress            = HexToAddress("0x6c")
	ArbAggregatorAddress         = HexToAddress("0x6d")
	ArbRetryableTxAddress        = HexToAddress("0x6e")
	ArbStatisticsAddress         = HexToAddress("0x6f")
	ArbOwnerAddress              = HexToAddress("0x70")
	ArbWasmAddress               = HexToAddress("0x71")
	ArbWasmCacheAddress          = HexToAddress("0x72")
	ArbNativeTokenManagerAddress = HexToAddress("0x73")
	NodeInterfaceAddress         = HexToAddress("0xc8")
	NodeInterfaceDebugAddress    = HexToAddress("0xc9")
	ArbDebugAddress              = HexToAddress("0xff")
)

// IsPrecompile reports whether a is one of the ArbOS precompile addresses
// above. ArbosAddress itself is an account, not a precompile.
func IsPrecompile(a Address) bool {
	switch a {
	case ArbSysAddress, ArbInfoAddress, ArbAddressTableAddress, ArbBLSAddress,
		ArbFunctionTableAddress, ArbosTestAddress, ArbOwnerPublicAddress,
		ArbGasInfoAddress, ArbAggregatorAddress, ArbRetryableTxAddress,
		ArbStatisticsAddress, ArbOwnerAddress, ArbWasmAddress, ArbWasmCacheAddress,
		ArbNativeTokenManagerAddress, NodeInterfaceAddress, NodeInterfaceDebugAddress,
		ArbDebugAddress:
		return true
	}
	return false
}
