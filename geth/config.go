package geth

import (
	"math/big"

	gethparams "github.com/ethereum/go-ethereum/params"

	"github.com/arbwire/arbwire/params"
)

// ToGethChainConfig converts an Arbitrum chain config to a go-ethereum one.
// Arbitrum chains run every block-numbered fork through London from
// genesis. ArbOS-specific settings have no go-ethereum counterpart and are
// dropped.
func ToGethChainConfig(c *params.ChainConfig) *gethparams.ChainConfig {
	if c == nil {
		return nil
	}
	zero := big.NewInt(0)
	return &gethparams.ChainConfig{
		ChainID:             new(big.Int).Set(c.ChainID),
		HomesteadBlock:      zero,
		EIP150Block:         zero,
		EIP155Block:         zero,
		EIP158Block:         zero,
		ByzantiumBlock:      zero,
		ConstantinopleBlock: zero,
		PetersburgBlock:     zero,
		IstanbulBlock:       zero,
		MuirGlacierBlock:    zero,
		BerlinBlock:         zero,
		LondonBlock:         zero,
	}
}
