// Package params defines the per-chain configuration used to check the chain
// id carried by Arbitrum transaction envelopes.
package params

import (
	"errors"
	"fmt"
	"io"
	"math/big"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/arbwire/arbwire/core/types"
)

var (
	ErrMissingChainID   = errors.New("chain config: missing chain id")
	ErrMissingChainName = errors.New("chain config: missing chain name")
	ErrDuplicateChainID = errors.New("chain config: duplicate chain id")
	ErrUnknownChain     = errors.New("chain config: unknown chain id")
	ErrChainIDMismatch  = errors.New("chain config: transaction chain id mismatch")
)

// ChainConfig describes one Arbitrum chain.
type ChainConfig struct {
	ChainID               *big.Int
	ChainName             string
	ParentChainID         uint64
	ParentChainIsArbitrum bool
	InitialArbOSVersion   uint64
	InitialChainOwner     types.Address
}

// ArbitrumOneParams returns the configuration of Arbitrum One.
func ArbitrumOneParams() *ChainConfig {
	return &ChainConfig{
		ChainID:             big.NewInt(42161),
		ChainName:           "arb1",
		ParentChainID:       1,
		InitialArbOSVersion: 6,
		InitialChainOwner:   types.HexToAddress("0xd345e41ae2cb00311956aa7109fc801ae8c81a52"),
	}
}

// ArbitrumNovaParams returns the configuration of Arbitrum Nova.
func ArbitrumNovaParams() *ChainConfig {
	return &ChainConfig{
		ChainID:             big.NewInt(42170),
		ChainName:           "nova",
		ParentChainID:       1,
		InitialArbOSVersion: 1,
		InitialChainOwner:   types.HexToAddress("0x9c040726f2a657226ed95712245dee84b650a1b5"),
	}
}

// ArbitrumSepoliaParams returns the configuration of the Sepolia testnet.
func ArbitrumSepoliaParams() *ChainConfig {
	return &ChainConfig{
		ChainID:             big.NewInt(421614),
		ChainName:           "sepolia-rollup",
		ParentChainID:       11155111,
		InitialArbOSVersion: 10,
		InitialChainOwner:   types.HexToAddress("0x71b61c2e250afa05dfc36304d6c91501be0965d8"),
	}
}

// ArbitrumDevTestParams returns the configuration used by local dev chains.
func ArbitrumDevTestParams() *ChainConfig {
	return &ChainConfig{
		ChainID:             big.NewInt(412346),
		ChainName:           "arb-dev-test",
		ParentChainID:       1337,
		InitialArbOSVersion: 32,
	}
}

var builtinChains = []func() *ChainConfig{
	ArbitrumOneParams,
	ArbitrumNovaParams,
	ArbitrumSepoliaParams,
	ArbitrumDevTestParams,
}

// ChainConfigByID returns the built-in configuration for a chain id.
func ChainConfigByID(id uint64) (*ChainConfig, error) {
	for _, fn := range builtinChains {
		c := fn()
		if c.ChainID.IsUint64() && c.ChainID.Uint64() == id {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownChain, id)
}

// Validate checks the config for missing fields.
func (c *ChainConfig) Validate() error {
	if c.ChainID == nil || c.ChainID.Sign() <= 0 {
		return ErrMissingChainID
	}
	if c.ChainName == "" {
		return ErrMissingChainName
	}
	return nil
}

// Signer returns an Arbitrum signer bound to this chain.
func (c *ChainConfig) Signer() types.ArbitrumSigner {
	return types.NewArbitrumSigner(c.ChainID)
}

// CheckChainID verifies that the envelope targets this chain. Legacy
// envelopes carry no decoded chain id and always pass.
func (c *ChainConfig) CheckChainID(tx *types.Transaction) error {
	if tx.IsLegacy() {
		return nil
	}
	got := tx.ChainID()
	if got == nil {
		got = new(big.Int)
	}
	if got.Cmp(c.ChainID) != 0 {
		return fmt.Errorf("%w: have %v, want %v", ErrChainIDMismatch, got, c.ChainID)
	}
	return nil
}

// String implements fmt.Stringer.
func (c *ChainConfig) String() string {
	return fmt.Sprintf("%s (chain %v, parent %d)", c.ChainName, c.ChainID, c.ParentChainID)
}

type chainFile struct {
	Chains []chainEntry `toml:"chain"`
}

type chainEntry struct {
	ChainID               uint64        `toml:"chain-id"`
	ChainName             string        `toml:"chain-name"`
	ParentChainID         uint64        `toml:"parent-chain-id"`
	ParentChainIsArbitrum bool          `toml:"parent-chain-is-arbitrum"`
	InitialArbOSVersion   uint64        `toml:"initial-arbos-version"`
	InitialChainOwner     types.Address `toml:"initial-chain-owner"`
}

// LoadChainConfigs reads [[chain]] tables from a TOML document. Unknown keys
// are rejected. The result is sorted by chain id.
func LoadChainConfigs(r io.Reader) ([]*ChainConfig, error) {
	var file chainFile
	md, err := toml.NewDecoder(r).Decode(&file)
	if err != nil {
		return nil, fmt.Errorf("chain config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("chain config: unknown key %q", undecoded[0].String())
	}
	seen := make(map[uint64]bool, len(file.Chains))
	configs := make([]*ChainConfig, 0, len(file.Chains))
	for i, e := range file.Chains {
		c := &ChainConfig{
			ChainID:               new(big.Int).SetUint64(e.ChainID),
			ChainName:             e.ChainName,
			ParentChainID:         e.ParentChainID,
			ParentChainIsArbitrum: e.ParentChainIsArbitrum,
			InitialArbOSVersion:   e.InitialArbOSVersion,
			InitialChainOwner:     e.InitialChainOwner,
		}
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("chain %d: %w", i, err)
		}
		if seen[e.ChainID] {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateChainID, e.ChainID)
		}
		seen[e.ChainID] = true
		configs = append(configs, c)
	}
	sort.Slice(configs, func(i, j int) bool {
		return configs[i].ChainID.Cmp(configs[j].ChainID) < 0
	})
	return configs, nil
}
