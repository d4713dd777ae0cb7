// Command arbwire decodes and encodes Arbitrum transaction envelopes and
// receipts from the command line.
//
// Usage:
//
//	arbwire [flags] <command> [args]
//
// Flags:
//
//	--chain      Check envelopes against this chain id
//	--chains     TOML file with extra chain configurations
//	--log-level  Log verbosity (default: warn)
//	--version    Print version and exit
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/arbwire/arbwire/core/types"
	"github.com/arbwire/arbwire/log"
	"github.com/arbwire/arbwire/params"
)

// Build-time version info, overridable with ldflags:
//
//	go build -ldflags "-X main.version=v0.2.0 -X main.commit=abc1234"
var (
	version = "v0.1.0-dev"
	commit  = "unknown"
)

var errUsage = errors.New("wrong number of arguments")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is the actual entry point, returning an exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, exit, code := parseFlags(args, stderr)
	if exit {
		return code
	}
	if cfg.Version {
		fmt.Fprintf(stdout, "arbwire %s (%s)\n", version, commit)
		return 0
	}

	log.SetDefault(log.NewWithHandler(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: log.ParseLevel(cfg.LogLevel),
	})))

	chain, err := resolveChain(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Invalid configuration: %v\n", err)
		return 1
	}
	if chain != nil {
		log.Debug("Checking chain id", "chain", chain.String())
	}

	if err := dispatch(cfg, chain, stdout); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", cfg.Command, err)
		return 1
	}
	return 0
}

func dispatch(cfg config, chain *params.ChainConfig, stdout io.Writer) error {
	switch cfg.Command {
	case "decode-tx":
		if len(cfg.Args) != 1 {
			return errUsage
		}
		return decodeTx(cfg.Args[0], chain, stdout)
	case "decode-receipt":
		if len(cfg.Args) != 1 {
			return errUsage
		}
		return decodeReceipt(cfg.Args[0], stdout)
	case "encode-tx":
		if len(cfg.Args) != 1 {
			return errUsage
		}
		return encodeTx(cfg.Args[0], chain, stdout)
	case "types":
		for _, info := range types.AllTxTypes() {
			fmt.Fprintf(stdout, "0x%02x  %s\n", info.Type.Byte(), info.Name)
		}
		return nil
	default:
		return fmt.Errorf("unknown command %q", cfg.Command)
	}
}

// resolveChain returns the configuration selected by --chain, or nil when
// chain checks are disabled. Chains from --chains take precedence over the
// built-in ones.
func resolveChain(cfg config) (*params.ChainConfig, error) {
	if cfg.ChainID == 0 {
		return nil, nil
	}
	if cfg.ChainsFile != "" {
		f, err := os.Open(cfg.ChainsFile)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		configs, err := params.LoadChainConfigs(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", cfg.ChainsFile, err)
		}
		for _, c := range configs {
			if c.ChainID.IsUint64() && c.ChainID.Uint64() == cfg.ChainID {
				return c, nil
			}
		}
	}
	return params.ChainConfigByID(cfg.ChainID)
}

func decodeHex(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		s = "0x" + s
	}
	return hexutil.Decode(s)
}

func decodeTx(input string, chain *params.ChainConfig, stdout io.Writer) error {
	b, err := decodeHex(input)
	if err != nil {
		return err
	}
	tx := new(types.Transaction)
	if err := tx.UnmarshalBinary(b); err != nil {
		return err
	}
	if chain != nil {
		if err := chain.CheckChainID(tx); err != nil {
			return err
		}
	}
	return writeJSON(stdout, tx)
}

func decodeReceipt(input string, stdout io.Writer) error {
	b, err := decodeHex(input)
	if err != nil {
		return err
	}
	r, n, err := types.DecodeReceipt(b)
	if err != nil {
		return err
	}
	if n != len(b) {
		return fmt.Errorf("%d trailing bytes after receipt", len(b)-n)
	}
	return writeJSON(stdout, r)
}

func encodeTx(input string, chain *params.ChainConfig, stdout io.Writer) error {
	tx := new(types.Transaction)
	if err := json.Unmarshal([]byte(input), tx); err != nil {
		return err
	}
	if chain != nil {
		if err := chain.CheckChainID(tx); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(stdout, hexutil.Encode(tx.EncodeTyped()))
	return err
}

func writeJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", out)
	return err
}
