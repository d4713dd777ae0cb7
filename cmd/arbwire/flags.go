package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"
)

// config holds the resolved command line.
type config struct {
	ChainID    uint64
	ChainsFile string
	LogLevel   string
	Version    bool
	Command    string
	Args       []string
}

// flagSet wraps flag.FlagSet to add support for uint64 flags.
type flagSet struct {
	*flag.FlagSet
}

func newCustomFlagSet(name string, output io.Writer) *flagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	return &flagSet{FlagSet: fs}
}

// Uint64Var defines a uint64 flag.
func (fs *flagSet) Uint64Var(p *uint64, name string, value uint64, usage string) {
	fs.FlagSet.Var(&uint64Value{p: p}, name, usage)
	*p = value
}

type uint64Value struct {
	p *uint64
}

func (v *uint64Value) String() string {
	if v.p == nil {
		return "0"
	}
	return strconv.FormatUint(*v.p, 10)
}

func (v *uint64Value) Set(s string) error {
	n, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return fmt.Errorf("invalid uint64 value %q", s)
	}
	*v.p = n
	return nil
}

const usage = `Usage: arbwire [flags] <command> [args]

Commands:
  decode-tx <hex>        decode a typed envelope and print it as JSON
  decode-receipt <hex>   decode a receipt and print it as JSON
  encode-tx <json>       encode a JSON transaction and print the envelope hex
  types                  list the transaction types

Flags:
`

// parseFlags parses args into a config. When exit is true the caller should
// stop with the returned code.
func parseFlags(args []string, stderr io.Writer) (cfg config, exit bool, code int) {
	fs := newCustomFlagSet("arbwire", stderr)
	fs.Uint64Var(&cfg.ChainID, "chain", 0, "check envelopes against this chain id (0 disables the check)")
	fs.StringVar(&cfg.ChainsFile, "chains", "", "TOML file with extra [[chain]] configurations")
	fs.StringVar(&cfg.LogLevel, "log-level", "warn", "log verbosity (debug, info, warn, error)")
	fs.BoolVar(&cfg.Version, "version", false, "print version and exit")
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return cfg, true, 0
		}
		return cfg, true, 2
	}
	if cfg.Version {
		return cfg, false, 0
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return cfg, true, 2
	}
	cfg.Command = fs.Arg(0)
	cfg.Args = fs.Args()[1:]
	return cfg, false, 0
}
