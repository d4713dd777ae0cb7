package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const internalHex = "0x6ac682a4b1820102"

func runArgs(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRunVersion(t *testing.T) {
	code, out, _ := runArgs(t, "--version")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if !strings.HasPrefix(out, "arbwire "+version) {
		t.Errorf("version output = %q", out)
	}
}

func TestRunNoCommand(t *testing.T) {
	code, _, errOut := runArgs(t)
	if code != 2 {
		t.Fatalf("exit code = %d, want 2", code)
	}
	if !strings.Contains(errOut, "Usage: arbwire") {
		t.Errorf("usage not printed: %q", errOut)
	}
}

func TestRunBadFlag(t *testing.T) {
	if code, _, _ := runArgs(t, "--chain", "abc", "types"); code != 2 {
		t.Fatalf("exit code = %d, want 2", code)
	}
}

func TestRunTypes(t *testing.T) {
	code, out, _ := runArgs(t, "types")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if lines := strings.Split(strings.TrimSpace(out), "\n"); len(lines) != 7 {
		t.Fatalf("got %d types, want 7:\n%s", len(lines), out)
	}
	if !strings.Contains(out, "0x6a  ArbitrumInternal") {
		t.Errorf("missing internal type:\n%s", out)
	}
}

func TestRunDecodeTx(t *testing.T) {
	code, out, errOut := runArgs(t, "decode-tx", internalHex)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr %q", code, errOut)
	}
	var got map[string]any
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if got["type"] != "0x6a" || got["chainId"] != "0xa4b1" || got["input"] != "0x0102" {
		t.Errorf("decoded = %v", got)
	}

	// Without the 0x prefix.
	if code, _, _ := runArgs(t, "decode-tx", strings.TrimPrefix(internalHex, "0x")); code != 0 {
		t.Fatalf("unprefixed hex: exit code = %d", code)
	}
}

func TestRunDecodeTxErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"bad hex", []string{"decode-tx", "0xzz"}, "decode-tx:"},
		{"unknown type", []string{"decode-tx", "0x67c0"}, "unknown transaction type 0x67"},
		{"trailing bytes", []string{"decode-tx", internalHex + "00"}, "trailing"},
		{"wrong chain", []string{"--chain", "42170", "decode-tx", internalHex}, "chain id mismatch"},
		{"unknown chain", []string{"--chain", "7", "decode-tx", internalHex}, "unknown chain id"},
		{"missing arg", []string{"decode-tx"}, "wrong number of arguments"},
		{"unknown command", []string{"frobnicate"}, "unknown command"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, errOut := runArgs(t, tt.args...)
			if code != 1 {
				t.Fatalf("exit code = %d, want 1", code)
			}
			if !strings.Contains(errOut, tt.want) {
				t.Errorf("stderr = %q, want it to contain %q", errOut, tt.want)
			}
		})
	}
}

func TestRunDecodeTxMatchingChain(t *testing.T) {
	if code, _, errOut := runArgs(t, "--chain", "42161", "decode-tx", internalHex); code != 0 {
		t.Fatalf("exit code = %d, stderr %q", code, errOut)
	}
}

func TestRunChainsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chains.toml")
	content := "[[chain]]\nchain-id = 42161\nchain-name = \"custom\"\nparent-chain-id = 1\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	code, _, errOut := runArgs(t, "--chains", path, "--chain", "42161", "--log-level", "debug", "decode-tx", internalHex)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr %q", code, errOut)
	}
	if !strings.Contains(errOut, "custom") {
		t.Errorf("custom chain not selected, stderr %q", errOut)
	}

	if code, _, _ := runArgs(t, "--chains", filepath.Join(t.TempDir(), "missing.toml"), "--chain", "1", "types"); code != 1 {
		t.Fatalf("missing chains file: exit code = %d, want 1", code)
	}
}

func TestRunEncodeTx(t *testing.T) {
	code, out, errOut := runArgs(t, "encode-tx", `{"type":"0x6a","chainId":"0xa4b1","input":"0x0102"}`)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr %q", code, errOut)
	}
	if got := strings.TrimSpace(out); got != internalHex {
		t.Errorf("encode-tx = %s, want %s", got, internalHex)
	}

	code, _, errOut = runArgs(t, "encode-tx", `{"type":"0x6a","chainId":"0xa4b1"}`)
	if code != 1 || !strings.Contains(errOut, "missing required field 'input'") {
		t.Errorf("missing input: code %d, stderr %q", code, errOut)
	}
}

func TestRunDecodeReceipt(t *testing.T) {
	// Failed receipt, zero gas, empty bloom, no logs.
	receipt := "0xf90106" + "80" + "80" + "b90100" + strings.Repeat("00", 256) + "c0"
	code, out, errOut := runArgs(t, "decode-receipt", receipt)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr %q", code, errOut)
	}
	var got map[string]any
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if got["status"] != "0x0" || got["cumulativeGasUsed"] != "0x0" {
		t.Errorf("decoded = %v", got)
	}

	if code, _, _ := runArgs(t, "decode-receipt", receipt+"c0"); code != 1 {
		t.Errorf("trailing receipt bytes: exit code = %d, want 1", code)
	}
}
