// Package scripttest is a thin wrapper around
// github.com/rogpeppe/go-internal/testscript for golden .txt script tests.
// Its own fixtures use only testscript's built-in commands; the evaluator's
// end-to-end scenario scripts live under cmd/tinypy/testdata/script and are
// run by cmd/tinypy's own tests, which register the CLI as an in-process
// "tinypy" command.
package scripttest

import (
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

// Commands is the shape of an in-process command table for
// testscript.Main, keyed by the name scripts call. Run registers none;
// cmd/tinypy's TestMain registers "tinypy" against its own run() directly
// with testscript.
type Commands = map[string]func() int

// Run executes every *.txt script under dir as a testscript program,
// comparing captured stdout/stderr against the script's own expectations.
// Only testscript's built-in commands are available to those scripts.
func Run(t *testing.T, dir string) {
	testscript.Run(t, testscript.Params{
		Dir: dir,
	})
}
