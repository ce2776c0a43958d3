package main

import (
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

// TestMain registers "tinypy" as an in-process testscript command so golden
// scripts under testdata/script exercise the real CLI dispatch (run/test
// subcommands, exit codes, stderr diagnostics) without a go build step.
func TestMain(m *testing.M) {
	testscript.Main(m, map[string]func() int{
		"tinypy": run,
	})
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata/script",
	})
}
