// cmd/tinypy/main.go
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/nchodur/tinypy/internal/diagnostics"
	tperrors "github.com/nchodur/tinypy/internal/errors"
	"github.com/nchodur/tinypy/internal/interpreter"
	"github.com/nchodur/tinypy/internal/lexer"
	"github.com/nchodur/tinypy/internal/network"
	"github.com/nchodur/tinypy/internal/parser"
	"github.com/nchodur/tinypy/internal/repl"
)

const version = "0.1.0"

// Command aliases, short forms for the subcommands below.
var commandAliases = map[string]string{
	"r": "run",
	"i": "repl",
	"t": "test",
	"s": "serve",
}

func main() {
	os.Exit(run(os.Args[1:]))
}

// run dispatches a subcommand and returns the process exit code, kept
// separate from main so internal/scripttest-style tests can drive the CLI
// as a registered in-process command instead of spawning a binary.
func run(args []string) int {
	if len(args) == 0 {
		showUsage()
		return 1
	}

	cmd := args[0]
	if alias, ok := commandAliases[cmd]; ok {
		cmd = alias
	}

	switch cmd {
	case "--help", "-h", "help":
		showUsage()
		return 0
	case "--version", "-v", "version":
		fmt.Printf("tinypy %s\n", version)
		return 0
	case "run":
		return cmdRun(args[1:])
	case "repl":
		return cmdRepl(args[1:])
	case "serve":
		return cmdServe(args[1:])
	case "test":
		return cmdTest(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "tinypy: unknown command %q\n", args[0])
		showUsage()
		return 1
	}
}

func showUsage() {
	fmt.Println("tinypy - a tree-walking evaluator for a small, arbitrary-precision scripting language")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  tinypy run <file.py> [--stats]    Evaluate a script             (alias: r)")
	fmt.Println("  tinypy repl [--stats]              Start the interactive REPL    (alias: i)")
	fmt.Println("  tinypy serve <addr>                 Serve REPL sessions over websocket (alias: s)")
	fmt.Println("  tinypy test <dir-or-glob>            Run every script as a smoke test (alias: t)")
	fmt.Println("  tinypy version                      Print the version")
}

// hasStatsFlag strips "--stats" out of args and reports whether it was
// present, leaving the remaining positional arguments.
func hasStatsFlag(args []string) ([]string, bool) {
	out := args[:0:0]
	stats := false
	for _, a := range args {
		if a == "--stats" {
			stats = true
			continue
		}
		out = append(out, a)
	}
	return out, stats
}

// cmdRun evaluates a single script and returns exit code 0 on normal
// termination or 1 on any uncaught runtime error
func cmdRun(args []string) int {
	args, stats := hasStatsFlag(args)
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "tinypy run: no filename provided")
		return 1
	}
	filename := args[0]

	source, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tinypy run: could not read file: %v\n", err)
		return 1
	}

	diag := diagnostics.NewRun()
	runErr := evaluate(string(source), os.Stdout, diag)

	if runErr != nil {
		fmt.Fprintln(os.Stderr, diag.Fail(runErr))
		return 1
	}
	if stats {
		diag.WriteStats(os.Stderr)
	}
	return 0
}

func evaluate(source string, w io.Writer, diag *diagnostics.Run) error {
	toks, err := lexer.NewScanner(source).ScanTokens()
	if err != nil {
		return err
	}
	prog, err := parser.NewParser(toks).Parse()
	if err != nil {
		return err
	}
	in := interpreter.New(w)
	in.SetDiag(diag)
	return in.Run(prog)
}

func cmdRepl(_ []string) int {
	// The REPL always tracks its own diagnostics.Run; --stats has no extra
	// effect here since the session's ":stats" meta-command already exposes it.
	repl.Start()
	return 0
}

func cmdServe(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "tinypy serve: no address provided")
		return 1
	}
	srv := network.NewServer(args[0])
	if err := srv.Serve(); err != nil {
		fmt.Fprintf(os.Stderr, "tinypy serve: %v\n", err)
		return 1
	}
	return 0
}

// cmdTest runs every *.py file under the given directory or glob as a smoke
// test: PASS/FAIL against an adjacent .golden file when present, otherwise
// just "does it run without an uncaught error". Files are evaluated
// concurrently with a bounded worker pool via golang.org/x/sync/errgroup;
// each gets its own Interpreter (and so its own Environment and function
// table), matching single-threaded-per-program model.
func cmdTest(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "tinypy test: no directory or glob provided")
		return 1
	}

	files, err := discoverScripts(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "tinypy test: %v\n", err)
		return 1
	}
	if len(files) == 0 {
		fmt.Println("tinypy test: no *.py files found")
		return 0
	}

	results := make([]testResult, len(files))

	g := new(errgroup.Group)
	g.SetLimit(8)
	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			results[i] = runScriptTest(f)
			return nil
		})
	}
	_ = g.Wait()

	failures := 0
	for _, r := range results {
		status := "PASS"
		if !r.pass {
			status = "FAIL"
			failures++
		}
		fmt.Printf("%s  %s", status, r.file)
		if r.msg != "" {
			fmt.Printf("  (%s)", r.msg)
		}
		fmt.Println()
	}
	fmt.Printf("\n%d/%d passed\n", len(files)-failures, len(files))
	if failures > 0 {
		return 1
	}
	return 0
}

type testResult struct {
	file string
	pass bool
	msg  string
}

func runScriptTest(file string) testResult {
	source, err := os.ReadFile(file)
	if err != nil {
		return testResult{file, false, err.Error()}
	}

	var buf bytes.Buffer
	diag := diagnostics.NewRun()
	runErr := evaluate(string(source), &buf, diag)
	if runErr != nil {
		if te, ok := tperrors.As(runErr); ok {
			return testResult{file, false, te.Error()}
		}
		return testResult{file, false, runErr.Error()}
	}

	golden := file[:len(file)-len(filepath.Ext(file))] + ".golden"
	if want, err := os.ReadFile(golden); err == nil {
		if buf.String() != string(want) {
			return testResult{file, false, "output mismatch"}
		}
	}
	return testResult{file, true, ""}
}

func discoverScripts(pattern string) ([]string, error) {
	info, err := os.Stat(pattern)
	if err == nil && info.IsDir() {
		var files []string
		err := filepath.Walk(pattern, func(path string, fi os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !fi.IsDir() && filepath.Ext(path) == ".py" {
				files = append(files, path)
			}
			return nil
		})
		sort.Strings(files)
		return files, err
	}
	matches, err := filepath.Glob(pattern)
	sort.Strings(matches)
	return matches, err
}
