// Package repl implements the interactive read-eval-print loop: unlike
// sentra/internal/repl, which resets a fresh VM chunk for every line, this
// REPL keeps a single Interpreter alive for the whole session so variable
// and function bindings persist across lines.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/nchodur/tinypy/internal/diagnostics"
	tperrors "github.com/nchodur/tinypy/internal/errors"
	"github.com/nchodur/tinypy/internal/interpreter"
	"github.com/nchodur/tinypy/internal/lexer"
	"github.com/nchodur/tinypy/internal/parser"
)

// REPL is one interactive session: a persistent interpreter plus whatever
// input/output it is wired to. Start drives it against stdin/stdout;
// internal/network drives one REPL per websocket connection.
type REPL struct {
	in         io.Reader
	out        io.Writer
	interp     *interpreter.Interpreter
	diag       *diagnostics.Run
	interactive bool
}

// New builds a REPL session over the given streams. interactive controls
// whether prompts are printed (suppressed for piped, non-tty input).
func New(in io.Reader, out io.Writer, interactive bool) *REPL {
	r := &REPL{in: in, out: out, interactive: interactive}
	r.reset()
	return r
}

// Start runs a REPL session against stdin/stdout, auto-detecting whether
// stdin is a terminal via github.com/mattn/go-isatty to decide whether to
// print prompts.
func Start() {
	interactive := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	r := New(os.Stdin, os.Stdout, interactive)
	r.Run()
}

func (r *REPL) reset() {
	r.diag = diagnostics.NewRun()
	r.interp = interpreter.New(r.out)
	r.interp.SetDiag(r.diag)
}

// Run reads lines until EOF or an "exit"/"quit" line, accumulating an
// indented block until a blank line closes it, then evaluates the
// accumulated source against the session's persistent interpreter.
func (r *REPL) Run() {
	if r.interactive {
		fmt.Fprintf(r.out, "tinypy REPL [%s] | type 'exit' to quit, ':stats' or ':reset' for session commands\n", r.diag.ID)
	}
	scanner := bufio.NewScanner(r.in)
	var block []string
	for {
		if r.interactive {
			if len(block) == 0 {
				fmt.Fprint(r.out, ">>> ")
			} else {
				fmt.Fprint(r.out, "... ")
			}
		}
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()

		if len(block) == 0 {
			switch strings.TrimSpace(line) {
			case "exit", "quit":
				return
			case ":stats":
				r.diag.WriteStats(r.out)
				continue
			case ":reset":
				r.reset()
				continue
			case "":
				continue
			}
		}

		block = append(block, line)
		if strings.TrimSpace(line) == "" {
			r.evalBlock(strings.Join(block, "\n"))
			block = nil
			continue
		}
		if !needsContinuation(block) {
			r.evalBlock(strings.Join(block, "\n") + "\n")
			block = nil
		}
	}
}

// needsContinuation reports whether the accumulated block still needs more
// indented lines: true once any line ends with ':' and no blank line has
// closed the block yet.
func needsContinuation(block []string) bool {
	for _, l := range block {
		if strings.HasSuffix(strings.TrimSpace(l), ":") {
			return true
		}
	}
	return false
}

func (r *REPL) evalBlock(src string) {
	toks, err := lexer.NewScanner(src).ScanTokens()
	if err != nil {
		fmt.Fprintln(r.out, r.diag.Fail(err))
		return
	}
	prog, err := parser.NewParser(toks).Parse()
	if err != nil {
		fmt.Fprintln(r.out, r.diag.Fail(err))
		return
	}
	if err := r.interp.Run(prog); err != nil {
		if te, ok := tperrors.As(err); ok {
			fmt.Fprintln(r.out, r.diag.Fail(te))
			return
		}
		fmt.Fprintln(r.out, r.diag.Fail(err))
	}
}
