package interpreter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/nchodur/tinypy/internal/lexer"
	"github.com/nchodur/tinypy/internal/parser"
)

func runSource(t *testing.T, src string) (string, error) {
	t.Helper()
	toks, err := lexer.NewScanner(src).ScanTokens()
	if err != nil {
		t.Fatalf("lex error: %v", err)
	}
	prog, err := parser.NewParser(toks).Parse()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	var buf bytes.Buffer
	in := New(&buf)
	runErr := in.Run(prog)
	return buf.String(), runErr
}

func mustRun(t *testing.T, src string) string {
	t.Helper()
	out, err := runSource(t, src)
	if err != nil {
		t.Fatalf("unexpected error running:\n%s\ngot: %v", src, err)
	}
	return out
}

// Scenario 1: BigInt arithmetic exceeds int64.
func TestScenarioBigIntExceedsInt64(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("a = 1\n")
	for i := 0; i < 40; i++ {
		sb.WriteString("a = a * 10\n")
	}
	sb.WriteString("print(a + 1)\n")
	out := mustRun(t, sb.String())
	want := "10000000000000000000000000000000000000001\n"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

// Scenario 2: floor division semantics.
func TestScenarioFloorDivAndMod(t *testing.T) {
	out := mustRun(t, "print(-7 // 2)\nprint(-7 % 2)\n")
	if out != "-4\n1\n" {
		t.Fatalf("got %q", out)
	}
}

// Scenario 3: chained comparison short-circuit.
func TestScenarioChainedComparison(t *testing.T) {
	out := mustRun(t, "print(1 < 2 < 3)\nprint(1 < 3 < 2)\n")
	if out != "True\nFalse\n" {
		t.Fatalf("got %q", out)
	}
}

// Scenario 4: function with default and early return.
func TestScenarioFunctionDefaultAndReturn(t *testing.T) {
	src := "def f(x, y=10):\n    if x < 0:\n        return -1\n    return x + y\nprint(f(5)); print(f(5, 1)); print(f(-1))\n"
	out := mustRun(t, src)
	if out != "15\n6\n-1\n" {
		t.Fatalf("got %q", out)
	}
}

// Scenario 5: while with break/continue.
func TestScenarioWhileBreakContinue(t *testing.T) {
	src := "i = 0; s = 0\nwhile i < 10:\n    i = i + 1\n    if i % 2 == 0:\n        continue\n    if i > 7:\n        break\n    s = s + i\nprint(s)\n"
	out := mustRun(t, src)
	if out != "16\n" {
		t.Fatalf("got %q", out)
	}
}

// Scenario 6: multi-target assignment and multi-return.
func TestScenarioMultiReturnAndUnpack(t *testing.T) {
	src := "def pair():\n    return 1, 2\na, b = pair()\nprint(a, b)\n"
	out := mustRun(t, src)
	if out != "1 2\n" {
		t.Fatalf("got %q", out)
	}
}

// Scenario 7: string repetition and concatenation.
func TestScenarioStringRepeatConcat(t *testing.T) {
	out := mustRun(t, `print("ab" * 3 + "!")` + "\n")
	if out != "ababab!\n" {
		t.Fatalf("got %q", out)
	}
}

// Scenario 8: f-string interpolation.
func TestScenarioFStringInterpolation(t *testing.T) {
	out := mustRun(t, "x = 7\nprint(f\"x={x*x}\")\n")
	if out != "x=49\n" {
		t.Fatalf("got %q", out)
	}
}

func TestUndefinedFunctionIsNameError(t *testing.T) {
	_, err := runSource(t, "missing()\n")
	if err == nil || !strings.Contains(err.Error(), "NameError") {
		t.Fatalf("expected NameError, got %v", err)
	}
}

func TestUndefinedNameIsNameError(t *testing.T) {
	_, err := runSource(t, "print(nope)\n")
	if err == nil || !strings.Contains(err.Error(), "NameError") {
		t.Fatalf("expected NameError, got %v", err)
	}
}

func TestDivisionByZeroError(t *testing.T) {
	_, err := runSource(t, "print(1 // 0)\n")
	if err == nil || !strings.Contains(err.Error(), "DivisionByZero") {
		t.Fatalf("expected DivisionByZero, got %v", err)
	}
}

func TestTypeErrorOnStringSubtraction(t *testing.T) {
	_, err := runSource(t, `print("a" - 1)` + "\n")
	if err == nil || !strings.Contains(err.Error(), "TypeError") {
		t.Fatalf("expected TypeError, got %v", err)
	}
}

func TestMissingRequiredArgumentIsArityError(t *testing.T) {
	_, err := runSource(t, "def f(x):\n    return x\nf()\n")
	if err == nil || !strings.Contains(err.Error(), "ArityError") {
		t.Fatalf("expected ArityError, got %v", err)
	}
}

func TestBuiltinTooManyArgumentsIsArityError(t *testing.T) {
	_, err := runSource(t, "int(1, 2)\n")
	if err == nil || !strings.Contains(err.Error(), "ArityError") {
		t.Fatalf("expected ArityError, got %v", err)
	}
}

func TestIntCoercionValueError(t *testing.T) {
	_, err := runSource(t, `int("abc")` + "\n")
	if err == nil || !strings.Contains(err.Error(), "ValueError") {
		t.Fatalf("expected ValueError, got %v", err)
	}
}

func TestNamedArgumentOverridesDefault(t *testing.T) {
	out := mustRun(t, "def f(a, b=2):\n    return a + b\nprint(f(1, b=5))\n")
	if out != "6\n" {
		t.Fatalf("got %q", out)
	}
}

func TestAugmentedAssignment(t *testing.T) {
	out := mustRun(t, "x = 5\nx += 3\nx *= 2\nprint(x)\n")
	if out != "16\n" {
		t.Fatalf("got %q", out)
	}
}

func TestAndOrShortCircuit(t *testing.T) {
	src := "def boom():\n    return 1 // 0\nprint(False and boom())\nprint(True or boom())\n"
	out := mustRun(t, src)
	if out != "False\nTrue\n" {
		t.Fatalf("got %q", out)
	}
}
