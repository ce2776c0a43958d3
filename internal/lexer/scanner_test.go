package lexer

import "testing"

func typesOf(toks []Token) []TokenType {
	out := make([]TokenType, len(toks))
	for i, t := range toks {
		out[i] = t.Type
	}
	return out
}

func assertTypes(t *testing.T, got []Token, want []TokenType) {
	t.Helper()
	gotTypes := typesOf(got)
	if len(gotTypes) != len(want) {
		t.Fatalf("token count mismatch:\ngot:  %v\nwant: %v", gotTypes, want)
	}
	for i := range want {
		if gotTypes[i] != want[i] {
			t.Fatalf("token %d: got %s, want %s\nfull got:  %v\nfull want: %v", i, gotTypes[i], want[i], gotTypes, want)
		}
	}
}

func TestSimpleAssignmentLine(t *testing.T) {
	toks, err := NewScanner("x = 1\n").ScanTokens()
	if err != nil {
		t.Fatal(err)
	}
	assertTypes(t, toks, []TokenType{TokenIdent, TokenAssign, TokenInt, TokenNewline, TokenEOF})
}

func TestIndentDedentAroundIf(t *testing.T) {
	src := "if x:\n    y = 1\nz = 2\n"
	toks, err := NewScanner(src).ScanTokens()
	if err != nil {
		t.Fatal(err)
	}
	assertTypes(t, toks, []TokenType{
		TokenIf, TokenIdent, TokenColon, TokenNewline,
		TokenIndent,
		TokenIdent, TokenAssign, TokenInt, TokenNewline,
		TokenDedent,
		TokenIdent, TokenAssign, TokenInt, TokenNewline,
		TokenEOF,
	})
}

func TestNestedIndentProducesMultipleDedents(t *testing.T) {
	src := "if a:\n    if b:\n        x = 1\ny = 2\n"
	toks, err := NewScanner(src).ScanTokens()
	if err != nil {
		t.Fatal(err)
	}
	// last real statement is inside two levels of indent; after it, two
	// DEDENTs must fire before the final top-level statement.
	var dedentRun int
	for i, tok := range toks {
		if tok.Type == TokenDedent {
			dedentRun++
			if i+1 < len(toks) && toks[i+1].Type != TokenDedent {
				break
			}
		}
	}
	if dedentRun != 2 {
		t.Fatalf("expected 2 consecutive dedents, saw run of %d in %v", dedentRun, typesOf(toks))
	}
}

func TestBlankAndCommentLinesDoNotAffectIndentation(t *testing.T) {
	src := "if x:\n    y = 1\n\n    # a comment\n    z = 2\nw = 3\n"
	toks, err := NewScanner(src).ScanTokens()
	if err != nil {
		t.Fatal(err)
	}
	dedents := 0
	for _, tok := range toks {
		if tok.Type == TokenDedent {
			dedents++
		}
	}
	if dedents != 1 {
		t.Fatalf("expected exactly 1 dedent, got %d in %v", dedents, typesOf(toks))
	}
}

func TestInconsistentIndentationErrors(t *testing.T) {
	src := "if x:\n   y = 1\n  z = 2\n"
	if _, err := NewScanner(src).ScanTokens(); err == nil {
		t.Fatal("expected an inconsistent-indentation error")
	}
}

func TestStringEscapes(t *testing.T) {
	toks, err := NewScanner(`"a\nb\tc\\d"` + "\n").ScanTokens()
	if err != nil {
		t.Fatal(err)
	}
	if toks[0].Type != TokenString {
		t.Fatalf("expected STRING, got %s", toks[0].Type)
	}
	want := "a\nb\tc\\d"
	if toks[0].Lexeme != want {
		t.Fatalf("got %q, want %q", toks[0].Lexeme, want)
	}
}

func TestFStringPrefixDetection(t *testing.T) {
	toks, err := NewScanner(`f"hi {name}"` + "\n").ScanTokens()
	if err != nil {
		t.Fatal(err)
	}
	if toks[0].Type != TokenFString {
		t.Fatalf("expected FSTRING, got %s", toks[0].Type)
	}
	if toks[0].Lexeme != "hi {name}" {
		t.Fatalf("got %q", toks[0].Lexeme)
	}
}

func TestFloatVsIntLiterals(t *testing.T) {
	toks, err := NewScanner("1 1.5 2e10 3.0e-2\n").ScanTokens()
	if err != nil {
		t.Fatal(err)
	}
	assertTypes(t, toks, []TokenType{TokenInt, TokenFloat, TokenFloat, TokenFloat, TokenNewline, TokenEOF})
}

func TestFloorDivAndCompoundAssignOperators(t *testing.T) {
	toks, err := NewScanner("a //= b\nc <= d >= e != f == g\n").ScanTokens()
	if err != nil {
		t.Fatal(err)
	}
	assertTypes(t, toks, []TokenType{
		TokenIdent, TokenFloorEq, TokenIdent, TokenNewline,
		TokenIdent, TokenLE, TokenIdent, TokenGE, TokenIdent, TokenNe, TokenIdent, TokenEq, TokenIdent, TokenNewline,
		TokenEOF,
	})
}

func TestSemicolonSeparatesStatementsOnOneLine(t *testing.T) {
	toks, err := NewScanner("i = 0; s = 0\n").ScanTokens()
	if err != nil {
		t.Fatal(err)
	}
	assertTypes(t, toks, []TokenType{
		TokenIdent, TokenAssign, TokenInt, TokenSemicolon,
		TokenIdent, TokenAssign, TokenInt, TokenNewline, TokenEOF,
	})
}

func TestKeywordsAreNotIdentifiers(t *testing.T) {
	toks, err := NewScanner("def if elif else while break continue return True False None and or not\n").ScanTokens()
	if err != nil {
		t.Fatal(err)
	}
	want := []TokenType{
		TokenDef, TokenIf, TokenElif, TokenElse, TokenWhile, TokenBreak, TokenContinue,
		TokenReturn, TokenTrue, TokenFalse, TokenNone, TokenAnd, TokenOr, TokenNot,
		TokenNewline, TokenEOF,
	}
	assertTypes(t, toks, want)
}
