// Package parser builds the syntax tree the evaluator walks. Node kinds
// mirror the visitor methods an ANTLR-generated Python3Parser grammar would
// produce, rather than any bespoke grammar.
//
// Both Expr and Stmt use the Accept(visitor) dispatch shape
// sentra/internal/parser/ast.go uses for its own Expr/Stmt trees; the
// return type here is (interface{}, error) for the same reason: the node
// set is heterogeneous (expressions yield a value, statements a control
// signal) and the concrete type is recovered by the interpreter, which
// owns value.Value and its controlSignal type and so cannot be referenced
// from this package without an import cycle.
package parser

// Expr is any expression node.
type Expr interface {
	Accept(v ExprVisitor) (interface{}, error)
	Line() int
}

// Stmt is any statement node.
type Stmt interface {
	Accept(v StmtVisitor) (interface{}, error)
	Line() int
}

// ExprVisitor evaluates one expression node kind per method, matching
// Evalvisitor.h's visit* method list for the expression grammar
// (or_test/and_test/not_test/comparison/arith_expr/term/factor/atom_expr/
// atom/trailer/testlist/format_string/arglist/argument).
type ExprVisitor interface {
	VisitBinary(n *Binary) (interface{}, error)
	VisitLogical(n *Logical) (interface{}, error)
	VisitNot(n *Not) (interface{}, error)
	VisitComparison(n *Comparison) (interface{}, error)
	VisitUnary(n *Unary) (interface{}, error)
	VisitCall(n *Call) (interface{}, error)
	VisitName(n *Name) (interface{}, error)
	VisitIntLit(n *IntLit) (interface{}, error)
	VisitFloatLit(n *FloatLit) (interface{}, error)
	VisitStringLit(n *StringLit) (interface{}, error)
	VisitBoolLit(n *BoolLit) (interface{}, error)
	VisitNoneLit(n *NoneLit) (interface{}, error)
	VisitFString(n *FString) (interface{}, error)
	VisitTuple(n *TupleExpr) (interface{}, error)
}

// StmtVisitor executes one statement node kind per method.
type StmtVisitor interface {
	VisitExprStmt(n *ExprStmt) (interface{}, error)
	VisitAssign(n *Assign) (interface{}, error)
	VisitAugAssign(n *AugAssign) (interface{}, error)
	VisitIf(n *If) (interface{}, error)
	VisitWhile(n *While) (interface{}, error)
	VisitBreak(n *Break) (interface{}, error)
	VisitContinue(n *Continue) (interface{}, error)
	VisitReturn(n *Return) (interface{}, error)
	VisitFuncDef(n *FuncDef) (interface{}, error)
}

type pos struct{ line int }

func (p pos) Line() int { return p.line }

// --- Expressions -----------------------------------------------------

// Binary is a left op right arithmetic expression: + - * / // %.
type Binary struct {
	pos
	Left     Expr
	Operator string
	Right    Expr
}

func (n *Binary) Accept(v ExprVisitor) (interface{}, error) { return v.VisitBinary(n) }

// Logical is `and`/`or`, evaluated with short-circuit semantics by the
// visitor rather than by evaluating both operands up front.
type Logical struct {
	pos
	Left     Expr
	Operator string // "and" | "or"
	Right    Expr
}

func (n *Logical) Accept(v ExprVisitor) (interface{}, error) { return v.VisitLogical(n) }

// Not is the unary `not` operator.
type Not struct {
	pos
	Operand Expr
}

func (n *Not) Accept(v ExprVisitor) (interface{}, error) { return v.VisitNot(n) }

// Comparison is a chained comparison a op1 b op2 c ...: Operands has one
// more element than Operators, and evaluation short-circuits left to right
//
type Comparison struct {
	pos
	Operands  []Expr
	Operators []string
}

func (n *Comparison) Accept(v ExprVisitor) (interface{}, error) { return v.VisitComparison(n) }

// Unary is prefix + or - applied to a single operand.
type Unary struct {
	pos
	Operator string
	Operand  Expr
}

func (n *Unary) Accept(v ExprVisitor) (interface{}, error) { return v.VisitUnary(n) }

// Call is a function call: Callee is always a Name in this language subset
// (no first-class functions), Args may mix positional and named arguments.
type Call struct {
	pos
	Callee Expr
	Args   []Arg
}

// Arg is one call argument: Name is empty for a positional argument.
type Arg struct {
	Name  string
	Value Expr
}

func (n *Call) Accept(v ExprVisitor) (interface{}, error) { return v.VisitCall(n) }

// Name is a bare identifier: both a potential value read and a potential
// assignment target — the interpreter resolves it to a value only where a
// read is required.
type Name struct {
	pos
	Ident string
}

func (n *Name) Accept(v ExprVisitor) (interface{}, error) { return v.VisitName(n) }

// IntLit is an integer literal (no '.'/'e'/'E' in its source text).
type IntLit struct {
	pos
	Text string
}

func (n *IntLit) Accept(v ExprVisitor) (interface{}, error) { return v.VisitIntLit(n) }

// FloatLit is a floating-point literal.
type FloatLit struct {
	pos
	Text string
}

func (n *FloatLit) Accept(v ExprVisitor) (interface{}, error) { return v.VisitFloatLit(n) }

// StringLit is a string literal; adjacent literals are concatenated by the
// parser at parse time (recovered "adjacent string literal
// concatenation" feature), so by the time the evaluator sees one it is
// already the fully concatenated text.
type StringLit struct {
	pos
	Value string
}

func (n *StringLit) Accept(v ExprVisitor) (interface{}, error) { return v.VisitStringLit(n) }

// BoolLit is True or False.
type BoolLit struct {
	pos
	Value bool
}

func (n *BoolLit) Accept(v ExprVisitor) (interface{}, error) { return v.VisitBoolLit(n) }

// NoneLit is the None literal.
type NoneLit struct{ pos }

func (n *NoneLit) Accept(v ExprVisitor) (interface{}, error) { return v.VisitNoneLit(n) }

// FStringPart is one literal-or-expression fragment of an f-string, in
// source order.
type FStringPart struct {
	Literal string // used when Expr == nil
	Expr    Expr
}

// FString is an f-string: Parts interleaves literal fragments (with {{ }}
// already collapsed to { }) and embedded expressions in source order.
type FString struct {
	pos
	Parts []FStringPart
}

func (n *FString) Accept(v ExprVisitor) (interface{}, error) { return v.VisitFString(n) }

// TupleExpr is a comma-separated expression list (testlist with more than
// one element).
type TupleExpr struct {
	pos
	Elements []Expr
}

func (n *TupleExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitTuple(n) }

// --- Statements --------------------------------------------------------

// ExprStmt evaluates an expression for its side effect and discards the
// result (e.g. a bare call statement).
type ExprStmt struct {
	pos
	X Expr
}

func (n *ExprStmt) Accept(v StmtVisitor) (interface{}, error) { return v.VisitExprStmt(n) }

// Assign is a (possibly chained) assignment: a = b = ... = Value. Targets
// are evaluated right-to-left against the single evaluated Value, giving
// a=b=c=expr semantics
type Assign struct {
	pos
	Targets []Expr // Name or TupleExpr of Names
	Value   Expr
}

func (n *Assign) Accept(v StmtVisitor) (interface{}, error) { return v.VisitAssign(n) }

// AugAssign is += -= *= /= //= %=, always a single target.
type AugAssign struct {
	pos
	Target   Expr // always *Name
	Operator string
	Value    Expr
}

func (n *AugAssign) Accept(v StmtVisitor) (interface{}, error) { return v.VisitAugAssign(n) }

// If is an if/elif/.../else chain: Conds[i] guards Bodies[i]; Else runs
// when no condition matched and an else clause exists.
type If struct {
	pos
	Conds  []Expr
	Bodies [][]Stmt
	Else   []Stmt // nil if no else clause
}

func (n *If) Accept(v StmtVisitor) (interface{}, error) { return v.VisitIf(n) }

// While is a while loop with a body suite.
type While struct {
	pos
	Cond Expr
	Body []Stmt
}

func (n *While) Accept(v StmtVisitor) (interface{}, error) { return v.VisitWhile(n) }

// Break is a break statement.
type Break struct{ pos }

func (n *Break) Accept(v StmtVisitor) (interface{}, error) { return v.VisitBreak(n) }

// Continue is a continue statement.
type Continue struct{ pos }

func (n *Continue) Accept(v StmtVisitor) (interface{}, error) { return v.VisitContinue(n) }

// Return is a return statement; Values is empty for a bare `return`.
type Return struct {
	pos
	Values []Expr
}

func (n *Return) Accept(v StmtVisitor) (interface{}, error) { return v.VisitReturn(n) }

// Param is one function parameter; Default is nil for a required parameter.
type Param struct {
	Name    string
	Default Expr
}

// FuncDef is a function definition.
type FuncDef struct {
	pos
	Name   string
	Params []Param
	Body   []Stmt
}

func (n *FuncDef) Accept(v StmtVisitor) (interface{}, error) { return v.VisitFuncDef(n) }
