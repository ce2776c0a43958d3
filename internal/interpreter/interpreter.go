// Package interpreter is the tree evaluator: it implements
// parser.ExprVisitor and parser.StmtVisitor, walking the syntax tree
// produced by internal/parser against a two-frame internal/environment,
// dispatching operators through internal/ops and threading break/continue/
// return as controlSignal values rather than Go panics.
package interpreter

import (
	"io"

	"github.com/nchodur/tinypy/internal/diagnostics"
	tperrors "github.com/nchodur/tinypy/internal/errors"
	"github.com/nchodur/tinypy/internal/environment"
	"github.com/nchodur/tinypy/internal/ops"
	"github.com/nchodur/tinypy/internal/parser"
	"github.com/nchodur/tinypy/internal/value"
)

// Interpreter owns the environment and the function table for one program
// run. It is not safe for concurrent use; internal/network gives each
// connection its own Interpreter.
type Interpreter struct {
	env       *environment.Env
	functions map[string]*function
	out       io.Writer
	diag      *diagnostics.Run
}

// New returns an Interpreter that writes print output to w.
func New(w io.Writer) *Interpreter {
	return &Interpreter{
		env:       environment.New(),
		functions: map[string]*function{},
		out:       w,
	}
}

// SetDiag attaches a diagnostics.Run so --stats and :stats can report
// statement counts and the widest BigInt magnitude this run touched.
func (in *Interpreter) SetDiag(r *diagnostics.Run) { in.diag = r }

// Run executes a whole program's top-level statement list.
func (in *Interpreter) Run(program []parser.Stmt) error {
	_, err := in.execBlock(program)
	return err
}

// eval evaluates one expression node to a Value.
func (in *Interpreter) eval(e parser.Expr) (value.Value, error) {
	raw, err := e.Accept(in)
	if err != nil {
		return value.None, err
	}
	v, ok := raw.(value.Value)
	if !ok {
		return value.None, tperrors.NewAt(tperrors.KindInternal, e.Line(), "evaluator produced non-Value result %T", raw)
	}
	if in.diag != nil && v.Kind == value.KindInt {
		in.diag.ObserveInt(len(v.Int.Digits))
	}
	return v, nil
}

// execStmt executes one statement node.
func (in *Interpreter) execStmt(s parser.Stmt) (controlSignal, error) {
	if in.diag != nil {
		in.diag.Statements++
	}
	raw, err := s.Accept(in)
	if err != nil {
		return noSignal, err
	}
	sig, ok := raw.(controlSignal)
	if !ok {
		return noSignal, tperrors.NewAt(tperrors.KindInternal, s.Line(), "evaluator produced non-signal result %T", raw)
	}
	return sig, nil
}

// execBlock runs a statement list in order, stopping early the moment any
// statement produces a non-none control signal.
func (in *Interpreter) execBlock(stmts []parser.Stmt) (controlSignal, error) {
	for _, s := range stmts {
		sig, err := in.execStmt(s)
		if err != nil {
			return noSignal, err
		}
		if sig.kind != sigNone {
			return sig, nil
		}
	}
	return noSignal, nil
}

// --- ExprVisitor -----------------------------------------------------------

func (in *Interpreter) VisitBinary(n *parser.Binary) (interface{}, error) {
	l, err := in.eval(n.Left)
	if err != nil {
		return nil, err
	}
	r, err := in.eval(n.Right)
	if err != nil {
		return nil, err
	}
	var v value.Value
	switch n.Operator {
	case "+":
		v, err = ops.Add(l, r)
	case "-":
		v, err = ops.Sub(l, r)
	case "*":
		v, err = ops.Mul(l, r)
	case "/":
		v, err = ops.Div(l, r)
	case "//":
		v, err = ops.FloorDiv(l, r)
	case "%":
		v, err = ops.Mod(l, r)
	default:
		return nil, tperrors.NewAt(tperrors.KindInternal, n.Line(), "unknown binary operator %q", n.Operator)
	}
	if err != nil {
		return nil, classifyOpErr(err, n.Line())
	}
	return v, nil
}

func (in *Interpreter) VisitLogical(n *parser.Logical) (interface{}, error) {
	l, err := in.eval(n.Left)
	if err != nil {
		return nil, err
	}
	switch n.Operator {
	case "and":
		if !l.Truthy() {
			return l, nil
		}
	case "or":
		if l.Truthy() {
			return l, nil
		}
	default:
		return nil, tperrors.NewAt(tperrors.KindInternal, n.Line(), "unknown logical operator %q", n.Operator)
	}
	return in.eval(n.Right)
}

func (in *Interpreter) VisitNot(n *parser.Not) (interface{}, error) {
	v, err := in.eval(n.Operand)
	if err != nil {
		return nil, err
	}
	return ops.Not(v), nil
}

// VisitComparison evaluates a chained comparison left to right,
// short-circuiting at the first false link.
func (in *Interpreter) VisitComparison(n *parser.Comparison) (interface{}, error) {
	left, err := in.eval(n.Operands[0])
	if err != nil {
		return nil, err
	}
	for i, op := range n.Operators {
		right, err := in.eval(n.Operands[i+1])
		if err != nil {
			return nil, err
		}
		var result value.Value
		switch op {
		case "<":
			result, err = ops.Lt(left, right)
		case ">":
			result, err = ops.Gt(left, right)
		case "<=":
			result, err = ops.Le(left, right)
		case ">=":
			result, err = ops.Ge(left, right)
		case "==":
			result, err = ops.Eq(left, right)
		case "!=":
			result, err = ops.Ne(left, right)
		default:
			return nil, tperrors.NewAt(tperrors.KindInternal, n.Line(), "unknown comparison operator %q", op)
		}
		if err != nil {
			return nil, classifyOpErr(err, n.Line())
		}
		if !result.Truthy() {
			return value.Bool(false), nil
		}
		left = right
	}
	return value.Bool(true), nil
}

func (in *Interpreter) VisitUnary(n *parser.Unary) (interface{}, error) {
	v, err := in.eval(n.Operand)
	if err != nil {
		return nil, err
	}
	var out value.Value
	switch n.Operator {
	case "+":
		out, err = ops.UnaryPlus(v)
	case "-":
		out, err = ops.UnaryMinus(v)
	default:
		return nil, tperrors.NewAt(tperrors.KindInternal, n.Line(), "unknown unary operator %q", n.Operator)
	}
	if err != nil {
		return nil, classifyOpErr(err, n.Line())
	}
	return out, nil
}

// VisitCall dispatches to a builtin or a user function by name; first-class
// function values do not exist in this language subset.
func (in *Interpreter) VisitCall(n *parser.Call) (interface{}, error) {
	name, ok := n.Callee.(*parser.Name)
	if !ok {
		return nil, tperrors.NewAt(tperrors.KindInternal, n.Line(), "call target is not a plain name")
	}
	if isBuiltin(name.Ident) {
		args := make([]value.Value, 0, len(n.Args))
		for _, a := range n.Args {
			if a.Name != "" {
				return nil, tperrors.NewAt(tperrors.KindArity, n.Line(), "%s() does not accept keyword arguments", name.Ident)
			}
			v, err := in.eval(a.Value)
			if err != nil {
				return nil, err
			}
			args = append(args, v)
		}
		v, err := builtins[name.Ident](in.out, args)
		if err != nil {
			return nil, annotateLine(err, n.Line())
		}
		return v, nil
	}

	fn, ok := in.functions[name.Ident]
	if !ok {
		return nil, tperrors.NewAt(tperrors.KindName, n.Line(), "undefined function %q", name.Ident)
	}
	frame, err := bindArguments(fn, n.Args, in.eval, n.Line())
	if err != nil {
		return nil, err
	}
	in.env.PushCall(frame)
	sig, err := in.execBlock(fn.body)
	in.env.PopCall()
	if err != nil {
		return nil, err
	}
	if sig.kind == sigReturn {
		return sig.value, nil
	}
	return value.None, nil
}

func (in *Interpreter) VisitName(n *parser.Name) (interface{}, error) {
	v, ok := in.env.Get(n.Ident)
	if !ok {
		return nil, tperrors.NewAt(tperrors.KindName, n.Line(), "name %q is not defined", n.Ident)
	}
	val, ok := v.(value.Value)
	if !ok {
		return nil, tperrors.NewAt(tperrors.KindInternal, n.Line(), "binding %q is not a value", n.Ident)
	}
	return val, nil
}

func (in *Interpreter) VisitIntLit(n *parser.IntLit) (interface{}, error) {
	i, err := parseBigIntLit(n.Text)
	if err != nil {
		return nil, tperrors.NewAt(tperrors.KindInternal, n.Line(), "invalid integer literal %q", n.Text)
	}
	return value.Int(i), nil
}

func (in *Interpreter) VisitFloatLit(n *parser.FloatLit) (interface{}, error) {
	f, err := parseFloatLit(n.Text)
	if err != nil {
		return nil, tperrors.NewAt(tperrors.KindInternal, n.Line(), "invalid float literal %q", n.Text)
	}
	return value.Float(f), nil
}

func (in *Interpreter) VisitStringLit(n *parser.StringLit) (interface{}, error) {
	return value.Str(n.Value), nil
}

func (in *Interpreter) VisitBoolLit(n *parser.BoolLit) (interface{}, error) {
	return value.Bool(n.Value), nil
}

func (in *Interpreter) VisitNoneLit(n *parser.NoneLit) (interface{}, error) {
	return value.None, nil
}

func (in *Interpreter) VisitFString(n *parser.FString) (interface{}, error) {
	return in.evalFString(n)
}

func (in *Interpreter) VisitTuple(n *parser.TupleExpr) (interface{}, error) {
	vals := make([]value.Value, 0, len(n.Elements))
	for _, e := range n.Elements {
		v, err := in.eval(e)
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	return value.Pack(vals), nil
}

// --- StmtVisitor -------------------------------------------------------

func (in *Interpreter) VisitExprStmt(n *parser.ExprStmt) (interface{}, error) {
	if _, err := in.eval(n.X); err != nil {
		return nil, err
	}
	return noSignal, nil
}

// VisitAssign evaluates Value once, then binds it to each target from the
// right-most target to the left-most, matching a = b = c = expr
// chained-assignment semantics.
func (in *Interpreter) VisitAssign(n *parser.Assign) (interface{}, error) {
	v, err := in.eval(n.Value)
	if err != nil {
		return nil, err
	}
	for i := len(n.Targets) - 1; i >= 0; i-- {
		if err := in.assignTo(n.Targets[i], v); err != nil {
			return nil, err
		}
	}
	return noSignal, nil
}

func (in *Interpreter) assignTo(target parser.Expr, v value.Value) error {
	switch t := target.(type) {
	case *parser.Name:
		in.env.Set(t.Ident, v)
		return nil
	case *parser.TupleExpr:
		if v.Kind != value.KindTuple {
			return tperrors.NewAt(tperrors.KindInternal, t.Line(), "cannot unpack non-tuple value into %d targets", len(t.Elements))
		}
		if len(v.Tuple) != len(t.Elements) {
			return tperrors.NewAt(tperrors.KindInternal, t.Line(), "cannot unpack %d values into %d targets", len(v.Tuple), len(t.Elements))
		}
		for i, elem := range t.Elements {
			if err := in.assignTo(elem, v.Tuple[i]); err != nil {
				return err
			}
		}
		return nil
	default:
		return tperrors.NewAt(tperrors.KindInternal, target.Line(), "invalid assignment target %T", target)
	}
}

func (in *Interpreter) VisitAugAssign(n *parser.AugAssign) (interface{}, error) {
	name, ok := n.Target.(*parser.Name)
	if !ok {
		return nil, tperrors.NewAt(tperrors.KindInternal, n.Line(), "augmented assignment target must be a name")
	}
	cur, err := in.eval(name)
	if err != nil {
		return nil, err
	}
	rhs, err := in.eval(n.Value)
	if err != nil {
		return nil, err
	}
	var out value.Value
	switch n.Operator {
	case "+":
		out, err = ops.Add(cur, rhs)
	case "-":
		out, err = ops.Sub(cur, rhs)
	case "*":
		out, err = ops.Mul(cur, rhs)
	case "/":
		out, err = ops.Div(cur, rhs)
	case "//":
		out, err = ops.FloorDiv(cur, rhs)
	case "%":
		out, err = ops.Mod(cur, rhs)
	default:
		return nil, tperrors.NewAt(tperrors.KindInternal, n.Line(), "unknown augmented operator %q", n.Operator)
	}
	if err != nil {
		return nil, classifyOpErr(err, n.Line())
	}
	in.env.Set(name.Ident, out)
	return noSignal, nil
}

func (in *Interpreter) VisitIf(n *parser.If) (interface{}, error) {
	for i, cond := range n.Conds {
		v, err := in.eval(cond)
		if err != nil {
			return nil, err
		}
		if v.Truthy() {
			return in.execBlock(n.Bodies[i])
		}
	}
	if n.Else != nil {
		return in.execBlock(n.Else)
	}
	return noSignal, nil
}

func (in *Interpreter) VisitWhile(n *parser.While) (interface{}, error) {
	for {
		cond, err := in.eval(n.Cond)
		if err != nil {
			return nil, err
		}
		if !cond.Truthy() {
			break
		}
		sig, err := in.execBlock(n.Body)
		if err != nil {
			return nil, err
		}
		switch sig.kind {
		case sigBreak:
			return noSignal, nil
		case sigReturn:
			return sig, nil
		}
	}
	return noSignal, nil
}

func (in *Interpreter) VisitBreak(n *parser.Break) (interface{}, error) {
	return controlSignal{kind: sigBreak}, nil
}

func (in *Interpreter) VisitContinue(n *parser.Continue) (interface{}, error) {
	return controlSignal{kind: sigContinue}, nil
}

func (in *Interpreter) VisitReturn(n *parser.Return) (interface{}, error) {
	if len(n.Values) == 0 {
		return controlSignal{kind: sigReturn, value: value.None}, nil
	}
	vals := make([]value.Value, 0, len(n.Values))
	for _, e := range n.Values {
		v, err := in.eval(e)
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	return controlSignal{kind: sigReturn, value: value.Pack(vals)}, nil
}

// VisitFuncDef registers a function in the global table; parameter
// defaults are evaluated once, now, against the current environment.
func (in *Interpreter) VisitFuncDef(n *parser.FuncDef) (interface{}, error) {
	fn := &function{
		name:     n.Name,
		params:   n.Params,
		body:     n.Body,
		defaults: make([]value.Value, len(n.Params)),
		hasDef:   make([]bool, len(n.Params)),
	}
	for i, p := range n.Params {
		if p.Default == nil {
			continue
		}
		v, err := in.eval(p.Default)
		if err != nil {
			return nil, err
		}
		fn.defaults[i] = v
		fn.hasDef[i] = true
	}
	in.functions[n.Name] = fn
	return noSignal, nil
}
