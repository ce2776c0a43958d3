package interpreter

import (
	tperrors "github.com/nchodur/tinypy/internal/errors"
	"github.com/nchodur/tinypy/internal/environment"
	"github.com/nchodur/tinypy/internal/parser"
	"github.com/nchodur/tinypy/internal/value"
)

// function is a user-defined function: its parameter defaults are evaluated
// once, at the FuncDef statement's own definition time, not re-evaluated on
// every call.
type function struct {
	name     string
	params   []parser.Param
	defaults []value.Value // parallel to params; zero Value when no default
	hasDef   []bool
	body     []parser.Stmt
}

// bindArguments builds the call frame for one invocation: positional
// arguments fill parameters left-to-right by call-site position, then named
// arguments override by name, then any parameter still unfilled falls back
// to its default — matching Python's calling convention minus *args/**kwargs,
// per Open Question (c).
func bindArguments(fn *function, args []parser.Arg, eval func(parser.Expr) (value.Value, error), line int) (environment.Frame, error) {
	frame := environment.Frame{}
	filled := make([]bool, len(fn.params))

	positional := 0
	for _, a := range args {
		if a.Name != "" {
			continue
		}
		if positional >= len(fn.params) {
			return nil, tperrors.NewAt(tperrors.KindArity, line,
				"%s() takes at most %d argument(s) but more were given", fn.name, len(fn.params))
		}
		v, err := eval(a.Value)
		if err != nil {
			return nil, err
		}
		frame[fn.params[positional].Name] = v
		filled[positional] = true
		positional++
	}

	for _, a := range args {
		if a.Name == "" {
			continue
		}
		idx := -1
		for i, p := range fn.params {
			if p.Name == a.Name {
				idx = i
				break
			}
		}
		if idx == -1 {
			return nil, tperrors.NewAt(tperrors.KindArity, line,
				"%s() got an unexpected keyword argument %q", fn.name, a.Name)
		}
		v, err := eval(a.Value)
		if err != nil {
			return nil, err
		}
		frame[a.Name] = v
		filled[idx] = true
	}

	for i, p := range fn.params {
		if filled[i] {
			continue
		}
		if !fn.hasDef[i] {
			return nil, tperrors.NewAt(tperrors.KindArity, line,
				"%s() missing required argument %q", fn.name, p.Name)
		}
		frame[p.Name] = fn.defaults[i]
	}

	return frame, nil
}
