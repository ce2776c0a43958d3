package interpreter

import (
	"strings"

	"github.com/nchodur/tinypy/internal/parser"
	"github.com/nchodur/tinypy/internal/value"
)

// evalFString interleaves an f-string's literal fragments with the string
// form of each embedded expression's evaluated value, in source order.
func (in *Interpreter) evalFString(n *parser.FString) (value.Value, error) {
	var sb strings.Builder
	for _, part := range n.Parts {
		if part.Expr == nil {
			sb.WriteString(part.Literal)
			continue
		}
		v, err := in.eval(part.Expr)
		if err != nil {
			return value.None, err
		}
		sb.WriteString(v.String())
	}
	return value.Str(sb.String()), nil
}
