package interpreter

import (
	"strconv"

	"github.com/nchodur/tinypy/internal/bigint"
	tperrors "github.com/nchodur/tinypy/internal/errors"
	"github.com/nchodur/tinypy/internal/ops"
)

func parseBigIntLit(text string) (bigint.Int, error) {
	return bigint.Parse(text)
}

func parseFloatLit(text string) (float64, error) {
	return strconv.ParseFloat(text, 64)
}

// classifyOpErr lifts an internal/ops error into the matching TinyError
// kind.
func classifyOpErr(err error, line int) error {
	switch err.(type) {
	case *ops.TypeError:
		return tperrors.NewAt(tperrors.KindType, line, "%s", err.Error())
	case *ops.DivisionByZero:
		return tperrors.NewAt(tperrors.KindDivisionByZero, line, "%s", err.Error())
	default:
		return tperrors.Wrap(tperrors.KindInternal, line, err)
	}
}

// annotateLine fills in a TinyError's Line field when a lower layer (e.g. a
// builtin) raised it without source position context.
func annotateLine(err error, line int) error {
	if te, ok := tperrors.As(err); ok && te.Line == 0 {
		te.Line = line
		return te
	}
	return err
}
