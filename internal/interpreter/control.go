package interpreter

import "github.com/nchodur/tinypy/internal/value"

// signalKind is break/continue/return realized as a plain Go value threaded
// up the call stack by every statement-executing method, instead of a
// language-level panic/exception.
type signalKind int

const (
	sigNone signalKind = iota
	sigBreak
	sigContinue
	sigReturn
)

// controlSignal is returned alongside an error by every Exec* method. A
// sigNone signal means "fell off the end normally"; while/if bodies consume
// sigBreak/sigContinue; a function call consumes sigReturn and unwraps it.
type controlSignal struct {
	kind  signalKind
	value value.Value // populated only for sigReturn
}

var noSignal = controlSignal{kind: sigNone}
