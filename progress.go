package godism

import (
	"github.com/ubuntu/godism/internal/progress"
)

// Progress is one report of a long-running operation. Current advances
// towards Total on a scale chosen by the engine, and may restart from zero
// when an operation has several phases.
type Progress struct {
	Current uint32
	Total   uint32
}

// ProgressHandler receives the progress reports of a long-running operation,
// on the operation's own call stack. Returning true requests cancellation:
// the operation winds down at the next opportunity and returns ErrCancelled.
// Further reports may still arrive until it does.
//
// The handler must not call back into this package.
type ProgressHandler func(p Progress) (cancel bool)

// bridgeFor wires a handler to the native callback machinery for the duration
// of one operation. A nil handler yields a nil bridge, which backends accept.
func bridgeFor(handler ProgressHandler) (*progress.Bridge, error) {
	if handler == nil {
		return nil, nil
	}
	return progress.New(func(r progress.Report) bool {
		return handler(Progress{Current: r.Current, Total: r.Total})
	})
}
