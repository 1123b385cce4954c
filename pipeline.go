package crud

import (
	"fmt"
	"time"
)

// Next advances a pipeline run to the handler after the current one and
// waits for the rest of the chain to finish before returning.
type Next func() error

// Handler is one middleware in a pipeline. It receives the shared context
// for the run and a continuation. Calling next runs the remaining handlers;
// returning without calling it ends the run early, which is not an error.
// The context type is owned by the caller, not by the pipeline.
type Handler[C any] func(ctx C, next Next) error

// DoubleNextError reports a handler that invoked its continuation more than
// once. The second call would re-run the rest of the chain against shared
// state, so it fails instead.
type DoubleNextError struct {
	Position int
}

func (e *DoubleNextError) Error() string {
	return fmt.Sprintf("crud: handler %d called next twice", e.Position)
}

// Run executes handlers in order against ctx. Nil entries are dropped up
// front, preserving the order of the rest. The cursor is local to this
// call, so concurrent runs cannot interfere. Errors from handlers and from
// downstream continuations propagate unchanged; Run adds no recovery and no
// concurrency of its own. lgr may be nil.
func Run[C any](ctx C, handlers []Handler[C], lgr Logger) error {

	hs := make([]Handler[C], 0, len(handlers))
	for _, h := range handlers {
		if h != nil {
			hs = append(hs, h)
		}
	}

	var step func(i int) error
	step = func(i int) error {

		if i >= len(hs) {
			return nil
		}

		called := false
		next := func() error {
			if called {
				return &DoubleNextError{Position: i}
			}
			called = true
			return step(i + 1)
		}

		t := time.Now()
		err := hs[i](ctx, next)

		if lgr != nil {
			lgr.LogHandlerComplete(err == nil, time.Since(t), i)
		}

		return err
	}

	return step(0)
}
