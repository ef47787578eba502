package chain

import (
	"context"
	"fmt"

	"github.com/vb-86/hookpipe/pkg/hook"
)

// Pipe folds the callbacks left to right: the result of chaining step i
// becomes the container for step i+1. Every step gets a fresh driver; no
// lifecycle state leaks between steps. All callbacks are validated before
// the first step runs.
func Pipe[T any](ctx context.Context, c hook.Chainable[T], fns ...hook.Callback[T]) (hook.Chainable[T], error) {
	for i, fn := range fns {
		if fn == nil {
			return nil, hook.InvalidCallbackError(fmt.Sprintf("chain.Pipe: nil callback at step %d", i))
		}
	}

	current := c
	for _, fn := range fns {
		next, err := Sync(ctx, current, fn)
		if err != nil {
			return nil, err
		}
		current = next
	}
	return current, nil
}

// PipeAsync is the asynchronous fold: each step's handle is awaited before
// the next step starts. A nil callback anywhere fails the whole pipe before
// step one runs.
func PipeAsync[T any](ctx context.Context, c hook.AsyncChainable[T], fns ...hook.AsyncCallback[T]) *hook.Future[hook.AsyncChainable[T]] {
	for i, fn := range fns {
		if fn == nil {
			return hook.Failed[hook.AsyncChainable[T]](
				hook.InvalidCallbackError(fmt.Sprintf("chain.PipeAsync: nil callback at step %d", i)))
		}
	}

	result := hook.NewFuture[hook.AsyncChainable[T]]()
	go func() {
		current := c
		for _, fn := range fns {
			next, err := Async(ctx, current, fn).Await(ctx)
			if err != nil {
				result.Fail(err)
				return
			}
			current = next
		}
		result.Complete(current)
	}()
	return result
}
