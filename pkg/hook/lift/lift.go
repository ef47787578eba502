package lift

import (
	"context"
	"fmt"

	"github.com/vb-86/hookpipe/pkg/hook"
)

// Sync invokes the container's lift hook with the callback. The callback
// must be invocable; the container owns iteration and error propagation.
func Sync[T any](ctx context.Context, c hook.Liftable[T], fn hook.MapFunc[T]) (hook.Liftable[T], error) {
	if fn == nil {
		return nil, hook.InvalidCallbackError("lift.Sync: nil callback")
	}
	return c.Lift(ctx, fn)
}

// Pipe folds lift steps left to right. All callbacks are validated before
// the first step runs.
func Pipe[T any](ctx context.Context, c hook.Liftable[T], fns ...hook.MapFunc[T]) (hook.Liftable[T], error) {
	for i, fn := range fns {
		if fn == nil {
			return nil, hook.InvalidCallbackError(fmt.Sprintf("lift.Pipe: nil callback at step %d", i))
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
