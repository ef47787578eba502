package task

import (
	"context"

	"github.com/vb-86/hookpipe/pkg/hook"
)

// Task adapts a one-shot completion handle to the asynchronous chain
// capability: a container of at most one eventual value.
//
// Nil-completion convention: a splice with no values completes the chained
// task with the zero value. Wrap the element in a sum type if "empty" must
// be distinguishable from "zero".
type Task[T any] struct {
	fut *hook.Future[T]
}

// From wraps an existing handle.
func From[T any](fut *hook.Future[T]) Task[T] {
	return Task[T]{fut: fut}
}

// Of builds a task already settled with v.
func Of[T any](v T) Task[T] {
	return Task[T]{fut: hook.Resolved(v)}
}

// Go runs fn in its own goroutine and returns a task settling with its
// result.
func Go[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) Task[T] {
	fut := hook.NewFuture[T]()
	go func() {
		v, err := fn(ctx)
		if err != nil {
			fut.Fail(err)
			return
		}
		fut.Complete(v)
	}()
	return Task[T]{fut: fut}
}

// Future returns the underlying handle.
func (t Task[T]) Future() *hook.Future[T] {
	return t.fut
}

// Await blocks until the task settles or ctx is done.
func (t Task[T]) Await(ctx context.Context) (T, error) {
	return t.fut.Await(ctx)
}

// ChainAsync resolves the task's value, invokes the adapter exactly once,
// and rebuilds a task from the splice. Task failures pass through; the
// adapter is never invoked for a failed task.
func (t Task[T]) ChainAsync(ctx context.Context, fn hook.AsyncAdapter[T]) *hook.Future[hook.AsyncChainable[T]] {
	result := hook.NewFuture[hook.AsyncChainable[T]]()
	go func() {
		v, err := t.fut.Await(ctx)
		if err != nil {
			result.Fail(err)
			return
		}

		sp, err := fn(ctx, v).Await(ctx)
		if err != nil {
			result.Fail(err)
			return
		}

		var out T
		if len(sp.Values) > 0 {
			out = sp.Values[0]
		}
		result.Complete(Of(out))
	}()
	return result
}
