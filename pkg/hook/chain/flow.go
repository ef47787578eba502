package chain

import (
	"context"

	"github.com/vb-86/hookpipe/pkg/hook"
)

// Flow wraps a chainable with context to enable fluent chaining. The first
// error stops the flow; later steps are skipped.
type Flow[T any] struct {
	ctx     context.Context
	current hook.Chainable[T]
	err     error
}

// From begins a flow over a chainable container.
func From[T any](ctx context.Context, c hook.Chainable[T]) *Flow[T] {
	return &Flow[T]{ctx: ctx, current: c}
}

// Then chains one callback through the synchronous driver.
func (f *Flow[T]) Then(fn hook.Callback[T]) *Flow[T] {
	if f.err != nil {
		return f
	}
	next, err := Sync(f.ctx, f.current, fn)
	return &Flow[T]{ctx: f.ctx, current: next, err: err}
}

// Filter keeps values satisfying the predicate.
func (f *Flow[T]) Filter(keep func(ctx context.Context, v T) bool) *Flow[T] {
	return f.Then(func(ctx context.Context, v T) (hook.Outcome[T], error) {
		if keep(ctx, v) {
			return hook.Emit(v), nil
		}
		return hook.Emit[T](), nil
	})
}

// TakeWhile keeps values until the predicate first fails, then terminates
// the chain.
func (f *Flow[T]) TakeWhile(cond func(ctx context.Context, v T) bool) *Flow[T] {
	return f.Then(func(ctx context.Context, v T) (hook.Outcome[T], error) {
		if cond(ctx, v) {
			return hook.Emit(v), nil
		}
		return hook.Terminate[T](), nil
	})
}

// Result collapses the flow into the chained container or the first error.
func (f *Flow[T]) Result() (hook.Chainable[T], error) {
	return f.current, f.err
}
