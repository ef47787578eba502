package iters

import (
	"context"
	"iter"
	"slices"

	"github.com/vb-86/hookpipe/pkg/hook"
)

// Iter adapts an iter.Seq to the synchronous chain and lift capabilities.
// Hooks consume the underlying iterator; iterate a given Iter once.
type Iter[T any] struct {
	seq iter.Seq[T]
}

// From wraps an iterator.
func From[T any](seq iter.Seq[T]) Iter[T] {
	return Iter[T]{seq: seq}
}

// Of wraps the given values.
func Of[T any](items ...T) Iter[T] {
	return Iter[T]{seq: slices.Values(items)}
}

// Collect drains the iterator into a slice.
func (it Iter[T]) Collect() []T {
	if it.seq == nil {
		return nil
	}
	return slices.Collect(it.seq)
}

// Chain invokes the adapter once per produced value, in production order,
// splicing the returned values into the result. A splice with Done set
// stops consumption.
func (it Iter[T]) Chain(ctx context.Context, fn hook.Adapter[T]) (hook.Chainable[T], error) {
	var out []T
	if it.seq == nil {
		return Of(out...), nil
	}

	for v := range it.seq {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		sp, err := fn(ctx, v)
		if err != nil {
			return nil, err
		}
		out = append(out, sp.Values...)
		if sp.Done {
			break
		}
	}
	return Of(out...), nil
}

// Lift applies the callback to each produced value.
func (it Iter[T]) Lift(ctx context.Context, fn hook.MapFunc[T]) (hook.Liftable[T], error) {
	var out []T
	if it.seq == nil {
		return Of(out...), nil
	}

	for v := range it.seq {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		mapped, err := fn(ctx, v)
		if err != nil {
			return nil, err
		}
		out = append(out, mapped)
	}
	return Of(out...), nil
}
