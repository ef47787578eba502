package seq

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/vb-86/hookpipe/pkg/hook"
	"github.com/vb-86/hookpipe/pkg/hook/core"
)

// ErrNotSeq reports a combine operand of a different container kind.
var ErrNotSeq = errors.New("seq: combine operand is not a seq")

// Seq is the slice-backed reference container. It implements the chain
// (sync and async), lift and combine capabilities.
type Seq[T any] struct {
	items []T
}

// Of builds a seq from the given values.
func Of[T any](items ...T) Seq[T] {
	return From(items)
}

// From builds a seq over a copy of the slice.
func From[T any](items []T) Seq[T] {
	owned := make([]T, len(items))
	copy(owned, items)
	return Seq[T]{items: owned}
}

// Items returns a copy of the seq's contents.
func (s Seq[T]) Items() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

func (s Seq[T]) Len() int {
	return len(s.items)
}

// Chain invokes the adapter once per element, in order, splicing the
// returned values into the result. A splice with Done set stops iteration;
// later elements never reach the adapter.
func (s Seq[T]) Chain(ctx context.Context, fn hook.Adapter[T]) (hook.Chainable[T], error) {
	out := make([]T, 0, len(s.items))
	for _, v := range s.items {
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
	return From(out), nil
}

// ChainAsync fans out adapter invocations in waves and combines splices in
// input order, regardless of settlement order. The wave width defaults to
// the whole seq and can be bounded with core.WithFanOut; a splice with Done
// set stops before the next wave. Invocations are started sequentially from
// a single goroutine; only their settlements overlap.
func (s Seq[T]) ChainAsync(ctx context.Context, fn hook.AsyncAdapter[T]) *hook.Future[hook.AsyncChainable[T]] {
	result := hook.NewFuture[hook.AsyncChainable[T]]()
	width := core.FanOutWidth(ctx, len(s.items))
	if width < 1 {
		width = 1
	}

	go func() {
		out := make([]T, 0, len(s.items))
		for start := 0; start < len(s.items); start += width {
			end := min(start+width, len(s.items))
			wave := s.items[start:end]

			futs := make([]*hook.Future[hook.Splice[T]], len(wave))
			for i, v := range wave {
				futs[i] = fn(ctx, v)
			}

			splices := make([]hook.Splice[T], len(wave))
			g, gctx := errgroup.WithContext(ctx)
			for i := range futs {
				g.Go(func() error {
					sp, err := futs[i].Await(gctx)
					if err != nil {
						return err
					}
					splices[i] = sp
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				result.Fail(err)
				return
			}

			done := false
			for _, sp := range splices {
				out = append(out, sp.Values...)
				if sp.Done {
					done = true
					break
				}
			}
			if done {
				break
			}
		}
		result.Complete(From(out))
	}()

	return result
}

// Lift applies the callback to each element, in order.
func (s Seq[T]) Lift(ctx context.Context, fn hook.MapFunc[T]) (hook.Liftable[T], error) {
	out := make([]T, 0, len(s.items))
	for _, v := range s.items {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		mapped, err := fn(ctx, v)
		if err != nil {
			return nil, err
		}
		out = append(out, mapped)
	}
	return From(out), nil
}

// Combine pairs elements positionally with another seq, truncating to the
// shorter operand. A non-seq operand is rejected with ErrNotSeq.
func (s Seq[T]) Combine(ctx context.Context, other hook.Combinable[T], fn hook.ZipFunc[T]) (hook.Combinable[T], error) {
	o, ok := other.(Seq[T])
	if !ok {
		return nil, ErrNotSeq
	}

	n := min(len(s.items), len(o.items))
	out := make([]T, 0, n)
	for i := range n {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		paired, err := fn(ctx, s.items[i], o.items[i])
		if err != nil {
			return nil, err
		}
		out = append(out, paired)
	}
	return From(out), nil
}
