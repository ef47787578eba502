package stream

import (
	"context"
	"sync"

	"github.com/vb-86/hookpipe/pkg/hook"
	"github.com/vb-86/hookpipe/pkg/hook/core"
)

// Stream is a channel-backed container implementing the asynchronous chain
// capability. Its hook drains the channel: a dispatcher goroutine invokes
// the adapter once per received value (sequential synchronous portions) and
// a pool of collectors awaits the invocation handles.
type Stream[T any] struct {
	ch <-chan T
}

// From wraps a channel. The hook consumes it; chain a given Stream once.
func From[T any](ch <-chan T) Stream[T] {
	return Stream[T]{ch: ch}
}

// Of builds a stream over the given values.
func Of[T any](items ...T) Stream[T] {
	ch := make(chan T, len(items))
	for _, v := range items {
		ch <- v
	}
	close(ch)
	return Stream[T]{ch: ch}
}

// Chan exposes the underlying channel.
func (s Stream[T]) Chan() <-chan T {
	return s.ch
}

// Collect drains the stream into a slice, honoring ctx cancellation.
func (s Stream[T]) Collect(ctx context.Context) ([]T, error) {
	var out []T
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case v, ok := <-s.ch:
			if !ok {
				return out, nil
			}
			out = append(out, v)
		}
	}
}

// ChainAsync consumes the stream through the adapter. The collector pool
// width comes from core.WithFanOut (default 1); at width 1 splices are
// combined in input order, at larger widths in settlement order. A splice
// with Done set, a failed invocation, or ctx cancellation stops the
// dispatcher; already-started invocations are still drained. The handle
// settles with a stream over the combined values, or the first failure.
func (s Stream[T]) ChainAsync(ctx context.Context, fn hook.AsyncAdapter[T]) *hook.Future[hook.AsyncChainable[T]] {
	result := hook.NewFuture[hook.AsyncChainable[T]]()
	workers := core.FanOutWidth(ctx, 1)
	if workers < 1 {
		workers = 1
	}

	pending := make(chan *hook.Future[hook.Splice[T]], workers)
	stop := make(chan struct{})
	var stopOnce sync.Once
	halt := func() {
		stopOnce.Do(func() { close(stop) })
	}

	// Dispatcher: the only goroutine invoking the adapter, so synchronous
	// callback portions never overlap.
	go func() {
		defer close(pending)
		for {
			select {
			case <-ctx.Done():
				return
			case <-stop:
				return
			case v, ok := <-s.ch:
				if !ok {
					return
				}
				select {
				case pending <- fn(ctx, v):
				case <-ctx.Done():
					return
				case <-stop:
					return
				}
			}
		}
	}()

	var mu sync.Mutex
	var out []T
	var firstErr error

	wg := &sync.WaitGroup{}
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for f := range pending {
				sp, err := f.Await(ctx)
				if err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
					halt()
					continue
				}

				// The dispatcher may have run one invocation ahead of the
				// splice that stopped it; drain such handles but drop their
				// values.
				select {
				case <-stop:
					continue
				default:
				}

				mu.Lock()
				out = append(out, sp.Values...)
				mu.Unlock()
				if sp.Done {
					halt()
				}
			}
		}()
	}

	go func() {
		wg.Wait()

		mu.Lock()
		err := firstErr
		values := out
		mu.Unlock()

		if err != nil {
			result.Fail(err)
			return
		}
		if cerr := ctx.Err(); cerr != nil {
			result.Fail(cerr)
			return
		}
		result.Complete(Of(values...))
	}()

	return result
}
