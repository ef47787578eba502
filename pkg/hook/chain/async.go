package chain

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/vb-86/hookpipe/pkg/hook"
	"github.com/vb-86/hookpipe/pkg/hook/core"
)

// asyncDriver tracks one Async call. pending counts unsettled adapter
// invocations plus one sentinel unit for the container hook's own
// settlement; the decrement that reaches zero delivers the overall result,
// exactly once, through the one-shot future.
type asyncDriver[T any] struct {
	m       *machine
	log     zerolog.Logger
	pending atomic.Int64
	result  *hook.Future[hook.AsyncChainable[T]]

	mu         sync.Mutex
	failure    error
	hookResult hook.AsyncChainable[T]
}

// Async invokes the user callback against an asynchronous chainable. The
// container hook may start any number of adapter invocations before earlier
// ones settle, and may itself settle while invocations are still in flight;
// the returned handle settles only after the hook and every started
// invocation have settled.
//
// The delivered outcome is the hook's own settlement unless any invocation
// failed, in which case the first failure wins. Later failures are still
// drained but not surfaced. Precondition violations yield an already-failed
// handle, never a synchronous panic.
func Async[T any](ctx context.Context, c hook.AsyncChainable[T], fn hook.AsyncCallback[T]) *hook.Future[hook.AsyncChainable[T]] {
	if fn == nil {
		return hook.Failed[hook.AsyncChainable[T]](hook.InvalidCallbackError("chain.Async: nil callback"))
	}

	d := &asyncDriver[T]{
		m:      newMachine(),
		log:    core.Logger(ctx),
		result: hook.NewFuture[hook.AsyncChainable[T]](),
	}
	d.pending.Store(1) // the hook's own settlement

	adapter := func(ctx context.Context, v T) *hook.Future[hook.Splice[T]] {
		out := hook.NewFuture[hook.Splice[T]]()

		if err := d.m.enter(); err != nil {
			d.log.Trace().Stringer("driver", d.m.id).Msg("chain: protocol violation")
			d.record(err)
			out.Fail(err)
			return out
		}

		cb := d.invoke(ctx, fn, v)
		if cb == nil {
			err := hook.InvalidOutcomeError(d.m.id, "callback returned no outcome handle")
			d.record(err)
			out.Fail(err)
			return out
		}

		d.pending.Add(1)
		go d.settleInvocation(ctx, cb, out)
		return out
	}

	hookFut := c.ChainAsync(ctx, adapter)
	go func() {
		res, err := hookFut.Await(ctx)
		if err != nil {
			d.record(err)
		} else {
			d.mu.Lock()
			d.hookResult = res
			d.mu.Unlock()
		}
		d.settleOne()
	}()

	return d.result
}

// invoke runs the callback's synchronous portion inside the in-flight
// window; the window ends when the callback hands back its handle, even if
// it raises.
func (d *asyncDriver[T]) invoke(ctx context.Context, fn hook.AsyncCallback[T], v T) *hook.Future[hook.Outcome[T]] {
	defer d.m.suspend()
	return fn(ctx, v)
}

// settleInvocation awaits one callback outcome, classifies it, and settles
// the invocation's handle toward the container.
func (d *asyncDriver[T]) settleInvocation(ctx context.Context, cb *hook.Future[hook.Outcome[T]], out *hook.Future[hook.Splice[T]]) {
	defer d.settleOne()

	outcome, err := cb.Await(ctx)
	if err != nil {
		d.record(err)
		out.Fail(err)
		return
	}

	switch {
	case outcome.IsTerminate():
		d.m.close()
		d.log.Trace().Stringer("driver", d.m.id).Msg("chain: terminated")
		out.Complete(hook.Splice[T]{Done: true})

	case outcome.IsEmit():
		out.Complete(hook.Splice[T]{Values: outcome.Values()})

	case outcome.IsFlatten():
		nested, ok := outcome.NestedAsync()
		if !ok {
			ferr := hook.InvalidOutcomeError(d.m.id, "flatten target exposes no asynchronous chain hook")
			d.record(ferr)
			out.Fail(ferr)
			return
		}
		values, derr := drainAsync(ctx, nested)
		if derr != nil {
			d.record(derr)
			out.Fail(derr)
			return
		}
		out.Complete(hook.Splice[T]{Values: values})

	default:
		ferr := hook.InvalidOutcomeError(d.m.id, "outcome is neither terminate, emit nor flatten")
		d.record(ferr)
		out.Fail(ferr)
	}
}

func (d *asyncDriver[T]) record(err error) {
	d.mu.Lock()
	if d.failure == nil {
		d.failure = err
	}
	d.mu.Unlock()
}

// settleOne retires one pending unit; whoever retires the last unit
// delivers the overall result.
func (d *asyncDriver[T]) settleOne() {
	if d.pending.Add(-1) != 0 {
		return
	}

	d.mu.Lock()
	err := d.failure
	res := d.hookResult
	d.mu.Unlock()

	if err != nil {
		d.log.Trace().Stringer("driver", d.m.id).Err(err).Msg("chain: delivered failure")
		d.result.Fail(err)
		return
	}
	d.log.Trace().Stringer("driver", d.m.id).Msg("chain: delivered result")
	d.result.Complete(res)
}

// drainAsync collects the contents of a nested asynchronous chainable
// through its own hook with an identity adapter. Values are appended in
// invocation order.
func drainAsync[T any](ctx context.Context, nested hook.AsyncChainable[T]) ([]T, error) {
	var mu sync.Mutex
	var values []T

	fut := nested.ChainAsync(ctx, func(_ context.Context, v T) *hook.Future[hook.Splice[T]] {
		mu.Lock()
		values = append(values, v)
		mu.Unlock()
		return hook.Resolved(hook.Splice[T]{Values: []T{v}})
	})
	if _, err := fut.Await(ctx); err != nil {
		return nil, err
	}

	mu.Lock()
	defer mu.Unlock()
	return values, nil
}
