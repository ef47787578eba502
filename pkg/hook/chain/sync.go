package chain

import (
	"context"

	"github.com/vb-86/hookpipe/pkg/hook"
	"github.com/vb-86/hookpipe/pkg/hook/core"
)

// syncDriver tracks one Sync call: the lifecycle machine plus the first
// driver-originated error, which must reach the caller even if the
// container hook swallows the adapter's error return.
type syncDriver[T any] struct {
	m       *machine
	latched error
}

func (d *syncDriver[T]) latch(err error) error {
	if d.latched == nil {
		d.latched = err
	}
	return err
}

// Sync invokes the user callback against a synchronous chainable and
// returns whatever the container's chain hook produces. Per invocation the
// adapter guards reentrancy and termination, runs the callback, and
// classifies its outcome into a normalized splice.
//
// Callback errors pass through to the container with the driver left open,
// so a container may keep iterating (error-filtering use cases). Driver
// errors (invalid callback, invalid outcome, protocol violation) always
// propagate to the caller.
func Sync[T any](ctx context.Context, c hook.Chainable[T], fn hook.Callback[T]) (hook.Chainable[T], error) {
	if fn == nil {
		return nil, hook.InvalidCallbackError("chain.Sync: nil callback")
	}

	d := &syncDriver[T]{m: newMachine()}
	log := core.Logger(ctx)

	adapter := func(ctx context.Context, v T) (hook.Splice[T], error) {
		if err := d.m.enter(); err != nil {
			log.Trace().Stringer("driver", d.m.id).Msg("chain: protocol violation")
			return hook.Splice[T]{}, d.latch(err)
		}

		// Restore open on every exit path that did not settle the
		// invocation, including a raising callback.
		settled := false
		defer func() {
			if !settled {
				d.m.suspend()
			}
		}()

		out, err := fn(ctx, v)
		if err != nil {
			return hook.Splice[T]{}, err
		}

		switch {
		case out.IsTerminate():
			settled = true
			d.m.close()
			log.Trace().Stringer("driver", d.m.id).Msg("chain: terminated")
			return hook.Splice[T]{Done: true}, nil

		case out.IsEmit():
			settled = true
			d.m.suspend()
			return hook.Splice[T]{Values: out.Values()}, nil

		case out.IsFlatten():
			nested, ok := out.NestedSync()
			if !ok {
				return hook.Splice[T]{}, d.latch(hook.InvalidOutcomeError(d.m.id,
					"flatten target exposes no synchronous chain hook"))
			}
			values, derr := drainSync(ctx, nested)
			if derr != nil {
				return hook.Splice[T]{}, derr
			}
			settled = true
			d.m.suspend()
			return hook.Splice[T]{Values: values}, nil

		default:
			return hook.Splice[T]{}, d.latch(hook.InvalidOutcomeError(d.m.id,
				"outcome is neither terminate, emit nor flatten"))
		}
	}

	res, err := c.Chain(ctx, adapter)
	if d.latched != nil {
		return nil, d.latched
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

// drainSync collects the contents of a nested chainable through its own
// hook with an identity adapter.
func drainSync[T any](ctx context.Context, nested hook.Chainable[T]) ([]T, error) {
	var values []T
	_, err := nested.Chain(ctx, func(_ context.Context, v T) (hook.Splice[T], error) {
		values = append(values, v)
		return hook.Splice[T]{Values: []T{v}}, nil
	})
	if err != nil {
		return nil, err
	}
	return values, nil
}
