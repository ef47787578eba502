package box

import (
	"context"
	"errors"

	"github.com/vb-86/hookpipe/pkg/hook"
)

// ErrNotBox reports a combine operand of a different container kind.
var ErrNotBox = errors.New("box: combine operand is not a box")

// Box holds at most one value. An empty box short-circuits every hook.
type Box[T any] struct {
	value T
	full  bool
}

// Of builds a full box.
func Of[T any](v T) Box[T] {
	return Box[T]{value: v, full: true}
}

// Empty builds an empty box.
func Empty[T any]() Box[T] {
	return Box[T]{}
}

// Get returns the boxed value and whether the box is full.
func (b Box[T]) Get() (T, bool) {
	return b.value, b.full
}

func (b Box[T]) IsEmpty() bool {
	return !b.full
}

// OrElse returns the boxed value, or def when empty.
func (b Box[T]) OrElse(def T) T {
	if b.full {
		return b.value
	}
	return def
}

// Chain invokes the adapter at most once. An empty splice, or one with
// Done set, produces an empty box; otherwise the first spliced value is
// boxed.
func (b Box[T]) Chain(ctx context.Context, fn hook.Adapter[T]) (hook.Chainable[T], error) {
	if !b.full {
		return Empty[T](), nil
	}

	sp, err := fn(ctx, b.value)
	if err != nil {
		return nil, err
	}
	return fromSplice(sp), nil
}

// ChainAsync is the asynchronous counterpart of Chain.
func (b Box[T]) ChainAsync(ctx context.Context, fn hook.AsyncAdapter[T]) *hook.Future[hook.AsyncChainable[T]] {
	result := hook.NewFuture[hook.AsyncChainable[T]]()
	if !b.full {
		result.Complete(Empty[T]())
		return result
	}

	fut := fn(ctx, b.value)
	go func() {
		sp, err := fut.Await(ctx)
		if err != nil {
			result.Fail(err)
			return
		}
		result.Complete(fromSplice(sp))
	}()
	return result
}

// Lift applies the callback to the boxed value, if any.
func (b Box[T]) Lift(ctx context.Context, fn hook.MapFunc[T]) (hook.Liftable[T], error) {
	if !b.full {
		return Empty[T](), nil
	}

	mapped, err := fn(ctx, b.value)
	if err != nil {
		return nil, err
	}
	return Of(mapped), nil
}

// Combine pairs two full boxes; any empty operand yields an empty box. A
// non-box operand is rejected with ErrNotBox.
func (b Box[T]) Combine(ctx context.Context, other hook.Combinable[T], fn hook.ZipFunc[T]) (hook.Combinable[T], error) {
	o, ok := other.(Box[T])
	if !ok {
		return nil, ErrNotBox
	}
	if !b.full || !o.full {
		return Empty[T](), nil
	}

	paired, err := fn(ctx, b.value, o.value)
	if err != nil {
		return nil, err
	}
	return Of(paired), nil
}

func fromSplice[T any](sp hook.Splice[T]) Box[T] {
	if sp.Done || len(sp.Values) == 0 {
		return Empty[T]()
	}
	return Of(sp.Values[0])
}
