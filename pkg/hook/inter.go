package hook

import "context"

// Splice is the normalized per-invocation value a driver hands back to a
// container hook: the replacement values for one input, and whether the
// chain terminates here. After a splice with Done set, the container must
// not invoke the adapter again.
type Splice[T any] struct {
	Values []T
	Done   bool
}

// Adapter is the stateful wrapper a synchronous driver hands to a
// container's chain hook. The container invokes it once per input value.
type Adapter[T any] func(ctx context.Context, v T) (Splice[T], error)

// AsyncAdapter is the asynchronous counterpart of Adapter. The call itself
// is synchronous and cheap; the returned handle settles when the callback's
// outcome has been classified. A container may hold several unsettled
// handles at once, but must not invoke the adapter again before a previous
// invocation has returned its handle.
type AsyncAdapter[T any] func(ctx context.Context, v T) *Future[Splice[T]]

// Callback is the user function a synchronous chain driver invokes per
// input value. A returned error is passed through to the container
// unchanged; the driver stays open so the container may continue.
type Callback[T any] func(ctx context.Context, v T) (Outcome[T], error)

// AsyncCallback is the asynchronous user function: it returns a handle to
// its eventual outcome. The portion before the handle is returned must not
// re-enter the adapter.
type AsyncCallback[T any] func(ctx context.Context, v T) *Future[Outcome[T]]

// MapFunc transforms one value for the lift capability.
type MapFunc[T any] func(ctx context.Context, v T) (T, error)

// ZipFunc pairs two values for the combine capability.
type ZipFunc[T any] func(ctx context.Context, a, b T) (T, error)

// Chainable is implemented by containers supporting synchronous chaining.
// The hook returns a container of the same dynamic kind as the receiver;
// Go's type system cannot express the self-kind constraint, so it is a
// documented contract.
type Chainable[T any] interface {
	Chain(ctx context.Context, fn Adapter[T]) (Chainable[T], error)
}

// AsyncChainable is implemented by containers supporting asynchronous
// chaining. The hook may fan out adapter invocations before earlier ones
// settle; the returned handle settles once the container has combined all
// splices into a result of its own kind.
type AsyncChainable[T any] interface {
	ChainAsync(ctx context.Context, fn AsyncAdapter[T]) *Future[AsyncChainable[T]]
}

// Liftable is implemented by containers supporting the lift (map-like)
// capability.
type Liftable[T any] interface {
	Lift(ctx context.Context, fn MapFunc[T]) (Liftable[T], error)
}

// Combinable is implemented by containers supporting the combine
// (zip-like) capability. Implementations pair elements with a container of
// the same kind and may reject a mismatched operand with their own error.
type Combinable[T any] interface {
	Combine(ctx context.Context, other Combinable[T], fn ZipFunc[T]) (Combinable[T], error)
}
