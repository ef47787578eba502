package hook

type outcomeKind uint8

const (
	outcomeInvalid outcomeKind = iota
	outcomeTerminate
	outcomeEmit
	outcomeFlatten
)

// Outcome is the tagged result of one callback invocation. Exactly one of
// three variants: Terminate (stop the chain), Emit (replace the input value
// with zero or more values) or Flatten (splice in a nested chainable).
// The zero Outcome belongs to no variant and classifies as invalid.
type Outcome[T any] struct {
	kind   outcomeKind
	values []T
	nested any
}

// Terminate signals the driver to stop the chain at this input.
func Terminate[T any]() Outcome[T] {
	return Outcome[T]{kind: outcomeTerminate}
}

// Emit replaces the current input value with the given values, in order.
// Emit() with no values drops the input (filtering).
func Emit[T any](values ...T) Outcome[T] {
	return Outcome[T]{kind: outcomeEmit, values: values}
}

// Flatten splices the contents of a nested synchronous chainable in place
// of the current input value.
func Flatten[T any](nested Chainable[T]) Outcome[T] {
	return Outcome[T]{kind: outcomeFlatten, nested: nested}
}

// FlattenAsync splices the contents of a nested asynchronous chainable in
// place of the current input value.
func FlattenAsync[T any](nested AsyncChainable[T]) Outcome[T] {
	return Outcome[T]{kind: outcomeFlatten, nested: nested}
}

func (o Outcome[T]) IsTerminate() bool { return o.kind == outcomeTerminate }

func (o Outcome[T]) IsEmit() bool { return o.kind == outcomeEmit }

func (o Outcome[T]) IsFlatten() bool { return o.kind == outcomeFlatten }

// IsValid reports whether the outcome belongs to one of the three variants.
func (o Outcome[T]) IsValid() bool { return o.kind != outcomeInvalid }

// Values returns the replacement values of an Emit outcome.
func (o Outcome[T]) Values() []T { return o.values }

// NestedSync returns the flatten target if it exposes the synchronous
// chain hook.
func (o Outcome[T]) NestedSync() (Chainable[T], bool) {
	if o.kind != outcomeFlatten || IsNil(o.nested) {
		return nil, false
	}
	c, ok := o.nested.(Chainable[T])
	return c, ok
}

// NestedAsync returns the flatten target if it exposes the asynchronous
// chain hook.
func (o Outcome[T]) NestedAsync() (AsyncChainable[T], bool) {
	if o.kind != outcomeFlatten || IsNil(o.nested) {
		return nil, false
	}
	c, ok := o.nested.(AsyncChainable[T])
	return c, ok
}
