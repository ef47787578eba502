package hook

import (
	"context"
	"sync/atomic"
)

// Future is a one-shot completion handle. It may be settled at most once,
// with either a value or an error; later settlement attempts report false
// and are otherwise ignored. Await may be called any number of times, from
// any goroutine.
type Future[T any] struct {
	done    chan struct{}
	settled atomic.Uint32
	value   T
	err     error
}

// NewFuture returns an unsettled handle.
func NewFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// Resolved returns a handle already settled with v.
func Resolved[T any](v T) *Future[T] {
	f := NewFuture[T]()
	f.Complete(v)
	return f
}

// Failed returns a handle already settled with err.
func Failed[T any](err error) *Future[T] {
	f := NewFuture[T]()
	f.Fail(err)
	return f
}

// Complete settles the handle with a value. Reports whether this call won
// the settlement.
func (f *Future[T]) Complete(v T) bool {
	if !f.settled.CompareAndSwap(0, 1) {
		return false
	}
	f.value = v
	close(f.done)
	return true
}

// Fail settles the handle with an error. Reports whether this call won the
// settlement.
func (f *Future[T]) Fail(err error) bool {
	if !f.settled.CompareAndSwap(0, 1) {
		return false
	}
	f.err = err
	close(f.done)
	return true
}

// Await blocks until the handle settles or ctx is done. A ctx error does
// not settle the handle; the computation behind it keeps running.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Settled reports whether the handle has been completed or failed.
func (f *Future[T]) Settled() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}
