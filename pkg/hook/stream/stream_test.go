package stream

import (
	"context"
	"errors"
	"sort"
	"sync/atomic"
	"testing"
	"time"

	"github.com/vb-86/hookpipe/pkg/hook"
	"github.com/vb-86/hookpipe/pkg/hook/core"
)

func timeout(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func collect[T any](t *testing.T, res hook.AsyncChainable[T]) []T {
	t.Helper()
	out, err := res.(Stream[T]).Collect(timeout(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return out
}

func TestStream_ChainAsyncPreservesOrderAtWidthOne(t *testing.T) {
	t.Parallel()

	fut := Of(1, 2, 3).ChainAsync(timeout(t), func(_ context.Context, v int) *hook.Future[hook.Splice[int]] {
		return hook.Resolved(hook.Splice[int]{Values: []int{v, v * 10}})
	})

	res, err := fut.Await(timeout(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := collect[int](t, res)
	want := []int{1, 10, 2, 20, 3, 30}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestStream_ChainAsyncWorkerPoolDrainsAll(t *testing.T) {
	t.Parallel()

	ctx := core.WithFanOut(timeout(t), 4)
	fut := Of(1, 2, 3, 4, 5, 6, 7, 8).ChainAsync(ctx, func(_ context.Context, v int) *hook.Future[hook.Splice[int]] {
		out := hook.NewFuture[hook.Splice[int]]()
		go func() {
			time.Sleep(time.Duration(v%3) * time.Millisecond)
			out.Complete(hook.Splice[int]{Values: []int{v}})
		}()
		return out
	})

	res, err := fut.Await(timeout(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := collect[int](t, res)
	sort.Ints(got)
	if len(got) != 8 {
		t.Fatalf("expected 8 values, got %v", got)
	}
	for i, v := range got {
		if v != i+1 {
			t.Fatalf("missing values: %v", got)
		}
	}
}

func TestStream_DoneStopsDispatcher(t *testing.T) {
	t.Parallel()

	var invoked atomic.Int64
	fut := Of(1, 2, 3, 4).ChainAsync(timeout(t), func(_ context.Context, v int) *hook.Future[hook.Splice[int]] {
		invoked.Add(1)
		if v == 2 {
			return hook.Resolved(hook.Splice[int]{Done: true})
		}
		return hook.Resolved(hook.Splice[int]{Values: []int{v}})
	})

	res, err := fut.Await(timeout(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := collect[int](t, res)
	if len(got) != 1 || got[0] != 1 {
		t.Fatalf("expected [1], got %v", got)
	}
	if invoked.Load() > 3 {
		t.Fatalf("dispatcher kept running after Done: %d invocations", invoked.Load())
	}
}

func TestStream_FirstFailureWins(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	fut := Of(1, 2, 3).ChainAsync(timeout(t), func(_ context.Context, v int) *hook.Future[hook.Splice[int]] {
		if v == 1 {
			return hook.Failed[hook.Splice[int]](boom)
		}
		return hook.Resolved(hook.Splice[int]{Values: []int{v}})
	})

	if _, err := fut.Await(timeout(t)); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}

func TestStream_CollectHonorsContext(t *testing.T) {
	t.Parallel()

	ch := make(chan int) // never closed, never written
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := From(ch).Collect(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline error, got %v", err)
	}
}
