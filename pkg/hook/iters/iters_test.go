package iters

import (
	"context"
	"errors"
	"testing"

	"github.com/vb-86/hookpipe/pkg/hook"
)

func equal[T comparable](t *testing.T, got, want []T) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestIter_ChainSplicesInProductionOrder(t *testing.T) {
	t.Parallel()

	res, err := Of(1, 2).Chain(context.Background(), func(_ context.Context, v int) (hook.Splice[int], error) {
		return hook.Splice[int]{Values: []int{v, v + 10}}, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	equal(t, res.(Iter[int]).Collect(), []int{1, 11, 2, 12})
}

func TestIter_ChainStopsOnDone(t *testing.T) {
	t.Parallel()

	pulled := 0
	src := func(yield func(int) bool) {
		for v := 1; ; v++ {
			pulled++
			if !yield(v) {
				return
			}
		}
	}

	res, err := From(src).Chain(context.Background(), func(_ context.Context, v int) (hook.Splice[int], error) {
		if v == 3 {
			return hook.Splice[int]{Done: true}, nil
		}
		return hook.Splice[int]{Values: []int{v}}, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	equal(t, res.(Iter[int]).Collect(), []int{1, 2})
	if pulled != 3 {
		t.Fatalf("infinite iterator pulled %d times, expected 3", pulled)
	}
}

func TestIter_ChainPropagatesAdapterError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	_, err := Of(1).Chain(context.Background(), func(_ context.Context, _ int) (hook.Splice[int], error) {
		return hook.Splice[int]{}, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}

func TestIter_Lift(t *testing.T) {
	t.Parallel()

	res, err := Of(1, 2, 3).Lift(context.Background(), func(_ context.Context, v int) (int, error) {
		return -v, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	equal(t, res.(Iter[int]).Collect(), []int{-1, -2, -3})
}

func TestIter_ZeroValueIsEmpty(t *testing.T) {
	t.Parallel()

	var it Iter[int]
	if got := it.Collect(); len(got) != 0 {
		t.Fatalf("expected no values, got %v", got)
	}

	res, err := it.Chain(context.Background(), func(_ context.Context, v int) (hook.Splice[int], error) {
		return hook.Splice[int]{Values: []int{v}}, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := res.(Iter[int]).Collect(); len(got) != 0 {
		t.Fatalf("expected no values, got %v", got)
	}
}
