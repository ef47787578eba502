package lift

import (
	"context"
	"errors"
	"testing"

	"github.com/vb-86/hookpipe/pkg/hook"
	"github.com/vb-86/hookpipe/pkg/hook/seq"
)

func TestSync_Forwards(t *testing.T) {
	t.Parallel()

	res, err := Sync[int](context.Background(), seq.Of(1, 2), func(_ context.Context, v int) (int, error) {
		return v + 1, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := res.(seq.Seq[int]).Items()
	if len(got) != 2 || got[0] != 2 || got[1] != 3 {
		t.Fatalf("expected [2 3], got %v", got)
	}
}

func TestSync_NilCallback(t *testing.T) {
	t.Parallel()

	_, err := Sync[int](context.Background(), seq.Of(1), nil)
	if !errors.Is(err, hook.ErrInvalidCallback) {
		t.Fatalf("expected invalid callback error, got %v", err)
	}
}

func TestSync_CallbackErrorPassesThrough(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	_, err := Sync[int](context.Background(), seq.Of(1), func(_ context.Context, _ int) (int, error) {
		return 0, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}

func TestPipe_FoldsAndValidatesUpFront(t *testing.T) {
	t.Parallel()

	inc := func(_ context.Context, v int) (int, error) { return v + 1, nil }

	res, err := Pipe[int](context.Background(), seq.Of(1, 2), inc, inc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := res.(seq.Seq[int]).Items()
	if len(got) != 2 || got[0] != 3 || got[1] != 4 {
		t.Fatalf("expected [3 4], got %v", got)
	}

	ran := false
	counting := func(_ context.Context, v int) (int, error) {
		ran = true
		return v, nil
	}
	_, err = Pipe[int](context.Background(), seq.Of(1), counting, nil)
	if !errors.Is(err, hook.ErrInvalidCallback) {
		t.Fatalf("expected invalid callback error, got %v", err)
	}
	if ran {
		t.Fatal("no step may run when a later callback is invalid")
	}
}
