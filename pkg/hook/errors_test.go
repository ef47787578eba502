package hook

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestDriverError_MatchesSentinel(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	cases := []struct {
		err      error
		sentinel error
		kind     ErrorKind
	}{
		{InvalidCallbackError("nil callback"), ErrInvalidCallback, KindInvalidArgument},
		{InvalidOutcomeError(id, "bad outcome"), ErrInvalidOutcome, KindInvalidOutcome},
		{ViolationError(id, "called after termination"), ErrProtocolViolation, KindProtocolViolation},
	}

	for _, tc := range cases {
		if !errors.Is(tc.err, tc.sentinel) {
			t.Fatalf("%v must match its sentinel", tc.err)
		}
		var de *DriverError
		if !errors.As(tc.err, &de) {
			t.Fatalf("%v must expose DriverError", tc.err)
		}
		if de.Kind != tc.kind {
			t.Fatalf("expected kind %s, got %s", tc.kind, de.Kind)
		}
	}
}

func TestDriverError_MessageCarriesDriverID(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	msg := ViolationError(id, "reentered").Error()
	if !strings.Contains(msg, id.String()) {
		t.Fatalf("expected driver id in %q", msg)
	}

	msg = InvalidCallbackError("nil callback").Error()
	if strings.Contains(msg, "driver") {
		t.Fatalf("argument errors precede driver state, got %q", msg)
	}
}

func TestIsNil(t *testing.T) {
	t.Parallel()

	if !IsNil(nil) {
		t.Fatal("nil must be nil")
	}
	var p *int
	if !IsNil(p) {
		t.Fatal("typed nil pointer must be nil")
	}
	if IsNil(42) {
		t.Fatal("value must not be nil")
	}
}

func TestIsCancellation(t *testing.T) {
	t.Parallel()

	if !IsCancellation(context.Canceled) || !IsCancellation(context.DeadlineExceeded) {
		t.Fatal("context errors are cancellations")
	}
	if IsCancellation(errors.New("boom")) {
		t.Fatal("ordinary errors are not cancellations")
	}
}
