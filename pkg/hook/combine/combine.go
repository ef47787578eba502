package combine

import (
	"context"

	"github.com/vb-86/hookpipe/pkg/hook"
)

// Sync invokes a's combine hook against b with the pairing callback. Both
// operands and the callback are validated up front; how elements pair, and
// whether b's kind is acceptable, is the container's decision.
func Sync[T any](ctx context.Context, a, b hook.Combinable[T], fn hook.ZipFunc[T]) (hook.Combinable[T], error) {
	if fn == nil {
		return nil, hook.InvalidCallbackError("combine.Sync: nil callback")
	}
	if hook.IsNil(a) || hook.IsNil(b) {
		return nil, hook.InvalidCallbackError("combine.Sync: nil operand")
	}
	return a.Combine(ctx, b, fn)
}
