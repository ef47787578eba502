package hook

import (
	"context"
	"errors"
	"reflect"
)

// IsNil reports whether i is nil, including a non-nil interface holding a
// nil pointer.
func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

// IsCancellation reports whether err stems from context cancellation or a
// deadline, in which case it is a passthrough error rather than a contract
// violation.
func IsCancellation(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
