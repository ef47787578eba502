package hook

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrorKind is a machine-readable classification of driver errors.
type ErrorKind string

const (
	// KindInvalidArgument indicates a non-invocable callback was supplied.
	KindInvalidArgument ErrorKind = "INVALID_ARGUMENT"
	// KindInvalidOutcome indicates a callback produced an unclassifiable outcome.
	KindInvalidOutcome ErrorKind = "INVALID_CHAIN_RESULT"
	// KindProtocolViolation indicates a container invoked the adapter after
	// termination or reentrantly.
	KindProtocolViolation ErrorKind = "PROTOCOL_VIOLATION"
)

var (
	ErrInvalidCallback   = errors.New("hook: callback is not invocable")
	ErrInvalidOutcome    = errors.New("hook: callback returned an unclassifiable outcome")
	ErrProtocolViolation = errors.New("hook: container violated the chain protocol")
)

// DriverError is an error originating from a driver itself, as opposed to
// errors raised by user callbacks or container hooks, which pass through
// unwrapped. It matches its sentinel under errors.Is.
type DriverError struct {
	Kind   ErrorKind
	Driver uuid.UUID
	Detail string

	sentinel error
}

func (e *DriverError) Error() string {
	if e.Driver == uuid.Nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
	}
	return fmt.Sprintf("%s: %s (driver %s)", e.Kind, e.Detail, e.Driver)
}

func (e *DriverError) Unwrap() error {
	return e.sentinel
}

// InvalidCallbackError reports a non-invocable callback. It carries no
// driver id: the failure happens before any driver state exists.
func InvalidCallbackError(detail string) *DriverError {
	return &DriverError{Kind: KindInvalidArgument, Detail: detail, sentinel: ErrInvalidCallback}
}

// InvalidOutcomeError reports an unclassifiable callback outcome.
func InvalidOutcomeError(driver uuid.UUID, detail string) *DriverError {
	return &DriverError{Kind: KindInvalidOutcome, Driver: driver, Detail: detail, sentinel: ErrInvalidOutcome}
}

// ViolationError reports a container breaking the termination or
// reentrancy contract.
func ViolationError(driver uuid.UUID, detail string) *DriverError {
	return &DriverError{Kind: KindProtocolViolation, Driver: driver, Detail: detail, sentinel: ErrProtocolViolation}
}
