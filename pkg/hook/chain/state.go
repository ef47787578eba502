package chain

import (
	"sync"

	"github.com/google/uuid"

	"github.com/vb-86/hookpipe/pkg/hook"
)

type state uint8

const (
	// stateOpen accepts the next adapter invocation.
	stateOpen state = iota
	// stateInFlight covers a callback's synchronous execution window;
	// entering again from inside it is illegal reentrancy.
	stateInFlight
	// stateClosed follows a Terminate outcome; no further invocations are
	// permitted.
	stateClosed
)

func (s state) String() string {
	switch s {
	case stateOpen:
		return "open"
	case stateInFlight:
		return "in-flight"
	case stateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// machine is the per-driver-invocation lifecycle guard. One machine is
// created per driver call and never shared between calls; the mutex only
// serializes transitions against concurrently settling async invocations.
type machine struct {
	mu sync.Mutex
	id uuid.UUID
	st state
}

func newMachine() *machine {
	return &machine{id: uuid.New()}
}

// enter transitions open -> in-flight, or reports the protocol violation
// that forbids the transition.
func (m *machine) enter() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch m.st {
	case stateClosed:
		return hook.ViolationError(m.id, "adapter invoked after termination")
	case stateInFlight:
		return hook.ViolationError(m.id, "adapter re-entered during callback execution")
	}
	m.st = stateInFlight
	return nil
}

// suspend ends a callback's synchronous window: in-flight -> open. A
// machine closed by a concurrently settling invocation stays closed.
func (m *machine) suspend() {
	m.mu.Lock()
	if m.st == stateInFlight {
		m.st = stateOpen
	}
	m.mu.Unlock()
}

// close records an observed Terminate outcome. Final state.
func (m *machine) close() {
	m.mu.Lock()
	m.st = stateClosed
	m.mu.Unlock()
}
