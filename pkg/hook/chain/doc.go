// Package chain implements the chain-invocation drivers: the protocol-
// enforcing adapters handed to container hooks, outcome classification,
// and exactly-once settlement of asynchronous chains.
//
// Highlights:
// - Sync: synchronous driver (guard, invoke, classify, splice)
// - Async: asynchronous driver with a pending-invocation counter seeded by
//   the hook's own settlement; the last settlement delivers, exactly once
// - Pipe/PipeAsync: variadic left-to-right folds, fresh driver per step
// - Flow: fluent wrapper over Pipe-style chaining (From/Then/Result)
//
// Drivers never reorder or override a hook's own resolution; they only
// ensure every started invocation is drained first. Once a Terminate
// outcome is observed the driver stops accepting new invocations, but it
// cannot abort in-flight asynchronous work; the context passed to
// callbacks and hooks is the cancellation extension point.
package chain
