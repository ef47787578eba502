// Package hook defines the container-hook protocols shared by the pipeline
// drivers: the chain (flatMap-like), lift (map-like) and combine (zip-like)
// capabilities, the tagged callback outcome, and the normalized splice value
// a container hook receives per input.
//
// Highlights:
// - Chainable/AsyncChainable: chain capability, sync and async hooks
// - Liftable/Combinable: single-dispatch lift and combine capabilities
// - Outcome: tagged callback result (Terminate | Emit | Flatten)
// - Splice: normalized per-invocation value handed back to container hooks
// - Future: one-shot completion handle used by all asynchronous hooks
// - DriverError: structured driver errors (invalid argument, invalid
//   outcome, protocol violation); callback and container errors pass
//   through unwrapped
//
// Containers own iteration: a hook decides when and how many times the
// supplied adapter runs. Drivers (package chain) own the per-invocation
// lifecycle: reentrancy and termination guards, outcome classification,
// and exactly-once settlement of asynchronous operations.
package hook
