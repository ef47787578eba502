// Package stream provides a channel-backed asynchronous chainable. The
// chain hook runs a dispatcher goroutine that invokes the adapter per
// received value and a worker pool that awaits settlements, so callback
// awaits overlap while synchronous invocation portions stay sequential.
package stream
