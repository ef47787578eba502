// Package box provides the optional-value container: at most one value,
// with chain (sync and async), lift and combine hooks. Empty boxes
// short-circuit every hook without invoking the callback.
package box
