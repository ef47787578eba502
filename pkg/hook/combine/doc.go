// Package combine provides the zip-like single-dispatch driver: validate
// the operands and callback, forward to the left operand's combine hook.
package combine
