// Package core carries context-scoped options shared by drivers and
// container hooks: trace logging and asynchronous fan-out width.
//
// Options travel on the context rather than on function signatures so that
// the driver contracts stay minimal (container, callback) while callers can
// still tune behavior per call tree.
package core
