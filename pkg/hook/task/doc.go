// Package task adapts one-shot completion handles to the asynchronous
// chain capability, modeling a container of at most one eventual value.
package task
