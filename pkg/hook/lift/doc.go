// Package lift provides the map-like single-dispatch driver: validate the
// callback, forward to the container's lift hook. Unlike chaining there is
// no per-invocation lifecycle to guard; the container applies the callback
// to each element and rebuilds itself.
package lift
