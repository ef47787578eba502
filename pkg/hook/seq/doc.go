// Package seq provides the slice-backed reference container. It implements
// every hook capability (chain sync/async, lift, combine) with strict
// input-order semantics, plus package-level Map/FlatMap/Zip for cross-type
// transforms.
//
// The async chain hook fans out adapter invocations in waves; the wave
// width is the whole seq by default and can be bounded per call tree with
// core.WithFanOut. Splices are combined in input order, not settlement
// order.
package seq
