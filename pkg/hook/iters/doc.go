// Package iters adapts standard iterators (iter.Seq) to the synchronous
// chain and lift capabilities. Chaining is sequential and Done-honoring:
// once a splice terminates the chain, the iterator is not pulled again.
package iters
