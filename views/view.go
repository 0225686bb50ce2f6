package views

import (
	"iter"
	"slices"
)

// View is a non-owning, lazily evaluated handle over a sequence of
// elements. Copying a View is O(1) and never copies the underlying
// elements; the caller must keep the borrowed data alive for as long as
// the view is in use. The zero value is a valid empty view.
type View[T any] struct {
	seq iter.Seq[T]
}

// From borrows a slice and returns a view over its elements. The slice
// is not copied; the view reads it lazily on each traversal.
func From[T any](items []T) View[T] {
	return View[T]{seq: slices.Values(items)}
}

// FromSeq wraps an existing sequence as a view, unchanged. If seq is
// already the product of other views, no extra indirection is added at
// traversal time beyond the function call itself.
func FromSeq[T any](seq iter.Seq[T]) View[T] {
	return View[T]{seq: seq}
}

// FromChan adapts a channel to a view. The resulting view is
// single-pass: a second traversal observes only values not consumed by
// the first, and terminates when the channel is closed.
func FromChan[T any](ch <-chan T) View[T] {
	return View[T]{seq: func(yield func(T) bool) {
		for v := range ch {
			if !yield(v) {
				return
			}
		}
	}}
}

// Of returns a view owning its variadic arguments.
func Of[T any](items ...T) View[T] {
	return From(items)
}

// Seq returns the underlying sequence. Only iterating it touches
// elements; constructing or copying the View does not.
func (v View[T]) Seq() iter.Seq[T] {
	if v.seq == nil {
		return func(yield func(T) bool) {}
	}
	return v.seq
}

// Pipe applies adaptors to v left to right. See [Pipe].
func (v View[T]) Pipe(adaptors ...Adaptor[T]) View[T] {
	return Pipe(v, adaptors...)
}
