package views

import "iter"

// TakeView exposes at most the first count elements of a base view. It
// stores only the base view and the count; no element is read until
// traversal. The zero value is an empty view.
//
// A count larger than the base length yields exactly the base's
// elements. A count of zero or less yields nothing; negative counts are
// deliberately defined (as empty) rather than left as a caller error.
type TakeView[T any] struct {
	base  View[T]
	count int
}

// NewTakeView is the immediate adaptor form: it binds the base view and
// the count at once. For the deferred single-argument form, see [Take].
func NewTakeView[T any](base View[T], count int) TakeView[T] {
	return TakeView[T]{base: base, count: count}
}

// Base returns the underlying view.
func (t TakeView[T]) Base() View[T] { return t.base }

// Count returns the configured element limit.
func (t TakeView[T]) Count() int { return t.count }

// View re-wraps the take view as a plain View for further composition.
func (t TakeView[T]) View() View[T] { return FromSeq(t.Seq()) }

// Seq returns the bounded traversal. The walk ends at whichever comes
// first, the base's own end or the count-th element, and never requests
// an element beyond either. Each step is O(1) on top of the base.
func (t TakeView[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		if t.count <= 0 {
			return
		}
		n := 0
		for v := range t.base.Seq() {
			if !yield(v) {
				return
			}
			n++
			if n >= t.count {
				return
			}
		}
	}
}

// Take is the deferred adaptor form: it captures count alone and is
// combined with a view later, so a single closure can be applied to any
// number of independent views.
func Take[T any](count int) Adaptor[T] {
	return func(v View[T]) View[T] {
		return NewTakeView(v, count).View()
	}
}

// Take binds count to v immediately, equivalent to
// NewTakeView(v, count).View().
func (v View[T]) Take(count int) View[T] {
	return NewTakeView(v, count).View()
}
