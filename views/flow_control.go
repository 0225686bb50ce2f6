package views

import "slices"

// Drop skips the first count elements and yields the rest. A count
// larger than the view's length yields an empty view.
func (v View[T]) Drop(count int) View[T] {
	return FromSeq(func(yield func(T) bool) {
		skipped := 0
		for x := range v.Seq() {
			if skipped < count {
				skipped++
				continue
			}
			if !yield(x) {
				return
			}
		}
	})
}

// Filter yields only the elements that satisfy the predicate.
func (v View[T]) Filter(predicate func(T) bool) View[T] {
	return FromSeq(func(yield func(T) bool) {
		for x := range v.Seq() {
			if predicate(x) {
				if !yield(x) {
					return
				}
			}
		}
	})
}

// TakeWhile yields elements as long as the predicate returns true and
// ends the view at the first element that fails it. On an unbounded
// base the traversal still terminates as soon as the predicate fails.
func (v View[T]) TakeWhile(predicate func(T) bool) View[T] {
	return FromSeq(func(yield func(T) bool) {
		for x := range v.Seq() {
			if !predicate(x) {
				return
			}
			if !yield(x) {
				return
			}
		}
	})
}

// DropWhile skips elements as long as the predicate returns true, then
// yields the rest, including later elements the predicate would match.
func (v View[T]) DropWhile(predicate func(T) bool) View[T] {
	return FromSeq(func(yield func(T) bool) {
		dropping := true
		for x := range v.Seq() {
			if dropping {
				if predicate(x) {
					continue
				}
				dropping = false
			}
			if !yield(x) {
				return
			}
		}
	})
}

// Peek runs action on each element without modifying the view. Useful
// for attaching logging or counters to a pipeline stage.
func (v View[T]) Peek(action func(T)) View[T] {
	return FromSeq(func(yield func(T) bool) {
		for x := range v.Seq() {
			action(x)
			if !yield(x) {
				return
			}
		}
	})
}

// Reverse yields the elements in reverse order. Construction stays
// lazy, but the first pull buffers the whole base view, so Reverse must
// not be applied to an unbounded view.
func (v View[T]) Reverse() View[T] {
	return FromSeq(func(yield func(T) bool) {
		buf := slices.Collect(v.Seq())
		for i := len(buf) - 1; i >= 0; i-- {
			if !yield(buf[i]) {
				return
			}
		}
	})
}
