package views

import (
	"iter"
	"slices"
)

// Sinks consume a view and produce a value. They are free functions
// over the View primitive rather than methods, so that View itself
// stays minimal and new consumers can be added without touching it.

// Collect drains the view into a slice.
func Collect[T any](v View[T]) []T {
	return slices.Collect(v.Seq())
}

// First returns the first element, pulling exactly one.
func First[T any](v View[T]) (T, bool) {
	for x := range v.Seq() {
		return x, true
	}
	var zero T
	return zero, false
}

// Last returns the final element, draining the view.
func Last[T any](v View[T]) (T, bool) {
	var last T
	found := false
	for x := range v.Seq() {
		last = x
		found = true
	}
	return last, found
}

// Count drains the view and returns the number of elements.
func Count[T any](v View[T]) int {
	n := 0
	for range v.Seq() {
		n++
	}
	return n
}

// IsEmpty reports whether the view has no elements, pulling at most
// one.
func IsEmpty[T any](v View[T]) bool {
	_, ok := First(v)
	return !ok
}

// Any reports whether some element satisfies the predicate, stopping at
// the first match.
func Any[T any](v View[T], predicate func(T) bool) bool {
	for x := range v.Seq() {
		if predicate(x) {
			return true
		}
	}
	return false
}

// All reports whether every element satisfies the predicate, stopping
// at the first failure.
func All[T any](v View[T], predicate func(T) bool) bool {
	for x := range v.Seq() {
		if !predicate(x) {
			return false
		}
	}
	return true
}

// Equal reports whether two views yield equal elements in equal order.
// Both views are traversed at most once, in lockstep.
func Equal[T comparable](v1, v2 View[T]) bool {
	next2, stop2 := iter.Pull(v2.Seq())
	defer stop2()

	for x1 := range v1.Seq() {
		x2, ok := next2()
		if !ok || x1 != x2 {
			return false
		}
	}
	_, ok := next2()
	return !ok
}

// Reduce folds the view into a single value, starting from initial.
func Reduce[T, R any](v View[T], initial R, reducer func(R, T) R) R {
	acc := initial
	for x := range v.Seq() {
		acc = reducer(acc, x)
	}
	return acc
}

// Number covers the built-in numeric types usable with [Sum], [Min] and
// [Max].
type Number interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// Sum adds up the elements of a numeric view.
func Sum[T Number](v View[T]) T {
	var total T
	for x := range v.Seq() {
		total += x
	}
	return total
}

// Min returns the smallest element, or false for an empty view.
func Min[T Number](v View[T]) (T, bool) {
	var min T
	first := true
	for x := range v.Seq() {
		if first || x < min {
			min = x
			first = false
		}
	}
	if first {
		var zero T
		return zero, false
	}
	return min, true
}

// Max returns the largest element, or false for an empty view.
func Max[T Number](v View[T]) (T, bool) {
	var max T
	first := true
	for x := range v.Seq() {
		if first || x > max {
			max = x
			first = false
		}
	}
	if first {
		var zero T
		return zero, false
	}
	return max, true
}
