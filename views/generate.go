package views

import "math/rand/v2"

// Range yields integers from start towards end (exclusive) with the
// given step. A zero step yields nothing.
func Range(start, end, step int) View[int] {
	return FromSeq(func(yield func(int) bool) {
		if step == 0 {
			return
		}
		for i := start; step > 0 && i < end || step < 0 && i > end; i += step {
			if !yield(i) {
				return
			}
		}
	})
}

// Iota yields start, start+1, start+2, ... without end. The view is
// unbounded and safe to traverse only under a bounding stage such as
// [View.Take] or [View.TakeWhile], which stop requesting elements.
func Iota(start int) View[int] {
	return FromSeq(func(yield func(int) bool) {
		for i := start; ; i++ {
			if !yield(i) {
				return
			}
		}
	})
}

// Repeat yields value count times.
func Repeat[T any](value T, count int) View[T] {
	return FromSeq(func(yield func(T) bool) {
		for i := 0; i < count; i++ {
			if !yield(value) {
				return
			}
		}
	})
}

// RepeatForever yields value without end; bound it like [Iota].
func RepeatForever[T any](value T) View[T] {
	return FromSeq(func(yield func(T) bool) {
		for yield(value) {
		}
	})
}

// RandomInts yields size random integers.
func RandomInts(size int) View[int] {
	return FromSeq(func(yield func(int) bool) {
		for i := 0; i < size; i++ {
			if !yield(rand.Int()) {
				return
			}
		}
	})
}
