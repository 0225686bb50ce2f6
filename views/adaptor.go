package views

// Adaptor is a deferred view transformation. It captures only its own
// configuration (a count, a predicate) and is combined with a view
// later; the same adaptor value can be applied to many independent
// views. Adaptors compose with [Pipe] or [View.Pipe].
type Adaptor[T any] func(View[T]) View[T]

// Pipe composes v with adaptors, left to right. Composition itself
// touches no elements; the resulting view pulls each element through
// the whole chain only when the final consumer requests it, so a
// pipeline makes a single logical pass over the elements that survive
// all upstream stages.
func Pipe[T any](v View[T], adaptors ...Adaptor[T]) View[T] {
	for _, a := range adaptors {
		v = a(v)
	}
	return v
}

// Drop is the deferred form of [View.Drop].
func Drop[T any](count int) Adaptor[T] {
	return func(v View[T]) View[T] { return v.Drop(count) }
}

// Filter is the deferred form of [View.Filter].
func Filter[T any](predicate func(T) bool) Adaptor[T] {
	return func(v View[T]) View[T] { return v.Filter(predicate) }
}

// TakeWhile is the deferred form of [View.TakeWhile].
func TakeWhile[T any](predicate func(T) bool) Adaptor[T] {
	return func(v View[T]) View[T] { return v.TakeWhile(predicate) }
}

// DropWhile is the deferred form of [View.DropWhile].
func DropWhile[T any](predicate func(T) bool) Adaptor[T] {
	return func(v View[T]) View[T] { return v.DropWhile(predicate) }
}

// Peek is the deferred form of [View.Peek].
func Peek[T any](action func(T)) Adaptor[T] {
	return func(v View[T]) View[T] { return v.Peek(action) }
}

// Reverse is the deferred form of [View.Reverse].
func Reverse[T any]() Adaptor[T] {
	return func(v View[T]) View[T] { return v.Reverse() }
}

// Distinct returns an adaptor that keeps only the first occurrence of
// each element. It has no method form because it needs T to be
// comparable, which a method on View[T] cannot require.
func Distinct[T comparable]() Adaptor[T] {
	return func(v View[T]) View[T] {
		return FromSeq(func(yield func(T) bool) {
			seen := make(map[T]struct{})
			for x := range v.Seq() {
				if _, ok := seen[x]; ok {
					continue
				}
				seen[x] = struct{}{}
				if !yield(x) {
					return
				}
			}
		})
	}
}
