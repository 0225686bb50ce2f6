package views

import "iter"

// Transform applies f to each element, producing a view of the results.
// It is a package-level function because the result type differs from
// the element type, which a View method cannot express.
func Transform[T, R any](v View[T], f func(T) R) View[R] {
	return FromSeq(func(yield func(R) bool) {
		for x := range v.Seq() {
			if !yield(f(x)) {
				return
			}
		}
	})
}

// TryTransform applies f to each element, yielding (result, error)
// pairs. On an error the zero result is yielded together with the
// error; the consumer decides whether to continue by returning true or
// false from its loop body.
func TryTransform[T, R any](v View[T], f func(T) (R, error)) iter.Seq2[R, error] {
	return func(yield func(R, error) bool) {
		for x := range v.Seq() {
			r, err := f(x)
			if !yield(r, err) {
				return
			}
		}
	}
}

// FlatMap maps each element to a view and concatenates the results.
func FlatMap[T, R any](v View[T], f func(T) View[R]) View[R] {
	return FromSeq(func(yield func(R) bool) {
		for x := range v.Seq() {
			for r := range f(x).Seq() {
				if !yield(r) {
					return
				}
			}
		}
	})
}

// Concat yields the elements of each view in turn.
func Concat[T any](vs ...View[T]) View[T] {
	return FromSeq(func(yield func(T) bool) {
		for _, v := range vs {
			for x := range v.Seq() {
				if !yield(x) {
					return
				}
			}
		}
	})
}

// Join flattens a view of slices into a view of their elements.
func Join[T any](v View[[]T]) View[T] {
	return FromSeq(func(yield func(T) bool) {
		for group := range v.Seq() {
			for _, x := range group {
				if !yield(x) {
					return
				}
			}
		}
	})
}

// Split cuts the view into segments around each occurrence of sep,
// following strings.Split conventions: separators delimit possibly
// empty segments, and an empty view yields one empty segment.
func Split[T comparable](v View[T], sep T) View[[]T] {
	return FromSeq(func(yield func([]T) bool) {
		var segment []T
		for x := range v.Seq() {
			if x == sep {
				if !yield(segment) {
					return
				}
				segment = nil
				continue
			}
			segment = append(segment, x)
		}
		yield(segment)
	})
}

// Pair holds one element from each of two zipped views.
type Pair[T1, T2 any] struct {
	V1 T1
	V2 T2
}

// Zip pairs elements of two views positionally, ending with the shorter
// one.
func Zip[T1, T2 any](v1 View[T1], v2 View[T2]) View[Pair[T1, T2]] {
	return FromSeq(func(yield func(Pair[T1, T2]) bool) {
		next2, stop2 := iter.Pull(v2.Seq())
		defer stop2()

		for x1 := range v1.Seq() {
			x2, ok := next2()
			if !ok {
				return
			}
			if !yield(Pair[T1, T2]{x1, x2}) {
				return
			}
		}
	})
}

// ZipLongest pairs elements of two views positionally, continuing to
// the longer one and substituting fill1 or fill2 for the exhausted
// side.
func ZipLongest[T1, T2 any](v1 View[T1], v2 View[T2], fill1 T1, fill2 T2) View[Pair[T1, T2]] {
	return FromSeq(func(yield func(Pair[T1, T2]) bool) {
		next1, stop1 := iter.Pull(v1.Seq())
		defer stop1()
		next2, stop2 := iter.Pull(v2.Seq())
		defer stop2()

		for {
			x1, ok1 := next1()
			x2, ok2 := next2()
			if !ok1 && !ok2 {
				return
			}
			if !ok1 {
				x1 = fill1
			}
			if !ok2 {
				x2 = fill2
			}
			if !yield(Pair[T1, T2]{V1: x1, V2: x2}) {
				return
			}
		}
	})
}

// Enumerate yields (index, element) pairs, indexed from zero.
func Enumerate[T any](v View[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for x := range v.Seq() {
			if !yield(i, x) {
				return
			}
			i++
		}
	}
}

// Chunk groups consecutive elements into slices of the given size. The
// last chunk may be shorter. A size of zero or less yields nothing.
func Chunk[T any](v View[T], size int) View[[]T] {
	return FromSeq(func(yield func([]T) bool) {
		if size <= 0 {
			return
		}
		batch := make([]T, 0, size)
		for x := range v.Seq() {
			batch = append(batch, x)
			if len(batch) == size {
				if !yield(batch) {
					return
				}
				batch = make([]T, 0, size)
			}
		}
		if len(batch) > 0 {
			yield(batch)
		}
	})
}

// Scan is like [Reduce] but yields the running accumulator after each
// element.
func Scan[T, R any](v View[T], initial R, reducer func(R, T) R) View[R] {
	return FromSeq(func(yield func(R) bool) {
		acc := initial
		for x := range v.Seq() {
			acc = reducer(acc, x)
			if !yield(acc) {
				return
			}
		}
	})
}
