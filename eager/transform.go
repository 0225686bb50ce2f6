// Package eager holds eager, slice-based counterparts of the lazy
// transformations in vista/views. Every function here walks its input
// exactly once, allocates its full result up front, and returns plain
// slices; they are the baseline the lazy pipelines are benchmarked
// against.
package eager

// Filter returns a new slice holding the elements that satisfy the
// predicate. The input is not modified.
func Filter[T any](items []T, predicate func(T) bool) []T {
	if len(items) == 0 {
		return []T{}
	}
	kept := make([]T, 0, len(items)/2)
	for _, v := range items {
		if predicate(v) {
			kept = append(kept, v)
		}
	}
	return kept
}

// FilterInPlace filters without allocating, reusing the input's backing
// array. The input slice must not be used afterwards.
func FilterInPlace[T any](items []T, predicate func(T) bool) []T {
	n := 0
	for i, v := range items {
		if predicate(v) {
			if i != n {
				items[n] = v
			}
			n++
		}
	}
	// let the GC reclaim the dropped tail
	clear(items[n:])
	return items[:n]
}

// Map transforms a slice of T into a slice of R.
func Map[T, R any](items []T, transform func(T) R) []R {
	if len(items) == 0 {
		return []R{}
	}
	res := make([]R, len(items))
	for i, v := range items {
		res[i] = transform(v)
	}
	return res
}

// Reduce folds the slice into a single value, starting from initial.
func Reduce[T, R any](items []T, initial R, reducer func(R, T) R) R {
	acc := initial
	for _, v := range items {
		acc = reducer(acc, v)
	}
	return acc
}

// TryFilter is [Filter] with a fallible predicate; it fails fast on the
// first error.
func TryFilter[T any](items []T, predicate func(T) (bool, error)) ([]T, error) {
	kept := make([]T, 0, len(items)/2)
	for _, v := range items {
		ok, err := predicate(v)
		if err != nil {
			return nil, err
		}
		if ok {
			kept = append(kept, v)
		}
	}
	return kept, nil
}

// TryMap is [Map] with a fallible transform; it fails fast on the first
// error.
func TryMap[T, R any](items []T, transform func(T) (R, error)) ([]R, error) {
	res := make([]R, len(items))
	for i, v := range items {
		r, err := transform(v)
		if err != nil {
			return nil, err
		}
		res[i] = r
	}
	return res, nil
}
