/*
Package views provides lazy, composable, non-owning views over Go 1.23+
iterators (iter.Seq).

A [View] is an O(1)-copyable handle describing a (possibly transformed)
sequence. Building a view or a pipeline does no element-level work;
elements are touched only when the final consumer traverses the result:

	nums := []int{2, 3, 5, 6, 7, 8, 9}
	odd := func(n int) bool { return n%2 == 1 }

	v := views.From(nums).Filter(odd).Take(2)
	for n := range v.Seq() {
		fmt.Println(n) // 3, 5
	}

# Adaptors

Every transformation exists in two forms:

  - Immediate: bind the view and the configuration at once, e.g.
    v.Take(2) or [NewTakeView].
  - Deferred: capture the configuration alone as an [Adaptor] closure and
    apply it later, possibly to several views, e.g.
    views.Pipe(v, views.Filter(odd), views.Take[int](2)).

Type-changing transformations ([Transform], [FlatMap], [Zip], [Chunk],
[Split], ...) are package-level functions, since Go methods cannot
introduce new type parameters.

# Ownership

Views borrow. [From] keeps a reference to the caller's slice, and the
caller must keep the backing data alive (and unmutated, if reproducible
traversal matters) for as long as the view is in use. [FromChan] adapts a
channel and is therefore single-pass.

# Concurrency

The core is single-threaded and pull-based. [ParallelTransform] and
[ParallelForEach] are concurrent consumers that fan a view out across
workers; see their documentation for ordering and cancellation behavior.
*/
package views
