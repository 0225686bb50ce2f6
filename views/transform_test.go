package views_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vista/views"
)

func TestTransform(t *testing.T) {
	input := views.From([]int{1, 2, 3})

	t.Run("MapsElements", func(t *testing.T) {
		got := views.Collect(views.Transform(input, strconv.Itoa))
		assert.Equal(t, []string{"1", "2", "3"}, got)
	})

	t.Run("StaysLazy", func(t *testing.T) {
		calls := 0
		v := views.Transform(input, func(n int) int { calls++; return n * 2 })
		assert.Zero(t, calls)
		_, _ = views.First(v)
		assert.Equal(t, 1, calls)
	})

	t.Run("DoubledOddNumbers", func(t *testing.T) {
		// the before/after contrast case: filter odd, double
		double := func(n int) int { return n * 2 }
		odd := func(n int) bool { return n%2 == 1 }
		run := func(in []int) []int {
			return views.Collect(views.Transform(views.From(in).Filter(odd), double))
		}

		assert.Equal(t, []int{6, 10}, run([]int{2, 3, 4, 5, 6}))
		assert.Empty(t, run([]int{}))
		assert.Empty(t, run([]int{0, 0}))
		assert.Equal(t, []int{2, 18}, run([]int{1, 9}))
	})
}

func TestTryTransform(t *testing.T) {
	boom := errors.New("boom")

	t.Run("PropagatesFirstError", func(t *testing.T) {
		seq := views.TryTransform(views.From([]int{1, 2, 3}), func(n int) (int, error) {
			if n == 2 {
				return 0, boom
			}
			return n * 10, nil
		})

		var got []int
		var gotErr error
		for v, err := range seq {
			if err != nil {
				gotErr = err
				break
			}
			got = append(got, v)
		}
		require.ErrorIs(t, gotErr, boom)
		assert.Equal(t, []int{10}, got)
	})
}

func TestCombinators(t *testing.T) {
	t.Run("FlatMap", func(t *testing.T) {
		got := views.Collect(views.FlatMap(views.From([]int{1, 3}), func(n int) views.View[int] {
			return views.Of(n, n+1)
		}))
		assert.Equal(t, []int{1, 2, 3, 4}, got)
	})

	t.Run("Concat", func(t *testing.T) {
		got := views.Collect(views.Concat(views.Of(1, 2), views.Of(3), views.Of[int]()))
		assert.Equal(t, []int{1, 2, 3}, got)
	})

	t.Run("JoinInvertsChunk", func(t *testing.T) {
		v := views.From([]int{1, 2, 3, 4, 5})
		joined := views.Join(views.Chunk(v, 2))
		assert.True(t, views.Equal(v, joined))
	})

	t.Run("Split", func(t *testing.T) {
		segments := views.Collect(views.Split(views.From([]int{1, 2, 0, 0, 3}), 0))
		require.Len(t, segments, 3)
		assert.Equal(t, []int{1, 2}, segments[0])
		assert.Empty(t, segments[1])
		assert.Equal(t, []int{3}, segments[2])

		empty := views.Collect(views.Split(views.From([]int{}), 0))
		require.Len(t, empty, 1)
		assert.Empty(t, empty[0])
	})

	t.Run("Zip", func(t *testing.T) {
		got := views.Collect(views.Zip(views.Of(1, 2, 3), views.Of("a", "b")))
		assert.Equal(t, []views.Pair[int, string]{{1, "a"}, {2, "b"}}, got)
	})

	t.Run("ZipLongest", func(t *testing.T) {
		got := views.Collect(views.ZipLongest(views.Of(1, 2, 3), views.Of("a"), 0, "-"))
		assert.Equal(t, []views.Pair[int, string]{{1, "a"}, {2, "-"}, {3, "-"}}, got)
	})

	t.Run("Enumerate", func(t *testing.T) {
		var idxs []int
		var vals []string
		for i, s := range views.Enumerate(views.Of("x", "y")) {
			idxs = append(idxs, i)
			vals = append(vals, s)
		}
		assert.Equal(t, []int{0, 1}, idxs)
		assert.Equal(t, []string{"x", "y"}, vals)
	})

	t.Run("ChunkLastShort", func(t *testing.T) {
		got := views.Collect(views.Chunk(views.Of(1, 2, 3), 2))
		assert.Equal(t, [][]int{{1, 2}, {3}}, got)
	})

	t.Run("Scan", func(t *testing.T) {
		sums := views.Collect(views.Scan(views.Of(1, 2, 3), 0, func(acc, n int) int { return acc + n }))
		assert.Equal(t, []int{1, 3, 6}, sums)
	})
}
