package views_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vista/views"
)

func TestTakeView(t *testing.T) {
	input := []int{10, 20, 30, 40, 50}

	t.Run("PrefixWithinLength", func(t *testing.T) {
		for count := 1; count <= len(input); count++ {
			got := views.Collect(views.From(input).Take(count))
			require.Equal(t, input[:count], got, "count=%d", count)
		}
	})

	t.Run("CountExceedsLength", func(t *testing.T) {
		got := views.Collect(views.From(input).Take(99))
		assert.Equal(t, input, got)
	})

	t.Run("ZeroCountTouchesNothing", func(t *testing.T) {
		accessed := 0
		source := counting(input, &accessed)

		got := views.Collect(source.Take(0))
		assert.Empty(t, got)
		assert.Zero(t, accessed)
	})

	t.Run("NegativeCountIsEmpty", func(t *testing.T) {
		got := views.Collect(views.From(input).Take(-3))
		assert.Empty(t, got)
	})

	t.Run("EmptyBase", func(t *testing.T) {
		got := views.Collect(views.From([]int{}).Take(3))
		assert.Empty(t, got)
	})

	t.Run("ZeroValueIsEmptyView", func(t *testing.T) {
		var tv views.TakeView[int]
		assert.Empty(t, views.Collect(tv.View()))
	})

	t.Run("Accessors", func(t *testing.T) {
		tv := views.NewTakeView(views.From(input), 2)
		assert.Equal(t, 2, tv.Count())
		assert.Equal(t, input, views.Collect(tv.Base()))
	})

	t.Run("RetraversalIsIdempotent", func(t *testing.T) {
		v := views.From(input).Take(3)
		first := views.Collect(v)
		second := views.Collect(v)
		assert.Equal(t, first, second)
	})
}

func TestTakeLaziness(t *testing.T) {
	input := []int{1, 2, 3, 4, 5, 6, 7}

	t.Run("ConstructionTouchesNoElements", func(t *testing.T) {
		accessed := 0
		v := counting(input, &accessed).Take(3)
		_ = v.Pipe(views.Take[int](2), views.Filter(func(int) bool { return true }))
		assert.Zero(t, accessed)
	})

	t.Run("TraversalPullsExactlyCount", func(t *testing.T) {
		accessed := 0
		got := views.Collect(counting(input, &accessed).Take(2))
		assert.Equal(t, []int{1, 2}, got)
		assert.Equal(t, 2, accessed, "take must not pull the element after the cut")
	})

	t.Run("BoundsAnUnboundedBase", func(t *testing.T) {
		got := views.Collect(views.Iota(1).Take(5))
		assert.Equal(t, []int{1, 2, 3, 4, 5}, got)
	})
}

func TestTakeComposition(t *testing.T) {
	input := []int{1, 2, 3, 4, 5, 6}

	t.Run("ChainedTakesEqualMin", func(t *testing.T) {
		for _, counts := range [][2]int{{2, 4}, {4, 2}, {3, 3}, {0, 5}, {6, 99}} {
			a, b := counts[0], counts[1]
			chained := views.Pipe(views.From(input), views.Take[int](a), views.Take[int](b))
			direct := views.From(input).Take(min(a, b))
			require.True(t, views.Equal(chained, direct), "a=%d b=%d", a, b)
		}
	})

	t.Run("ClosureReusableAcrossViews", func(t *testing.T) {
		take2 := views.Take[int](2)

		first := take2(views.From([]int{1, 2, 3}))
		second := take2(views.From([]int{9, 8}))
		third := take2(views.From([]int{7}))

		assert.Equal(t, []int{1, 2}, views.Collect(first))
		assert.Equal(t, []int{9, 8}, views.Collect(second))
		assert.Equal(t, []int{7}, views.Collect(third))
	})

	t.Run("OddNumbersScenario", func(t *testing.T) {
		nums := []int{2, 3, 5, 6, 7, 8, 9}
		odd := func(n int) bool { return n%2 == 1 }

		got := views.Collect(views.From(nums).Filter(odd).Take(2))
		assert.Equal(t, []int{3, 5}, got)
	})
}

// counting wraps a slice view so each element access increments *hits.
func counting(items []int, hits *int) views.View[int] {
	return views.From(items).Peek(func(int) { *hits++ })
}
