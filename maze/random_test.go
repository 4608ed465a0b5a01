package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zyedidia/generic/mapset"
)

func TestRandom(t *testing.T) {
	r := NewRandom(42)

	t.Run("Int stays in range", func(t *testing.T) {
		seen := mapset.New[int]()
		for i := 0; i < 500; i++ {
			v := r.Int(4)
			assert.GreaterOrEqual(t, v, 0)
			assert.LessOrEqual(t, v, 4)
			seen.Put(v)
		}
		assert.Equal(t, 5, seen.Size())
		assert.Equal(t, 0, r.Int(0))
	})

	t.Run("IntExcluding", func(t *testing.T) {
		excluding := mapset.New[int]()
		excluding.Put(0)
		excluding.Put(2)
		for i := 0; i < 100; i++ {
			v := r.IntExcluding(3, excluding)
			assert.Contains(t, []int{1, 3}, v)
		}

		excluding.Put(1)
		excluding.Put(3)
		assert.Equal(t, -1, r.IntExcluding(3, excluding))
	})

	t.Run("Openings lie on the boundary", func(t *testing.T) {
		dims := Dimensions{4, 5, 6}
		for i := 0; i < 200; i++ {
			c := r.Opening(dims)
			assert.True(t, dims.Contains(c))
			assert.True(t, dims.OnBoundary(c))
		}
	})

	t.Run("OpeningExcluding never repeats", func(t *testing.T) {
		dims := Dimensions{2, 1}
		for i := 0; i < 50; i++ {
			assert.Equal(t, []int{1, 0}, r.OpeningExcluding(dims, []int{0, 0}))
		}
	})

	t.Run("Same seed same sequence", func(t *testing.T) {
		a, b := NewRandom(7), NewRandom(7)
		for i := 0; i < 20; i++ {
			assert.Equal(t, a.Int(1000), b.Int(1000))
		}
		assert.Equal(t, int64(7), a.Seed())
		assert.NotZero(t, NewRandom(0).Seed())
	})
}
