package position_test

import (
	"math/rand"
	"testing"

	"imgsort/internal/position"

	"github.com/stretchr/testify/assert"
)

func assertValid(t *testing.T, c *position.Counter) {
	t.Helper()
	if c.Total() == 0 {
		assert.Equal(t, 0, c.Current())
		return
	}
	assert.GreaterOrEqual(t, c.Current(), 1)
	assert.LessOrEqual(t, c.Current(), c.Total())
}

func TestReset(t *testing.T) {
	c := position.New(0)
	assert.Equal(t, 0, c.Current())
	assert.True(t, c.Empty())
	assert.Equal(t, "File - / -", c.String())

	c.Reset(5)
	assert.Equal(t, 1, c.Current())
	assert.Equal(t, 5, c.Total())
	assert.Equal(t, "File 1 / 5", c.String())

	c.Reset(-3)
	assert.Equal(t, 0, c.Current())
	assert.Equal(t, 0, c.Total())
}

func TestWraparound(t *testing.T) {
	c := position.New(3)
	c.Next()
	c.Next()
	assert.Equal(t, 3, c.Current())
	c.Next()
	assert.Equal(t, 1, c.Current())
	c.Prev()
	assert.Equal(t, 3, c.Current())
}

func TestEmptyNavigationIsNoop(t *testing.T) {
	c := position.New(0)
	c.Next()
	c.Prev()
	assert.Equal(t, 0, c.Current())
	assert.Equal(t, 0, c.Total())
}

func TestHoldAfterRemoval(t *testing.T) {
	t.Run("last item wraps to new last", func(t *testing.T) {
		c := position.New(3)
		c.Prev() // current = 3
		c.HoldAfterRemoval(2)
		assert.Equal(t, 2, c.Current())
		assert.Equal(t, 2, c.Total())
	})

	t.Run("middle item holds", func(t *testing.T) {
		c := position.New(3)
		c.Next() // current = 2
		c.HoldAfterRemoval(2)
		assert.Equal(t, 2, c.Current())
	})

	t.Run("only item empties", func(t *testing.T) {
		c := position.New(1)
		c.HoldAfterRemoval(0)
		assert.Equal(t, 0, c.Current())
		assert.Equal(t, 0, c.Total())
		assert.True(t, c.Empty())
	})
}

func TestRandomWalkStaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for total := 0; total <= 7; total++ {
		c := position.New(total)
		for i := 0; i < 200; i++ {
			if rng.Intn(2) == 0 {
				c.Next()
			} else {
				c.Prev()
			}
			assertValid(t, c)
		}
	}
}

func TestNextPrevAreInverse(t *testing.T) {
	for total := 1; total <= 5; total++ {
		for start := 1; start <= total; start++ {
			c := position.New(total)
			for c.Current() != start {
				c.Next()
			}
			c.Next()
			c.Prev()
			assert.Equal(t, start, c.Current())
			c.Prev()
			c.Next()
			assert.Equal(t, start, c.Current())
		}
	}
}
