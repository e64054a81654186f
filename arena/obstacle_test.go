package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoolRoundTrip(t *testing.T) {
	pool := NewObstaclePool()

	o := pool.Acquire(0.5, 0.1)
	pool.Release(o)
	o2 := pool.Acquire(0.9, 0.03)

	assert.Same(t, o, o2)
	assert.Equal(t, 0.9, o2.Distance)
	assert.Equal(t, 0.03, o2.Height)
	assert.Equal(t, 1, pool.Allocated())
	assert.Equal(t, 0, pool.Free())
}

func TestPoolBoundedUnderMatchedChurn(t *testing.T) {
	pool := NewObstaclePool()

	for tick := 0; tick < 1000; tick++ {
		batch := make([]*Obstacle, 0, 8)
		for i := 0; i < 8; i++ {
			batch = append(batch, pool.Acquire(1, 0.05))
		}
		pool.ReleaseAll(batch)
	}

	assert.Equal(t, 8, pool.Allocated())
	assert.Equal(t, 8, pool.Free())
}

func TestPoolReleaseNil(t *testing.T) {
	pool := NewObstaclePool()
	pool.Release(nil)
	assert.Equal(t, 0, pool.Free())
}

func TestObstacleStraddles(t *testing.T) {
	o := &Obstacle{Distance: 0.04, Height: 0.02}

	assert.True(t, o.Straddles(0.043))
	assert.True(t, o.Straddles(0.04))
	assert.False(t, o.Straddles(0.06))
	assert.False(t, o.Straddles(0.039))
	assert.InDelta(t, 0.06, o.Trailing(), 1e-12)
}
