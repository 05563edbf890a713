package zoom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaults(t *testing.T) {
	z := New(0, 0)
	assert.Equal(t, DefaultLevel, z.Level())
	w, h := z.Size()
	assert.Equal(t, float32(800), w)
	assert.Equal(t, float32(600), h)

	assert.Equal(t, MaxLevel, New(5000, 1).Level())
}

func TestInOutClamp(t *testing.T) {
	z := New(30, 10)
	assert.Equal(t, 40.0, z.In())
	assert.Equal(t, 30.0, z.Out())
	assert.Equal(t, MinLevel, z.Out())
	assert.Equal(t, MinLevel, z.Out(), "clamped at the minimum")

	z = New(MaxLevel-5, 10)
	assert.Equal(t, MaxLevel, z.In())
}

func TestReset(t *testing.T) {
	z := New(100, 10)
	z.In()
	z.In()
	z.Reset()
	assert.Equal(t, 100.0, z.Level())
}

func TestFollowSlider(t *testing.T) {
	z := New(200, 10)

	assert.False(t, z.FollowSlider(25), "first position is only recorded")
	assert.Equal(t, 200.0, z.Level())

	assert.True(t, z.FollowSlider(30))
	assert.Equal(t, 210.0, z.Level())
	assert.True(t, z.FollowSlider(31))
	assert.Equal(t, 220.0, z.Level())
	assert.True(t, z.FollowSlider(10))
	assert.Equal(t, 210.0, z.Level())
	assert.False(t, z.FollowSlider(10))
	assert.Equal(t, 210.0, z.Level())
}
