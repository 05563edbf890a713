package slideshow

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSlideshowManagerInterval(t *testing.T) {
	assert.Equal(t, DefaultInterval, NewSlideshowManager(0).Interval())
	assert.Equal(t, DefaultInterval, NewSlideshowManager(-time.Second).Interval())
	assert.Equal(t, MinInterval, NewSlideshowManager(time.Millisecond).Interval())
	assert.Equal(t, MaxInterval, NewSlideshowManager(time.Hour).Interval())
	assert.Equal(t, 2*time.Second, NewSlideshowManager(2*time.Second).Interval())
	assert.False(t, NewSlideshowManager(0).IsPaused(), "starts playing")
}

func TestSetInterval(t *testing.T) {
	sm := NewSlideshowManager(0)
	sm.SetInterval(7 * time.Second)
	assert.Equal(t, 7*time.Second, sm.Interval())
	sm.SetInterval(0)
	assert.Equal(t, MinInterval, sm.Interval())
}

func TestPauseForOperation(t *testing.T) {
	sm := NewSlideshowManager(0)

	sm.Pause(true)
	assert.True(t, sm.IsPaused())
	sm.ResumeAfterOperation()
	assert.False(t, sm.IsPaused(), "was playing, so resumes")

	sm.TogglePlayPause()
	require.True(t, sm.IsPaused())
	sm.Pause(true)
	sm.ResumeAfterOperation()
	assert.True(t, sm.IsPaused(), "was paused, so stays paused")

	sm.TogglePlayPause()
	sm.Pause(true)
	sm.TogglePlayPause() // user toggle clears the remembered state
	sm.Pause(false)
	sm.ResumeAfterOperation()
	assert.True(t, sm.IsPaused())
}

func TestRunAdvancesUntilCancelled(t *testing.T) {
	sm := NewSlideshowManager(MinInterval)
	sm.mu.Lock()
	sm.interval = 5 * time.Millisecond // below the UI minimum to keep the test fast
	sm.mu.Unlock()

	ctx, cancel := context.WithCancel(context.Background())
	var calls atomic.Int32
	done := make(chan struct{})
	go func() {
		sm.Run(ctx, func() { calls.Add(1) })
		close(done)
	}()

	require.Eventually(t, func() bool { return calls.Load() >= 3 }, 2*time.Second, time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
	stopped := calls.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, stopped, calls.Load(), "no advances after stop")
}

func TestRunSkipsWhilePaused(t *testing.T) {
	sm := NewSlideshowManager(0)
	sm.mu.Lock()
	sm.interval = 2 * time.Millisecond
	sm.mu.Unlock()
	sm.Pause(false)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	var calls atomic.Int32
	sm.Run(ctx, func() { calls.Add(1) })
	assert.Zero(t, calls.Load())
}
