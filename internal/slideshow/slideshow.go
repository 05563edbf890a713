// Package slideshow manages the automatic cycling of pictures.
package slideshow

import (
	"context"
	"sync"
	"time"
)

const (
	// DefaultInterval is the time between transitions when none is configured.
	DefaultInterval = 4 * time.Second
	// MinInterval and MaxInterval bound the speed slider.
	MinInterval = 500 * time.Millisecond
	MaxInterval = 15 * time.Second
)

// SlideshowManager handles the slideshow play/pause state and its interval.
type SlideshowManager struct {
	mu                 sync.Mutex
	isPaused           bool
	wasPlayingBeforeOp bool // Tracks if slideshow was playing before a temp pause
	interval           time.Duration
}

// NewSlideshowManager creates a new SlideshowManager.
// Interval is the time between automatic transitions.
func NewSlideshowManager(interval time.Duration) *SlideshowManager {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &SlideshowManager{
		interval: Clamp(interval),
	}
}

// Clamp bounds d to [MinInterval, MaxInterval].
func Clamp(d time.Duration) time.Duration {
	if d < MinInterval {
		return MinInterval
	}
	if d > MaxInterval {
		return MaxInterval
	}
	return d
}

// TogglePlayPause toggles the play/pause state.
func (sm *SlideshowManager) TogglePlayPause() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.isPaused = !sm.isPaused
	sm.wasPlayingBeforeOp = false // User toggle overrides any operation-specific state
}

// Pause forces the slideshow to pause.
// If forOperation is true, it remembers if the slideshow was playing.
func (sm *SlideshowManager) Pause(forOperation bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if forOperation {
		sm.wasPlayingBeforeOp = !sm.isPaused
	}
	sm.isPaused = true
}

// ResumeAfterOperation resumes the slideshow only if it was playing before Pause(true) was called.
func (sm *SlideshowManager) ResumeAfterOperation() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.wasPlayingBeforeOp {
		sm.isPaused = false
	}
	sm.wasPlayingBeforeOp = false
}

// IsPaused returns true if the slideshow is currently paused.
func (sm *SlideshowManager) IsPaused() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.isPaused
}

// Interval returns the configured slideshow interval.
func (sm *SlideshowManager) Interval() time.Duration {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.interval
}

// SetInterval changes the interval; a running loop picks it up on its next cycle.
func (sm *SlideshowManager) SetInterval(d time.Duration) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.interval = Clamp(d)
}

// Run calls advance once per interval until ctx is cancelled. The context
// and the paused flag are checked after every wait, so stopping never
// interrupts an advance already in progress.
func (sm *SlideshowManager) Run(ctx context.Context, advance func()) {
	for {
		timer := time.NewTimer(sm.Interval())
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
		if ctx.Err() != nil {
			return
		}
		if !sm.IsPaused() {
			advance()
		}
	}
}
