// Package zoom tracks the zoom level of the main picture view.
package zoom

const (
	// DefaultLevel is the initial zoom level; the view is sized 4:3 from it.
	DefaultLevel = 200.0
	// DefaultStep is the change applied per zoom in/out.
	DefaultStep = 10.0
	MinLevel    = 20.0
	MaxLevel    = 1000.0
)

// Zoom holds the current zoom level. It is used from the UI thread only.
type Zoom struct {
	initial    float64
	level      float64
	step       float64
	lastSlider float64
	hasSlider  bool
}

// New creates a Zoom starting at level, changing by step.
// Non-positive values fall back to the defaults.
func New(level, step float64) *Zoom {
	if level <= 0 {
		level = DefaultLevel
	}
	if step <= 0 {
		step = DefaultStep
	}
	level = clamp(level)
	return &Zoom{initial: level, level: level, step: step}
}

func clamp(l float64) float64 {
	if l < MinLevel {
		return MinLevel
	}
	if l > MaxLevel {
		return MaxLevel
	}
	return l
}

// Level returns the current zoom level.
func (z *Zoom) Level() float64 { return z.level }

// In increases the level by one step.
func (z *Zoom) In() float64 {
	z.level = clamp(z.level + z.step)
	return z.level
}

// Out decreases the level by one step.
func (z *Zoom) Out() float64 {
	z.level = clamp(z.level - z.step)
	return z.level
}

// Reset restores the initial level.
func (z *Zoom) Reset() {
	z.level = z.initial
}

// FollowSlider steps the level in the direction the slider moved since the
// previous call. The first call only records the position. It reports
// whether the level changed.
func (z *Zoom) FollowSlider(v float64) bool {
	if !z.hasSlider {
		z.lastSlider, z.hasSlider = v, true
		return false
	}
	prev := z.level
	switch {
	case v > z.lastSlider:
		z.In()
	case v < z.lastSlider:
		z.Out()
	}
	z.lastSlider = v
	return z.level != prev
}

// Size returns the view size for the current level, in a 4:3 ratio.
func (z *Zoom) Size() (width, height float32) {
	return float32(z.level * 4), float32(z.level * 3)
}
