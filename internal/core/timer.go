package core

import "time"

// FramePacer holds a loop to a steady frames-per-second rate for hosts that
// do not pace themselves.
type FramePacer struct {
	step time.Duration
	next time.Time

	now   func() time.Time
	sleep func(time.Duration)
}

// NewFramePacer constructs a FramePacer targeting the given rate.
func NewFramePacer(rate int) *FramePacer {
	fp := &FramePacer{now: time.Now, sleep: time.Sleep}
	fp.SetTargetRate(rate)
	return fp
}

// SetTargetRate changes the frame rate. It is safe to call from the main loop.
func (f *FramePacer) SetTargetRate(rate int) {
	if rate <= 0 {
		rate = 60
	}
	f.step = time.Second / time.Duration(rate)
	// Re-anchor so a slower rate takes effect on the very next frame.
	f.next = time.Time{}
}

// Interval returns the current frame duration.
func (f *FramePacer) Interval() time.Duration { return f.step }

// Wait blocks until the next frame is due. Frames that overran their slot
// are not made up.
func (f *FramePacer) Wait() {
	now := f.now()
	if f.next.IsZero() {
		f.next = now
	}
	f.next = f.next.Add(f.step)
	if d := f.next.Sub(now); d > 0 {
		f.sleep(d)
		return
	}
	f.next = now
}
