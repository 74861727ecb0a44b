// Package shake computes a decaying screen offset for impact feedback.
// Unlike the animation registry this is a single effect, not a keyed
// collection: one trigger, one offset, read every frame until it dies out.
package shake

import (
	"sync"
	"time"

	"github.com/lixenwraith/termfx/anim"
)

// minDuration guards progress math against zero-length triggers
const minDuration = time.Millisecond

// Shaker produces jittered cell offsets that decay to zero
// Trigger and Offset are safe to call from different goroutines
type Shaker struct {
	mu        sync.Mutex
	start     time.Time
	duration  time.Duration
	intensity float64
	rand      xorshift

	// now is the clock source, swapped in tests
	now func() time.Time
}

// NewShaker creates an idle shaker
func NewShaker() *Shaker {
	return &Shaker{
		rand: xorshift{state: uint64(time.Now().UnixNano()) | 1},
		now:  time.Now,
	}
}

// Trigger starts a shake of the given cell intensity and duration
// A trigger during an active shake keeps whichever amplitude is larger
// at this instant, so a big hit is never softened by a small one
func (s *Shaker) Trigger(intensity float64, duration time.Duration) {
	if intensity <= 0 {
		return
	}
	if duration < minDuration {
		duration = minDuration
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if current := s.amplitudeLocked(s.now()); current > intensity {
		return
	}
	s.start = s.now()
	s.duration = duration
	s.intensity = intensity
}

// Offset returns the current displacement in cells
// (0, 0) once the shake has decayed
func (s *Shaker) Offset() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	amp := s.amplitudeLocked(s.now())
	if amp <= 0 {
		return 0, 0
	}

	dx := s.rand.rangeInt(amp)
	dy := s.rand.rangeInt(amp)
	return dx, dy
}

// Active reports whether the shake still has amplitude
func (s *Shaker) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.amplitudeLocked(s.now()) > 0
}

// Stop kills the shake immediately
func (s *Shaker) Stop() {
	s.mu.Lock()
	s.intensity = 0
	s.mu.Unlock()
}

// amplitudeLocked returns the decayed amplitude at now; caller holds mu
// Quadratic falloff reads as a sharp hit that settles smoothly
func (s *Shaker) amplitudeLocked(now time.Time) float64 {
	if s.intensity <= 0 || s.duration <= 0 {
		return 0
	}
	t := anim.Clamp01(float64(now.Sub(s.start)) / float64(s.duration))
	if t >= 1 {
		return 0
	}
	falloff := (1 - t) * (1 - t)
	return s.intensity * falloff
}

// xorshift is a tiny non-cryptographic generator for jitter
type xorshift struct {
	state uint64
}

func (r *xorshift) next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// rangeInt returns a jitter offset in [-amp, amp]
func (r *xorshift) rangeInt(amp float64) int {
	span := int(amp)*2 + 1
	return int(r.next()%uint64(span)) - int(amp)
}
