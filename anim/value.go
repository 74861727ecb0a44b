package anim

import (
	"sync/atomic"
	"time"
)

// minDuration is the floor applied to requested durations so evaluation
// never divides by zero
const minDuration = time.Millisecond

// timedValue is one running interpolation
// from/to/start/duration/easing are immutable after creation; completed
// and readyToRemove only ever transition false to true
type timedValue struct {
	from     float64
	to       float64
	start    time.Time
	duration time.Duration
	easing   Easing

	completed     atomic.Bool
	readyToRemove atomic.Bool
}

func newTimedValue(now time.Time, from, to float64, duration time.Duration, easing Easing) *timedValue {
	if duration < minDuration {
		duration = minDuration
	}
	return &timedValue{
		from:     from,
		to:       to,
		start:    now,
		duration: duration,
		easing:   easing,
	}
}

// eval returns the interpolated value at now
// Once elapsed reaches the duration it latches completed and returns the
// target exactly, so the final frame never shows floating point drift
func (v *timedValue) eval(now time.Time) float64 {
	elapsed := now.Sub(v.start)
	if elapsed >= v.duration {
		v.completed.Store(true)
		return v.to
	}
	t := float64(elapsed) / float64(v.duration)
	return v.from + (v.to-v.from)*v.easing.Func()(t)
}
