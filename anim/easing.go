package anim

import "github.com/fogleman/ease"

// Easing selects the curve applied to linear progress
type Easing uint8

const (
	Linear        Easing = iota // no shaping
	EaseIn                      // cubic, slow start
	EaseOut                     // cubic, slow finish
	EaseInOut                   // cubic, slow both ends
	EaseOutBack                 // overshoots the target before settling
	EaseInOutSine               // gentle sine, slow both ends
)

// Func returns the shaping function for the curve
// Unknown values shape as Linear
func (e Easing) Func() func(float64) float64 {
	switch e {
	case EaseIn:
		return ease.InCubic
	case EaseOut:
		return ease.OutCubic
	case EaseInOut:
		return ease.InOutCubic
	case EaseOutBack:
		return ease.OutBack
	case EaseInOutSine:
		return ease.InOutSine
	default:
		return ease.Linear
	}
}

func (e Easing) String() string {
	switch e {
	case Linear:
		return "linear"
	case EaseIn:
		return "ease-in"
	case EaseOut:
		return "ease-out"
	case EaseInOut:
		return "ease-in-out"
	case EaseOutBack:
		return "ease-out-back"
	case EaseInOutSine:
		return "ease-in-out-sine"
	default:
		return "unknown"
	}
}

// Lerp interpolates linearly between a and b
// t outside [0,1] extrapolates; callers clamp when that matters
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 clamps v to [0,1]
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Smooth moves current toward target by rate in [0,1] per call
// Frame-rate dependent exponential approach for non-keyed effects
func Smooth(current, target, rate float64) float64 {
	return current + (target-current)*Clamp01(rate)
}
