package common

import "math"

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Sign returns -1 for negative values and +1 otherwise, matching the
// convention that a zero axis keeps the positive facing.
func Sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

// SmoothDamp moves current toward target with a critically damped spring.
// velocity carries the spring state between calls.
func SmoothDamp(current, target float64, velocity *float64, smoothTime, dt float64) float64 {
	if dt <= 0 {
		return current
	}
	if smoothTime < 0.0001 {
		smoothTime = 0.0001
	}
	omega := 2 / smoothTime
	x := omega * dt
	exp := 1 / (1 + x + 0.48*x*x + 0.235*x*x*x)
	change := current - target
	temp := (*velocity + omega*change) * dt
	*velocity = (*velocity - omega*temp) * exp
	out := target + (change+temp)*exp

	// don't overshoot the target
	if (target-current > 0) == (out > target) {
		out = target
		*velocity = (out - target) / dt
	}
	if math.IsNaN(out) {
		return target
	}
	return out
}
