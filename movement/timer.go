package movement

// timerEpsilon absorbs float drift so a window of N*dt lasts exactly N steps.
const timerEpsilon = 1e-9

// Timer is a countdown in seconds advanced explicitly by the fixed step.
type Timer struct {
	remaining float64
}

func (t *Timer) Start(seconds float64) {
	if seconds < 0 {
		seconds = 0
	}
	t.remaining = seconds
}

func (t *Timer) Stop() {
	t.remaining = 0
}

func (t *Timer) Active() bool {
	return t.remaining > 0
}

func (t *Timer) Remaining() float64 {
	return t.remaining
}

// Tick advances the countdown by dt, flooring at zero. It returns true only
// on the tick that takes an active timer to zero.
func (t *Timer) Tick(dt float64) bool {
	if t.remaining <= 0 {
		return false
	}
	t.remaining -= dt
	if t.remaining <= timerEpsilon {
		t.remaining = 0
		return true
	}
	return false
}
