package session

// RestTimer is a one-second countdown between sets. It holds no goroutine
// and performs no I/O; an external scheduler drives Tick. The timer's
// lifecycle is independent of the session's exercises.
type RestTimer struct {
	Active       bool   `json:"isActive"`
	DurationSec  int    `json:"duration"`
	RemainingSec int    `json:"remaining"`
	ExerciseID   string `json:"exerciseId,omitempty"`
}

// Start arms the timer for durationSec seconds, optionally tagged with the
// exercise the rest belongs to.
func (t *RestTimer) Start(durationSec int, exerciseID string) {
	t.DurationSec = durationSec
	t.RemainingSec = durationSec
	t.ExerciseID = exerciseID
	t.Active = durationSec > 0
}

// Tick advances the countdown by one second. It reports true exactly once,
// on the tick that reaches zero: callers react to that transition (sound,
// vibration) and must not see it again.
func (t *RestTimer) Tick() bool {
	if !t.Active {
		return false
	}
	t.RemainingSec--
	if t.RemainingSec <= 0 {
		t.RemainingSec = 0
		t.Active = false
		return true
	}
	return false
}

// Adjust adds deltaSec to the remaining time, clamped at zero. Running
// state is unchanged; a timer adjusted to zero expires on its next tick.
func (t *RestTimer) Adjust(deltaSec int) {
	t.RemainingSec += deltaSec
	if t.RemainingSec < 0 {
		t.RemainingSec = 0
	}
}

// Pause stops the countdown without losing the remaining time.
func (t *RestTimer) Pause() {
	t.Active = false
}

// Reset returns the timer to its full duration, stopped.
func (t *RestTimer) Reset() {
	t.RemainingSec = t.DurationSec
	t.Active = false
}

// Skip ends the rest immediately. Unlike natural expiry, Skip never yields
// the expired signal — downstream treats a user skip differently from a
// completed countdown.
func (t *RestTimer) Skip() {
	t.RemainingSec = 0
	t.Active = false
}

// Manager-level timer access. The timer shares the manager's lock so UI
// calls interleave safely with session mutations.

// StartRest arms the rest timer.
func (m *Manager) StartRest(durationSec int, exerciseID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if durationSec <= 0 {
		durationSec = m.defaultRestSec
	}
	m.timer.Start(durationSec, exerciseID)
}

// TickRest advances the timer one second and fires the rest-expired
// trigger on the expiry transition. Returns true on that transition.
func (m *Manager) TickRest() bool {
	m.mu.Lock()
	expired := m.timer.Tick()
	m.mu.Unlock()

	if expired {
		m.notify.RestExpired()
	}
	return expired
}

// AdjustRest adds deltaSec to the remaining rest, clamped at zero.
func (m *Manager) AdjustRest(deltaSec int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.timer.Adjust(deltaSec)
}

// PauseRest stops the countdown, keeping the remaining time.
func (m *Manager) PauseRest() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.timer.Pause()
}

// ResetRest restores the full duration, stopped.
func (m *Manager) ResetRest() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.timer.Reset()
}

// SkipRest ends the rest without the expired signal.
func (m *Manager) SkipRest() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.timer.Skip()
}

// RestState returns a copy of the current timer state.
func (m *Manager) RestState() RestTimer {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.timer
}
