package session

// Notifier receives fire-and-forget side-effect triggers (haptics, sounds,
// notifications). Implementations must not block and their absence never
// affects session correctness.
type Notifier interface {
	SetCompleted()
	RestExpired()
	WorkoutFinished()
}

// NopNotifier ignores all triggers.
type NopNotifier struct{}

func (NopNotifier) SetCompleted()    {}
func (NopNotifier) RestExpired()     {}
func (NopNotifier) WorkoutFinished() {}
