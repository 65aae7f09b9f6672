package kernel

import "time"

// Clock abstracts wall-clock reads so latency measurement stays out of the
// pure decision path and tests can run without timing nondeterminism.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the real wall clock.
func SystemClock() Clock { return systemClock{} }
