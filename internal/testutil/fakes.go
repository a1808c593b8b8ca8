package testutil

import (
	"sync"
	"time"

	"github.com/hupe1980/stockmesh/core"
)

// FixedRand is a core.Rand returning a fixed sequence of values, cycling when
// exhausted. It pins the pricing agent's randomized regimes in tests.
type FixedRand struct {
	mu     sync.Mutex
	values []float64
	next   int
}

// NewFixedRand creates a FixedRand over the given values. With no values it
// always returns 0.
func NewFixedRand(values ...float64) *FixedRand {
	return &FixedRand{values: values}
}

// Float64 returns the next value in the fixed sequence.
func (r *FixedRand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.values) == 0 {
		return 0
	}
	v := r.values[r.next%len(r.values)]
	r.next++
	return v
}

// ScheduledCall records one Schedule invocation observed by a
// RecordingScheduler.
type ScheduledCall struct {
	Delay  time.Duration
	Action core.Action
}

// RecordingScheduler is a core.Scheduler that records calls instead of firing
// them, letting agent tests assert on follow-up policy without timing.
type RecordingScheduler struct {
	mu    sync.Mutex
	calls []ScheduledCall
}

// NewRecordingScheduler creates an empty RecordingScheduler.
func NewRecordingScheduler() *RecordingScheduler {
	return &RecordingScheduler{}
}

// Schedule records the call.
func (s *RecordingScheduler) Schedule(delay time.Duration, action core.Action) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, ScheduledCall{Delay: delay, Action: action})
}

// Calls returns a copy of the recorded calls in schedule order.
func (s *RecordingScheduler) Calls() []ScheduledCall {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]ScheduledCall, len(s.calls))
	copy(out, s.calls)
	return out
}

// Reset clears the recorded calls.
func (s *RecordingScheduler) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = nil
}
