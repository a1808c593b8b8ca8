package schedule

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/stockmesh/core"
	"github.com/hupe1980/stockmesh/internal/testutil"
)

// Interface compliance (compile-time assertion)
var (
	_ core.Scheduler = (*TimerScheduler)(nil)
	_ core.Clock     = RealClock{}
)

// firedRecorder collects dispatched actions across goroutines.
type firedRecorder struct {
	mu    sync.Mutex
	fired []core.Action
}

func (r *firedRecorder) handler(a core.Action) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fired = append(r.fired, a)
}

func (r *firedRecorder) snapshot() []core.Action {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]core.Action, len(r.fired))
	copy(out, r.fired)
	return out
}

func (r *firedRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.fired)
}

func TestTimerScheduler_FiresAfterDelay(t *testing.T) {
	clock := testutil.NewManualClock(time.Unix(1_700_000_000, 0))
	rec := &firedRecorder{}

	s := New(rec.handler, func(o *Options) { o.Clock = clock })
	s.Start()
	defer s.Stop()

	s.Schedule(time.Second, core.Action{Kind: core.KindRestock, ProductID: 1})

	// Wait until the dispatcher is parked on the clock, then advance.
	require.Eventually(t, func() bool { return clock.Waiters() > 0 }, 2*time.Second, time.Millisecond)
	assert.Equal(t, 0, rec.count(), "must not fire before the delay elapses")

	clock.Advance(time.Second)
	require.Eventually(t, func() bool { return rec.count() == 1 }, 2*time.Second, time.Millisecond)

	fired := rec.snapshot()
	assert.Equal(t, core.KindRestock, fired[0].Kind)
	assert.Equal(t, 1, fired[0].ProductID)
	assert.Equal(t, 0, s.Pending())
}

func TestTimerScheduler_FiresOnce(t *testing.T) {
	clock := testutil.NewManualClock(time.Unix(1_700_000_000, 0))
	rec := &firedRecorder{}

	s := New(rec.handler, func(o *Options) { o.Clock = clock })
	s.Start()
	defer s.Stop()

	s.Schedule(time.Second, core.Action{Kind: core.KindDeliver, ProductID: 3})

	require.Eventually(t, func() bool { return clock.Waiters() > 0 }, 2*time.Second, time.Millisecond)
	clock.Advance(10 * time.Second)
	require.Eventually(t, func() bool { return rec.count() == 1 }, 2*time.Second, time.Millisecond)

	clock.Advance(10 * time.Second)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 1, rec.count(), "a scheduled action fires exactly once")
}

func TestTimerScheduler_SameDelayFiresInScheduleOrder(t *testing.T) {
	clock := testutil.NewManualClock(time.Unix(1_700_000_000, 0))
	rec := &firedRecorder{}

	s := New(rec.handler, func(o *Options) { o.Clock = clock })

	// Enqueue before Start so all three share the same fire time and the
	// dispatcher drains them in one pass.
	s.Schedule(time.Second, core.Action{Kind: core.KindRestock, ProductID: 1})
	s.Schedule(time.Second, core.Action{Kind: core.KindReorder, ProductID: 2})
	s.Schedule(time.Second, core.Action{Kind: core.KindDeliver, ProductID: 3})

	s.Start()
	defer s.Stop()

	require.Eventually(t, func() bool { return clock.Waiters() > 0 }, 2*time.Second, time.Millisecond)
	clock.Advance(time.Second)
	require.Eventually(t, func() bool { return rec.count() == 3 }, 2*time.Second, time.Millisecond)

	fired := rec.snapshot()
	assert.Equal(t, core.KindRestock, fired[0].Kind)
	assert.Equal(t, core.KindReorder, fired[1].Kind)
	assert.Equal(t, core.KindDeliver, fired[2].Kind)
}

func TestTimerScheduler_ShorterDelayOvertakes(t *testing.T) {
	clock := testutil.NewManualClock(time.Unix(1_700_000_000, 0))
	rec := &firedRecorder{}

	s := New(rec.handler, func(o *Options) { o.Clock = clock })
	s.Schedule(3*time.Second, core.Action{Kind: core.KindDeliver, ProductID: 1})
	s.Schedule(time.Second, core.Action{Kind: core.KindRestock, ProductID: 1})

	s.Start()
	defer s.Stop()

	require.Eventually(t, func() bool { return clock.Waiters() > 0 }, 2*time.Second, time.Millisecond)
	clock.Advance(time.Second)
	require.Eventually(t, func() bool { return rec.count() == 1 }, 2*time.Second, time.Millisecond)
	assert.Equal(t, core.KindRestock, rec.snapshot()[0].Kind)
	assert.Equal(t, 1, s.Pending())

	require.Eventually(t, func() bool { return clock.Waiters() > 0 }, 2*time.Second, time.Millisecond)
	clock.Advance(2 * time.Second)
	require.Eventually(t, func() bool { return rec.count() == 2 }, 2*time.Second, time.Millisecond)
	assert.Equal(t, core.KindDeliver, rec.snapshot()[1].Kind)
}

// A handler scheduling a follow-up must not deadlock the dispatcher; this is
// how restock failure escalates to reorder and reorder chains into delivery.
func TestTimerScheduler_HandlerMayReschedule(t *testing.T) {
	clock := testutil.NewManualClock(time.Unix(1_700_000_000, 0))
	rec := &firedRecorder{}

	var s *TimerScheduler
	handler := func(a core.Action) {
		rec.handler(a)
		if a.Kind == core.KindReorder {
			s.Schedule(3*time.Second, core.Action{Kind: core.KindDeliver, ProductID: a.ProductID})
		}
	}

	s = New(handler, func(o *Options) { o.Clock = clock })
	s.Start()
	defer s.Stop()

	s.Schedule(time.Second, core.Action{Kind: core.KindReorder, ProductID: 5})

	require.Eventually(t, func() bool { return clock.Waiters() > 0 }, 2*time.Second, time.Millisecond)
	clock.Advance(time.Second)
	require.Eventually(t, func() bool { return rec.count() == 1 }, 2*time.Second, time.Millisecond)

	require.Eventually(t, func() bool { return clock.Waiters() > 0 }, 2*time.Second, time.Millisecond)
	clock.Advance(3 * time.Second)
	require.Eventually(t, func() bool { return rec.count() == 2 }, 2*time.Second, time.Millisecond)

	fired := rec.snapshot()
	assert.Equal(t, core.KindReorder, fired[0].Kind)
	assert.Equal(t, core.KindDeliver, fired[1].Kind)
}

func TestTimerScheduler_StopDropsPending(t *testing.T) {
	clock := testutil.NewManualClock(time.Unix(1_700_000_000, 0))
	rec := &firedRecorder{}

	s := New(rec.handler, func(o *Options) { o.Clock = clock })
	s.Start()
	s.Schedule(time.Hour, core.Action{Kind: core.KindRestock, ProductID: 1})
	s.Stop()

	assert.Equal(t, 0, rec.count())

	// Stop is idempotent.
	s.Stop()
}
