package schedule

import (
	"container/heap"
	"sync"
	"time"

	"github.com/hupe1980/stockmesh/core"
)

// item is one pending scheduled action. seq breaks fire-time ties so that two
// actions scheduled with the same delay fire in schedule order.
type item struct {
	fireAt time.Time
	seq    uint64
	action core.Action
}

// pendingHeap is a min-heap ordered by (fireAt, seq).
type pendingHeap []*item

func (h pendingHeap) Len() int { return len(h) }

func (h pendingHeap) Less(i, j int) bool {
	if h[i].fireAt.Equal(h[j].fireAt) {
		return h[i].seq < h[j].seq
	}
	return h[i].fireAt.Before(h[j].fireAt)
}

func (h pendingHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *pendingHeap) Push(x any) { *h = append(*h, x.(*item)) }

func (h *pendingHeap) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return it
}

// Options configures a TimerScheduler instance.
type Options struct {
	// Clock supplies time to the dispatcher. Defaults to RealClock; tests
	// inject a manual clock for deterministic firing.
	Clock core.Clock
}

// TimerScheduler is the DelayedActionScheduler implementation: Schedule
// enqueues a one-shot action and a dedicated dispatcher goroutine delivers it
// to the handler once its delay has elapsed. Delivery happens on the
// dispatcher goroutine, decoupled from the scheduling caller's continuation,
// and carries only plain data so the handler reads fresh ledger state.
type TimerScheduler struct {
	clock   core.Clock
	handler core.Handler

	mu      sync.Mutex
	pending pendingHeap
	seq     uint64
	running bool

	wake chan struct{}
	stop chan struct{}
	done chan struct{}
}

// New creates a TimerScheduler delivering due actions to handler. The
// scheduler is inert until Start is called; actions scheduled before Start
// are retained and dispatched once the dispatcher runs.
func New(handler core.Handler, optFns ...func(o *Options)) *TimerScheduler {
	opts := Options{Clock: RealClock{}}
	for _, fn := range optFns {
		fn(&opts)
	}

	return &TimerScheduler{
		clock:   opts.Clock,
		handler: handler,
		wake:    make(chan struct{}, 1),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Schedule enqueues action to fire no earlier than delay from now. It never
// blocks and is safe to call from the handler itself, which is how one
// agent's action schedules the next link of a causal chain.
func (s *TimerScheduler) Schedule(delay time.Duration, action core.Action) {
	s.mu.Lock()
	s.seq++
	heap.Push(&s.pending, &item{
		fireAt: s.clock.Now().Add(delay),
		seq:    s.seq,
		action: action,
	})
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// Pending returns the number of actions not yet dispatched.
func (s *TimerScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending.Len()
}

// Start launches the dispatcher goroutine. Calling Start on a running
// scheduler is a no-op.
func (s *TimerScheduler) Start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.mu.Unlock()

	go s.loop()
}

// Stop terminates the dispatcher and waits for it to exit. Pending actions
// are dropped; a stopped scheduler cannot be restarted.
func (s *TimerScheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.mu.Unlock()

	close(s.stop)
	<-s.done
}

// loop is the dispatcher: it sleeps until the earliest pending action is due,
// pops it and hands it to the handler. Handler calls run outside the lock so
// the handler can re-enter Schedule.
func (s *TimerScheduler) loop() {
	defer close(s.done)

	for {
		var wait <-chan time.Time

		s.mu.Lock()
		if s.pending.Len() > 0 {
			next := s.pending[0]
			if d := next.fireAt.Sub(s.clock.Now()); d <= 0 {
				it := heap.Pop(&s.pending).(*item)
				s.mu.Unlock()
				s.handler(it.action)
				continue
			} else {
				wait = s.clock.After(d)
			}
		}
		s.mu.Unlock()

		// A nil wait channel blocks forever; the wake channel covers the
		// empty-heap and earlier-deadline cases.
		select {
		case <-s.stop:
			return
		case <-s.wake:
		case <-wait:
		}
	}
}
