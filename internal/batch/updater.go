package batch

import "sync"

// Scheduler defers fn to the next tick of whatever loop drives the UI. The
// callback may run on any goroutine; the Updater serializes its own state.
type Scheduler interface {
	Schedule(fn func())
}

// SchedulerFunc adapts a function to the Scheduler interface.
type SchedulerFunc func(fn func())

// Schedule implements Scheduler.
func (s SchedulerFunc) Schedule(fn func()) { s(fn) }

// Immediate runs scheduled work synchronously. Useful for CLI and server
// contexts with no frame loop.
func Immediate() Scheduler {
	return SchedulerFunc(func(fn func()) { fn() })
}

// Batcher is the store surface the Updater needs: run a function with event
// delivery deferred until it returns.
type Batcher interface {
	Batch(fn func())
}

// Updater queues mutation closures and flushes them together, in FIFO order,
// inside one store batch per scheduled tick.
type Updater struct {
	mu       sync.Mutex
	store    Batcher
	schedule Scheduler
	queue    []func()
	pending  bool
	// generation invalidates a scheduled flush that raced with Clear.
	generation uint64
}

// NewUpdater builds an updater over a store and scheduler.
func NewUpdater(store Batcher, schedule Scheduler) *Updater {
	return &Updater{store: store, schedule: schedule}
}

// AddUpdate queues a mutation closure. The first queued closure schedules a
// flush; later closures ride along on the already-pending one.
func (u *Updater) AddUpdate(fn func()) {
	if fn == nil {
		return
	}
	u.mu.Lock()
	u.queue = append(u.queue, fn)
	if u.pending {
		u.mu.Unlock()
		return
	}
	u.pending = true
	generation := u.generation
	u.mu.Unlock()

	u.schedule.Schedule(func() {
		u.flush(generation)
	})
}

// Clear discards any unflushed queue and cancels the pending flush. Called on
// teardown so a stale mutation never lands after its UI context is gone.
func (u *Updater) Clear() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.queue = nil
	u.pending = false
	u.generation++
}

// Pending reports whether queued mutations await a flush.
func (u *Updater) Pending() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.queue)
}

func (u *Updater) flush(generation uint64) {
	u.mu.Lock()
	if generation != u.generation {
		u.mu.Unlock()
		return
	}
	queue := u.queue
	u.queue = nil
	u.pending = false
	u.mu.Unlock()

	if len(queue) == 0 {
		return
	}
	u.store.Batch(func() {
		for _, fn := range queue {
			fn()
		}
	})
}
