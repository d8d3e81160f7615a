package usecase

import (
	"context"
	"log"
	"sync"
	"time"
)

// DefaultAutosaveInterval is the quiet period after the last edit before a
// draft save fires.
const DefaultAutosaveInterval = 2 * time.Second

// autosaver debounces draft saves for one session: rapid successive edits
// coalesce into a single save after the quiet period, and at most one save is
// in flight at a time. A save requested while another runs marks the cycle
// pending; the follow-up save reads the latest settled state, so intermediate
// states are allowed to be lost. Failed saves re-arm the timer, which is the
// retry path; the in-memory configuration stays authoritative throughout.
type autosaver struct {
	interval time.Duration
	save     func(ctx context.Context) error

	mu       sync.Mutex
	timer    *time.Timer
	inFlight bool
	pending  bool
	stopped  bool

	// saveMu serializes save execution across the timer path and Flush, so a
	// flush always orders behind a save that is already running.
	saveMu sync.Mutex
}

func newAutosaver(interval time.Duration, save func(ctx context.Context) error) *autosaver {
	if interval <= 0 {
		interval = DefaultAutosaveInterval
	}
	return &autosaver{interval: interval, save: save}
}

// Schedule (re)arms the debounce timer.
func (a *autosaver) Schedule() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.stopped {
		return
	}
	if a.timer != nil {
		a.timer.Stop()
	}
	a.timer = time.AfterFunc(a.interval, a.fire)
}

func (a *autosaver) fire() {
	a.mu.Lock()
	if a.stopped {
		a.mu.Unlock()
		return
	}
	if a.inFlight {
		a.pending = true
		a.mu.Unlock()
		return
	}
	a.inFlight = true
	a.mu.Unlock()

	a.saveMu.Lock()
	err := a.save(context.Background())
	a.saveMu.Unlock()

	a.mu.Lock()
	a.inFlight = false
	rearm := a.pending || err != nil
	a.pending = false
	stopped := a.stopped
	a.mu.Unlock()

	if err != nil {
		log.Printf("[autosave] save failed, will retry: %v", err)
	}
	if rearm && !stopped {
		a.Schedule()
	}
}

// Flush cancels any pending timer and saves synchronously. Used when a session
// ends or an offer is accepted, where the settled state must be durable now.
// A save already in flight finishes first; the flush's write lands after it,
// so the store ends up with the flushed state under last-write-wins.
func (a *autosaver) Flush(ctx context.Context) error {
	a.mu.Lock()
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	a.pending = false
	a.mu.Unlock()

	a.saveMu.Lock()
	defer a.saveMu.Unlock()
	return a.save(ctx)
}

// Stop cancels the timer and prevents any further scheduling.
func (a *autosaver) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stopped = true
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
}
