package fs

import (
	"sync"
	"time"

	"github.com/aretw0/stickies/pkg/core"
)

// debouncer coalesces events per type: only the last event of a burst is
// delivered, once the burst has been quiet for wait.
type debouncer struct {
	mu      sync.Mutex
	wait    time.Duration
	timers  map[core.EventType]*time.Timer
	wg      sync.WaitGroup
	stopped bool
}

func newDebouncer(wait time.Duration) *debouncer {
	return &debouncer{
		wait:   wait,
		timers: make(map[core.EventType]*time.Timer),
	}
}

func (d *debouncer) add(e core.Event, deliver func(core.Event)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}

	if prev, ok := d.timers[e.Type]; ok && prev.Stop() {
		d.wg.Done()
	}

	d.wg.Add(1)
	var t *time.Timer
	t = time.AfterFunc(d.wait, func() {
		defer d.wg.Done()
		d.mu.Lock()
		if d.timers[e.Type] == t {
			delete(d.timers, e.Type)
		}
		d.mu.Unlock()
		deliver(e)
	})
	d.timers[e.Type] = t
}

// stopAndWait drops pending events and waits for in-flight deliveries.
func (d *debouncer) stopAndWait(timeout time.Duration) {
	d.mu.Lock()
	d.stopped = true
	for key, t := range d.timers {
		if t.Stop() {
			d.wg.Done()
		}
		delete(d.timers, key)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(timeout):
	}
}
