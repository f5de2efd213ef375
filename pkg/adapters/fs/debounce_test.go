package fs

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/stickies/pkg/core"
)

type collector struct {
	mu     sync.Mutex
	events []core.Event
}

func (c *collector) deliver(e core.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, e)
}

func (c *collector) snapshot() []core.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]core.Event(nil), c.events...)
}

func TestDebouncer_CoalescesBurst(t *testing.T) {
	d := newDebouncer(30 * time.Millisecond)
	c := &collector{}

	for i := range 5 {
		d.add(core.Event{Type: core.EventModify, Timestamp: int64(i)}, c.deliver)
	}
	d.add(core.Event{Type: core.EventDelete}, c.deliver)

	assert.Eventually(t, func() bool { return len(c.snapshot()) == 2 }, time.Second, 5*time.Millisecond)
	time.Sleep(60 * time.Millisecond)

	got := c.snapshot()
	assert.Len(t, got, 2)
	for _, e := range got {
		if e.Type == core.EventModify {
			assert.Equal(t, int64(4), e.Timestamp)
		}
	}
	d.stopAndWait(time.Second)
}

func TestDebouncer_StopDropsPending(t *testing.T) {
	d := newDebouncer(time.Hour)
	c := &collector{}

	d.add(core.Event{Type: core.EventModify}, c.deliver)
	d.stopAndWait(time.Second)
	d.add(core.Event{Type: core.EventModify}, c.deliver)

	assert.Empty(t, c.snapshot())
}
