package core

import (
	"context"
	"errors"
	"log/slog"
	"sync"
)

// broker fans board events out to subscribers.
// Sends never block: a full subscriber misses the event.
type broker struct {
	mu   sync.Mutex
	subs map[chan Event]struct{}
}

func newBroker() *broker {
	return &broker{subs: make(map[chan Event]struct{})}
}

func (br *broker) subscribe(ctx context.Context, size int) <-chan Event {
	ch := make(chan Event, size)
	br.mu.Lock()
	br.subs[ch] = struct{}{}
	br.mu.Unlock()

	go func() {
		<-ctx.Done()
		br.mu.Lock()
		delete(br.subs, ch)
		close(ch)
		br.mu.Unlock()
	}()
	return ch
}

func (br *broker) publish(e Event, logger *slog.Logger) {
	br.mu.Lock()
	defer br.mu.Unlock()
	for ch := range br.subs {
		select {
		case ch <- e:
		default:
			logger.Debug("subscriber buffer full, dropping event", "event", e.String())
		}
	}
}

func (br *broker) len() int {
	br.mu.Lock()
	defer br.mu.Unlock()
	return len(br.subs)
}

// Subscribe returns a feed of board changes for re-rendering.
// The channel is closed when ctx is done.
func (b *Board) Subscribe(ctx context.Context) <-chan Event {
	return b.broker.subscribe(ctx, b.eventBuffer)
}

// WatchStorage reloads the board whenever the repository reports an
// external change. It returns immediately; reloading stops when ctx is done.
func (b *Board) WatchStorage(ctx context.Context) error {
	if err := b.ready(); err != nil {
		return err
	}
	w, ok := b.repo.(Watchable)
	if !ok {
		return errors.New("repository does not support watching")
	}
	events, err := w.Watch(ctx)
	if err != nil {
		return err
	}

	go func() {
		for range events {
			if err := b.Reload(ctx); err != nil {
				b.logger.Warn("reload after external change failed", "error", err)
			}
		}
	}()
	return nil
}
