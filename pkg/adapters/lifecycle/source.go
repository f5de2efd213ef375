// Package lifecycle exposes board changes as a lifecycle.Source.
package lifecycle

import (
	"context"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/stickies/pkg/core"
)

type boardSource struct {
	board *core.Board
	out   chan lifecycle.Event
}

// NewSource creates a lifecycle.Source that emits board events.
// The subscription is opened on Start and lives as long as its context.
func NewSource(board *core.Board) lifecycle.Source {
	return &boardSource{
		board: board,
		out:   make(chan lifecycle.Event),
	}
}

func (s *boardSource) Events() <-chan lifecycle.Event {
	return s.out
}

func (s *boardSource) Start(ctx context.Context) error {
	events := s.board.Subscribe(ctx)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-events:
				if !ok {
					return nil
				}
				// core.Event implements lifecycle.Event (has String())
				select {
				case s.out <- e:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}
