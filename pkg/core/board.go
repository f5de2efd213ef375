package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"
)

// Board is the single source of truth for all notes.
// It assigns identity and stacking order and writes a full snapshot to
// its Repository after every mutation.
type Board struct {
	mu          sync.RWMutex
	repo        Repository
	codec       Codec
	logger      *slog.Logger
	now         func() time.Time
	newID       func() string
	eventBuffer int

	notes       []Note
	initialized bool
	lastPersist error

	broker *broker
}

// NewBoard creates a Board backed by repo.
// The board must be initialized before use.
func NewBoard(repo Repository, opts ...BoardOption) *Board {
	o := defaultBoardOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &Board{
		repo:        repo,
		codec:       o.codec,
		logger:      o.logger,
		now:         o.now,
		newID:       o.newID,
		eventBuffer: o.eventBuffer,
		broker:      newBroker(),
	}
}

// Initialize prepares the repository and loads the persisted snapshot.
// A missing, unreadable or corrupt snapshot yields an empty board; only a
// failure to set up the repository itself is returned.
func (b *Board) Initialize(ctx context.Context) error {
	if b.repo == nil {
		return errors.New("board has no repository")
	}
	if err := b.repo.Initialize(ctx); err != nil {
		return fmt.Errorf("failed to initialize repository: %w", err)
	}

	notes, err := b.load(ctx)
	if err != nil {
		b.logger.Warn("discarding unreadable snapshot, starting empty", "error", err)
		notes = nil
	}

	b.mu.Lock()
	b.notes = notes
	b.initialized = true
	b.mu.Unlock()

	b.logger.Debug("board initialized", "notes", len(notes))
	return nil
}

// Reload re-reads the snapshot from the repository, e.g. after another
// process changed it. On a corrupt snapshot the current notes are kept
// and the error is returned.
func (b *Board) Reload(ctx context.Context) error {
	if err := b.ready(); err != nil {
		return err
	}
	notes, err := b.load(ctx)
	if err != nil {
		return err
	}

	b.mu.Lock()
	b.notes = notes
	b.mu.Unlock()

	b.publish(EventReload, "")
	return nil
}

// load returns nil notes (and no error) when the repository is empty.
func (b *Board) load(ctx context.Context) ([]Note, error) {
	data, err := b.repo.Load(ctx)
	if errors.Is(err, ErrSnapshotNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	return DecodeSnapshot(b.codec, data)
}

// Notes returns a copy of the collection in insertion order.
func (b *Board) Notes() []Note {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return slices.Clone(b.notes)
}

// Get returns the note with the given id.
func (b *Board) Get(id string) (Note, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if i := b.indexOf(id); i >= 0 {
		return b.notes[i], true
	}
	return Note{}, false
}

// Len returns the number of notes on the board.
func (b *Board) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.notes)
}

// Create adds a new note on top of every other note.
// An empty color selects DefaultColor.
// The returned note is part of the board even when the error wraps ErrPersist.
func (b *Board) Create(ctx context.Context, content string, pos Position, color Color) (Note, error) {
	if err := b.ready(); err != nil {
		return Note{}, err
	}
	if color == "" {
		color = DefaultColor
	}
	if !color.Valid() {
		return Note{}, fmt.Errorf("%w: %q", ErrInvalidColor, color)
	}

	b.mu.Lock()
	now := b.timestamp()
	n := Note{
		ID:        b.newID(),
		Content:   content,
		Position:  pos,
		Size:      DefaultSize,
		Color:     color,
		Minimized: false,
		ZIndex:    b.maxZIndex() + 1,
		CreatedAt: now,
		UpdatedAt: now,
	}
	b.notes = append(b.notes, n)
	err := b.persist(ctx)
	b.mu.Unlock()

	b.publish(EventCreate, n.ID)
	return n, err
}

// Update applies patch to the note with the given id and refreshes its
// UpdatedAt. An unknown id is silently ignored.
func (b *Board) Update(ctx context.Context, id string, patch NotePatch) error {
	if err := b.ready(); err != nil {
		return err
	}
	if err := patch.validate(); err != nil {
		return err
	}
	return b.modify(ctx, id, func(n *Note) {
		patch.apply(n)
	})
}

// MoveBy translates the note by a pointer delta.
func (b *Board) MoveBy(ctx context.Context, id string, dx, dy float64) error {
	if err := b.ready(); err != nil {
		return err
	}
	return b.modify(ctx, id, func(n *Note) {
		n.Position = n.Position.Translate(dx, dy)
	})
}

// ResizeBy grows or shrinks the note by a pointer delta, never below the
// minimum size.
func (b *Board) ResizeBy(ctx context.Context, id string, dw, dh float64) error {
	if err := b.ready(); err != nil {
		return err
	}
	return b.modify(ctx, id, func(n *Note) {
		n.Size = Size{Width: n.Size.Width + dw, Height: n.Size.Height + dh}.Clamp()
	})
}

// BringToFront stacks the note above every other note.
// An unknown id or an empty board is a no-op.
func (b *Board) BringToFront(ctx context.Context, id string) error {
	if err := b.ready(); err != nil {
		return err
	}
	return b.modify(ctx, id, func(n *Note) {
		n.ZIndex = b.maxZIndex() + 1
	})
}

// Delete removes the note permanently. An unknown id is a no-op.
func (b *Board) Delete(ctx context.Context, id string) error {
	if err := b.ready(); err != nil {
		return err
	}

	b.mu.Lock()
	i := b.indexOf(id)
	if i < 0 {
		b.mu.Unlock()
		return nil
	}
	b.notes = slices.Delete(b.notes, i, i+1)
	err := b.persist(ctx)
	b.mu.Unlock()

	b.publish(EventDelete, id)
	return err
}

// DeleteAll empties the board.
func (b *Board) DeleteAll(ctx context.Context) error {
	if err := b.ready(); err != nil {
		return err
	}

	b.mu.Lock()
	b.notes = nil
	err := b.persist(ctx)
	b.mu.Unlock()

	b.publish(EventClear, "")
	return err
}

// modify runs fn on the matching note under the write lock, stamps
// UpdatedAt and persists. Missing ids are ignored.
func (b *Board) modify(ctx context.Context, id string, fn func(n *Note)) error {
	b.mu.Lock()
	i := b.indexOf(id)
	if i < 0 {
		b.mu.Unlock()
		b.logger.Debug("ignoring change to unknown note", "id", id)
		return nil
	}
	fn(&b.notes[i])
	b.notes[i].UpdatedAt = b.timestamp()
	err := b.persist(ctx)
	b.mu.Unlock()

	b.publish(EventModify, id)
	return err
}

// persist writes the full collection. Callers hold b.mu.
func (b *Board) persist(ctx context.Context) error {
	data, err := EncodeSnapshot(b.codec, b.notes)
	if err == nil {
		err = b.repo.Save(ctx, data)
	}
	b.lastPersist = err
	if err != nil {
		b.logger.Error("snapshot write failed, keeping in-memory state", "error", err)
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	return nil
}

// maxZIndex returns 0 for an empty board. Callers hold b.mu.
func (b *Board) maxZIndex() int {
	top := 0
	for _, n := range b.notes {
		top = max(top, n.ZIndex)
	}
	return top
}

func (b *Board) indexOf(id string) int {
	return slices.IndexFunc(b.notes, func(n Note) bool { return n.ID == id })
}

func (b *Board) timestamp() time.Time {
	return b.now().UTC()
}

func (b *Board) ready() error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if !b.initialized {
		return ErrNotInitialized
	}
	return nil
}

func (b *Board) publish(t EventType, id string) {
	b.broker.publish(Event{Type: t, ID: id, Timestamp: b.now().Unix()}, b.logger)
}
