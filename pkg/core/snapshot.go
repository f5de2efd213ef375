package core

import (
	"errors"
	"fmt"
	"time"

	"github.com/aretw0/stickies/pkg/codec"
)

// TimeLayout is the textual form of persisted timestamps (ISO-8601).
const TimeLayout = time.RFC3339Nano

// Codec converts snapshot records to bytes and back.
type Codec = codec.Codec

// noteRecord is the persisted field-map of a note.
type noteRecord struct {
	ID        string   `json:"id" yaml:"id"`
	Content   string   `json:"content" yaml:"content"`
	Position  Position `json:"position" yaml:"position"`
	Size      Size     `json:"size" yaml:"size"`
	Color     Color    `json:"color" yaml:"color"`
	Minimized bool     `json:"minimized" yaml:"minimized"`
	ZIndex    int      `json:"zIndex" yaml:"zIndex"`
	CreatedAt string   `json:"createdAt" yaml:"createdAt"`
	UpdatedAt string   `json:"updatedAt" yaml:"updatedAt"`
}

// EncodeSnapshot serializes notes, in order, with the given codec.
// A nil codec selects JSON.
func EncodeSnapshot(c Codec, notes []Note) ([]byte, error) {
	if c == nil {
		c = codec.JSON{Indent: true}
	}
	records := make([]noteRecord, 0, len(notes))
	for _, n := range notes {
		records = append(records, noteRecord{
			ID:        n.ID,
			Content:   n.Content,
			Position:  n.Position,
			Size:      n.Size,
			Color:     n.Color,
			Minimized: n.Minimized,
			ZIndex:    n.ZIndex,
			CreatedAt: n.CreatedAt.UTC().Format(TimeLayout),
			UpdatedAt: n.UpdatedAt.UTC().Format(TimeLayout),
		})
	}
	data, err := c.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("encode %s snapshot: %w", c.Name(), err)
	}
	return data, nil
}

// DecodeSnapshot parses a snapshot produced by EncodeSnapshot.
// Any malformed record rejects the whole snapshot.
func DecodeSnapshot(c Codec, data []byte) ([]Note, error) {
	if c == nil {
		c = codec.JSON{Indent: true}
	}
	var records []noteRecord
	if err := c.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode %s snapshot: %w", c.Name(), err)
	}

	notes := make([]Note, 0, len(records))
	seen := make(map[string]bool, len(records))
	for i, r := range records {
		if r.ID == "" {
			return nil, fmt.Errorf("record %d: missing id", i)
		}
		if seen[r.ID] {
			return nil, fmt.Errorf("record %d: duplicate id %s", i, r.ID)
		}
		seen[r.ID] = true

		color := r.Color
		if color == "" {
			color = DefaultColor
		}
		if !color.Valid() {
			return nil, fmt.Errorf("record %d: %w: %q", i, ErrInvalidColor, r.Color)
		}

		created, err := parseTime(r.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("record %d: createdAt: %w", i, err)
		}
		updated, err := parseTime(r.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("record %d: updatedAt: %w", i, err)
		}

		notes = append(notes, Note{
			ID:        r.ID,
			Content:   r.Content,
			Position:  r.Position,
			Size:      r.Size.Clamp(),
			Color:     color,
			Minimized: r.Minimized,
			ZIndex:    r.ZIndex,
			CreatedAt: created,
			UpdatedAt: updated,
		})
	}
	return notes, nil
}

func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, errors.New("empty timestamp")
	}
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
