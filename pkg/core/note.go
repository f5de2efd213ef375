package core

import (
	"fmt"
	"time"
)

// Color is the background swatch of a note.
type Color string

const (
	ColorYellow Color = "yellow"
	ColorBlue   Color = "blue"
	ColorGreen  Color = "green"
	ColorPink   Color = "pink"
	ColorPurple Color = "purple"
)

// DefaultColor is used when a note is created without a color.
const DefaultColor = ColorYellow

// Colors lists every supported color in palette order.
var Colors = []Color{ColorYellow, ColorBlue, ColorGreen, ColorPink, ColorPurple}

// Valid reports whether c is one of the supported colors.
func (c Color) Valid() bool {
	for _, known := range Colors {
		if c == known {
			return true
		}
	}
	return false
}

// ParseColor converts user input into a Color.
// An empty string yields DefaultColor.
func ParseColor(s string) (Color, error) {
	if s == "" {
		return DefaultColor, nil
	}
	c := Color(s)
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return c, nil
}

// Position is the top-left corner of a note on the board.
type Position struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Translate returns p shifted by the given pointer delta.
func (p Position) Translate(dx, dy float64) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Size bounds.
const (
	MinWidth      = 150
	MinHeight     = 150
	DefaultWidth  = 220
	DefaultHeight = 220
)

// Size is the width/height pair of an expanded note.
type Size struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// DefaultSize is assigned to newly created notes.
var DefaultSize = Size{Width: DefaultWidth, Height: DefaultHeight}

// Clamp raises each dimension to its minimum.
func (s Size) Clamp() Size {
	return Size{
		Width:  max(s.Width, MinWidth),
		Height: max(s.Height, MinHeight),
	}
}

// Note is the central entity of the domain: a single movable,
// resizable, colorable text card on the board.
type Note struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Position  Position  `json:"position"`
	Size      Size      `json:"size"`
	Color     Color     `json:"color"`
	Minimized bool      `json:"minimized"`
	ZIndex    int       `json:"zIndex"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NotePatch is a partial update. Nil fields are left untouched.
type NotePatch struct {
	Content   *string
	Position  *Position
	Size      *Size
	Color     *Color
	Minimized *bool
	ZIndex    *int
}

// IsEmpty reports whether the patch carries no field at all.
func (p NotePatch) IsEmpty() bool {
	return p.Content == nil && p.Position == nil && p.Size == nil &&
		p.Color == nil && p.Minimized == nil && p.ZIndex == nil
}

func (p NotePatch) validate() error {
	if p.Color != nil && !p.Color.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidColor, *p.Color)
	}
	return nil
}

// apply merges the present fields into n. Size is clamped.
func (p NotePatch) apply(n *Note) {
	if p.Content != nil {
		n.Content = *p.Content
	}
	if p.Position != nil {
		n.Position = *p.Position
	}
	if p.Size != nil {
		n.Size = p.Size.Clamp()
	}
	if p.Color != nil {
		n.Color = *p.Color
	}
	if p.Minimized != nil {
		n.Minimized = *p.Minimized
	}
	if p.ZIndex != nil {
		n.ZIndex = *p.ZIndex
	}
}

// SetContent returns a patch that replaces the content.
func SetContent(content string) NotePatch { return NotePatch{Content: &content} }

// SetPosition returns a patch that relocates the note.
func SetPosition(pos Position) NotePatch { return NotePatch{Position: &pos} }

// SetSize returns a patch that resizes the note.
func SetSize(size Size) NotePatch { return NotePatch{Size: &size} }

// SetColor returns a patch that recolors the note.
func SetColor(c Color) NotePatch { return NotePatch{Color: &c} }

// SetMinimized returns a patch that collapses or expands the note.
func SetMinimized(minimized bool) NotePatch { return NotePatch{Minimized: &minimized} }
