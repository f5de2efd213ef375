package core

import (
	"errors"
	"testing"
)

func TestParseColor(t *testing.T) {
	for _, c := range Colors {
		got, err := ParseColor(string(c))
		if err != nil {
			t.Fatalf("ParseColor(%q) failed: %v", c, err)
		}
		if got != c {
			t.Errorf("expected %q, got %q", c, got)
		}
	}

	if got, _ := ParseColor(""); got != ColorYellow {
		t.Errorf("expected empty input to default to yellow, got %q", got)
	}

	if _, err := ParseColor("Orange"); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("expected ErrInvalidColor, got %v", err)
	}
}

func TestSize_Clamp(t *testing.T) {
	tests := []struct {
		name string
		in   Size
		want Size
	}{
		{"Above Minimum", Size{Width: 300, Height: 200}, Size{Width: 300, Height: 200}},
		{"Narrow", Size{Width: 10, Height: 200}, Size{Width: MinWidth, Height: 200}},
		{"Short", Size{Width: 300, Height: 0}, Size{Width: 300, Height: MinHeight}},
		{"Negative", Size{Width: -5, Height: -5}, Size{Width: MinWidth, Height: MinHeight}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Clamp(); got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestNotePatch(t *testing.T) {
	if !(NotePatch{}).IsEmpty() {
		t.Error("zero patch should be empty")
	}
	if SetContent("").IsEmpty() {
		t.Error("patch with empty content is still a change")
	}

	n := Note{Content: "a", Size: DefaultSize, Color: ColorBlue}
	SetSize(Size{Width: 1, Height: 1}).apply(&n)
	if n.Size != (Size{Width: MinWidth, Height: MinHeight}) {
		t.Errorf("expected clamped size, got %+v", n.Size)
	}
	if n.Content != "a" || n.Color != ColorBlue {
		t.Errorf("untouched fields changed: %+v", n)
	}

	if err := SetColor("teal").validate(); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("expected ErrInvalidColor, got %v", err)
	}
}
