// Package query filters notes with boolean expressions such as
//
//	color == "blue" && !minimized
//	content contains "todo" && zIndex > 3
//
// Expressions see the variables id, content, color, x, y, width, height,
// minimized, zIndex, createdAt, updatedAt and now.
package query

import (
	"fmt"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/aretw0/stickies/pkg/core"
)

// Filter is a compiled note predicate.
type Filter struct {
	source  string
	program *vm.Program
}

// Compile parses and type-checks expression.
// An empty expression matches every note.
func Compile(expression string) (*Filter, error) {
	if expression == "" {
		return &Filter{}, nil
	}
	program, err := expr.Compile(expression, expr.Env(env(core.Note{})), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("invalid filter %q: %w", expression, err)
	}
	return &Filter{source: expression, program: program}, nil
}

// String returns the expression the filter was compiled from.
func (f *Filter) String() string {
	return f.source
}

// Match reports whether n satisfies the filter.
func (f *Filter) Match(n core.Note) (bool, error) {
	if f.program == nil {
		return true, nil
	}
	out, err := expr.Run(f.program, env(n))
	if err != nil {
		return false, fmt.Errorf("evaluate filter on %s: %w", n.ID, err)
	}
	ok, _ := out.(bool)
	return ok, nil
}

// Apply returns the notes matching the filter, preserving order.
func (f *Filter) Apply(notes []core.Note) ([]core.Note, error) {
	var matched []core.Note
	for _, n := range notes {
		ok, err := f.Match(n)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, n)
		}
	}
	return matched, nil
}

func env(n core.Note) map[string]any {
	return map[string]any{
		"id":        n.ID,
		"content":   n.Content,
		"color":     string(n.Color),
		"x":         n.Position.X,
		"y":         n.Position.Y,
		"width":     n.Size.Width,
		"height":    n.Size.Height,
		"minimized": n.Minimized,
		"zIndex":    n.ZIndex,
		"createdAt": n.CreatedAt,
		"updatedAt": n.UpdatedAt,
		"now":       time.Now(),
	}
}
