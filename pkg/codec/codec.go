// Package codec holds the formats a board snapshot can be written in.
package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Codec defines how a snapshot is turned into bytes and back.
type Codec interface {
	// Name identifies the format (e.g. "json").
	Name() string
	// Marshal converts v to bytes.
	Marshal(v any) ([]byte, error)
	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error
}

// Defaults returns the standard set of codecs keyed by file extension.
func Defaults() map[string]Codec {
	return map[string]Codec{
		".json": JSON{Indent: true},
		".yaml": YAML{},
		".yml":  YAML{},
	}
}

// ForPath picks a codec from the extension of path.
// Unknown or missing extensions fall back to JSON.
func ForPath(path string) Codec {
	ext := strings.ToLower(filepath.Ext(path))
	if c, ok := Defaults()[ext]; ok {
		return c
	}
	return JSON{Indent: true}
}

// ByName resolves a codec by its Name.
func ByName(name string) (Codec, error) {
	switch strings.ToLower(name) {
	case "", "json":
		return JSON{Indent: true}, nil
	case "yaml", "yml":
		return YAML{}, nil
	default:
		return nil, fmt.Errorf("unknown codec: %s", name)
	}
}

// --- JSON ---

// JSON handles snapshots as a JSON array.
type JSON struct {
	// Indent produces human-readable output.
	Indent bool
}

func (JSON) Name() string { return "json" }

func (c JSON) Marshal(v any) ([]byte, error) {
	if c.Indent {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

func (JSON) Unmarshal(data []byte, v any) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}
	return nil
}

// --- YAML ---

// YAML handles snapshots as a YAML sequence.
type YAML struct{}

func (YAML) Name() string { return "yaml" }

func (YAML) Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

func (YAML) Unmarshal(data []byte, v any) error {
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("invalid yaml: %w", err)
	}
	return nil
}
