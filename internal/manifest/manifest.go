// Package manifest reads and rewrites the config.json document that
// carries the tweak list in and the derived build configuration out.
package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/Balackburn/tweakplan/internal/tweak"
)

// Metadata summarizes one analyzer run.
type Metadata struct {
	TotalTweaks          int      `json:"total_tweaks"`
	SuccessfullyAnalyzed int      `json:"successfully_analyzed"`
	RequiredHeaders      []string `json:"required_headers"`
}

// Document is the config.json contents. On input only Tweakslist matters;
// on output every field is populated and the file is fully overwritten.
// The derived fields are omitempty so a bare input document (tweakslist
// only) round-trips without phantom keys.
type Document struct {
	Tweakslist []string          `json:"tweakslist"`
	Config     []*tweak.Record   `json:"config,omitempty"`
	BuildOrder []string          `json:"build_order,omitempty"`
	Headers    map[string]string `json:"headers,omitempty"`
	Metadata   *Metadata         `json:"metadata,omitempty"`
}

// Load reads and decodes the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}
	return &doc, nil
}

// Save rewrites the document at path. The encoding keeps URLs and shell
// commands readable: two-space indent, no HTML escaping, trailing newline.
func (d *Document) Save(path string) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("failed to encode config document: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}
	return nil
}
