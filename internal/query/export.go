// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/concept-index/pkg/types"
)

// ExportEntry is one concept flattened for export, ordered by id.
type ExportEntry struct {
	ID          string     `json:"id" yaml:"id"`
	Title       string     `json:"title" yaml:"title"`
	Tier        types.Tier `json:"tier" yaml:"tier"`
	Description string     `json:"description" yaml:"description"`
	Keywords    []string   `json:"keywords" yaml:"keywords"`
	Projects    []string   `json:"projects" yaml:"projects"`
	FilePath    string     `json:"file_path" yaml:"file_path"`
	Anchor      string     `json:"anchor" yaml:"anchor"`
}

// ExportYAML writes every loaded concept to path as YAML.
func (e *Engine) ExportYAML(path string) error {
	data, err := yaml.Marshal(e.exportEntries())
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ExportJSON writes every loaded concept to path as JSON.
func (e *Engine) ExportJSON(path string) error {
	data, err := json.MarshalIndent(e.exportEntries(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func (e *Engine) exportEntries() []ExportEntry {
	entries := make([]ExportEntry, 0, len(e.concepts))
	for id, c := range e.concepts {
		entries = append(entries, ExportEntry{
			ID:          id,
			Title:       c.Title,
			Tier:        c.Tier,
			Description: c.Description,
			Keywords:    c.Keywords,
			Projects:    c.Projects,
			FilePath:    c.FilePath,
			Anchor:      c.Anchor,
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	return entries
}
