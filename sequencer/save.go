package sequencer

import (
	"cmp"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
)

// Save writes doc as indented JSON, creating parent directories
func Save(path string, doc *Document) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("save %s: %w", path, err)
		}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// Load reads a document written by Save (or by any tool using the same
// layout). Hand-edited files may list intervals in any order, so each
// zone's timeline is sorted by start.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	doc := &Document{}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	for i := range doc.Pattern.Seqs {
		slices.SortStableFunc(doc.Pattern.Seqs[i].Sequence, func(a, b ColorInterval) int {
			return cmp.Compare(a.Start, b.Start)
		})
	}
	return doc, nil
}
