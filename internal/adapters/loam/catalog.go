package loam

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/aretw0/loam"
)

// Entry is the front matter of one catalog document:
//
//	---
//	name: Iron Man
//	---
type Entry struct {
	Name string `json:"name" mapstructure:"name"`
}

// Catalog implements ports.Catalog over a directory of documents, one per
// entry. Entries are ordered by document ID, so a numeric file prefix
// ("01-captain-america.md") fixes the order. A document without a name uses
// its ID minus the extension.
type Catalog struct {
	Repo *loam.TypedRepository[Entry]
}

// New creates a catalog over an existing typed repository.
func New(repo *loam.TypedRepository[Entry]) *Catalog {
	return &Catalog{
		Repo: repo,
	}
}

// Open initializes a read-only repository at dir.
func Open(dir string) (*Catalog, error) {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}

	repo, err := loam.Init(absPath,
		loam.WithStrict(true),
		loam.WithReadOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize loam: %w", err)
	}
	return New(loam.NewTypedRepository[Entry](repo)), nil
}

// Names lists the document IDs, loads each document and returns the names.
func (c *Catalog) Names(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("loam catalog: %w", err)
	}

	docs, err := c.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loam list failed: %w", err)
	}

	type entry struct{ id, name string }
	entries := make([]entry, 0, len(docs))
	for _, listed := range docs {
		// List does not carry parsed front matter for every source.
		doc, err := c.Repo.Get(ctx, listed.ID)
		if err != nil {
			return nil, fmt.Errorf("loam get failed for %s: %w", listed.ID, err)
		}
		name := strings.TrimSpace(doc.Data.Name)
		if name == "" {
			name = trimExtension(filepath.Base(doc.ID))
		}
		entries = append(entries, entry{id: filepath.ToSlash(doc.ID), name: name})
	}
	slices.SortFunc(entries, func(a, b entry) int {
		return strings.Compare(a.id, b.id)
	})

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	return names, nil
}

func trimExtension(id string) string {
	return strings.TrimSuffix(id, filepath.Ext(id))
}
