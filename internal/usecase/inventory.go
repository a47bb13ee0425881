package usecase

import (
	"fmt"

	"sfz/internal/adapter/fs"
	"sfz/internal/domain"
	"sfz/internal/port"
)

// InventoryUseCase lists the entries of a tree.
type InventoryUseCase struct {
	walker port.FileWalker
	opts   WalkOptions
}

// NewInventoryUseCase creates a new inventory use case.
func NewInventoryUseCase(walker port.FileWalker, opts WalkOptions) *InventoryUseCase {
	return &InventoryUseCase{walker: walker, opts: opts}
}

// Summary counts visited entries.
type Summary struct {
	Counts map[domain.Kind]int `json:"counts"`
	Bytes  int64               `json:"bytes"`
}

// InventoryResult contains the entries of a walk in visit order.
type InventoryResult struct {
	Entries []domain.Entry
	Summary Summary
}

// Run walks root and records every entry the filter lets through.
func (u *InventoryUseCase) Run(root string) (*InventoryResult, error) {
	result := &InventoryResult{
		Summary: Summary{Counts: make(map[domain.Kind]int)},
	}

	collect := fs.EntryFunc(func(e domain.Entry) error {
		result.Entries = append(result.Entries, e)
		result.Summary.Counts[e.Kind]++
		if e.Kind == domain.File {
			result.Summary.Bytes += e.Stat.Size
		}
		return nil
	})

	filter := fs.NewFilter(root, u.opts.Includes, u.opts.Excludes, collect)
	if err := u.walker.Walk(root, u.opts.Type, filter); err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	return result, nil
}
