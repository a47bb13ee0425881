package usecase

import (
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"sfz/internal/adapter/fs"
	"sfz/internal/domain"
	"sfz/internal/port"
)

// SnapshotUseCase records the state of a tree and compares it later.
type SnapshotUseCase struct {
	store  port.SnapshotStore
	walker port.FileWalker
	opts   WalkOptions
	now    func() time.Time
}

// NewSnapshotUseCase creates a new snapshot use case.
func NewSnapshotUseCase(store port.SnapshotStore, walker port.FileWalker, opts WalkOptions) *SnapshotUseCase {
	return &SnapshotUseCase{
		store:  store,
		walker: walker,
		opts:   opts,
		now:    time.Now,
	}
}

// SnapshotResult contains the results of taking a snapshot.
type SnapshotResult struct {
	Entries int
	Counts  map[string]int
}

// Take walks root and replaces the stored snapshot with what it finds.
func (u *SnapshotUseCase) Take(root string) (*SnapshotResult, error) {
	entries, err := u.collect(root)
	if err != nil {
		return nil, err
	}

	meta := domain.SnapshotMeta{
		Root:     root,
		WalkType: u.opts.Type.String(),
		TakenAt:  u.now(),
	}
	if err := u.store.ReplaceSnapshot(meta, entries); err != nil {
		return nil, fmt.Errorf("failed to store snapshot: %w", err)
	}

	result := &SnapshotResult{Entries: len(entries), Counts: make(map[string]int)}
	for _, e := range entries {
		result.Counts[e.Kind]++
	}
	return result, nil
}

// Diff walks root again and reports how it differs from the stored snapshot.
func (u *SnapshotUseCase) Diff(root string) (domain.SnapshotDiff, error) {
	var diff domain.SnapshotDiff

	stored, err := u.store.ListEntries()
	if err != nil {
		return diff, fmt.Errorf("failed to read snapshot: %w", err)
	}
	current, err := u.collect(root)
	if err != nil {
		return diff, err
	}

	before := make(map[string]domain.SnapshotEntry, len(stored))
	for _, e := range stored {
		before[e.Path] = e
	}

	seen := make(map[string]bool, len(current))
	for _, e := range current {
		seen[e.Path] = true
		old, ok := before[e.Path]
		switch {
		case !ok:
			diff.Added = append(diff.Added, e.Path)
		case changed(old, e):
			diff.Changed = append(diff.Changed, e.Path)
		}
	}
	for path := range before {
		if !seen[path] {
			diff.Removed = append(diff.Removed, path)
		}
	}

	sort.Strings(diff.Added)
	sort.Strings(diff.Removed)
	sort.Strings(diff.Changed)
	return diff, nil
}

func changed(a, b domain.SnapshotEntry) bool {
	return a.Kind != b.Kind || a.Size != b.Size || a.Mode != b.Mode || !a.ModTime.Equal(b.ModTime)
}

// collect walks root and returns one entry per visited path, keyed relative
// to root with forward slashes. Post-directory visits repeat their
// pre-directory entry and are dropped.
func (u *SnapshotUseCase) collect(root string) ([]domain.SnapshotEntry, error) {
	var entries []domain.SnapshotEntry

	visit := fs.EntryFunc(func(e domain.Entry) error {
		if e.Kind == domain.PostDirectory {
			return nil
		}
		rel, err := filepath.Rel(root, e.Path)
		if err != nil {
			return err
		}
		entries = append(entries, domain.SnapshotEntry{
			Path:    filepath.ToSlash(rel),
			Kind:    e.Kind.String(),
			Mode:    uint32(e.Stat.Mode),
			Size:    e.Stat.Size,
			ModTime: e.Stat.ModTime,
		})
		return nil
	})

	filter := fs.NewFilter(root, u.opts.Includes, u.opts.Excludes, visit)
	if err := u.walker.Walk(root, u.opts.Type, filter); err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}
	return entries, nil
}
