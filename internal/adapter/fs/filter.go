package fs

import (
	iofs "io/fs"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"sfz/internal/adapter/pathmodel"
	"sfz/internal/domain"
	"sfz/internal/port"
)

// Filter forwards entries to next when their path, relative to root, passes
// the include and exclude globs. Excluded directories are not descended
// into. Directories are forwarded regardless of includes so the pre/post
// pairing seen by next stays intact.
type Filter struct {
	root     string
	includes []string
	excludes []string
	next     port.TreeWalker
}

func NewFilter(root string, includes, excludes []string, next port.TreeWalker) *Filter {
	if len(includes) == 0 {
		includes = []string{"**/*"}
	}
	return &Filter{
		root:     root,
		includes: includes,
		excludes: excludes,
		next:     next,
	}
}

func (f *Filter) PreDirectory(path string, st domain.Stat) error {
	if rel := f.rel(path); rel != "." && f.excludedDir(rel) {
		return iofs.SkipDir
	}
	return f.next.PreDirectory(path, st)
}

func (f *Filter) PostDirectory(path string, st domain.Stat) error {
	return f.next.PostDirectory(path, st)
}

func (f *Filter) CycleDirectory(path string, st domain.Stat) error {
	if f.excludedDir(f.rel(path)) {
		return nil
	}
	return f.next.CycleDirectory(path, st)
}

func (f *Filter) File(path string, st domain.Stat) error {
	if !f.selected(path) {
		return nil
	}
	return f.next.File(path, st)
}

func (f *Filter) Symlink(path string, st domain.Stat) error {
	if !f.selected(path) {
		return nil
	}
	return f.next.Symlink(path, st)
}

func (f *Filter) BrokenSymlink(path string, st domain.Stat) error {
	if !f.selected(path) {
		return nil
	}
	return f.next.BrokenSymlink(path, st)
}

func (f *Filter) Other(path string, st domain.Stat) error {
	if !f.selected(path) {
		return nil
	}
	return f.next.Other(path, st)
}

func (f *Filter) rel(path string) string {
	rel, err := filepath.Rel(f.root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

// selected matches leaves. A leaf walk root has no relative path, so it is
// matched by its base name.
func (f *Filter) selected(path string) bool {
	rel := f.rel(path)
	if rel == "." {
		rel = pathmodel.Basename(path)
	}
	return f.shouldInclude(rel) && !f.shouldExclude(rel)
}

func (f *Filter) excludedDir(rel string) bool {
	return f.shouldExclude(rel) || f.shouldExclude(rel+"/")
}

func (f *Filter) shouldInclude(path string) bool {
	for _, pattern := range f.includes {
		matched, err := doublestar.Match(pattern, path)
		if err == nil && matched {
			return true
		}
	}
	return false
}

func (f *Filter) shouldExclude(path string) bool {
	for _, pattern := range f.excludes {
		matched, err := doublestar.Match(pattern, path)
		if err == nil && matched {
			return true
		}
	}
	return false
}
