package port

import "sfz/internal/domain"

// TreeWalker receives one call per visited entry. Returning an error aborts
// the walk; PreDirectory may return fs.SkipDir to leave a directory unvisited.
type TreeWalker interface {
	PreDirectory(path string, st domain.Stat) error
	PostDirectory(path string, st domain.Stat) error
	CycleDirectory(path string, st domain.Stat) error
	File(path string, st domain.Stat) error
	Symlink(path string, st domain.Stat) error
	BrokenSymlink(path string, st domain.Stat) error
	Other(path string, st domain.Stat) error
}

type FileWalker interface {
	Walk(root string, walkType domain.WalkType, visitor TreeWalker) error
}
