package fs

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"iter"
	"os"

	"sfz/internal/adapter/pathmodel"
	"sfz/internal/domain"
	"sfz/internal/port"
)

var errStop = errors.New("walk stopped")

// Walker implements port.FileWalker over the host filesystem.
type Walker struct{}

func NewWalker() *Walker {
	return &Walker{}
}

func (w *Walker) Walk(root string, walkType domain.WalkType, visitor port.TreeWalker) error {
	return Walk(root, walkType, visitor)
}

// Walk visits root and, if it is a directory, everything below it. Entries in
// a directory are visited in byte-wise name order on every platform. A
// directory's PreDirectory call comes before its children and PostDirectory
// after them. The first filesystem error or visitor error ends the walk.
func Walk(root string, walkType domain.WalkType, visitor port.TreeWalker) error {
	return traverse(root, walkType, func(e domain.Entry) error {
		return Dispatch(visitor, e)
	})
}

// Entries yields the entries Walk would visit, in the same order. A walk
// failure is yielded once as the final pair; breaking out of the loop ends
// the walk.
func Entries(root string, walkType domain.WalkType) iter.Seq2[domain.Entry, error] {
	return func(yield func(domain.Entry, error) bool) {
		err := traverse(root, walkType, func(e domain.Entry) error {
			if !yield(e, nil) {
				return errStop
			}
			return nil
		})
		if err != nil && !errors.Is(err, errStop) {
			yield(domain.Entry{}, err)
		}
	}
}

// Dispatch calls the visitor method matching e.Kind.
func Dispatch(v port.TreeWalker, e domain.Entry) error {
	switch e.Kind {
	case domain.PreDirectory:
		return v.PreDirectory(e.Path, e.Stat)
	case domain.PostDirectory:
		return v.PostDirectory(e.Path, e.Stat)
	case domain.CycleDirectory:
		return v.CycleDirectory(e.Path, e.Stat)
	case domain.File:
		return v.File(e.Path, e.Stat)
	case domain.Symlink:
		return v.Symlink(e.Path, e.Stat)
	case domain.BrokenSymlink:
		return v.BrokenSymlink(e.Path, e.Stat)
	case domain.Other:
		return v.Other(e.Path, e.Stat)
	default:
		return fmt.Errorf("walk: invalid entry kind %d", int(e.Kind))
	}
}

type traversal struct {
	walkType  domain.WalkType
	emit      func(domain.Entry) error
	ancestors []os.FileInfo
}

func traverse(root string, walkType domain.WalkType, emit func(domain.Entry) error) error {
	info, err := os.Lstat(root)
	if err != nil {
		return pathError("walk", root, err)
	}
	t := &traversal{walkType: walkType, emit: emit}
	return t.visit(root, info)
}

func (t *traversal) visit(path string, info os.FileInfo) error {
	if info.Mode()&os.ModeSymlink != 0 {
		if t.walkType == domain.WalkPhysical {
			return t.leaf(path, domain.Symlink, info)
		}
		target, err := os.Stat(path)
		if err != nil {
			if errors.Is(err, iofs.ErrNotExist) {
				return t.leaf(path, domain.BrokenSymlink, info)
			}
			return pathError("stat", path, err)
		}
		info = target
	}

	switch {
	case info.IsDir():
		return t.visitDir(path, info)
	case info.Mode().IsRegular():
		return t.leaf(path, domain.File, info)
	default:
		return t.leaf(path, domain.Other, info)
	}
}

func (t *traversal) visitDir(path string, info os.FileInfo) error {
	for _, a := range t.ancestors {
		if os.SameFile(a, info) {
			return t.leaf(path, domain.CycleDirectory, info)
		}
	}

	st := domain.NewStat(info)
	if err := t.emit(domain.Entry{Path: path, Kind: domain.PreDirectory, Stat: st}); err != nil {
		if errors.Is(err, iofs.SkipDir) {
			return nil
		}
		return err
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return pathError("readdir", path, err)
	}

	t.ancestors = append(t.ancestors, info)
	for _, e := range entries {
		child := pathmodel.Join(path, e.Name())
		ci, err := os.Lstat(child)
		if err != nil {
			return pathError("lstat", child, err)
		}
		if err := t.visit(child, ci); err != nil {
			return err
		}
	}
	t.ancestors = t.ancestors[:len(t.ancestors)-1]

	return dropSkip(t.emit(domain.Entry{Path: path, Kind: domain.PostDirectory, Stat: st}))
}

// leaf emits a single entry.
func (t *traversal) leaf(path string, kind domain.Kind, info os.FileInfo) error {
	return dropSkip(t.emit(domain.Entry{Path: path, Kind: kind, Stat: domain.NewStat(info)}))
}

// dropSkip discards SkipDir from callbacks that have nothing left to skip.
func dropSkip(err error) error {
	if errors.Is(err, iofs.SkipDir) {
		return nil
	}
	return err
}

// pathError rewrites err as a PathError for op and path, keeping the
// underlying OS error.
func pathError(op, path string, err error) error {
	var pe *iofs.PathError
	if errors.As(err, &pe) {
		err = pe.Err
	}
	return &iofs.PathError{Op: op, Path: path, Err: err}
}
