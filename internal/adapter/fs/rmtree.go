package fs

import (
	"errors"
	iofs "io/fs"
	"os"

	"sfz/internal/domain"
)

// RmtreeVisitor deletes everything it visits. Directories are removed on
// PostDirectory, after their children are gone.
type RmtreeVisitor struct {
	NopVisitor

	// OnRemove, if set, is called after each successful removal.
	OnRemove func(path string)
}

// Run removes path and everything below it. A missing path is not an error.
func (v *RmtreeVisitor) Run(path string) error {
	if _, err := os.Lstat(path); err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil
		}
		return pathError("rmtree", path, err)
	}
	return Walk(path, domain.WalkPhysical, v)
}

func (v *RmtreeVisitor) PostDirectory(path string, _ domain.Stat) error {
	return v.removed(path, Rmdir(path))
}

func (v *RmtreeVisitor) File(path string, _ domain.Stat) error {
	return v.removed(path, Unlink(path))
}

func (v *RmtreeVisitor) Symlink(path string, _ domain.Stat) error {
	return v.removed(path, Unlink(path))
}

func (v *RmtreeVisitor) BrokenSymlink(path string, _ domain.Stat) error {
	return v.removed(path, Unlink(path))
}

func (v *RmtreeVisitor) Other(path string, _ domain.Stat) error {
	return v.removed(path, Unlink(path))
}

func (v *RmtreeVisitor) removed(path string, err error) error {
	if err != nil {
		return err
	}
	if v.OnRemove != nil {
		v.OnRemove(path)
	}
	return nil
}

// Rmtree removes path recursively. Calling it on a missing path does nothing.
func Rmtree(path string) error {
	return (&RmtreeVisitor{}).Run(path)
}
