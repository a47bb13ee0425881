package fs

import (
	"os"
	"sort"

	"sfz/internal/adapter/pathmodel"
	"sfz/internal/domain"
)

// Exists reports whether path names an entry, following symlinks.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// IsLink reports whether path itself is a symlink, whether or not its target
// exists.
func IsLink(path string) bool {
	info, err := os.Lstat(path)
	return err == nil && info.Mode()&os.ModeSymlink != 0
}

func Mkdir(path string, perm os.FileMode) error {
	if err := os.Mkdir(path, perm); err != nil {
		return pathError("mkdir", path, err)
	}
	return nil
}

// Makedirs creates path and any missing parents.
func Makedirs(path string, perm os.FileMode) error {
	if IsDir(path) {
		return nil
	}
	if parent := pathmodel.Dirname(path); parent != path {
		if err := Makedirs(parent, perm); err != nil {
			return err
		}
	}
	return Mkdir(path, perm)
}

// Symlink creates link pointing at target.
func Symlink(target, link string) error {
	if err := os.Symlink(target, link); err != nil {
		return pathError("symlink", link, err)
	}
	return nil
}

func Chdir(path string) error {
	if err := os.Chdir(path); err != nil {
		return pathError("chdir", path, err)
	}
	return nil
}

func Getcwd() (string, error) {
	return os.Getwd()
}

// DirEntry is one entry returned by Scandir.
type DirEntry struct {
	Name string
	Stat domain.Stat
}

// Scandir lists dir in name order. Each entry carries the metadata of what
// it refers to, so a symlink reports its target and a dangling one fails.
func Scandir(dir string) ([]DirEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, pathError("scandir", dir, err)
	}
	result := make([]DirEntry, 0, len(entries))
	for _, e := range entries {
		child := pathmodel.Join(dir, e.Name())
		info, err := os.Stat(child)
		if err != nil {
			return nil, pathError("scandir", child, err)
		}
		result = append(result, DirEntry{Name: e.Name(), Stat: domain.NewStat(info)})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}
