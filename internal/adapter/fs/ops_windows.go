//go:build windows

package fs

import (
	"errors"
	"os"
)

func Unlink(path string) error {
	if IsDir(path) && !IsLink(path) {
		return pathError("unlink", path, errors.New("is a directory"))
	}
	if err := os.Remove(path); err != nil {
		return pathError("unlink", path, err)
	}
	return nil
}

func Rmdir(path string) error {
	if !IsDir(path) {
		return pathError("rmdir", path, errors.New("not a directory"))
	}
	if err := os.Remove(path); err != nil {
		return pathError("rmdir", path, err)
	}
	return nil
}

// Mkfifo is not available on Windows.
func Mkfifo(path string, mode os.FileMode) error {
	return pathError("mkfifo", path, errors.ErrUnsupported)
}
