//go:build unix

package fs

import (
	"os"

	"golang.org/x/sys/unix"
)

// Unlink removes a non-directory entry.
func Unlink(path string) error {
	if err := unix.Unlink(path); err != nil {
		return pathError("unlink", path, err)
	}
	return nil
}

// Rmdir removes an empty directory.
func Rmdir(path string) error {
	if err := unix.Rmdir(path); err != nil {
		return pathError("rmdir", path, err)
	}
	return nil
}

// Mkfifo creates a named pipe.
func Mkfifo(path string, mode os.FileMode) error {
	if err := unix.Mkfifo(path, uint32(mode.Perm())); err != nil {
		return pathError("mkfifo", path, err)
	}
	return nil
}
