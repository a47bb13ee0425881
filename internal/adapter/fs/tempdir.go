package fs

import "os"

// TemporaryDirectory is a fresh directory that is removed by Close.
type TemporaryDirectory struct {
	path string
}

// TempDir creates a new directory under the system temp dir whose name
// starts with prefix.
func TempDir(prefix string) (*TemporaryDirectory, error) {
	path, err := os.MkdirTemp("", prefix)
	if err != nil {
		return nil, pathError("mkdtemp", prefix, err)
	}
	return &TemporaryDirectory{path: path}, nil
}

func (d *TemporaryDirectory) Path() string {
	return d.path
}

func (d *TemporaryDirectory) Close() error {
	return Rmtree(d.path)
}
