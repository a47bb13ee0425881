package usecase

import (
	"fmt"

	"sfz/internal/adapter/fs"
	"sfz/internal/port"
)

// RmtreeUseCase removes directory trees.
type RmtreeUseCase struct {
	logger port.Logger
}

// NewRmtreeUseCase creates a new rmtree use case.
func NewRmtreeUseCase(logger port.Logger) *RmtreeUseCase {
	return &RmtreeUseCase{logger: logger}
}

// RmtreeResult contains the results of a removal.
type RmtreeResult struct {
	Removed int
	Missing []string
}

// Run removes each path in turn. Missing paths are recorded and skipped.
// The first failure stops the run; entries already removed stay removed.
func (u *RmtreeUseCase) Run(paths []string, onRemove func(path string)) (*RmtreeResult, error) {
	result := &RmtreeResult{}

	for _, path := range paths {
		if !fs.Exists(path) && !fs.IsLink(path) {
			u.logger.Debugf("rmtree: %s does not exist", path)
			result.Missing = append(result.Missing, path)
			continue
		}

		visitor := &fs.RmtreeVisitor{
			OnRemove: func(p string) {
				result.Removed++
				u.logger.Debugf("removed %s", p)
				if onRemove != nil {
					onRemove(p)
				}
			},
		}
		if err := visitor.Run(path); err != nil {
			return result, fmt.Errorf("rmtree %s: %w", path, err)
		}
	}

	return result, nil
}
