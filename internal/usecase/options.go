package usecase

import "sfz/internal/domain"

// WalkOptions controls how use cases traverse a tree.
type WalkOptions struct {
	Type     domain.WalkType
	Includes []string
	Excludes []string
}
