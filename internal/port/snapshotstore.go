package port

import "sfz/internal/domain"

type SnapshotStore interface {
	ReplaceSnapshot(meta domain.SnapshotMeta, entries []domain.SnapshotEntry) error

	GetEntry(path string) (domain.SnapshotEntry, error)

	ListEntries() ([]domain.SnapshotEntry, error)

	GetMeta() (domain.SnapshotMeta, error)

	Clear() error

	Close() error
}
