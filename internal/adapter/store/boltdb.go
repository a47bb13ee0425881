package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
	"sfz/internal/domain"
)

var (
	bucketEntries = []byte("entries")
	bucketMeta    = []byte("meta")
	bucketStats   = []byte("stats")
	keySnapshot   = []byte("snapshot")
)

var (
	ErrEntryNotFound = errors.New("entry not found")
	ErrNoSnapshot    = errors.New("no snapshot recorded")
)

// BoltStore keeps the most recent snapshot of a tree in a bbolt database.
// Entries are keyed by their path relative to the snapshot root.
type BoltStore struct {
	db *bbolt.DB
}

func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketEntries, bucketMeta, bucketStats} {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", b, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db}, nil
}

type entryRecord struct {
	Kind    string `json:"kind"`
	Mode    uint32 `json:"mode"`
	Size    int64  `json:"size"`
	ModTime int64  `json:"mod_time"`
}

func encodeEntry(e domain.SnapshotEntry) ([]byte, error) {
	return json.Marshal(entryRecord{
		Kind:    e.Kind,
		Mode:    e.Mode,
		Size:    e.Size,
		ModTime: e.ModTime.UnixNano(),
	})
}

func decodeEntry(path string, data []byte) (domain.SnapshotEntry, error) {
	var rec entryRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return domain.SnapshotEntry{}, fmt.Errorf("corrupt entry %s: %w", path, err)
	}
	if _, err := domain.ParseKind(rec.Kind); err != nil {
		return domain.SnapshotEntry{}, fmt.Errorf("corrupt entry %s: %w", path, err)
	}
	return domain.SnapshotEntry{
		Path:    path,
		Kind:    rec.Kind,
		Mode:    rec.Mode,
		Size:    rec.Size,
		ModTime: time.Unix(0, rec.ModTime),
	}, nil
}

// ReplaceSnapshot drops the stored entries and writes the new set along with
// its metadata in a single transaction.
func (s *BoltStore) ReplaceSnapshot(meta domain.SnapshotMeta, entries []domain.SnapshotEntry) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket(bucketEntries); err != nil && !errors.Is(err, bbolt.ErrBucketNotFound) {
			return err
		}
		b, err := tx.CreateBucket(bucketEntries)
		if err != nil {
			return err
		}
		for _, e := range entries {
			data, err := encodeEntry(e)
			if err != nil {
				return err
			}
			if err := b.Put([]byte(e.Path), data); err != nil {
				return fmt.Errorf("failed to store entry %s: %w", e.Path, err)
			}
		}

		meta.Entries = len(entries)
		data, err := json.Marshal(meta)
		if err != nil {
			return err
		}
		return tx.Bucket(bucketMeta).Put(keySnapshot, data)
	})
}

func (s *BoltStore) GetEntry(path string) (domain.SnapshotEntry, error) {
	var entry domain.SnapshotEntry
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketEntries).Get([]byte(path))
		if data == nil {
			return fmt.Errorf("%w: %s", ErrEntryNotFound, path)
		}
		var err error
		entry, err = decodeEntry(path, data)
		return err
	})
	return entry, err
}

// ListEntries returns every stored entry in key order.
func (s *BoltStore) ListEntries() ([]domain.SnapshotEntry, error) {
	var entries []domain.SnapshotEntry
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketEntries).ForEach(func(k, v []byte) error {
			e, err := decodeEntry(string(k), v)
			if err != nil {
				return err
			}
			entries = append(entries, e)
			return nil
		})
	})
	return entries, err
}

func (s *BoltStore) GetMeta() (domain.SnapshotMeta, error) {
	var meta domain.SnapshotMeta
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketMeta).Get(keySnapshot)
		if data == nil {
			return ErrNoSnapshot
		}
		return json.Unmarshal(data, &meta)
	})
	return meta, err
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}
