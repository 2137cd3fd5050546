package snapshot

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/btree"
	"go.etcd.io/bbolt"

	"github.com/louhi-io/louhi/types"
)

// Bucket names in bbolt
var (
	bucketSnapshots = []byte("snapshots")
	bucketMeta      = []byte("meta")
)

// Store keeps a history of inventory snapshots keyed by their timestamp.
// An in-memory btree index over the keys gives ordered listing without
// touching disk.
type Store struct {
	mu sync.RWMutex

	index *btree.BTreeG[string]
	db    *bbolt.DB
}

// Open opens or creates a snapshot store at the given path
func Open(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot store: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, bucket := range [][]byte{bucketSnapshots, bucketMeta} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	s := &Store{
		index: btree.NewG[string](32, func(a, b string) bool { return a < b }),
		db:    db,
	}
	if err := s.rebuildIndex(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the store
func (s *Store) Close() error {
	return s.db.Close()
}

// Save persists one snapshot and returns its key
func (s *Store) Save(snap *types.InventorySnapshot) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := snap.Metadata.Timestamp
	if key == "" {
		return "", fmt.Errorf("snapshot has no timestamp")
	}

	value, err := json.Marshal(snap)
	if err != nil {
		return "", fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketSnapshots).Put([]byte(key), value)
	})
	if err != nil {
		return "", fmt.Errorf("failed to store snapshot: %w", err)
	}

	s.index.ReplaceOrInsert(key)
	return key, nil
}

// Get loads one snapshot by key
func (s *Store) Get(key string) (*types.InventorySnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var snap types.InventorySnapshot
	err := s.db.View(func(tx *bbolt.Tx) error {
		value := tx.Bucket(bucketSnapshots).Get([]byte(key))
		if value == nil {
			return fmt.Errorf("snapshot %s not found", key)
		}
		return json.Unmarshal(value, &snap)
	})
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

// Keys returns every stored snapshot key in ascending timestamp order
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, s.index.Len())
	s.index.Ascend(func(key string) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Latest loads the most recent snapshot, or nil when the store is empty
func (s *Store) Latest() (*types.InventorySnapshot, error) {
	s.mu.RLock()
	var latest string
	s.index.Descend(func(key string) bool {
		latest = key
		return false
	})
	s.mu.RUnlock()

	if latest == "" {
		return nil, nil
	}
	return s.Get(latest)
}

// rebuildIndex reloads the key index from disk
func (s *Store) rebuildIndex() error {
	return s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketSnapshots).ForEach(func(k, _ []byte) error {
			s.index.ReplaceOrInsert(string(k))
			return nil
		})
	})
}
