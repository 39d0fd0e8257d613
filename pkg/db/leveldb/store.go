package leveldb

import (
	"fmt"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
)

// Store is a read-only handle to an existing LevelDB database directory.
// It never creates or mutates the database: Open fails if the directory is
// missing, and the handle grabs the same file lock the owning process
// (normally a running browser) would hold.
type Store struct {
	db     *leveldb.DB
	closed bool
	mu     sync.RWMutex
}

// Open opens the LevelDB database at path for reading.
func Open(path string) (*Store, error) {
	opts := &opt.Options{
		ErrorIfMissing: true,
		ReadOnly:       true,
	}

	db, err := leveldb.OpenFile(path, opts)
	if err != nil {
		return nil, fmt.Errorf("open leveldb at %s: %w", path, err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Get(key []byte) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrClosed
	}

	value, err := s.db.Get(key, nil)
	if err == leveldb.ErrNotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	result := make([]byte, len(value))
	copy(result, value)
	return result, nil
}

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}
