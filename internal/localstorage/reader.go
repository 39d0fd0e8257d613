// Package localstorage reads key/value pairs out of a browser profile's
// local-storage database for a single origin. Every operation opens its own
// store handle and releases it on every exit path; nothing is cached or
// shared between calls.
package localstorage

import (
	"errors"
	"fmt"

	"lsgrab/internal/storagekey"
	"lsgrab/pkg/db"
	"lsgrab/pkg/db/leveldb"
	"lsgrab/pkg/log"
)

var (
	// ErrInvalidInput means the URL could not yield an origin; the call is
	// not retryable without correcting the input.
	ErrInvalidInput = errors.New("localstorage: invalid input")
	// ErrStoreUnavailable means the store could not be opened or failed mid
	// operation: missing path, lock held by a running browser, corruption.
	ErrStoreUnavailable = errors.New("localstorage: store unavailable")
	// ErrNotFound means the lookup key has no record; legitimate absence,
	// distinct from a format violation.
	ErrNotFound = errors.New("localstorage: entry not found")
	// ErrMalformedValue means a retrieved record violates the expected
	// store format (missing frame byte or origin separator).
	ErrMalformedValue = errors.New("localstorage: malformed record")
)

// Read returns the decoded value stored for appKey under rawURL's origin in
// the LevelDB database at storePath.
func Read(storePath, rawURL, appKey string) (string, error) {
	key, err := storagekey.EntryKey(rawURL, appKey)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	store, err := leveldb.Open(storePath)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	defer store.Close()

	raw, err := store.Get(key)
	if errors.Is(err, leveldb.ErrNotFound) {
		return "", fmt.Errorf("%w: %q has no key %q", ErrNotFound, rawURL, appKey)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	value, err := storagekey.DecodeValue(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedValue, err)
	}
	return value, nil
}

// ReadAll opens a scan over every entry stored under rawURL's origin. The
// caller must drain or Close the returned Scan; an origin with no entries
// yields an exhausted scan, not an error.
func ReadAll(storePath, rawURL string) (*Scan, error) {
	lower, upper, err := storagekey.ScanBounds(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	store, err := leveldb.Open(storePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	iter, err := store.NewIterator(lower, upper)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
		if closeErr := store.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
		return nil, err
	}

	log.Store.Debug().Str("url", rawURL).Str("path", storePath).Msg("scan opened")
	return &Scan{store: store, iter: iter}, nil
}

// Scan is a lazy, forward-only, non-restartable sequence of decoded
// (application key, value) pairs for one origin, in the store's ascending
// byte order. It owns the store handle and the iterator; both are released
// exactly once, whether the scan is drained, abandoned early, or fails.
type Scan struct {
	store db.Store
	iter  db.Iterator

	key    string
	value  string
	err    error
	closed bool
}

// Next advances to the next entry, decoding its key and value. It returns
// false when the scan is exhausted or an error occurs; the scan closes
// itself in both cases, and Err distinguishes them.
func (s *Scan) Next() bool {
	if s.closed {
		return false
	}
	if !s.iter.Next() {
		// Exhausted, or the underlying store failed; Close surfaces it.
		if err := s.doClose(); err != nil {
			s.err = fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
		}
		return false
	}

	raw, err := s.iter.Value()
	if err != nil {
		s.fail(fmt.Errorf("%w: %w", ErrStoreUnavailable, err))
		return false
	}

	key, err := storagekey.DecodeKey(s.iter.Key())
	if err != nil {
		s.fail(fmt.Errorf("%w: %w", ErrMalformedValue, err))
		return false
	}
	value, err := storagekey.DecodeValue(raw)
	if err != nil {
		s.fail(fmt.Errorf("%w: %w", ErrMalformedValue, err))
		return false
	}

	s.key, s.value = key, value
	return true
}

// Key returns the application key of the current entry.
func (s *Scan) Key() string { return s.key }

// Value returns the decoded value of the current entry.
func (s *Scan) Value() string { return s.value }

// Err returns the first error the scan hit, if any. A drained scan and an
// abandoned scan both report nil.
func (s *Scan) Err() error { return s.err }

// Close releases the iterator and the store handle. It is idempotent and
// safe to defer alongside normal consumption; abandoning a scan early must
// still Close it so the store can be reopened immediately.
func (s *Scan) Close() error {
	if s.closed {
		return nil
	}
	log.Store.Debug().Msg("scan closed before exhaustion")
	if err := s.doClose(); err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return nil
}

func (s *Scan) fail(err error) {
	if closeErr := s.doClose(); closeErr != nil {
		err = errors.Join(err, closeErr)
	}
	s.err = err
}

func (s *Scan) doClose() error {
	s.closed = true
	iterErr := s.iter.Close()
	storeErr := s.store.Close()
	if iterErr != nil {
		return iterErr
	}
	return storeErr
}
