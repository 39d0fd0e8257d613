package db

// Store represents read-only access to an existing on-disk key-value store.
// The store is created and maintained by an external writer (the browser);
// this package never mutates it.
type Store interface {
	Get(key []byte) ([]byte, error)
	NewIterator(start, end []byte) (Iterator, error)
	Close() error
}

// Iterator provides sequential access over a range of key-value pairs in
// ascending byte order. Iterators must be closed after use.
type Iterator interface {
	Next() bool
	Key() []byte
	Value() ([]byte, error)
	Valid() bool
	Close() error
}
