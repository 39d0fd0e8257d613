package leveldb

import "errors"

var (
	ErrClosed   = errors.New("store: database is closed")
	ErrNotFound = errors.New("store: key not found")

	ErrIteratorInvalid = errors.New("store: iterator is not positioned on a valid entry")
)
