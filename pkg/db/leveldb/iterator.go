package leveldb

import (
	"github.com/syndtr/goleveldb/leveldb/iterator"
	"github.com/syndtr/goleveldb/leveldb/util"

	"lsgrab/pkg/db"
)

// Iterator wraps a goleveldb iterator. goleveldb reuses its key/value
// buffers between positions, so accessors copy bytes out.
type Iterator struct {
	iter iterator.Iterator
}

// NewIterator returns an iterator over the half-open key range [start, end)
// in ascending byte order. A nil bound leaves that side of the range open.
func (s *Store) NewIterator(start, end []byte) (db.Iterator, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrClosed
	}

	iter := s.db.NewIterator(&util.Range{Start: start, Limit: end}, nil)
	return &Iterator{iter: iter}, nil
}

func (it *Iterator) Next() bool {
	return it.iter.Next()
}

func (it *Iterator) Key() []byte {
	key := it.iter.Key()
	result := make([]byte, len(key))
	copy(result, key)
	return result
}

func (it *Iterator) Value() ([]byte, error) {
	if !it.iter.Valid() {
		return nil, ErrIteratorInvalid
	}

	val := it.iter.Value()
	result := make([]byte, len(val))
	copy(result, val)
	return result, nil
}

func (it *Iterator) Valid() bool {
	return it.iter.Valid()
}

// Close releases the iterator and reports any error the underlying store
// hit while iterating.
func (it *Iterator) Close() error {
	it.iter.Release()
	return it.iter.Error()
}
