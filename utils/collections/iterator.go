package collections

import (
	"iter"

	"github.com/pkg/errors"
)

// Iterator walks a HashSet in bucket order, then chain order. It captures
// the set version when created and stops with ErrConcurrentModification
// if the set changes before the walk ends.
type Iterator[V any] struct {
	set     *HashSet[V]
	version int
	bucket  int
	cur     *entry[V]
	done    bool
	err     error
}

func (s *HashSet[V]) Iterator() *Iterator[V] {
	return &Iterator[V]{
		set:     s,
		version: s.version,
	}
}

func (it *Iterator[V]) Next() bool {
	if it.done || it.err != nil {
		return false
	}
	if it.version != it.set.version {
		it.err = errors.Wrapf(ErrConcurrentModification, "version %d, started at %d", it.set.version, it.version)
		it.cur = nil
		return false
	}
	if it.cur != nil {
		it.cur = it.cur.next
	}
	for it.cur == nil {
		if it.bucket >= len(it.set.buckets) {
			it.done = true
			return false
		}
		it.cur = it.set.buckets[it.bucket]
		it.bucket++
	}
	return true
}

// Value returns the value at the current position, or the zero value when
// Next has not returned true.
func (it *Iterator[V]) Value() (v V) {
	if it.cur == nil {
		return v
	}
	return it.cur.value
}

func (it *Iterator[V]) Err() error {
	return it.err
}

// All returns a single-pass sequence over the set. Since a range-over-func
// sequence cannot return an error, a modification during the walk panics
// with an error wrapping ErrConcurrentModification. Use Iterator to get the
// error instead.
func (s *HashSet[V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		it := s.Iterator()
		for it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
		if err := it.Err(); err != nil {
			panic(err)
		}
	}
}
