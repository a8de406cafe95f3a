package collections

import (
	"fmt"
	"iter"
	"slices"

	"github.com/pkg/errors"
	"github.com/tuannh982/hashset/utils/math"

	log "github.com/sirupsen/logrus"
)

const DefaultCapacity = 3

// HashSet is a set of values chained into a prime-sized bucket array.
//
// HashSet is not safe for concurrent use. Callers sharing a set between
// goroutines must synchronize access themselves.
type HashSet[V any] struct {
	buckets  []*entry[V]
	count    int
	version  int
	comparer Comparer[V]
	log      *log.Entry
}

type Option func(*options)

type options struct {
	logger *log.Entry
}

func WithLogger(logger *log.Entry) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// New creates an empty set. capacity is rounded up to the next prime.
func New[V any](capacity int, comparer Comparer[V], opts ...Option) (*HashSet[V], error) {
	if comparer == nil {
		return nil, ErrNilComparer
	}
	if capacity <= 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "capacity must be positive, got %d", capacity)
	}
	return newHashSet(math.NextPrime(capacity), comparer, opts...), nil
}

// FromSeq creates a set holding the distinct values of values. The
// sequence is consumed exactly once.
func FromSeq[V any](values iter.Seq[V], comparer Comparer[V], opts ...Option) (*HashSet[V], error) {
	if comparer == nil {
		return nil, ErrNilComparer
	}
	if values == nil {
		return nil, errors.Wrap(ErrNilInput, "values")
	}
	arr := slices.Collect(values)
	s := newHashSet(math.NextPrime(len(arr)), comparer, opts...)
	for _, v := range arr {
		s.Add(v)
	}
	return s, nil
}

func NewDefault[V comparable]() *HashSet[V] {
	return newHashSet(DefaultCapacity, DefaultComparer[V]())
}

func Of[V comparable](values ...V) *HashSet[V] {
	s, _ := FromSeq(slices.Values(values), DefaultComparer[V]())
	return s
}

func newHashSet[V any](capacity int, comparer Comparer[V], opts ...Option) *HashSet[V] {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = log.WithField("component", "hashset")
	}
	return &HashSet[V]{
		buckets:  make([]*entry[V], capacity),
		comparer: comparer,
		log:      o.logger,
	}
}

func (s *HashSet[V]) Count() int {
	return s.count
}

func (s *HashSet[V]) Capacity() int {
	return len(s.buckets)
}

func (s *HashSet[V]) IsEmpty() bool {
	return s.count == 0
}

func (s *HashSet[V]) Comparer() Comparer[V] {
	return s.comparer
}

func (s *HashSet[V]) Contains(v V) bool {
	for e := s.buckets[s.bucketIndex(v)]; e != nil; e = e.next {
		if s.comparer.Equal(e.value, v) {
			return true
		}
	}
	return false
}

// Add inserts v and reports whether it was absent. The bucket array grows
// before an insertion that would make count exceed capacity.
func (s *HashSet[V]) Add(v V) bool {
	if s.Contains(v) {
		return false
	}
	if s.count >= len(s.buckets) {
		s.grow()
	}
	link(s.buckets, newEntry(v), s.comparer.Hash(v))
	s.count++
	s.version++
	return true
}

func (s *HashSet[V]) Remove(v V) bool {
	idx := s.bucketIndex(v)
	var prev *entry[V]
	for e := s.buckets[idx]; e != nil; prev, e = e, e.next {
		if !s.comparer.Equal(e.value, v) {
			continue
		}
		if prev == nil {
			s.buckets[idx] = e.next
		} else {
			prev.next = e.next
		}
		s.count--
		s.version++
		return true
	}
	return false
}

// Clear removes every value. Capacity is kept.
func (s *HashSet[V]) Clear() {
	if s.count == 0 {
		return
	}
	clear(s.buckets)
	s.count = 0
	s.version++
}

// Entries returns the values in bucket order, then chain order.
func (s *HashSet[V]) Entries() []V {
	arr := make([]V, 0, s.count)
	for _, head := range s.buckets {
		for e := head; e != nil; e = e.next {
			arr = append(arr, e.value)
		}
	}
	return arr
}

// Clone returns an independent copy with the same comparer, capacity and
// chain layout.
func (s *HashSet[V]) Clone() *HashSet[V] {
	c := newHashSet(len(s.buckets), s.comparer, WithLogger(s.log))
	for i, head := range s.buckets {
		var tail *entry[V]
		for e := head; e != nil; e = e.next {
			n := newEntry(e.value)
			if tail == nil {
				c.buckets[i] = n
			} else {
				tail.next = n
			}
			tail = n
		}
	}
	c.count = s.count
	return c
}

func (s *HashSet[V]) String() string {
	return fmt.Sprint(s.Entries())
}

type Stats struct {
	Count        int     `yaml:"count"`
	Capacity     int     `yaml:"capacity"`
	UsedBuckets  int     `yaml:"usedBuckets"`
	LongestChain int     `yaml:"longestChain"`
	LoadFactor   float64 `yaml:"loadFactor"`
}

func (s *HashSet[V]) Stats() Stats {
	st := Stats{
		Count:      s.count,
		Capacity:   len(s.buckets),
		LoadFactor: float64(s.count) / float64(len(s.buckets)),
	}
	for _, head := range s.buckets {
		if head == nil {
			continue
		}
		st.UsedBuckets++
		n := 0
		for e := head; e != nil; e = e.next {
			n++
		}
		if n > st.LongestChain {
			st.LongestChain = n
		}
	}
	return st
}

// grow moves every entry into a larger prime-sized bucket array,
// recomputing each bucket index.
func (s *HashSet[V]) grow() {
	capacity := math.NextPrime(2*len(s.buckets) + 1)
	buckets := make([]*entry[V], capacity)
	for _, head := range s.buckets {
		for e := head; e != nil; {
			next := e.next
			e.next = nil
			link(buckets, e, s.comparer.Hash(e.value))
			e = next
		}
	}
	s.log.WithFields(log.Fields{
		"count":        s.count,
		"old_capacity": len(s.buckets),
		"new_capacity": capacity,
	}).Debug("grew bucket array")
	s.buckets = buckets
}

func (s *HashSet[V]) bucketIndex(v V) int {
	return bucketIndex(s.comparer.Hash(v), len(s.buckets))
}

// link appends e to the tail of its chain in buckets.
func link[V any](buckets []*entry[V], e *entry[V], hash int) {
	idx := bucketIndex(hash, len(buckets))
	if buckets[idx] == nil {
		buckets[idx] = e
		return
	}
	tail := buckets[idx]
	for tail.next != nil {
		tail = tail.next
	}
	tail.next = e
}

// bucketIndex is |hash mod capacity|; taking the modulo first keeps
// math.MinInt from overflowing.
func bucketIndex(hash, capacity int) int {
	idx := hash % capacity
	if idx < 0 {
		idx = -idx
	}
	return idx
}
