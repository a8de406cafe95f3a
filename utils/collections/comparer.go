package collections

import (
	"bytes"
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Comparer supplies equality and hashing for set values. Values that are
// Equal must have the same Hash.
type Comparer[V any] interface {
	Equal(a, b V) bool
	Hash(v V) int
}

type EqualFunc[V any] func(a, b V) bool

type HashFunc[V any] func(v V) int

type funcComparer[V any] struct {
	equal EqualFunc[V]
	hash  HashFunc[V]
}

func NewComparer[V any](equal EqualFunc[V], hash HashFunc[V]) (Comparer[V], error) {
	if equal == nil || hash == nil {
		return nil, errors.Wrap(ErrNilComparer, "equal and hash funcs are required")
	}
	return &funcComparer[V]{
		equal: equal,
		hash:  hash,
	}, nil
}

func (c *funcComparer[V]) Equal(a, b V) bool {
	return c.equal(a, b)
}

func (c *funcComparer[V]) Hash(v V) int {
	return c.hash(v)
}

type defaultComparer[V comparable] struct {
	seed maphash.Seed
}

// DefaultComparer compares with == and hashes with maphash. The seed is
// random per comparer, so bucket layout differs between processes.
func DefaultComparer[V comparable]() Comparer[V] {
	return &defaultComparer[V]{
		seed: maphash.MakeSeed(),
	}
}

func (c *defaultComparer[V]) Equal(a, b V) bool {
	return a == b
}

func (c *defaultComparer[V]) Hash(v V) int {
	return int(maphash.Comparable(c.seed, v))
}

type integerComparer[V constraints.Integer] struct{}

// IntegerComparer hashes an integer to itself.
func IntegerComparer[V constraints.Integer]() Comparer[V] {
	return integerComparer[V]{}
}

func (integerComparer[V]) Equal(a, b V) bool {
	return a == b
}

func (integerComparer[V]) Hash(v V) int {
	return int(v)
}

type stringComparer struct{}

func StringComparer() Comparer[string] {
	return stringComparer{}
}

func (stringComparer) Equal(a, b string) bool {
	return a == b
}

func (stringComparer) Hash(v string) int {
	return int(xxhash.Sum64String(v))
}

type bytesComparer struct{}

// BytesComparer compares byte slices by content. A nil slice and an empty
// slice are the same value.
func BytesComparer() Comparer[[]byte] {
	return bytesComparer{}
}

func (bytesComparer) Equal(a, b []byte) bool {
	return bytes.Equal(a, b)
}

func (bytesComparer) Hash(v []byte) int {
	return int(xxhash.Sum64(v))
}
