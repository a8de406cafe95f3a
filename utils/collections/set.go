package collections

import "iter"

// Set is a mutable, unordered collection of unique values.
type Set[V any] interface {
	Contains(v V) bool
	Add(v V) bool
	Remove(v V) bool
	Clear()
	Count() int
	Entries() []V
	All() iter.Seq[V]

	UnionWith(other iter.Seq[V]) error
	IntersectWith(other iter.Seq[V]) error
	ExceptWith(other iter.Seq[V]) error
	SymmetricExceptWith(other iter.Seq[V]) error

	IsSubsetOf(other iter.Seq[V]) (bool, error)
	IsSupersetOf(other iter.Seq[V]) (bool, error)
	IsProperSubsetOf(other iter.Seq[V]) (bool, error)
	IsProperSupersetOf(other iter.Seq[V]) (bool, error)
	Overlaps(other iter.Seq[V]) (bool, error)
	SetEquals(other iter.Seq[V]) (bool, error)
}

var _ Set[int] = (*HashSet[int])(nil)
