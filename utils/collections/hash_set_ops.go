package collections

import (
	"iter"

	"github.com/pkg/errors"
)

// Union, Intersection, Difference and SymmetricDifference leave both
// operands untouched and return a new set that uses a's comparer.

func Union[V any](a, b *HashSet[V]) (*HashSet[V], error) {
	return combine(a, b, "union", (*HashSet[V]).UnionWith)
}

func Intersection[V any](a, b *HashSet[V]) (*HashSet[V], error) {
	return combine(a, b, "intersection", (*HashSet[V]).IntersectWith)
}

// Difference returns the values of a that are not in b.
func Difference[V any](a, b *HashSet[V]) (*HashSet[V], error) {
	return combine(a, b, "difference", (*HashSet[V]).ExceptWith)
}

func SymmetricDifference[V any](a, b *HashSet[V]) (*HashSet[V], error) {
	return combine(a, b, "symmetric difference", (*HashSet[V]).SymmetricExceptWith)
}

func combine[V any](a, b *HashSet[V], op string, apply func(*HashSet[V], iter.Seq[V]) error) (*HashSet[V], error) {
	if a == nil || b == nil {
		return nil, errors.Wrapf(ErrNilInput, "%s: operands must not be nil", op)
	}
	r := a.Clone()
	if err := apply(r, b.All()); err != nil {
		return nil, err
	}
	return r, nil
}
