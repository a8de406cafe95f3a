package collections

import (
	"iter"
	"slices"

	"github.com/pkg/errors"
)

// The methods below accept any sequence as the other operand. Membership
// in other is always decided by the receiver's comparer, and other is
// fully read before the receiver is modified, so passing s.All() is safe.

// UnionWith adds every value of other.
func (s *HashSet[V]) UnionWith(other iter.Seq[V]) error {
	if other == nil {
		return errors.Wrap(ErrNilInput, "union with")
	}
	added := false
	for _, v := range slices.Collect(other) {
		if s.Add(v) {
			added = true
		}
	}
	if added {
		s.version++
	}
	return nil
}

// IntersectWith keeps only the values also present in other.
func (s *HashSet[V]) IntersectWith(other iter.Seq[V]) error {
	d, err := s.distinct(other, "intersect with")
	if err != nil {
		return err
	}
	if d.count == 0 {
		s.Clear()
		return nil
	}
	for _, v := range s.Entries() {
		if !d.Contains(v) {
			s.Remove(v)
		}
	}
	return nil
}

// ExceptWith removes every value present in other.
func (s *HashSet[V]) ExceptWith(other iter.Seq[V]) error {
	if other == nil {
		return errors.Wrap(ErrNilInput, "except with")
	}
	for _, v := range slices.Collect(other) {
		if s.count == 0 {
			break
		}
		s.Remove(v)
	}
	return nil
}

// SymmetricExceptWith keeps the values present in exactly one of s and
// other.
func (s *HashSet[V]) SymmetricExceptWith(other iter.Seq[V]) error {
	d, err := s.distinct(other, "symmetric except with")
	if err != nil {
		return err
	}
	for _, v := range d.Entries() {
		if !s.Remove(v) {
			s.Add(v)
		}
	}
	return nil
}

func (s *HashSet[V]) IsSubsetOf(other iter.Seq[V]) (bool, error) {
	d, err := s.distinct(other, "is subset of")
	if err != nil {
		return false, err
	}
	return s.count <= d.count && s.within(d), nil
}

func (s *HashSet[V]) IsProperSubsetOf(other iter.Seq[V]) (bool, error) {
	d, err := s.distinct(other, "is proper subset of")
	if err != nil {
		return false, err
	}
	return s.count < d.count && s.within(d), nil
}

func (s *HashSet[V]) IsSupersetOf(other iter.Seq[V]) (bool, error) {
	if other == nil {
		return false, errors.Wrap(ErrNilInput, "is superset of")
	}
	for v := range other {
		if !s.Contains(v) {
			return false, nil
		}
	}
	return true, nil
}

func (s *HashSet[V]) IsProperSupersetOf(other iter.Seq[V]) (bool, error) {
	d, err := s.distinct(other, "is proper superset of")
	if err != nil {
		return false, err
	}
	return d.count < s.count && d.within(s), nil
}

// Overlaps reports whether s and other share at least one value.
func (s *HashSet[V]) Overlaps(other iter.Seq[V]) (bool, error) {
	if other == nil {
		return false, errors.Wrap(ErrNilInput, "overlaps")
	}
	if s.count == 0 {
		return false, nil
	}
	for v := range other {
		if s.Contains(v) {
			return true, nil
		}
	}
	return false, nil
}

// SetEquals reports whether s and other hold the same values, ignoring
// duplicates in other.
func (s *HashSet[V]) SetEquals(other iter.Seq[V]) (bool, error) {
	d, err := s.distinct(other, "set equals")
	if err != nil {
		return false, err
	}
	return s.count == d.count && d.within(s), nil
}

// distinct reads other into a new set that uses the receiver's comparer.
func (s *HashSet[V]) distinct(other iter.Seq[V], op string) (*HashSet[V], error) {
	if other == nil {
		return nil, errors.Wrap(ErrNilInput, op)
	}
	return FromSeq(other, s.comparer, WithLogger(s.log))
}

// within reports whether every value of s is contained in t.
func (s *HashSet[V]) within(t *HashSet[V]) bool {
	for _, head := range s.buckets {
		for e := head; e != nil; e = e.next {
			if !t.Contains(e.value) {
				return false
			}
		}
	}
	return true
}
