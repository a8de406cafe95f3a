package collections

// entry is one link of a bucket chain. value never changes after creation.
type entry[V any] struct {
	value V
	next  *entry[V]
}

func newEntry[V any](v V) *entry[V] {
	return &entry[V]{
		value: v,
	}
}
