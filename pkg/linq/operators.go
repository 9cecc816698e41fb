package linq

import "iter"

// Where yields the elements of seq that satisfy pred.
func Where[T any](seq iter.Seq[T], pred func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if pred(v) && !yield(v) {
				return
			}
		}
	}
}

// Select projects every element of seq through f.
func Select[T, R any](seq iter.Seq[T], f func(T) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		for v := range seq {
			if !yield(f(v)) {
				return
			}
		}
	}
}

// SelectMany projects every element to a sequence and flattens the result.
func SelectMany[T, R any](seq iter.Seq[T], f func(T) iter.Seq[R]) iter.Seq[R] {
	return func(yield func(R) bool) {
		for v := range seq {
			for r := range f(v) {
				if !yield(r) {
					return
				}
			}
		}
	}
}

// Any reports whether some element satisfies pred.
func Any[T any](seq iter.Seq[T], pred func(T) bool) bool {
	for v := range seq {
		if pred(v) {
			return true
		}
	}
	return false
}

// Count returns the number of elements in seq.
func Count[T any](seq iter.Seq[T]) int {
	n := 0
	for range seq {
		n++
	}
	return n
}

// CountWhere returns the number of elements that satisfy pred.
func CountWhere[T any](seq iter.Seq[T], pred func(T) bool) int {
	return Count(Where(seq, pred))
}

// Distinct yields each value once, at its first appearance.
func Distinct[T comparable](seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		seen := make(map[T]struct{})
		for v := range seq {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			if !yield(v) {
				return
			}
		}
	}
}

// GroupBy partitions seq by key. Groups come back in the order their key
// first appears; items keep their input order inside a group.
func GroupBy[T any, K comparable](seq iter.Seq[T], key func(T) K) []Group[K, T] {
	var groups []Group[K, T]
	index := make(map[K]int)

	for v := range seq {
		k := key(v)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group[K, T]{Key: k})
		}
		groups[i].Items = append(groups[i].Items, v)
	}

	return groups
}

// Lookup is a keyed view over a grouped sequence.
type Lookup[K comparable, T any] struct {
	groups []Group[K, T]
	index  map[K]int
}

// ToLookup groups seq by key for repeated keyed access.
func ToLookup[T any, K comparable](seq iter.Seq[T], key func(T) K) *Lookup[K, T] {
	groups := GroupBy(seq, key)
	index := make(map[K]int, len(groups))
	for i, g := range groups {
		index[g.Key] = i
	}
	return &Lookup[K, T]{groups: groups, index: index}
}

// Get returns the items for k, or an empty sequence.
func (l *Lookup[K, T]) Get(k K) iter.Seq[T] {
	i, ok := l.index[k]
	if !ok {
		return FromSlice[T](nil)
	}
	return l.groups[i].All()
}

// Groups returns the groups in first-appearance order.
func (l *Lookup[K, T]) Groups() []Group[K, T] {
	return l.groups
}
