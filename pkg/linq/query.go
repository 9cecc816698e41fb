// Package linq provides lazy, generic query operators over iter.Seq.
//
// Filtering and projection stay lazy; grouping and sorting materialize
// only the collection they need. Iteration order is always the order of
// the input sequence unless an operator documents otherwise.
package linq

import "iter"

// Direction represents the sort direction of an ordering key.
type Direction string

const (
	// Asc represents ascending order.
	Asc Direction = "ASC"
	// Desc represents descending order.
	Desc Direction = "DESC"
)

// Group is a key together with the items that produced it, in input order.
type Group[K comparable, T any] struct {
	Key   K
	Items []T
}

// All returns the group's items as a sequence.
func (g Group[K, T]) All() iter.Seq[T] {
	return FromSlice(g.Items)
}

// Len returns the number of items in the group.
func (g Group[K, T]) Len() int {
	return len(g.Items)
}

// FromSlice returns a restartable sequence over s.
func FromSlice[T any](s []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s {
			if !yield(v) {
				return
			}
		}
	}
}

// ToSlice materializes a sequence.
func ToSlice[T any](seq iter.Seq[T]) []T {
	var out []T
	for v := range seq {
		out = append(out, v)
	}
	return out
}
