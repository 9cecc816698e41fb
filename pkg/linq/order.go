package linq

import (
	"cmp"
	"iter"
	"slices"
)

// Comparer orders two values: negative, zero or positive.
type Comparer[T any] func(a, b T) int

// Key compares values by an ordered key.
func Key[T any, K cmp.Ordered](key func(T) K) Comparer[T] {
	return func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	}
}

// KeyFunc compares values by a key that has its own comparison,
// such as decimal.Decimal.Cmp.
func KeyFunc[T, K any](key func(T) K, compare func(K, K) int) Comparer[T] {
	return func(a, b T) int {
		return compare(key(a), key(b))
	}
}

type orderKey[T any] struct {
	compare   Comparer[T]
	direction Direction
}

// Ordering is a composite sort specification applied lexicographically.
type Ordering[T any] struct {
	keys []orderKey[T]
}

// OrderBy starts an ordering with an ascending key.
func OrderBy[T any](c Comparer[T]) *Ordering[T] {
	return &Ordering[T]{keys: []orderKey[T]{{compare: c, direction: Asc}}}
}

// OrderByDescending starts an ordering with a descending key.
func OrderByDescending[T any](c Comparer[T]) *Ordering[T] {
	return &Ordering[T]{keys: []orderKey[T]{{compare: c, direction: Desc}}}
}

// ThenBy adds an ascending tie-breaker.
func (o *Ordering[T]) ThenBy(c Comparer[T]) *Ordering[T] {
	o.keys = append(o.keys, orderKey[T]{compare: c, direction: Asc})
	return o
}

// ThenByDescending adds a descending tie-breaker.
func (o *Ordering[T]) ThenByDescending(c Comparer[T]) *Ordering[T] {
	o.keys = append(o.keys, orderKey[T]{compare: c, direction: Desc})
	return o
}

// Compare applies every key in order.
func (o *Ordering[T]) Compare(a, b T) int {
	for _, k := range o.keys {
		c := k.compare(a, b)
		if k.direction == Desc {
			c = -c
		}
		if c != 0 {
			return c
		}
	}
	return 0
}

// Sort materializes seq and sorts it stably, so elements equal under
// every key keep their input order.
func (o *Ordering[T]) Sort(seq iter.Seq[T]) []T {
	out := ToSlice(seq)
	slices.SortStableFunc(out, o.Compare)
	return out
}
