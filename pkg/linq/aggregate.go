package linq

import (
	"fmt"
	"iter"

	"github.com/marshallshelly/northwind-samples/pkg/runtime"
	"github.com/shopspring/decimal"
)

// MaxDecimal is the largest magnitude a money sum may reach, the range
// of a 96-bit scaled decimal.
var MaxDecimal = decimal.RequireFromString("79228162514264337593543950335")

// Sum adds decimals exactly. An empty sequence sums to zero.
func Sum(seq iter.Seq[decimal.Decimal]) (decimal.Decimal, error) {
	total := decimal.Zero
	for v := range seq {
		total = total.Add(v)
		if total.Abs().GreaterThan(MaxDecimal) {
			return decimal.Zero, fmt.Errorf("%w: sum exceeds %s", runtime.ErrNumericOverflow, MaxDecimal)
		}
	}
	return total, nil
}

// Average returns the arithmetic mean of seq.
func Average(seq iter.Seq[decimal.Decimal]) (decimal.Decimal, error) {
	total := decimal.Zero
	n := int64(0)
	for v := range seq {
		total = total.Add(v)
		if total.Abs().GreaterThan(MaxDecimal) {
			return decimal.Zero, fmt.Errorf("%w: sum exceeds %s", runtime.ErrNumericOverflow, MaxDecimal)
		}
		n++
	}
	if n == 0 {
		return decimal.Zero, fmt.Errorf("%w: average of no values", runtime.ErrEmptyAggregate)
	}
	return total.Div(decimal.NewFromInt(n)), nil
}

// AverageInt returns the exact decimal mean of integer values.
func AverageInt(seq iter.Seq[int]) (decimal.Decimal, error) {
	return Average(Select(seq, func(v int) decimal.Decimal {
		return decimal.NewFromInt(int64(v))
	}))
}

// Min returns the smallest element under compare; the first one wins ties.
func Min[T any](seq iter.Seq[T], compare Comparer[T]) (T, error) {
	var best T
	found := false
	for v := range seq {
		if !found || compare(v, best) < 0 {
			best = v
			found = true
		}
	}
	if !found {
		var zero T
		return zero, fmt.Errorf("%w: min of no values", runtime.ErrEmptyAggregate)
	}
	return best, nil
}
