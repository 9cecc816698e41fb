package samples

import (
	"github.com/marshallshelly/northwind-samples/pkg/linq"
	"github.com/marshallshelly/northwind-samples/pkg/model"
	"github.com/marshallshelly/northwind-samples/pkg/runtime"
	"github.com/shopspring/decimal"
)

// TurnoverThresholds are the values of X used by Q1, in emission order.
var TurnoverThresholds = []decimal.Decimal{
	decimal.NewFromInt(10000),
	decimal.NewFromInt(20000),
	decimal.NewFromInt(3000),
}

// OrderThreshold is the value of X used by Q3.
var OrderThreshold = decimal.NewFromInt(20000)

// Threshold marks the end of the customers selected for one value of X.
type Threshold struct {
	X decimal.Decimal
}

// String renders the marker.
func (t Threshold) String() string {
	return "X:" + t.X.String()
}

// Q1 lists the customers whose turnover exceeds each of TurnoverThresholds.
func Q1(src model.Source) runtime.Stream {
	return CustomersWithTurnoverAbove(src, TurnoverThresholds...)
}

// CustomersWithTurnoverAbove yields, for each threshold in order, every
// customer whose turnover is strictly greater, followed by a Threshold marker.
func CustomersWithTurnoverAbove(src model.Source, thresholds ...decimal.Decimal) runtime.Stream {
	return func(yield func(runtime.Item, error) bool) {
		for _, x := range thresholds {
			for c := range src.Customers() {
				turnover, err := c.Turnover()
				if err != nil {
					fail(yield, err)
					return
				}
				if turnover.GreaterThan(x) && !record(yield, c) {
					return
				}
			}
			if !record(yield, Threshold{X: x}) {
				return
			}
		}
	}
}

// Q3 lists the customers with at least one order above OrderThreshold.
func Q3(src model.Source) runtime.Stream {
	return CustomersWithOrderAbove(src, OrderThreshold)
}

// CustomersWithOrderAbove yields every customer having an order whose
// total is strictly greater than x.
func CustomersWithOrderAbove(src model.Source, x decimal.Decimal) runtime.Stream {
	return func(yield func(runtime.Item, error) bool) {
		for c := range src.Customers() {
			hasLarge := linq.Any(c.OrderSeq(), func(o model.Order) bool {
				return o.Total.GreaterThan(x)
			})
			if hasLarge && !record(yield, c) {
				return
			}
		}
	}
}
