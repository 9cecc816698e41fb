package samples

import (
	"fmt"
	"strings"
	"time"

	"github.com/marshallshelly/northwind-samples/pkg/linq"
	"github.com/marshallshelly/northwind-samples/pkg/model"
	"github.com/marshallshelly/northwind-samples/pkg/runtime"
	"github.com/shopspring/decimal"
)

// MonthYear formats t as "{month}/{year}" without zero padding.
func MonthYear(t time.Time) string {
	return fmt.Sprintf("%d/%d", model.MonthOf(t), model.YearOf(t))
}

// Q4 yields, for every customer with orders, the month and year of the
// first order followed by the customer.
func Q4(src model.Source) runtime.Stream {
	return func(yield func(runtime.Item, error) bool) {
		for c := range linq.Where(src.Customers(), model.Customer.HasOrders) {
			first, err := c.FirstOrderDate()
			if err != nil {
				fail(yield, err)
				return
			}
			if !record(yield, MonthYear(first)) || !record(yield, c) {
				return
			}
		}
	}
}

// ranked carries the precomputed sort keys of Q5.
type ranked struct {
	customer model.Customer
	first    time.Time
	turnover decimal.Decimal
}

var firstOrderOrdering = linq.OrderBy(linq.Key(func(r ranked) int { return model.YearOf(r.first) })).
	ThenBy(linq.Key(func(r ranked) int { return model.MonthOf(r.first) })).
	ThenByDescending(linq.KeyFunc(func(r ranked) decimal.Decimal { return r.turnover }, decimal.Decimal.Cmp)).
	ThenBy(linq.KeyFunc(func(r ranked) string { return r.customer.CompanyName }, strings.Compare))

// Q5 yields the first order date and the customer, for every customer with
// orders, sorted by year and month of the first order, turnover from
// highest to lowest, then company name.
func Q5(src model.Source) runtime.Stream {
	return func(yield func(runtime.Item, error) bool) {
		var rows []ranked
		for c := range linq.Where(src.Customers(), model.Customer.HasOrders) {
			first, err := c.FirstOrderDate()
			if err != nil {
				fail(yield, err)
				return
			}
			turnover, err := c.Turnover()
			if err != nil {
				fail(yield, err)
				return
			}
			rows = append(rows, ranked{customer: c, first: first, turnover: turnover})
		}

		for _, r := range firstOrderOrdering.Sort(linq.FromSlice(rows)) {
			if !record(yield, r.first) || !record(yield, r.customer) {
				return
			}
		}
	}
}
