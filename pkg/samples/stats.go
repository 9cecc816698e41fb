package samples

import (
	"errors"
	"iter"
	"slices"
	"strconv"
	"time"

	"github.com/marshallshelly/northwind-samples/pkg/linq"
	"github.com/marshallshelly/northwind-samples/pkg/model"
	"github.com/marshallshelly/northwind-samples/pkg/runtime"
	"github.com/shopspring/decimal"
)

// Section headers of Q10.
const (
	MonthSection     = "Month"
	YearSection      = "Year"
	MonthYearSection = "Month + Year"
)

// Q9 yields, for each city, the mean order total over every order placed
// from that city and the mean number of orders per customer of the city.
// A city without orders yields runtime.Undefined for the first mean.
func Q9(src model.Source) runtime.Stream {
	return func(yield func(runtime.Item, error) bool) {
		cities := linq.GroupBy(src.Customers(), func(c model.Customer) string {
			return c.City
		})
		for _, city := range cities {
			if !line(yield, city.Key) {
				return
			}

			totals := linq.SelectMany(city.All(), func(c model.Customer) iter.Seq[decimal.Decimal] {
				return linq.Select(c.OrderSeq(), func(o model.Order) decimal.Decimal { return o.Total })
			})
			var meanTotal any
			avg, err := linq.Average(totals)
			switch {
			case errors.Is(err, runtime.ErrEmptyAggregate):
				meanTotal = runtime.Undefined{Reason: err}
			case err != nil:
				fail(yield, err)
				return
			default:
				meanTotal = avg
			}
			if !record(yield, meanTotal) {
				return
			}

			meanCount, err := linq.AverageInt(linq.Select(city.All(), func(c model.Customer) int {
				return len(c.Orders)
			}))
			if err != nil {
				fail(yield, err)
				return
			}
			if !record(yield, meanCount) {
				return
			}
		}
	}
}

// Q10 yields the mean number of orders per customer by calendar month,
// by year, and by every year and month pair.
func Q10(src model.Source) runtime.Stream {
	return func(yield func(runtime.Item, error) bool) {
		months := distinctOrderValues(src, model.MonthOf)
		years := distinctOrderValues(src, model.YearOf)

		emit := func(header string, pred func(model.Order) bool) bool {
			mean, err := meanCount(src, pred)
			if err != nil {
				return fail(yield, err)
			}
			return line(yield, header) && record(yield, mean)
		}

		if !line(yield, MonthSection) {
			return
		}
		for _, m := range months {
			if !emit(strconv.Itoa(m), func(o model.Order) bool { return model.MonthOf(o.OrderDate) == m }) {
				return
			}
		}

		if !line(yield, YearSection) {
			return
		}
		for _, y := range years {
			if !emit(strconv.Itoa(y), func(o model.Order) bool { return model.YearOf(o.OrderDate) == y }) {
				return
			}
		}

		if !line(yield, MonthYearSection) {
			return
		}
		for _, y := range years {
			for _, m := range months {
				header := strconv.Itoa(m) + "/" + strconv.Itoa(y)
				matches := func(o model.Order) bool {
					return model.YearOf(o.OrderDate) == y && model.MonthOf(o.OrderDate) == m
				}
				if !emit(header, matches) {
					return
				}
			}
		}
	}
}

// distinctOrderValues returns the distinct values of part over every order,
// ascending.
func distinctOrderValues(src model.Source, part func(time.Time) int) []int {
	orders := linq.SelectMany(src.Customers(), model.Customer.OrderSeq)
	return slices.Sorted(linq.Distinct(linq.Select(orders, func(o model.Order) int {
		return part(o.OrderDate)
	})))
}

// meanCount averages, over every customer, the number of that customer's
// orders matching pred. Customers without orders count as zero.
func meanCount(src model.Source, pred func(model.Order) bool) (decimal.Decimal, error) {
	return linq.AverageInt(linq.Select(src.Customers(), func(c model.Customer) int {
		return c.OrderCountWhere(pred)
	}))
}
