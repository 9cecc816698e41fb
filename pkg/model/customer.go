package model

import (
	"iter"
	"strings"
	"time"

	"github.com/marshallshelly/northwind-samples/pkg/linq"
	"github.com/shopspring/decimal"
)

// IsDigit reports whether r is one of 0..9. Other Unicode digits do not count.
func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// HasOperatorCode reports whether a phone number starts with "(".
func HasOperatorCode(phone string) bool {
	return strings.HasPrefix(phone, "(")
}

// MonthOf returns the calendar month (1..12) of t.
func MonthOf(t time.Time) int {
	return int(t.Month())
}

// YearOf returns the calendar year of t.
func YearOf(t time.Time) int {
	return t.Year()
}

// OrderSeq returns the customer's orders as a sequence.
func (c Customer) OrderSeq() iter.Seq[Order] {
	return linq.FromSlice(c.Orders)
}

// HasOrders reports whether the customer placed at least one order.
func (c Customer) HasOrders() bool {
	return len(c.Orders) > 0
}

// Turnover is the sum of all order totals; zero without orders.
func (c Customer) Turnover() (decimal.Decimal, error) {
	return linq.Sum(linq.Select(c.OrderSeq(), orderTotal))
}

// FirstOrderDate is the earliest order date. It fails with
// runtime.ErrEmptyAggregate when the customer has no orders.
func (c Customer) FirstOrderDate() (time.Time, error) {
	return linq.Min(linq.Select(c.OrderSeq(), orderDate), time.Time.Compare)
}

// OrderCountWhere counts the orders matching pred.
func (c Customer) OrderCountWhere(pred func(Order) bool) int {
	return linq.CountWhere(c.OrderSeq(), pred)
}

func orderTotal(o Order) decimal.Decimal { return o.Total }

func orderDate(o Order) time.Time { return o.OrderDate }
