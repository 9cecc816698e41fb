package model

import (
	"iter"
	"slices"
	"testing"
	"time"

	"github.com/marshallshelly/northwind-samples/pkg/runtime"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sliceSource struct {
	customers []Customer
	suppliers []Supplier
	products  []Product
}

func (s sliceSource) Customers() iter.Seq[Customer] { return slices.Values(s.customers) }
func (s sliceSource) Suppliers() iter.Seq[Supplier] { return slices.Values(s.suppliers) }
func (s sliceSource) Products() iter.Seq[Product]   { return slices.Values(s.products) }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func validCustomer() Customer {
	return Customer{
		CustomerID:  "ALFKI",
		CompanyName: "Alfreds Futterkiste",
		City:        "Berlin",
		Phone:       "030-0074321",
		Orders: []Order{
			{OrderID: 1, OrderDate: date(1998, time.March, 15), Total: money("814.50")},
			{OrderID: 2, OrderDate: date(1997, time.November, 2), Total: money("100.25")},
		},
	}
}

func TestIsDigit(t *testing.T) {
	for _, r := range "0123456789" {
		assert.True(t, IsDigit(r), string(r))
	}
	for _, r := range "aZ -٣" {
		assert.False(t, IsDigit(r), string(r))
	}
}

func TestHasOperatorCode(t *testing.T) {
	assert.True(t, HasOperatorCode("(171) 555-7788"))
	assert.False(t, HasOperatorCode("030-0074321"))
	assert.False(t, HasOperatorCode(""))
}

func TestMonthYear(t *testing.T) {
	d := date(2017, time.November, 2)
	assert.Equal(t, 11, MonthOf(d))
	assert.Equal(t, 2017, YearOf(d))
}

func TestCustomer_Turnover(t *testing.T) {
	c := validCustomer()
	turnover, err := c.Turnover()
	require.NoError(t, err)
	assert.True(t, turnover.Equal(money("914.75")), turnover.String())

	empty := Customer{CompanyName: "Empty"}
	turnover, err = empty.Turnover()
	require.NoError(t, err)
	assert.True(t, turnover.IsZero())
}

func TestCustomer_FirstOrderDate(t *testing.T) {
	c := validCustomer()
	first, err := c.FirstOrderDate()
	require.NoError(t, err)
	assert.Equal(t, date(1997, time.November, 2), first)

	_, err = Customer{}.FirstOrderDate()
	assert.ErrorIs(t, err, runtime.ErrEmptyAggregate)
}

func TestCustomer_OrderCountWhere(t *testing.T) {
	c := validCustomer()
	assert.True(t, c.HasOrders())
	assert.Equal(t, 1, c.OrderCountWhere(func(o Order) bool { return YearOf(o.OrderDate) == 1998 }))
	assert.Equal(t, 0, Customer{}.OrderCountWhere(func(Order) bool { return true }))
}

func TestBandOf(t *testing.T) {
	tests := []struct {
		price string
		want  Band
	}{
		{"0", Cheap},
		{"4.99", Cheap},
		{"5.00", Average},
		{"7.5", Average},
		{"10.00", Average},
		{"10.01", Expensive},
		{"263.50", Expensive},
	}

	for _, tt := range tests {
		t.Run(tt.price, func(t *testing.T) {
			assert.Equal(t, tt.want, BandOf(money(tt.price)))
		})
	}

	assert.Equal(t, []Band{Cheap, Average, Expensive}, Bands())
	assert.Equal(t, "Group of cheap products: price < 5.00", Cheap.Header())
	assert.Equal(t, "expensive", Expensive.String())
}

func TestValidate(t *testing.T) {
	supplier := Supplier{SupplierName: "Heli Süßwaren", City: "Berlin", Country: "Germany"}
	product := Product{ProductName: "Chai", Category: "Beverages", UnitsInStock: 39, UnitPrice: money("18")}

	t.Run("valid", func(t *testing.T) {
		src := sliceSource{
			customers: []Customer{validCustomer()},
			suppliers: []Supplier{supplier},
			products:  []Product{product},
		}
		assert.NoError(t, Validate(src))
	})

	tests := []struct {
		name   string
		src    sliceSource
		entity string
		index  int
		field  string
	}{
		{
			name: "missing company name",
			src: sliceSource{customers: []Customer{validCustomer(), func() Customer {
				c := validCustomer()
				c.CompanyName = ""
				return c
			}()}},
			entity: "Customer",
			index:  1,
			field:  "CompanyName",
		},
		{
			name: "missing order date",
			src: sliceSource{customers: []Customer{func() Customer {
				c := validCustomer()
				c.Orders[1].OrderDate = time.Time{}
				return c
			}()}},
			entity: "Customer",
			field:  "Orders[1].OrderDate",
		},
		{
			name: "negative total",
			src: sliceSource{customers: []Customer{func() Customer {
				c := validCustomer()
				c.Orders[0].Total = money("-1")
				return c
			}()}},
			entity: "Customer",
			field:  "Orders[0].Total",
		},
		{
			name:   "supplier without city",
			src:    sliceSource{suppliers: []Supplier{{SupplierName: "Tokyo Traders", Country: "Japan"}}},
			entity: "Supplier",
			field:  "City",
		},
		{
			name:   "negative stock",
			src:    sliceSource{products: []Product{product, {ProductName: "Chang", Category: "Beverages", UnitsInStock: -1}}},
			entity: "Product",
			index:  1,
			field:  "UnitsInStock",
		},
		{
			name:   "negative price",
			src:    sliceSource{products: []Product{{ProductName: "Chang", Category: "Beverages", UnitPrice: money("-0.01")}}},
			entity: "Product",
			field:  "UnitPrice",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.src)
			require.Error(t, err)

			var shapeErr *runtime.DataShapeError
			require.ErrorAs(t, err, &shapeErr)
			assert.Equal(t, tt.entity, shapeErr.Entity)
			assert.Equal(t, tt.index, shapeErr.Index)
			assert.Equal(t, tt.field, shapeErr.Field)
		})
	}
}
