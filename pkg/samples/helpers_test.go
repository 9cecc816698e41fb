package samples

import (
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/marshallshelly/northwind-samples/pkg/dataset"
	"github.com/marshallshelly/northwind-samples/pkg/model"
	"github.com/marshallshelly/northwind-samples/pkg/runtime"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func money(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func order(day, total string) model.Order {
	d, err := time.Parse("2006-01-02", day)
	if err != nil {
		panic(err)
	}
	return model.Order{OrderDate: d, Total: money(total)}
}

// customer builds a customer that is not suspect unless changed.
func customer(name, city string, orders ...model.Order) model.Customer {
	return model.Customer{
		CustomerID:  name,
		CompanyName: name,
		City:        city,
		Region:      ptr("R"),
		PostalCode:  ptr("12345"),
		Phone:       "(1) 555-0100",
		Orders:      orders,
	}
}

func supplier(name, city string) model.Supplier {
	return model.Supplier{SupplierName: name, City: city, Country: "C"}
}

func product(name, category string, stock int, price string) model.Product {
	return model.Product{ProductName: name, Category: category, UnitsInStock: stock, UnitPrice: money(price)}
}

func collect(t *testing.T, s runtime.Stream) []runtime.Item {
	t.Helper()
	items, err := runtime.Collect(s)
	require.NoError(t, err)
	return items
}

// describe renders items compactly so whole streams compare as string slices.
func describe(items []runtime.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		if it.Kind == runtime.KindLine {
			out[i] = "line:" + it.Text()
			continue
		}
		switch v := it.Value.(type) {
		case model.Customer:
			out[i] = "C:" + v.CompanyName
		case model.Supplier:
			out[i] = "S:" + v.SupplierName
		case model.Product:
			out[i] = "P:" + v.ProductName
		case time.Time:
			out[i] = "D:" + v.Format("2006-01-02")
		case decimal.Decimal:
			out[i] = "N:" + v.String()
		case runtime.Undefined:
			out[i] = v.String()
		case Threshold:
			out[i] = v.String()
		case string:
			out[i] = "s:" + v
		default:
			out[i] = fmt.Sprint(v)
		}
	}
	return out
}

func run(t *testing.T, q func(model.Source) runtime.Stream, src model.Source) []string {
	t.Helper()
	return describe(collect(t, q(src)))
}

var (
	cityPool     = []string{"Berlin", "London", "Paris", "Madrid", "Lyon"}
	categoryPool = []string{"Beverages", "Condiments", "Seafood"}
)

// synthetic generates a random but valid dataset. Company and product
// names are unique.
func synthetic(seed uint64) *dataset.Dataset {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	customers := make([]model.Customer, r.IntN(14))
	for i := range customers {
		c := model.Customer{
			CustomerID:  fmt.Sprintf("C%02d", i),
			CompanyName: fmt.Sprintf("Company %02d", r.IntN(5)*100+i),
			City:        cityPool[r.IntN(len(cityPool))],
			Phone:       "555-0100",
		}
		if r.IntN(2) == 0 {
			c.Phone = "(1) 555-0100"
		}
		if r.IntN(4) > 0 {
			c.Region = ptr("R")
		}
		switch r.IntN(4) {
		case 0:
		case 1:
			c.PostalCode = ptr("AB 12")
		default:
			c.PostalCode = ptr(fmt.Sprintf("%05d", r.IntN(100000)))
		}

		c.Orders = make([]model.Order, r.IntN(7))
		for j := range c.Orders {
			c.Orders[j] = model.Order{
				OrderID:   i*100 + j,
				OrderDate: time.Date(1996+r.IntN(3), time.Month(1+r.IntN(12)), 1+r.IntN(28), 0, 0, 0, 0, time.UTC),
				Total:     decimal.New(int64(r.IntN(2500000)), -2),
			}
		}
		customers[i] = c
	}

	suppliers := make([]model.Supplier, r.IntN(9))
	for i := range suppliers {
		city := "Tokyo"
		if r.IntN(4) > 0 {
			city = cityPool[r.IntN(len(cityPool))]
		}
		suppliers[i] = supplier(fmt.Sprintf("S%02d", i), city)
	}

	products := make([]model.Product, r.IntN(21))
	for i := range products {
		price := decimal.New(int64(r.IntN(2000)), -2)
		switch r.IntN(6) {
		case 0:
			price = decimal.NewFromInt(5)
		case 1:
			price = decimal.NewFromInt(10)
		}
		products[i] = model.Product{
			ProductID:    i,
			ProductName:  fmt.Sprintf("P%02d", i),
			Category:     categoryPool[r.IntN(len(categoryPool))],
			UnitsInStock: r.IntN(4),
			UnitPrice:    price,
		}
	}

	return dataset.New(customers, suppliers, products)
}

// seeds is the fixed set of synthetic datasets every property runs over.
func seeds() []uint64 {
	out := make([]uint64, 40)
	for i := range out {
		out[i] = uint64(i*7919 + 1)
	}
	return out
}
