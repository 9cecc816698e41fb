// Package dataset provides the in-memory data provider behind the samples.
package dataset

import (
	_ "embed"
	"iter"
	"sync"

	"github.com/marshallshelly/northwind-samples/pkg/linq"
	"github.com/marshallshelly/northwind-samples/pkg/model"
)

//go:embed data/northwind.yaml
var snapshot []byte

// Dataset is an immutable snapshot implementing model.Source.
type Dataset struct {
	customers []model.Customer
	suppliers []model.Supplier
	products  []model.Product
}

var _ model.Source = (*Dataset)(nil)

// New builds a Dataset from literal collections. The slices are copied;
// no validation is performed.
func New(customers []model.Customer, suppliers []model.Supplier, products []model.Product) *Dataset {
	return &Dataset{
		customers: append([]model.Customer(nil), customers...),
		suppliers: append([]model.Supplier(nil), suppliers...),
		products:  append([]model.Product(nil), products...),
	}
}

// Customers returns the customers in dataset order.
func (d *Dataset) Customers() iter.Seq[model.Customer] {
	return linq.FromSlice(d.customers)
}

// Suppliers returns the suppliers in dataset order.
func (d *Dataset) Suppliers() iter.Seq[model.Supplier] {
	return linq.FromSlice(d.suppliers)
}

// Products returns the products in dataset order.
func (d *Dataset) Products() iter.Seq[model.Product] {
	return linq.FromSlice(d.products)
}

// Stats counts the entities of a snapshot.
type Stats struct {
	Customers int `json:"customers"`
	Orders    int `json:"orders"`
	Suppliers int `json:"suppliers"`
	Products  int `json:"products"`
}

// Stats returns entity counts.
func (d *Dataset) Stats() Stats {
	orders := 0
	for _, c := range d.customers {
		orders += len(c.Orders)
	}
	return Stats{
		Customers: len(d.customers),
		Orders:    orders,
		Suppliers: len(d.suppliers),
		Products:  len(d.products),
	}
}

var loadDefault = sync.OnceValues(func() (*Dataset, error) {
	return Parse(snapshot)
})

// Default returns the embedded Northwind snapshot. It is parsed once per
// process, so every caller sees the same order.
func Default() (*Dataset, error) {
	return loadDefault()
}
