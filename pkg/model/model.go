// Package model defines the Customers / Orders / Suppliers / Products
// dataset, the provider contract the samples read it through, and the
// small predicates the samples share.
package model

import (
	"iter"
	"time"

	"github.com/shopspring/decimal"
)

// Source is the read-only data provider. Every accessor returns a finite
// sequence that can be ranged over repeatedly and always yields the same
// elements in the same order.
type Source interface {
	Customers() iter.Seq[Customer]
	Suppliers() iter.Seq[Supplier]
	Products() iter.Seq[Product]
}

// Customer owns its orders.
type Customer struct {
	CustomerID  string  `yaml:"id" json:"customerId"`
	CompanyName string  `yaml:"companyName" json:"companyName" validate:"required"`
	Address     string  `yaml:"address" json:"address,omitempty"`
	City        string  `yaml:"city" json:"city" validate:"required"`
	Region      *string `yaml:"region" json:"region,omitempty"`
	PostalCode  *string `yaml:"postalCode" json:"postalCode,omitempty"`
	Country     string  `yaml:"country" json:"country,omitempty"`
	Phone       string  `yaml:"phone" json:"phone" validate:"required"`
	Fax         *string `yaml:"fax" json:"fax,omitempty"`
	Orders      []Order `yaml:"orders" json:"orders" validate:"dive"`
}

// Order is a single customer order.
type Order struct {
	OrderID   int             `yaml:"id" json:"orderId"`
	OrderDate time.Time       `yaml:"orderDate" json:"orderDate"`
	Total     decimal.Decimal `yaml:"total" json:"total"`
}

// Supplier is an independent supplier record.
type Supplier struct {
	SupplierName string `yaml:"name" json:"supplierName" validate:"required"`
	Address      string `yaml:"address" json:"address,omitempty"`
	City         string `yaml:"city" json:"city" validate:"required"`
	Country      string `yaml:"country" json:"country" validate:"required"`
}

// Product is an independent product record.
type Product struct {
	ProductID    int             `yaml:"id" json:"productId"`
	ProductName  string          `yaml:"name" json:"productName" validate:"required"`
	Category     string          `yaml:"category" json:"category" validate:"required"`
	UnitsInStock int             `yaml:"unitsInStock" json:"unitsInStock" validate:"gte=0"`
	UnitPrice    decimal.Decimal `yaml:"unitPrice" json:"unitPrice"`
}
