package model

import "github.com/shopspring/decimal"

// Band is a price bucket of a product.
type Band int

const (
	// Cheap is UnitPrice < 5.
	Cheap Band = iota
	// Average is 5 <= UnitPrice <= 10.
	Average
	// Expensive is UnitPrice > 10.
	Expensive
)

var (
	cheapBelow     = decimal.NewFromInt(5)
	expensiveAbove = decimal.NewFromInt(10)
)

// Bands lists every band in presentation order.
func Bands() []Band {
	return []Band{Cheap, Average, Expensive}
}

// IsCheap reports whether price falls in the cheap band.
func IsCheap(price decimal.Decimal) bool {
	return price.LessThan(cheapBelow)
}

// IsExpensive reports whether price falls in the expensive band.
func IsExpensive(price decimal.Decimal) bool {
	return price.GreaterThan(expensiveAbove)
}

// BandOf classifies a price. The bands are exclusive and cover every price.
func BandOf(price decimal.Decimal) Band {
	switch {
	case IsCheap(price):
		return Cheap
	case IsExpensive(price):
		return Expensive
	default:
		return Average
	}
}

// String returns the band name.
func (b Band) String() string {
	switch b {
	case Cheap:
		return "cheap"
	case Average:
		return "average"
	case Expensive:
		return "expensive"
	default:
		return "unknown"
	}
}

// Header is the line printed above a band's products.
func (b Band) Header() string {
	switch b {
	case Cheap:
		return "Group of cheap products: price < 5.00"
	case Average:
		return "Group of average products: 5.00 <= price <= 10.00"
	case Expensive:
		return "Group of expensive products: price > 10.00"
	default:
		return "Group of unknown products"
	}
}
