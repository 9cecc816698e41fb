package samples

import (
	"iter"
	"strconv"

	"github.com/marshallshelly/northwind-samples/pkg/linq"
	"github.com/marshallshelly/northwind-samples/pkg/model"
	"github.com/marshallshelly/northwind-samples/pkg/runtime"
	"github.com/shopspring/decimal"
)

var byUnitPrice = linq.OrderBy(linq.KeyFunc(func(p model.Product) decimal.Decimal {
	return p.UnitPrice
}, decimal.Decimal.Cmp))

// Q7 groups products by category, then by units in stock, and lists each
// inner group by ascending price.
func Q7(src model.Source) runtime.Stream {
	return func(yield func(runtime.Item, error) bool) {
		categories := linq.GroupBy(src.Products(), func(p model.Product) string {
			return p.Category
		})
		for _, category := range categories {
			if !line(yield, category.Key) {
				return
			}
			stocks := linq.GroupBy(category.All(), func(p model.Product) int {
				return p.UnitsInStock
			})
			for _, stock := range stocks {
				if !line(yield, strconv.Itoa(stock.Key)) {
					return
				}
				for _, p := range byUnitPrice.Sort(stock.All()) {
					if !record(yield, p) {
						return
					}
				}
			}
		}
	}
}

// Q8Nested splits the products into cheap and the rest, then splits the
// rest into expensive and average.
func Q8Nested(src model.Source) runtime.Stream {
	return func(yield func(runtime.Item, error) bool) {
		bands := make(map[model.Band][]model.Product, 3)
		for _, cheap := range linq.GroupBy(src.Products(), isCheapProduct) {
			if cheap.Key {
				bands[model.Cheap] = cheap.Items
				continue
			}
			for _, expensive := range linq.GroupBy(cheap.All(), isExpensiveProduct) {
				if expensive.Key {
					bands[model.Expensive] = expensive.Items
				} else {
					bands[model.Average] = expensive.Items
				}
			}
		}
		emitBands(yield, bands)
	}
}

// bandKey is the composite key of Q8Flat. Exactly one field is set.
type bandKey struct {
	Cheap     bool
	Average   bool
	Expensive bool
}

func (k bandKey) band() model.Band {
	switch {
	case k.Cheap:
		return model.Cheap
	case k.Expensive:
		return model.Expensive
	default:
		return model.Average
	}
}

// Q8Flat groups the products once by a composite band key.
func Q8Flat(src model.Source) runtime.Stream {
	return func(yield func(runtime.Item, error) bool) {
		groups := linq.GroupBy(src.Products(), func(p model.Product) bandKey {
			return bandKey{
				Cheap:     model.IsCheap(p.UnitPrice),
				Average:   !model.IsCheap(p.UnitPrice) && !model.IsExpensive(p.UnitPrice),
				Expensive: model.IsExpensive(p.UnitPrice),
			}
		})
		bands := make(map[model.Band][]model.Product, len(groups))
		for _, g := range groups {
			bands[g.Key.band()] = g.Items
		}
		emitBands(yield, bands)
	}
}

// emitBands writes the non-empty bands in presentation order.
func emitBands(yield func(runtime.Item, error) bool, bands map[model.Band][]model.Product) {
	for _, b := range model.Bands() {
		products := bands[b]
		if len(products) == 0 {
			continue
		}
		if !line(yield, b.Header()) || !emitProducts(yield, linq.FromSlice(products)) {
			return
		}
	}
}

func emitProducts(yield func(runtime.Item, error) bool, products iter.Seq[model.Product]) bool {
	for p := range products {
		if !record(yield, p) {
			return false
		}
	}
	return true
}

func isCheapProduct(p model.Product) bool { return model.IsCheap(p.UnitPrice) }

func isExpensiveProduct(p model.Product) bool { return model.IsExpensive(p.UnitPrice) }
