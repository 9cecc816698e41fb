package samples

import (
	"iter"
	"slices"
	"strings"

	"github.com/marshallshelly/northwind-samples/pkg/linq"
	"github.com/marshallshelly/northwind-samples/pkg/model"
	"github.com/marshallshelly/northwind-samples/pkg/runtime"
)

// ListHeader separates a customer from its suppliers.
const ListHeader = "List:"

// The Q2 variants differ only in how they arrange the intermediate
// collections. All of them emit, per block: the customer record(s),
// ListHeader, the suppliers sharing the customer's city in dataset order,
// and a blank line.

// Q2GroupByCity groups suppliers by city once and looks each customer up.
func Q2GroupByCity(src model.Source) runtime.Stream {
	return func(yield func(runtime.Item, error) bool) {
		byCity := linq.ToLookup(src.Suppliers(), supplierCity)
		for c := range src.Customers() {
			if !emitSupplierBlock(yield, []model.Customer{c}, byCity.Get(c.City)) {
				return
			}
		}
	}
}

// Q2GroupByList groups customers by the value of their supplier list.
// Customers with equal lists share one block, which in practice merges
// every customer whose city has no supplier.
func Q2GroupByList(src model.Source) runtime.Stream {
	return func(yield func(runtime.Item, error) bool) {
		groups := linq.GroupBy(customerSuppliers(src), func(m matched) string {
			return supplierListKey(m.suppliers)
		})
		for _, g := range groups {
			customers := make([]model.Customer, 0, g.Len())
			for _, m := range g.Items {
				customers = append(customers, m.customer)
			}
			if !emitSupplierBlock(yield, customers, linq.FromSlice(g.Items[0].suppliers)) {
				return
			}
		}
	}
}

// supplierList wraps a materialized list. Keys compare by the identity
// of the list, not its contents, so no two customers share a group.
type supplierList struct {
	suppliers *[]model.Supplier
}

// Q2GroupByWrapper groups customers by a wrapper around their supplier list.
func Q2GroupByWrapper(src model.Source) runtime.Stream {
	return func(yield func(runtime.Item, error) bool) {
		groups := linq.GroupBy(customerSuppliers(src), func(m matched) supplierList {
			return supplierList{suppliers: &m.suppliers}
		})
		for _, g := range groups {
			customers := make([]model.Customer, 0, g.Len())
			for _, m := range g.Items {
				customers = append(customers, m.customer)
			}
			if !emitSupplierBlock(yield, customers, linq.FromSlice(*g.Key.suppliers)) {
				return
			}
		}
	}
}

// Q2FilterPerCustomer filters the suppliers once per customer.
func Q2FilterPerCustomer(src model.Source) runtime.Stream {
	return func(yield func(runtime.Item, error) bool) {
		for c := range src.Customers() {
			if !emitSupplierBlock(yield, []model.Customer{c}, suppliersIn(src.Suppliers(), c.City)) {
				return
			}
		}
	}
}

// Q2Materialized computes every supplier list first and pairs the lists
// with the customers by position.
func Q2Materialized(src model.Source) runtime.Stream {
	return func(yield func(runtime.Item, error) bool) {
		lists := linq.ToSlice(linq.Select(src.Customers(), func(c model.Customer) []model.Supplier {
			return linq.ToSlice(suppliersIn(src.Suppliers(), c.City))
		}))

		i := 0
		for c := range src.Customers() {
			if !emitSupplierBlock(yield, []model.Customer{c}, linq.FromSlice(lists[i])) {
				return
			}
			i++
		}
	}
}

// matched is a customer paired with the suppliers of its city.
type matched struct {
	customer  model.Customer
	suppliers []model.Supplier
}

func customerSuppliers(src model.Source) iter.Seq[matched] {
	return linq.Select(src.Customers(), func(c model.Customer) matched {
		return matched{
			customer:  c,
			suppliers: linq.ToSlice(suppliersIn(src.Suppliers(), c.City)),
		}
	})
}

// suppliersIn is the city join shared by every variant.
func suppliersIn(suppliers iter.Seq[model.Supplier], city string) iter.Seq[model.Supplier] {
	return linq.Where(suppliers, func(s model.Supplier) bool {
		return s.City == city
	})
}

func supplierCity(s model.Supplier) string {
	return s.City
}

// supplierListKey derives a canonical, comparable key for a supplier list
// from the sorted supplier identities.
func supplierListKey(suppliers []model.Supplier) string {
	ids := make([]string, 0, len(suppliers))
	for _, s := range suppliers {
		ids = append(ids, s.SupplierName+"\x1f"+s.City+"\x1f"+s.Country)
	}
	slices.Sort(ids)
	return strings.Join(ids, "\x1e")
}

func emitSupplierBlock(yield func(runtime.Item, error) bool, customers []model.Customer, suppliers iter.Seq[model.Supplier]) bool {
	for _, c := range customers {
		if !record(yield, c) {
			return false
		}
	}
	if !line(yield, ListHeader) {
		return false
	}
	for s := range suppliers {
		if !record(yield, s) {
			return false
		}
	}
	return line(yield, "")
}
