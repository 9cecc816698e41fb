package samples

import (
	"strings"

	"github.com/marshallshelly/northwind-samples/pkg/linq"
	"github.com/marshallshelly/northwind-samples/pkg/model"
	"github.com/marshallshelly/northwind-samples/pkg/runtime"
)

// IsSuspect reports whether a customer record looks incomplete: no postal
// code, a postal code with a non-digit, no region, or a phone number
// without an operator code.
func IsSuspect(c model.Customer) bool {
	switch {
	case c.PostalCode == nil:
		return true
	case strings.IndexFunc(*c.PostalCode, func(r rune) bool { return !model.IsDigit(r) }) >= 0:
		return true
	case c.Region == nil:
		return true
	default:
		return !model.HasOperatorCode(c.Phone)
	}
}

// Q6 yields every suspect customer in dataset order.
func Q6(src model.Source) runtime.Stream {
	return func(yield func(runtime.Item, error) bool) {
		for c := range linq.Where(src.Customers(), IsSuspect) {
			if !record(yield, c) {
				return
			}
		}
	}
}
