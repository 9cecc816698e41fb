package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/marshallshelly/northwind-samples/pkg/model"
	"github.com/marshallshelly/northwind-samples/pkg/runtime"
	"github.com/shopspring/decimal"
)

// DateLayout is how order dates are printed.
const DateLayout = "2006-01-02"

// Dumper writes sample output as plain text, one record per line in
// Field=Value form.
type Dumper struct {
	w io.Writer
}

// NewDumper creates a text presenter writing to w.
func NewDumper(w io.Writer) *Dumper {
	return &Dumper{w: w}
}

// WriteRecord writes one record.
func (d *Dumper) WriteRecord(v any) error {
	_, err := fmt.Fprintln(d.w, Dump(v))
	return err
}

// WriteLine writes a header line verbatim.
func (d *Dumper) WriteLine(text string) error {
	_, err := fmt.Fprintln(d.w, text)
	return err
}

// Dump renders a single record.
func Dump(v any) string {
	switch v := v.(type) {
	case model.Customer:
		return fields(
			"CustomerID", v.CustomerID,
			"CompanyName", v.CompanyName,
			"Address", v.Address,
			"City", v.City,
			"Region", optional(v.Region),
			"PostalCode", optional(v.PostalCode),
			"Country", v.Country,
			"Phone", v.Phone,
			"Fax", optional(v.Fax),
			"Orders", "["+strconv.Itoa(len(v.Orders))+"]",
		)
	case model.Order:
		return fields(
			"OrderID", strconv.Itoa(v.OrderID),
			"OrderDate", v.OrderDate.Format(DateLayout),
			"Total", v.Total.StringFixed(2),
		)
	case model.Supplier:
		return fields(
			"SupplierName", v.SupplierName,
			"Address", v.Address,
			"City", v.City,
			"Country", v.Country,
		)
	case model.Product:
		return fields(
			"ProductID", strconv.Itoa(v.ProductID),
			"ProductName", v.ProductName,
			"Category", v.Category,
			"UnitPrice", v.UnitPrice.StringFixed(2),
			"UnitsInStock", strconv.Itoa(v.UnitsInStock),
		)
	case time.Time:
		return v.Format(DateLayout)
	case decimal.Decimal:
		return v.String()
	case runtime.Undefined:
		return v.String()
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func fields(pairs ...string) string {
	parts := make([]string, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		parts = append(parts, pairs[i]+"="+pairs[i+1])
	}
	return strings.Join(parts, "    ")
}

func optional(s *string) string {
	if s == nil {
		return "null"
	}
	return *s
}
