package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/marshallshelly/northwind-samples/pkg/runtime"
)

var validate = validator.New()

// Validate checks every entity of src and returns the first
// *runtime.DataShapeError found, in dataset order.
func Validate(src Source) error {
	i := 0
	for c := range src.Customers() {
		if err := validateCustomer(c, i); err != nil {
			return err
		}
		i++
	}

	i = 0
	for s := range src.Suppliers() {
		if err := validateStruct("Supplier", i, s); err != nil {
			return err
		}
		i++
	}

	i = 0
	for p := range src.Products() {
		if err := validateStruct("Product", i, p); err != nil {
			return err
		}
		if p.UnitPrice.IsNegative() {
			return &runtime.DataShapeError{Entity: "Product", Index: i, Field: "UnitPrice", Message: "must not be negative"}
		}
		i++
	}

	return nil
}

func validateCustomer(c Customer, index int) error {
	if err := validateStruct("Customer", index, c); err != nil {
		return err
	}

	for j, o := range c.Orders {
		if o.OrderDate.IsZero() {
			return &runtime.DataShapeError{
				Entity:  "Customer",
				Index:   index,
				Field:   fmt.Sprintf("Orders[%d].OrderDate", j),
				Message: "is required",
			}
		}
		if o.Total.IsNegative() {
			return &runtime.DataShapeError{
				Entity:  "Customer",
				Index:   index,
				Field:   fmt.Sprintf("Orders[%d].Total", j),
				Message: "must not be negative",
			}
		}
	}

	return nil
}

// validateStruct runs the struct tags and converts the first field error.
func validateStruct(entity string, index int, v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("failed to validate %s[%d]: %w", entity, index, err)
	}

	fe := fieldErrs[0]
	return &runtime.DataShapeError{
		Entity:  entity,
		Index:   index,
		Field:   strings.TrimPrefix(fe.StructNamespace(), entity+"."),
		Message: fieldMessage(fe),
	}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}
