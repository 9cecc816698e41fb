// Package samples implements the query exercises over the Northwind
// dataset. Every sample is a pure function of a model.Source that returns
// a lazy runtime.Stream; nothing is printed here.
package samples

import (
	"github.com/marshallshelly/northwind-samples/pkg/registry"
	"github.com/marshallshelly/northwind-samples/pkg/runtime"
)

const category = "Restriction Operators"

// All returns every sample in harness order.
func All() []registry.Sample {
	return []registry.Sample{
		{
			Name:        "Q1",
			Aliases:     []string{"Linq1"},
			Title:       "Task 1",
			Category:    category,
			Description: "Lists all clients whose total turnover (the sum of all orders) exceeds some value X",
			Query:       Q1,
		},
		{
			Name:        "Q2_V1",
			Aliases:     []string{"Linq2_WithGroupBy_1"},
			Title:       "Task 2_WithGroupBy_1",
			Category:    category,
			Description: "A list of suppliers in the same city is made for each customer (suppliers grouped by city)",
			Query:       Q2GroupByCity,
		},
		{
			Name:        "Q2_V2",
			Aliases:     []string{"Linq2_WithGroupBy_2"},
			Title:       "Task 2_WithGroupBy_2",
			Category:    category,
			Description: "A list of suppliers in the same city is made for each customer (customers grouped by their supplier list)",
			Query:       Q2GroupByList,
		},
		{
			Name:        "Q2_V3",
			Aliases:     []string{"Linq2_WithGroupBy_3"},
			Title:       "Task 2_WithGroupBy_3",
			Category:    category,
			Description: "A list of suppliers in the same city is made for each customer (customers grouped by a list wrapper)",
			Query:       Q2GroupByWrapper,
		},
		{
			Name:        "Q2_V4",
			Aliases:     []string{"Linq2_WithoutGroupBy_1"},
			Title:       "Task 2_WithoutGroupBy_1",
			Category:    category,
			Description: "A list of suppliers in the same city is made for each customer (suppliers filtered per customer)",
			Query:       Q2FilterPerCustomer,
		},
		{
			Name:        "Q2_V5",
			Aliases:     []string{"Linq2_WithoutGroupBy_2"},
			Title:       "Task 2_WithoutGroupBy_2",
			Category:    category,
			Description: "A list of suppliers in the same city is made for each customer (supplier lists materialized up front)",
			Query:       Q2Materialized,
		},
		{
			Name:        "Q3",
			Aliases:     []string{"Linq3"},
			Title:       "Task 3",
			Category:    category,
			Description: "Finds all customers who had an order exceeding the amount X",
			Query:       Q3,
		},
		{
			Name:        "Q4",
			Aliases:     []string{"Linq4"},
			Title:       "Task 4",
			Category:    category,
			Description: "Lists customers with the month and year they became customers (the month and year of their first order)",
			Query:       Q4,
		},
		{
			Name:        "Q5",
			Aliases:     []string{"Linq5"},
			Title:       "Task 5",
			Category:    category,
			Description: "Lists customers with their first order date, sorted by year, month, turnover (highest first) and company name",
			Query:       Q5,
		},
		{
			Name:        "Q6",
			Aliases:     []string{"Linq6"},
			Title:       "Task 6",
			Category:    category,
			Description: "Lists customers with a non-numeric postal code, no region, or a phone without an operator code in parentheses",
			Query:       Q6,
		},
		{
			Name:        "Q7",
			Aliases:     []string{"Linq7"},
			Title:       "Task 7",
			Category:    category,
			Description: "Groups products by category, then by units in stock, and sorts the last group by price",
			Query:       Q7,
		},
		{
			Name:        "Q8_V1",
			Aliases:     []string{"Linq8_1"},
			Title:       "Task 8_1",
			Category:    category,
			Description: "Groups products into cheap, average and expensive (nested grouping)",
			Query:       Q8Nested,
		},
		{
			Name:        "Q8_V2",
			Aliases:     []string{"Linq8_2"},
			Title:       "Task 8_2",
			Category:    category,
			Description: "Groups products into cheap, average and expensive (composite band key)",
			Query:       Q8Flat,
		},
		{
			Name:        "Q9",
			Aliases:     []string{"Linq9"},
			Title:       "Task 9",
			Category:    category,
			Description: "Calculates the average order amount and the average number of orders per customer for each city",
			Query:       Q9,
		},
		{
			Name:        "Q10",
			Aliases:     []string{"Linq10"},
			Title:       "Task 10",
			Category:    category,
			Description: "Average customer activity by month, by year, and by month and year",
			Query:       Q10,
		},
	}
}

// Register adds every sample to r.
func Register(r *registry.Registry) error {
	for _, s := range All() {
		if err := r.Register(s); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	for _, s := range All() {
		registry.MustRegister(s)
	}
}

// fail yields err and reports that the stream must stop.
func fail(yield func(runtime.Item, error) bool, err error) bool {
	yield(runtime.Item{}, err)
	return false
}

func record(yield func(runtime.Item, error) bool, v any) bool {
	return yield(runtime.Record(v), nil)
}

func line(yield func(runtime.Item, error) bool, text string) bool {
	return yield(runtime.Line(text), nil)
}
