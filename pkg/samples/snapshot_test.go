package samples

import (
	"testing"

	"github.com/marshallshelly/northwind-samples/pkg/dataset"
	"github.com/marshallshelly/northwind-samples/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshot(t *testing.T) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.Default()
	require.NoError(t, err)
	return ds
}

func TestRegisteredNames(t *testing.T) {
	want := []string{
		"Q1", "Q2_V1", "Q2_V2", "Q2_V3", "Q2_V4", "Q2_V5",
		"Q3", "Q4", "Q5", "Q6", "Q7", "Q8_V1", "Q8_V2", "Q9", "Q10",
	}
	assert.Equal(t, want, registry.Names())

	r := registry.NewRegistry()
	require.NoError(t, Register(r))
	assert.Equal(t, want, r.Names())

	for alias, name := range map[string]string{
		"Linq1":                  "Q1",
		"Linq2_WithGroupBy_2":    "Q2_V2",
		"Linq2_WithoutGroupBy_2": "Q2_V5",
		"linq8_1":                "Q8_V1",
		"LINQ10":                 "Q10",
	} {
		s, err := r.Get(alias)
		require.NoError(t, err, alias)
		assert.Equal(t, name, s.Name)
		assert.Equal(t, category, s.Category)
	}
}

func TestSnapshot_Q1(t *testing.T) {
	got := run(t, Q1, snapshot(t))

	counts := map[string]int{}
	n := 0
	for _, s := range got {
		if len(s) > 2 && s[:2] == "X:" {
			counts[s] = n
			n = 0
			continue
		}
		n++
	}
	assert.Equal(t, map[string]int{"X:10000": 9, "X:20000": 6, "X:3000": 16}, counts)
}

func TestSnapshot_Q2(t *testing.T) {
	src := snapshot(t)

	v1 := run(t, Q2GroupByCity, src)
	assert.Equal(t, []string{"C:Alfreds Futterkiste", "line:List:", "S:Heli Süßwaren GmbH & Co. KG", "line:"}, v1[:4])
	assert.Equal(t, v1, run(t, Q2GroupByWrapper, src))
	assert.Equal(t, v1, run(t, Q2FilterPerCustomer, src))
	assert.Equal(t, v1, run(t, Q2Materialized, src))

	blocks := 0
	for _, s := range run(t, Q2GroupByList, src) {
		if s == "line:List:" {
			blocks++
		}
	}
	assert.Equal(t, 6, blocks)
}

func TestSnapshot_Q3(t *testing.T) {
	assert.Empty(t, run(t, Q3, snapshot(t)))
}

func TestSnapshot_Q4Q5(t *testing.T) {
	src := snapshot(t)

	q4 := run(t, Q4, src)
	require.Len(t, q4, 42)
	assert.Equal(t, []string{"s:8/1997", "C:Alfreds Futterkiste"}, q4[:2])
	assert.NotContains(t, q4, "C:FISSA Fabrica Inter. Salchichas S.A.")

	q5 := run(t, Q5, src)
	require.Len(t, q5, 42)
	assert.Equal(t, []string{
		"D:1996-07-17", "C:Ernst Handel",
		"D:1996-07-25", "C:Blondel père et fils",
		"D:1996-07-11", "C:Chop-suey Chinese",
		"D:1996-07-18", "C:Centro comercial Moctezuma",
	}, q5[:8])
}

func TestSnapshot_Q6(t *testing.T) {
	assert.Len(t, run(t, Q6, snapshot(t)), 23)
}

func TestSnapshot_Q8(t *testing.T) {
	src := snapshot(t)
	got := run(t, Q8Nested, src)
	assert.Equal(t, got, run(t, Q8Flat, src))
	assert.Len(t, got, 77+3)
}

func TestSnapshot_Q10(t *testing.T) {
	got := run(t, Q10, snapshot(t))
	// 12 months, 3 years and 36 pairs, each a header and a mean, plus 3 section headers.
	assert.Len(t, got, 2*(12+3+36)+3)
	assert.Equal(t, "line:Month + Year", got[2*(12+3)+2])
	assert.Equal(t, []string{"line:1/1996", "N:0"}, got[2*(12+3)+3:2*(12+3)+5])
}
