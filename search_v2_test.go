package off

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchBuilderV2Criteria(t *testing.T) {
	tests := []struct {
		name     string
		build    func() SearchParams
		expected Params
	}{
		{
			name: "contains",
			build: func() SearchParams {
				return NewSearchBuilderV2().Criteria("brands", OpContains, "Nestlé")
			},
			expected: Params{{Key: "criteria_tags", Value: "Nestlé"}},
		},
		{
			name: "negation folds into value prefix",
			build: func() SearchParams {
				return NewSearchBuilderV2().Criteria("categories", OpDoesNotContain, "cheese")
			},
			expected: Params{{Key: "criteria_tags", Value: "-cheese"}},
		},
		{
			name: "locale qualified tag",
			build: func() SearchParams {
				return NewSearchBuilderV2().CriteriaTag("Vindija", "hr")
			},
			expected: Params{{Key: "criteria_tags_hr", Value: "Vindija"}},
		},
		{
			name: "tag without locale",
			build: func() SearchParams {
				return NewSearchBuilderV2().CriteriaTag("Vindija", "")
			},
			expected: Params{{Key: "criteria_tags", Value: "Vindija"}},
		},
		{
			name: "repeated criteria all rendered in add order",
			build: func() SearchParams {
				return NewSearchBuilderV2().
					Criteria("categories", OpContains, "cereals").
					CriteriaTag("Vindija", "hr").
					Criteria("categories", OpContains, "breakfast")
			},
			expected: Params{
				{Key: "criteria_tags", Value: "cereals"},
				{Key: "criteria_tags_hr", Value: "Vindija"},
				{Key: "criteria_tags", Value: "breakfast"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.build().Params())
		})
	}
}

func TestSearchBuilderV2Nutriment(t *testing.T) {
	tests := []struct {
		name     string
		op       string
		basis    NutrimentBasis
		expected Param
	}{
		{
			name:     "equality with basis",
			op:       OpEq,
			basis:    BasisPer100g,
			expected: Param{Key: "energy_100g", Value: "500"},
		},
		{
			name:     "equality without basis",
			op:       OpEq,
			basis:    BasisUnspecified,
			expected: Param{Key: "energy", Value: "500"},
		},
		{
			name:     "less than",
			op:       OpLt,
			basis:    BasisPer100g,
			expected: Param{Key: "energy_100g", Value: "<500"},
		},
		{
			name:     "less than or equal",
			op:       OpLte,
			basis:    BasisPerServing,
			expected: Param{Key: "energy_serving", Value: "<=500"},
		},
		{
			name:     "greater than",
			op:       OpGt,
			basis:    BasisPer100g,
			expected: Param{Key: "energy_100g", Value: ">500"},
		},
		{
			name:     "greater than or equal",
			op:       OpGte,
			basis:    BasisPer100g,
			expected: Param{Key: "energy_100g", Value: ">=500"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			search := NewSearchBuilderV2().Nutriment("energy", tt.op, 500, tt.basis)
			assert.Equal(t, Params{tt.expected}, search.Params())
		})
	}
}

// V2 has no ingredient filters; the builder must signal the unsupported
// operation instead of dropping the filter.
func TestSearchBuilderV2IngredientRejected(t *testing.T) {
	builder := NewSearchBuilderV2()
	search, err := builder.Ingredient("additives", Without)

	assert.True(t, errors.Is(err, ErrUnsupportedOperation))
	assert.Empty(t, search.Params())
}

func TestSearchBuilderV2SortBy(t *testing.T) {
	search := NewSearchBuilderV2().SortBy("popularity")
	assert.Equal(t, Params{{Key: "sort_by", Value: "popularity"}}, search.Params())

	search = search.SortBy("")
	assert.Empty(t, search.Params())
}

func TestSearchBuilderV2RenderIsIdempotent(t *testing.T) {
	search := NewSearchBuilderV2().
		Criteria("brands", OpContains, "Nestlé").
		Nutriment("salt", OpGt, 100, BasisPer100g).
		SortBy("created_t")

	assert.Equal(t, search.Params(), search.Params())
}

func TestSearchBuilderV2Version(t *testing.T) {
	assert.Equal(t, V2, NewSearchBuilderV2().Version())
}
