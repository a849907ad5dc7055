package off

import (
	"fmt"
	"strconv"
)

// SearchBuilderV2 accumulates search parameters for the /api/v2/search
// endpoint.
//
// V2 has no index scheme. Every criterion renders through the compact
//
//	criteria_tags[_<lc>]=<value>
//
// form, with negating operators folded into a "-" value prefix. Nutrient
// filters render as <field>_<basis>=<quantity>; for operators other than eq
// the comparison symbol is folded into the value ("<", "<=", ">", ">="
// prefix). V2 has no ingredient filter equivalent, so Ingredient reports
// ErrUnsupportedOperation instead of dropping the filter silently.
type SearchBuilderV2 struct {
	criteria   []criteriaParam
	nutriments []nutrimentParam
	sortBy     string
}

var _ SearchParams = (*SearchBuilderV2)(nil)

// NewSearchBuilderV2 returns an empty V2 search builder.
func NewSearchBuilderV2() *SearchBuilderV2 {
	return &SearchBuilderV2{}
}

func (b *SearchBuilderV2) Criteria(name, op, value string) SearchParams {
	b.criteria = append(b.criteria, criteriaParam{name: name, op: op, value: value})
	return b
}

func (b *SearchBuilderV2) CriteriaTag(value, locale string) SearchParams {
	b.criteria = append(b.criteria, criteriaParam{value: value, locale: locale})
	return b
}

func (b *SearchBuilderV2) Ingredient(name, value string) (SearchParams, error) {
	return b, fmt.Errorf("ingredient filter %q: %w (API v2)", name, ErrUnsupportedOperation)
}

func (b *SearchBuilderV2) Nutriment(name, op string, value uint, basis NutrimentBasis) SearchParams {
	b.nutriments = append(b.nutriments, nutrimentParam{name: name, op: op, value: value, basis: basis})
	return b
}

func (b *SearchBuilderV2) SortBy(field string) SearchParams {
	b.sortBy = field
	return b
}

func (b *SearchBuilderV2) Version() ApiVersion {
	return V2
}

func (b *SearchBuilderV2) Params() Params {
	var params Params
	for _, c := range b.criteria {
		value := c.value
		if c.op == OpDoesNotContain || c.op == OpNotEquals {
			value = "-" + value
		}
		params = params.Add(c.criteriaTagKey(), value)
	}
	for _, nu := range b.nutriments {
		key := nu.name
		if nu.basis != BasisUnspecified {
			key += "_" + string(nu.basis)
		}
		params = params.Add(key, nutrimentCompareValue(nu.op, nu.value))
	}
	if b.sortBy != "" {
		params = params.Add("sort_by", b.sortBy)
	}
	return params
}

// nutrimentCompareValue folds a comparison operator into the rendered
// quantity. Equality renders the bare quantity.
func nutrimentCompareValue(op string, value uint) string {
	quantity := strconv.FormatUint(uint64(value), 10)
	switch op {
	case OpLt:
		return "<" + quantity
	case OpLte:
		return "<=" + quantity
	case OpGt:
		return ">" + quantity
	case OpGte:
		return ">=" + quantity
	}
	return quantity
}
