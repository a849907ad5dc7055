package off

import "strconv"

// SearchBuilderV0 accumulates search parameters for the legacy
// /cgi/search.pl endpoint.
//
// V0 encodes each plain criterion as an indexed triplet
//
//	tagtype_N=<name>
//	tag_contains_N=<op>
//	tag_N=<value>
//
// and each nutrient filter as
//
//	nutriment_N=<name>
//	nutriment_compare_N=<op>
//	nutriment_value_N=<quantity>
//
// The two index sequences start at 1 and advance independently of each
// other, in add order. Locale-qualified criteria use the compact
// criteria_tags[_<lc>] form instead of a triplet and consume no index.
type SearchBuilderV0 struct {
	criteria    []criteriaParam
	ingredients []ingredientParam
	nutriments  []nutrimentParam
	sortBy      string
}

var _ SearchParams = (*SearchBuilderV0)(nil)

// NewSearchBuilderV0 returns an empty V0 search builder.
func NewSearchBuilderV0() *SearchBuilderV0 {
	return &SearchBuilderV0{}
}

func (b *SearchBuilderV0) Criteria(name, op, value string) SearchParams {
	b.criteria = append(b.criteria, criteriaParam{name: name, op: op, value: value})
	return b
}

func (b *SearchBuilderV0) CriteriaTag(value, locale string) SearchParams {
	b.criteria = append(b.criteria, criteriaParam{value: value, locale: locale})
	return b
}

func (b *SearchBuilderV0) Ingredient(name, value string) (SearchParams, error) {
	b.ingredients = append(b.ingredients, ingredientParam{
		name:  name,
		value: additiveValue(name, value),
	})
	return b, nil
}

func (b *SearchBuilderV0) Nutriment(name, op string, value uint, basis NutrimentBasis) SearchParams {
	b.nutriments = append(b.nutriments, nutrimentParam{name: name, op: op, value: value, basis: basis})
	return b
}

func (b *SearchBuilderV0) SortBy(field string) SearchParams {
	b.sortBy = field
	return b
}

func (b *SearchBuilderV0) Version() ApiVersion {
	return V0
}

// Params renders the accumulated state. Triplet indices are derived from
// slice positions on every call, so repeated renders are identical.
func (b *SearchBuilderV0) Params() Params {
	var params Params
	n := 0
	for _, c := range b.criteria {
		if c.compact() {
			params = params.Add(c.criteriaTagKey(), c.value)
			continue
		}
		n++
		suffix := strconv.Itoa(n)
		params = params.Add("tagtype_"+suffix, c.name)
		params = params.Add("tag_contains_"+suffix, c.op)
		params = params.Add("tag_"+suffix, c.value)
	}
	for _, i := range b.ingredients {
		params = params.Add(i.name, i.value)
	}
	for i, nu := range b.nutriments {
		suffix := strconv.Itoa(i + 1)
		params = params.Add("nutriment_"+suffix, nu.name)
		params = params.Add("nutriment_compare_"+suffix, nu.op)
		params = params.Add("nutriment_value_"+suffix, strconv.FormatUint(uint64(nu.value), 10))
	}
	if b.sortBy != "" {
		params = params.Add("sort_by", b.sortBy)
	}
	return params
}
