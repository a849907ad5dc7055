package off

import "errors"

// ErrUnsupportedOperation is returned when a search builder method is not
// meaningful for the API version the builder targets. Callers can rely on
// errors.Is to distinguish this from server-side rejections.
var ErrUnsupportedOperation = errors.New("operation not supported by this API version")

// Comparison operators accepted by Criteria.
const (
	OpContains       = "contains"
	OpDoesNotContain = "does_not_contain"
	OpEquals         = "equals"
	OpNotEquals      = "not_equals"
)

// Comparison operators accepted by Nutriment.
const (
	OpLt  = "lt"
	OpLte = "lte"
	OpGt  = "gt"
	OpGte = "gte"
	OpEq  = "eq"
)

// Ingredient filter dispositions accepted by Ingredient.
const (
	With        = "with"
	Without     = "without"
	Indifferent = "indifferent"
)

// NutrimentBasis qualifies a nutrient quantity by serving basis.
type NutrimentBasis string

const (
	BasisUnspecified NutrimentBasis = ""
	BasisPer100g     NutrimentBasis = "100g"
	BasisPerServing  NutrimentBasis = "serving"
)

// criteriaParam is one tag-based filter. A criterion added with Criteria
// carries name and op; one added with CriteriaTag carries value and locale
// only. Which fields are populated decides the emission shape at render
// time.
type criteriaParam struct {
	name   string
	op     string
	value  string
	locale string
}

// compact reports whether the criterion renders through the
// criteria_tags[_<lc>] form rather than the indexed triplet.
func (c criteriaParam) compact() bool {
	return c.name == "" || c.locale != ""
}

// criteriaTagKey is the key of the compact form, locale-suffixed when a
// locale is present.
func (c criteriaParam) criteriaTagKey() string {
	if c.locale != "" {
		return "criteria_tags_" + c.locale
	}
	return "criteria_tags"
}

// ingredientParam is one ingredient-presence filter, rendered as a single
// <name>=<value> pair.
type ingredientParam struct {
	name  string
	value string
}

// nutrimentParam is one numeric comparison on a nutrient field.
type nutrimentParam struct {
	name  string
	op    string
	value uint
	basis NutrimentBasis
}

// SearchParams accumulates search criteria for one request and renders them
// into the query parameters of one of the two API encodings.
//
// Mutators append, never merge; adding the same field twice produces two
// conditions, which the server treats as an AND. Field names, operators and
// values are passed through uninterpreted, so a stale client cannot reject
// vocabulary the server has since learned. Rendering with Params is pure:
// the same builder state always renders the same sequence.
//
//	sp := off.NewSearchBuilderV0().
//		Criteria("categories", off.OpContains, "cereals").
//		Criteria("labels", off.OpContains, "kosher").
//		Nutriment("energy", off.OpLt, 500, off.BasisUnspecified)
type SearchParams interface {
	// Criteria adds a tag filter on the given field.
	Criteria(name, op, value string) SearchParams
	// CriteriaTag adds a locale-qualified tag filter rendered through the
	// compact criteria_tags form. Pass an empty locale for the unqualified
	// key.
	CriteriaTag(value, locale string) SearchParams
	// Ingredient adds an ingredient-presence filter. Not every API version
	// supports these; the error reports ErrUnsupportedOperation when the
	// target version cannot express the filter.
	Ingredient(name, value string) (SearchParams, error)
	// Nutriment adds a numeric comparison on a nutrient field.
	Nutriment(name, op string, value uint, basis NutrimentBasis) SearchParams
	// SortBy sets the result sort field. An empty field clears a
	// previously set sort.
	SortBy(field string) SearchParams
	// Version reports which API encoding Params renders.
	Version() ApiVersion
	// Params renders the accumulated state. It never mutates the builder.
	Params() Params
}

// additiveValue applies the server's naming quirk for the additives
// ingredient category: the disposition is suffixed with the category name.
func additiveValue(name, value string) string {
	if name == "additives" {
		return value + "_additives"
	}
	return value
}
