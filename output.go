package off

import (
	"strconv"

	"golang.org/x/exp/slices"
)

// Output holds the request-wide modifiers shared by every endpoint: locale,
// pagination, field selection and facet-cache bypass. All fields are
// optional; a nil pointer or false flag is excluded from the rendered
// parameters. Not every endpoint supports every modifier, so each call site
// renders through Params with its own allowed list.
type Output struct {
	// Locale selects the country and language of the response.
	Locale *Locale
	// Page and PageSize paginate list responses.
	Page     *int
	PageSize *int
	// Fields restricts the returned fields, as a comma-separated list.
	// An empty string is equivalent to unset.
	Fields string
	// NoCache bypasses the server's facet cache when true.
	NoCache bool
}

// Params renders the set modifiers, in the fixed order cc, lc, page,
// page_size, fields, nocache, keeping only keys named in allowed.
func (o *Output) Params(allowed ...string) Params {
	var params Params
	if o == nil {
		return params
	}
	emit := func(key string) bool {
		return slices.Contains(allowed, key)
	}
	if o.Locale != nil {
		if emit("cc") {
			params = params.Add("cc", o.Locale.CC)
		}
		if emit("lc") && o.Locale.LC != "" {
			params = params.Add("lc", o.Locale.LC)
		}
	}
	if o.Page != nil && emit("page") {
		params = params.Add("page", strconv.Itoa(*o.Page))
	}
	if o.PageSize != nil && emit("page_size") {
		params = params.Add("page_size", strconv.Itoa(*o.PageSize))
	}
	if o.Fields != "" && emit("fields") {
		params = params.Add("fields", o.Fields)
	}
	if o.NoCache && emit("nocache") {
		params = params.Add("nocache", "true")
	}
	return params
}

// locale returns the locale modifier, or nil when unset. Used by the client
// to pick the request subdomain.
func (o *Output) locale() *Locale {
	if o == nil {
		return nil
	}
	return o.Locale
}
