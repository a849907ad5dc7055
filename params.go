package off

import (
	"net/url"
	"strings"
)

// Param is a single query parameter. Keys may repeat within a Params
// sequence; the Open Food Facts search endpoints rely on repeated and
// index-suffixed keys, so a map is not usable here.
type Param struct {
	Key   string
	Value string
}

// Params is an ordered sequence of query parameters. Order is insertion
// order and is preserved through encoding.
type Params []Param

// Add appends a single pair and returns the extended sequence.
func (p Params) Add(key, value string) Params {
	return append(p, Param{Key: key, Value: value})
}

// Encode percent-encodes the sequence into a query string, preserving
// pair order. Unlike url.Values.Encode, keys are not sorted.
func (p Params) Encode() string {
	var buf strings.Builder
	for _, pair := range p {
		if buf.Len() > 0 {
			buf.WriteByte('&')
		}
		buf.WriteString(url.QueryEscape(pair.Key))
		buf.WriteByte('=')
		buf.WriteString(url.QueryEscape(pair.Value))
	}
	return buf.String()
}

// Assemble merges rendered search parameters with rendered output
// parameters into the final sequence handed to the transport. Search
// pairs come first; nothing is deduplicated.
func Assemble(search, output Params) Params {
	merged := make(Params, 0, len(search)+len(output))
	merged = append(merged, search...)
	merged = append(merged, output...)
	return merged
}
