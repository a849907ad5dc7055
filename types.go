package off

import "fmt"

// ApiVersion identifies one of the two query-parameter encodings exposed by
// the Open Food Facts API.
type ApiVersion int

const (
	// V0 is the legacy encoding served under /cgi/search.pl.
	V0 ApiVersion = iota
	// V2 is the current encoding served under /api/v2/search.
	V2
)

// String returns the version string used in URL paths, "v0" or "v2".
func (v ApiVersion) String() string {
	switch v {
	case V2:
		return "v2"
	default:
		return "v0"
	}
}

// ParseApiVersion converts a version string "v0" or "v2" into an ApiVersion.
func ParseApiVersion(s string) (ApiVersion, error) {
	switch s {
	case "v0":
		return V0, nil
	case "v2":
		return V2, nil
	}
	return V0, fmt.Errorf("unknown API version %q", s)
}
