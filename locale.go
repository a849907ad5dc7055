package off

import "strings"

// DefaultCountryCode is the country-independent pseudo locale used by the
// Open Food Facts servers.
const DefaultCountryCode = "world"

// Locale holds a country code and an optional language code.
//
// The country code must be a lowercase ISO 3166-1 code or the special value
// "world". The language code must be a lowercase ISO 639-1 code. Codes are
// not validated locally; the server rejects unknown ones.
type Locale struct {
	CC string
	LC string
}

// NewLocale returns a Locale with the given country code and optional
// language code. An empty country code yields the default locale.
func NewLocale(cc, lc string) Locale {
	if cc == "" {
		return DefaultLocale()
	}
	return Locale{CC: cc, LC: lc}
}

// DefaultLocale returns the "world" locale with no language code.
func DefaultLocale() Locale {
	return Locale{CC: DefaultCountryCode}
}

// ParseLocale parses a string of the form "{cc}" or "{cc}-{lc}".
// Empty or dash-only input yields the default locale.
func ParseLocale(s string) Locale {
	cc, lc, _ := strings.Cut(s, "-")
	return NewLocale(cc, lc)
}

// String renders the locale as "{cc}" or "{cc}-{lc}".
func (l Locale) String() string {
	if l.LC != "" {
		return l.CC + "-" + l.LC
	}
	return l.CC
}
