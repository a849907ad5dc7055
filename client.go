package off

import (
	"fmt"
	"net/http"
	"net/url"
	"runtime"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"
)

// Version is the version of this library, reported in the default
// User-Agent header.
const Version = "alpha"

const repoURL = "https://github.com/openfoodfacts/openfoodfacts-go"

// OffClient is the Open Food Facts API client. It owns one underlying HTTP
// client; one OffClient should be used per application. All calls are GET
// and return the raw *http.Response — decoding the JSON body is left to the
// caller.
//
// The country and language of a request are selected through the server
// subdomain, https://{locale}.openfoodfacts.org/. Calls that take an Output
// use its locale when set and fall back to the client's default locale.
type OffClient struct {
	version   ApiVersion
	locale    Locale
	baseURL   *url.URL
	username  string
	password  string
	userAgent string
	http      *http.Client
	log       zerolog.Logger
}

// Builder assembles an OffClient. Obtain one with NewBuilder, chain the
// options and call Build. A builder is single-use.
type Builder struct {
	version   ApiVersion
	locale    Locale
	username  string
	password  string
	userAgent string
	baseURL   string
	log       zerolog.Logger
}

// NewBuilder returns a client builder for the given API version with the
// "world" locale, no credentials and the default user agent.
func NewBuilder(version ApiVersion) *Builder {
	return &Builder{
		version:   version,
		locale:    DefaultLocale(),
		userAgent: fmt.Sprintf("OffGoClient - %s - Version %s - %s", runtime.GOOS, Version, repoURL),
		log:       zerolog.Nop(),
	}
}

// Locale sets the default locale used when a call carries no Output locale.
func (b *Builder) Locale(locale Locale) *Builder {
	b.locale = locale
	return b
}

// Auth sets the basic-auth credentials. Only needed for the staging
// environment and write operations.
func (b *Builder) Auth(username, password string) *Builder {
	b.username = username
	b.password = password
	return b
}

// UserAgent replaces the default User-Agent header value.
func (b *Builder) UserAgent(userAgent string) *Builder {
	b.userAgent = userAgent
	return b
}

// Logger sets the client logger. The default discards everything.
func (b *Builder) Logger(log zerolog.Logger) *Builder {
	b.log = log
	return b
}

// BaseURL replaces the openfoodfacts.org host with a fixed base URL,
// disabling the locale subdomain. Meant for tests against a local server.
func (b *Builder) BaseURL(raw string) *Builder {
	b.baseURL = raw
	return b
}

// Build creates the OffClient with the current builder options.
func (b *Builder) Build() (*OffClient, error) {
	c := &OffClient{
		version:   b.version,
		locale:    b.locale,
		username:  b.username,
		password:  b.password,
		userAgent: b.userAgent,
		http:      newHTTPClient(),
		log:       b.log,
	}
	if b.baseURL != "" {
		base, err := url.Parse(b.baseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid base URL %q: %w", b.baseURL, err)
		}
		c.baseURL = base
	}
	return c, nil
}

func newHTTPClient() *http.Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 3
	retryClient.Logger = nil
	retryClient.HTTPClient = &http.Client{
		Timeout: 60 * time.Second,
	}
	return retryClient.StandardClient()
}

// ------------------------------------------------------------------------
// Metadata
// ------------------------------------------------------------------------

// Taxonomy gets the given taxonomy. Taxonomies are static JSON files and
// support only the "world" locale.
//
//	GET https://world.openfoodfacts.org/data/taxonomies/{taxonomy}.json
func (c *OffClient) Taxonomy(taxonomy string) (*http.Response, error) {
	base, err := c.baseURLWorld()
	if err != nil {
		return nil, err
	}
	return c.get(base.JoinPath("data", "taxonomies", taxonomy+".json"), nil)
}

// Facet gets the given facet, e.g. "brands" or "labels". Supports the
// locale, pagination, fields and nocache output parameters.
//
//	GET https://{locale}.openfoodfacts.org/{facet}.json
func (c *OffClient) Facet(facet string, output *Output) (*http.Response, error) {
	base, err := c.baseURLLocale(output.locale())
	if err != nil {
		return nil, err
	}
	return c.get(base.JoinPath(facet+".json"), output.Params("page", "page_size", "fields", "nocache"))
}

// Categories gets all categories. Supports only the locale output
// parameter.
//
//	GET https://{locale}.openfoodfacts.org/categories.json
func (c *OffClient) Categories(output *Output) (*http.Response, error) {
	base, err := c.baseURLLocale(output.locale())
	if err != nil {
		return nil, err
	}
	return c.get(base.JoinPath("categories.json"), nil)
}

// Nutrients gets the nutrients by country. Supports only the locale output
// parameter.
//
//	GET https://{locale}.openfoodfacts.org/cgi/nutrients.pl
func (c *OffClient) Nutrients(output *Output) (*http.Response, error) {
	cgi, err := c.cgiURL(output.locale())
	if err != nil {
		return nil, err
	}
	return c.get(cgi.JoinPath("nutrients.pl"), nil)
}

// ProductsBy gets all products for the given facet or category. The facet
// name is the singular of the facet type name (brands -> brand) and, like
// the id, may be localized. Supports the locale, pagination and fields
// output parameters.
//
//	GET https://{locale}.openfoodfacts.org/{facet}/{id}.json
func (c *OffClient) ProductsBy(what, id string, output *Output) (*http.Response, error) {
	base, err := c.baseURLLocale(output.locale())
	if err != nil {
		return nil, err
	}
	return c.get(base.JoinPath(what, id+".json"), output.Params("page", "page_size", "fields"))
}

// ------------------------------------------------------------------------
// Read
// ------------------------------------------------------------------------

// Product gets the given product by barcode. Supports the locale and fields
// output parameters.
//
//	GET https://{locale}.openfoodfacts.org/api/{version}/product/{barcode}
func (c *OffClient) Product(barcode string, output *Output) (*http.Response, error) {
	api, err := c.apiURL(output.locale())
	if err != nil {
		return nil, err
	}
	return c.get(api.JoinPath("product", barcode), output.Params("fields"))
}

// ------------------------------------------------------------------------
// Search
// ------------------------------------------------------------------------

// SearchBuilder returns an empty search builder matching the client's API
// version.
func (c *OffClient) SearchBuilder() SearchParams {
	if c.version == V2 {
		return NewSearchBuilderV2()
	}
	return NewSearchBuilderV0()
}

// Search renders the given search parameters, merges in the output
// parameters and issues the search against the endpoint of the encoder's
// version. The encoder must target the client's API version.
//
//	GET https://{locale}.openfoodfacts.org/cgi/search.pl     (v0)
//	GET https://{locale}.openfoodfacts.org/api/v2/search     (v2)
func (c *OffClient) Search(search SearchParams, output *Output) (*http.Response, error) {
	if search.Version() != c.version {
		return nil, fmt.Errorf("search parameters encoded for API %s, client targets API %s",
			search.Version(), c.version)
	}
	u, err := c.searchURL(output.locale())
	if err != nil {
		return nil, err
	}
	params := Assemble(search.Params(), output.Params("cc", "lc", "fields"))
	return c.get(u, params)
}

// SearchByBarcode searches products by a string of comma-separated
// barcodes. API v2 only.
//
//	GET https://{locale}.openfoodfacts.org/api/v2/search?code={barcodes}
func (c *OffClient) SearchByBarcode(barcodes string, output *Output) (*http.Response, error) {
	if c.version != V2 {
		return nil, fmt.Errorf("search by barcode: %w (requires API v2)", ErrUnsupportedOperation)
	}
	u, err := c.searchURL(output.locale())
	if err != nil {
		return nil, err
	}
	params := Assemble(Params{}.Add("code", barcodes), output.Params("fields"))
	return c.get(u, params)
}

// ------------------------------------------------------------------------
// URL building
// ------------------------------------------------------------------------

// baseURLLocale returns the base URL for the given locale, falling back to
// the client's default locale. A configured BaseURL override wins.
func (c *OffClient) baseURLLocale(locale *Locale) (*url.URL, error) {
	if c.baseURL != nil {
		return c.baseURL, nil
	}
	loc := c.locale
	if locale != nil {
		loc = *locale
	}
	return url.Parse(fmt.Sprintf("https://%s.openfoodfacts.org/", loc))
}

// baseURLWorld returns the base URL with the locale forced to "world".
func (c *OffClient) baseURLWorld() (*url.URL, error) {
	world := DefaultLocale()
	return c.baseURLLocale(&world)
}

func (c *OffClient) cgiURL(locale *Locale) (*url.URL, error) {
	base, err := c.baseURLLocale(locale)
	if err != nil {
		return nil, err
	}
	return base.JoinPath("cgi"), nil
}

func (c *OffClient) apiURL(locale *Locale) (*url.URL, error) {
	base, err := c.baseURLLocale(locale)
	if err != nil {
		return nil, err
	}
	return base.JoinPath("api", c.version.String()), nil
}

func (c *OffClient) searchURL(locale *Locale) (*url.URL, error) {
	if c.version == V2 {
		api, err := c.apiURL(locale)
		if err != nil {
			return nil, err
		}
		return api.JoinPath("search"), nil
	}
	cgi, err := c.cgiURL(locale)
	if err != nil {
		return nil, err
	}
	return cgi.JoinPath("search.pl"), nil
}

// get builds and sends a GET request with the given query parameters.
func (c *OffClient) get(u *url.URL, params Params) (*http.Response, error) {
	if len(params) > 0 {
		u.RawQuery = params.Encode()
	}
	req, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}
	c.log.Debug().Str("url", u.String()).Msg("Sending request")
	return c.http.Do(req)
}
