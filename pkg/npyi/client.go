package npyi

import (
	"context"
	"net/http"
	"os"
	"regexp"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/andyh1203/npyi/pkg/buildinfo"
	"github.com/andyh1203/npyi/pkg/errors"
	"github.com/andyh1203/npyi/pkg/integrations"
	"github.com/andyh1203/npyi/pkg/integrations/nppes"
	"github.com/andyh1203/npyi/pkg/observability"
)

// DefaultBaseURL is the public NPPES NPI Registry API endpoint.
const DefaultBaseURL = nppes.DefaultBaseURL

var npiRE = regexp.MustCompile(`^\d{10}$`)

// Client searches the NPPES NPI Registry.
//
// A Client holds only immutable configuration and is safe for concurrent use.
type Client struct {
	registry  *nppes.Client
	logger    *log.Logger
	onWarning func(Deprecation)
}

type clientConfig struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	userAgent  string
	logger     *log.Logger
	onWarning  func(Deprecation)
}

// Option configures a [Client].
type Option func(*clientConfig)

// WithBaseURL overrides the registry endpoint.
func WithBaseURL(u string) Option {
	return func(c *clientConfig) { c.baseURL = u }
}

// WithHTTPClient sets the HTTP client used for requests. It takes
// precedence over [WithTimeout].
func WithHTTPClient(hc *http.Client) Option {
	return func(c *clientConfig) { c.httpClient = hc }
}

// WithTimeout bounds each request. Ignored when [WithHTTPClient] is used.
func WithTimeout(d time.Duration) Option {
	return func(c *clientConfig) { c.timeout = d }
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *clientConfig) { c.userAgent = ua }
}

// WithLogger sets the logger for debug output and deprecation warnings.
func WithLogger(l *log.Logger) Option {
	return func(c *clientConfig) { c.logger = l }
}

// WithWarningHandler registers fn to receive deprecation notices.
// fn is called synchronously from Search, before the request is sent.
func WithWarningHandler(fn func(Deprecation)) Option {
	return func(c *clientConfig) { c.onWarning = fn }
}

// NewClient creates a registry client.
//
// Defaults: the public endpoint, a 10 second timeout, and a logger that
// writes warnings to stderr.
func NewClient(opts ...Option) *Client {
	cfg := clientConfig{
		baseURL:   DefaultBaseURL,
		userAgent: buildinfo.UserAgent(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	httpClient := cfg.httpClient
	if httpClient == nil {
		httpClient = integrations.NewHTTPClient(cfg.timeout)
	}
	logger := cfg.logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{Level: log.WarnLevel, Prefix: "npyi"})
	}

	return &Client{
		registry: nppes.NewClient(nppes.Options{
			BaseURL:    cfg.baseURL,
			HTTPClient: httpClient,
			UserAgent:  cfg.userAgent,
		}),
		logger:    logger,
		onWarning: cfg.onWarning,
	}
}

// BaseURL returns the registry endpoint this client queries.
func (c *Client) BaseURL() string { return c.registry.BaseURL() }

type searchOptions struct {
	version string
	limit   *int
	skip    *int
}

// SearchOption adjusts a single search.
type SearchOption func(*searchOptions)

// WithVersion selects the API version. "1" and "2" are accepted as
// shorthand for "1.0" and "2.0". The default is [DefaultVersion].
func WithVersion(v string) SearchOption {
	return func(o *searchOptions) { o.version = v }
}

// WithLimit sets the maximum number of results returned.
func WithLimit(n int) SearchOption {
	return func(o *searchOptions) { o.limit = &n }
}

// WithSkip sets how many results to skip, for paging.
func WithSkip(n int) SearchOption {
	return func(o *searchOptions) { o.skip = &n }
}

// Search validates params, sends one query to the registry and returns the
// parsed payload.
//
// Validation failures return before any request is made:
//   - [errors.ErrCodeInvalidVersion] for an unsupported version
//   - [errors.ErrCodeInvalidParameter] for an unknown key
//   - [errors.ErrCodeInvalidUseFirstNameAlias] for a non-boolean alias flag
//   - [errors.ErrCodeInvalidAddressPurpose] for an unknown address purpose
//
// If the registry answers with an Errors payload, Search returns an
// [errors.ErrCodeRegistry] error carrying the first description. Transport
// failures are returned as-is.
//
// Deprecated versions are accepted; the notice goes to the warning handler,
// the logger and [observability.SearchHooks.OnDeprecation].
func (c *Client) Search(ctx context.Context, params SearchParams, opts ...SearchOption) (Response, error) {
	o := searchOptions{version: DefaultVersion}
	for _, opt := range opts {
		opt(&o)
	}

	version := CleanVersion(o.version)
	if err := ValidateVersion(version); err != nil {
		return nil, err
	}
	if d, ok := DeprecationFor(version); ok {
		c.warn(ctx, d)
	}

	query, err := BuildQuery(params, version, o.limit, o.skip)
	if err != nil {
		return nil, err
	}

	requestID := uuid.New().String()
	hooks := observability.Search()
	hooks.OnSearchStart(ctx, requestID, query)
	c.logger.Debug("Searching NPPES registry", "request_id", requestID, "query", query.Encode())

	start := time.Now()
	payload, err := c.registry.Query(ctx, query, requestID)
	resp := Response(payload)
	hooks.OnSearchComplete(ctx, requestID, resp.ResultCount(), time.Since(start), err)
	if err != nil {
		c.logger.Debug("Search failed", "request_id", requestID, "err", err)
		return nil, err
	}

	c.logger.Debug("Search complete", "request_id", requestID, "result_count", resp.ResultCount())
	return resp, nil
}

// Lookup fetches the provider with the given 10-digit NPI.
// It returns an [errors.ErrCodeNotFound] error if no provider matches.
func (c *Client) Lookup(ctx context.Context, number string, opts ...SearchOption) (*Provider, error) {
	if !npiRE.MatchString(number) {
		return nil, errors.New(errors.ErrCodeInvalidInput, "%s is not a valid NPI. An NPI is 10 digits", number)
	}

	resp, err := c.Search(ctx, SearchParams{ParamNumber: number}, opts...)
	if err != nil {
		return nil, err
	}
	providers, err := resp.Providers()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidResponse, err, "decode provider %s", number)
	}
	if len(providers) == 0 {
		return nil, errors.New(errors.ErrCodeNotFound, "no provider with NPI %s", number)
	}
	return &providers[0], nil
}

func (c *Client) warn(ctx context.Context, d Deprecation) {
	c.logger.Warn(d.Message(), "version", d.Version, "sunset", d.Sunset)
	observability.Search().OnDeprecation(ctx, d.Version, d.Sunset)
	if c.onWarning != nil {
		c.onWarning(d)
	}
}

var defaultClient = sync.OnceValue(func() *Client { return NewClient() })

// Search runs a search with a default [Client] against the public registry.
func Search(ctx context.Context, params SearchParams, opts ...SearchOption) (Response, error) {
	return defaultClient().Search(ctx, params, opts...)
}
