package nppes

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/andyh1203/npyi/pkg/errors"
	"github.com/andyh1203/npyi/pkg/integrations"
)

// DefaultBaseURL is the public NPPES NPI Registry API endpoint.
const DefaultBaseURL = "https://npiregistry.cms.hhs.gov/api/"

// RequestIDHeader carries the per-search correlation id.
const RequestIDHeader = "X-Request-ID"

// envelopeSchema describes the two payload shapes the registry returns:
// a result page, or a non-empty Errors list whose entries carry a description.
const envelopeSchema = `{
  "type": "object",
  "properties": {
    "result_count": {"type": "integer", "minimum": 0},
    "results": {"type": "array"},
    "Errors": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["description"],
        "properties": {"description": {"type": "string"}}
      }
    }
  }
}`

var envelope = mustSchema(envelopeSchema)

func mustSchema(s string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(s))
	if err != nil {
		panic(fmt.Sprintf("nppes: invalid envelope schema: %v", err))
	}
	return schema
}

// Options configures a [Client]. Zero values select the defaults.
type Options struct {
	BaseURL    string       // Registry endpoint (default DefaultBaseURL)
	HTTPClient *http.Client // Transport (default integrations.NewHTTPClient)
	UserAgent  string       // User-Agent header (omitted if empty)
}

// Client performs raw queries against the NPPES registry.
//
// It knows the endpoint and the payload envelope, but nothing about which
// search parameters are valid: callers hand it a fully assembled query.
// All methods are safe for concurrent use by multiple goroutines.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates an NPPES client.
func NewClient(opts Options) *Client {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	var headers map[string]string
	if opts.UserAgent != "" {
		headers = map[string]string{"User-Agent": opts.UserAgent}
	}
	return &Client{
		Client:  integrations.NewClient(opts.HTTPClient, headers),
		baseURL: baseURL,
	}
}

// BaseURL returns the registry endpoint this client queries.
func (c *Client) BaseURL() string { return c.baseURL }

// Query sends one GET with query to the registry and returns the decoded body.
//
// Returns:
//   - the payload unchanged when it carries no Errors field
//   - an [errors.ErrCodeRegistry] error whose message is the first Errors
//     description when the registry reports a failure
//   - an [errors.ErrCodeInvalidResponse] error when the JSON does not match
//     either documented shape
//   - transport errors ([integrations.ErrNetwork], JSON syntax errors) as-is
func (c *Client) Query(ctx context.Context, query url.Values, requestID string) (map[string]any, error) {
	var headers map[string]string
	if requestID != "" {
		headers = map[string]string{RequestIDHeader: requestID}
	}

	var payload map[string]any
	if err := c.GetWithHeaders(ctx, c.baseURL, query, headers, &payload); err != nil {
		return nil, err
	}
	if err := CheckEnvelope(payload); err != nil {
		return nil, err
	}
	if err := CheckErrors(payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// CheckEnvelope validates payload against the registry envelope schema.
func CheckEnvelope(payload map[string]any) error {
	if payload == nil {
		return errors.New(errors.ErrCodeInvalidResponse, "registry returned an empty payload")
	}
	result, err := envelope.Validate(gojsonschema.NewGoLoader(payload))
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidResponse, err, "validate registry payload")
	}
	if !result.Valid() {
		msgs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			msgs[i] = desc.String()
		}
		return errors.New(errors.ErrCodeInvalidResponse, "unexpected registry payload: %s", strings.Join(msgs, "; "))
	}
	return nil
}

// CheckErrors returns a registry error if payload carries an Errors field.
// The message is the description of the first reported error.
// payload must already have passed [CheckEnvelope].
func CheckErrors(payload map[string]any) error {
	raw, ok := payload["Errors"]
	if !ok {
		return nil
	}
	list, _ := raw.([]any)
	if len(list) == 0 {
		return errors.New(errors.ErrCodeRegistry, "registry reported an error without details")
	}
	first, _ := list[0].(map[string]any)
	desc, _ := first["description"].(string)
	return errors.New(errors.ErrCodeRegistry, "%s", desc)
}
