package errors

import (
	"net/url"
	"slices"
	"strings"
)

// ValidateOneOf checks that value is one of valid. On failure it returns an
// *Error with the given code whose message names the field and lists every
// accepted value in order.
func ValidateOneOf(code Code, field, value string, valid []string) error {
	if slices.Contains(valid, value) {
		return nil
	}
	return New(code, "%s is not a valid value for %s. Valid values are: %s",
		value, field, strings.Join(valid, ", "))
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https) and a host.
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return Wrap(ErrCodeInvalidInput, err, "invalid URL %q", rawURL)
	}
	if u.Host == "" {
		return New(ErrCodeInvalidInput, "URL must include a host")
	}

	return nil
}
