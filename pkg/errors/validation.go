package errors

import (
	"net/url"
	"strings"
	"unicode"
)

// RequireString validates that a named call argument is a non-blank string.
// The parameter name is part of the message so callers can tell which
// argument was rejected. Arguments end up as URL path segments, so the dot
// segments "." and ".." are refused.
func RequireString(param, value string) error {
	if strings.TrimSpace(value) == "" {
		return New(ErrCodeValidation, "%s must be a non-empty string", param)
	}
	if value == "." || value == ".." {
		return New(ErrCodeValidation, "%s must not be %q", param, value)
	}
	for _, r := range value {
		if unicode.IsControl(r) {
			return New(ErrCodeValidation, "%s contains invalid control characters", param)
		}
	}
	return nil
}

// RequireStrings validates every (name, value) pair in order and returns
// the first failure.
func RequireStrings(pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if err := RequireString(pairs[i], pairs[i+1]); err != nil {
			return err
		}
	}
	return nil
}

// RequireList validates that a named list argument is non-empty and holds
// no blank entries.
func RequireList(param string, values []string) error {
	if len(values) == 0 {
		return New(ErrCodeValidation, "%s must be a non-empty list of strings", param)
	}
	for i, v := range values {
		if strings.TrimSpace(v) == "" {
			return New(ErrCodeValidation, "%s[%d] must be a non-empty string", param, i)
		}
	}
	return nil
}

// RequireID validates a positive numeric identifier.
func RequireID(param string, id int64) error {
	if id <= 0 {
		return New(ErrCodeValidation, "%s must be a positive integer", param)
	}
	return nil
}

// ValidateBaseURL validates the server base URL supplied at construction.
// It must be an absolute http or https URL with a host.
func ValidateBaseURL(rawURL string) error {
	if strings.TrimSpace(rawURL) == "" {
		return New(ErrCodeConfiguration, "base URL is required")
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return Wrap(ErrCodeConfiguration, err, "base URL %q is not a valid URL", rawURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return New(ErrCodeConfiguration, "base URL must use http or https scheme")
	}
	if u.Host == "" {
		return New(ErrCodeConfiguration, "base URL %q has no host", rawURL)
	}
	return nil
}
