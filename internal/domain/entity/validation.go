package entity

import (
	"fmt"
	"net/url"
)

// maxURLLength bounds stored URLs to keep pathological upstream records out of the store.
const maxURLLength = 2048

// ValidateURL validates the format of an article or image URL.
// It checks that the URL is well-formed, uses an HTTP/HTTPS scheme, and has a
// host. Upstream records failing this check are skipped by the pipeline.
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return &ValidationError{Field: "url", Message: "URL is required"}
	}

	if len(rawURL) > maxURLLength {
		return &ValidationError{
			Field:   "url",
			Message: fmt.Sprintf("url must not exceed %d characters", maxURLLength),
		}
	}

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("parse URL: %w", err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return &ValidationError{Field: "url", Message: "URL must use http or https scheme"}
	}

	if parsedURL.Host == "" {
		return &ValidationError{Field: "url", Message: "URL must have a valid host"}
	}

	return nil
}
