// Package url resolves address-bar input into navigable URLs.
package url

import (
	"net/url"
	"strings"
)

// HasScheme reports whether input already names a scheme ("https://", "about:").
func HasScheme(input string) bool {
	if strings.Contains(input, "://") {
		return true
	}
	return strings.HasPrefix(input, "about:") || strings.HasPrefix(input, "data:")
}

// Normalize adds https:// prefix if missing for URL-like inputs.
// Returns the input unchanged if it already has a scheme or doesn't look like a URL.
func Normalize(input string) string {
	if input == "" || HasScheme(input) {
		return input
	}
	if LooksLikeURL(input) {
		return "https://" + input
	}
	return input
}

// LooksLikeURL checks if the input appears to be a URL (not a search query).
// Returns true for strings like "github.com", "localhost:8080" or "https://x".
func LooksLikeURL(input string) bool {
	if input == "" {
		return false
	}
	if HasScheme(input) {
		return !strings.Contains(input, " ")
	}
	if strings.Contains(input, " ") {
		return false
	}
	if strings.HasPrefix(input, "localhost") {
		return true
	}
	return strings.Contains(input, ".")
}

// Host returns the host of a URL without a "www." prefix.
func Host(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return ""
	}
	return strings.TrimPrefix(parsed.Host, "www.")
}
