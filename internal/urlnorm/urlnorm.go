// Package urlnorm cleans bookmark URLs for display.
//
// Tab-suspender extensions (The Great Suspender and friends) rewrite the URL
// of a suspended tab into a chrome-extension:// redirect carrying the real
// address in the fragment. Bookmarks saved from such tabs keep the wrapped
// form, so the original address has to be unwrapped before it is shown or
// matched against.
package urlnorm

import (
	"net/url"
	"regexp"
	"strings"
)

// The three known wrapper encodings, tried in order. Extension ids are
// 32 chars from the a-p alphabet.
var suspenderPrefixes = []*regexp.Regexp{
	// suspended.html#ttl=<title>&pos=<n>&uri=<url>
	regexp.MustCompile(`^chrome-extension://[a-p]{32}/suspended\.html#ttl=[^&]*&(?:pos=[^&]*&)?uri=`),
	// suspended.html#uri=<url>
	regexp.MustCompile(`^chrome-extension://[a-p]{32}/suspended\.html#uri=`),
	// bare extension-path prefix with nothing useful behind it
	regexp.MustCompile(`^chrome-extension://[a-p]{32}/suspended\.html#?`),
}

// Normalize returns a display-ready URL. Strings that already carry a web
// scheme pass through unchanged; otherwise any suspender wrapper is stripped
// and a secure scheme is prepended if still missing. Idempotent.
func Normalize(raw string) string {
	if hasWebScheme(raw) {
		return raw
	}

	out := raw
	for _, re := range suspenderPrefixes {
		out = re.ReplaceAllString(out, "")
	}

	if !hasWebScheme(out) {
		out = "https://" + out
	}
	return out
}

// Domain derives a display domain from a URL: the hostname with its leftmost
// label dropped when more than two remain. Returns "" for anything that does
// not parse. Never panics; safe on arbitrary input.
func Domain(raw string) string {
	parsed, err := url.Parse(Normalize(raw))
	if err != nil {
		return ""
	}

	host := parsed.Hostname()
	if host == "" {
		return ""
	}

	labels := strings.Split(host, ".")
	if len(labels) > 2 {
		labels = labels[1:]
	}
	return strings.Join(labels, ".")
}

func hasWebScheme(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
