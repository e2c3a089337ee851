package middleware

import (
	"strconv"
	"strings"
)

// Content codings negotiated by the filter, as registered for HTTP.
const (
	encodingBrotli   = "br"
	encodingGzip     = "gzip"
	encodingIdentity = "identity"
)

type acceptedEncoding struct {
	coding  string
	quality float64
}

// parseAcceptEncoding splits an Accept-Encoding header value into codings
// with their q-values. Malformed q-values fall back to 1.
func parseAcceptEncoding(header string) []acceptedEncoding {
	parts := strings.Split(header, ",")
	encodings := make([]acceptedEncoding, 0, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		coding, params, _ := strings.Cut(part, ";")
		enc := acceptedEncoding{coding: strings.ToLower(strings.TrimSpace(coding)), quality: 1}

		for _, param := range strings.Split(params, ";") {
			key, value, ok := strings.Cut(strings.TrimSpace(param), "=")
			if !ok || strings.TrimSpace(key) != "q" {
				continue
			}
			if q, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil {
				enc.quality = q
			}
		}

		encodings = append(encodings, enc)
	}

	return encodings
}

// acceptsEncoding reports whether the header admits the given coding, either
// explicitly or through a wildcard, with a non-zero q-value. An explicit
// entry always wins over the wildcard.
func acceptsEncoding(header, coding string) bool {
	var wildcard *acceptedEncoding

	for _, enc := range parseAcceptEncoding(header) {
		if enc.coding == coding {
			return enc.quality > 0
		}
		if enc.coding == "*" {
			e := enc
			wildcard = &e
		}
	}

	return wildcard != nil && wildcard.quality > 0
}

// negotiateEncoding picks the response coding for a request: brotli when
// admitted, gzip as fallback, identity otherwise.
func negotiateEncoding(header string) string {
	if acceptsEncoding(header, encodingBrotli) {
		return encodingBrotli
	}
	if acceptsEncoding(header, encodingGzip) {
		return encodingGzip
	}
	return encodingIdentity
}
