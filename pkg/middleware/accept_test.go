package middleware

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNegotiateEncoding(t *testing.T) {
	for _, tc := range []struct {
		name   string
		header string
		want   string
	}{
		{"empty header", "", encodingIdentity},
		{"brotli only", "br", encodingBrotli},
		{"brotli among others", "gzip, deflate, br", encodingBrotli},
		{"gzip fallback", "gzip, deflate", encodingGzip},
		{"wildcard admits brotli", "*", encodingBrotli},
		{"brotli rejected by q", "br;q=0, gzip", encodingGzip},
		{"explicit zero beats wildcard", "br;q=0, *", encodingGzip},
		{"everything rejected", "br;q=0, gzip;q=0, *;q=0", encodingIdentity},
		{"case insensitive", "BR", encodingBrotli},
		{"whitespace and q", " br ; q=0.8 , gzip ; q=0.5 ", encodingBrotli},
		{"malformed q ignored", "br;q=abc", encodingBrotli},
		{"unknown codings only", "zstd, deflate", encodingIdentity},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, negotiateEncoding(tc.header))
		})
	}
}

func TestParseAcceptEncodingQualities(t *testing.T) {
	encodings := parseAcceptEncoding("br;q=0.9, gzip;q=0.4, *;q=0.1")
	require.Len(t, encodings, 3)
	require.Equal(t, acceptedEncoding{coding: "br", quality: 0.9}, encodings[0])
	require.Equal(t, acceptedEncoding{coding: "gzip", quality: 0.4}, encodings[1])
	require.Equal(t, acceptedEncoding{coding: "*", quality: 0.1}, encodings[2])
}
