package brotli_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/linearregression/jbrotli/pkg/brotli"
	"github.com/linearregression/jbrotli/pkg/errors"
)

func TestCompressDecompressRoundTrip(t *testing.T) {
	for _, tc := range []struct {
		name    string
		payload []byte
	}{
		{"empty", nil},
		{"short", []byte("a")},
		{"text", []byte("the quick brown fox jumps over the lazy dog")},
		{"repetitive", bytes.Repeat([]byte{0xAB}, 1<<20)},
		{"binary", binaryPayload(64 * 1024)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			compressed, err := brotli.Compress(tc.payload, nil)
			require.NoError(t, err)

			restored, err := brotli.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, len(tc.payload), len(restored))
			require.Equal(t, tc.payload, restored[:len(tc.payload)])
		})
	}
}

func TestCompressQualityAffectsSize(t *testing.T) {
	payload := bytes.Repeat([]byte("quality comparison payload with some variety 0123456789 "), 500)

	fast, err := brotli.Compress(payload, &brotli.Options{Quality: 1})
	require.NoError(t, err)
	dense, err := brotli.Compress(payload, &brotli.Options{Quality: 11})
	require.NoError(t, err)

	require.LessOrEqual(t, len(dense), len(fast))
}

func TestDecompressTruncatedInput(t *testing.T) {
	compressed, err := brotli.Compress(bytes.Repeat([]byte("truncate me "), 200), nil)
	require.NoError(t, err)

	_, err = brotli.Decompress(compressed[:len(compressed)/2])
	require.Error(t, err)
	require.True(t, errors.IsCategory(err, errors.ErrorCorruptStream))
}

func binaryPayload(n int) []byte {
	payload := make([]byte, n)
	// Deterministic non-repeating pattern.
	var state uint32 = 2463534242
	for i := range payload {
		state ^= state << 13
		state ^= state >> 17
		state ^= state << 5
		payload[i] = byte(state)
	}
	return payload
}
