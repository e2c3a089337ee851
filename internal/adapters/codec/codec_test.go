package codec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/linearregression/jbrotli/internal/core/domain"
)

func TestValidate(t *testing.T) {
	for _, tc := range []struct {
		name    string
		opts    domain.CodecOptions
		wantErr bool
	}{
		{"defaults", *DefaultOptions(), false},
		{"zero window selects default", domain.CodecOptions{Quality: 5}, false},
		{"quality lower bound", domain.CodecOptions{Quality: MinQuality, WindowBits: MinWindowBits}, false},
		{"quality upper bound", domain.CodecOptions{Quality: MaxQuality, WindowBits: MaxWindowBits}, false},
		{"quality too high", domain.CodecOptions{Quality: 12, WindowBits: 22}, true},
		{"quality negative", domain.CodecOptions{Quality: -1, WindowBits: 22}, true},
		{"window too small", domain.CodecOptions{Quality: 5, WindowBits: 9}, true},
		{"window too large", domain.CodecOptions{Quality: 5, WindowBits: 25}, true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(&tc.opts)
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestEngineRoundTrip(t *testing.T) {
	payload := bytes.Repeat([]byte("engine level round trip "), 100)

	enc := NewEncoder(DefaultOptions())
	defer enc.Close()

	var compressed []byte
	in := payload
	out := make([]byte, 256)
	for {
		res, err := enc.Compress(in, out, domain.OperationFinish)
		require.NoError(t, err)
		compressed = append(compressed, out[:res.BytesProduced]...)
		in = in[res.BytesConsumed:]
		if res.Status == domain.StatusFinished {
			break
		}
	}
	require.Empty(t, in)

	dec := NewDecoder()
	defer dec.Close()

	var restored []byte
	in = compressed
	for {
		res, err := dec.Decompress(in, out)
		require.NoError(t, err)
		restored = append(restored, out[:res.BytesProduced]...)
		in = in[res.BytesConsumed:]
		if res.Status == domain.StatusFinished {
			break
		}
		require.NotEqual(t, domain.StatusNeedsMoreInput, res.Status, "decoder starved before stream end")
	}

	require.Equal(t, payload, restored)
	require.True(t, dec.Finished())
}

func TestEncoderFinishedOnlyWhenDrained(t *testing.T) {
	enc := NewEncoder(DefaultOptions())
	defer enc.Close()

	payload := bytes.Repeat([]byte("drain before finished "), 200)

	// Plain processing never reports Finished, even with all input consumed.
	res, err := enc.Compress(payload, make([]byte, 16), domain.OperationProcess)
	require.NoError(t, err)
	require.Equal(t, len(payload), res.BytesConsumed)
	require.NotEqual(t, domain.StatusFinished, res.Status)

	// Finalizing with a tiny output window reports HasMoreOutput until the
	// encoder's pending bytes are fully drained.
	var sawMoreOutput bool
	out := make([]byte, 16)
	for {
		res, err = enc.Compress(nil, out, domain.OperationFinish)
		require.NoError(t, err)
		if res.Status == domain.StatusFinished {
			require.Zero(t, res.BytesConsumed)
			break
		}
		require.Equal(t, domain.StatusHasMoreOutput, res.Status)
		require.Equal(t, len(out), res.BytesProduced)
		sawMoreOutput = true
	}
	require.True(t, sawMoreOutput)
}

func TestDecoderZeroByteStep(t *testing.T) {
	dec := NewDecoder()
	defer dec.Close()

	res, err := dec.Decompress(nil, nil)
	require.NoError(t, err)
	require.Zero(t, res.BytesConsumed)
	require.Zero(t, res.BytesProduced)
	require.Equal(t, domain.StatusNeedsMoreInput, res.Status)
}

func TestDecoderReportsFormatError(t *testing.T) {
	dec := NewDecoder()
	defer dec.Close()

	// 0x11 sets reserved window bits, a guaranteed format violation.
	res, err := dec.Decompress(bytes.Repeat([]byte{0x11}, 8), make([]byte, 64))
	require.Error(t, err)
	require.Equal(t, domain.StatusError, res.Status)
	require.Contains(t, err.Error(), "brotli decode")
}
