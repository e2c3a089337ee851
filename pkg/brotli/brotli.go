// Package brotli exposes streaming Brotli compression and decompression over
// caller-managed byte slices. Each stream is processed in bounded-size
// input/output chunks; arbitrarily large payloads never need to be resident
// in memory at once.
//
// The codec state machine itself lives in github.com/andybalholm/brotli and
// is intentionally opaque to this boundary.
package brotli

import (
	"io"

	"github.com/linearregression/jbrotli/internal/adapters/codec"
	"github.com/linearregression/jbrotli/internal/core/domain"
	"github.com/linearregression/jbrotli/pkg/errors"
	"github.com/linearregression/jbrotli/pkg/pool"
)

// Boundary value types (re-exported for callers).
type (
	Status       = domain.Status
	DecodeResult = domain.DecodeResult
	EncodeResult = domain.EncodeResult
	Operation    = domain.Operation
	Options      = domain.CodecOptions
)

const (
	StatusNeedsMoreInput = domain.StatusNeedsMoreInput
	StatusHasMoreOutput  = domain.StatusHasMoreOutput
	StatusFinished       = domain.StatusFinished
	StatusError          = domain.StatusError

	OperationProcess = domain.OperationProcess
	OperationFlush   = domain.OperationFlush
	OperationFinish  = domain.OperationFinish

	MinQuality        = codec.MinQuality
	MaxQuality        = codec.MaxQuality
	DefaultQuality    = codec.DefaultQuality
	DefaultWindowBits = codec.DefaultWindowBits
)

// defaultChunkSize is the per-call scratch window for the one-shot helpers.
// Chosen to match the chunk size used by io.Copy.
const defaultChunkSize = 32 * 1024

var (
	outputBuffers = pool.NewBufferPool(defaultChunkSize)
	scratchChunks = pool.NewChunkPool(defaultChunkSize)
)

// Compress encodes data in one call. opts may be nil for defaults.
func Compress(data []byte, opts *Options) ([]byte, error) {
	comp, err := NewStreamCompressor(opts)
	if err != nil {
		return nil, err
	}
	defer comp.Release()

	buf := outputBuffers.Get()
	defer outputBuffers.Put(buf)
	chunk := scratchChunks.Get()
	defer scratchChunks.Put(chunk)

	in := data
	for {
		res, err := comp.Compress(in, chunk, OperationFinish)
		if err != nil {
			return nil, err
		}

		in = in[res.BytesConsumed:]
		buf.Write(chunk[:res.BytesProduced])

		if res.Status == StatusFinished {
			break
		}
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out, nil
}

// Decompress decodes a complete Brotli payload in one call. Truncated input
// surfaces as a corrupt-stream error rather than a short result.
func Decompress(data []byte) ([]byte, error) {
	dec := NewStreamDecompressor()
	defer dec.Release()

	buf := outputBuffers.Get()
	defer outputBuffers.Put(buf)
	chunk := scratchChunks.Get()
	defer scratchChunks.Put(chunk)

	in := data
	for {
		res, err := dec.Decompress(in, chunk)
		if err != nil {
			return nil, err
		}

		in = in[res.BytesConsumed:]
		buf.Write(chunk[:res.BytesProduced])

		switch res.Status {
		case StatusFinished:
			out := make([]byte, buf.Len())
			copy(out, buf.Bytes())
			return out, nil
		case StatusNeedsMoreInput:
			if len(in) == 0 {
				return nil, errors.NewCodecError(errors.ErrorCorruptStream, "Decompress", io.ErrUnexpectedEOF)
			}
		}
	}
}
