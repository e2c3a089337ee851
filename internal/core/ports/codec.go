package ports

import (
	"bytes"

	"github.com/linearregression/jbrotli/internal/core/domain"
)

// StreamDecompressor is the boundary contract for incremental Brotli decoding.
// This allows us to swap codec engines without changing callers.
//
// One instance owns one decoder handle. Calls against a single instance are
// serialized internally; distinct instances are fully independent and may run
// in parallel.
type StreamDecompressor interface {
	// Decompress feeds up to len(in) bytes into the decoder and writes
	// decompressed bytes into out, never beyond len(out). A call may consume
	// zero input while producing output, or consume input while producing
	// none. Zero-byte calls are well-formed no-ops.
	Decompress(in, out []byte) (domain.DecodeResult, error)

	// DecompressRange is Decompress over explicit offset/length views of the
	// backing slices. Bounds are validated before the engine is touched.
	DecompressRange(in []byte, inOff, inLen int, out []byte, outOff, outLen int) (domain.DecodeResult, error)

	// DecompressBuffer is Decompress with buffer-style input marshalling:
	// consumed bytes are drained from the buffer.
	DecompressBuffer(in *bytes.Buffer, out []byte) (domain.DecodeResult, error)

	// Release frees the decoder handle. Idempotent; after the first call all
	// decompress calls fail.
	Release() error
}

// StreamCompressor is the encoding mirror of StreamDecompressor.
type StreamCompressor interface {
	// Compress feeds input and drains encoder output into out, driven by op.
	Compress(in, out []byte, op domain.Operation) (domain.EncodeResult, error)

	// Release frees the encoder handle. Idempotent.
	Release() error
}
