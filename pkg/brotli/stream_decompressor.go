package brotli

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"sync"

	"github.com/linearregression/jbrotli/internal/adapters/codec"
	"github.com/linearregression/jbrotli/internal/core/domain"
	"github.com/linearregression/jbrotli/internal/core/ports"
	"github.com/linearregression/jbrotli/pkg/errors"
)

var errReleased = stderrors.New("handle has been released")

var _ ports.StreamDecompressor = (*StreamDecompressor)(nil)

// StreamDecompressor owns one decoder handle and decodes a single logical
// Brotli stream across any number of calls. Output is byte-identical for any
// chunking of the same input.
//
// Calls against one instance are serialized by an internal mutex; distinct
// instances are independent and may run in parallel. A corrupt stream latches
// the handle into a failed state that only Release clears.
type StreamDecompressor struct {
	mu       sync.Mutex
	engine   *codec.Decoder
	finished bool
	failed   error
}

// NewStreamDecompressor allocates and initializes a decoder handle.
// Release must be called to retire it.
func NewStreamDecompressor() *StreamDecompressor {
	return &StreamDecompressor{engine: codec.NewDecoder()}
}

// Decompress feeds up to len(in) bytes into the decoder and writes produced
// bytes into out, never beyond len(out). A call may consume input while
// producing nothing (the decoder is mid-symbol) or produce output while
// consuming nothing (buffered state is being drained). Zero-byte calls are
// well-formed no-ops.
//
// Once the stream finishes, further calls report StatusFinished with zero
// counts; trailing bytes are the caller's concern.
func (d *StreamDecompressor) Decompress(in, out []byte) (DecodeResult, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.decompress("Decompress", in, out)
}

// DecompressRange is Decompress over explicit offset/length views of the
// backing slices, as delivered by callers that manage positions themselves.
// Bounds are validated before any codec state is touched.
func (d *StreamDecompressor) DecompressRange(
	in []byte, inOff, inLen int, out []byte, outOff, outLen int,
) (DecodeResult, error) {
	const op = "DecompressRange"

	if err := checkView(op, "input", inOff, inLen, len(in)); err != nil {
		return DecodeResult{Status: StatusError}, err
	}
	if err := checkView(op, "output", outOff, outLen, len(out)); err != nil {
		return DecodeResult{Status: StatusError}, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	return d.decompress(op, in[inOff:inOff+inLen], out[outOff:outOff+outLen])
}

// DecompressBuffer is the buffer-view entry point: consumed bytes are drained
// from in, produced bytes land in out. Same contract as Decompress; this is
// an alternate marshalling path, not a distinct operation.
func (d *StreamDecompressor) DecompressBuffer(in *bytes.Buffer, out []byte) (DecodeResult, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	res, err := d.decompress("DecompressBuffer", in.Bytes(), out)
	if res.BytesConsumed > 0 {
		in.Next(res.BytesConsumed)
	}
	return res, err
}

// Release frees the decoder handle. Idempotent; after the first call every
// decompress call fails with a use-after-release error.
func (d *StreamDecompressor) Release() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.engine != nil {
		d.engine.Close()
		d.engine = nil
	}
	return nil
}

func (d *StreamDecompressor) decompress(op string, in, out []byte) (DecodeResult, error) {
	if d.engine == nil {
		return DecodeResult{Status: StatusError}, errors.NewCodecError(errors.ErrorRelease, op, errReleased)
	}

	if d.failed != nil {
		return DecodeResult{Status: StatusError}, d.failed
	}

	if d.finished {
		return DecodeResult{Status: StatusFinished}, nil
	}

	res, err := d.engine.Decompress(in, out)
	if err != nil {
		d.failed = errors.NewCodecError(errors.ErrorCorruptStream, op, err)
		return res, d.failed
	}

	if res.Status == domain.StatusFinished {
		d.finished = true
	}
	return res, nil
}

// checkView validates an offset/length view against its backing slice.
// The length comparison is phrased against the remaining space so that huge
// off/length pairs cannot wrap around the int range.
func checkView(op, name string, off, length, backing int) error {
	if off < 0 || length < 0 || length > backing-off {
		return errors.NewCodecError(errors.ErrorArgument, op,
			fmt.Errorf("%s view at offset %d with length %d exceeds backing slice of %d bytes", name, off, length, backing))
	}
	return nil
}
