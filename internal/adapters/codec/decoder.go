package codec

import (
	"fmt"
	"io"

	"github.com/andybalholm/brotli"

	"github.com/linearregression/jbrotli/internal/core/domain"
)

// Decoder wraps one Brotli decoder state. It is not safe for concurrent use;
// callers serialize access per instance.
//
// The engine exposes a pull-style io.Reader, so the decoder drives it through
// a feeding source: each Decompress call stages the input slice as the
// engine's source and drains decoded bytes into out. Input the engine buffers
// internally counts as consumed; the caller must not feed it again.
type Decoder struct {
	src      *sliceSource
	state    *brotli.Reader
	pending  bool // last call ended with the output window full
	finished bool
}

// sliceSource serves the bytes staged for the current decode step and reports
// end-of-input once they run out. starved records whether the engine polled
// past the staged bytes, which disambiguates the engine's io.EOF results.
type sliceSource struct {
	data    []byte
	starved bool
}

func (s *sliceSource) Read(p []byte) (int, error) {
	if len(s.data) == 0 {
		s.starved = true
		return 0, io.EOF
	}
	n := copy(p, s.data)
	s.data = s.data[n:]
	return n, nil
}

// NewDecoder allocates and initializes a fresh decoder state.
func NewDecoder() *Decoder {
	src := &sliceSource{}
	return &Decoder{src: src, state: brotli.NewReader(src)}
}

// Decompress runs the decoder against one input/output window pair. It
// consumes from in, writes into out and reports exact counts. Input bytes
// continuing past the logical end of the stream in the same call are rejected
// by the engine as excessive input.
func (d *Decoder) Decompress(in, out []byte) (domain.DecodeResult, error) {
	if d.finished {
		return domain.DecodeResult{Status: domain.StatusFinished}, nil
	}
	if len(in) == 0 && !d.pending {
		return domain.DecodeResult{Status: domain.StatusNeedsMoreInput}, nil
	}

	d.src.data = in
	d.src.starved = false

	var produced int
	status := domain.StatusNeedsMoreInput

loop:
	for {
		if produced == len(out) {
			status = domain.StatusHasMoreOutput
			break
		}

		n, err := d.state.Read(out[produced:])
		produced += n

		switch err {
		case nil:
			if len(d.src.data) == 0 && produced < len(out) {
				break loop
			}
		case io.EOF:
			if n == 0 && d.src.starved {
				// The engine polled an empty source; the stream itself has
				// not ended.
				break loop
			}
			d.finished = true
			status = domain.StatusFinished
			break loop
		case io.ErrUnexpectedEOF:
			break loop
		case io.ErrShortBuffer:
			status = domain.StatusHasMoreOutput
			break loop
		default:
			consumed := len(in) - len(d.src.data)
			d.src.data = nil
			return domain.DecodeResult{
				BytesConsumed: consumed,
				BytesProduced: produced,
				Status:        domain.StatusError,
			}, fmt.Errorf("brotli decode: %w", err)
		}
	}

	consumed := len(in) - len(d.src.data)
	d.src.data = nil
	d.pending = status == domain.StatusHasMoreOutput

	return domain.DecodeResult{
		BytesConsumed: consumed,
		BytesProduced: produced,
		Status:        status,
	}, nil
}

// Finished reports whether the decoder reached the logical end of the stream
// and drained all pending output.
func (d *Decoder) Finished() bool {
	return d.finished
}

// Close drops the decoder state. The engine is garbage collected; there is no
// native memory to free, but the state must not be touched afterwards.
func (d *Decoder) Close() {
	d.state = nil
	d.src = nil
}
