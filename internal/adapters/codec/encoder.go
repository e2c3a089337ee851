package codec

import (
	"bytes"
	"fmt"

	"github.com/andybalholm/brotli"

	"github.com/linearregression/jbrotli/internal/core/domain"
)

// Encoder wraps one Brotli encoder state. It is not safe for concurrent use;
// callers serialize access per instance.
//
// The engine exposes a push-style io.Writer, so the encoder collects its
// output in a sink buffer and hands it out one caller window at a time.
type Encoder struct {
	sink   bytes.Buffer
	state  *brotli.Writer
	closed bool // the engine finalized the stream
}

// NewEncoder allocates an encoder state with the given parameters. Options
// must be validated by the caller.
func NewEncoder(opts *domain.CodecOptions) *Encoder {
	e := &Encoder{}
	e.state = brotli.NewWriterOptions(&e.sink, brotli.WriterOptions{
		Quality: opts.Quality,
		LGWin:   opts.WindowBits,
	})
	return e
}

// Compress feeds in to the encoder, then moves pending encoded bytes into
// out, never beyond len(out). op selects plain processing, a flush, or stream
// finalization. StatusFinished is reported only once the engine has accepted
// the finish and the sink is fully drained.
func (e *Encoder) Compress(in, out []byte, op domain.Operation) (domain.EncodeResult, error) {
	var res domain.EncodeResult

	if !e.closed {
		if len(in) > 0 {
			n, err := e.state.Write(in)
			res.BytesConsumed = n
			if err != nil {
				res.Status = domain.StatusError
				return res, fmt.Errorf("brotli encode: %w", err)
			}
		}

		switch op {
		case domain.OperationFlush:
			if err := e.state.Flush(); err != nil {
				res.Status = domain.StatusError
				return res, fmt.Errorf("brotli encode flush: %w", err)
			}
		case domain.OperationFinish:
			if err := e.state.Close(); err != nil {
				res.Status = domain.StatusError
				return res, fmt.Errorf("brotli encode finish: %w", err)
			}
			e.closed = true
		}
	}

	res.BytesProduced = copy(out, e.sink.Bytes())
	e.sink.Next(res.BytesProduced)

	switch {
	case e.sink.Len() > 0:
		res.Status = domain.StatusHasMoreOutput
	case e.closed:
		res.Status = domain.StatusFinished
	default:
		res.Status = domain.StatusNeedsMoreInput
	}

	return res, nil
}

// Close drops the encoder state.
func (e *Encoder) Close() {
	e.state = nil
	e.sink.Reset()
}
