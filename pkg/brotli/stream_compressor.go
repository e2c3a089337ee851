package brotli

import (
	"sync"

	"github.com/linearregression/jbrotli/internal/adapters/codec"
	"github.com/linearregression/jbrotli/internal/core/domain"
	"github.com/linearregression/jbrotli/internal/core/ports"
	"github.com/linearregression/jbrotli/pkg/errors"
)

var _ ports.StreamCompressor = (*StreamCompressor)(nil)

// StreamCompressor owns one encoder handle and encodes a single logical
// stream across any number of calls. Same locking and release contract as
// StreamDecompressor.
type StreamCompressor struct {
	mu       sync.Mutex
	engine   *codec.Encoder
	finished bool
	failed   error
}

// NewStreamCompressor allocates an encoder handle with the given options.
// A nil opts selects the defaults (quality 5, window bits 22). Invalid
// options surface as an initialization error carrying a ValidationError.
func NewStreamCompressor(opts *Options) (*StreamCompressor, error) {
	prepared, err := prepareOptions(opts)
	if err != nil {
		return nil, errors.NewCodecError(errors.ErrorInitialization, "NewStreamCompressor", err)
	}

	return &StreamCompressor{engine: codec.NewEncoder(prepared)}, nil
}

// Compress feeds up to len(in) bytes into the encoder and writes encoded
// bytes into out, never beyond len(out). op selects plain processing, a
// flush, or stream finalization. StatusHasMoreOutput means out filled up;
// call again with fresh output space before feeding more input.
func (c *StreamCompressor) Compress(in, out []byte, op Operation) (EncodeResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.engine == nil {
		return EncodeResult{Status: StatusError}, errors.NewCodecError(errors.ErrorRelease, "Compress", errReleased)
	}

	if c.failed != nil {
		return EncodeResult{Status: StatusError}, c.failed
	}

	if c.finished {
		return EncodeResult{Status: StatusFinished}, nil
	}

	res, err := c.engine.Compress(in, out, op)
	if err != nil {
		c.failed = errors.NewCodecError(errors.ErrorEncode, "Compress", err)
		return res, c.failed
	}

	if res.Status == domain.StatusFinished {
		c.finished = true
	}
	return res, nil
}

// Release frees the encoder handle. Idempotent.
func (c *StreamCompressor) Release() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.engine != nil {
		c.engine.Close()
		c.engine = nil
	}
	return nil
}

func prepareOptions(opts *Options) (*domain.CodecOptions, error) {
	if opts == nil {
		return codec.DefaultOptions(), nil
	}

	prepared := *opts
	if prepared.WindowBits == 0 {
		prepared.WindowBits = codec.DefaultWindowBits
	}

	if err := codec.Validate(&prepared); err != nil {
		return nil, errors.NewValidationError("codec", prepared, err)
	}
	return &prepared, nil
}
