package brotli

import (
	"io"

	"go.uber.org/multierr"
)

// Writer compresses written data onto an underlying writer. It implements
// io.WriteCloser; Flush or Close must be called for the encoded bytes to
// actually reach the destination.
type Writer struct {
	dst  io.Writer
	comp *StreamCompressor
	out  []byte // scratch output window per engine call
	err  error  // sticky terminal error
}

// NewWriter initializes a Writer encoding onto dst. A nil opts selects the
// default codec settings.
func NewWriter(dst io.Writer, opts *Options) (*Writer, error) {
	return NewWriterSize(dst, opts, defaultChunkSize)
}

// NewWriterSize is NewWriter with an explicit size for the output scratch
// window. A non-positive size selects the default.
func NewWriterSize(dst io.Writer, opts *Options, size int) (*Writer, error) {
	if size <= 0 {
		size = defaultChunkSize
	}

	comp, err := NewStreamCompressor(opts)
	if err != nil {
		return nil, err
	}

	return &Writer{
		dst:  dst,
		comp: comp,
		out:  make([]byte, size),
	}, nil
}

func (w *Writer) Write(p []byte) (int, error) {
	return w.drive(p, OperationProcess)
}

// Flush forces out encoded data for all input written so far. The resulting
// output decodes to everything written before the flush, but the stream is
// only complete after Close.
func (w *Writer) Flush() error {
	_, err := w.drive(nil, OperationFlush)
	return err
}

// Close finalizes the stream and releases the encoder handle.
func (w *Writer) Close() error {
	_, err := w.drive(nil, OperationFinish)
	return multierr.Combine(err, w.comp.Release())
}

func (w *Writer) drive(p []byte, op Operation) (int, error) {
	if w.err != nil {
		return 0, w.err
	}

	var written int
	for {
		res, err := w.comp.Compress(p, w.out, op)
		if err != nil {
			w.err = err
			return written, err
		}

		written += res.BytesConsumed
		p = p[res.BytesConsumed:]

		if res.BytesProduced > 0 {
			if _, err := w.dst.Write(w.out[:res.BytesProduced]); err != nil {
				w.err = err
				return written, err
			}
		}

		if len(p) == 0 && res.Status != StatusHasMoreOutput {
			return written, nil
		}
	}
}
