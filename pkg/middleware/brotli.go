// Package middleware applies Brotli content encoding to HTTP responses.
// The filter activates only when the request's Accept-Encoding header admits
// the "br" coding; clients that accept gzip but not brotli get gzip instead.
// Responses below a size threshold are passed through unencoded, since codec
// framing inflates tiny bodies.
package middleware

import (
	"fmt"
	"io"
	"net/http"

	"github.com/klauspost/compress/gzip"
	"go.uber.org/zap"

	"github.com/linearregression/jbrotli/pkg/brotli"
)

// DefaultMinSize is the response size below which encoding is skipped.
const DefaultMinSize = 1024

// Options configures the encoding filter.
type Options struct {
	// Quality is the Brotli quality for response encoding. Range 0-11.
	//
	// Default: 5 when Options is nil.
	Quality int

	// WindowBits is the Brotli sliding window exponent. Range 10-24;
	// 0 selects the default.
	WindowBits int

	// MinSize is the minimum body size in bytes before a response is
	// encoded; smaller responses go out as-is. 0 selects DefaultMinSize,
	// negative disables the threshold.
	MinSize int

	// ChunkSize sizes the encoder's output scratch window. 0 selects the
	// default.
	ChunkSize int

	// Logger, when set, receives encoder teardown failures. Responses are
	// already in flight at that point, so logging is all that remains.
	Logger *zap.SugaredLogger
}

// Brotli wraps next so that response bodies are compressed according to the
// request's Accept-Encoding header.
func Brotli(next http.Handler, opts *Options) http.Handler {
	if opts == nil {
		opts = &Options{Quality: brotli.DefaultQuality}
	}

	minSize := opts.MinSize
	if minSize == 0 {
		minSize = DefaultMinSize
	}
	if minSize < 0 {
		minSize = 0
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		coding := negotiateEncoding(r.Header.Get("Accept-Encoding"))
		if coding == encodingIdentity {
			next.ServeHTTP(w, r)
			return
		}

		ew := &encodedWriter{ResponseWriter: w, opts: opts, coding: coding, minSize: minSize}
		defer func() {
			if err := ew.finish(); err != nil && opts.Logger != nil {
				opts.Logger.Errorw("finishing encoded response", "coding", coding, "error", err)
			}
		}()

		next.ServeHTTP(ew, r)
	})
}

func newEncoder(coding string, w io.Writer, opts *Options) (io.WriteCloser, error) {
	switch coding {
	case encodingBrotli:
		return brotli.NewWriterSize(w, &brotli.Options{Quality: opts.Quality, WindowBits: opts.WindowBits}, opts.ChunkSize)
	case encodingGzip:
		return gzip.NewWriterLevel(w, gzip.DefaultCompression)
	default:
		return nil, fmt.Errorf("no encoder for coding %q", coding)
	}
}

// encodedWriter buffers the response body until it is clear whether the
// negotiated encoding pays off. Bodies that stay under minSize are written
// through untouched; once the threshold is crossed the buffered prefix and
// everything after it flow through the encoder.
type encodedWriter struct {
	http.ResponseWriter
	opts    *Options
	coding  string
	minSize int
	status  int
	buf     []byte
	enc     io.WriteCloser
	done    bool
}

func (w *encodedWriter) WriteHeader(statusCode int) {
	if w.status == 0 {
		w.status = statusCode
	}
}

func (w *encodedWriter) Write(b []byte) (int, error) {
	if w.enc != nil {
		return w.enc.Write(b)
	}
	if w.done {
		return w.ResponseWriter.Write(b)
	}

	w.buf = append(w.buf, b...)
	if len(w.buf) >= w.minSize {
		if err := w.startEncoding(); err != nil {
			return len(b), err
		}
	}
	return len(b), nil
}

func (w *encodedWriter) startEncoding() error {
	enc, err := newEncoder(w.coding, w.ResponseWriter, w.opts)
	if err != nil {
		return err
	}

	header := w.Header()
	header.Set("Content-Encoding", w.coding)
	header.Add("Vary", "Accept-Encoding")
	// The encoded length isn't knowable up front.
	header.Del("Content-Length")
	w.ResponseWriter.WriteHeader(w.statusCode())

	w.enc = enc
	buffered := w.buf
	w.buf = nil
	if len(buffered) > 0 {
		if _, err := enc.Write(buffered); err != nil {
			return err
		}
	}
	return nil
}

// finish completes the response once the handler returns: it closes the
// encoder, or delivers a small body that never crossed the threshold.
func (w *encodedWriter) finish() error {
	if w.enc != nil {
		return w.enc.Close()
	}

	w.done = true
	w.ResponseWriter.WriteHeader(w.statusCode())
	if len(w.buf) > 0 {
		_, err := w.ResponseWriter.Write(w.buf)
		w.buf = nil
		return err
	}
	return nil
}

func (w *encodedWriter) statusCode() int {
	if w.status != 0 {
		return w.status
	}
	return http.StatusOK
}
