package brotli

import (
	"io"
)

// Reader decompresses a Brotli stream read from an underlying source.
// It implements io.ReadCloser; Close must be called to retire the handle.
type Reader struct {
	src io.Reader
	dec *StreamDecompressor
	buf []byte // scratch space for reading from src
	in  []byte // unconsumed tail of the current chunk; aliases buf
	err error  // sticky terminal error
}

// NewReader initializes a Reader decoding from src.
func NewReader(src io.Reader) *Reader {
	return NewReaderSize(src, defaultChunkSize)
}

// NewReaderSize is NewReader with an explicit size for the input scratch
// window. A non-positive size selects the default.
func NewReaderSize(src io.Reader, size int) *Reader {
	if size <= 0 {
		size = defaultChunkSize
	}
	return &Reader{
		src: src,
		dec: NewStreamDecompressor(),
		buf: make([]byte, size),
	}
}

func (r *Reader) Read(p []byte) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	if len(p) == 0 {
		return 0, nil
	}

	for {
		res, err := r.dec.Decompress(r.in, p)
		r.in = r.in[res.BytesConsumed:]

		if err != nil {
			r.err = err
			return res.BytesProduced, err
		}

		switch res.Status {
		case StatusFinished:
			r.err = io.EOF
			if res.BytesProduced == 0 {
				return 0, io.EOF
			}
			return res.BytesProduced, nil
		case StatusHasMoreOutput:
			return res.BytesProduced, nil
		}

		// Needs more input. Hand back what we have before blocking on src.
		if res.BytesProduced > 0 {
			return res.BytesProduced, nil
		}

		n, err := r.src.Read(r.buf)
		if n == 0 {
			if err == nil {
				continue
			}
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			r.err = err
			return 0, err
		}
		r.in = r.buf[:n]
	}
}

// Close releases the decoder handle. It does not close the source.
func (r *Reader) Close() error {
	return r.dec.Release()
}
