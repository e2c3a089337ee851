// Package pool provides reusable scratch memory for codec calls.
package pool

import (
	"bytes"
	"sync"
)

// BufferPool manages a pool of byte buffers used to collect codec output.
type BufferPool struct {
	size int       // Initial capacity of each buffer.
	pool sync.Pool // Thread-safe pool of buffers.
}

// NewBufferPool creates a buffer pool with a specified initial capacity.
func NewBufferPool(size int) *BufferPool {
	return &BufferPool{
		size: size,
		pool: sync.Pool{
			New: func() any {
				return bytes.NewBuffer(make([]byte, 0, size))
			},
		},
	}
}

// Get retrieves a clean buffer from the pool.
func (bp *BufferPool) Get() *bytes.Buffer {
	buf := bp.pool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// Put returns a buffer to the pool. Buffers that grew far beyond the pool's
// size are dropped so a single large stream doesn't pin memory.
func (bp *BufferPool) Put(buf *bytes.Buffer) {
	if buf.Cap() > bp.size*2 {
		return
	}

	buf.Reset()
	bp.pool.Put(buf)
}

// ChunkPool manages fixed-size byte slices used as per-call output windows.
type ChunkPool struct {
	size int
	pool sync.Pool
}

// NewChunkPool creates a pool of chunks of the given size.
func NewChunkPool(size int) *ChunkPool {
	return &ChunkPool{
		size: size,
		pool: sync.Pool{
			New: func() any {
				chunk := make([]byte, size)
				return &chunk
			},
		},
	}
}

// Get retrieves a chunk from the pool. Contents are undefined.
func (cp *ChunkPool) Get() []byte {
	return *cp.pool.Get().(*[]byte)
}

// Put returns a chunk to the pool. Chunks of the wrong size are dropped.
func (cp *ChunkPool) Put(chunk []byte) {
	if cap(chunk) != cp.size {
		return
	}

	chunk = chunk[:cp.size]
	cp.pool.Put(&chunk)
}
