package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBufferPoolReuse(t *testing.T) {
	bp := NewBufferPool(1024)

	buf := bp.Get()
	require.Zero(t, buf.Len())
	require.GreaterOrEqual(t, buf.Cap(), 1024)

	buf.WriteString("leftover contents")
	bp.Put(buf)

	again := bp.Get()
	require.Zero(t, again.Len(), "pooled buffers come back clean")
}

func TestBufferPoolDropsOversized(t *testing.T) {
	bp := NewBufferPool(64)

	buf := bp.Get()
	buf.Write(make([]byte, 4096))
	bp.Put(buf) // dropped, not pooled

	again := bp.Get()
	require.LessOrEqual(t, again.Cap(), 128)
}

func TestChunkPoolSizes(t *testing.T) {
	cp := NewChunkPool(512)

	chunk := cp.Get()
	require.Len(t, chunk, 512)
	cp.Put(chunk)

	cp.Put(make([]byte, 100)) // wrong size, dropped
	require.Len(t, cp.Get(), 512)
}
