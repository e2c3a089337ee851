package checksum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChecksumVerify(t *testing.T) {
	data := []byte("integrity matters")

	sum := Checksum(data)
	require.True(t, Verify(data, sum))
	require.False(t, Verify(append([]byte("x"), data...), sum))
	require.False(t, Verify(data, sum^1))
}

func TestChecksumKnownValue(t *testing.T) {
	// CRC32 (IEEE) of "123456789" is the standard check value.
	require.Equal(t, uint32(0xCBF43926), Checksum([]byte("123456789")))
}

func TestChecksumEmpty(t *testing.T) {
	require.Equal(t, uint32(0), Checksum(nil))
	require.True(t, Verify(nil, 0))
}
