package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCodecErrorWrapping(t *testing.T) {
	cause := stderrors.New("window bits out of range")
	err := NewCodecError(ErrorInitialization, "NewStreamCompressor", cause)

	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), "initialization")
	require.Contains(t, err.Error(), "NewStreamCompressor")

	wrapped := fmt.Errorf("opening handle: %w", err)
	require.True(t, IsCategory(wrapped, ErrorInitialization))
	require.False(t, IsCategory(wrapped, ErrorCorruptStream))

	ce := AsCodecError(wrapped)
	require.NotNil(t, ce)
	require.Equal(t, "NewStreamCompressor", ce.Operation)
}

func TestCodecErrorRecoverable(t *testing.T) {
	require.True(t, NewCodecError(ErrorArgument, "DecompressRange", stderrors.New("bad view")).IsRecoverable())
	require.False(t, NewCodecError(ErrorCorruptStream, "Decompress", stderrors.New("bad bits")).IsRecoverable())
	require.False(t, NewCodecError(ErrorRelease, "Decompress", stderrors.New("released")).IsRecoverable())
}

func TestIsCategoryNonCodecError(t *testing.T) {
	require.False(t, IsCategory(stderrors.New("plain"), ErrorArgument))
	require.Nil(t, AsCodecError(stderrors.New("plain")))
}

func TestValidationErrorHelpers(t *testing.T) {
	verr := NewValidationError("quality", 42, stderrors.New("out of range"))
	wrapped := NewCodecError(ErrorInitialization, "NewStreamCompressor", verr)

	require.True(t, IsValidationError(wrapped))

	got := AsValidationError(wrapped)
	require.NotNil(t, got)
	require.Equal(t, "quality", got.Field)
	require.Equal(t, 42, got.Value)
}
