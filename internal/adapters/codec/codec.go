// Package codec binds the streaming boundary to the Brotli engine from
// github.com/andybalholm/brotli. All algorithmic work (LZ77 matching, context
// modeling, prefix coding, dictionary transforms) happens inside the engine;
// this package only marshals slices in and composite results out.
package codec

import (
	"fmt"

	"github.com/linearregression/jbrotli/internal/core/domain"
)

// Encoding parameter bounds, as defined by the Brotli format.
const (
	MinQuality = 0
	MaxQuality = 11

	MinWindowBits = 10
	MaxWindowBits = 24

	DefaultQuality    = 5
	DefaultWindowBits = 22
)

// DefaultOptions returns codec settings that balance density and speed for
// most payloads.
func DefaultOptions() *domain.CodecOptions {
	return &domain.CodecOptions{
		Quality:    DefaultQuality,
		WindowBits: DefaultWindowBits,
	}
}

// Validate checks codec options against the format's parameter ranges.
// A zero WindowBits is allowed and selects the default window.
func Validate(input *domain.CodecOptions) error {
	if input.Quality < MinQuality || input.Quality > MaxQuality {
		return fmt.Errorf("quality must be between %d and %d, got %d", MinQuality, MaxQuality, input.Quality)
	}

	if input.WindowBits != 0 && (input.WindowBits < MinWindowBits || input.WindowBits > MaxWindowBits) {
		return fmt.Errorf(
			"window bits must be 0 or between %d and %d, got %d", MinWindowBits, MaxWindowBits, input.WindowBits,
		)
	}

	return nil
}
