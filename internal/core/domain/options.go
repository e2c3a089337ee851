package domain

// CodecOptions defines tunable parameters for Brotli encoding. Decoding is
// parameterless; the decoder adapts to whatever the stream declares.
type CodecOptions struct {
	// Quality controls the compression-speed vs compression-density trade-off.
	// Higher quality is slower but denser. Range is 0-11.
	//
	// Default: 5
	Quality int

	// WindowBits is the base-2 logarithm of the sliding window size.
	// Larger windows improve density on large payloads at the cost of memory
	// on both ends. Range is 10-24; 0 selects the default.
	//
	// Default: 22
	WindowBits int
}
