package terrain

import "errors"

var (
	// ErrInvalidParams is returned for non-positive chunk size or chunk count.
	ErrInvalidParams = errors.New("invalid terrain parameters")
	// ErrInvalidOctaves is returned when fewer than one octave is requested.
	ErrInvalidOctaves = errors.New("octaves must be at least 1")
	// ErrInvalidBias is returned for a bias that is not a finite positive number.
	ErrInvalidBias = errors.New("bias must be a finite number greater than 0")
	// ErrWorldTooLarge is returned when chunkSize*numChunks exceeds MaxWorldSide.
	ErrWorldTooLarge = errors.New("world grid too large")
	// ErrDimensionMismatch is returned when a field does not have the expected size.
	ErrDimensionMismatch = errors.New("heightfield dimension mismatch")
	// ErrNonFinite is returned when a height sample is NaN or infinite.
	ErrNonFinite = errors.New("non-finite height sample")
	// ErrChunkGenerated is returned when a chunk's geometry is generated twice.
	ErrChunkGenerated = errors.New("chunk terrain already generated")
)
