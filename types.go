package bloom

import "errors"

const (
	// DefaultEps is the false positive target applied when a constructor is
	// not given WithFalsePositiveRate.
	DefaultEps = 0.01

	// wordBits is the width of one storage word.
	wordBits = 64
)

var (
	ErrBadN             = errors.New("bloom: expected element count must be > 0")
	ErrBadEps           = errors.New("bloom: false positive rate must be in (0, 1)")
	ErrBadCapacity      = errors.New("bloom: bit capacity must be > 0")
	ErrKRange           = errors.New("bloom: derived hash round count exceeds 255")
	ErrCapacityMismatch = errors.New("bloom: filters have different capacities")
	ErrNilHasher        = errors.New("bloom: hasher must not be nil")
)
