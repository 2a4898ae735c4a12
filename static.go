package bloom

// Static is the fixed-capacity Bloom filter variant. Its bit capacity is
// chosen by the caller, fixed for the filter's lifetime, and each element
// sets or tests a single position: the element hash reduced modulo the
// capacity. Capacities that are a power of two take a mask fast path.
//
// The zero value is not usable; construct with NewStatic or
// NewStaticWithHasher.
type Static[T any] struct {
	words []uint64
	nBits uint64
	mask  uint64 // nBits-1 when nBits is a power of two above 1, else 0
	hash  Hasher[T]
}

// NewStatic builds a filter with a fixed capacity of nbits bits. Hashing
// defaults as in New; override with WithHasher. WithAllocator places the
// bit array, WithFalsePositiveRate is not consulted.
func NewStatic[T comparable](nbits uint64, opts ...Option[T]) (*Static[T], error) {
	cfg := newConfig(opts)
	if cfg.hash == nil {
		cfg.hash = defaultHasher[T]()
	}
	return newStatic(nbits, cfg)
}

// NewStaticWithHasher is NewStatic for element types that have no default
// hash.
func NewStaticWithHasher[T any](nbits uint64, h Hasher[T], opts ...Option[T]) (*Static[T], error) {
	if h == nil {
		return nil, ErrNilHasher
	}
	cfg := newConfig(opts)
	cfg.hash = h
	return newStatic(nbits, cfg)
}

func newStatic[T any](nbits uint64, cfg config[T]) (*Static[T], error) {
	if nbits == 0 {
		return nil, ErrBadCapacity
	}
	s := &Static[T]{
		words: cfg.alloc.AllocWords(Words(nbits)),
		nBits: nbits,
		hash:  cfg.hash,
	}
	if nbits&(nbits-1) == 0 && nbits > 1 {
		s.mask = nbits - 1
	}
	return s, nil
}

// bucket reduces a hash sum to a bit position in [0, nBits).
func (s *Static[T]) bucket(sum uint64) uint64 {
	if s.mask != 0 {
		return sum & s.mask
	}
	return sum % s.nBits
}

// Insert adds value to the set.
func (s *Static[T]) Insert(value T) {
	setBit(s.words, s.bucket(s.hash(value)))
}

// InsertSum inserts by precomputed hash sum, the transparent path described
// on Filter.InsertSum.
func (s *Static[T]) InsertSum(sum uint64) {
	setBit(s.words, s.bucket(sum))
}

// Matches reports whether value might be in the set. Never false for a
// value inserted since the last Clear.
func (s *Static[T]) Matches(value T) bool {
	return testBit(s.words, s.bucket(s.hash(value)))
}

// MatchesSum is Matches for a precomputed hash sum.
func (s *Static[T]) MatchesSum(sum uint64) bool {
	return testBit(s.words, s.bucket(sum))
}

// Clear removes every element. Capacity is unchanged.
func (s *Static[T]) Clear() {
	clearWords(s.words)
}

// Swap exchanges the bit arrays and hashers of two filters of identical
// capacity, and fails with ErrCapacityMismatch otherwise.
func (s *Static[T]) Swap(other *Static[T]) error {
	if s.nBits != other.nBits {
		return ErrCapacityMismatch
	}
	s.words, other.words = other.words, s.words
	s.hash, other.hash = other.hash, s.hash
	return nil
}

// N returns the fixed bit capacity.
func (s *Static[T]) N() uint64 { return s.nBits }
