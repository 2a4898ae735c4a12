package bloom

// Filter is the resizable Bloom filter variant. Its bit length m and round
// count k are derived from the expected element count and false positive
// target at construction, and each element sets or tests k positions via
// enhanced double hashing.
//
// The zero value is not usable; construct with New or NewWithHasher.
type Filter[T any] struct {
	words []uint64
	mBits uint64
	k     uint8
	hash  Hasher[T]
	alloc Allocator
}

// New builds a filter sized for n expected elements. The false positive
// target defaults to DefaultEps; override it with WithFalsePositiveRate.
// The element hash defaults to HashString for strings and the runtime's
// generic hash otherwise; override it with WithHasher.
func New[T comparable](n uint64, opts ...Option[T]) (*Filter[T], error) {
	cfg := newConfig(opts)
	if cfg.hash == nil {
		cfg.hash = defaultHasher[T]()
	}
	return newFilter(n, cfg)
}

// NewWithHasher builds a filter for element types that have no default
// hash, such as []byte or slice-bearing structs. Otherwise identical to
// New.
func NewWithHasher[T any](n uint64, h Hasher[T], opts ...Option[T]) (*Filter[T], error) {
	if h == nil {
		return nil, ErrNilHasher
	}
	cfg := newConfig(opts)
	cfg.hash = h
	return newFilter(n, cfg)
}

func newFilter[T any](n uint64, cfg config[T]) (*Filter[T], error) {
	m, k, err := Sizing(n, cfg.eps)
	if err != nil {
		return nil, err
	}
	return &Filter[T]{
		words: cfg.alloc.AllocWords(Words(m)),
		mBits: m,
		k:     k,
		hash:  cfg.hash,
		alloc: cfg.alloc,
	}, nil
}

// Insert adds value to the set. Re-inserting a value leaves the bit array
// unchanged.
func (f *Filter[T]) Insert(value T) {
	setSum(f.words, f.mBits, f.k, f.hash(value))
}

// InsertSum inserts by precomputed hash sum. Together with MatchesSum this
// is the transparent path: any representation that hashes identically to an
// element can be used without constructing the element, e.g. HashBytes of a
// []byte against a Filter[string] built on HashString.
func (f *Filter[T]) InsertSum(sum uint64) {
	setSum(f.words, f.mBits, f.k, sum)
}

// Matches reports whether value might be in the set. False positives are
// possible at roughly the configured rate; false negatives are not: a value
// inserted since the last Clear or resize always matches.
func (f *Filter[T]) Matches(value T) bool {
	return testSum(f.words, f.mBits, f.k, f.hash(value))
}

// MatchesSum is Matches for a precomputed hash sum.
func (f *Filter[T]) MatchesSum(sum uint64) bool {
	return testSum(f.words, f.mBits, f.k, sum)
}

// Clear removes every element. Parameters and capacity are unchanged.
func (f *Filter[T]) Clear() {
	clearWords(f.words)
}

// ClearAndResize re-derives (m, k) for n expected elements at target eps
// and zeroes the filter. All membership is discarded: this is equivalent to
// constructing a fresh filter, except the existing word buffer is reused
// when the new word count fits in it. On error the filter is untouched.
func (f *Filter[T]) ClearAndResize(n uint64, eps float64) error {
	m, k, err := Sizing(n, eps)
	if err != nil {
		return err
	}

	if need := Words(m); need <= cap(f.words) {
		f.words = f.words[:need]
		clearWords(f.words)
	} else {
		f.alloc.FreeWords(f.words)
		f.words = f.alloc.AllocWords(need)
	}
	f.mBits = m
	f.k = k
	return nil
}

// Clone returns a deep copy with independent bit storage, using the same
// hasher and allocator.
func (f *Filter[T]) Clone() *Filter[T] {
	words := f.alloc.AllocWords(len(f.words))
	copy(words, f.words)
	return &Filter[T]{
		words: words,
		mBits: f.mBits,
		k:     f.k,
		hash:  f.hash,
		alloc: f.alloc,
	}
}

// Swap exchanges the complete state of two filters, parameters, hasher and
// allocator included.
func (f *Filter[T]) Swap(other *Filter[T]) {
	*f, *other = *other, *f
}

// M returns the bit array length in bits.
func (f *Filter[T]) M() uint64 { return f.mBits }

// K returns the number of hash rounds per insert and query.
func (f *Filter[T]) K() uint8 { return f.k }
