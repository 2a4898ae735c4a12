package bloom

// Option configures a filter constructor.
type Option[T any] func(*config[T])

type config[T any] struct {
	eps   float64
	hash  Hasher[T]
	alloc Allocator
}

func newConfig[T any](opts []Option[T]) config[T] {
	cfg := config[T]{eps: DefaultEps, alloc: heapAllocator{}}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithFalsePositiveRate overrides DefaultEps. Only New consults it; Static
// capacity is chosen directly by the caller.
func WithFalsePositiveRate[T any](eps float64) Option[T] {
	return func(c *config[T]) { c.eps = eps }
}

// WithHasher replaces the default hash capability.
func WithHasher[T any](h Hasher[T]) Option[T] {
	return func(c *config[T]) { c.hash = h }
}

// WithAllocator replaces the heap allocator backing the bit array.
func WithAllocator[T any](a Allocator) Option[T] {
	return func(c *config[T]) { c.alloc = a }
}
