package bloom

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
)

// Hasher maps an element to a fixed-width unsigned integer. It must be pure
// and deterministic: equal elements always hash to equal sums and the sum
// must not depend on mutable external state.
type Hasher[T any] func(T) uint64

// HashString hashes a string with xxHash. It is the default Hasher for
// string elements.
func HashString(s string) uint64 { return xxhash.Sum64String(s) }

// HashBytes hashes raw bytes with xxHash. Sum-compatible with HashString:
// HashBytes(b) == HashString(string(b)), which makes it the transparent
// query companion for string filters (see InsertSum and MatchesSum).
func HashBytes(b []byte) uint64 { return xxhash.Sum64(b) }

// Murmur3String returns a murmur3-backed string Hasher with the given seed.
func Murmur3String(seed uint32) Hasher[string] {
	return func(s string) uint64 { return murmur3.Sum64WithSeed([]byte(s), seed) }
}

// Murmur3Bytes returns a murmur3-backed []byte Hasher with the given seed.
func Murmur3Bytes(seed uint32) Hasher[[]byte] {
	return func(b []byte) uint64 { return murmur3.Sum64WithSeed(b, seed) }
}

// hashSeed is fixed per process so that all filters of a given element type
// agree on sums. Filters are never persisted, so cross-process stability is
// not needed.
var hashSeed = maphash.MakeSeed()

// defaultHasher picks the hash for New and NewStatic when no WithHasher
// option is given. string elements use HashString so that sum-level queries
// interoperate with HashBytes; every other comparable type uses the
// runtime's generic hash.
func defaultHasher[T comparable]() Hasher[T] {
	var zero T
	if _, ok := any(zero).(string); ok {
		return func(v T) uint64 { return xxhash.Sum64String(any(v).(string)) }
	}
	return func(v T) uint64 { return maphash.Comparable(hashSeed, v) }
}
