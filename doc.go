package bloom

/*

# Bloom filters for approximate set membership

This package provides two Bloom filter variants over a packed uint64 bit
array:

  - Filter: sized at construction from an expected element count and a target
    false positive rate, k probes per element, resizable (resizing discards
    all membership).
  - Static: a fixed bit capacity chosen by the caller, one probe per element,
    never resized.

## What Bloom filters are (and are not)

Bloom filters provide a *probabilistic prefilter*:

- If the filter says "definitely not present", the element is not present.
- If the filter says "maybe present", the element may or may not be present
  (false positives are possible).

No element is ever stored; only hashed bit positions survive an Insert.
Individual elements cannot be removed, only the whole filter cleared. The
false positive target assumes reasonably distributed hash output and does
not hold under adversarial element choice.

## Indexing

Filter derives its k bit positions from a single 64-bit element hash using
enhanced double hashing: the low half of the sum is the step, the high half
the starting position, and round i advances the position by i*step before
reducing modulo the bit length. Static reduces the whole sum modulo its
capacity, with a mask fast path when the capacity is a power of two.

## Hashing and transparent queries

Hashing is a capability: any pure, deterministic func(T) uint64 works.
xxHash-backed hashers for string and []byte and seeded murmur3 hashers are
provided; arbitrary comparable element types fall back to the runtime's
generic hash. Because probes depend only on the 64-bit sum, InsertSum and
MatchesSum accept a precomputed sum, so a Filter[string] built on HashString
can be queried with HashBytes of a []byte without constructing the string.

## Allocation

Bit arrays are obtained through an Allocator. The default allocates on the
heap; BufferAllocator places filters inside a caller-provided word buffer so
they can live in arena or stack memory.

## Concurrency

No internal synchronization. Concurrent Matches calls on a filter that is
not being mutated are safe; Insert, Clear, ClearAndResize and Swap require
external synchronization. Every operation completes in O(k) or O(m/64) time
with no I/O.

*/
