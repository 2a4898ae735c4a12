package bloom

// Allocator supplies the word storage backing a filter's bit array. The
// default allocates on the heap; BufferAllocator serves filters out of a
// caller-owned buffer for arena or stack placement.
type Allocator interface {
	// AllocWords returns a zeroed slice of n words.
	AllocWords(n int) []uint64
	// FreeWords releases a slice previously returned by AllocWords.
	FreeWords(words []uint64)
}

type heapAllocator struct{}

func (heapAllocator) AllocWords(n int) []uint64 { return make([]uint64, n) }

func (heapAllocator) FreeWords([]uint64) {}

// BufferAllocator hands out a single pre-sized word buffer. A request is
// served from the buffer when it fits and the buffer is free; otherwise it
// falls back to the heap, so allocation never fails. FreeWords re-arms the
// buffer when given the slice it handed out.
//
// Not safe for concurrent use, matching the filters it backs.
type BufferAllocator struct {
	buf   []uint64
	inUse bool
}

// NewBufferAllocator wraps buf, which the caller must keep alive for as
// long as any filter allocated from it.
func NewBufferAllocator(buf []uint64) *BufferAllocator {
	return &BufferAllocator{buf: buf}
}

func (a *BufferAllocator) AllocWords(n int) []uint64 {
	if a.inUse || n > len(a.buf) {
		return make([]uint64, n)
	}
	a.inUse = true
	words := a.buf[:n]
	clearWords(words)
	return words
}

func (a *BufferAllocator) FreeWords(words []uint64) {
	if len(words) > 0 && len(a.buf) > 0 && &words[0] == &a.buf[0] {
		a.inUse = false
	}
}
