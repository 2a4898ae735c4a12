package bloom

// Bit store over uint64 words, LSB0: bit 0 of the vector is the least
// significant bit of word 0. Callers reduce every index modulo the filter's
// bit length before calling, so bounds are assumed here rather than checked
// per probe.

func setBit(words []uint64, index uint64) {
	words[index>>6] |= 1 << (index & 63)
}

func testBit(words []uint64, index uint64) bool {
	return words[index>>6]&(1<<(index&63)) != 0
}

func clearWords(words []uint64) {
	clear(words)
}
