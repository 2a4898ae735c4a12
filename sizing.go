package bloom

import "math"

// Sizing derives the filter parameters for n expected elements at false
// positive target eps:
//
//	m = ceil(n * -ln(eps) / ln(2)^2)   bits
//	k = round(-ln(eps) / ln(2))        hash rounds, at least 1
//
// eps must lie strictly between 0 and 1 and n must be non-zero. m grows
// monotonically as n grows or eps shrinks. k depends on eps alone and fits
// in 8 bits for any eps above 2^-255; ErrKRange reports the (absurd)
// targets below that.
func Sizing(n uint64, eps float64) (m uint64, k uint8, err error) {
	if n == 0 {
		return 0, 0, ErrBadN
	}
	// The negated comparison also rejects NaN.
	if !(eps > 0 && eps < 1) {
		return 0, 0, ErrBadEps
	}

	nlogEps := -math.Log(eps)

	m = uint64(math.Ceil(float64(n) * nlogEps / (math.Ln2 * math.Ln2)))
	kf := math.Round(nlogEps / math.Ln2)
	if kf < 1 {
		kf = 1
	}
	if kf > 255 {
		return 0, 0, ErrKRange
	}
	return m, uint8(kf), nil
}

// Words returns ceil(mBits/64), the number of uint64 words backing a filter
// of mBits bits. Useful for pre-sizing a BufferAllocator arena.
func Words(mBits uint64) int {
	return int((mBits + wordBits - 1) / wordBits)
}
