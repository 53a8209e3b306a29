package uint128

// This file contains the portable versions of the 64-bit primitives the rest
// of the package is built from. They are always compiled so they can be
// checked against math/bits, but are only wired in as add64, sub64 and mul64
// when building with the 'purego' tag (see arith_purego.go).

// addWithCarry returns a + b + carry. carry must be 0 or 1; carryOut is 1 if
// either of the two additions overflowed.
func addWithCarry(a, b, carry uint64) (sum, carryOut uint64) {
	partial := a + b
	sum = partial + carry
	if partial < a || sum < partial {
		carryOut = 1
	}
	return sum, carryOut
}

// subWithBorrow returns a - b - borrow. borrow must be 0 or 1; borrowOut is 1
// if either of the two subtractions underflowed.
func subWithBorrow(a, b, borrow uint64) (diff, borrowOut uint64) {
	partial := a - b
	diff = partial - borrow
	if partial > a || diff > partial {
		borrowOut = 1
	}
	return diff, borrowOut
}

// mulWide returns the full 128-bit product of a and b.
func mulWide(a, b uint64) (hi, lo uint64) {
	// break the multiplication into (a1 << 32 + a0)(b1 << 32 + b0)
	// which is a1*b1 << 64 + (a0*b1 + a1*b0) << 32 + a0*b0
	var (
		a0 = a & 0xffffffff
		a1 = a >> 32
		b0 = b & 0xffffffff
		b1 = b >> 32

		p00 = a0 * b0
		p10 = a1 * b0
		p01 = a0 * b1
		p11 = a1 * b1
	)

	// None of these can overflow: (2^32-1)^2 + 2*(2^32-1) == 2^64-1.
	mid := p10 + (p00 >> 32)
	cross := p01 + (mid & 0xffffffff)

	lo = (cross << 32) | (p00 & 0xffffffff)
	hi = p11 + (cross >> 32) + (mid >> 32)
	return hi, lo
}

// leadingZerosGeneric counts the leading zeros of x as a width-bit integer by
// repeatedly halving the search window. x must fit in width bits and width
// must be a power of two.
func leadingZerosGeneric(x uint64, width uint) uint {
	n := width
	for shift := width / 2; shift > 0; shift /= 2 {
		if upper := x >> shift; upper != 0 {
			n -= shift
			x = upper
		}
	}
	return n - uint(x)
}
