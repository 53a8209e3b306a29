package uint128

type RandSource interface {
	Uint64() uint64
}

// Rand generates an unsigned 128-bit random integer from an external source.
func Rand(source RandSource) (out Uint128) {
	return Uint128{hi: source.Uint64(), lo: source.Uint64()}
}

// Difference subtracts the smaller of a and b from the larger.
func Difference(a, b Uint128) Uint128 {
	if a.LessThan(b) {
		return b.Sub(a)
	}
	return a.Sub(b)
}

func Larger(a, b Uint128) Uint128 {
	if b.GreaterThan(a) {
		return b
	}
	return a
}

func Smaller(a, b Uint128) Uint128 {
	if b.LessThan(a) {
		return b
	}
	return a
}
