package uint128

const (
	maxUint64 = 1<<64 - 1

	// maxDecimalDigits is the number of decimal digits in Max.
	maxDecimalDigits = 39

	intSize = 32 << (^uint(0) >> 63)
)

var (
	Zero Uint128
	Max  = Uint128{hi: maxUint64, lo: maxUint64}
)
