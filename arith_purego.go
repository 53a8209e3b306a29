//go:build purego
// +build purego

package uint128

func add64(a, b, carry uint64) (sum, carryOut uint64)    { return addWithCarry(a, b, carry) }
func sub64(a, b, borrow uint64) (diff, borrowOut uint64) { return subWithBorrow(a, b, borrow) }
func mul64(a, b uint64) (hi, lo uint64)                  { return mulWide(a, b) }

func leadingZeros8(x uint8) uint   { return leadingZerosGeneric(uint64(x), 8) }
func leadingZeros16(x uint16) uint { return leadingZerosGeneric(uint64(x), 16) }
func leadingZeros32(x uint32) uint { return leadingZerosGeneric(uint64(x), 32) }
func leadingZeros64(x uint64) uint { return leadingZerosGeneric(x, 64) }
