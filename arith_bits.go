//go:build !purego
// +build !purego

package uint128

import "math/bits"

func add64(a, b, carry uint64) (sum, carryOut uint64)    { return bits.Add64(a, b, carry) }
func sub64(a, b, borrow uint64) (diff, borrowOut uint64) { return bits.Sub64(a, b, borrow) }
func mul64(a, b uint64) (hi, lo uint64)                  { return bits.Mul64(a, b) }

func leadingZeros8(x uint8) uint   { return uint(bits.LeadingZeros8(x)) }
func leadingZeros16(x uint16) uint { return uint(bits.LeadingZeros16(x)) }
func leadingZeros32(x uint32) uint { return uint(bits.LeadingZeros32(x)) }
func leadingZeros64(x uint64) uint { return uint(bits.LeadingZeros64(x)) }
