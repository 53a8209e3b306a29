package uint128

// LeadingZeros8 returns the number of leading zero bits in x; the result is 8
// for x == 0.
func LeadingZeros8(x uint8) uint { return leadingZeros8(x) }

// LeadingZeros16 returns the number of leading zero bits in x; the result is
// 16 for x == 0.
func LeadingZeros16(x uint16) uint { return leadingZeros16(x) }

// LeadingZeros32 returns the number of leading zero bits in x; the result is
// 32 for x == 0.
func LeadingZeros32(x uint32) uint { return leadingZeros32(x) }

// LeadingZeros64 returns the number of leading zero bits in x; the result is
// 64 for x == 0.
func LeadingZeros64(x uint64) uint { return leadingZeros64(x) }
