package uint128

type Uint128 struct {
	hi, lo uint64
}

func New(hi, lo uint64) Uint128  { return Uint128{hi: hi, lo: lo} }
func From64(v uint64) Uint128    { return Uint128{lo: v} }
func From32(v uint32) Uint128    { return Uint128{lo: uint64(v)} }
func From16(v uint16) Uint128    { return Uint128{lo: uint64(v)} }
func From8(v uint8) Uint128      { return Uint128{lo: uint64(v)} }
func (u Uint128) Hi() uint64     { return u.hi }
func (u Uint128) Lo() uint64     { return u.lo }
func (u Uint128) IsZero() bool   { return u == Zero }
func (u Uint128) IsUint64() bool { return u.hi == 0 }

// Raw returns access to the Uint128 as a pair of uint64s. See New() for the
// counterpart.
func (u Uint128) Raw() (hi, lo uint64) { return u.hi, u.lo }

// AsUint64 truncates the Uint128 to fit in a uint64. See IsUint64() if you
// want to check before you convert.
func (u Uint128) AsUint64() uint64 { return u.lo }

func (u Uint128) Inc() (v Uint128) {
	var carry uint64
	v.lo, carry = add64(u.lo, 1, 0)
	v.hi = u.hi + carry
	return v
}

func (u Uint128) Dec() (v Uint128) {
	var borrow uint64
	v.lo, borrow = sub64(u.lo, 1, 0)
	v.hi = u.hi - borrow
	return v
}

func (u Uint128) Add(n Uint128) (v Uint128) {
	var carry uint64
	v.lo, carry = add64(u.lo, n.lo, 0)
	v.hi, _ = add64(u.hi, n.hi, carry)
	return v
}

func (u Uint128) Add64(n uint64) (v Uint128) {
	var carry uint64
	v.lo, carry = add64(u.lo, n, 0)
	v.hi = u.hi + carry
	return v
}

func (u Uint128) Sub(n Uint128) (v Uint128) {
	var borrow uint64
	v.lo, borrow = sub64(u.lo, n.lo, 0)
	v.hi, _ = sub64(u.hi, n.hi, borrow)
	return v
}

func (u Uint128) Sub64(n uint64) (v Uint128) {
	var borrow uint64
	v.lo, borrow = sub64(u.lo, n, 0)
	v.hi = u.hi - borrow
	return v
}

func (u Uint128) Cmp(n Uint128) int {
	if u.hi > n.hi {
		return 1
	} else if u.hi < n.hi {
		return -1
	} else if u.lo > n.lo {
		return 1
	} else if u.lo < n.lo {
		return -1
	}
	return 0
}

func (u Uint128) Cmp64(n uint64) int {
	if u.hi > 0 || u.lo > n {
		return 1
	} else if u.lo < n {
		return -1
	}
	return 0
}

func (u Uint128) Equal(n Uint128) bool {
	return u.hi == n.hi && u.lo == n.lo
}

func (u Uint128) Equal64(n uint64) bool {
	return u.hi == 0 && u.lo == n
}

func (u Uint128) GreaterThan(n Uint128) bool {
	return u.hi > n.hi || (u.hi == n.hi && u.lo > n.lo)
}

func (u Uint128) GreaterOrEqualTo(n Uint128) bool {
	return !u.LessThan(n)
}

func (u Uint128) LessThan(n Uint128) bool {
	return u.hi < n.hi || (u.hi == n.hi && u.lo < n.lo)
}

func (u Uint128) LessOrEqualTo(n Uint128) bool {
	return !n.LessThan(u)
}

func (u Uint128) And(v Uint128) (out Uint128) {
	out.hi = u.hi & v.hi
	out.lo = u.lo & v.lo
	return out
}

func (u Uint128) And64(v uint64) (out Uint128) {
	out.lo = u.lo & v
	return out
}

// AndNot returns the bit clear u &^ v.
func (u Uint128) AndNot(v Uint128) (out Uint128) {
	out.hi = u.hi &^ v.hi
	out.lo = u.lo &^ v.lo
	return out
}

func (u Uint128) Not() (out Uint128) {
	out.hi = ^u.hi
	out.lo = ^u.lo
	return out
}

func (u Uint128) Or(v Uint128) (out Uint128) {
	out.hi = u.hi | v.hi
	out.lo = u.lo | v.lo
	return out
}

func (u Uint128) Or64(v uint64) (out Uint128) {
	out.hi = u.hi
	out.lo = u.lo | v
	return out
}

func (u Uint128) Xor(v Uint128) (out Uint128) {
	out.hi = u.hi ^ v.hi
	out.lo = u.lo ^ v.lo
	return out
}

func (u Uint128) Xor64(v uint64) (out Uint128) {
	out.hi = u.hi
	out.lo = u.lo ^ v
	return out
}

// Lsh returns u << n. Shifting by 128 or more bits yields Zero.
func (u Uint128) Lsh(n uint) (v Uint128) {
	if n < 64 {
		// u.lo >> 64 is 0 in Go, so n == 0 needs no special case.
		v.hi = (u.hi << n) | (u.lo >> (64 - n))
		v.lo = u.lo << n
	} else if n < 128 {
		v.hi = u.lo << (n - 64)
	}
	return v
}

// Rsh returns u >> n. Shifting by 128 or more bits yields Zero.
func (u Uint128) Rsh(n uint) (v Uint128) {
	if n < 64 {
		v.lo = (u.lo >> n) | (u.hi << (64 - n))
		v.hi = u.hi >> n
	} else if n < 128 {
		v.lo = u.hi >> (n - 64)
	}
	return v
}

// Mul returns u * n, truncated to 128 bits.
func (u Uint128) Mul(n Uint128) (dest Uint128) {
	// Only the low 64 bits of the cross products survive; hi*hi lies
	// entirely above bit 128.
	dest.hi, dest.lo = mul64(u.lo, n.lo)
	dest.hi += u.lo*n.hi + u.hi*n.lo
	return dest
}

// Mul64 returns u * n, truncated to 128 bits.
func (u Uint128) Mul64(n uint64) (dest Uint128) {
	dest.hi, dest.lo = mul64(u.lo, n)
	dest.hi += u.hi * n
	return dest
}

func (u Uint128) LeadingZeros() uint {
	if u.hi == 0 {
		return leadingZeros64(u.lo) + 64
	}
	return leadingZeros64(u.hi)
}

func (u Uint128) TrailingZeros() uint {
	if u.lo == 0 {
		return trailingZeros64(u.hi) + 64
	}
	return trailingZeros64(u.lo)
}

// BitLen returns the length of the absolute value of u in bits. The bit
// length of 0 is 0.
func (u Uint128) BitLen() int {
	return 128 - int(u.LeadingZeros())
}

func trailingZeros64(x uint64) uint {
	if x == 0 {
		return 64
	}
	// x & -x isolates the lowest set bit.
	return 63 - leadingZeros64(x&-x)
}
