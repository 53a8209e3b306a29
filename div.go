package uint128

// Division by invariant integers using a precomputed reciprocal, after
// Möller and Granlund, "Improved division by invariant integers" (IEEE
// Transactions on Computers, 2011). A normalized divisor d (top bit set) has
// a reciprocal v = floor((2^128 - 1) / d) - 2^64, which turns each 2-by-1 or
// 3-by-2 limb division step into a couple of multiplications plus at most two
// correction steps.

// Reciprocal64 returns the reciprocal floor((2^128-1)/d) - 2^64 of d. d must
// be normalized (its most significant bit set); Reciprocal64 panics
// otherwise.
func Reciprocal64(d uint64) uint64 {
	if d>>63 == 0 {
		panic("uint128: reciprocal of unnormalized divisor")
	}
	return reciprocal64(d)
}

// Reciprocal128 returns the reciprocal floor((2^192-1)/d) - 2^64 of d, for
// use with 3-by-2 limb division. d must be normalized (its most significant
// bit set); Reciprocal128 panics otherwise.
func Reciprocal128(d Uint128) uint64 {
	if d.hi>>63 == 0 {
		panic("uint128: reciprocal of unnormalized divisor")
	}
	return reciprocal128(d.hi, d.lo)
}

func reciprocal64(d uint64) uint64 {
	var (
		d0  = d & 1
		d9  = d >> 55       // top 9 bits, in [256, 511]
		d40 = (d >> 24) + 1 // top 40 bits, rounded up
		d63 = (d >> 1) + d0 // top 63 bits, rounded up
		v0  = uint64(reciprocalTable[d9-256])
	)

	// Each step roughly doubles the number of correct bits: 11, 21, 32, 64.
	v1 := (v0 << 11) - uint64(uint32((v0*v0*d40)>>40)) - 1
	v2 := (v1 << 13) + ((v1 * ((1 << 60) - v1*d40)) >> 47)

	e := ((v2 >> 1) & -d0) - v2*d63
	eh, _ := mul64(v2, e)
	v3 := (eh >> 1) + (v2 << 31)

	// v3 may be one short of the true reciprocal; subtracting the high limb
	// of (2^64 + 1 + v3) * d lands on it exactly.
	ph, pl := mul64(v3, d)
	_, carry := add64(pl, d, 0)
	return v3 - (ph + carry) - d
}

func reciprocal128(d1, d0 uint64) uint64 {
	v := reciprocal64(d1)

	p := d1*v + d0
	if p < d0 {
		v--
		if p >= d1 {
			v--
			p -= d1
		}
		p -= d1
	}

	t1, t0 := mul64(v, d0)
	p += t1
	if p < t1 {
		v--
		if p > d1 || (p == d1 && t0 >= d0) {
			v--
		}
	}
	return v
}

// divRem2by1 divides the two-limb value (u1, u0) by the normalized divisor d
// using its reciprocal v. u1 must be less than d.
func divRem2by1(u1, u0, d, v uint64) (q, r uint64) {
	qh, ql := mul64(v, u1)
	var carry uint64
	ql, carry = add64(ql, u0, 0)
	qh, _ = add64(qh, u1, carry)
	qh++

	r = u0 - qh*d
	if r > ql {
		qh--
		r += d
	}
	if r >= d {
		qh++
		r -= d
	}
	return qh, r
}

// divRem3by2 divides the three-limb value (u2, u1, u0) by the normalized
// two-limb divisor (d1, d0) using its reciprocal v. (u2, u1) must be less
// than (d1, d0), so the quotient fits in a single limb.
func divRem3by2(u2, u1, u0, d1, d0, v uint64) (q uint64, r Uint128) {
	qh, ql := mul64(v, u2)
	var carry uint64
	ql, carry = add64(ql, u1, 0)
	qh, _ = add64(qh, u2, carry)

	d := Uint128{hi: d1, lo: d0}
	r1 := u1 - qh*d1
	t1, t0 := mul64(d0, qh)
	r = Uint128{hi: r1, lo: u0}.Sub(Uint128{hi: t1, lo: t0}).Sub(d)
	qh++

	if r.hi >= ql {
		qh--
		r = r.Add(d)
	}
	if r.GreaterOrEqualTo(d) {
		qh++
		r = r.Sub(d)
	}
	return qh, r
}

// Quo returns the quotient u/by for by != 0. If by == 0, a division-by-zero
// run-time panic occurs. Quo implements truncated division (like Go); see
// QuoRem for more details.
func (u Uint128) Quo(by Uint128) (q Uint128) {
	q, _ = u.QuoRem(by)
	return q
}

// Rem returns the remainder of u%by for by != 0. If by == 0, a
// division-by-zero run-time panic occurs.
func (u Uint128) Rem(by Uint128) (r Uint128) {
	_, r = u.QuoRem(by)
	return r
}

// QuoRem returns the quotient q and remainder r for by != 0. If by == 0, a
// division-by-zero run-time panic occurs.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = u/by      with the result truncated to zero
//	r = u - by*q
//
// The result always satisfies q*by + r == u and r < by.
func (u Uint128) QuoRem(by Uint128) (q, r Uint128) {
	if by.hi == 0 {
		var r64 uint64
		q, r64 = u.QuoRem64(by.lo)
		return q, Uint128{lo: r64}
	}

	if by.hi > u.hi {
		return q, u // it's 100% remainder
	}

	s := leadingZeros64(by.hi)
	if s == 0 {
		// The divisor already fills both limbs, so the quotient is 0 or 1.
		if by.LessOrEqualTo(u) {
			return Uint128{lo: 1}, u.Sub(by)
		}
		return q, u
	}

	// Normalize: shift the divisor until its top bit is set and spread the
	// dividend across three limbs by the same amount. 0 < s < 64 here.
	var (
		d1 = (by.hi << s) | (by.lo >> (64 - s))
		d0 = by.lo << s
		u2 = u.hi >> (64 - s)
		u1 = (u.hi << s) | (u.lo >> (64 - s))
		u0 = u.lo << s
	)

	q.lo, r = divRem3by2(u2, u1, u0, d1, d0, reciprocal128(d1, d0))
	return q, r.Rsh(s)
}

// Quo64 returns the quotient u/by for by != 0. If by == 0, a
// division-by-zero run-time panic occurs.
func (u Uint128) Quo64(by uint64) (q Uint128) {
	q, _ = u.QuoRem64(by)
	return q
}

// Rem64 returns the remainder u%by for by != 0. If by == 0, a
// division-by-zero run-time panic occurs.
func (u Uint128) Rem64(by uint64) (r uint64) {
	_, r = u.QuoRem64(by)
	return r
}

// QuoRem64 returns the quotient and remainder of u divided by a 64-bit
// divisor. If by == 0, a division-by-zero run-time panic occurs.
func (u Uint128) QuoRem64(by uint64) (q Uint128, r uint64) {
	if by == 0 {
		panic("uint128: division by zero")
	}

	s := leadingZeros64(by)
	d := by << s

	// The shifted dividend spans up to three limbs; u2 < 2^s <= d, so the
	// first step's precondition holds.
	var u2, u1, u0 uint64
	if s == 0 {
		u1, u0 = u.hi, u.lo
	} else {
		u2 = u.hi >> (64 - s)
		u1 = (u.hi << s) | (u.lo >> (64 - s))
		u0 = u.lo << s
	}

	v := reciprocal64(d)
	q.hi, r = divRem2by1(u2, u1, d, v)
	q.lo, r = divRem2by1(r, u0, d, v)
	return q, r >> s
}
