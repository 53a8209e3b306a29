/*
Package uint128 provides an unsigned 128-bit integer (Uint128) built from a
pair of 64-bit limbs.

Uint128 is a value type; all operations return new values. Arithmetic wraps
modulo 2^128 like Go's native unsigned integers. Division does not use
bit-at-a-time long division: divisors are normalized and divided by
multiplying with a 64-bit reciprocal, seeded from a small table and refined
with Newton iterations.

Simple example:

	u1 := uint128.From64(math.MaxUint64)
	u2 := uint128.From64(math.MaxUint64)
	fmt.Println(u1.Mul(u2))
	// Output: 340282366920938463426481119284349108225

Uint128 can be created from a variety of sources:

	New(hi, lo uint64) Uint128
	From64(v uint64) Uint128
	From32(v uint32) Uint128
	From16(v uint16) Uint128
	From8(v uint8) Uint128
	Parse(s string) Uint128
	ParseBytes(b []byte) Uint128
	FromString(s string) (out Uint128, accurate bool, err error)
	FromBigInt(v *big.Int) (out Uint128, accurate bool)
	FromDecimal(d decimal.Decimal) (out Uint128, accurate bool)
	FromBin(v bin.Uint128) Uint128

Parse accepts '0x', '0o' and '0b' prefixes for hex, octal and binary and
falls back to decimal. Malformed input produces Zero and input too large to
fit produces Max; use FromString if you need to tell these apart.

Uint128 supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler
	- bin.BinaryMarshaler (Borsh, github.com/gagliardetto/binary)
	- bin.BinaryUnmarshaler

The 64-bit primitives use math/bits by default. Build with the 'purego' tag
to use the portable implementations instead.
*/
package uint128
