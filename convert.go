package uint128

import (
	"encoding/binary"
	"math/big"

	bin "github.com/gagliardetto/binary"
	"github.com/shopspring/decimal"
)

// FromBigInt creates a Uint128 from a big.Int. Overflow truncates to Max and
// sets accurate to 'false'. Negative values produce Zero and set accurate to
// 'false'.
func FromBigInt(v *big.Int) (out Uint128, accurate bool) {
	if v.Sign() < 0 {
		return out, false
	}

	words := v.Bits()

	switch intSize {
	case 64:
		lw := len(words)
		switch lw {
		case 0:
			return Uint128{}, true
		case 1:
			return Uint128{lo: uint64(words[0])}, true
		case 2:
			return Uint128{hi: uint64(words[1]), lo: uint64(words[0])}, true
		default:
			return Max, false
		}

	case 32:
		lw := len(words)
		switch lw {
		case 0:
			return Uint128{}, true
		case 1:
			return Uint128{lo: uint64(words[0])}, true
		case 2:
			return Uint128{lo: (uint64(words[1]) << 32) | (uint64(words[0]))}, true
		case 3:
			return Uint128{hi: uint64(words[2]), lo: (uint64(words[1]) << 32) | (uint64(words[0]))}, true
		case 4:
			return Uint128{
				hi: (uint64(words[3]) << 32) | (uint64(words[2])),
				lo: (uint64(words[1]) << 32) | (uint64(words[0])),
			}, true
		default:
			return Max, false
		}

	default:
		panic("uint128: unsupported bit size")
	}
}

func (u Uint128) IntoBigInt(b *big.Int) {
	switch intSize {
	case 64:
		bits := b.Bits()
		ln := len(bits)
		if len(bits) < 2 {
			bits = append(bits, make([]big.Word, 2-ln)...)
		}
		bits = bits[:2]
		bits[0] = big.Word(u.lo)
		bits[1] = big.Word(u.hi)
		b.SetBits(bits)

	case 32:
		bits := b.Bits()
		ln := len(bits)
		if len(bits) < 4 {
			bits = append(bits, make([]big.Word, 4-ln)...)
		}
		bits = bits[:4]
		bits[0] = big.Word(u.lo & 0xFFFFFFFF)
		bits[1] = big.Word(u.lo >> 32)
		bits[2] = big.Word(u.hi & 0xFFFFFFFF)
		bits[3] = big.Word(u.hi >> 32)
		b.SetBits(bits)

	default:
		b.SetUint64(u.hi)
		b.Lsh(b, 64)
		var lo big.Int
		lo.SetUint64(u.lo)
		b.Add(b, &lo)
	}
}

func (u Uint128) AsBigInt() (b *big.Int) {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

// FromDecimal creates a Uint128 from the integer part of d. Negative values
// produce Zero, values too large produce Max; both set accurate to 'false',
// as does discarding a fractional part.
func FromDecimal(d decimal.Decimal) (out Uint128, accurate bool) {
	if d.Sign() < 0 {
		return out, false
	}
	out, accurate = FromBigInt(d.BigInt())
	return out, accurate && d.IsInteger()
}

func (u Uint128) AsDecimal() decimal.Decimal {
	return decimal.NewFromBigInt(u.AsBigInt(), 0)
}

// FromBin converts a Uint128 from github.com/gagliardetto/binary. The
// endianness carried by v only affects its own encoding and is ignored.
func FromBin(v bin.Uint128) Uint128 {
	return Uint128{hi: v.Hi, lo: v.Lo}
}

// AsBin converts u to a little-endian github.com/gagliardetto/binary Uint128,
// the layout Borsh uses.
func (u Uint128) AsBin() bin.Uint128 {
	return bin.Uint128{Lo: u.lo, Hi: u.hi, Endianness: binary.LittleEndian}
}
