package main

import (
	"fmt"
	"log"
	"math/big"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/shabbyrobe/go-uint128"
)

// This is a cheap-and-nasty tool for poking at the reciprocal used by
// Uint128 division. It normalizes a divisor the same way QuoRem does, prints
// the reciprocal alongside the exact value computed with math/big, then
// performs the division so the two can be eyeballed together.

const usage = `Reciprocal inspector

Usage: <dividend> <divisor>

Both arguments accept the same prefixes as uint128.Parse (0x, 0o, 0b).`

type inspection struct {
	Dividend   uint128.Uint128
	Divisor    uint128.Uint128
	Shift      uint
	Normalized uint128.Uint128
	Wide       bool
	Reciprocal uint64
	Expected   *big.Int
	Quotient   uint128.Uint128
	Remainder  uint128.Uint128
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if len(os.Args) < 3 {
		fmt.Println(usage)
		return fmt.Errorf("missing args")
	}

	dividend, _, err := uint128.FromString(os.Args[1])
	if err != nil {
		return err
	}

	divisor, _, err := uint128.FromString(os.Args[2])
	if err != nil {
		return err
	}
	if divisor.IsZero() {
		return fmt.Errorf("divisor must not be zero")
	}

	in := inspect(dividend, divisor)
	spew.Dump(in)

	if in.Expected.Cmp(new(big.Int).SetUint64(in.Reciprocal)) != 0 {
		return fmt.Errorf("reciprocal %#x does not match expected %#x", in.Reciprocal, in.Expected)
	}

	fmt.Printf("%d / %d == %d rem %d\n", dividend, divisor, in.Quotient, in.Remainder)
	fmt.Printf("recip:%#x shift:%d wide:%v\n", in.Reciprocal, in.Shift, in.Wide)
	return nil
}

func inspect(dividend, divisor uint128.Uint128) (in inspection) {
	in.Dividend, in.Divisor = dividend, divisor

	// Divisors that fit in the low limb are normalized within that limb and
	// use the 2-by-1 reciprocal; anything wider uses the 3-by-2 reciprocal of
	// the whole normalized divisor.
	var bits uint
	if divisor.IsUint64() {
		in.Shift = uint128.LeadingZeros64(divisor.Lo())
		in.Normalized = divisor.Lsh(in.Shift)
		in.Reciprocal = uint128.Reciprocal64(in.Normalized.Lo())
		bits = 128
	} else {
		in.Wide = true
		in.Shift = uint128.LeadingZeros64(divisor.Hi())
		in.Normalized = divisor.Lsh(in.Shift)
		in.Reciprocal = uint128.Reciprocal128(in.Normalized)
		bits = 192
	}

	// floor((2^bits - 1) / d) - 2^64
	d := in.Normalized.AsBigInt()
	exp := new(big.Int).Lsh(big.NewInt(1), bits)
	exp.Sub(exp, big.NewInt(1))
	exp.Quo(exp, d)
	exp.Sub(exp, new(big.Int).Lsh(big.NewInt(1), 64))
	in.Expected = exp

	in.Quotient, in.Remainder = dividend.QuoRem(divisor)
	return in
}
