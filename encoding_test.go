package uint128

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"testing"

	bin "github.com/gagliardetto/binary"
	"github.com/shabbyrobe/golib/assert"
	"github.com/shopspring/decimal"
)

func TestMarshalText(t *testing.T) {
	tt := assert.WrapTB(t)
	for _, u := range []Uint128{Zero, u64(1), New(1, 0), Max} {
		bts, err := u.MarshalText()
		tt.MustOK(err)
		tt.MustEqual(u.String(), string(bts))

		var v Uint128
		tt.MustOK(v.UnmarshalText(bts))
		tt.MustEqual(u, v)
	}
}

func TestUnmarshalTextFails(t *testing.T) {
	for idx, in := range []string{
		"",
		"abc",
		"0x   0123",
		"340282366920938463463374607431768211456",
		"0x100000000000000000000000000000000",
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, in), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v := u64(1234)
			tt.MustAssert(v.UnmarshalText([]byte(in)) != nil)
			tt.MustEqual(u64(1234), v)
		})
	}
}

func TestMarshalJSON(t *testing.T) {
	tt := assert.WrapTB(t)

	bts, err := json.Marshal(Max)
	tt.MustOK(err)
	tt.MustEqual(`"`+maxDecimalString+`"`, string(bts))

	type wrapper struct {
		Amount Uint128 `json:"amount"`
	}
	bts, err = json.Marshal(wrapper{Amount: New(1, 0)})
	tt.MustOK(err)
	tt.MustEqual(`{"amount":"18446744073709551616"}`, string(bts))

	var w wrapper
	tt.MustOK(json.Unmarshal(bts, &w))
	tt.MustEqual(New(1, 0), w.Amount)
}

func TestUnmarshalJSON(t *testing.T) {
	for idx, tc := range []struct {
		in  string
		out Uint128
		err bool
	}{
		{`"123"`, u64(123), false},
		{`123`, u64(123), false},
		{`"0x10"`, u64(16), false},
		{`"` + maxDecimalString + `"`, Max, false},
		{maxDecimalString, Max, false},

		{`""`, Zero, true},
		{`null`, Zero, true},
		{`true`, Zero, true},
		{`{}`, Zero, true},
		{`"abc"`, Zero, true},
		{`-1`, Zero, true},
		{`1.5`, Zero, true},
		{`1e3`, Zero, true},
		{`"340282366920938463463374607431768211456"`, Zero, true},
		{`340282366920938463463374607431768211456`, Zero, true},
		{`"123`, Zero, true},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.in), func(t *testing.T) {
			tt := assert.WrapTB(t)
			var v Uint128
			err := v.UnmarshalJSON([]byte(tc.in))
			if tc.err {
				tt.MustAssert(err != nil, "expected error for %s, found %s", tc.in, v)
				tt.MustEqual(Zero, v)
			} else {
				tt.MustOK(err)
				tt.MustEqual(tc.out, v)
			}
		})
	}
}

func TestJSONRoundTrip(t *testing.T) {
	tt := assert.WrapTB(t)
	for i := 0; i < 1000; i++ {
		u := randU128()
		bts, err := json.Marshal(u)
		tt.MustOK(err)

		var v Uint128
		tt.MustOK(json.Unmarshal(bts, &v))
		tt.MustEqual(u, v)
	}
}

func TestBorshLayout(t *testing.T) {
	tt := assert.WrapTB(t)

	u := New(0x0102030405060708, 0x1112131415161718)

	var buf bytes.Buffer
	tt.MustOK(u.MarshalWithEncoder(bin.NewBorshEncoder(&buf)))
	tt.MustEqual([]byte{
		0x18, 0x17, 0x16, 0x15, 0x14, 0x13, 0x12, 0x11,
		0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01,
	}, buf.Bytes())

	var v Uint128
	tt.MustOK(v.UnmarshalWithDecoder(bin.NewBorshDecoder(buf.Bytes())))
	tt.MustEqual(u, v)
}

func TestBorshRoundTrip(t *testing.T) {
	tt := assert.WrapTB(t)

	var buf bytes.Buffer
	enc := bin.NewBorshEncoder(&buf)

	in := make([]Uint128, 100)
	for i := range in {
		in[i] = randU128()
		tt.MustOK(in[i].MarshalWithEncoder(enc))
	}
	tt.MustEqual(len(in)*16, buf.Len())

	dec := bin.NewBorshDecoder(buf.Bytes())
	for i := range in {
		var v Uint128
		tt.MustOK(v.UnmarshalWithDecoder(dec))
		tt.MustEqual(in[i], v)
	}
}

func TestBorshShortInput(t *testing.T) {
	tt := assert.WrapTB(t)
	v := u64(99)
	err := v.UnmarshalWithDecoder(bin.NewBorshDecoder([]byte{1, 2, 3}))
	tt.MustAssert(err != nil)
	tt.MustEqual(u64(99), v)
}

func TestBinBridge(t *testing.T) {
	tt := assert.WrapTB(t)

	u := New(0xDEADBEEFCAFEBABE, 0xD00DDEEDBADDADEE)
	b := u.AsBin()
	tt.MustEqual(uint64(0xDEADBEEFCAFEBABE), b.Hi)
	tt.MustEqual(uint64(0xD00DDEEDBADDADEE), b.Lo)
	tt.MustEqual(binary.ByteOrder(binary.LittleEndian), b.Endianness)
	tt.MustEqual(u, FromBin(b))

	tt.MustEqual(u, FromBin(bin.Uint128{Hi: u.hi, Lo: u.lo, Endianness: binary.BigEndian}))
}

func TestDecimalBridge(t *testing.T) {
	for idx, tc := range []struct {
		in       string
		out      Uint128
		accurate bool
	}{
		{"0", Zero, true},
		{"12345", u64(12345), true},
		{"18446744073709551616", New(1, 0), true},
		{maxDecimalString, Max, true},
		{"1.5", u64(1), false},
		{"0.999", Zero, false},
		{"-1", Zero, false},
		{"340282366920938463463374607431768211456", Max, false},
		{"1e40", Max, false},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.in), func(t *testing.T) {
			tt := assert.WrapTB(t)
			out, accurate := FromDecimal(decimal.RequireFromString(tc.in))
			tt.MustEqual(tc.out, out)
			tt.MustEqual(tc.accurate, accurate)
		})
	}

	tt := assert.WrapTB(t)
	for i := 0; i < 1000; i++ {
		u := randU128()
		d := u.AsDecimal()
		tt.MustEqual(u.String(), d.String())

		back, accurate := FromDecimal(d)
		tt.MustAssert(accurate)
		tt.MustEqual(u, back)
	}
}
