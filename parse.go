package uint128

import "fmt"

type parseStatus int

const (
	parseOK parseStatus = iota
	parseInvalid
	parseOverflow
)

// digitScanner yields the digit values of a number string one at a time. The
// zero value is an exhausted scanner. Scanners are plain values, so a copy
// taken before scanning can be used to start again from the same point.
type digitScanner struct {
	s    string
	pos  int
	base uint64

	// bits is the number of bits per digit for power-of-two bases; it is 0
	// for decimal.
	bits uint

	// maxDigits is the most significant digits a value of this base can
	// have before it can no longer fit in 128 bits.
	maxDigits int
}

// newDigitScanner inspects the prefix of s to pick a base, then skips any
// leading zeros.
func newDigitScanner(s string) digitScanner {
	sc := digitScanner{s: s, base: 10, maxDigits: maxDecimalDigits}

	if len(s) > 2 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X':
			sc.base, sc.bits, sc.pos = 16, 4, 2
		case 'o', 'O':
			sc.base, sc.bits, sc.pos = 8, 3, 2
		case 'b', 'B':
			sc.base, sc.bits, sc.pos = 2, 1, 2
		}
	}
	if sc.bits > 0 {
		sc.maxDigits = int((128 + sc.bits - 1) / sc.bits)
	}

	for sc.pos < len(sc.s) && sc.s[sc.pos] == '0' {
		sc.pos++
	}
	return sc
}

func (sc *digitScanner) done() bool { return sc.pos >= len(sc.s) }

// next consumes one character and returns its digit value. ok is false if
// the character is not a valid digit in the scanner's base.
func (sc *digitScanner) next() (digit uint64, ok bool) {
	c := sc.s[sc.pos]
	sc.pos++

	switch {
	case c >= '0' && c <= '9':
		digit = uint64(c - '0')
	case c >= 'a' && c <= 'f':
		digit = uint64(c-'a') + 10
	case c >= 'A' && c <= 'F':
		digit = uint64(c-'A') + 10
	default:
		return 0, false
	}
	return digit, digit < sc.base
}

// scan accumulates the digits produced by sc. Exceeding the digit budget is
// reported before the offending character is validated, so anything after
// that point is never looked at.
func scan(sc digitScanner) (out Uint128, status parseStatus) {
	for n := 0; !sc.done(); n++ {
		if n >= sc.maxDigits {
			return Max, parseOverflow
		}

		digit, ok := sc.next()
		if !ok {
			return Zero, parseInvalid
		}

		if sc.bits > 0 {
			// Only octal can get here with bits still to lose: 43 digits
			// is 129 bits.
			if out.hi>>(64-sc.bits) != 0 {
				return Max, parseOverflow
			}
			out = out.Lsh(sc.bits).Or64(digit)
			continue
		}

		out = out.Mul64(10).Add64(digit)

		// 2^64 % 10 == 6, so this is out % 10. It only disagrees with the
		// digit we just added if the multiply wrapped; the digit budget
		// keeps the wrap small enough that it always shows up here.
		if (out.lo%10+(out.hi%10)*6)%10 != digit {
			return Max, parseOverflow
		}
	}
	return out, parseOK
}

// Parse creates a Uint128 from a string. A '0x', '0o' or '0b' prefix (or
// their upper case versions) selects hex, octal or binary, otherwise the
// string is treated as decimal. Any number of leading zeros is allowed.
//
// Parse never fails: input containing a character that is not a valid digit
// yields Zero, and a value too large to fit saturates to Max. Use FromString
// to distinguish these from genuine results.
func Parse(s string) Uint128 {
	if s == "" {
		return Zero
	}
	out, _ := scan(newDigitScanner(s))
	return out
}

// ParseBytes is like Parse, but accepts a byte slice. A nil or empty slice
// yields Zero.
func ParseBytes(b []byte) Uint128 {
	if len(b) == 0 {
		return Zero
	}
	return Parse(string(b))
}

// FromString creates a Uint128 from a string using the same rules as Parse.
// Overflow truncates to Max and sets accurate to 'false'. Empty or malformed
// input is an error.
func FromString(s string) (out Uint128, accurate bool, err error) {
	if s == "" {
		return out, false, fmt.Errorf("uint128: empty string")
	}

	out, status := scan(newDigitScanner(s))
	switch status {
	case parseInvalid:
		return Zero, false, fmt.Errorf("uint128: string %q invalid", s)
	case parseOverflow:
		return Max, false, nil
	}
	return out, true, nil
}
