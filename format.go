package uint128

import (
	"fmt"
	"strconv"
	"strings"
)

// chunkDivisors holds, per supported base, the largest power of the base that
// fits in a uint64 and the number of digits it represents. Values are
// formatted by repeatedly dividing off a chunk of that many digits.
var chunkDivisors = map[int]struct {
	div    uint64
	digits int
}{
	2:  {1 << 63, 63},
	8:  {1 << 63, 21},
	10: {10000000000000000000, 19},
	16: {1 << 60, 15},
}

func (u Uint128) String() string {
	if u.hi == 0 {
		return strconv.FormatUint(u.lo, 10)
	}
	return u.format(10)
}

// format renders u in base, which must be a key of chunkDivisors.
func (u Uint128) format(base int) string {
	if u.hi == 0 {
		return strconv.FormatUint(u.lo, base)
	}

	chunk := chunkDivisors[base]

	// At most 128 binary digits, so three chunks covers every base.
	var parts [3]uint64
	n := 0
	for !u.IsZero() {
		u, parts[n] = u.QuoRem64(chunk.div)
		n++
	}

	var sb strings.Builder
	sb.WriteString(strconv.FormatUint(parts[n-1], base))
	for i := n - 2; i >= 0; i-- {
		s := strconv.FormatUint(parts[i], base)
		sb.WriteString(strings.Repeat("0", chunk.digits-len(s)))
		sb.WriteString(s)
	}
	return sb.String()
}

// Format implements fmt.Formatter. It supports the verbs 'b', 'o', 'O', 'd',
// 'x', 'X', 's' and 'v', the '#' flag for base prefixes, and width with
// either '-' or '0' padding.
func (u Uint128) Format(s fmt.State, c rune) {
	var base int
	var prefix string

	switch c {
	case 'b':
		base = 2
		if s.Flag('#') {
			prefix = "0b"
		}
	case 'o':
		base = 8
		if s.Flag('#') {
			prefix = "0"
		}
	case 'O':
		base, prefix = 8, "0o"
	case 'd', 's', 'v':
		base = 10
	case 'x':
		base = 16
		if s.Flag('#') {
			prefix = "0x"
		}
	case 'X':
		base = 16
		if s.Flag('#') {
			prefix = "0X"
		}
	default:
		fmt.Fprintf(s, "%%!%c(uint128.Uint128=%s)", c, u.String())
		return
	}

	digits := u.format(base)
	if c == 'X' {
		digits = strings.ToUpper(digits)
	}

	pad := 0
	if width, ok := s.Width(); ok {
		pad = width - len(prefix) - len(digits)
	}

	switch {
	case pad <= 0:
		fmt.Fprint(s, prefix, digits)
	case s.Flag('-'):
		fmt.Fprint(s, prefix, digits, strings.Repeat(" ", pad))
	case s.Flag('0'):
		fmt.Fprint(s, prefix, strings.Repeat("0", pad), digits)
	default:
		fmt.Fprint(s, strings.Repeat(" ", pad), prefix, digits)
	}
}
