package literal

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"ddl/internal/source"
)

var (
	ErrMalformed         = errors.New("malformed digits")
	ErrOutOfRange        = errors.New("value out of range")
	ErrUnsupportedSuffix = errors.New("unsupported suffix")
	ErrNotDecimal        = errors.New("floating point literals must be decimal")
)

// Radix of a numeric literal.
type Radix uint8

const (
	Binary  Radix = 2
	Octal   Radix = 8
	Decimal Radix = 10
	Hex     Radix = 16
)

func (r Radix) Prefix() string {
	switch r {
	case Binary:
		return "0b"
	case Octal:
		return "0o"
	case Hex:
		return "0x"
	}
	return ""
}

// Number is an unconverted numeric literal.
type Number struct {
	Span     source.Span
	Text     string // exact source text
	Negative bool
	Radix    Radix
	Digits   string // between prefix and suffix, separators kept
	Suffix   string
}

// NewNumber splits text into sign, radix prefix, digits and suffix.
// It accepts any text; validation happens on conversion.
func NewNumber(span source.Span, text string) Number {
	n := Number{Span: span, Text: text, Radix: Decimal}
	rest := text
	switch {
	case strings.HasPrefix(rest, "-"):
		n.Negative = true
		rest = rest[1:]
	case strings.HasPrefix(rest, "+"):
		rest = rest[1:]
	}
	if len(rest) >= 2 && rest[0] == '0' {
		switch rest[1] {
		case 'b', 'B':
			n.Radix, rest = Binary, rest[2:]
		case 'o', 'O':
			n.Radix, rest = Octal, rest[2:]
		case 'x', 'X':
			n.Radix, rest = Hex, rest[2:]
		}
	}
	cut := suffixStart(rest, n.Radix)
	n.Digits, n.Suffix = rest[:cut], rest[cut:]
	return n
}

// suffixStart finds where the trailing alphabetic suffix begins. Decimal
// digits always belong to the body, whatever the radix, so that "0b102" is
// malformed rather than suffixed. In decimal an 'e' followed by a digit or
// sign is an exponent, not a suffix.
func suffixStart(s string, radix Radix) int {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_' || c == '.' || (c >= '0' && c <= '9') || (radix == Hex && isDigit(c, Hex)):
			continue
		case radix == Decimal && (c == 'e' || c == 'E') && isExponentAt(s, i):
			i++
			if s[i] == '+' || s[i] == '-' {
				i++
			}
			continue
		case radix == Decimal && (c == '+' || c == '-'):
			continue
		}
		return i
	}
	return len(s)
}

func isExponentAt(s string, i int) bool {
	j := i + 1
	if j < len(s) && (s[j] == '+' || s[j] == '-') {
		j++
	}
	return j < len(s) && s[j] >= '0' && s[j] <= '9'
}

func isDigit(c byte, radix Radix) bool {
	var v int
	switch {
	case c >= '0' && c <= '9':
		v = int(c - '0')
	case c >= 'a' && c <= 'f':
		v = int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		v = int(c-'A') + 10
	default:
		return false
	}
	return v < int(radix)
}

// IsFloat reports whether the digits use fractional or exponent syntax.
func (n Number) IsFloat() bool {
	return n.Radix == Decimal && strings.ContainsAny(n.Digits, ".eE")
}

// cleanDigits drops '_' separators. A separator may only sit between
// two digits.
func (n Number) cleanDigits() (string, error) {
	d := n.Digits
	if d == "" {
		return "", fmt.Errorf("%w: no digits in %q", ErrMalformed, n.Text)
	}
	if strings.HasPrefix(d, "_") || strings.HasSuffix(d, "_") || strings.Contains(d, "__") {
		return "", fmt.Errorf("%w: misplaced '_' in %q", ErrMalformed, n.Text)
	}
	return strings.ReplaceAll(d, "_", ""), nil
}

// BigInt converts an integer literal. Fractions, exponents and any suffix
// are rejected.
func (n Number) BigInt() (*big.Int, error) {
	if n.Suffix != "" {
		return nil, fmt.Errorf("%w %q on integer literal", ErrUnsupportedSuffix, n.Suffix)
	}
	if n.IsFloat() {
		return nil, fmt.Errorf("%w: %q is not an integer", ErrMalformed, n.Text)
	}
	digits, err := n.cleanDigits()
	if err != nil {
		return nil, err
	}
	v, ok := new(big.Int).SetString(digits, int(n.Radix))
	if !ok {
		return nil, fmt.Errorf("%w: %q in base %d", ErrMalformed, n.Text, n.Radix)
	}
	if n.Negative {
		v.Neg(v)
	}
	return v, nil
}

// Float32 converts to the nearest float32. Results that overflow to
// infinity or underflow to zero are out of range.
func (n Number) Float32() (float32, error) {
	v, err := n.parseFloat(32, "f32")
	return float32(v), err
}

// Float64 converts to the nearest float64.
func (n Number) Float64() (float64, error) {
	return n.parseFloat(64, "f64")
}

func (n Number) parseFloat(bits int, suffix string) (float64, error) {
	if n.Radix != Decimal {
		return 0, ErrNotDecimal
	}
	if n.Suffix != "" && n.Suffix != suffix {
		return 0, fmt.Errorf("%w %q on %s literal", ErrUnsupportedSuffix, n.Suffix, suffix)
	}
	digits, err := n.cleanDigits()
	if err != nil {
		return 0, err
	}
	if !isDecimalFloat(digits) {
		return 0, fmt.Errorf("%w: %q", ErrMalformed, n.Text)
	}
	if n.Negative {
		digits = "-" + digits
	}
	v, err := strconv.ParseFloat(digits, bits)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) && math.IsInf(v, 0) {
			return 0, fmt.Errorf("%w: %q does not fit in %s", ErrOutOfRange, n.Text, suffix)
		}
		return 0, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	// ParseFloat rounds underflow to zero without an error.
	if v == 0 && hasNonZeroMantissa(digits) {
		return 0, fmt.Errorf("%w: %q underflows %s", ErrOutOfRange, n.Text, suffix)
	}
	return v, nil
}

func hasNonZeroMantissa(digits string) bool {
	if i := strings.IndexAny(digits, "eE"); i >= 0 {
		digits = digits[:i]
	}
	return strings.ContainsAny(digits, "123456789")
}

// isDecimalFloat matches digits ['.' digits] [('e'|'E') ['+'|'-'] digits].
// strconv alone would also accept "inf", "nan" and hex floats.
func isDecimalFloat(s string) bool {
	i := 0
	scan := func() int {
		start := i
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		return i - start
	}
	if scan() == 0 {
		return false
	}
	if i < len(s) && s[i] == '.' {
		i++
		if scan() == 0 {
			return false
		}
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		if scan() == 0 {
			return false
		}
	}
	return i == len(s)
}

// FromInt renders v as a decimal Number.
func FromInt(span source.Span, v *big.Int) Number {
	if v == nil {
		v = new(big.Int)
	}
	return NewNumber(span, v.String())
}

// FromFloat renders v with the shortest representation that round-trips
// at the given bit size.
func FromFloat(span source.Span, v float64, bits int) Number {
	text := strconv.FormatFloat(v, 'g', -1, bits)
	if !strings.ContainsAny(text, ".eEN") && !strings.Contains(text, "Inf") {
		text += ".0"
	}
	return NewNumber(span, text)
}
