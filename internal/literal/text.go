package literal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"fortio.org/safecast"

	"ddl/internal/source"
)

var (
	ErrUnterminated = errors.New("unterminated literal")
	ErrBadEscape    = errors.New("invalid escape sequence")
	ErrCharLength   = errors.New("character literal must contain exactly one character")
)

// String is a double-quoted literal, quotes included in Text.
type String struct {
	Span source.Span
	Text string
}

// Char is a single-quoted literal, quotes included in Text.
type Char struct {
	Span source.Span
	Text string
}

// Value unescapes the string body.
func (s String) Value() (string, error) {
	body, err := unquote(s.Text, '"')
	if err != nil {
		return "", err
	}
	return unescape(body)
}

// Value decodes the single character.
func (c Char) Value() (rune, error) {
	body, err := unquote(c.Text, '\'')
	if err != nil {
		return 0, err
	}
	v, err := unescape(body)
	if err != nil {
		return 0, err
	}
	if utf8.RuneCountInString(v) != 1 {
		return 0, fmt.Errorf("%w: %s", ErrCharLength, c.Text)
	}
	r, _ := utf8.DecodeRuneInString(v)
	return r, nil
}

func unquote(text string, quote byte) (string, error) {
	if len(text) < 2 || text[0] != quote || text[len(text)-1] != quote {
		return "", fmt.Errorf("%w: %s", ErrUnterminated, text)
	}
	body := text[1 : len(text)-1]
	// a trailing backslash escapes the closing quote
	if n := len(body) - len(strings.TrimRight(body, `\`)); n%2 == 1 {
		return "", fmt.Errorf("%w: %s", ErrUnterminated, text)
	}
	return body, nil
}

func unescape(body string) (string, error) {
	if !strings.ContainsRune(body, '\\') {
		return body, nil
	}
	var b strings.Builder
	b.Grow(len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		if i >= len(body) {
			return "", ErrBadEscape
		}
		switch body[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case '0':
			b.WriteByte(0)
		case '\\', '\'', '"':
			b.WriteByte(body[i])
		case 'x':
			if i+2 >= len(body) {
				return "", fmt.Errorf("%w: \\x needs two hex digits", ErrBadEscape)
			}
			v, err := strconv.ParseUint(body[i+1:i+3], 16, 8)
			if err != nil || v > 0x7F {
				return "", fmt.Errorf("%w: \\x%s", ErrBadEscape, body[i+1:i+3])
			}
			b.WriteByte(byte(v))
			i += 2
		case 'u':
			end := strings.IndexByte(body[i:], '}')
			if i+1 >= len(body) || body[i+1] != '{' || end < 0 {
				return "", fmt.Errorf("%w: \\u needs {hex}", ErrBadEscape)
			}
			hex := body[i+2 : i+end]
			v, err := strconv.ParseUint(hex, 16, 32)
			if err != nil || len(hex) == 0 || len(hex) > 6 {
				return "", fmt.Errorf("%w: \\u{%s}", ErrBadEscape, hex)
			}
			r, err := safecast.Conv[rune](v)
			if err != nil || !utf8.ValidRune(r) {
				return "", fmt.Errorf("%w: \\u{%s}", ErrBadEscape, hex)
			}
			b.WriteRune(r)
			i += end
		default:
			return "", fmt.Errorf("%w: \\%c", ErrBadEscape, body[i])
		}
	}
	return b.String(), nil
}
