package core

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"
)

var ErrInvalidLabel = errors.New("invalid label")

// Label is a validated item or field name. Labels compare with ==.
type Label string

// NewLabel checks that s is an identifier: a letter or '_' followed by
// letters, digits or '_'.
func NewLabel(s string) (Label, error) {
	if s == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidLabel)
	}
	for i, r := range s {
		if r == utf8.RuneError {
			return "", fmt.Errorf("%w: %q is not valid UTF-8", ErrInvalidLabel, s)
		}
		if r == '_' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r)) {
			continue
		}
		return "", fmt.Errorf("%w: %q", ErrInvalidLabel, s)
	}
	return Label(s), nil
}

// MustLabel is NewLabel for names known to be valid.
func MustLabel(s string) Label {
	l, err := NewLabel(s)
	if err != nil {
		panic(err)
	}
	return l
}

func (l Label) String() string { return string(l) }
