package literal

import (
	"errors"
	"math"
	"testing"

	"ddl/internal/source"
)

func num(text string) Number {
	return NewNumber(source.Span{Start: 0, End: uint32(len(text))}, text)
}

func TestNewNumberSplits(t *testing.T) {
	tests := []struct {
		text     string
		negative bool
		radix    Radix
		digits   string
		suffix   string
	}{
		{"42", false, Decimal, "42", ""},
		{"-7", true, Decimal, "7", ""},
		{"+0x1F", false, Hex, "1F", ""},
		{"0b1010_1010", false, Binary, "1010_1010", ""},
		{"0o777", false, Octal, "777", ""},
		{"1.5e-3", false, Decimal, "1.5e-3", ""},
		{"2.5f32", false, Decimal, "2.5", "f32"},
		{"10u8", false, Decimal, "10", "u8"},
		{"10e", false, Decimal, "10", "e"},
		{"abc", false, Decimal, "", "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			n := num(tt.text)
			if n.Negative != tt.negative || n.Radix != tt.radix || n.Digits != tt.digits || n.Suffix != tt.suffix {
				t.Fatalf("NewNumber(%q) = %+v", tt.text, n)
			}
			if n.Text != tt.text {
				t.Fatalf("Text = %q", n.Text)
			}
		})
	}
}

func TestBigInt(t *testing.T) {
	ok := map[string]string{
		"0":                      "0",
		"-42":                    "-42",
		"0xff":                   "255",
		"0b1010":                 "10",
		"0o17":                   "15",
		"1_000_000":              "1000000",
		"340282366920938463463374607431768211456": "340282366920938463463374607431768211456",
	}
	for text, want := range ok {
		v, err := num(text).BigInt()
		if err != nil {
			t.Errorf("BigInt(%q): %v", text, err)
			continue
		}
		if v.String() != want {
			t.Errorf("BigInt(%q) = %s, want %s", text, v, want)
		}
	}

	bad := map[string]error{
		"1.5":   ErrMalformed,
		"0b102": ErrMalformed,
		"1__0":  ErrMalformed,
		"_1":    ErrMalformed,
		"0x":    ErrMalformed,
		"10u8":  ErrUnsupportedSuffix,
		"abc":   ErrUnsupportedSuffix,
	}
	for text, want := range bad {
		if _, err := num(text).BigInt(); !errors.Is(err, want) {
			t.Errorf("BigInt(%q) error = %v, want %v", text, err, want)
		}
	}
}

func TestFloats(t *testing.T) {
	f32, err := num("1.5").Float32()
	if err != nil || f32 != 1.5 {
		t.Fatalf("Float32(1.5) = %v, %v", f32, err)
	}
	f64, err := num("-2.5e3").Float64()
	if err != nil || f64 != -2500 {
		t.Fatalf("Float64(-2.5e3) = %v, %v", f64, err)
	}
	if v, err := num("7").Float64(); err != nil || v != 7 {
		t.Fatalf("integral digits are valid floats: %v, %v", v, err)
	}
	if v, err := num("3.25f32").Float32(); err != nil || v != 3.25 {
		t.Fatalf("matching suffix should be accepted: %v, %v", v, err)
	}
	if v, err := num("1e300").Float64(); err != nil || v != 1e300 {
		t.Fatalf("1e300 fits in f64: %v, %v", v, err)
	}
	for _, zero := range []string{"0", "0.0", "0e-500", "0_0.0_0"} {
		if v, err := num(zero).Float32(); err != nil || v != 0 {
			t.Fatalf("Float32(%q) = %v, %v", zero, v, err)
		}
	}

	bad := []struct {
		text string
		bits int
		want error
	}{
		{"1e40", 32, ErrOutOfRange},
		{"1e400", 64, ErrOutOfRange},
		{"1e-50", 32, ErrOutOfRange},
		{"1e-400", 64, ErrOutOfRange},
		{"0.000_1e-400", 64, ErrOutOfRange},
		{"0x1p3", 64, ErrNotDecimal},
		{"1.", 64, ErrMalformed},
		{"1.2.3", 64, ErrMalformed},
		{"abc", 32, ErrUnsupportedSuffix},
		{"1.0f64", 32, ErrUnsupportedSuffix},
		{"1+2", 64, ErrMalformed},
	}
	for _, tt := range bad {
		var err error
		if tt.bits == 32 {
			_, err = num(tt.text).Float32()
		} else {
			_, err = num(tt.text).Float64()
		}
		if !errors.Is(err, tt.want) {
			t.Errorf("float%d(%q) error = %v, want %v", tt.bits, tt.text, err, tt.want)
		}
	}
}

func TestFromIntAndFloat(t *testing.T) {
	n := FromFloat(source.Span{}, 3, 64)
	if n.Text != "3.0" {
		t.Errorf("FromFloat(3) = %q", n.Text)
	}
	if v, err := n.Float64(); err != nil || v != 3 {
		t.Errorf("round trip = %v, %v", v, err)
	}
	if got := FromFloat(source.Span{}, math.Inf(1), 64).Text; got != "+Inf" {
		t.Errorf("FromFloat(+Inf) = %q", got)
	}
	b, _ := num("-12345678901234567890").BigInt()
	if got := FromInt(source.Span{}, b).Text; got != "-12345678901234567890" {
		t.Errorf("FromInt = %q", got)
	}
}
