package money

import "testing"

func TestParseCents(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    int64
		wantErr bool
	}{
		{name: "dot_decimal", in: "12.34", want: 1234},
		{name: "comma_decimal", in: "12,34", want: 1234},
		{name: "grouped_display_form", in: "1.234,56", want: 123456},
		{name: "large_grouped", in: "1.234.567,89", want: 123456789},
		{name: "no_fraction", in: "1200", want: 120000},
		{name: "single_fraction_digit", in: "5,5", want: 550},
		{name: "zero", in: "0", want: 0},
		{name: "zero_with_fraction", in: "0,00", want: 0},
		{name: "rounds_third_digit_down", in: "12,344", want: 1234},
		{name: "rounds_third_digit_up", in: "12,345", want: 1235},
		{name: "leading_whitespace", in: "  42,10", want: 4210},
		{name: "empty", in: "", wantErr: true},
		{name: "negative", in: "-5,00", wantErr: true},
		{name: "explicit_plus", in: "+5,00", wantErr: true},
		{name: "letters", in: "abc", wantErr: true},
		{name: "two_dots_no_comma", in: "1.2.3", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseCents(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseCents(%q) = %d, want error", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCents(%q) returned error: %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParseCents(%q) = %d, want %d", tc.in, got, tc.want)
			}
		})
	}
}

func TestFormatCents(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{0, "0,00"},
		{5, "0,05"},
		{1234, "12,34"},
		{123456, "1.234,56"},
		{123456789, "1.234.567,89"},
		{100000000, "1.000.000,00"},
		{-1234, "-12,34"},
	}

	for _, tc := range cases {
		if got := FormatCents(tc.cents); got != tc.want {
			t.Errorf("FormatCents(%d) = %q, want %q", tc.cents, got, tc.want)
		}
	}
}

// Formatting then re-parsing any non-negative amount must return the
// original value.
func TestCurrencyRoundTrip(t *testing.T) {
	values := []int64{0, 1, 99, 100, 999, 1234, 99999, 123456, 100000001, 987654321}

	for _, v := range values {
		formatted := FormatCents(v)
		parsed, err := ParseCents(formatted)
		if err != nil {
			t.Fatalf("ParseCents(FormatCents(%d)) returned error: %v", v, err)
		}
		if parsed != v {
			t.Errorf("round trip of %d through %q gave %d", v, formatted, parsed)
		}
	}
}
