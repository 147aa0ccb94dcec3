package format

import (
	"strconv"
	"testing"
)

func TestGroup(t *testing.T) {
	testCases := []struct {
		name     string
		in       string
		expected string
	}{
		{"short integer", "123", "123"},
		{"four digits", "1234", "1,234"},
		{"seven digits", "1234567", "1,234,567"},
		{"fraction untouched", "1234567.891011", "1,234,567.891011"},
		{"negative", "-1234", "-1,234"},
		{"negative with fraction", "-1234.5", "-1,234.5"},
		{"explicit plus", "+1234", "+1,234"},
		{"zero", "0", "0"},
		{"in-progress operand", "0.", "0."},
		{"sentinel pass-through", "Error", "Error"},
		{"infinity pass-through", "Infinity", "Infinity"},
		{"unparseable pass-through", "1.2.3", "1.2.3"},
		{"empty pass-through", "", ""},
		{"exponent pass-through", "1e+21", "1e+21"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Group(tc.in); got != tc.expected {
				t.Errorf("Group(%q) = %q, want %q", tc.in, got, tc.expected)
			}
		})
	}
}

func TestCanonical(t *testing.T) {
	testCases := []struct {
		name     string
		in       float64
		expected string
	}{
		{"integer", 10, "10"},
		{"negative integer", -4, "-4"},
		{"strips float noise", 0.30000000000000004, "0.3"},
		{"keeps real fraction", 2.5, "2.5"},
		{"rounds to ten digits", 0.12345678904999, "0.123456789"},
		{"tiny rounds to zero", 1e-12, "0"},
		{"zero", 0, "0"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Canonical(tc.in); got != tc.expected {
				t.Errorf("Canonical(%v) = %q, want %q", tc.in, got, tc.expected)
			}
		})
	}
}

// Round-trip property from the display contract: for a finite number with at
// most ten fractional digits, parsing the grouped form with separators
// removed recovers the original value.
func TestGroupRoundTrip(t *testing.T) {
	for _, v := range []float64{0, 1, -1, 1234.5678, -9876543.21, 1000000, 0.0000000001} {
		s := strconv.FormatFloat(v, 'f', -1, 64)
		grouped := Group(s)
		stripped := ""
		for _, r := range grouped {
			if r != ',' {
				stripped += string(r)
			}
		}
		back, err := strconv.ParseFloat(stripped, 64)
		if err != nil {
			t.Fatalf("ParseFloat(%q): %v", stripped, err)
		}
		if back != v {
			t.Errorf("round trip of %v through %q gave %v", v, grouped, back)
		}
	}
}
