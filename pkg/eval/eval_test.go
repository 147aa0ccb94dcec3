package eval

import (
	"testing"
)

func TestEvaluate(t *testing.T) {
	testCases := []struct {
		name     string
		in       string
		expected string
	}{
		{"precedence", "2 + 3 * 4", "14"},
		{"power", "2 ^ 10", "1024"},
		{"power right associative", "2 ^ 3 ^ 2", "512"},
		{"sqrt", "sqrt(16)", "4"},
		{"nested call", "sqrt(9 + 7)", "4"},
		{"log base ten", "log(1000)", "3"},
		{"natural log of E", "ln(E)", "1"},
		{"sin of zero", "sin(0)", "0"},
		{"cos of zero", "cos(0)", "1"},
		{"tan of zero", "tan(0)", "0"},
		{"pi constant", "PI", "3.1415926536"},
		{"e constant", "E", "2.7182818285"},
		{"unary minus", "-3 + 5", "2"},
		{"double unary", "--4", "4"},
		{"unary before power", "-2 ^ 2", "-4"},
		{"parens", "(2 + 3) * 4", "20"},
		{"modulo", "10 % 3", "1"},
		{"modulo precedence", "1 + 10 % 3", "2"},
		{"division", "7 / 2", "3.5"},
		{"float noise rounded", "0.1 + 0.2", "0.3"},
		{"multiplication glyph", "6 × 7", "42"},
		{"division glyph", "8 ÷ 2", "4"},
		{"chained operator with zero operand", "7 + 0 + 3", "10"},
		{"whitespace only around", "  7 + 3  ", "10"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Evaluate(tc.in)
			if err != nil {
				t.Fatalf("Evaluate(%q): %v", tc.in, err)
			}
			if got != tc.expected {
				t.Errorf("Evaluate(%q) = %q, want %q", tc.in, got, tc.expected)
			}
		})
	}
}

func TestEvaluateNonFinite(t *testing.T) {
	for _, in := range []string{"1 / 0", "-1 / 0", "0 / 0", "5 % 0", "sqrt(-1)", "ln(0)", "log(-5)"} {
		t.Run(in, func(t *testing.T) {
			_, err := Evaluate(in)
			if err == nil {
				t.Fatalf("Evaluate(%q): expected error, got none", in)
			}
			if !IsNonFinite(err) {
				t.Errorf("Evaluate(%q): expected NonFinite, got %v", in, err)
			}
		})
	}
}

func TestEvaluateMalformed(t *testing.T) {
	for _, in := range []string{
		"",
		"7 +",
		"(2 + 3",
		"2 + 3)",
		"sin(",
		"sin 5",
		"foo(3)",
		"1..2",
		"2 ** 3",
		"#",
		"PI(2)",
	} {
		t.Run(in, func(t *testing.T) {
			_, err := Evaluate(in)
			if err == nil {
				t.Fatalf("Evaluate(%q): expected error, got none", in)
			}
			if !IsMalformed(err) {
				t.Errorf("Evaluate(%q): expected Malformed, got %v", in, err)
			}
		})
	}
}

func TestValue(t *testing.T) {
	v, err := Value("2 + 2")
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if v != 4 {
		t.Errorf("Value(2 + 2) = %v, want 4", v)
	}
}
