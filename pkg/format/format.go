// Package format renders numeric display strings: digit grouping for the
// rendering layer and the canonical minimal representation used whenever a
// number becomes display text.
package format

import (
	"math"
	"strconv"
	"strings"
)

// ErrorSentinel is the sole non-numeric display value.
const ErrorSentinel = "Error"

// Group inserts a comma every three digits of the integer part, counting from
// the right. The sentinel, "Infinity", exponent-form strings, and anything
// that does not parse as a finite number pass through unchanged. Group never
// fails; unparseable input is a pass-through, not an error.
func Group(s string) string {
	if s == ErrorSentinel || s == "Infinity" {
		return s
	}
	// Grouping an exponent-form string would corrupt the mantissa.
	if strings.ContainsAny(s, "eE") {
		return s
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return s
	}

	sign := ""
	rest := s
	if strings.HasPrefix(rest, "-") || strings.HasPrefix(rest, "+") {
		sign, rest = rest[:1], rest[1:]
	}

	intPart := rest
	fracPart := ""
	if i := strings.Index(rest, "."); i >= 0 {
		intPart, fracPart = rest[:i], rest[i:]
	}

	return sign + group(intPart) + fracPart
}

// group inserts separators into a bare digit run.
func group(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	b.Grow(n + n/3)
	head := n % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// Canonical returns the canonical numeric string for v: rounded to 10
// fractional digits, re-parsed, and formatted with no superfluous trailing
// zeros and no exponent.
func Canonical(v float64) string {
	s := strconv.FormatFloat(v, 'f', 10, 64)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return s
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
