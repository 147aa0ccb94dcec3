// Package eval evaluates the calculator's restricted arithmetic grammar:
// numbers, + - * / % ^, parentheses, six named unary functions and two named
// constants. Nothing outside that vocabulary is accepted, so the evaluator
// can never be driven into executing anything but arithmetic.
//
// Precedence, low to high: addition/subtraction, multiplication/division/
// modulo, unary sign, power (right-associative), primaries. The % operator
// is modulo via math.Mod, binding like multiplication.
package eval

import (
	"math"

	"github.com/mamaar/gocalc/pkg/format"
)

// functions is the fixed unary function table. log is base-10, ln natural.
var functions = map[string]func(float64) float64{
	"sin":  math.Sin,
	"cos":  math.Cos,
	"tan":  math.Tan,
	"log":  math.Log10,
	"ln":   math.Log,
	"sqrt": math.Sqrt,
}

// constants is the fixed named-constant table.
var constants = map[string]float64{
	"PI": math.Pi,
	"E":  math.E,
}

// Evaluate computes text and returns the canonical result string: rounded to
// ten fractional digits, minimal representation. A non-finite result (divide
// by zero, sqrt of a negative, x % 0) fails with a NonFinite error; anything
// the grammar does not admit fails with a Malformed error.
func Evaluate(text string) (string, error) {
	v, err := Value(text)
	if err != nil {
		return "", err
	}
	return format.Canonical(v), nil
}

// Value computes text and returns the raw numeric result, applying the same
// grammar and non-finite policy as Evaluate but no rounding.
func Value(text string) (float64, error) {
	toks, lerr := lex(text)
	if lerr != nil {
		return 0, lerr
	}
	p := &parser{toks: toks}
	v, err := p.expr()
	if err != nil {
		return 0, err
	}
	if t := p.peek(); t.kind != tokEOF {
		return 0, malformed(t.pos, t.text, "unexpected token")
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, &Error{Type: NonFinite, Message: "result is not finite"}
	}
	return v, nil
}

// parser is a recursive-descent evaluator over the token stream. It computes
// values directly; the grammar is small enough that no tree pays its way.
type parser struct {
	toks []token
	pos  int
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

// expr := term { ("+" | "-") term }
func (p *parser) expr() (float64, error) {
	v, err := p.term()
	if err != nil {
		return 0, err
	}
	for {
		t := p.peek()
		if t.kind != tokOp || (t.text != "+" && t.text != "-") {
			return v, nil
		}
		p.next()
		rhs, err := p.term()
		if err != nil {
			return 0, err
		}
		if t.text == "+" {
			v += rhs
		} else {
			v -= rhs
		}
	}
}

// term := unary { ("*" | "/" | "%") unary }
func (p *parser) term() (float64, error) {
	v, err := p.unary()
	if err != nil {
		return 0, err
	}
	for {
		t := p.peek()
		if t.kind != tokOp || (t.text != "*" && t.text != "/" && t.text != "%") {
			return v, nil
		}
		p.next()
		rhs, err := p.unary()
		if err != nil {
			return 0, err
		}
		switch t.text {
		case "*":
			v *= rhs
		case "/":
			v /= rhs
		case "%":
			v = math.Mod(v, rhs)
		}
	}
}

// unary := ("+" | "-") unary | power
func (p *parser) unary() (float64, error) {
	t := p.peek()
	if t.kind == tokOp && (t.text == "+" || t.text == "-") {
		p.next()
		v, err := p.unary()
		if err != nil {
			return 0, err
		}
		if t.text == "-" {
			v = -v
		}
		return v, nil
	}
	return p.power()
}

// power := primary [ "^" unary ]   (right-associative)
func (p *parser) power() (float64, error) {
	v, err := p.primary()
	if err != nil {
		return 0, err
	}
	if t := p.peek(); t.kind == tokOp && t.text == "^" {
		p.next()
		exp, err := p.unary()
		if err != nil {
			return 0, err
		}
		return math.Pow(v, exp), nil
	}
	return v, nil
}

// primary := number | "(" expr ")" | func "(" expr ")" | constant
func (p *parser) primary() (float64, error) {
	t := p.next()
	switch t.kind {
	case tokNumber:
		return t.num, nil
	case tokLParen:
		v, err := p.expr()
		if err != nil {
			return 0, err
		}
		if err := p.expect(tokRParen); err != nil {
			return 0, err
		}
		return v, nil
	case tokIdent:
		if fn, ok := functions[t.text]; ok {
			if err := p.expect(tokLParen); err != nil {
				return 0, err
			}
			arg, err := p.expr()
			if err != nil {
				return 0, err
			}
			if err := p.expect(tokRParen); err != nil {
				return 0, err
			}
			return fn(arg), nil
		}
		if c, ok := constants[t.text]; ok {
			return c, nil
		}
		return 0, malformed(t.pos, t.text, "unknown identifier")
	case tokEOF:
		return 0, malformed(t.pos, "", "unexpected end of expression")
	default:
		return 0, malformed(t.pos, t.text, "unexpected token")
	}
}

func (p *parser) expect(kind tokenKind) *Error {
	t := p.next()
	if t.kind != kind {
		want := "("
		if kind == tokRParen {
			want = ")"
		}
		if t.kind == tokEOF {
			return malformed(t.pos, "", "expected %q", want)
		}
		return malformed(t.pos, t.text, "expected %q", want)
	}
	return nil
}
