package gonumform

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"gonum.org/v1/gonum/unit"
)

// numberPrefix matches the numeric payload at the front of a scalar quantity
// string, e.g. "10", "-1.5", "2.5e-3".
var numberPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParseText parses a scalar quantity string such as "10 nm", "2.5e-3 kJ" or
// "kg*m/s^2" (magnitude 1 when no number is present). This is the native
// string-to-quantity constructor behind the string→gonum matrix entry.
func ParseText(s string) (*Quantity, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil, fmt.Errorf("empty quantity string")
	}

	value := 1.0
	rest := trimmed
	if loc := numberPrefix.FindString(trimmed); loc != "" {
		v, err := strconv.ParseFloat(loc, 64)
		if err != nil {
			return nil, fmt.Errorf("parse magnitude %q: %w", loc, err)
		}
		value = v
		rest = strings.TrimSpace(trimmed[len(loc):])
	}

	scale, d, err := parseUnitExpr(rest)
	if err != nil {
		return nil, err
	}
	return &Quantity{Value: value, Sym: rest, Scale: scale, Dims: d}, nil
}

// ParseUnit parses a unit expression into a magnitude-1 quantity. The vector
// parsing path multiplies a literal sequence by the result.
func ParseUnit(expr string) (*Quantity, error) {
	trimmed := strings.TrimSpace(expr)
	scale, d, err := parseUnitExpr(trimmed)
	if err != nil {
		return nil, err
	}
	return &Quantity{Value: 1, Sym: trimmed, Scale: scale, Dims: d}, nil
}

// New builds a scalar quantity from a magnitude and a unit expression.
func New(value float64, unitExpr string) (*Quantity, error) {
	q, err := ParseUnit(unitExpr)
	if err != nil {
		return nil, err
	}
	q.Value = value
	return q, nil
}

// NewVector builds a vector quantity from an ordered sequence of magnitudes
// and a unit expression shared by every element.
func NewVector(values []float64, unitExpr string) (*Quantity, error) {
	q, err := ParseUnit(unitExpr)
	if err != nil {
		return nil, err
	}
	q.Value = 0
	q.Values = values
	return q, nil
}

// parseUnitExpr evaluates a unit expression like "kJ", "m s^-1" or
// "kg*m/s^2" into an SI scale factor and a dimension signature. The empty
// expression is dimensionless.
func parseUnitExpr(expr string) (float64, unit.Dimensions, error) {
	scale := 1.0
	d := unit.Dimensions{}
	rs := []rune(expr)
	i := 0
	sign := 1

	for i < len(rs) {
		r := rs[i]
		switch {
		case r == ' ' || r == '\t' || r == '*' || r == '·':
			i++
		case r == '/':
			// Division binds to the next symbol only: "J/mol/K" is
			// J mol^-1 K^-1.
			sign = -1
			i++
		case unicode.IsLetter(r) || r == 'µ':
			start := i
			for i < len(rs) && (unicode.IsLetter(rs[i]) || rs[i] == 'µ') {
				i++
			}
			tok := string(rs[start:i])

			exp := 1
			if j, e, ok := scanExponent(rs, i); ok {
				i = j
				exp = e
			}
			exp *= sign
			sign = 1

			e, ok := resolveSymbol(tok)
			if !ok {
				return 0, nil, fmt.Errorf("unknown unit %q in %q", tok, expr)
			}
			scale *= math.Pow(e.factor, float64(exp))
			for dim, p := range e.dims {
				d[dim] += p * exp
			}
		default:
			return 0, nil, fmt.Errorf("unexpected character %q in unit expression %q", r, expr)
		}
	}

	for dim, p := range d {
		if p == 0 {
			delete(d, dim)
		}
	}
	return scale, d, nil
}

// scanExponent reads an exponent suffix starting at position i: "^2", "^-1"
// or "**2". Returns the position after the exponent when one is present.
func scanExponent(rs []rune, i int) (int, int, bool) {
	j := i
	switch {
	case j < len(rs) && rs[j] == '^':
		j++
	case j+1 < len(rs) && rs[j] == '*' && rs[j+1] == '*':
		j += 2
	default:
		return i, 0, false
	}

	neg := false
	if j < len(rs) && (rs[j] == '-' || rs[j] == '+') {
		neg = rs[j] == '-'
		j++
	}
	start := j
	for j < len(rs) && unicode.IsDigit(rs[j]) {
		j++
	}
	if start == j {
		return i, 0, false
	}
	e, _ := strconv.Atoi(string(rs[start:j]))
	if neg {
		e = -e
	}
	return j, e, true
}
