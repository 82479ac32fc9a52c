package parse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/unitwand/pkg/forms"
	"github.com/mesh-intelligence/unitwand/pkg/gonumform"
	"github.com/mesh-intelligence/unitwand/pkg/types"
)

// Option adjusts a single Parse call.
type Option func(*settings)

type settings struct {
	parser string
	toForm string
	matrix *forms.Matrix
}

// WithParser selects which library's textual grammar to use. Empty means the
// configured default parser.
func WithParser(parser string) Option {
	return func(s *settings) { s.parser = parser }
}

// WithToForm selects the output form. Empty means the parser's native form.
func WithToForm(toForm string) Option {
	return func(s *settings) { s.toForm = toForm }
}

// WithMatrix routes the result through a specific translation matrix instead
// of the default one.
func WithMatrix(m *forms.Matrix) Option {
	return func(s *settings) { s.matrix = m }
}

// Parse parses a textual quantity and returns a payload in the requested
// form.
//
// The parser and target identifiers are digested first, so an unsupported
// value fails with UnknownFormError before any parsing happens. Parser-less
// library forms fail with LibraryWithoutParserError no matter which target
// form was requested.
func Parse(text string, opts ...Option) (any, error) {
	s := settings{matrix: forms.Default()}
	for _, opt := range opts {
		opt(&s)
	}

	parser, err := forms.DigestParser(s.parser)
	if err != nil {
		return nil, err
	}
	toForm, err := forms.DigestToForm(s.toForm)
	if err != nil {
		return nil, err
	}

	switch parser {
	case types.FormGonum:
		q, err := parseWithGonum(text, s.matrix)
		if err != nil {
			return nil, err
		}
		return s.matrix.Translate(q, types.FormGonum, toForm)
	case types.FormResource, types.FormMLUnit:
		return nil, types.NewLibraryWithoutParserError("Parse", parser)
	default:
		return nil, types.NewNotImplementedParsingError("Parse", parser, toForm)
	}
}

// ParseValue parses a payload of unknown type. Anything but a string is a
// caller mistake and fails with BadCallError naming the string argument.
func ParseValue(v any, opts ...Option) (any, error) {
	text, ok := v.(string)
	if !ok {
		return nil, types.NewBadCallError("ParseValue", "string")
	}
	return Parse(text, opts...)
}

// parseWithGonum hands text to the native gonum constructor through the
// matrix's string→gonum entry. A leading list or tuple bracket selects the
// vector path.
func parseWithGonum(text string, m *forms.Matrix) (*gonumform.Quantity, error) {
	if strings.HasPrefix(text, "[") || strings.HasPrefix(text, "(") {
		return parseVector(text, m)
	}
	q, err := m.Translate(text, types.FormString, types.FormGonum)
	if err != nil {
		return nil, err
	}
	return q.(*gonumform.Quantity), nil
}

// parseVector splits a sequence-valued quantity string into its literal
// payload and unit expression, then multiplies the sequence by one unit of
// the expression.
//
// The split point is one past the last occurrence of ")" or "]", whichever
// occurs later in the string; when neither occurs it degenerates to index 0,
// leaving an empty payload substring. This mirrors the historical behavior
// exactly and is deliberately kept, sharp edges included.
func parseVector(text string, m *forms.Matrix) (*gonumform.Quantity, error) {
	end := strings.LastIndex(text, ")") + 1
	if e := strings.LastIndex(text, "]") + 1; e > end {
		end = e
	}
	valueStr, unitStr := text[:end], text[end:]

	values, err := parseSequence(valueStr)
	if err != nil {
		return nil, err
	}

	uq, err := m.Translate(unitStr, types.FormString, types.FormGonum)
	if err != nil {
		return nil, err
	}
	q := uq.(*gonumform.Quantity)

	scaled := make([]float64, len(values))
	for i, v := range values {
		scaled[i] = v * q.Value
	}
	return &gonumform.Quantity{Values: scaled, Sym: q.Sym, Scale: q.Scale, Dims: q.Dims}, nil
}

// parseSequence evaluates a literal numeric sequence such as "[1, 2, 3]" or
// "(1.5, 2.5)".
func parseSequence(s string) ([]float64, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil, fmt.Errorf("empty sequence payload")
	}
	open := trimmed[0]
	if open != '[' && open != '(' {
		return nil, fmt.Errorf("sequence payload %q does not start with a bracket", s)
	}
	closing := byte(']')
	if open == '(' {
		closing = ')'
	}
	if trimmed[len(trimmed)-1] != closing {
		return nil, fmt.Errorf("sequence payload %q is not closed by %q", s, string(closing))
	}

	inner := strings.TrimSpace(trimmed[1 : len(trimmed)-1])
	if inner == "" {
		return nil, fmt.Errorf("sequence payload %q has no elements", s)
	}
	// A trailing comma is legal in tuple literals, e.g. "(1,)".
	inner = strings.TrimSuffix(inner, ",")

	parts := strings.Split(inner, ",")
	values := make([]float64, len(parts))
	for i, p := range parts {
		elem := strings.TrimSpace(p)
		// Literal grammars allow parenthesized scalars, e.g. "[(1), 2]".
		for len(elem) > 1 && elem[0] == '(' && elem[len(elem)-1] == ')' {
			elem = strings.TrimSpace(elem[1 : len(elem)-1])
		}
		v, err := strconv.ParseFloat(elem, 64)
		if err != nil {
			return nil, fmt.Errorf("sequence element %q: %w", elem, err)
		}
		values[i] = v
	}
	return values, nil
}
