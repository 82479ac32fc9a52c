package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/mesh-intelligence/unitwand/pkg/gonumform"
	"github.com/mesh-intelligence/unitwand/pkg/resourceform"
	"github.com/mesh-intelligence/unitwand/pkg/types"
)

func TestParseScalarDefault(t *testing.T) {
	q, err := Parse("10 nm")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	gq, ok := q.(*gonumform.Quantity)
	if !ok {
		t.Fatalf("payload type = %T, want *gonumform.Quantity", q)
	}
	if gq.Value != 10 || gq.Sym != "nm" {
		t.Errorf("got %v %q, want 10 nm", gq.Value, gq.Sym)
	}
}

func TestParseSequence(t *testing.T) {
	q, err := Parse("[1, 2, 3] kJ")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	gq := q.(*gonumform.Quantity)
	if !gq.IsVector() {
		t.Fatal("expected a vector quantity")
	}
	want := []float64{1, 2, 3}
	for i := range want {
		if gq.Values[i] != want[i] {
			t.Errorf("Values[%d] = %v, want %v", i, gq.Values[i], want[i])
		}
	}
	if gq.Sym != "kJ" {
		t.Errorf("Sym = %q, want kJ", gq.Sym)
	}
}

func TestParseTuple(t *testing.T) {
	q, err := Parse("(1.5, 2.5) m")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	gq := q.(*gonumform.Quantity)
	if len(gq.Values) != 2 || gq.Values[0] != 1.5 || gq.Values[1] != 2.5 {
		t.Errorf("Values = %v, want [1.5 2.5]", gq.Values)
	}
}

// The split point is one past the last of ")" or "]". A parenthesized scalar
// inside the list exercises the tie-break: the final "]" is later than the
// final ")" and wins.
func TestParseBracketTieBreak(t *testing.T) {
	q, err := Parse("[(1), 2, 3] kJ")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	gq := q.(*gonumform.Quantity)
	want := []float64{1, 2, 3}
	if len(gq.Values) != 3 {
		t.Fatalf("Values = %v, want %v", gq.Values, want)
	}
	for i := range want {
		if gq.Values[i] != want[i] {
			t.Errorf("Values[%d] = %v, want %v", i, gq.Values[i], want[i])
		}
	}
	if gq.Sym != "kJ" {
		t.Errorf("Sym = %q, want kJ", gq.Sym)
	}
}

// When a ")" occurs after the intended "]", the last bracket still wins and
// the split lands inside the unit string. The historical heuristic is kept,
// so this parses the mangled payload and fails there, not in the splitter.
func TestParseBracketLastWinsEvenWhenMalformed(t *testing.T) {
	_, err := Parse("[1, 2] k)J")
	if err == nil {
		t.Fatal("expected the mangled payload to fail")
	}
}

// A leading bracket with no closing bracket at all degenerates to split
// point 0: the payload substring is empty and sequence parsing reports it.
func TestParseUnclosedBracket(t *testing.T) {
	_, err := Parse("[1, 2 kJ")
	if err == nil {
		t.Fatal("expected an error for an unclosed bracket")
	}
	if !strings.Contains(err.Error(), "empty sequence payload") {
		t.Errorf("error %q should come from the empty payload boundary", err)
	}
}

func TestParseToForm(t *testing.T) {
	q, err := Parse("10 nm", WithToForm("k8s.resource"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if _, ok := q.(*resourceform.Quantity); !ok {
		t.Fatalf("payload type = %T, want *resourceform.Quantity", q)
	}

	s, err := Parse("10 nm", WithToForm("string"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if s != "10 nm" {
		t.Errorf("string round trip = %q, want %q", s, "10 nm")
	}
}

func TestParseWithoutParserLibrary(t *testing.T) {
	for _, parser := range []string{"k8s.resource", "martinlindhe"} {
		for _, to := range []string{"", "gonum", "string"} {
			_, err := Parse("10 nm", WithParser(parser), WithToForm(to))
			if !errors.Is(err, types.ErrLibraryWithoutParser) {
				t.Errorf("parser %q to %q: expected ErrLibraryWithoutParser, got %v", parser, to, err)
			}
			if err != nil && !strings.Contains(err.Error(), parser) {
				t.Errorf("error %q does not name the library %q", err, parser)
			}
		}
	}
}

func TestParseUnknownIdentifiers(t *testing.T) {
	if _, err := Parse("10 nm", WithParser("udunits")); !errors.Is(err, types.ErrUnknownForm) {
		t.Errorf("unknown parser: expected ErrUnknownForm, got %v", err)
	}
	if _, err := Parse("10 nm", WithToForm("quantities")); !errors.Is(err, types.ErrUnknownForm) {
		t.Errorf("unknown toForm: expected ErrUnknownForm, got %v", err)
	}
}

func TestParseValueMisuse(t *testing.T) {
	_, err := ParseValue(123)
	if !errors.Is(err, types.ErrBadCall) {
		t.Fatalf("expected ErrBadCall, got %v", err)
	}
	if !strings.Contains(err.Error(), `"string"`) {
		t.Errorf("error %q does not name the string argument", err)
	}

	q, err := ParseValue("10 nm")
	if err != nil {
		t.Fatalf("ParseValue with a string failed: %v", err)
	}
	if _, ok := q.(*gonumform.Quantity); !ok {
		t.Errorf("payload type = %T, want *gonumform.Quantity", q)
	}
}
