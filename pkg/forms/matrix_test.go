package forms

import (
	"errors"
	"fmt"
	"testing"

	"github.com/mesh-intelligence/unitwand/pkg/gonumform"
	"github.com/mesh-intelligence/unitwand/pkg/types"
)

func TestMatrixIdentityForEveryForm(t *testing.T) {
	m := NewDefaultMatrix()

	gq, err := gonumform.ParseText("10 nm")
	if err != nil {
		t.Fatalf("ParseText failed: %v", err)
	}
	rq, err := m.Translate(gq, types.FormGonum, types.FormResource)
	if err != nil {
		t.Fatalf("gonum->resource failed: %v", err)
	}
	mq, err := m.Translate(gq, types.FormGonum, types.FormMLUnit)
	if err != nil {
		t.Fatalf("gonum->martinlindhe failed: %v", err)
	}

	payloads := map[types.Form]any{
		types.FormString:   "10 nm",
		types.FormGonum:    gq,
		types.FormResource: rq,
		types.FormMLUnit:   mq,
	}
	for form, q := range payloads {
		got, err := m.Translate(q, form, form)
		if err != nil {
			t.Errorf("identity translate for %q failed: %v", form, err)
			continue
		}
		if got != q {
			t.Errorf("identity translate for %q returned a different payload", form)
		}
	}
}

func TestMatrixUnsupportedPair(t *testing.T) {
	m := NewDefaultMatrix()

	gq, err := gonumform.ParseText("1 m")
	if err != nil {
		t.Fatalf("ParseText failed: %v", err)
	}
	rq, err := m.Translate(gq, types.FormGonum, types.FormResource)
	if err != nil {
		t.Fatalf("gonum->resource failed: %v", err)
	}

	// The matrix deliberately has no direct resource<->martinlindhe entries.
	_, err = m.Translate(rq, types.FormResource, types.FormMLUnit)
	if !errors.Is(err, types.ErrNotImplementedParsing) {
		t.Fatalf("expected ErrNotImplementedParsing, got %v", err)
	}
	if errors.Is(err, types.ErrUnknownForm) {
		t.Fatal("unsupported pair must not report an unknown form")
	}
}

func TestMatrixPayloadMismatch(t *testing.T) {
	m := NewDefaultMatrix()

	_, err := m.Translate(42, types.FormGonum, types.FormString)
	if !errors.Is(err, types.ErrBadCall) {
		t.Fatalf("expected ErrBadCall for a mismatched payload, got %v", err)
	}
}

func TestMatrixConverterErrorPropagates(t *testing.T) {
	m := NewMatrix()
	boom := fmt.Errorf("converter exploded")
	m.Register(types.FormString, types.FormGonum, func(q any) (any, error) {
		return nil, boom
	})

	_, err := m.Translate("x", types.FormString, types.FormGonum)
	if !errors.Is(err, boom) {
		t.Fatalf("converter error was not propagated as-is: %v", err)
	}
}

func TestMatrixSupportsAndPairs(t *testing.T) {
	m := NewDefaultMatrix()

	if !m.Supports(types.FormString, types.FormGonum) {
		t.Error("string->gonum should be supported")
	}
	if !m.Supports(types.FormMLUnit, types.FormMLUnit) {
		t.Error("identity pairs are always supported")
	}
	if m.Supports(types.FormResource, types.FormMLUnit) {
		t.Error("resource->martinlindhe should not be supported")
	}

	// Every accepted form appears as source or target of at least one pair.
	seen := map[types.Form]bool{}
	for _, pair := range m.Pairs() {
		seen[pair[0]] = true
		seen[pair[1]] = true
	}
	for _, f := range types.Forms() {
		if !seen[f] {
			t.Errorf("form %q has no matrix entry as source or target", f)
		}
	}
}
