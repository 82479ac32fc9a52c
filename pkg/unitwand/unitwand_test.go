package unitwand

import (
	"errors"
	"math"
	"testing"

	"github.com/mesh-intelligence/unitwand/pkg/standards"
	"github.com/mesh-intelligence/unitwand/pkg/types"
)

func TestParseAndGetters(t *testing.T) {
	q, err := Parse("10 nm", "", "")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	form, err := GetForm(q)
	if err != nil {
		t.Fatalf("GetForm failed: %v", err)
	}
	if form != types.FormGonum {
		t.Errorf("GetForm = %q, want gonum", form)
	}

	v, err := GetValue(q)
	if err != nil {
		t.Fatalf("GetValue failed: %v", err)
	}
	if v.(float64) != 10 {
		t.Errorf("GetValue = %v, want 10", v)
	}

	u, err := GetUnit(q)
	if err != nil {
		t.Fatalf("GetUnit failed: %v", err)
	}
	if u != "nm" {
		t.Errorf("GetUnit = %q, want nm", u)
	}
}

func TestGetValueVector(t *testing.T) {
	q, err := Parse("[1, 2, 3] kJ", "", "")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	v, err := GetValue(q)
	if err != nil {
		t.Fatalf("GetValue failed: %v", err)
	}
	values, ok := v.([]float64)
	if !ok || len(values) != 3 || values[2] != 3 {
		t.Errorf("GetValue = %v, want [1 2 3]", v)
	}
}

func TestTranslateDigestsAliases(t *testing.T) {
	q, err := Parse("10 nm", "", "")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	out, err := Translate(q, "gonum", "resource")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	form, err := GetForm(out)
	if err != nil {
		t.Fatalf("GetForm failed: %v", err)
	}
	if form != types.FormResource {
		t.Errorf("translated form = %q, want k8s.resource", form)
	}

	if _, err := Translate(q, "gonum", "quantities"); !errors.Is(err, types.ErrUnknownForm) {
		t.Errorf("expected ErrUnknownForm for an unknown target, got %v", err)
	}
}

func TestConvert(t *testing.T) {
	q, err := Parse("10 angstrom", "", "")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	out, err := Convert(q, "nm", "")
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	v, err := GetValue(out)
	if err != nil {
		t.Fatalf("GetValue failed: %v", err)
	}
	if math.Abs(v.(float64)-1) > 1e-12 {
		t.Errorf("10 angstrom = %v nm, want 1", v)
	}
}

func TestGetFormUnknownPayload(t *testing.T) {
	if _, err := GetForm(struct{}{}); !errors.Is(err, types.ErrUnknownForm) {
		t.Errorf("expected ErrUnknownForm, got %v", err)
	}
}

func TestStandardUnitsLifecycle(t *testing.T) {
	standards.Default().Reset()
	t.Cleanup(standards.Default().Reset)

	q, err := Parse("10 angstrom", "", "")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if _, err := Standardize(q); !errors.Is(err, types.ErrNoStandards) {
		t.Fatalf("expected ErrNoStandards before configuration, got %v", err)
	}

	if err := SetStandardUnits([]string{"nm", "ps", "kJ"}); err != nil {
		t.Fatalf("SetStandardUnits failed: %v", err)
	}

	sym, ok, err := GetStandardUnits(q)
	if err != nil {
		t.Fatalf("GetStandardUnits failed: %v", err)
	}
	if !ok || sym != "nm" {
		t.Errorf("GetStandardUnits = (%q, %v), want (nm, true)", sym, ok)
	}

	std, err := Standardize(q)
	if err != nil {
		t.Fatalf("Standardize failed: %v", err)
	}
	u, err := GetUnit(std)
	if err != nil {
		t.Fatalf("GetUnit failed: %v", err)
	}
	if u != "nm" {
		t.Errorf("standardized unit = %q, want nm", u)
	}
}
