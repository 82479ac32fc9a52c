package unitwand

import (
	"fmt"

	"github.com/mesh-intelligence/unitwand/pkg/forms"
	"github.com/mesh-intelligence/unitwand/pkg/gonumform"
	"github.com/mesh-intelligence/unitwand/pkg/mlunitform"
	"github.com/mesh-intelligence/unitwand/pkg/parse"
	"github.com/mesh-intelligence/unitwand/pkg/resourceform"
	"github.com/mesh-intelligence/unitwand/pkg/standards"
	"github.com/mesh-intelligence/unitwand/pkg/types"
)

// Version is the unitwand release version.
const Version = "0.1.0"

// Parse parses a textual quantity. parser and toForm accept any alias of a
// supported form; empty strings select the configured defaults.
func Parse(text, parser, toForm string) (any, error) {
	return parse.Parse(text, parse.WithParser(parser), parse.WithToForm(toForm))
}

// ParseValue parses a payload of unknown type; non-strings fail with
// BadCallError.
func ParseValue(v any, parser, toForm string) (any, error) {
	return parse.ParseValue(v, parse.WithParser(parser), parse.WithToForm(toForm))
}

// Translate converts a quantity payload between forms. Both identifiers are
// digested, so aliases are accepted and unknown identifiers fail with
// UnknownFormError before any lookup.
func Translate(q any, sourceForm, targetForm string) (any, error) {
	from, err := forms.DigestToForm(sourceForm)
	if err != nil {
		return nil, err
	}
	to, err := forms.DigestToForm(targetForm)
	if err != nil {
		return nil, err
	}
	return forms.Default().Translate(q, from, to)
}

// GetForm detects which form a payload belongs to.
func GetForm(q any) (types.Form, error) {
	switch {
	case gonumform.IsPayload(q):
		return types.FormGonum, nil
	case resourceform.IsPayload(q):
		return types.FormResource, nil
	case mlunitform.IsPayload(q):
		return types.FormMLUnit, nil
	default:
		if _, ok := q.(string); ok {
			return types.FormString, nil
		}
		return "", types.NewUnknownFormError("GetForm", fmt.Sprintf("%T", q))
	}
}

// GetValue returns the magnitude of a payload: a float64 for scalars, a
// []float64 for vector quantities. The payload is translated to the native
// form first.
func GetValue(q any) (any, error) {
	gq, err := toNative(q)
	if err != nil {
		return nil, err
	}
	if gq.IsVector() {
		return append([]float64(nil), gq.Values...), nil
	}
	return gq.Value, nil
}

// GetUnit returns the unit expression of a payload.
func GetUnit(q any) (string, error) {
	gq, err := toNative(q)
	if err != nil {
		return "", err
	}
	return gq.Sym, nil
}

// Convert re-expresses a quantity in another unit, optionally changing form.
// Empty toForm keeps the payload's current form.
func Convert(q any, toUnit, toForm string) (any, error) {
	from, err := GetForm(q)
	if err != nil {
		return nil, err
	}
	target := from
	if toForm != "" {
		target, err = forms.DigestToForm(toForm)
		if err != nil {
			return nil, err
		}
	}

	gq, err := toNative(q)
	if err != nil {
		return nil, err
	}
	out, err := gq.To(toUnit)
	if err != nil {
		return nil, err
	}
	return forms.Default().Translate(out, types.FormGonum, target)
}

// Standardize re-expresses a quantity in the configured standard units,
// preserving its form.
func Standardize(q any) (any, error) {
	from, err := GetForm(q)
	if err != nil {
		return nil, err
	}
	return standards.Default().Standardize(q, from, forms.Default())
}

// SetStandardUnits configures the process-wide standard units.
func SetStandardUnits(units []string) error {
	return standards.Default().Set(units)
}

// GetStandardUnits returns the standard unit applying to a payload's
// dimensions, with ok false when none applies.
func GetStandardUnits(q any) (string, bool, error) {
	gq, err := toNative(q)
	if err != nil {
		return "", false, err
	}
	sym, ok := standards.Default().ForDimensions(gq.Dims)
	return sym, ok, nil
}

// toNative translates any payload into the native gonum form.
func toNative(q any) (*gonumform.Quantity, error) {
	from, err := GetForm(q)
	if err != nil {
		return nil, err
	}
	native, err := forms.Default().Translate(q, from, types.FormGonum)
	if err != nil {
		return nil, err
	}
	return native.(*gonumform.Quantity), nil
}
