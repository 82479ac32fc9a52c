package mlunitform

import (
	"fmt"

	mlunit "github.com/martinlindhe/unit"

	"github.com/mesh-intelligence/unitwand/pkg/gonumform"
)

// Dimension signatures this form can represent, keyed by the SI symbol
// expression of the dimensions.
const (
	sigLength = "m"
	sigMass   = "kg"
	sigEnergy = "kg m^2 s^-2"
	sigPower  = "kg m^2 s^-3"
)

// FromGonum is the gonum→martinlindhe matrix converter. It maps the dimension
// signature onto one of the library's typed values; anything else is not
// representable and fails.
func FromGonum(q any) (any, error) {
	gq, ok := q.(*gonumform.Quantity)
	if !ok {
		return nil, fmt.Errorf("unexpected payload type %T for the gonum form", q)
	}
	if gq.IsVector() {
		return nil, fmt.Errorf("the martinlindhe form has no vector values")
	}
	v := gq.BaseValue()
	switch gonumform.DimsString(gq.Dims) {
	case sigLength:
		return mlunit.Length(v) * mlunit.Meter, nil
	case sigMass:
		return mlunit.Mass(v) * mlunit.Kilogram, nil
	case sigEnergy:
		return mlunit.Energy(v) * mlunit.Joule, nil
	case sigPower:
		return mlunit.Power(v) * mlunit.Watt, nil
	default:
		return nil, fmt.Errorf("the martinlindhe form does not cover dimensions %q", gonumform.DimsString(gq.Dims))
	}
}

// ToGonum is the martinlindhe→gonum matrix converter.
func ToGonum(q any) (any, error) {
	switch v := q.(type) {
	case mlunit.Length:
		return gonumform.New(v.Meters(), "m")
	case mlunit.Mass:
		return gonumform.New(v.Kilograms(), "kg")
	case mlunit.Energy:
		return gonumform.New(v.Joules(), "J")
	case mlunit.Power:
		return gonumform.New(v.Watts(), "W")
	default:
		return nil, fmt.Errorf("unexpected payload type %T for the martinlindhe form", q)
	}
}

// IsPayload reports whether q is a martinlindhe-form payload.
func IsPayload(q any) bool {
	switch q.(type) {
	case mlunit.Length, mlunit.Mass, mlunit.Energy, mlunit.Power:
		return true
	default:
		return false
	}
}
