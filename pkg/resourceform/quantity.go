package resourceform

import (
	"fmt"
	"strconv"
	"strings"

	"k8s.io/apimachinery/pkg/api/resource"

	"github.com/mesh-intelligence/unitwand/pkg/gonumform"
)

// Quantity pairs decimal-exact magnitudes with an SI dimension signature such
// as "kg m^2 s^-2". Either Amount or Amounts is populated; Amounts is non-nil
// for vector-valued quantities.
type Quantity struct {
	Amount  resource.Quantity
	Amounts []resource.Quantity
	Unit    string
}

// IsVector reports whether the quantity is sequence-valued.
func (q *Quantity) IsVector() bool { return q.Amounts != nil }

// String serializes the quantity, e.g. "1e-8 m" or "[1e3, 2e3] kg m^2 s^-2".
func (q *Quantity) String() string {
	var b strings.Builder
	if q.IsVector() {
		b.WriteByte('[')
		for i := range q.Amounts {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(q.Amounts[i].String())
		}
		b.WriteByte(']')
	} else {
		b.WriteString(q.Amount.String())
	}
	if q.Unit != "" {
		b.WriteByte(' ')
		b.WriteString(q.Unit)
	}
	return b.String()
}

// FromGonum is the gonum→k8s.resource matrix converter. The magnitude is
// re-expressed in SI base units before the decimal conversion so the Unit
// field is always the plain dimension signature.
func FromGonum(q any) (any, error) {
	gq, ok := q.(*gonumform.Quantity)
	if !ok {
		return nil, fmt.Errorf("unexpected payload type %T for the gonum form", q)
	}
	out := &Quantity{Unit: gonumform.DimsString(gq.Dims)}
	if gq.IsVector() {
		base := gq.BaseValues()
		out.Amounts = make([]resource.Quantity, len(base))
		for i, v := range base {
			a, err := toAmount(v)
			if err != nil {
				return nil, err
			}
			out.Amounts[i] = a
		}
		return out, nil
	}
	a, err := toAmount(gq.BaseValue())
	if err != nil {
		return nil, err
	}
	out.Amount = a
	return out, nil
}

// ToGonum is the k8s.resource→gonum matrix converter.
func ToGonum(q any) (any, error) {
	rq, ok := q.(*Quantity)
	if !ok {
		return nil, fmt.Errorf("unexpected payload type %T for the k8s.resource form", q)
	}
	if rq.IsVector() {
		values := make([]float64, len(rq.Amounts))
		for i := range rq.Amounts {
			values[i] = rq.Amounts[i].AsApproximateFloat64()
		}
		return gonumform.NewVector(values, rq.Unit)
	}
	return gonumform.New(rq.Amount.AsApproximateFloat64(), rq.Unit)
}

// IsPayload reports whether q is a k8s.resource-form payload.
func IsPayload(q any) bool {
	_, ok := q.(*Quantity)
	return ok
}

// toAmount converts a float magnitude into a decimal resource.Quantity via
// the library's exponent notation.
func toAmount(v float64) (resource.Quantity, error) {
	a, err := resource.ParseQuantity(strconv.FormatFloat(v, 'e', -1, 64))
	if err != nil {
		return resource.Quantity{}, fmt.Errorf("magnitude %v is not representable as a resource quantity: %w", v, err)
	}
	return a, nil
}
