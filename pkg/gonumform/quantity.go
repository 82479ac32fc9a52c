package gonumform

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/unit"
)

// Quantity is a magnitude paired with a parsed unit expression. The magnitude
// is kept as written ("10 nm" keeps Value 10 and Sym "nm"); Scale and Dims
// carry the SI factor and dimension signature the converters work from.
//
// Either Value or Values is populated. Values is non-nil for vector-valued
// quantities and nil for scalars.
type Quantity struct {
	Value  float64
	Values []float64
	Sym    string
	Scale  float64
	Dims   unit.Dimensions
}

// IsVector reports whether the quantity is sequence-valued.
func (q *Quantity) IsVector() bool { return q.Values != nil }

// BaseValue returns the scalar magnitude expressed in SI base units.
func (q *Quantity) BaseValue() float64 { return q.Value * q.Scale }

// BaseValues returns the vector magnitude expressed in SI base units.
func (q *Quantity) BaseValues() []float64 {
	out := make([]float64, len(q.Values))
	for i, v := range q.Values {
		out[i] = v * q.Scale
	}
	return out
}

// Unit returns the quantity as a gonum *unit.Unit, which makes scalar
// quantities usable wherever gonum expects a Uniter.
func (q *Quantity) Unit() *unit.Unit {
	return unit.New(q.BaseValue(), cloneDims(q.Dims))
}

// To re-expresses the quantity in another unit of the same dimensions.
func (q *Quantity) To(unitExpr string) (*Quantity, error) {
	target, err := ParseUnit(unitExpr)
	if err != nil {
		return nil, err
	}
	if !sameDims(q.Dims, target.Dims) {
		return nil, fmt.Errorf("dimension mismatch: cannot express %q in %q", q.Sym, unitExpr)
	}
	out := &Quantity{Sym: target.Sym, Scale: target.Scale, Dims: cloneDims(target.Dims)}
	if q.IsVector() {
		out.Values = make([]float64, len(q.Values))
		for i, v := range q.Values {
			out.Values[i] = v * q.Scale / target.Scale
		}
	} else {
		out.Value = q.Value * q.Scale / target.Scale
	}
	return out, nil
}

// String serializes the quantity back to its textual form, e.g. "10 nm" or
// "[1, 2, 3] kJ".
func (q *Quantity) String() string {
	var b strings.Builder
	if q.IsVector() {
		b.WriteByte('[')
		for i, v := range q.Values {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(formatValue(v))
		}
		b.WriteByte(']')
	} else {
		b.WriteString(formatValue(q.Value))
	}
	if q.Sym != "" {
		b.WriteByte(' ')
		b.WriteString(q.Sym)
	}
	return b.String()
}

// Equal reports whether two quantities agree in dimensions and, within a
// relative tolerance, in SI magnitude.
func Equal(a, b *Quantity) bool {
	if a == nil || b == nil {
		return a == b
	}
	if !sameDims(a.Dims, b.Dims) || a.IsVector() != b.IsVector() {
		return false
	}
	if a.IsVector() {
		av, bv := a.BaseValues(), b.BaseValues()
		if len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !closeEnough(av[i], bv[i]) {
				return false
			}
		}
		return true
	}
	return closeEnough(a.BaseValue(), b.BaseValue())
}

const equalTol = 1e-12

func closeEnough(a, b float64) bool {
	if a == b {
		return true
	}
	scale := math.Max(math.Abs(a), math.Abs(b))
	return math.Abs(a-b) <= equalTol*scale
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func sameDims(a, b unit.Dimensions) bool {
	for d, p := range a {
		if p != 0 && b[d] != p {
			return false
		}
	}
	for d, p := range b {
		if p != 0 && a[d] != p {
			return false
		}
	}
	return true
}

func cloneDims(d unit.Dimensions) unit.Dimensions {
	out := unit.Dimensions{}
	for k, v := range d {
		if v != 0 {
			out[k] = v
		}
	}
	return out
}

// dimOrder fixes the symbol order used when formatting a dimension signature.
var dimOrder = []struct {
	dim unit.Dimension
	sym string
}{
	{unit.MassDim, "kg"},
	{unit.LengthDim, "m"},
	{unit.TimeDim, "s"},
	{unit.CurrentDim, "A"},
	{unit.TemperatureDim, "K"},
	{unit.MoleDim, "mol"},
	{unit.LuminousIntensityDim, "cd"},
	{unit.AngleDim, "rad"},
}

// DimsString formats a dimension signature in SI base symbols, e.g.
// "kg m^2 s^-2". The empty string denotes a dimensionless quantity.
func DimsString(d unit.Dimensions) string {
	var parts []string
	for _, o := range dimOrder {
		p := d[o.dim]
		if p == 0 {
			continue
		}
		if p == 1 {
			parts = append(parts, o.sym)
		} else {
			parts = append(parts, fmt.Sprintf("%s^%d", o.sym, p))
		}
	}
	return strings.Join(parts, " ")
}
