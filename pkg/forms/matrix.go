package forms

import (
	"sort"

	"github.com/mesh-intelligence/unitwand/pkg/types"
)

// Converter turns a quantity payload in one form into the same quantity in
// another form. Converters are pure; they never retain the input.
type Converter func(q any) (any, error)

// Matrix maps ordered (source, target) form pairs to converters. It is the
// single source of truth for which conversions are supported: adapters
// register their converters here and nowhere else.
//
// A Matrix is safe for concurrent readers once registration is complete.
type Matrix struct {
	entries map[types.Form]map[types.Form]Converter

	// checks verify that a payload's dynamic type matches its declared form.
	checks map[types.Form]func(q any) bool
}

// NewMatrix returns an empty matrix.
func NewMatrix() *Matrix {
	return &Matrix{
		entries: make(map[types.Form]map[types.Form]Converter),
		checks:  make(map[types.Form]func(q any) bool),
	}
}

// Register adds the converter for the ordered pair (from, to), replacing any
// previous entry for that pair.
func (m *Matrix) Register(from, to types.Form, fn Converter) {
	row, ok := m.entries[from]
	if !ok {
		row = make(map[types.Form]Converter)
		m.entries[from] = row
	}
	row[to] = fn
}

// RegisterCheck installs the payload type check for a form. Translate uses it
// to reject payloads whose dynamic type does not match the declared source
// form before any converter runs.
func (m *Matrix) RegisterCheck(f types.Form, fn func(q any) bool) {
	m.checks[f] = fn
}

// Supports reports whether the exact ordered pair has a registered converter.
// Identity pairs are always supported.
func (m *Matrix) Supports(from, to types.Form) bool {
	if from == to {
		return true
	}
	_, ok := m.entries[from][to]
	return ok
}

// Pairs returns the registered non-identity pairs in a stable order.
func (m *Matrix) Pairs() [][2]types.Form {
	var pairs [][2]types.Form
	for from, row := range m.entries {
		for to := range row {
			pairs = append(pairs, [2]types.Form{from, to})
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i][0] != pairs[j][0] {
			return pairs[i][0] < pairs[j][0]
		}
		return pairs[i][1] < pairs[j][1]
	})
	return pairs
}

// Translate routes q, a quantity in form from, through the registered
// converter for (from, to). Both identifiers must already be digested;
// Translate checks pair availability, not membership.
//
// When from == to the payload is returned untouched; this identity holds for
// every form. A missing pair raises NotImplementedParsingError. A payload
// whose dynamic type does not match from raises BadCallError. Errors from the
// converter itself propagate unwrapped.
func (m *Matrix) Translate(q any, from, to types.Form) (any, error) {
	if check, ok := m.checks[from]; ok && !check(q) {
		return nil, types.NewBadCallError("Translate", "quantity")
	}
	if from == to {
		return q, nil
	}
	fn, ok := m.entries[from][to]
	if !ok {
		return nil, types.NewNotImplementedParsingError("Translate", from, to)
	}
	return fn(q)
}
