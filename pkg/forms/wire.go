package forms

import (
	"sync"

	"github.com/mesh-intelligence/unitwand/pkg/gonumform"
	"github.com/mesh-intelligence/unitwand/pkg/mlunitform"
	"github.com/mesh-intelligence/unitwand/pkg/resourceform"
	"github.com/mesh-intelligence/unitwand/pkg/types"
)

// NewDefaultMatrix builds a matrix with every form adapter registered. The
// native gonum form is the hub: the parser-less forms convert to and from it,
// and reach the string form through it. The (k8s.resource, martinlindhe)
// pairs are deliberately absent in both directions.
func NewDefaultMatrix() *Matrix {
	m := NewMatrix()

	m.RegisterCheck(types.FormString, func(q any) bool { _, ok := q.(string); return ok })
	m.RegisterCheck(types.FormGonum, gonumform.IsPayload)
	m.RegisterCheck(types.FormResource, resourceform.IsPayload)
	m.RegisterCheck(types.FormMLUnit, mlunitform.IsPayload)

	m.Register(types.FormString, types.FormGonum, gonumform.FromText)
	m.Register(types.FormGonum, types.FormString, gonumform.ToText)

	m.Register(types.FormGonum, types.FormResource, resourceform.FromGonum)
	m.Register(types.FormResource, types.FormGonum, resourceform.ToGonum)

	m.Register(types.FormGonum, types.FormMLUnit, mlunitform.FromGonum)
	m.Register(types.FormMLUnit, types.FormGonum, mlunitform.ToGonum)

	// Through-the-hub paths.
	m.Register(types.FormString, types.FormResource, compose(gonumform.FromText, resourceform.FromGonum))
	m.Register(types.FormString, types.FormMLUnit, compose(gonumform.FromText, mlunitform.FromGonum))
	m.Register(types.FormResource, types.FormString, compose(resourceform.ToGonum, gonumform.ToText))
	m.Register(types.FormMLUnit, types.FormString, compose(mlunitform.ToGonum, gonumform.ToText))

	return m
}

// compose chains two converters through an intermediate form.
func compose(a, b Converter) Converter {
	return func(q any) (any, error) {
		mid, err := a(q)
		if err != nil {
			return nil, err
		}
		return b(mid)
	}
}

var (
	defaultMatrix     *Matrix
	defaultMatrixOnce sync.Once
)

// Default returns the process-wide default matrix, built on first use.
func Default() *Matrix {
	defaultMatrixOnce.Do(func() {
		defaultMatrix = NewDefaultMatrix()
	})
	return defaultMatrix
}
