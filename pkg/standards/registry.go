package standards

import (
	"fmt"
	"sync"

	"gonum.org/v1/gonum/unit"

	"github.com/mesh-intelligence/unitwand/pkg/forms"
	"github.com/mesh-intelligence/unitwand/pkg/gonumform"
	"github.com/mesh-intelligence/unitwand/pkg/types"
)

// standard is one configured unit with its dimension signature.
type standard struct {
	sym  string
	dims unit.Dimensions
}

// Registry is the standard-units configuration. The zero value is unset;
// queries that need standards before Set succeeds report NoStandardsError.
//
// Reads vastly outnumber writes: callers configure once at startup.
type Registry struct {
	mu        sync.RWMutex
	standards []standard
}

// NewRegistry returns an unset registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Set replaces the configured standard units. Each entry is a unit expression
// understood by the native grammar, e.g. "nm", "ps", "kJ". Duplicate
// dimension signatures are rejected: one standard per dimension.
func (r *Registry) Set(units []string) error {
	parsed := make([]standard, 0, len(units))
	seen := make(map[string]string, len(units))
	for _, u := range units {
		q, err := gonumform.ParseUnit(u)
		if err != nil {
			return fmt.Errorf("standard unit %q: %w", u, err)
		}
		sig := gonumform.DimsString(q.Dims)
		if prev, dup := seen[sig]; dup {
			return fmt.Errorf("standard units %q and %q share the same dimensions", prev, u)
		}
		seen[sig] = u
		parsed = append(parsed, standard{sym: q.Sym, dims: q.Dims})
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.standards = parsed
	return nil
}

// Reset returns the registry to the unset state.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.standards = nil
}

// IsConfigured reports whether Set has been called with a non-empty set.
func (r *Registry) IsConfigured() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.standards) > 0
}

// Units returns the configured unit expressions in configuration order.
func (r *Registry) Units() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.standards))
	for i, s := range r.standards {
		out[i] = s.sym
	}
	return out
}

// ForDimensions returns the configured standard unit matching a dimension
// signature. The second return is false when no standard applies; callers
// must check it before standardizing.
func (r *Registry) ForDimensions(d unit.Dimensions) (string, bool) {
	sig := gonumform.DimsString(d)
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.standards {
		if gonumform.DimsString(s.dims) == sig {
			return s.sym, true
		}
	}
	return "", false
}

// Standardize re-expresses q, a payload in form from, in the standard unit
// configured for its dimensions, and returns it in the same form. An unset
// registry or a quantity with no applicable standard reports
// NoStandardsError.
func (r *Registry) Standardize(q any, from types.Form, m *forms.Matrix) (any, error) {
	if !r.IsConfigured() {
		return nil, types.NewNoStandardsError("Standardize")
	}

	native, err := m.Translate(q, from, types.FormGonum)
	if err != nil {
		return nil, err
	}
	gq, ok := native.(*gonumform.Quantity)
	if !ok {
		return nil, types.NewBadCallError("Standardize", "quantity")
	}

	sym, ok := r.ForDimensions(gq.Dims)
	if !ok {
		return nil, types.NewNoStandardsError("Standardize")
	}
	std, err := gq.To(sym)
	if err != nil {
		return nil, err
	}
	return m.Translate(std, types.FormGonum, from)
}

// defaultRegistry backs the package-level convenience API.
var defaultRegistry = NewRegistry()

// Default returns the process-wide registry used when no explicit registry is
// passed around.
func Default() *Registry {
	return defaultRegistry
}
