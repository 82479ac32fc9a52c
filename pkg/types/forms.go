package types

import "strings"

// Form identifies one of the supported quantity representations.
type Form string

// Canonical form identifiers. The set is closed: digestion never accepts an
// identifier outside it, and every member has at least one entry in the
// translation matrix.
const (
	// FormString is the textual representation, e.g. "10 nm" or "[1, 2, 3] kJ".
	FormString Form = "string"

	// FormGonum is the native in-memory form, backed by gonum.org/v1/gonum/unit.
	// It is the only form whose library can parse quantity strings.
	FormGonum Form = "gonum"

	// FormResource is the decimal-exact form backed by
	// k8s.io/apimachinery/pkg/api/resource.
	FormResource Form = "k8s.resource"

	// FormMLUnit is the typed-float form backed by github.com/martinlindhe/unit.
	FormMLUnit Form = "martinlindhe"
)

// NativeForm is the form produced by the string parser before any translation.
var NativeForm = FormGonum

// validForms is the closed set of recognized forms.
var validForms = map[Form]bool{
	FormString:   true,
	FormGonum:    true,
	FormResource: true,
	FormMLUnit:   true,
}

// aliases maps lower-cased alternate spellings to canonical forms. Canonical
// identifiers are their own aliases so digestion is a single lookup.
var aliases = map[string]Form{
	"string":            FormString,
	"str":               FormString,
	"text":              FormString,
	"gonum":             FormGonum,
	"gonum.unit":        FormGonum,
	"k8s.resource":      FormResource,
	"resource":          FormResource,
	"k8s":               FormResource,
	"martinlindhe":      FormMLUnit,
	"martinlindhe.unit": FormMLUnit,
	"mlunit":            FormMLUnit,
}

// parserless marks forms whose backing library cannot construct a quantity
// from text. Requesting them as a parser raises LibraryWithoutParserError.
var parserless = map[Form]bool{
	FormResource: true,
	FormMLUnit:   true,
}

// Normalize lower-cases and de-aliases a candidate identifier. The second
// return reports whether the candidate names a supported form.
func Normalize(candidate string) (Form, bool) {
	f, ok := aliases[strings.ToLower(strings.TrimSpace(candidate))]
	return f, ok
}

// IsValidForm reports whether f is a member of the closed supported set.
func IsValidForm(f Form) bool {
	return validForms[f]
}

// HasParser reports whether the library behind f can parse quantity strings.
// The string form itself is not a parser; it is the input representation.
func HasParser(f Form) bool {
	return validForms[f] && f != FormString && !parserless[f]
}

// Forms returns the canonical identifiers in a stable order.
func Forms() []Form {
	return []Form{FormString, FormGonum, FormResource, FormMLUnit}
}
