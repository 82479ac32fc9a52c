package forms

import "github.com/mesh-intelligence/unitwand/pkg/types"

// Defaults applied when a caller passes an empty identifier. The CLI overrides
// these from its configuration; library callers may set them once at startup.
var (
	DefaultParser = types.FormGonum
	DefaultToForm = types.NativeForm
)

// DigestParser normalizes and validates a parser identifier. An empty
// candidate selects DefaultParser. The string form is not a parser, so it is
// rejected here even though it is a valid translation target.
//
// Digestion only checks membership; a parser-less library form still digests
// successfully and fails later, at parse time, with LibraryWithoutParserError.
func DigestParser(candidate string) (types.Form, error) {
	if candidate == "" {
		return DefaultParser, nil
	}
	f, ok := types.Normalize(candidate)
	if !ok || f == types.FormString {
		return "", types.NewUnknownFormError("DigestParser", candidate)
	}
	return f, nil
}

// DigestToForm normalizes and validates a target form identifier. An empty
// candidate selects DefaultToForm. Every member of the closed set, including
// the string form, is a valid target.
func DigestToForm(candidate string) (types.Form, error) {
	if candidate == "" {
		return DefaultToForm, nil
	}
	f, ok := types.Normalize(candidate)
	if !ok {
		return "", types.NewUnknownFormError("DigestToForm", candidate)
	}
	return f, nil
}
