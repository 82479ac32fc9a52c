package types

import (
	"errors"
	"fmt"
)

// Support pointers included in every constructed error message.
const (
	DocsWeb   = "https://unitwand.readthedocs.io/en/latest/api"
	IssuesWeb = "https://github.com/mesh-intelligence/unitwand/issues"
)

// Error kinds. Callers match with errors.Is; the constructors below attach
// the offending value and the calling context to the message.
var (
	ErrUnknownForm           = errors.New("unknown quantity form")
	ErrNotImplementedParsing = errors.New("no parsing path implemented")
	ErrLibraryWithoutParser  = errors.New("library has no string parser")
	ErrLibraryNotFound       = errors.New("library not found")
	ErrNoStandards           = errors.New("no standard units configured")
	ErrBadCall               = errors.New("bad call")
)

// NewUnknownFormError reports a form or parser identifier outside the closed
// supported set. caller is the name of the function raising the error.
func NewUnknownFormError(caller, candidate string) error {
	return fmt.Errorf("%w: %q in %s is not a supported form; check %s for the list of supported forms or open an issue at %s",
		ErrUnknownForm, candidate, caller, DocsWeb, IssuesWeb)
}

// NewNotImplementedParsingError reports a (source, target) pair with no
// registered conversion or parsing path. Both identifiers are individually
// valid; the pair is not.
func NewNotImplementedParsingError(caller string, from, to Form) error {
	return fmt.Errorf("%w: from %q to %q in %s; check %s for the supported pairs or open an issue at %s",
		ErrNotImplementedParsing, from, to, caller, DocsWeb, IssuesWeb)
}

// NewLibraryWithoutParserError reports a parse request against a library that
// cannot construct quantities from text.
func NewLibraryWithoutParserError(caller string, library Form) error {
	return fmt.Errorf("%w: %q cannot parse quantity strings; choose a parser-capable form in %s, check %s, or open an issue at %s",
		ErrLibraryWithoutParser, library, caller, DocsWeb, IssuesWeb)
}

// NewLibraryNotFoundError reports a requested optional library that is not
// available in this build.
func NewLibraryNotFoundError(caller, library string) error {
	return fmt.Errorf("%w: %q is required by %s but is not available; check %s or open an issue at %s",
		ErrLibraryNotFound, library, caller, DocsWeb, IssuesWeb)
}

// NewNoStandardsError reports a standardization request made before any
// standard units were configured, or for which no configured standard applies.
func NewNoStandardsError(caller string) error {
	return fmt.Errorf("%w: %s needs a complete set of standard units; configure them first, check %s, or open an issue at %s",
		ErrNoStandards, caller, DocsWeb, IssuesWeb)
}

// NewBadCallError reports malformed caller input. argument names the offending
// parameter.
func NewBadCallError(caller, argument string) error {
	return fmt.Errorf("%w: argument %q of %s; check %s for the expected signature or open an issue at %s",
		ErrBadCall, argument, caller, DocsWeb, IssuesWeb)
}
