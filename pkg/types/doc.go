// Package types defines the quantity form identifiers, the alias table used
// during digestion, and the standard error taxonomy shared by every layer of
// unitwand.
package types
