// Package forms validates quantity form identifiers and routes values through
// the translation matrix, the single registry of (source, target) converters.
//
// Digestion (DigestParser, DigestToForm) turns a caller-supplied identifier
// into its canonical form or fails with UnknownFormError. The Matrix resolves
// a digested pair to a converter; identity pairs pass through untouched.
package forms
