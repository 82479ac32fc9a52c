// Package unitwand is the public face of the library: parse textual
// quantities, translate payloads between forms, and standardize against the
// configured standard units, all against the default translation matrix and
// standards registry. Callers needing isolation build their own
// forms.Matrix and standards.Registry and use those packages directly.
package unitwand
