// Package mlunitform implements the martinlindhe quantity form on top of
// github.com/martinlindhe/unit. Payloads are the library's own typed values
// (unit.Length, unit.Mass, unit.Energy, unit.Power), so callers get full
// access to its conversion methods.
//
// The library has no string parser and no vector values; requesting it as a
// parser raises LibraryWithoutParserError, and converting an unsupported
// dimension or a vector quantity into it fails.
package mlunitform
