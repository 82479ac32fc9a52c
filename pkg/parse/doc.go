// Package parse turns textual quantities into quantity payloads. It digests
// the requested parser and target form, splits vector-valued strings into a
// literal sequence and a unit expression, hands the text to the parser
// library's native constructor, and routes the result through the translation
// matrix when a different target form was requested.
package parse
