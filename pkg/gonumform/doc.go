// Package gonumform implements the native quantity form on top of
// gonum.org/v1/gonum/unit. It is the only form whose library can construct a
// quantity from text, so every textual parse lands here first and fans out to
// the other forms through the translation matrix.
//
// A Quantity keeps the magnitude as written (10 for "10 nm") together with the
// parsed unit expression; dimensional bookkeeping and SI scaling delegate to
// gonum's unit.Dimensions.
package gonumform
