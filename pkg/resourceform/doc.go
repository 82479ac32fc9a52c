// Package resourceform implements the k8s.resource quantity form on top of
// k8s.io/apimachinery/pkg/api/resource. Magnitudes are carried as decimal
// resource.Quantity values in SI base units; the dimension signature travels
// alongside as an SI symbol expression.
//
// The resource library has no grammar for physical-unit strings, so this form
// is parser-less: requesting it as a parser raises LibraryWithoutParserError.
package resourceform
