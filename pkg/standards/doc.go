// Package standards holds the standard-units configuration: a small registry
// mapping dimension signatures to canonical units, unset until a caller
// configures it. Standardization re-expresses a quantity in the configured
// unit for its dimensions, preserving the quantity's form.
package standards
