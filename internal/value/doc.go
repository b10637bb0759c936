// Package value defines the in-memory representation of a parsed TOML
// document: a closed sum type with one variant per TOML value kind.
//
// Navigation and translation are both structural recursions over this
// type, so the variant set is deliberately closed — adding a variant
// means touching every switch that consumes it.
package value
