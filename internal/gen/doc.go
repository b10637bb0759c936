// Package gen turns selected manifest values into generated Go source.
//
// Generation approach uses text/template + go/format for readable,
// deterministic output: the same manifest and path always produce
// byte-identical files.
//
// Value rendering:
//   - string   -> string literal
//   - integer  -> int64(n)
//   - float    -> float64(x)
//   - boolean  -> true / false
//   - datetime -> RFC 3339 string literal
//   - array    -> []any{...} (TOML arrays are heterogeneous)
//   - table    -> map[string]any{...}
//
// Scalars are declared const, composites var.
package gen
