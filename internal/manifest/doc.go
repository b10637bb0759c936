// Package manifest locates and parses the Cargo.toml manifest the
// generated values come from. The manifest directory is taken from the
// CARGO_MANIFEST_DIR environment variable; the filename is fixed.
//
// Every call re-reads and re-parses the file. The callers run once per
// go:generate invocation, so a cache would only hide staleness.
package manifest
