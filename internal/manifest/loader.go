package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"tomlgen/internal/value"
)

// Filename is the fixed manifest filename. Alternate names or locations
// are not supported.
const Filename = "Cargo.toml"

// EnvDir is the environment variable naming the manifest directory.
const EnvDir = "CARGO_MANIFEST_DIR"

// ErrDirUnset reports a missing or empty CARGO_MANIFEST_DIR.
var ErrDirUnset = errors.New("environment variable CARGO_MANIFEST_DIR not set")

// Dir returns the manifest directory from the environment.
func Dir() (string, error) {
	dir := os.Getenv(EnvDir)
	if dir == "" {
		return "", ErrDirUnset
	}

	return dir, nil
}

// Load reads and parses the manifest from the environment-provided
// directory. Any failure is fatal to the caller: a stale or missing
// manifest must abort generation, never produce a default.
func Load() (value.Value, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}

	path := filepath.Join(dir, Filename)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("cannot parse %s: %w", path, err)
	}

	return doc, nil
}

// Parse parses TOML bytes into a value tree.
func Parse(data []byte) (value.Value, error) {
	var raw map[string]any

	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid TOML: %w", err)
	}

	doc, err := value.FromAny(raw)
	if err != nil {
		return nil, fmt.Errorf("converting document: %w", err)
	}

	return doc, nil
}
