package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"tomlgen/internal/indexpath"
)

// DefaultFilename is the batch manifest looked for when none is given.
const DefaultFilename = "tomlgen.yaml"

// LoadFile loads and parses a batch manifest from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}

	return f, nil
}

// Parse parses YAML data into a File and validates it.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&f)

	if err := Validate(&f); err != nil {
		return nil, err
	}

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}

	if f.Output == "" {
		f.Output = "manifest_gen.go"
	}
}

// Validate checks structural constraints: supported version, at least
// one embed, parseable paths, and usable declaration names. Duplicate
// names within one output file would not compile, so they fail here.
func Validate(f *File) error {
	if f.Version != "1" {
		return fmt.Errorf("unsupported config version %q", f.Version)
	}

	if len(f.Embeds) == 0 {
		return fmt.Errorf("config declares no embeds")
	}

	seen := make(map[string]bool)

	for i, e := range f.Embeds {
		if !isValidIdent(e.Name) {
			return fmt.Errorf("embed %d: invalid identifier %q", i, e.Name)
		}

		if e.Path == "" {
			return fmt.Errorf("embed %d (%s): empty path", i, e.Name)
		}

		if _, err := indexpath.Parse(e.Path); err != nil {
			return fmt.Errorf("embed %d (%s): %w", i, e.Name, err)
		}

		key := e.OutputFile(f) + ":" + e.Name
		if seen[key] {
			return fmt.Errorf("embed %d: duplicate name %q in %s", i, e.Name, e.OutputFile(f))
		}

		seen[key] = true
	}

	return nil
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// isValidIdent checks if a string is a valid Go identifier.
func isValidIdent(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		if i == 0 {
			if !isLetter(r) && r != '_' {
				return false
			}
		} else {
			if !isLetter(r) && !isDigit(r) && r != '_' {
				return false
			}
		}
	}

	return true
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
